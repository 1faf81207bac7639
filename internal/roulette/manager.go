package roulette

import (
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/mohaak7/valorant-hub/internal/logging"
	"github.com/mohaak7/valorant-hub/internal/models"
)

// Session kinds.
const (
	KindSkins  = "skins"
	KindAgents = "agents"
)

// Session is one live roulette, bound to a kind and carrying the current
// filter and pool mode.
type Session struct {
	id     string
	kind   string
	engine *Engine

	mu       sync.Mutex
	filter   string
	mode     models.RouletteMode
	lastUsed time.Time
}

// ID returns the session identifier.
func (s *Session) ID() string { return s.id }

// Kind returns the session kind, skins or agents.
func (s *Session) Kind() string { return s.kind }

// Engine returns the session's spin engine.
func (s *Session) Engine() *Engine { return s.engine }

// Filter returns the current weapon or role filter.
func (s *Session) Filter() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.filter
}

// Mode returns the current pool mode.
func (s *Session) Mode() models.RouletteMode {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.mode
}

// SetFilter updates the filter and mode and swaps in the pool derived from
// them, resetting any spin in flight.
func (s *Session) SetFilter(filter string, mode models.RouletteMode, pool []models.PoolItem) {
	s.mu.Lock()
	s.filter = filter
	s.mode = mode
	s.lastUsed = time.Now()
	s.mu.Unlock()
	s.engine.SetPool(pool)
}

func (s *Session) touch() {
	s.mu.Lock()
	s.lastUsed = time.Now()
	s.mu.Unlock()
}

func (s *Session) idleSince(cutoff time.Time) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lastUsed.Before(cutoff)
}

// Manager tracks live sessions and reaps the ones that go idle.
type Manager struct {
	mu       sync.Mutex
	sessions map[string]*Session
	ttl      time.Duration
	rng      RandomSource
	logger   *logging.Logger

	done      chan struct{}
	closeOnce sync.Once
}

// NewManager creates a session manager that expires sessions idle for longer
// than ttl. A nil source uses the crypto-backed default.
func NewManager(ttl time.Duration, rng RandomSource, logger *logging.Logger) *Manager {
	if ttl <= 0 {
		ttl = 30 * time.Minute
	}
	m := &Manager{
		sessions: make(map[string]*Session),
		ttl:      ttl,
		rng:      rng,
		logger:   logger,
		done:     make(chan struct{}),
	}
	go m.janitor()
	return m
}

// Create registers a new session with the given pool.
func (m *Manager) Create(kind, filter string, mode models.RouletteMode, pool []models.PoolItem) *Session {
	opts := SkinOptions()
	if kind == KindAgents {
		opts = AgentOptions()
	}

	sess := &Session{
		id:       uuid.New().String(),
		kind:     kind,
		engine:   NewEngine(opts, m.rng),
		filter:   filter,
		mode:     mode,
		lastUsed: time.Now(),
	}
	sess.engine.SetPool(pool)

	m.mu.Lock()
	m.sessions[sess.id] = sess
	m.mu.Unlock()

	m.logger.Info("Roulette session created", logging.WithFields(map[string]interface{}{
		"session": sess.id,
		"kind":    kind,
		"pool":    len(pool),
	}))
	return sess
}

// Get returns a session by id and marks it as used.
func (m *Manager) Get(id string) (*Session, bool) {
	m.mu.Lock()
	sess, ok := m.sessions[id]
	m.mu.Unlock()
	if !ok {
		return nil, false
	}
	sess.touch()
	return sess, true
}

// Delete stops a session's engine and removes it.
func (m *Manager) Delete(id string) bool {
	m.mu.Lock()
	sess, ok := m.sessions[id]
	if ok {
		delete(m.sessions, id)
	}
	m.mu.Unlock()
	if !ok {
		return false
	}
	sess.engine.Stop()
	return true
}

// Len returns the number of live sessions.
func (m *Manager) Len() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.sessions)
}

// Close stops the janitor and tears down every session. Safe to call more
// than once.
func (m *Manager) Close() {
	m.closeOnce.Do(func() {
		close(m.done)
		m.mu.Lock()
		sessions := make([]*Session, 0, len(m.sessions))
		for _, sess := range m.sessions {
			sessions = append(sessions, sess)
		}
		m.sessions = make(map[string]*Session)
		m.mu.Unlock()
		for _, sess := range sessions {
			sess.engine.Stop()
		}
	})
}

func (m *Manager) janitor() {
	interval := m.ttl / 2
	if interval < 30*time.Second {
		interval = 30 * time.Second
	}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			m.sweep()
		case <-m.done:
			return
		}
	}
}

func (m *Manager) sweep() {
	cutoff := time.Now().Add(-m.ttl)

	m.mu.Lock()
	var expired []*Session
	for id, sess := range m.sessions {
		if sess.idleSince(cutoff) {
			expired = append(expired, sess)
			delete(m.sessions, id)
		}
	}
	m.mu.Unlock()

	for _, sess := range expired {
		sess.engine.Stop()
	}
	if len(expired) > 0 {
		m.logger.Debug("Expired idle roulette sessions", logging.WithField("count", len(expired)))
	}
}
