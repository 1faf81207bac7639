package roulette

import (
	"sync"
	"time"

	"github.com/mohaak7/valorant-hub/internal/models"
)

type engineState int

const (
	stateIdle engineState = iota
	stateSpinning
	stateResolved
)

// Options controls the pacing of a spin.
type Options struct {
	// TickInterval is how often the highlight advances while spinning.
	TickInterval time.Duration
	// SpinDuration is how long a spin runs before the winner is committed.
	SpinDuration time.Duration
	// StepMax bounds the random extra advance per tick. Each tick moves the
	// highlight by 1 + rand(StepMax) positions.
	StepMax int
}

// SkinOptions returns the pacing used for weapon skin spins.
func SkinOptions() Options {
	return Options{
		TickInterval: 70 * time.Millisecond,
		SpinDuration: 3000 * time.Millisecond,
		StepMax:      2,
	}
}

// AgentOptions returns the pacing used for agent spins.
func AgentOptions() Options {
	return Options{
		TickInterval: 70 * time.Millisecond,
		SpinDuration: 2600 * time.Millisecond,
		StepMax:      3,
	}
}

// State is a point-in-time snapshot of an engine.
type State struct {
	PoolSize    int  `json:"poolSize"`
	ActiveIndex int  `json:"activeIndex"`
	WinnerIndex *int `json:"winnerIndex"`
	Spinning    bool `json:"spinning"`
}

// Engine runs the spin state machine over an ordered pool of items. The
// highlight cycles through the pool while spinning; the winner is drawn
// uniformly and independently of the cycling path.
type Engine struct {
	mu   sync.Mutex
	rng  RandomSource
	opts Options

	pool        []models.PoolItem
	state       engineState
	activeIndex int
	winnerIndex int

	// gen invalidates callbacks from a cancelled spin.
	gen          int
	quit         chan struct{}
	resolveTimer *time.Timer
	stopped      bool
}

// NewEngine creates an engine with the given pacing. A nil source uses the
// crypto-backed default.
func NewEngine(opts Options, rng RandomSource) *Engine {
	if rng == nil {
		rng = DefaultSource()
	}
	if opts.TickInterval <= 0 {
		opts.TickInterval = 70 * time.Millisecond
	}
	if opts.SpinDuration <= 0 {
		opts.SpinDuration = 3000 * time.Millisecond
	}
	if opts.StepMax < 1 {
		opts.StepMax = 2
	}
	return &Engine{
		rng:         rng,
		opts:        opts,
		winnerIndex: -1,
	}
}

// SetPool replaces the pool. Any in-flight spin is cancelled, the winner is
// cleared and the highlight is re-randomized into the new bounds.
func (e *Engine) SetPool(items []models.PoolItem) {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.stopped {
		return
	}

	e.cancelSpinLocked()
	e.pool = append([]models.PoolItem(nil), items...)
	e.winnerIndex = -1
	e.state = stateIdle
	if len(e.pool) == 0 {
		e.activeIndex = 0
	} else {
		e.activeIndex = e.rng.Intn(len(e.pool))
	}
}

// Spin starts a spin. It reports false when the engine is already spinning,
// stopped, or the pool is empty. A single-item pool resolves immediately.
func (e *Engine) Spin() bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.stopped || e.state == stateSpinning || len(e.pool) == 0 {
		return false
	}

	if len(e.pool) == 1 {
		e.activeIndex = 0
		e.winnerIndex = 0
		e.state = stateResolved
		return true
	}

	e.state = stateSpinning
	e.winnerIndex = -1

	gen := e.gen
	quit := make(chan struct{})
	e.quit = quit

	ticker := time.NewTicker(e.opts.TickInterval)
	go e.runTicks(ticker, quit, gen)
	e.resolveTimer = time.AfterFunc(e.opts.SpinDuration, func() {
		e.resolve(gen)
	})
	return true
}

func (e *Engine) runTicks(ticker *time.Ticker, quit chan struct{}, gen int) {
	defer ticker.Stop()
	for {
		select {
		case <-ticker.C:
			e.mu.Lock()
			if e.gen == gen && e.state == stateSpinning {
				n := len(e.pool)
				e.activeIndex = (e.activeIndex + 1 + e.rng.Intn(e.opts.StepMax)) % n
			}
			e.mu.Unlock()
		case <-quit:
			return
		}
	}
}

// resolve ends the spin started at the given generation. The tick loop is
// cancelled before the winner is committed so the final highlight cannot be
// moved afterwards.
func (e *Engine) resolve(gen int) {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.gen != gen || e.state != stateSpinning {
		return
	}

	e.cancelSpinLocked()
	e.winnerIndex = e.rng.Intn(len(e.pool))
	e.activeIndex = e.winnerIndex
	e.state = stateResolved
}

// cancelSpinLocked tears down the tick loop and resolve timer of the current
// spin, if any. Callers must hold e.mu.
func (e *Engine) cancelSpinLocked() {
	if e.resolveTimer != nil {
		e.resolveTimer.Stop()
		e.resolveTimer = nil
	}
	if e.quit != nil {
		close(e.quit)
		e.quit = nil
	}
	e.gen++
}

// Stop permanently shuts the engine down. Safe to call more than once.
func (e *Engine) Stop() {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.stopped {
		return
	}
	e.stopped = true
	e.cancelSpinLocked()
	if e.state == stateSpinning {
		e.state = stateIdle
	}
}

// Snapshot returns the current engine state.
func (e *Engine) Snapshot() State {
	e.mu.Lock()
	defer e.mu.Unlock()

	st := State{
		PoolSize:    len(e.pool),
		ActiveIndex: e.activeIndex,
		Spinning:    e.state == stateSpinning,
	}
	if e.state == stateResolved && e.winnerIndex >= 0 {
		w := e.winnerIndex
		st.WinnerIndex = &w
	}
	return st
}

// Pool returns a copy of the current pool.
func (e *Engine) Pool() []models.PoolItem {
	e.mu.Lock()
	defer e.mu.Unlock()
	return append([]models.PoolItem(nil), e.pool...)
}

// Winner returns the resolved item, if the last spin has resolved.
func (e *Engine) Winner() (models.PoolItem, bool) {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.state != stateResolved || e.winnerIndex < 0 || e.winnerIndex >= len(e.pool) {
		return models.PoolItem{}, false
	}
	return e.pool[e.winnerIndex], true
}
