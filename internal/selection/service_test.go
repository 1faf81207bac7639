package selection

import (
	"context"
	"errors"
	"reflect"
	"testing"

	"github.com/mohaak7/valorant-hub/internal/logging"
)

func testLogger() *logging.Logger {
	return logging.New(logging.LevelError)
}

func newTestService() (*Service, *MemoryStore) {
	store := NewMemoryStore()
	return NewService(store, testLogger()), store
}

func TestToggle_Idempotence(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()

	if svc.IsMember(ctx, "p1", SlotPool, "skin-a") {
		t.Fatal("fresh set should not contain skin-a")
	}

	if _, err := svc.Toggle(ctx, "p1", SlotPool, "skin-a"); err != nil {
		t.Fatal(err)
	}
	if !svc.IsMember(ctx, "p1", SlotPool, "skin-a") {
		t.Error("toggle once should add membership")
	}

	if _, err := svc.Toggle(ctx, "p1", SlotPool, "skin-a"); err != nil {
		t.Fatal(err)
	}
	if svc.IsMember(ctx, "p1", SlotPool, "skin-a") {
		t.Error("toggle twice should return membership to original state")
	}
}

func TestReplaceAll(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()

	svc.Toggle(ctx, "p1", SlotPool, "old-skin")

	got, err := svc.ReplaceAll(ctx, "p1", SlotPool, []string{"a", "b", "a", "c", "b"})
	if err != nil {
		t.Fatal(err)
	}
	want := []string{"a", "b", "c"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("ReplaceAll() = %v, want deduplicated %v", got, want)
	}

	for _, id := range want {
		if !svc.IsMember(ctx, "p1", SlotPool, id) {
			t.Errorf("IsMember(%s) = false after ReplaceAll", id)
		}
	}
	if svc.IsMember(ctx, "p1", SlotPool, "old-skin") {
		t.Error("previously stored id not in ReplaceAll input should be gone")
	}
}

func TestClearSubset_PreservesUnrelatedIDs(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()

	svc.ReplaceAll(ctx, "p1", SlotPool, []string{"vandal-a", "vandal-b", "phantom-a", "knife-a"})

	// Clear only the Vandal candidates; the Phantom and knife selections
	// survive even though they are not displayed right now
	got, err := svc.ClearSubset(ctx, "p1", SlotPool, []string{"vandal-a", "vandal-b", "vandal-never-selected"})
	if err != nil {
		t.Fatal(err)
	}
	want := []string{"phantom-a", "knife-a"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("ClearSubset() = %v, want %v", got, want)
	}
}

func TestMembers_ProfileAndSlotIsolation(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()

	svc.Toggle(ctx, "p1", SlotPool, "skin-a")
	svc.Toggle(ctx, "p1", SlotOwned, "skin-b")
	svc.Toggle(ctx, "p2", SlotPool, "skin-c")

	if got := svc.Members(ctx, "p1", SlotPool); !reflect.DeepEqual(got, []string{"skin-a"}) {
		t.Errorf("p1 pool = %v", got)
	}
	if got := svc.Members(ctx, "p1", SlotOwned); !reflect.DeepEqual(got, []string{"skin-b"}) {
		t.Errorf("p1 owned = %v", got)
	}
	if got := svc.Members(ctx, "p2", SlotPool); !reflect.DeepEqual(got, []string{"skin-c"}) {
		t.Errorf("p2 pool = %v", got)
	}
}

func TestLegacyMigration(t *testing.T) {
	svc, store := newTestService()
	ctx := context.Background()

	// Simulate a profile with data under the legacy slot plus one canonical id
	store.Put(ctx, "p1", legacyOwnedSlot, []string{"legacy-a", "legacy-b"})
	store.Put(ctx, "p1", SlotOwned, []string{"canonical-a", "legacy-a"})

	got := svc.Members(ctx, "p1", SlotOwned)
	want := []string{"canonical-a", "legacy-a", "legacy-b"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Members() after migration = %v, want %v", got, want)
	}

	// The legacy slot is dropped after a successful merge
	legacy, _ := store.Get(ctx, "p1", legacyOwnedSlot)
	if len(legacy) != 0 {
		t.Errorf("legacy slot should be empty after migration, got %v", legacy)
	}

	// The merge is persisted under the canonical slot
	canonical, _ := store.Get(ctx, "p1", SlotOwned)
	if !reflect.DeepEqual(canonical, want) {
		t.Errorf("canonical slot = %v, want %v", canonical, want)
	}
}

// failingStore wraps MemoryStore with injectable errors
type failingStore struct {
	*MemoryStore
	getErr error
	putErr error
}

func (f *failingStore) Get(ctx context.Context, profileID, slot string) ([]string, error) {
	if f.getErr != nil {
		return nil, f.getErr
	}
	return f.MemoryStore.Get(ctx, profileID, slot)
}

func (f *failingStore) Put(ctx context.Context, profileID, slot string, ids []string) error {
	if f.putErr != nil {
		return f.putErr
	}
	return f.MemoryStore.Put(ctx, profileID, slot, ids)
}

func TestReadFailureDegradesToEmpty(t *testing.T) {
	store := &failingStore{MemoryStore: NewMemoryStore(), getErr: errors.New("storage down")}
	svc := NewService(store, testLogger())
	ctx := context.Background()

	if got := svc.Members(ctx, "p1", SlotPool); len(got) != 0 {
		t.Errorf("Members() = %v, want empty on read failure", got)
	}
	if svc.IsMember(ctx, "p1", SlotPool, "anything") {
		t.Error("IsMember() should be false on read failure")
	}
}

func TestWriteFailureDoesNotDivergeState(t *testing.T) {
	store := &failingStore{MemoryStore: NewMemoryStore()}
	svc := NewService(store, testLogger())
	ctx := context.Background()

	svc.Toggle(ctx, "p1", SlotPool, "skin-a")

	store.putErr = errors.New("quota exceeded")

	if _, err := svc.Toggle(ctx, "p1", SlotPool, "skin-b"); err == nil {
		t.Fatal("Toggle() should surface persistence failure")
	}

	// A read after the failed write reflects only what actually persisted
	store.putErr = nil
	got := svc.Members(ctx, "p1", SlotPool)
	if !reflect.DeepEqual(got, []string{"skin-a"}) {
		t.Errorf("Members() = %v, want only the persisted skin-a", got)
	}
}
