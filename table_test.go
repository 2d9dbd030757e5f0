package symtab

import (
	"errors"
	"strings"
	"testing"
)

func newStringTable(t *testing.T) *Table[string, int] {
	t.Helper()
	tab, err := New[string, int](Config[string]{Compare: strings.Compare})
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	return tab
}

// putAll inserts keys in the given order with their position as value,
// overwriting values of duplicate keys.
func putAll(t *testing.T, tab *Table[string, int], keys ...string) {
	t.Helper()
	for i, key := range keys {
		if err := tab.Put(key, i); err != nil {
			t.Fatalf("Put(%q, %d) failed: %v", key, i, err)
		}
	}
}

func TestNewRejectsMissingComparison(t *testing.T) {
	_, err := New[string, int](Config[string]{})
	if !errors.Is(err, ErrInvalidConfig) {
		t.Fatalf("expected ErrInvalidConfig for missing comparison, got %v", err)
	}
}

func TestNewRejectsNegativeCapacity(t *testing.T) {
	_, err := New[string, int](Config[string]{Compare: strings.Compare, Capacity: -1})
	if !errors.Is(err, ErrInvalidConfig) {
		t.Fatalf("expected ErrInvalidConfig for negative capacity, got %v", err)
	}
}

func TestNewOrderedStartsEmpty(t *testing.T) {
	tab := NewOrdered[string, int]()
	if !tab.IsEmpty() || tab.Size() != 0 {
		t.Fatalf("new table should be empty, size=%d", tab.Size())
	}
	if tab.Height() != -1 {
		t.Fatalf("empty table height = %d, want -1", tab.Height())
	}
	if err := tab.Check(); err != nil {
		t.Fatalf("empty table should validate, got %v", err)
	}
}

func TestPutThenGetReturnsValue(t *testing.T) {
	tab := newStringTable(t)
	if err := tab.Put("alpha", 42); err != nil {
		t.Fatalf("Put failed: %v", err)
	}
	value, found, err := tab.Get("alpha")
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if !found || value != 42 {
		t.Fatalf("Get = (%d, %v), want (42, true)", value, found)
	}
}

func TestPutOverwritesValueInPlace(t *testing.T) {
	tab := newStringTable(t)
	putAll(t, tab, "S", "E", "A", "E", "S")
	if tab.Size() != 3 {
		t.Fatalf("duplicate keys must be merged, size=%d want 3", tab.Size())
	}
	value, found, err := tab.Get("S")
	if err != nil || !found {
		t.Fatalf("Get(S) = (%v, %v), want present", err, found)
	}
	if value != 4 {
		t.Fatalf("overwritten value = %d, want 4", value)
	}
}

func TestGetMissingKeyIsNotAnError(t *testing.T) {
	tab := newStringTable(t)
	value, found, err := tab.Get("x")
	if err != nil {
		t.Fatalf("Get on empty table must not fail, got %v", err)
	}
	if found || value != 0 {
		t.Fatalf("Get on empty table = (%d, %v), want (0, false)", value, found)
	}
	putAll(t, tab, "S", "E", "A")
	if _, found, _ := tab.Get("x"); found {
		t.Fatalf("Get of absent key reported presence")
	}
}

func TestContainsReflectsMembership(t *testing.T) {
	tab := newStringTable(t)
	putAll(t, tab, "M", "C", "X")
	for _, key := range []string{"M", "C", "X"} {
		found, err := tab.Contains(key)
		if err != nil || !found {
			t.Fatalf("Contains(%q) = (%v, %v), want present", key, found, err)
		}
	}
	found, err := tab.Contains("Q")
	if err != nil || found {
		t.Fatalf("Contains(Q) = (%v, %v), want absent without error", found, err)
	}
}

func comparePtrStrings(a, b *string) int {
	return strings.Compare(*a, *b)
}

func TestNilKeyIsRejected(t *testing.T) {
	tab, err := New[*string, int](Config[*string]{Compare: comparePtrStrings})
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	k := "k"
	if err := tab.Put(&k, 1); err != nil {
		t.Fatalf("Put with valid pointer key failed: %v", err)
	}
	if err := tab.Put(nil, 2); !errors.Is(err, ErrNilKey) {
		t.Fatalf("Put(nil) = %v, want ErrNilKey", err)
	}
	if _, _, err := tab.Get(nil); !errors.Is(err, ErrNilKey) {
		t.Fatalf("Get(nil) = %v, want ErrNilKey", err)
	}
	if _, err := tab.Contains(nil); !errors.Is(err, ErrNilKey) {
		t.Fatalf("Contains(nil) = %v, want ErrNilKey", err)
	}
	if err := tab.Delete(nil); !errors.Is(err, ErrNilKey) {
		t.Fatalf("Delete(nil) = %v, want ErrNilKey", err)
	}
	if _, err := tab.Rank(nil); !errors.Is(err, ErrNilKey) {
		t.Fatalf("Rank(nil) = %v, want ErrNilKey", err)
	}
	if _, err := tab.Floor(nil); !errors.Is(err, ErrNilKey) {
		t.Fatalf("Floor(nil) = %v, want ErrNilKey", err)
	}
	if _, err := tab.Ceiling(nil); !errors.Is(err, ErrNilKey) {
		t.Fatalf("Ceiling(nil) = %v, want ErrNilKey", err)
	}
	if _, err := tab.KeysBetween(nil, &k); !errors.Is(err, ErrNilKey) {
		t.Fatalf("KeysBetween(nil, hi) = %v, want ErrNilKey", err)
	}
	if _, err := tab.SizeBetween(&k, nil); !errors.Is(err, ErrNilKey) {
		t.Fatalf("SizeBetween(lo, nil) = %v, want ErrNilKey", err)
	}
	if tab.Size() != 1 {
		t.Fatalf("rejected keys must leave the table unchanged, size=%d", tab.Size())
	}
}

func TestAssignNilValueDeletes(t *testing.T) {
	tab := newStringTable(t)
	putAll(t, tab, "S", "E", "A")
	if err := tab.Assign("E", nil); err != nil {
		t.Fatalf("Assign(E, nil) failed: %v", err)
	}
	if found, _ := tab.Contains("E"); found {
		t.Fatalf("key E still present after Assign with nil value")
	}
	if tab.Size() != 2 {
		t.Fatalf("size = %d after nil-value assignment, want 2", tab.Size())
	}
	// assigning nil to an absent key stays a no-op
	if err := tab.Assign("Q", nil); err != nil {
		t.Fatalf("Assign of nil to absent key failed: %v", err)
	}
	if err := tab.Check(); err != nil {
		t.Fatalf("invariants violated: %v", err)
	}
}

func TestAssignStoresPointedAtValue(t *testing.T) {
	tab := newStringTable(t)
	seven := 7
	if err := tab.Assign("G", &seven); err != nil {
		t.Fatalf("Assign failed: %v", err)
	}
	value, found, err := tab.Get("G")
	if err != nil || !found || value != 7 {
		t.Fatalf("Get(G) = (%d, %v, %v), want (7, true, nil)", value, found, err)
	}
}

func TestDeleteIsIdempotent(t *testing.T) {
	tab := newStringTable(t)
	putAll(t, tab, "S", "E", "A", "R", "C", "H")
	if err := tab.Delete("R"); err != nil {
		t.Fatalf("Delete failed: %v", err)
	}
	if err := tab.Delete("R"); err != nil {
		t.Fatalf("second Delete must be a no-op, got %v", err)
	}
	if tab.Size() != 5 {
		t.Fatalf("size = %d after double delete, want 5", tab.Size())
	}
	if err := tab.Delete("zzz"); err != nil {
		t.Fatalf("Delete of never-present key must be a no-op, got %v", err)
	}
	if err := tab.Check(); err != nil {
		t.Fatalf("invariants violated: %v", err)
	}
}

func TestDeleteOnEmptyTableIsNoOp(t *testing.T) {
	tab := newStringTable(t)
	if err := tab.Delete("x"); err != nil {
		t.Fatalf("Delete on empty table must be a no-op, got %v", err)
	}
}

func TestDeleteRootOfTwoNodeTable(t *testing.T) {
	tab := newStringTable(t)
	if err := tab.Put("A", 0); err != nil {
		t.Fatalf("Put failed: %v", err)
	}
	if err := tab.Put("B", 1); err != nil {
		t.Fatalf("Put failed: %v", err)
	}
	// A is the root, B its right child
	if tab.arena.at(tab.root).key != "A" {
		t.Fatalf("expected A at the root")
	}
	if err := tab.Delete("A"); err != nil {
		t.Fatalf("Delete failed: %v", err)
	}
	if tab.Size() != 1 {
		t.Fatalf("size = %d, want 1", tab.Size())
	}
	value, found, err := tab.Get("B")
	if err != nil || !found || value != 1 {
		t.Fatalf("Get(B) = (%d, %v, %v), want (1, true, nil)", value, found, err)
	}
	if err := tab.Check(); err != nil {
		t.Fatalf("invariants violated: %v", err)
	}
}

func TestDeleteLastKeyClearsRoot(t *testing.T) {
	tab := newStringTable(t)
	putAll(t, tab, "K")
	if err := tab.Delete("K"); err != nil {
		t.Fatalf("Delete failed: %v", err)
	}
	if !tab.IsEmpty() || tab.root != none {
		t.Fatalf("expected cleared root after deleting the last key")
	}
}

// Hibbard deletion replaces a node having two children with the minimum of
// its right subtree. For the classic S E A R C H E X A M P L E insertion
// sequence, deleting E makes H the replacement, which pins the exact
// deletion strategy through the resulting tree shape.
func TestDeleteUsesHibbardReplacement(t *testing.T) {
	tab := newStringTable(t)
	putAll(t, tab, "S", "E", "A", "R", "C", "H", "E", "X", "A", "M", "P", "L", "E")
	if err := tab.Delete("E"); err != nil {
		t.Fatalf("Delete failed: %v", err)
	}
	got := strings.Join(tab.LevelOrder().Drain(), " ")
	want := "S H X A R C M L P"
	if got != want {
		t.Fatalf("tree shape after Hibbard deletion:\ngot  %q\nwant %q", got, want)
	}
	if err := tab.Check(); err != nil {
		t.Fatalf("invariants violated: %v", err)
	}
}

func TestDeleteMinMax(t *testing.T) {
	tab := newStringTable(t)
	putAll(t, tab, "S", "E", "A", "R", "C", "H")
	if err := tab.DeleteMin(); err != nil {
		t.Fatalf("DeleteMin failed: %v", err)
	}
	if found, _ := tab.Contains("A"); found {
		t.Fatalf("smallest key still present after DeleteMin")
	}
	if err := tab.DeleteMax(); err != nil {
		t.Fatalf("DeleteMax failed: %v", err)
	}
	if found, _ := tab.Contains("S"); found {
		t.Fatalf("largest key still present after DeleteMax")
	}
	min, err := tab.Min()
	if err != nil || min != "C" {
		t.Fatalf("Min = (%q, %v), want C", min, err)
	}
	max, err := tab.Max()
	if err != nil || max != "R" {
		t.Fatalf("Max = (%q, %v), want R", max, err)
	}
	if err := tab.Check(); err != nil {
		t.Fatalf("invariants violated: %v", err)
	}
}

func TestEmptyTableErrors(t *testing.T) {
	tab := newStringTable(t)
	if _, err := tab.Min(); !errors.Is(err, ErrEmptyTable) {
		t.Fatalf("Min on empty table = %v, want ErrEmptyTable", err)
	}
	if _, err := tab.Max(); !errors.Is(err, ErrEmptyTable) {
		t.Fatalf("Max on empty table = %v, want ErrEmptyTable", err)
	}
	if err := tab.DeleteMin(); !errors.Is(err, ErrEmptyTable) {
		t.Fatalf("DeleteMin on empty table = %v, want ErrEmptyTable", err)
	}
	if err := tab.DeleteMax(); !errors.Is(err, ErrEmptyTable) {
		t.Fatalf("DeleteMax on empty table = %v, want ErrEmptyTable", err)
	}
}

func TestEmptyOutTableByRepeatedDeleteMin(t *testing.T) {
	tab := newStringTable(t)
	putAll(t, tab, "S", "E", "A", "R", "C", "H")
	for !tab.IsEmpty() {
		if err := tab.DeleteMin(); err != nil {
			t.Fatalf("DeleteMin failed: %v", err)
		}
		if err := tab.Check(); err != nil {
			t.Fatalf("invariants violated while emptying: %v", err)
		}
	}
	if tab.root != none || tab.Height() != -1 {
		t.Fatalf("expected cleared root and height -1 after emptying the table")
	}
}

func TestArenaReusesFreedSlots(t *testing.T) {
	tab := newStringTable(t)
	putAll(t, tab, "S", "E", "A", "R", "C", "H")
	slots := len(tab.arena.nodes)
	if err := tab.Delete("A"); err != nil {
		t.Fatalf("Delete failed: %v", err)
	}
	if err := tab.Delete("H"); err != nil {
		t.Fatalf("Delete failed: %v", err)
	}
	if tab.arena.free == none {
		t.Fatalf("expected freed slots on the free list")
	}
	putAll(t, tab, "B", "D")
	if len(tab.arena.nodes) != slots {
		t.Fatalf("arena grew to %d slots, want reuse of the %d existing ones",
			len(tab.arena.nodes), slots)
	}
	if tab.Size() != 6 {
		t.Fatalf("size = %d, want 6", tab.Size())
	}
	if err := tab.Check(); err != nil {
		t.Fatalf("invariants violated: %v", err)
	}
}

func TestCheckDetectsCountCorruption(t *testing.T) {
	tab := newStringTable(t)
	putAll(t, tab, "M", "C", "X")
	tab.arena.at(tab.root).count = 42
	if err := tab.Check(); !errors.Is(err, ErrInvariantViolation) {
		t.Fatalf("Check = %v, want ErrInvariantViolation", err)
	}
}

func TestCheckDetectsOrderCorruption(t *testing.T) {
	tab := newStringTable(t)
	putAll(t, tab, "M", "C", "X")
	root := tab.arena.at(tab.root)
	left := tab.arena.at(root.left)
	root.key, left.key = left.key, root.key
	if err := tab.Check(); !errors.Is(err, ErrInvariantViolation) {
		t.Fatalf("Check = %v, want ErrInvariantViolation", err)
	}
}

func TestSelfCheckAssertsAfterMutation(t *testing.T) {
	tab, err := New[string, int](Config[string]{Compare: strings.Compare, SelfCheck: true})
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	putAll(t, tab, "M", "C")
	// corrupt a node off the upcoming insertion path; the post-mutation
	// audit must catch it
	left := tab.arena.at(tab.root).left
	tab.arena.at(left).count = 5
	defer func() {
		if recover() == nil {
			t.Fatalf("expected SelfCheck to panic on a corrupted tree")
		}
	}()
	_ = tab.Put("X", 2)
}
