package symtab

import (
	"cmp"
	"reflect"
)

// Table is an ordered symbol table: a mapping from unique keys to values,
// with keys arranged by a strict total order. It is backed by an
// unbalanced binary search tree with subtree-size caches; all operations
// run in time proportional to the depth of the tree.
//
// Tables must be created with New or NewOrdered and must not be used
// concurrently; see the package documentation.
type Table[K, V any] struct {
	cfg     Config[K]
	arena   arena[K, V]
	root    ref
	nilable bool // true if K is a kind that can hold nil
}

// New creates an empty symbol table from a configuration. The
// configuration must provide the key comparison; see Config.
func New[K, V any](cfg Config[K]) (*Table[K, V], error) {
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	cfg = cfg.normalized()
	t := &Table[K, V]{
		cfg:     cfg,
		arena:   newArena[K, V](cfg.Capacity),
		root:    none,
		nilable: isNilableKind(reflect.TypeFor[K]()),
	}
	tracer().Debugf("new symbol table, arena capacity %d", cfg.Capacity)
	return t, nil
}

// NewOrdered creates an empty symbol table for key types carrying the
// language-defined order, compared with cmp.Compare.
func NewOrdered[K cmp.Ordered, V any]() *Table[K, V] {
	t, err := New[K, V](Config[K]{Compare: cmp.Compare[K]})
	assert(err == nil, "symtab: default configuration must validate")
	return t
}

// Size returns the number of keys in the table.
func (t *Table[K, V]) Size() int {
	return t.arena.size(t.root)
}

// IsEmpty is true if the table holds no keys.
func (t *Table[K, V]) IsEmpty() bool {
	return t.root == none
}

// --- Lookup ----------------------------------------------------------------

// Get returns the value associated with key. The second return value is
// false if the key is not present; an absent key is not an error. A nil
// key is rejected with ErrNilKey.
func (t *Table[K, V]) Get(key K) (V, bool, error) {
	var value V
	if err := t.guardKey(key); err != nil {
		return value, false, err
	}
	n := t.lookup(key)
	if n == none {
		return value, false, nil
	}
	return t.arena.at(n).value, true, nil
}

// Contains reports whether key is present in the table. A nil key is
// rejected with ErrNilKey.
func (t *Table[K, V]) Contains(key K) (bool, error) {
	_, found, err := t.Get(key)
	return found, err
}

// lookup walks from the root towards key and returns the node holding it,
// or none.
func (t *Table[K, V]) lookup(key K) ref {
	n := t.root
	for n != none {
		nd := t.arena.at(n)
		switch rel := t.cfg.Compare(key, nd.key); {
		case rel < 0:
			n = nd.left
		case rel > 0:
			n = nd.right
		default:
			return n
		}
	}
	return none
}

// --- Insertion ---------------------------------------------------------------

// Put associates key with value. If the key is already present, its value
// is overwritten in place; otherwise a new node is created. A nil key is
// rejected with ErrNilKey.
//
// Put never removes a key. To remove one, call Delete, or Assign with a
// nil value pointer.
func (t *Table[K, V]) Put(key K, value V) error {
	if err := t.guardKey(key); err != nil {
		return err
	}
	t.root = t.insertRecursive(t.root, key, value)
	t.audit("Put")
	return nil
}

// Assign associates key with the value pointed at, or deletes the key if
// value is nil. It is the optional-value variant of Put: storing "no
// value" for a key means removing the key.
func (t *Table[K, V]) Assign(key K, value *V) error {
	if value == nil {
		return t.Delete(key)
	}
	return t.Put(key, *value)
}

// insertRecursive descends to the insertion point of key and returns the
// possibly new root of the subtree. Subtree counts are recomputed for
// every node on the way back up.
//
// Node pointers are re-fetched after each recursive call: allocation can
// move the arena's node store.
func (t *Table[K, V]) insertRecursive(n ref, key K, value V) ref {
	if n == none {
		return t.arena.alloc(key, value)
	}
	switch rel := t.cfg.Compare(key, t.arena.at(n).key); {
	case rel < 0:
		left := t.insertRecursive(t.arena.at(n).left, key, value)
		t.arena.at(n).left = left
	case rel > 0:
		right := t.insertRecursive(t.arena.at(n).right, key, value)
		t.arena.at(n).right = right
	default:
		t.arena.at(n).value = value
		return n
	}
	t.arena.refresh(n)
	return n
}

// --- Deletion ----------------------------------------------------------------

// Delete removes key and its value from the table. Deleting a key that is
// not present is a no-op, so deletion is idempotent. A nil key is rejected
// with ErrNilKey.
func (t *Table[K, V]) Delete(key K) error {
	if err := t.guardKey(key); err != nil {
		return err
	}
	if t.root == none {
		return nil
	}
	if t.arena.at(t.root).count == 1 {
		// single node: detach the root without recursing
		if t.cfg.Compare(key, t.arena.at(t.root).key) == 0 {
			t.arena.recycle(t.root)
			t.root = none
		}
		t.audit("Delete")
		return nil
	}
	t.root = t.deleteRecursive(t.root, key)
	t.audit("Delete")
	return nil
}

// DeleteMin removes the smallest key and its value. Returns ErrEmptyTable
// if the table holds no keys.
func (t *Table[K, V]) DeleteMin() error {
	if t.root == none {
		return ErrEmptyTable
	}
	rest, min := t.detachMin(t.root)
	t.root = rest
	t.arena.recycle(min)
	t.audit("DeleteMin")
	return nil
}

// DeleteMax removes the largest key and its value. Returns ErrEmptyTable
// if the table holds no keys.
func (t *Table[K, V]) DeleteMax() error {
	if t.root == none {
		return ErrEmptyTable
	}
	rest, max := t.detachMax(t.root)
	t.root = rest
	t.arena.recycle(max)
	t.audit("DeleteMax")
	return nil
}

// deleteRecursive implements Hibbard deletion: a node with two children is
// replaced by the minimum of its right subtree. Returns the possibly new
// root of the subtree; subtree counts are recomputed on the way back up.
// If key is not present the subtree is left unchanged.
func (t *Table[K, V]) deleteRecursive(n ref, key K) ref {
	if n == none {
		return none
	}
	switch rel := t.cfg.Compare(key, t.arena.at(n).key); {
	case rel < 0:
		left := t.deleteRecursive(t.arena.at(n).left, key)
		t.arena.at(n).left = left
	case rel > 0:
		right := t.deleteRecursive(t.arena.at(n).right, key)
		t.arena.at(n).right = right
	default:
		nd := t.arena.at(n)
		left, right := nd.left, nd.right
		if right == none {
			t.arena.recycle(n)
			return left
		}
		if left == none {
			t.arena.recycle(n)
			return right
		}
		// two children: splice in the minimum of the right subtree
		rest, succ := t.detachMin(right)
		s := t.arena.at(succ)
		s.left = left
		s.right = rest
		t.arena.recycle(n)
		t.arena.refresh(succ)
		return succ
	}
	t.arena.refresh(n)
	return n
}

// detachMin unlinks the minimum node of the subtree rooted at n and
// returns the remaining subtree and the detached node. The detached node
// keeps its key and value but carries no links; it is not recycled, so
// the caller decides whether to splice it back in or free it.
func (t *Table[K, V]) detachMin(n ref) (rest, detached ref) {
	if left := t.arena.at(n).left; left != none {
		rest, detached = t.detachMin(left)
		t.arena.at(n).left = rest
		t.arena.refresh(n)
		return n, detached
	}
	nd := t.arena.at(n)
	rest = nd.right
	nd.left, nd.right, nd.count = none, none, 1
	return rest, n
}

// detachMax is the mirror image of detachMin.
func (t *Table[K, V]) detachMax(n ref) (rest, detached ref) {
	if right := t.arena.at(n).right; right != none {
		rest, detached = t.detachMax(right)
		t.arena.at(n).right = rest
		t.arena.refresh(n)
		return n, detached
	}
	nd := t.arena.at(n)
	rest = nd.left
	nd.left, nd.right, nd.count = none, none, 1
	return rest, n
}

// --- Key guard, self check ---------------------------------------------------

// guardKey rejects nil keys. Keys of value kinds (strings, numbers,
// structs) can never be nil and pass without inspection.
func (t *Table[K, V]) guardKey(key K) error {
	if !t.nilable {
		return nil
	}
	boxed := any(key)
	if boxed == nil {
		return ErrNilKey
	}
	switch v := reflect.ValueOf(boxed); v.Kind() {
	case reflect.Pointer, reflect.Map, reflect.Slice, reflect.Func, reflect.Chan:
		if v.IsNil() {
			return ErrNilKey
		}
	}
	return nil
}

func isNilableKind(typ reflect.Type) bool {
	switch typ.Kind() {
	case reflect.Pointer, reflect.Interface, reflect.Map, reflect.Slice,
		reflect.Func, reflect.Chan:
		return true
	}
	return false
}

// audit re-validates the tree invariants after a mutation if the table is
// configured with SelfCheck. A violation is an implementation bug, not a
// user error, and panics.
func (t *Table[K, V]) audit(op string) {
	if !t.cfg.SelfCheck {
		return
	}
	if err := t.Check(); err != nil {
		tracer().Errorf("%s left the table inconsistent: %v", op, err)
		assert(false, "symtab."+op+": "+err.Error())
	}
}
