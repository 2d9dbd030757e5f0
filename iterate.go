package symtab

import (
	"iter"

	"github.com/npillmayer/symtab/queue"
)

// Keys returns all keys in ascending order, collected into a FIFO queue.
// An empty table yields an empty queue. Each call traverses the tree
// afresh.
func (t *Table[K, V]) Keys() *queue.Queue[K] {
	if t.root == none {
		return queue.New[K]()
	}
	lo := t.arena.at(t.minOf(t.root)).key
	hi := t.arena.at(t.maxOf(t.root)).key
	keys, err := t.KeysBetween(lo, hi)
	assert(err == nil, "symtab: stored keys must be valid range bounds")
	return keys
}

// KeysBetween returns the keys in the closed interval [lo, hi] in
// ascending order, collected into a FIFO queue. Subtrees entirely outside
// the interval are pruned from the traversal. Nil bounds are rejected
// with ErrNilKey.
func (t *Table[K, V]) KeysBetween(lo, hi K) (*queue.Queue[K], error) {
	if err := t.guardKey(lo); err != nil {
		return nil, err
	}
	if err := t.guardKey(hi); err != nil {
		return nil, err
	}
	keys := queue.New[K]()
	t.collectRange(t.root, keys, lo, hi)
	return keys, nil
}

// collectRange appends the keys of [lo, hi] below n to the queue in
// symmetric order, descending only into subtrees that can intersect the
// interval.
func (t *Table[K, V]) collectRange(n ref, keys *queue.Queue[K], lo, hi K) {
	if n == none {
		return
	}
	nd := t.arena.at(n)
	rello := t.cfg.Compare(lo, nd.key)
	relhi := t.cfg.Compare(hi, nd.key)
	if rello < 0 {
		t.collectRange(nd.left, keys, lo, hi)
	}
	if rello <= 0 && relhi >= 0 {
		keys.Enqueue(nd.key)
	}
	if relhi > 0 {
		t.collectRange(nd.right, keys, lo, hi)
	}
}

// LevelOrder returns all keys in breadth-first order: the root first,
// then every level left to right, each level fully emitted before the
// next. This is a diagnostic view of the tree shape, not an ordered
// enumeration.
func (t *Table[K, V]) LevelOrder() *queue.Queue[K] {
	keys := queue.New[K]()
	worklist := queue.New[ref]()
	worklist.Enqueue(t.root)
	for !worklist.IsEmpty() {
		n, _ := worklist.Dequeue()
		if n == none {
			continue // placeholder for an absent child
		}
		nd := t.arena.at(n)
		keys.Enqueue(nd.key)
		worklist.Enqueue(nd.left)
		worklist.Enqueue(nd.right)
	}
	return keys
}

// RangeKeys returns an iterator over all keys in ascending order.
func (t *Table[K, V]) RangeKeys() iter.Seq[K] {
	return func(yield func(K) bool) {
		t.walkInOrder(t.root, func(key K, _ V) bool {
			return yield(key)
		})
	}
}

// RangePairs returns an iterator over all key-value pairs in ascending
// key order.
func (t *Table[K, V]) RangePairs() iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		t.walkInOrder(t.root, yield)
	}
}

// ForEachPair visits all key-value pairs in ascending key order. The
// callback stops the visit by returning false.
func (t *Table[K, V]) ForEachPair(f func(key K, value V) bool) {
	t.walkInOrder(t.root, f)
}

// EachKey visits all keys in ascending order. Iteration stops at the
// first callback error and returns that error to the caller.
func (t *Table[K, V]) EachKey(f func(key K) error) error {
	var failed error
	t.walkInOrder(t.root, func(key K, _ V) bool {
		if err := f(key); err != nil {
			failed = err
			return false
		}
		return true
	})
	return failed
}

// walkInOrder visits the subtree below n in symmetric order, stopping
// early when visit returns false.
func (t *Table[K, V]) walkInOrder(n ref, visit func(K, V) bool) bool {
	if n == none {
		return true
	}
	nd := t.arena.at(n)
	if !t.walkInOrder(nd.left, visit) {
		return false
	}
	if !visit(nd.key, nd.value) {
		return false
	}
	return t.walkInOrder(nd.right, visit)
}
