package symtab

// ref addresses a node within a table's arena.
type ref int32

// none is the null-link sentinel: a ref that addresses no node.
const none ref = -1

// node is a single tree cell. The key is immutable once set; the value may
// be overwritten in place. count caches the number of nodes in the subtree
// rooted here, including the node itself.
type node[K, V any] struct {
	key   K
	value V
	left  ref
	right ref
	count int32
}

// arena is the backing store for tree nodes. Nodes are addressed by ref;
// slots of deleted nodes are recycled through a free list threaded through
// the left links of freed nodes.
type arena[K, V any] struct {
	nodes []node[K, V]
	free  ref
}

func newArena[K, V any](capacity int) arena[K, V] {
	return arena[K, V]{
		nodes: make([]node[K, V], 0, capacity),
		free:  none,
	}
}

// at returns the node addressed by n. The pointer stays valid only until
// the next allocation from the arena, which may move the node store.
func (a *arena[K, V]) at(n ref) *node[K, V] {
	return &a.nodes[n]
}

// size reports the subtree count cached at n, with size(none) == 0.
func (a *arena[K, V]) size(n ref) int {
	if n == none {
		return 0
	}
	return int(a.nodes[n].count)
}

// alloc hands out a one-node subtree holding key and value, reusing a
// freed slot if one is available.
func (a *arena[K, V]) alloc(key K, value V) ref {
	cell := node[K, V]{key: key, value: value, left: none, right: none, count: 1}
	if a.free != none {
		n := a.free
		a.free = a.nodes[n].left
		a.nodes[n] = cell
		return n
	}
	a.nodes = append(a.nodes, cell)
	return ref(len(a.nodes) - 1)
}

// recycle puts the node addressed by n onto the free list. Key and value
// are cleared so that the collector can reclaim their payloads.
func (a *arena[K, V]) recycle(n ref) {
	a.nodes[n] = node[K, V]{left: a.free, right: none, count: 0}
	a.free = n
}

// refresh recomputes the subtree count at n from its children.
func (a *arena[K, V]) refresh(n ref) {
	nd := &a.nodes[n]
	nd.count = int32(1 + a.size(nd.left) + a.size(nd.right))
}
