package symtab

// Min returns the smallest key. Returns ErrEmptyTable if the table holds
// no keys.
func (t *Table[K, V]) Min() (K, error) {
	var zero K
	if t.root == none {
		return zero, ErrEmptyTable
	}
	return t.arena.at(t.minOf(t.root)).key, nil
}

// Max returns the largest key. Returns ErrEmptyTable if the table holds
// no keys.
func (t *Table[K, V]) Max() (K, error) {
	var zero K
	if t.root == none {
		return zero, ErrEmptyTable
	}
	return t.arena.at(t.maxOf(t.root)).key, nil
}

// minOf returns the leftmost node of the subtree rooted at n.
func (t *Table[K, V]) minOf(n ref) ref {
	for t.arena.at(n).left != none {
		n = t.arena.at(n).left
	}
	return n
}

// maxOf returns the rightmost node of the subtree rooted at n.
func (t *Table[K, V]) maxOf(n ref) ref {
	for t.arena.at(n).right != none {
		n = t.arena.at(n).right
	}
	return n
}

// Floor returns the largest stored key that compares less than or equal
// to key. Returns ErrEmptyTable on an empty table and ErrNoCandidate if
// every stored key is greater than key. A nil key is rejected with
// ErrNilKey.
func (t *Table[K, V]) Floor(key K) (K, error) {
	var zero K
	if err := t.guardKey(key); err != nil {
		return zero, err
	}
	if t.root == none {
		return zero, ErrEmptyTable
	}
	n := t.floorOf(t.root, key)
	if n == none {
		return zero, ErrNoCandidate
	}
	return t.arena.at(n).key, nil
}

// Ceiling returns the smallest stored key that compares greater than or
// equal to key. Returns ErrEmptyTable on an empty table and ErrNoCandidate
// if every stored key is smaller than key. A nil key is rejected with
// ErrNilKey.
func (t *Table[K, V]) Ceiling(key K) (K, error) {
	var zero K
	if err := t.guardKey(key); err != nil {
		return zero, err
	}
	if t.root == none {
		return zero, ErrEmptyTable
	}
	n := t.ceilingOf(t.root, key)
	if n == none {
		return zero, ErrNoCandidate
	}
	return t.arena.at(n).key, nil
}

// floorOf keeps the best candidate seen while descending: a node with a
// key greater than the query can never contribute, a node with a smaller
// key stays the candidate while the right subtree may hold a better one.
func (t *Table[K, V]) floorOf(n ref, key K) ref {
	if n == none {
		return none
	}
	nd := t.arena.at(n)
	rel := t.cfg.Compare(key, nd.key)
	if rel == 0 {
		return n
	}
	if rel < 0 {
		return t.floorOf(nd.left, key)
	}
	if better := t.floorOf(nd.right, key); better != none {
		return better
	}
	return n
}

// ceilingOf is the mirror image of floorOf.
func (t *Table[K, V]) ceilingOf(n ref, key K) ref {
	if n == none {
		return none
	}
	nd := t.arena.at(n)
	rel := t.cfg.Compare(key, nd.key)
	if rel == 0 {
		return n
	}
	if rel > 0 {
		return t.ceilingOf(nd.right, key)
	}
	if better := t.ceilingOf(nd.left, key); better != none {
		return better
	}
	return n
}

// Rank returns the number of stored keys that compare strictly less than
// key. The key itself need not be present. A nil key is rejected with
// ErrNilKey.
func (t *Table[K, V]) Rank(key K) (int, error) {
	if err := t.guardKey(key); err != nil {
		return 0, err
	}
	return t.rankOf(t.root, key), nil
}

// rankOf accumulates left-subtree sizes whenever the search moves right
// or finds the key.
func (t *Table[K, V]) rankOf(n ref, key K) int {
	if n == none {
		return 0
	}
	nd := t.arena.at(n)
	switch rel := t.cfg.Compare(key, nd.key); {
	case rel < 0:
		return t.rankOf(nd.left, key)
	case rel > 0:
		return 1 + t.arena.size(nd.left) + t.rankOf(nd.right, key)
	default:
		return t.arena.size(nd.left)
	}
}

// Select returns the key at order position k, counting from zero: the key
// for which exactly k stored keys are smaller. Select is the inverse of
// Rank. Returns ErrIndexOutOfBounds unless 0 <= k < Size().
func (t *Table[K, V]) Select(k int) (K, error) {
	var zero K
	if k < 0 || k >= t.Size() {
		return zero, ErrIndexOutOfBounds
	}
	n := t.root
	for {
		nd := t.arena.at(n)
		leftsize := t.arena.size(nd.left)
		switch {
		case k < leftsize:
			n = nd.left
		case k > leftsize:
			n = nd.right
			k -= leftsize + 1
		default:
			return nd.key, nil
		}
	}
}

// SizeBetween returns the number of stored keys in the closed interval
// [lo, hi]. The bounds need not be present themselves; if lo sorts after
// hi the count is 0. Nil bounds are rejected with ErrNilKey.
func (t *Table[K, V]) SizeBetween(lo, hi K) (int, error) {
	if err := t.guardKey(lo); err != nil {
		return 0, err
	}
	if err := t.guardKey(hi); err != nil {
		return 0, err
	}
	if t.cfg.Compare(lo, hi) > 0 {
		return 0, nil
	}
	n := t.rankOf(t.root, hi) - t.rankOf(t.root, lo)
	if t.lookup(hi) != none {
		n++
	}
	return n, nil
}

// Height returns the length of the longest path from the root to a null
// link: -1 for an empty table, 0 for a single node.
func (t *Table[K, V]) Height() int {
	return t.heightOf(t.root)
}

func (t *Table[K, V]) heightOf(n ref) int {
	if n == none {
		return -1
	}
	nd := t.arena.at(n)
	return 1 + max(t.heightOf(nd.left), t.heightOf(nd.right))
}
