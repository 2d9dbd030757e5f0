package symtab

import "fmt"

// Check validates the structural invariants of the tree: symmetric key
// order, consistency of the cached subtree counts, and agreement of Rank
// and Select over the whole table. A healthy table returns nil.
//
// Check never mutates the table. Configurations with SelfCheck run it
// after every mutation; a failure there is asserted, since it indicates an
// implementation bug rather than a user error.
func (t *Table[K, V]) Check() error {
	if t == nil {
		return fmt.Errorf("%w: nil table", ErrInvariantViolation)
	}
	if err := t.checkOrder(t.root, nil, nil); err != nil {
		return err
	}
	if err := t.checkCounts(t.root); err != nil {
		return err
	}
	return t.checkRanks()
}

// checkOrder walks the subtree below n keeping the open interval
// (lo, hi) that every key must fall into; the interval narrows at each
// descent. nil bounds mean unbounded.
func (t *Table[K, V]) checkOrder(n ref, lo, hi *K) error {
	if n == none {
		return nil
	}
	nd := t.arena.at(n)
	if lo != nil && t.cfg.Compare(nd.key, *lo) <= 0 {
		return fmt.Errorf("%w: key order violated at lower bound", ErrInvariantViolation)
	}
	if hi != nil && t.cfg.Compare(nd.key, *hi) >= 0 {
		return fmt.Errorf("%w: key order violated at upper bound", ErrInvariantViolation)
	}
	if err := t.checkOrder(nd.left, lo, &nd.key); err != nil {
		return err
	}
	return t.checkOrder(nd.right, &nd.key, hi)
}

// checkCounts re-derives every cached subtree count from the children.
func (t *Table[K, V]) checkCounts(n ref) error {
	if n == none {
		return nil
	}
	nd := t.arena.at(n)
	if want := 1 + t.arena.size(nd.left) + t.arena.size(nd.right); int(nd.count) != want {
		return fmt.Errorf("%w: subtree count %d, want %d", ErrInvariantViolation, nd.count, want)
	}
	if err := t.checkCounts(nd.left); err != nil {
		return err
	}
	return t.checkCounts(nd.right)
}

// checkRanks verifies that Rank and Select are inverse over the full
// order-position range and over every stored key.
func (t *Table[K, V]) checkRanks() error {
	for k := range t.Size() {
		key, err := t.Select(k)
		if err != nil {
			return fmt.Errorf("%w: select(%d) failed on a table of size %d",
				ErrInvariantViolation, k, t.Size())
		}
		if r := t.rankOf(t.root, key); r != k {
			return fmt.Errorf("%w: rank(select(%d)) = %d", ErrInvariantViolation, k, r)
		}
	}
	return t.EachKey(func(key K) error {
		sel, err := t.Select(t.rankOf(t.root, key))
		if err != nil {
			return fmt.Errorf("%w: select(rank(key)) failed", ErrInvariantViolation)
		}
		if t.cfg.Compare(sel, key) != 0 {
			return fmt.Errorf("%w: select(rank(key)) does not round-trip", ErrInvariantViolation)
		}
		return nil
	})
}
