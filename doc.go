/*
Package symtab implements an ordered, mutable key-value symbol table.

Symbol tables

A symbol table associates a value with each of a set of unique keys. This
package implements the classic ordered variant: keys carry a strict total
order, and besides point lookup, insertion and deletion the table answers
order-statistics queries, i.e. questions about the position of keys within
that order:

  - Min, Max, Floor and Ceiling locate extremal and nearest keys,
  - Rank reports how many stored keys are smaller than a query key,
  - Select returns the key at a given order position,
  - KeysBetween and SizeBetween enumerate and count key ranges.

The table is backed by a binary search tree in which every node caches the
size of its subtree, so all order-statistics queries run in time
proportional to the depth of the tree.

Tree shape

The tree is deliberately not self-balancing. There are no rotations and no
rebalancing guarantees: the depth depends on the order in which keys are
inserted and removed. Randomly ordered insertions lead to logarithmic
expected depth, while sorted insertions degrade the tree to a linear list.
Deletion uses Hibbard's method, which replaces a node having two children
with the minimum of its right subtree; over long sequences of deletions
this is known to skew the tree. Applications that need guaranteed
logarithmic behavior should use a balancing search tree instead; this
package trades that guarantee for simple, predictable mechanics and cheap
subtree-size bookkeeping.

Nodes live in a per-table arena and reference each other through integer
handles, so a table owns a single contiguous allocation which grows with
the number of keys and recycles the slots of deleted nodes.

Tables are not safe for concurrent use. A mutating call requires exclusive
access to the table for its duration.

_________________________________________________________________________

BSD 3-Clause License

Copyright (c) Norbert Pillmayer

All rights reserved.

Redistribution and use in source and binary forms, with or without
modification, are permitted provided that the following conditions are met:

1. Redistributions of source code must retain the above copyright notice, this
list of conditions and the following disclaimer.

2. Redistributions in binary form must reproduce the above copyright notice,
this list of conditions and the following disclaimer in the documentation
and/or other materials provided with the distribution.

3. Neither the name of the copyright holder nor the names of its
contributors may be used to endorse or promote products derived from
this software without specific prior written permission.

THIS SOFTWARE IS PROVIDED BY THE COPYRIGHT HOLDERS AND CONTRIBUTORS "AS IS"
AND ANY EXPRESS OR IMPLIED WARRANTIES, INCLUDING, BUT NOT LIMITED TO, THE
IMPLIED WARRANTIES OF MERCHANTABILITY AND FITNESS FOR A PARTICULAR PURPOSE ARE
DISCLAIMED. IN NO EVENT SHALL THE COPYRIGHT HOLDER OR CONTRIBUTORS BE LIABLE
FOR ANY DIRECT, INDIRECT, INCIDENTAL, SPECIAL, EXEMPLARY, OR CONSEQUENTIAL
DAMAGES (INCLUDING, BUT NOT LIMITED TO, PROCUREMENT OF SUBSTITUTE GOODS OR
SERVICES; LOSS OF USE, DATA, OR PROFITS; OR BUSINESS INTERRUPTION) HOWEVER
CAUSED AND ON ANY THEORY OF LIABILITY, WHETHER IN CONTRACT, STRICT LIABILITY,
OR TORT (INCLUDING NEGLIGENCE OR OTHERWISE) ARISING IN ANY WAY OUT OF THE USE
OF THIS SOFTWARE, EVEN IF ADVISED OF THE POSSIBILITY OF SUCH DAMAGE.
*/
package symtab

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'symtab'
func tracer() tracing.Trace {
	return tracing.Select("symtab")
}

func assert(condition bool, msg string) {
	if !condition {
		panic(msg)
	}
}
