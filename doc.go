/*
Package bimap implements an ordered bidirectional map.

A Bimap stores pairs (Left, Right). Left values are unique with respect to a
Left comparator, and Right values are unique with respect to a Right
comparator, independently of each other. Either side can be used to look up
the other, and either side can be traversed in ascending or descending
order.

Internally a bimap keeps two binary search trees, one ordered by Left values
and one ordered by Right values. Both trees thread the same pair records:
there is exactly one record per pair, carrying both values and one set of
tree links per side. Switching from a position in the left tree to the
position of the same pair in the right tree (Iterator.Flip) is a constant
time operation.

	bm := bimap.NewOrdered[int, string]()
	bm.Insert(1, "one")
	bm.Insert(2, "two")
	r, _ := bm.AtLeft(2)                 // "two"
	l, _ := bm.AtRight("one")            // 1
	it := bm.FindRight("two").Flip()     // left side iterator at 2

Performance

	Operation        | Bimap
	-----------------+----------------------------
	Insert           | O(depth)
	Find, Bounds     | O(depth)
	Erase            | O(depth)
	Flip             | O(1)
	Len              | O(1)

The trees are never rebalanced. Their depth is O(log n) for random
insertion orders and O(n) for sorted ones. Clients needing guaranteed
logarithmic depth for adversarial input should shuffle their input or pick a
balanced container.

Bimaps are not safe for concurrent use. Clients must serialize access, and
must not mutate a bimap while iterating over it, except through the
iterator returned by the erase operations.

_________________________________________________________________________

BSD 3-Clause License

Copyright (c) 2020–21, Norbert Pillmayer

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
package bimap

import (
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
)

// T traces to a global core-tracer.
func T() tracing.Trace {
	return gtrace.CoreTracer
}

// BimapError is an error type for the bimap module
type BimapError string

func (e BimapError) Error() string {
	return string(e)
}

// ErrKeyNotFound is flagged by the checked lookups AtLeft and AtRight
// whenever no pair holds the requested key.
const ErrKeyNotFound = BimapError("no such element in bimap")

// ErrIllegalArguments is flagged whenever function parameters are invalid.
const ErrIllegalArguments = BimapError("illegal arguments")

func assert(condition bool, msg string) {
	if !condition {
		panic(msg)
	}
}
