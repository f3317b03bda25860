// Copyright The go-knownbits Authors.
//
// Licensed under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with
// the License. You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on
// an "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied. See the License for the
// specific language governing permissions and limitations under the License.
//
// SPDX-License-Identifier: Apache-2.0
package enum

import (
	"fmt"

	"github.com/knownbits-dev/go-knownbits/pkg/util/math"
)

// Power returns an enumerator which visits all arrays of size n over the given
// set of elements.  For example, if n==2 and elems contained two elements A and
// B, then this will return [[A,A],[B,A],[A,B],[B,B]].  Observe that elements
// are enumerated in mixed-radix order, with the first array position being the
// least-significant digit.  Power fails when the size of the space (i.e.
// len(elems)^n) overflows the enumeration counter, rather than silently
// wrapping around.
func Power[E any](n uint, elems []E) (Enumerator[[]E], error) {
	// Determine size of the space.
	end, ok := math.CheckedPowUint64(uint64(len(elems)), uint64(n))
	//
	if !ok {
		return nil, fmt.Errorf("%d^%d arrays exceed enumeration counter", len(elems), n)
	}
	//
	return &powerEnumerator[E]{uint64(n), 0, end, elems}, nil
}

type powerEnumerator[E any] struct {
	nitems     uint64
	index, end uint64
	elements   []E
}

// HasNext checks whether or not there are any items remaining to visit.
//
//nolint:revive
func (p *powerEnumerator[E]) HasNext() bool {
	return p.index < p.end
}

// Count returns the number of items left in this enumeration.
//
//nolint:revive
func (p *powerEnumerator[E]) Count() uint {
	return uint(p.end - p.index)
}

// Nth returns the nth item in this iterator.  This will mutate the iterator.
func (p *powerEnumerator[E]) Nth(n uint) []E {
	next := p.index + uint64(n)
	p.index = next + 1
	//
	return extract(next, p.nitems, p.elements)
}

// Next returns the next item, and advance the iterator.
//
//nolint:revive
func (p *powerEnumerator[E]) Next() []E {
	next := p.index
	p.index++

	return extract(next, p.nitems, p.elements)
}

// Extract the specific array mapped to a given index, by repeated division of
// the index with the radix (i.e. number of elements).
func extract[E any](index uint64, n uint64, elems []E) []E {
	var (
		m  = uint64(len(elems))
		rs = make([]E, n)
	)
	// Copy over elements
	for i := 0; i < len(rs); i++ {
		rs[i] = elems[index%m]
		index = index / m
	}
	//
	return rs
}
