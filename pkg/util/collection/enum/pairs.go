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

	"github.com/knownbits-dev/go-knownbits/pkg/util"
)

// Pairs returns an enumerator which visits every ordered pair over the given
// set of elements, in row-major order.  That is, for elements [A,B] it yields
// [(A,A),(A,B),(B,A),(B,B)].  Since the underlying space has quadratic size,
// Pairs fails when len(elems)^2 overflows the enumeration counter.
func Pairs[E any](elems []E) (Enumerator[util.Pair[E, E]], error) {
	var (
		m = uint64(len(elems))
	)
	// Check whether size of the space is representable.
	if m != 0 && m > (^uint64(0))/m {
		return nil, fmt.Errorf("%d^2 pairs exceed enumeration counter", m)
	}
	//
	return &pairEnumerator[E]{0, m * m, elems}, nil
}

type pairEnumerator[E any] struct {
	index, end uint64
	elements   []E
}

// HasNext checks whether or not there are any items remaining to visit.
//
//nolint:revive
func (p *pairEnumerator[E]) HasNext() bool {
	return p.index < p.end
}

// Count returns the number of items left in this enumeration.
//
//nolint:revive
func (p *pairEnumerator[E]) Count() uint {
	return uint(p.end - p.index)
}

// Nth returns the nth item in this iterator.  This will mutate the iterator.
func (p *pairEnumerator[E]) Nth(n uint) util.Pair[E, E] {
	next := p.index + uint64(n)
	p.index = next + 1
	//
	return p.pair(next)
}

// Next returns the next item, and advance the iterator.
//
//nolint:revive
func (p *pairEnumerator[E]) Next() util.Pair[E, E] {
	next := p.index
	p.index++

	return p.pair(next)
}

// Extract the specific pair mapped to a given index.
func (p *pairEnumerator[E]) pair(index uint64) util.Pair[E, E] {
	var (
		m = uint64(len(p.elements))
		i = index / m
		j = index % m
	)
	//
	return util.NewPair(p.elements[i], p.elements[j])
}
