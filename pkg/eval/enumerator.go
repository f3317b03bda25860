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
package eval

import (
	"fmt"

	"github.com/knownbits-dev/go-knownbits/pkg/knownbits"
	"github.com/knownbits-dev/go-knownbits/pkg/util/collection/enum"
)

// StateEnumerator visits every abstract word of a given width exactly once,
// in a canonical order: words are counted in base 3 across their bits with
// the least significant bit varying fastest, and digits ordered zero, one,
// unknown.
type StateEnumerator struct {
	enum enum.Enumerator[[]knownbits.Bit]
}

// NewStateEnumerator constructs an enumerator over every abstract word of a
// given width.  This fails for unsupported widths, and for widths whose
// state count (3^width) overflows the enumeration counter.
func NewStateEnumerator(width uint) (*StateEnumerator, error) {
	if width == 0 || width > knownbits.MaxWidth {
		return nil, fmt.Errorf("unsupported width %d (expected 1..%d)", width, knownbits.MaxWidth)
	}
	//
	digits, err := enum.Power(width, []knownbits.Bit{knownbits.Zero, knownbits.One, knownbits.Unknown})
	//
	if err != nil {
		return nil, err
	}
	//
	return &StateEnumerator{digits}, nil
}

// HasNext checks whether or not there are any states remaining to visit.
//
//nolint:revive
func (p *StateEnumerator) HasNext() bool {
	return p.enum.HasNext()
}

// Count returns the number of states left in this enumeration.
//
//nolint:revive
func (p *StateEnumerator) Count() uint {
	return p.enum.Count()
}

// Nth returns the nth state in this iterator.  This will mutate the iterator.
func (p *StateEnumerator) Nth(n uint) knownbits.KnownBits {
	return knownbits.FromBits(p.enum.Nth(n))
}

// Next returns the next state, and advance the iterator.
//
//nolint:revive
func (p *StateEnumerator) Next() knownbits.KnownBits {
	return knownbits.FromBits(p.enum.Next())
}

// EnumerateStates returns every abstract word of a given width, in canonical
// order.
func EnumerateStates(width uint) ([]knownbits.KnownBits, error) {
	iter, err := NewStateEnumerator(width)
	//
	if err != nil {
		return nil, err
	}
	//
	return enum.Collect(iter), nil
}
