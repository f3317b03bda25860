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
package knownbits

import (
	"errors"
	"fmt"
)

// Concretize returns every value this word can hold, in increasing order.
// Since a word with u unknown bits holds 2^u values, this fails when that
// count is not representable.
func (p KnownBits) Concretize() ([]uint64, error) {
	var (
		unknowns = p.Unknowns()
		count    = p.CountUnknown()
	)
	// Check whether size of the set is representable.
	if count >= 63 {
		return nil, fmt.Errorf("2^%d values exceed concretization capacity", count)
	}
	//
	values := make([]uint64, 0, 1<<count)
	// Visit every subset of the unknown bits, smallest first.
	for s := uint64(0); ; s = (s - unknowns) & unknowns {
		values = append(values, p.ones|s)
		//
		if s == unknowns {
			break
		}
	}
	//
	return values, nil
}

// Abstract returns the most precise abstraction of a set of width-bit
// values: a bit is known in the result exactly when it holds the same value
// in every member of the set.  This fails when the set is empty, since the
// abstraction has no representation of unreachability.
func Abstract(width uint, values []uint64) (KnownBits, error) {
	var empty KnownBits
	//
	if width == 0 || width > MaxWidth {
		return empty, fmt.Errorf("unsupported width %d (expected 1..%d)", width, MaxWidth)
	} else if len(values) == 0 {
		return empty, errors.New("cannot abstract empty set of values")
	}
	//
	var (
		m     = mask(width)
		zeros = m
		ones  = m
	)
	//
	for _, v := range values {
		if v&^m != 0 {
			return empty, fmt.Errorf("value 0x%x exceeds width %d", v, width)
		}
		// Bit remains known iff it agrees across all values seen.
		ones &= v
		zeros &= m &^ v
	}
	//
	return KnownBits{width, zeros, ones}, nil
}
