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
)

// Exhaustive computes the most precise sound abstraction of an operator
// applied to a pair of abstract words: both sides are concretized, the
// operator applied pointwise, and the results abstracted back.  This is
// exponential in the number of unknown bits, but optimal by construction,
// hence it serves as the yardstick for judging closed forms.
func Exhaustive(exact ExactFn, lhs knownbits.KnownBits, rhs knownbits.KnownBits) (knownbits.KnownBits, error) {
	var empty knownbits.KnownBits
	//
	if lhs.Width() != rhs.Width() {
		return empty, fmt.Errorf("operands have mismatched widths (%d vs %d)", lhs.Width(), rhs.Width())
	}
	//
	xs, err := lhs.Concretize()
	if err != nil {
		return empty, err
	}
	//
	ys, err := rhs.Concretize()
	if err != nil {
		return empty, err
	}
	//
	results := make([]uint64, 0, len(xs)*len(ys))
	//
	for _, x := range xs {
		for _, y := range ys {
			results = append(results, exact(x, y, lhs.Width()))
		}
	}
	// Never empty, since every abstract word has concretizations.
	return knownbits.Abstract(lhs.Width(), results)
}
