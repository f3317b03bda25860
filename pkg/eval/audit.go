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

	"github.com/bits-and-blooms/bitset"
	"github.com/knownbits-dev/go-knownbits/pkg/knownbits"
	"github.com/knownbits-dev/go-knownbits/pkg/util/collection/enum"
)

// StateIndex returns the position of an abstract word within the canonical
// enumeration of its width, i.e. its base-3 encoding across bits with the
// least significant bit as the fastest digit.
func StateIndex(kb knownbits.KnownBits) uint64 {
	var (
		index uint64
		scale uint64 = 1
	)
	//
	for i := uint(0); i < kb.Width(); i++ {
		index += uint64(kb.Bit(i)) * scale
		scale *= 3
	}
	//
	return index
}

// VerifyEnumeration checks the state enumeration of a given width against
// its defining bijection: the state visited at position n must encode n, and
// every position must be visited exactly once.
func VerifyEnumeration(width uint) error {
	states, err := NewStateEnumerator(width)
	//
	if err != nil {
		return err
	}
	//
	var (
		count = states.Count()
		seen  = bitset.New(count)
	)
	//
	for iter := enum.Range(0, count); iter.HasNext(); {
		var (
			position = iter.Next()
			state    = states.Next()
		)
		//
		if index := StateIndex(state); index != uint64(position) {
			return fmt.Errorf("state %s at position %d encodes %d", state, position, index)
		} else if seen.Test(position) {
			return fmt.Errorf("position %d visited twice", position)
		}
		//
		seen.Set(position)
	}
	// Sanity check
	if seen.Count() != count {
		return fmt.Errorf("visited %d of %d states", seen.Count(), count)
	}
	//
	return nil
}
