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
	"testing"

	"github.com/knownbits-dev/go-knownbits/pkg/knownbits"
)

func Test_Exhaustive_1(t *testing.T) {
	// Every concretization of ?100 * ??10 wraps to 1000.
	checkExhaustive(t, knownbits.ExactMul, "?100", "??10", "1000")
}

func Test_Exhaustive_2(t *testing.T) {
	// Signed high product of small non-negative words never leaves zero.
	checkExhaustive(t, knownbits.ExactMulhs, "0?", "0?", "00")
}

func Test_Exhaustive_3(t *testing.T) {
	// All four signed high products reach either 00 or 11.
	checkExhaustive(t, knownbits.ExactMulhs, "1?", "?1", "??")
}

func Test_Exhaustive_4(t *testing.T) {
	checkExhaustive(t, knownbits.ExactAnd, "??", "00", "00")
	checkExhaustive(t, knownbits.ExactXor, "10", "01", "11")
}

func Test_Exhaustive_5(t *testing.T) {
	// Mismatched operand widths are rejected.
	_, err := Exhaustive(knownbits.ExactAnd, knownbits.MustParse("??"), knownbits.MustParse("???"))
	//
	if err == nil {
		t.Error("expected width mismatch error")
	}
}

func Test_Exhaustive_6(t *testing.T) {
	// Every concrete outcome of the exact operation is consistent with the
	// exhaustive abstraction of its operands.
	const width = uint(2)
	//
	states, err := EnumerateStates(width)
	if err != nil {
		t.Fatal(err)
	}
	//
	for _, lhs := range states {
		for _, rhs := range states {
			result, err := Exhaustive(knownbits.ExactMulhs, lhs, rhs)
			if err != nil {
				t.Fatal(err)
			}
			//
			lhsValues, _ := lhs.Concretize()
			rhsValues, _ := rhs.Concretize()
			//
			for _, x := range lhsValues {
				for _, y := range rhsValues {
					z := knownbits.ExactMulhs(x, y, width)
					//
					if z&result.Zeros() != 0 || z&result.Ones() != result.Ones() {
						t.Errorf("mulhs(%d,%d) == %d inconsistent with %s op %s => %s",
							x, y, z, lhs, rhs, result)
					}
				}
			}
		}
	}
}

// ===================================================================
// Helpers
// ===================================================================

func checkExhaustive(t *testing.T, exact ExactFn, lhs string, rhs string, expected string) {
	t.Helper()
	//
	result, err := Exhaustive(exact, knownbits.MustParse(lhs), knownbits.MustParse(rhs))
	//
	if err != nil {
		t.Fatal(err)
	} else if result.String() != expected {
		t.Errorf("exhaustive %s op %s: expected %s, got %s", lhs, rhs, expected, result)
	}
}
