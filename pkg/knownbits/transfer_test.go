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
	"testing"
)

type transferFn func(KnownBits, KnownBits) (KnownBits, error)

type exactFn func(uint64, uint64, uint) uint64

func Test_And_1(t *testing.T) {
	checkTransfer(t, And, "1?0", "1?")
	checkExact(t, And, ExactAnd, 2)
	checkExact(t, And, ExactAnd, 3)
}

func Test_Or_1(t *testing.T) {
	checkTransfer(t, Or, "1?0", "1?")
	checkExact(t, Or, ExactOr, 2)
	checkExact(t, Or, ExactOr, 3)
}

func Test_Xor_1(t *testing.T) {
	checkTransfer(t, Xor, "1?0", "1?")
	checkExact(t, Xor, ExactXor, 2)
	checkExact(t, Xor, ExactXor, 3)
}

func Test_Mul_1(t *testing.T) {
	// Products of constants fold to constants.
	product, err := Mul(Constant(4, 3), Constant(4, 5))
	//
	if err != nil {
		t.Fatal(err)
	} else if !product.Equals(Constant(4, 15)) {
		t.Errorf("expected 1111, got %s", product)
	}
}

func Test_Mul_2(t *testing.T) {
	// Known low runs multiply out exactly: every concretization of
	// ?100 * ??10 wraps to 1000.
	product, err := Mul(MustParse("?100"), MustParse("??10"))
	//
	if err != nil {
		t.Fatal(err)
	} else if product.String() != "1000" {
		t.Errorf("expected 1000, got %s", product)
	}
}

func Test_Mul_3(t *testing.T) {
	// High zeros follow from a non-overflowing unsigned maximum.
	product, err := Mul(MustParse("000?"), MustParse("000?"))
	//
	if err != nil {
		t.Fatal(err)
	} else if product.String() != "000?" {
		t.Errorf("expected 000?, got %s", product)
	}
}

func Test_Mul_4(t *testing.T) {
	checkSound(t, Mul, ExactMul, 2)
	checkSound(t, Mul, ExactMul, 3)
}

func Test_Mulhs_1(t *testing.T) {
	// At width 1 the signed product of 0 and -1 never reaches the high bit,
	// though the closed form only establishes this when an operand is known
	// zero or both are constant.
	tests := []struct {
		lhs, rhs string
		expected string
	}{
		{"0", "0", "0"},
		{"0", "1", "0"},
		{"0", "?", "0"},
		{"1", "0", "0"},
		{"1", "1", "0"},
		{"1", "?", "?"},
		{"?", "0", "0"},
		{"?", "1", "?"},
		{"?", "?", "?"},
	}
	//
	for _, tt := range tests {
		r, err := Mulhs(MustParse(tt.lhs), MustParse(tt.rhs))
		//
		if err != nil {
			t.Fatal(err)
		} else if r.String() != tt.expected {
			t.Errorf("mulhs(%s, %s): expected %s, got %s", tt.lhs, tt.rhs, tt.expected, r)
		}
	}
}

func Test_Mulhs_2(t *testing.T) {
	checkSound(t, Mulhs, ExactMulhs, 2)
	checkSound(t, Mulhs, ExactMulhs, 3)
}

func Test_Mulhs_3(t *testing.T) {
	checkTransfer(t, Mulhs, "1?0", "1?")
	// Widths beyond half the maximum cannot be widened.
	if _, err := Mulhs(AllUnknown(33), AllUnknown(33)); err == nil {
		t.Error("expected width error")
	}
}

func Test_Mulhu_1(t *testing.T) {
	// 3 * 3 == 9, whose high two bits are 10.
	r, err := Mulhu(MustParse("11"), MustParse("11"))
	//
	if err != nil {
		t.Fatal(err)
	} else if r.String() != "10" {
		t.Errorf("expected 10, got %s", r)
	}
}

func Test_Mulhu_2(t *testing.T) {
	checkSound(t, Mulhu, ExactMulhu, 2)
	checkSound(t, Mulhu, ExactMulhu, 3)
}

func Test_Mulhu_3(t *testing.T) {
	checkTransfer(t, Mulhu, "1?0", "1?")
	//
	if _, err := Mulhu(AllUnknown(33), AllUnknown(33)); err == nil {
		t.Error("expected width error")
	}
}

// ===================================================================
// Helpers
// ===================================================================

// CheckTransfer ensures a transfer function rejects operands of differing
// widths.
func checkTransfer(t *testing.T, fn transferFn, lhs string, rhs string) {
	t.Helper()
	//
	if _, err := fn(MustParse(lhs), MustParse(rhs)); err == nil {
		t.Errorf("expected width mismatch error for %s and %s", lhs, rhs)
	}
}

// CheckExact ensures a transfer function computes the most precise sound
// abstraction at a given width, by brute force over all abstract pairs.
func checkExact(t *testing.T, fn transferFn, exact exactFn, width uint) {
	t.Helper()
	//
	states := allStates(width)
	//
	for _, lhs := range states {
		for _, rhs := range states {
			mine, err := fn(lhs, rhs)
			if err != nil {
				t.Fatal(err)
			}
			//
			best := bruteForce(t, exact, lhs, rhs)
			//
			if !mine.Equals(best) {
				t.Errorf("width %d: %s op %s: expected %s, got %s", width, lhs, rhs, best, mine)
			}
		}
	}
}

// CheckSound ensures a transfer function claims no more knowledge than brute
// force establishes, at a given width, over all abstract pairs.
func checkSound(t *testing.T, fn transferFn, exact exactFn, width uint) {
	t.Helper()
	//
	states := allStates(width)
	//
	for _, lhs := range states {
		for _, rhs := range states {
			mine, err := fn(lhs, rhs)
			if err != nil {
				t.Fatal(err)
			}
			//
			best := bruteForce(t, exact, lhs, rhs)
			// Every claimed bit must be established by brute force.
			if mine.Zeros()&^best.Zeros() != 0 || mine.Ones()&^best.Ones() != 0 {
				t.Errorf("width %d: %s op %s: unsound %s (exact %s)", width, lhs, rhs, mine, best)
			}
		}
	}
}

// BruteForce determines the most precise sound abstraction of an operator
// applied to a pair of abstract words, by concretizing both sides, applying
// the operator pointwise, and abstracting the results.
func bruteForce(t *testing.T, exact exactFn, lhs KnownBits, rhs KnownBits) KnownBits {
	t.Helper()
	//
	xs, err := lhs.Concretize()
	if err != nil {
		t.Fatal(err)
	}
	//
	ys, err := rhs.Concretize()
	if err != nil {
		t.Fatal(err)
	}
	//
	results := make([]uint64, 0, len(xs)*len(ys))
	//
	for _, x := range xs {
		for _, y := range ys {
			results = append(results, exact(x, y, lhs.Width()))
		}
	}
	//
	kb, err := Abstract(lhs.Width(), results)
	if err != nil {
		t.Fatal(err)
	}
	//
	return kb
}

// AllStates returns every abstract word of a given width.
func allStates(width uint) []KnownBits {
	var (
		count = 1
		bs    = make([]Bit, width)
	)
	//
	for i := uint(0); i < width; i++ {
		count *= 3
	}
	//
	states := make([]KnownBits, 0, count)
	//
	for i := 0; i < count; i++ {
		n := i
		//
		for j := uint(0); j < width; j++ {
			bs[j] = Bit(n % 3)
			n /= 3
		}
		//
		states = append(states, FromBits(bs))
	}
	//
	return states
}
