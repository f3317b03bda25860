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
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		name       string
		exhaustive string
		closed     string
		verdict    Verdict
	}{
		{"identical", "?1", "?1", Equal},
		{"exhaustive knows more", "01", "0?", ExhaustiveMorePrecise},
		{"closed form knows more", "0?", "01", ClosedFormMorePrecise},
		{"contradiction", "01", "00", Incomparable},
		{"contradiction outweighs precision", "11", "0?", Incomparable},
	}
	//
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			verdict := Classify(knownbits.MustParse(tt.exhaustive), knownbits.MustParse(tt.closed))
			assert.Equal(t, tt.verdict, verdict)
		})
	}
}

// At width 1 the signed high product is always zero, which the closed form
// only establishes for six of the nine operand pairs.
func TestCompareMulhsWidth1(t *testing.T) {
	outcome := runComparison(t, "mulhs", 1, 0)
	//
	assert.Equal(t, uint(9), outcome.Pairs)
	assert.Equal(t, uint(6), outcome.Count(Equal))
	assert.Equal(t, uint(3), outcome.Count(ExhaustiveMorePrecise))
	assert.Equal(t, uint(0), outcome.Count(ClosedFormMorePrecise))
	assert.Equal(t, uint(0), outcome.Count(Incomparable))
	assert.True(t, outcome.Sound())
}

// Bitwise transfer functions are optimal, hence always equal to exhaustive
// evaluation.
func TestCompareBitwiseOptimal(t *testing.T) {
	for _, name := range []string{"and", "or", "xor"} {
		outcome := runComparison(t, name, 2, 0)
		//
		assert.Equal(t, uint(81), outcome.Pairs)
		assert.Equal(t, uint(81), outcome.Count(Equal), name)
		assert.True(t, outcome.Sound())
	}
}

// The multiplicative closed forms remain sound at small widths, though they
// give away precision on some pairs.
func TestCompareMultiplicativeSound(t *testing.T) {
	for _, name := range []string{"mul", "mulhs", "mulhu"} {
		for width := uint(1); width <= 3; width++ {
			outcome := runComparison(t, name, width, 0)
			//
			assert.True(t, outcome.Sound(), "%s at width %d", name, width)
		}
	}
}

func TestCompareSampled(t *testing.T) {
	outcome := runComparison(t, "xor", 2, 10)
	// Exactly ten of the 81 pairs are visited.
	assert.Equal(t, uint(10), outcome.Pairs)
	assert.Equal(t, uint(10), outcome.Count(Equal))
	// Sampling beyond the space visits everything.
	outcome = runComparison(t, "xor", 1, 1000)
	assert.Equal(t, uint(9), outcome.Pairs)
}

// Substituting exhaustive evaluation as its own closed form must never
// register a difference.
func TestCompareExhaustiveSelf(t *testing.T) {
	self := Operation{
		Name:     "mulhs",
		MaxWidth: knownbits.MulhsMaxWidth,
		Exact:    knownbits.ExactMulhs,
		ClosedForm: func(lhs knownbits.KnownBits, rhs knownbits.KnownBits) (knownbits.KnownBits, error) {
			return Exhaustive(knownbits.ExactMulhs, lhs, rhs)
		},
	}
	//
	comparison := &Comparison{Operation: self, Width: 1}
	//
	outcome, err := comparison.Run()
	require.NoError(t, err)
	//
	assert.Equal(t, uint(9), outcome.Pairs)
	assert.Equal(t, uint(9), outcome.Count(Equal))
	assert.Equal(t, uint(0), outcome.Count(ExhaustiveMorePrecise))
	assert.Equal(t, uint(0), outcome.Count(ClosedFormMorePrecise))
	assert.Equal(t, uint(0), outcome.Count(Incomparable))
}

// A closed form producing the wrong width indicates broken wiring, not a
// data finding, and aborts the run.
func TestCompareWrongWidth(t *testing.T) {
	wrong := Operation{
		Name:     "wrong",
		MaxWidth: knownbits.MaxWidth,
		Exact:    knownbits.ExactAnd,
		ClosedForm: func(lhs knownbits.KnownBits, rhs knownbits.KnownBits) (knownbits.KnownBits, error) {
			return knownbits.AllUnknown(lhs.Width() + 1), nil
		},
	}
	//
	comparison := &Comparison{Operation: wrong, Width: 2}
	//
	if _, err := comparison.Run(); err == nil {
		t.Error("expected width mismatch error")
	}
}

// A deliberately broken closed form (which just returns its left operand)
// trips every verdict at width 1.
func TestCompareBrokenClosedForm(t *testing.T) {
	broken := Operation{
		Name:     "broken",
		MaxWidth: knownbits.MaxWidth,
		Exact:    knownbits.ExactAnd,
		ClosedForm: func(lhs knownbits.KnownBits, rhs knownbits.KnownBits) (knownbits.KnownBits, error) {
			return lhs, nil
		},
	}
	//
	comparison := &Comparison{Operation: broken, Width: 1}
	//
	outcome, err := comparison.Run()
	require.NoError(t, err)
	//
	assert.Equal(t, uint(9), outcome.Pairs)
	assert.Equal(t, uint(6), outcome.Count(Equal))
	assert.Equal(t, uint(1), outcome.Count(ExhaustiveMorePrecise))
	assert.Equal(t, uint(1), outcome.Count(ClosedFormMorePrecise))
	assert.Equal(t, uint(1), outcome.Count(Incomparable))
	assert.False(t, outcome.Sound())
}

func TestCompareInvalidWidth(t *testing.T) {
	mulhs, ok := LookupOperation("mulhs")
	require.True(t, ok)
	//
	for _, width := range []uint{0, 33} {
		comparison := &Comparison{Operation: mulhs, Width: width}
		//
		if _, err := comparison.Run(); err == nil {
			t.Errorf("expected width error for %d", width)
		}
	}
}

func TestLookupOperation(t *testing.T) {
	for _, op := range Operations() {
		found, ok := LookupOperation(op.Name)
		require.True(t, ok)
		assert.Equal(t, op.Name, found.Name)
	}
	//
	_, ok := LookupOperation("udiv")
	assert.False(t, ok)
}

// ===================================================================
// Helpers
// ===================================================================

func runComparison(t *testing.T, name string, width uint, samples uint) *Outcome {
	t.Helper()
	//
	op, ok := LookupOperation(name)
	require.True(t, ok)
	//
	comparison := &Comparison{Operation: op, Width: width, Samples: samples}
	//
	outcome, err := comparison.Run()
	require.NoError(t, err)
	//
	return outcome
}
