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
	"fmt"
	"math/bits"
)

// MulhsMaxWidth determines the largest operand width for which the high
// multiplication transfer functions are available, since they work at twice
// the operand width internally.
const MulhsMaxWidth = MaxWidth / 2

// And returns an abstraction of bitwise conjunction: a result bit is known
// one when both operand bits are known one, and known zero when either
// operand bit is known zero.
func And(lhs KnownBits, rhs KnownBits) (KnownBits, error) {
	if err := checkWidths("and", lhs, rhs); err != nil {
		return KnownBits{}, err
	}
	//
	return KnownBits{lhs.width, lhs.zeros | rhs.zeros, lhs.ones & rhs.ones}, nil
}

// Or returns an abstraction of bitwise disjunction: a result bit is known
// one when either operand bit is known one, and known zero when both operand
// bits are known zero.
func Or(lhs KnownBits, rhs KnownBits) (KnownBits, error) {
	if err := checkWidths("or", lhs, rhs); err != nil {
		return KnownBits{}, err
	}
	//
	return KnownBits{lhs.width, lhs.zeros & rhs.zeros, lhs.ones | rhs.ones}, nil
}

// Xor returns an abstraction of bitwise exclusive disjunction: a result bit
// is known whenever both operand bits are known.
func Xor(lhs KnownBits, rhs KnownBits) (KnownBits, error) {
	if err := checkWidths("xor", lhs, rhs); err != nil {
		return KnownBits{}, err
	}
	//
	var (
		zeros = (lhs.zeros & rhs.zeros) | (lhs.ones & rhs.ones)
		ones  = (lhs.zeros & rhs.ones) | (lhs.ones & rhs.zeros)
	)
	//
	return KnownBits{lhs.width, zeros, ones}, nil
}

// Mul returns an abstraction of truncating multiplication.  High bits of the
// result are known zero whenever the product of the operands' unsigned
// maxima fits the width, whilst low bits follow from multiplying the known
// low bits of each operand.
func Mul(lhs KnownBits, rhs KnownBits) (KnownBits, error) {
	if err := checkWidths("mul", lhs, rhs); err != nil {
		return KnownBits{}, err
	}
	//
	var (
		width = lhs.width
		m     = mask(width)
		leadz = uint(0)
	)
	// Leading zeros of the result are valid only when the unsigned max
	// product does not overflow the width.
	hi, lo := bits.Mul64(lhs.UnsignedMax(), rhs.UnsignedMax())
	//
	if hi == 0 && lo&^m == 0 {
		leadz = uint(bits.LeadingZeros64(lo)) - (64 - width)
	}
	// Trailing bits of the result follow from the product of the operands'
	// known trailing bits, scaled by any known trailing zeros.  The known
	// zeros contribute in full, the remaining known bits only up to the
	// smaller operand.
	var (
		known0 = lhs.TrailingKnown()
		known1 = rhs.TrailingKnown()
		tz0    = lhs.MinTrailingZeros()
		tz1    = rhs.MinTrailingZeros()
	)
	//
	smallest := min(known0-tz0, known1-tz1)
	resultKnown := min(smallest+tz0+tz1, width)
	// Product of the known trailing bits, exact in its low resultKnown bits.
	bottom := (lhs.ones & lowMask(known0)) * (rhs.ones & lowMask(known1))
	//
	var (
		zeros = m &^ lowMask(width-leadz)
		ones  = bottom & lowMask(resultKnown)
	)
	//
	zeros |= ^bottom & lowMask(resultKnown)
	//
	return KnownBits{width, zeros, ones}, nil
}

// Mulhs returns an abstraction of signed high multiplication, working at
// twice the operand width.  Hence, it supports only operands of width at
// most MulhsMaxWidth.
func Mulhs(lhs KnownBits, rhs KnownBits) (KnownBits, error) {
	if err := checkWidths("mulhs", lhs, rhs); err != nil {
		return KnownBits{}, err
	} else if lhs.width > MulhsMaxWidth {
		return KnownBits{}, fmt.Errorf("mulhs supports widths up to %d (got %d)", MulhsMaxWidth, lhs.width)
	}
	//
	width := lhs.width
	//
	product, err := Mul(lhs.SignExtend(2*width), rhs.SignExtend(2*width))
	if err != nil {
		return KnownBits{}, err
	}
	//
	return product.Extract(width, width), nil
}

// Mulhu returns an abstraction of unsigned high multiplication, working at
// twice the operand width.  Hence, it supports only operands of width at
// most MulhsMaxWidth.
func Mulhu(lhs KnownBits, rhs KnownBits) (KnownBits, error) {
	if err := checkWidths("mulhu", lhs, rhs); err != nil {
		return KnownBits{}, err
	} else if lhs.width > MulhsMaxWidth {
		return KnownBits{}, fmt.Errorf("mulhu supports widths up to %d (got %d)", MulhsMaxWidth, lhs.width)
	}
	//
	width := lhs.width
	//
	product, err := Mul(lhs.ZeroExtend(2*width), rhs.ZeroExtend(2*width))
	if err != nil {
		return KnownBits{}, err
	}
	//
	return product.Extract(width, width), nil
}

// MinTrailingZeros returns the number of low bits known to be zero.
func (p KnownBits) MinTrailingZeros() uint {
	return uint(bits.TrailingZeros64(^p.zeros))
}

// TrailingKnown returns the number of low bits whose value is known.
func (p KnownBits) TrailingKnown() uint {
	return uint(bits.TrailingZeros64(^(p.zeros | p.ones)))
}

// CheckWidths ensures the operands of a transfer function abstract words of
// the same width.
func checkWidths(op string, lhs KnownBits, rhs KnownBits) error {
	if lhs.width != rhs.width {
		return fmt.Errorf("%s operands have mismatched widths (%d vs %d)", op, lhs.width, rhs.width)
	}
	//
	return nil
}
