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

import "math/bits"

// This file provides exact machine arithmetic over width-bit values, against
// which the transfer functions are measured.  Operands are expected to be
// confined to their width; results always are.

// ToSigned interprets a width-bit value as two's complement, returning the
// equivalent signed 64-bit value.
func ToSigned(value uint64, width uint) int64 {
	shift := 64 - width
	//
	return int64(value<<shift) >> shift
}

// ExactAnd returns the bitwise conjunction of two width-bit values.
func ExactAnd(x uint64, y uint64, width uint) uint64 {
	return x & y & mask(width)
}

// ExactOr returns the bitwise disjunction of two width-bit values.
func ExactOr(x uint64, y uint64, width uint) uint64 {
	return (x | y) & mask(width)
}

// ExactXor returns the bitwise exclusive disjunction of two width-bit values.
func ExactXor(x uint64, y uint64, width uint) uint64 {
	return (x ^ y) & mask(width)
}

// ExactMul returns the low width bits of the product of two width-bit values.
func ExactMul(x uint64, y uint64, width uint) uint64 {
	return (x * y) & mask(width)
}

// ExactMulhu returns the high width bits of the exact 2*width-bit product of
// two width-bit values, interpreted as unsigned.
func ExactMulhu(x uint64, y uint64, width uint) uint64 {
	hi, lo := bits.Mul64(x, y)
	//
	return extractHigh(hi, lo, width)
}

// ExactMulhs returns the high width bits of the exact 2*width-bit product of
// two width-bit values, interpreted as two's complement.
func ExactMulhs(x uint64, y uint64, width uint) uint64 {
	var (
		sx = uint64(ToSigned(x, width))
		sy = uint64(ToSigned(y, width))
	)
	// Unsigned product of the sign-extended operands.
	hi, lo := bits.Mul64(sx, sy)
	// Correct the high limb for the signed interpretation.
	if int64(sx) < 0 {
		hi -= sy
	}
	//
	if int64(sy) < 0 {
		hi -= sx
	}
	// Product now held in 128-bit two's complement.
	return extractHigh(hi, lo, width)
}

// ExtractHigh pulls bits [width .. 2*width) out of a 128-bit quantity given
// as two 64-bit limbs.
func extractHigh(hi uint64, lo uint64, width uint) uint64 {
	return ((lo >> width) | (hi << (64 - width))) & mask(width)
}
