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

// Package knownbits provides a three-valued abstraction of machine words,
// where every bit of a word is either known to be zero, known to be one, or
// unknown.  Such abstractions arise in dataflow analysis, where they
// over-approximate the set of values a word can hold at a given program
// point.  The package provides both the abstraction itself, and transfer
// functions which push abstractions through arithmetic and bitwise
// operators.
package knownbits

import (
	"fmt"
	"math/bits"
	"strings"
)

// MaxWidth determines the largest supported bitwidth for an abstract word.
const MaxWidth = uint(64)

// Bit describes what is known about a single bit position.
type Bit uint8

const (
	// Zero indicates a bit known to hold 0.
	Zero Bit = iota
	// One indicates a bit known to hold 1.
	One
	// Unknown indicates a bit which can hold either value.
	Unknown
)

// String returns a human-readable rendition of this bit.
func (b Bit) String() string {
	switch b {
	case Zero:
		return "0"
	case One:
		return "1"
	case Unknown:
		return "?"
	}
	//
	panic(fmt.Sprintf("invalid bit %d", uint8(b)))
}

// KnownBits abstracts a word of a given bitwidth, where each bit position is
// either known to hold zero, known to hold one, or unknown.  Internally, two
// disjoint masks identify the known-zero and known-one positions; positions
// in neither mask are unknown.
type KnownBits struct {
	// Bitwidth of the word being abstracted (at most 64).
	width uint
	// Mask of bits known to be zero.
	zeros uint64
	// Mask of bits known to be one.
	ones uint64
}

// New constructs an abstract word of the given width from masks identifying
// its known-zero and known-one positions.  This fails if the width is
// unsupported, either mask mentions a bit beyond the width, or the masks
// claim some bit is both zero and one.
func New(width uint, zeros uint64, ones uint64) (KnownBits, error) {
	switch {
	case width == 0 || width > MaxWidth:
		return KnownBits{}, fmt.Errorf("unsupported width %d (expected 1..%d)", width, MaxWidth)
	case zeros&^mask(width) != 0:
		return KnownBits{}, fmt.Errorf("zeros mask 0x%x exceeds width %d", zeros, width)
	case ones&^mask(width) != 0:
		return KnownBits{}, fmt.Errorf("ones mask 0x%x exceeds width %d", ones, width)
	case zeros&ones != 0:
		return KnownBits{}, fmt.Errorf("conflicting masks (bits 0b%b claimed both zero and one)", zeros&ones)
	}
	//
	return KnownBits{width, zeros, ones}, nil
}

// AllUnknown constructs an abstract word of the given width about which
// nothing is known.
func AllUnknown(width uint) KnownBits {
	checkWidth(width)
	//
	return KnownBits{width, 0, 0}
}

// Constant constructs an abstract word of the given width which is known
// exactly (i.e. every bit of the given value is known).
func Constant(width uint, value uint64) KnownBits {
	checkWidth(width)
	//
	if value&^mask(width) != 0 {
		panic(fmt.Sprintf("value 0x%x exceeds width %d", value, width))
	}
	//
	return KnownBits{width, mask(width) &^ value, value}
}

// FromBits constructs an abstract word from individual bits, where the first
// bit given is the least significant.
func FromBits(bs []Bit) KnownBits {
	checkWidth(uint(len(bs)))
	//
	var zeros, ones uint64
	//
	for i, b := range bs {
		switch b {
		case Zero:
			zeros |= uint64(1) << i
		case One:
			ones |= uint64(1) << i
		}
	}
	//
	return KnownBits{uint(len(bs)), zeros, ones}
}

// Parse constructs an abstract word from a string of '0', '1' and '?'
// characters, where the first character is the most significant.  For
// example, "1?0" denotes a 3-bit word whose top bit is one, whose middle bit
// is unknown and whose bottom bit is zero.
func Parse(str string) (KnownBits, error) {
	var (
		width = uint(len(str))
		empty KnownBits
	)
	//
	if width == 0 || width > MaxWidth {
		return empty, fmt.Errorf("unsupported width %d (expected 1..%d)", width, MaxWidth)
	}
	//
	var zeros, ones uint64
	//
	for i := uint(0); i < width; i++ {
		bit := uint64(1) << (width - 1 - i)
		//
		switch str[i] {
		case '0':
			zeros |= bit
		case '1':
			ones |= bit
		case '?':
			// unknown
		default:
			return empty, fmt.Errorf("invalid character %q in pattern %q", str[i], str)
		}
	}
	//
	return KnownBits{width, zeros, ones}, nil
}

// MustParse is just like Parse, except that it panics when parsing fails.
func MustParse(str string) KnownBits {
	kb, err := Parse(str)
	//
	if err != nil {
		panic(err.Error())
	}
	//
	return kb
}

// Width returns the bitwidth of the word being abstracted.
func (p KnownBits) Width() uint {
	return p.width
}

// Zeros returns the mask of bits known to be zero.
func (p KnownBits) Zeros() uint64 {
	return p.zeros
}

// Ones returns the mask of bits known to be one.
func (p KnownBits) Ones() uint64 {
	return p.ones
}

// Unknowns returns the mask of bits about which nothing is known.
func (p KnownBits) Unknowns() uint64 {
	return mask(p.width) &^ (p.zeros | p.ones)
}

// Bit returns what is known about the given bit position.
func (p KnownBits) Bit(index uint) Bit {
	if index >= p.width {
		panic(fmt.Sprintf("bit %d out-of-bounds for width %d", index, p.width))
	}
	//
	switch bit := uint64(1) << index; {
	case p.zeros&bit != 0:
		return Zero
	case p.ones&bit != 0:
		return One
	default:
		return Unknown
	}
}

// IsConstant checks whether every bit of this word is known, in which case it
// abstracts exactly one value.
func (p KnownBits) IsConstant() bool {
	return p.zeros|p.ones == mask(p.width)
}

// CountKnown returns the number of bit positions whose value is known.
func (p KnownBits) CountKnown() uint {
	return uint(bits.OnesCount64(p.zeros | p.ones))
}

// CountUnknown returns the number of bit positions whose value is unknown.
func (p KnownBits) CountUnknown() uint {
	return p.width - p.CountKnown()
}

// UnsignedMax returns the largest value this word can hold, when interpreted
// as unsigned (i.e. with every unknown bit set).
func (p KnownBits) UnsignedMax() uint64 {
	return mask(p.width) &^ p.zeros
}

// UnsignedMin returns the smallest value this word can hold, when interpreted
// as unsigned (i.e. with every unknown bit clear).
func (p KnownBits) UnsignedMin() uint64 {
	return p.ones
}

// Equals checks whether two abstractions are identical (same width, and same
// knowledge at every bit position).
func (p KnownBits) Equals(other KnownBits) bool {
	return p.width == other.width && p.zeros == other.zeros && p.ones == other.ones
}

// SignExtend widens this word to a given bitwidth, replicating whatever is
// known about the sign bit into the new positions.
func (p KnownBits) SignExtend(nwidth uint) KnownBits {
	var (
		ext = p.extension(nwidth)
		top = uint64(1) << (p.width - 1)
		kb  = KnownBits{nwidth, p.zeros, p.ones}
	)
	//
	switch {
	case p.zeros&top != 0:
		kb.zeros |= ext
	case p.ones&top != 0:
		kb.ones |= ext
	}
	// Sign bit unknown, hence extended bits unknown.
	return kb
}

// ZeroExtend widens this word to a given bitwidth, with every new position
// known to be zero.
func (p KnownBits) ZeroExtend(nwidth uint) KnownBits {
	ext := p.extension(nwidth)
	//
	return KnownBits{nwidth, p.zeros | ext, p.ones}
}

// Extract returns the abstraction of a bitrange [lsb .. lsb+count) of this
// word, as a word of width count.
func (p KnownBits) Extract(lsb uint, count uint) KnownBits {
	if count == 0 || lsb+count > p.width {
		panic(fmt.Sprintf("bitrange [%d..%d) out-of-bounds for width %d", lsb, lsb+count, p.width))
	}
	//
	m := mask(count)
	//
	return KnownBits{count, (p.zeros >> lsb) & m, (p.ones >> lsb) & m}
}

// String returns a rendition of this word as a string of '0', '1' and '?'
// characters, most significant first (the inverse of Parse).
func (p KnownBits) String() string {
	var builder strings.Builder
	//
	for i := p.width; i > 0; i-- {
		builder.WriteString(p.Bit(i - 1).String())
	}
	//
	return builder.String()
}

// Extension determines the mask of new bit positions arising when this word
// is widened to a given bitwidth.
func (p KnownBits) extension(nwidth uint) uint64 {
	if nwidth < p.width || nwidth > MaxWidth {
		panic(fmt.Sprintf("invalid extension of width %d to width %d", p.width, nwidth))
	}
	//
	return mask(nwidth) &^ mask(p.width)
}

// Mask returns the set of all bits within a given width.
func mask(width uint) uint64 {
	return ^uint64(0) >> (64 - width)
}

// LowMask returns the set of the n least significant bits, where n can be
// anywhere between 0 and 64.
func lowMask(n uint) uint64 {
	if n == 0 {
		return 0
	}
	//
	return ^uint64(0) >> (64 - n)
}

// CheckWidth ensures a given bitwidth is supported, and panics otherwise.
func checkWidth(width uint) {
	if width == 0 || width > MaxWidth {
		panic(fmt.Sprintf("unsupported width %d (expected 1..%d)", width, MaxWidth))
	}
}
