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

// Package eval evaluates closed-form transfer functions against exhaustive
// evaluation over the entire abstract domain of a given width.  Since
// exhaustive evaluation is optimal by construction, this measures how much
// precision a closed form gives away, and flags outright disagreements.
package eval

import (
	"github.com/knownbits-dev/go-knownbits/pkg/knownbits"
)

// ExactFn defines the concrete semantics of a binary operator over width-bit
// machine words.
type ExactFn = func(uint64, uint64, uint) uint64

// TransferFn defines a transfer function which pushes abstract words through
// a binary operator.
type TransferFn = func(knownbits.KnownBits, knownbits.KnownBits) (knownbits.KnownBits, error)

// Operation packages the concrete semantics of a binary operator together
// with its closed-form transfer function.
type Operation struct {
	// Name of the operator in question
	Name string
	// Largest operand width supported by the closed form.
	MaxWidth uint
	// Concrete semantics of the operator.
	Exact ExactFn
	// Closed-form transfer function of the operator.
	ClosedForm TransferFn
}

var operations []Operation = []Operation{
	{"and", knownbits.MaxWidth, knownbits.ExactAnd, knownbits.And},
	{"or", knownbits.MaxWidth, knownbits.ExactOr, knownbits.Or},
	{"xor", knownbits.MaxWidth, knownbits.ExactXor, knownbits.Xor},
	{"mul", knownbits.MaxWidth, knownbits.ExactMul, knownbits.Mul},
	{"mulhs", knownbits.MulhsMaxWidth, knownbits.ExactMulhs, knownbits.Mulhs},
	{"mulhu", knownbits.MulhsMaxWidth, knownbits.ExactMulhu, knownbits.Mulhu},
}

// LookupOperation returns the operation of a given name, if one exists.
func LookupOperation(name string) (Operation, bool) {
	for _, op := range operations {
		if op.Name == name {
			return op, true
		}
	}
	//
	return Operation{}, false
}

// Operations returns every supported operation, in a fixed order.
func Operations() []Operation {
	return operations
}
