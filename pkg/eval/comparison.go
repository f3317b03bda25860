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
	"time"

	"github.com/knownbits-dev/go-knownbits/pkg/knownbits"
	"github.com/knownbits-dev/go-knownbits/pkg/util"
	"github.com/knownbits-dev/go-knownbits/pkg/util/collection/enum"
	"github.com/schollz/progressbar/v3"
	log "github.com/sirupsen/logrus"
)

// Verdict classifies the outcome of evaluating a single pair of abstract
// operands under both strategies.
type Verdict uint

const (
	// Equal indicates both strategies produced identical abstractions.
	Equal Verdict = iota
	// ExhaustiveMorePrecise indicates the closed form gave away precision.
	ExhaustiveMorePrecise
	// ClosedFormMorePrecise indicates the closed form claimed strictly more
	// knowledge than exhaustive evaluation.  Since the latter is optimal,
	// this signals an unsound closed form.
	ClosedFormMorePrecise
	// Incomparable indicates the strategies made contradictory claims about
	// some bit position.  This likewise signals an unsound closed form.
	Incomparable
	// NumVerdicts counts the distinct verdicts.
	NumVerdicts = uint(4)
)

// String returns a human-readable rendition of this verdict.
func (v Verdict) String() string {
	switch v {
	case Equal:
		return "equal"
	case ExhaustiveMorePrecise:
		return "exhaustive more precise"
	case ClosedFormMorePrecise:
		return "closed form more precise"
	case Incomparable:
		return "incomparable"
	}
	//
	panic(fmt.Sprintf("invalid verdict %d", uint(v)))
}

// Classify compares the abstraction computed exhaustively against that of a
// closed form.  Contradictory claims about any bit position render the two
// incomparable; otherwise, they are ranked by how many bits each knows.
func Classify(exhaustive knownbits.KnownBits, closed knownbits.KnownBits) Verdict {
	conflicts := (exhaustive.Ones() & closed.Zeros()) | (exhaustive.Zeros() & closed.Ones())
	//
	switch {
	case conflicts != 0:
		return Incomparable
	case exhaustive.CountKnown() > closed.CountKnown():
		return ExhaustiveMorePrecise
	case exhaustive.CountKnown() < closed.CountKnown():
		return ClosedFormMorePrecise
	default:
		return Equal
	}
}

// Comparison determines what to compare: a given operation, at a given
// operand width, over either every pair of abstract words or a sample
// thereof.
type Comparison struct {
	// Operation under comparison.
	Operation Operation
	// Width of the abstract operands.
	Width uint
	// Number of operand pairs to sample, with zero meaning all of them.
	Samples uint
	// Progress enables a terminal progress bar whilst comparing.
	Progress bool
}

// Outcome tallies the verdicts across every pair compared, along with the
// time spent in each strategy.
type Outcome struct {
	// Operation compared.
	Operation string
	// Width of the abstract operands compared.
	Width uint
	// Number of pairs compared.
	Pairs uint
	// Verdict tallies, indexed by verdict.
	Tallies [NumVerdicts]uint
	// Cumulative time spent evaluating exhaustively.
	ExhaustiveTime time.Duration
	// Cumulative time spent in the closed form.
	ClosedFormTime time.Duration
}

// Count returns the number of pairs which received a given verdict.
func (p *Outcome) Count(verdict Verdict) uint {
	return p.Tallies[verdict]
}

// Sound checks whether the closed form disagreed with exhaustive evaluation
// on any pair.
func (p *Outcome) Sound() bool {
	return p.Tallies[ClosedFormMorePrecise] == 0 && p.Tallies[Incomparable] == 0
}

// Run works through (a sample of) all pairs of abstract words of the
// configured width, evaluating the operation on each pair under both
// strategies and tallying the verdicts.
func (p *Comparison) Run() (*Outcome, error) {
	var (
		op  = p.Operation
		bar *progressbar.ProgressBar
	)
	//
	if p.Width == 0 || p.Width > op.MaxWidth {
		return nil, fmt.Errorf("%s supports widths 1..%d (got %d)", op.Name, op.MaxWidth, p.Width)
	}
	//
	states, err := EnumerateStates(p.Width)
	if err != nil {
		return nil, err
	}
	//
	pairs, err := enum.Pairs(states)
	if err != nil {
		return nil, err
	}
	//
	var iter enum.Enumerator[util.Pair[knownbits.KnownBits, knownbits.KnownBits]] = pairs
	//
	if p.Samples > 0 {
		iter = enum.Sample(p.Samples, iter)
	}
	//
	log.Debugf("comparing %s at width %d over %d pairs", op.Name, p.Width, iter.Count())
	//
	if p.Progress {
		bar = progressbar.Default(int64(iter.Count()), "comparing")
	}
	//
	outcome := &Outcome{Operation: op.Name, Width: p.Width}
	//
	for iter.HasNext() {
		pair := iter.Next()
		//
		if err := p.compare(outcome, pair.Left, pair.Right); err != nil {
			return nil, err
		}
		//
		if bar != nil {
			_ = bar.Add(1)
		}
	}
	//
	if bar != nil {
		_ = bar.Finish()
	}
	//
	return outcome, nil
}

// Compare evaluates the operation on a single pair of abstract operands
// under both strategies, timing each, and tallies the verdict.
func (p *Comparison) compare(outcome *Outcome, lhs knownbits.KnownBits, rhs knownbits.KnownBits) error {
	op := p.Operation
	//
	start := time.Now()
	exhaustive, err := Exhaustive(op.Exact, lhs, rhs)
	exhaustiveTime := time.Since(start)
	//
	if err != nil {
		return err
	}
	//
	start = time.Now()
	closed, err := op.ClosedForm(lhs, rhs)
	closedTime := time.Since(start)
	//
	if err != nil {
		return err
	}
	// Closed forms are black boxes, so check their output shape.
	if closed.Width() != p.Width {
		return fmt.Errorf("%s closed form produced width %d (expected %d)", op.Name, closed.Width(), p.Width)
	}
	//
	verdict := Classify(exhaustive, closed)
	//
	if verdict == Incomparable {
		log.Debugf("incomparable abstractions for %s %s %s: exhaustive %s vs closed form %s",
			lhs, op.Name, rhs, exhaustive, closed)
	}
	//
	outcome.Pairs++
	outcome.Tallies[verdict]++
	outcome.ExhaustiveTime += exhaustiveTime
	outcome.ClosedFormTime += closedTime
	//
	return nil
}
