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

	"github.com/knownbits-dev/go-knownbits/pkg/util/termio"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// PrintOutcome renders a comparison outcome on the terminal: one row per
// verdict with its tally and share, followed by a timing summary.  Rows for
// unsound verdicts are highlighted (when escapes are enabled).
func PrintOutcome(outcome *Outcome, ansiEscapes bool) {
	var (
		printer = message.NewPrinter(language.English)
		tbl     = termio.NewTablePrinter(3, NumVerdicts+2)
		red     = termio.NewAnsiEscape().FgColour(termio.TERM_RED).Build()
	)
	//
	tbl.AnsiEscapes(ansiEscapes)
	tbl.SetRow(0, "verdict", "pairs", "share")
	tbl.SetRowEscape(0, termio.BoldAnsiEscape().Build())
	//
	for v := Equal; uint(v) < NumVerdicts; v++ {
		count := outcome.Count(v)
		tbl.SetRow(uint(v)+1, v.String(), printer.Sprintf("%d", count), share(count, outcome.Pairs))
		// Highlight evidence of unsoundness.
		if count > 0 && (v == ClosedFormMorePrecise || v == Incomparable) {
			tbl.SetRowEscape(uint(v)+1, red)
		}
	}
	//
	tbl.SetRow(NumVerdicts+1, "total", printer.Sprintf("%d", outcome.Pairs), share(outcome.Pairs, outcome.Pairs))
	//
	fmt.Printf("Comparison of %s at width %d:\n", outcome.Operation, outcome.Width)
	tbl.Print()
	//
	fmt.Printf("Exhaustive evaluation took %s (%s/pair), closed form %s (%s/pair).\n",
		outcome.ExhaustiveTime.Round(time.Microsecond), average(outcome.ExhaustiveTime, outcome.Pairs),
		outcome.ClosedFormTime.Round(time.Microsecond), average(outcome.ClosedFormTime, outcome.Pairs))
}

// Share renders the proportion of pairs receiving some verdict.
func share(count uint, pairs uint) string {
	if pairs == 0 {
		return "-"
	}
	//
	return fmt.Sprintf("%.2f%%", 100*float64(count)/float64(pairs))
}

// Average renders the time spent per pair under some strategy.
func average(total time.Duration, pairs uint) string {
	if pairs == 0 {
		return "-"
	}
	//
	return (total / time.Duration(pairs)).String()
}
