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
package cmd

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/knownbits-dev/go-knownbits/pkg/eval"
	"github.com/knownbits-dev/go-knownbits/pkg/util"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

// defaultWidth is substituted when the width argument does not parse as an
// unsigned integer.
const defaultWidth = uint(4)

var compareCmd = &cobra.Command{
	Use:   "compare [flags] operation width",
	Short: "compare a closed-form transfer function against exhaustive evaluation.",
	Long: `Compare the closed-form transfer function of a binary operation against the
	 exhaustive transfer function obtained by concretizing both operands, applying
	 the exact operation pairwise and abstracting the results.  Every pair of
	 abstract words of the given width is compared, unless a sample size is given.`,
	Run: func(cmd *cobra.Command, args []string) {
		var cfg compareConfig
		//
		cfg.samples = GetUint(cmd, "sample")
		cfg.progress = GetFlag(cmd, "progress")
		cfg.ansiEscapes = GetFlag(cmd, "ansi-escapes")
		cfg.stats = GetFlag(cmd, "stats")
		plan := GetString(cmd, "plan")
		// Configure log level.  Performance statistics are reported through
		// the debug log, hence stats implies verbosity.
		if GetFlag(cmd, "verbose") || cfg.stats {
			log.SetLevel(log.DebugLevel)
		}
		// Sanity check command-line arguments
		if plan != "" {
			if len(args) != 0 {
				fmt.Println(cmd.UsageString())
				os.Exit(1)
			}
			//
			comparePlan(plan, cfg)
		} else {
			if len(args) != 2 {
				fmt.Println(cmd.UsageString())
				os.Exit(1)
			}
			//
			compareOperation(args[0], args[1], cfg)
		}
	},
}

// compareConfig encapsulates the flag settings of the compare command.
type compareConfig struct {
	// Number of operand pairs to sample, with zero meaning all of them.
	samples uint
	// Specifies whether or not to show a progress bar whilst comparing.
	progress bool
	// Specifies whether or not ansi escapes may be used in the report.
	ansiEscapes bool
	// Specifies whether or not to log performance statistics.
	stats bool
}

// Compare a single operation at a single width, as named on the command line.
func compareOperation(name string, widthArg string, cfg compareConfig) {
	operation, ok := eval.LookupOperation(name)
	//
	if !ok {
		fmt.Printf("unknown operation \"%s\" (expected one of %s)\n", name, operationNames())
		os.Exit(2)
	}
	// An unparseable width falls back on a small default, rather than
	// erroring, which is more convenient during interactive exploration.
	width := defaultWidth
	//
	if w, err := strconv.ParseUint(widthArg, 10, 64); err == nil {
		width = uint(w)
	}
	//
	comparison := eval.Comparison{
		Operation: operation,
		Width:     width,
		Samples:   cfg.samples,
		Progress:  cfg.progress,
	}
	//
	runComparisons([]eval.Comparison{comparison}, cfg)
}

// Run every comparison described by a YAML plan file, reporting each outcome
// in turn.
func comparePlan(filename string, cfg compareConfig) {
	bytes, err := os.ReadFile(filename)
	if err != nil {
		fmt.Println(err)
		os.Exit(2)
	}
	//
	plan, err := eval.ReadPlan(bytes)
	if err != nil {
		fmt.Println(err)
		os.Exit(2)
	}
	//
	comparisons := make([]eval.Comparison, len(plan.Comparisons))
	for i, entry := range plan.Comparisons {
		comparisons[i] = entry.Comparison(cfg.progress)
	}
	//
	runComparisons(comparisons, cfg)
}

// Run a batch of comparisons back-to-back, reporting each outcome as it
// arrives.  Any failing comparison aborts the batch.
func runComparisons(comparisons []eval.Comparison, cfg compareConfig) {
	for i, comparison := range comparisons {
		stats := util.NewPerfStats()
		//
		outcome, err := comparison.Run()
		//
		if err != nil {
			fmt.Println(err)
			os.Exit(1)
		}
		//
		if cfg.stats {
			stats.Log("Comparing " + outcome.Operation)
		}
		// Separate batch reports with a blank line.
		if i != 0 {
			fmt.Println()
		}
		//
		eval.PrintOutcome(outcome, cfg.ansiEscapes)
	}
}

// Determine a readable list of the supported operations.
func operationNames() string {
	names := make([]string, 0)
	//
	for _, op := range eval.Operations() {
		names = append(names, op.Name)
	}
	//
	return strings.Join(names, ", ")
}

func init() {
	rootCmd.AddCommand(compareCmd)
	compareCmd.Flags().Uint("sample", 0, "compare only n operand pairs, sampled uniformly (0 = all pairs)")
	compareCmd.Flags().Bool("progress", false, "show a progress bar whilst comparing")
	compareCmd.Flags().Bool("ansi-escapes", term.IsTerminal(int(os.Stdout.Fd())),
		"specify whether to allow ANSI escapes or not (e.g. for colour reports)")
	compareCmd.Flags().Bool("stats", false, "log performance statistics for each comparison")
	compareCmd.Flags().String("plan", "", "run every comparison described by a YAML plan file")
}
