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

	"github.com/knownbits-dev/go-knownbits/pkg/eval"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var enumCmd = &cobra.Command{
	Use:   "enum [flags] width",
	Short: "enumerate the abstract words of a given width.",
	Long: `Enumerate every abstract word of a given width in canonical order, printing
	 each word most-significant bit first over the digits 0, 1 and ?, along with
	 its position in the enumeration.`,
	Run: func(cmd *cobra.Command, args []string) {
		if len(args) != 1 {
			fmt.Println(cmd.UsageString())
			os.Exit(1)
		}
		// Configure log level
		if GetFlag(cmd, "verbose") {
			log.SetLevel(log.DebugLevel)
		}
		//
		width := parseWidth(args[0])
		//
		if GetFlag(cmd, "verify") {
			verifyEnumeration(width)
		} else {
			enumerateWidth(width, GetUint(cmd, "limit"))
		}
	},
}

// Audit a full enumeration of the given width, confirming every abstract word
// is visited exactly once at its canonical position.
func verifyEnumeration(width uint) {
	if err := eval.VerifyEnumeration(width); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
	//
	fmt.Printf("verified enumeration of width %d\n", width)
}

// List (a prefix of) the abstract words of the given width.
func enumerateWidth(width uint, limit uint) {
	iter, err := eval.NewStateEnumerator(width)
	//
	if err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
	// Total count, before any words are consumed.
	count := iter.Count()
	//
	for index := uint(0); iter.HasNext(); index++ {
		if limit != 0 && index == limit {
			fmt.Printf("... (%d words omitted)\n", count-limit)
			return
		}
		//
		fmt.Printf("%d: %s\n", index, iter.Next())
	}
}

func init() {
	rootCmd.AddCommand(enumCmd)
	enumCmd.Flags().Uint("limit", 0, "list only the first n words (0 = all words)")
	enumCmd.Flags().Bool("verify", false, "audit the enumeration instead of listing it")
}
