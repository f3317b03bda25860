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
	"errors"
	"fmt"

	"github.com/goccy/go-yaml"
)

// Plan describes a batch of comparisons to run back-to-back, as read from a
// YAML configuration file.
type Plan struct {
	Comparisons []PlanEntry `yaml:"comparisons"`
}

// PlanEntry describes a single comparison within a plan.
type PlanEntry struct {
	// Operation to compare.
	Operation string `yaml:"operation"`
	// Width of the abstract operands to compare at.
	Width uint `yaml:"width"`
	// Number of operand pairs to sample, with zero meaning all of them.
	Samples uint `yaml:"samples"`
}

// ReadPlan parses and validates a batch plan held in YAML.
func ReadPlan(data []byte) (*Plan, error) {
	var plan Plan
	//
	if err := yaml.Unmarshal(data, &plan); err != nil {
		return nil, err
	} else if len(plan.Comparisons) == 0 {
		return nil, errors.New("plan contains no comparisons")
	}
	//
	for i, entry := range plan.Comparisons {
		op, ok := LookupOperation(entry.Operation)
		//
		if !ok {
			return nil, fmt.Errorf("comparison %d names unknown operation %q", i, entry.Operation)
		} else if entry.Width == 0 || entry.Width > op.MaxWidth {
			return nil, fmt.Errorf("comparison %d: %s supports widths 1..%d (got %d)",
				i, op.Name, op.MaxWidth, entry.Width)
		}
	}
	//
	return &plan, nil
}

// Comparison instantiates the comparison described by a plan entry.
func (p *PlanEntry) Comparison(progress bool) Comparison {
	// Validated on read, hence cannot fail.
	op, _ := LookupOperation(p.Operation)
	//
	return Comparison{
		Operation: op,
		Width:     p.Width,
		Samples:   p.Samples,
		Progress:  progress,
	}
}
