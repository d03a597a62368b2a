// Copyright 2025 go-highway Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/ajroetker/go-floatbits/float/math"
)

func newAtanCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "atan VALUE...",
		Short: "Print the float32 arctangent of each value",
		Example: `  atanf atan 1 -inf nan
  atanf atan 0x4c800000`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			values, err := parseValues(args)
			if err != nil {
				return err
			}

			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 8, 2, ' ', 0)
			fmt.Fprintln(tw, "x\tatan(x)")
			for _, x := range values {
				fmt.Fprintf(tw, "%s\t%s\n", formatValue(x), formatValue(math.Atan(x)))
			}
			return tw.Flush()
		},
	}
}
