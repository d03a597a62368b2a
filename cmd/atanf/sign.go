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

	"github.com/ajroetker/go-floatbits/float"
)

func newSignCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "sign VALUE...",
		Short: "Print the sign tests, Abs and FlipSign of each value",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			values, err := parseValues(args)
			if err != nil {
				return err
			}

			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 8, 2, ' ', 0)
			fmt.Fprintln(tw, "x\tnegative\tpositive\tabs\tflipsign")
			for _, x := range values {
				fmt.Fprintf(tw, "%s\t%t\t%t\t%s\t%s\n",
					formatValue(x),
					float.IsNegative(x),
					float.IsPositive(x),
					formatValue(float.Abs(x)),
					formatValue(float.FlipSign(x)))
			}
			return tw.Flush()
		},
	}
}

func newCopySignCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "copysign VALUE SIGN",
		Short: "Print VALUE with the sign of SIGN",
		Example: `  atanf copysign 2 -0
  atanf copysign 0x7fc00001 -1`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			values, err := parseValues(args)
			if err != nil {
				return err
			}
			v, s := values[0], values[1]
			_, err = fmt.Fprintf(cmd.OutOrStdout(), "copysign(%s, %s) = %s\n",
				formatValue(v), formatValue(s), formatValue(float.CopySign(v, s)))
			return err
		},
	}
}
