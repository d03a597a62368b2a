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
	"errors"

	"github.com/spf13/cobra"

	"github.com/ajroetker/go-floatbits/internal/verify"
)

// errVerifyFailed is returned when a sweep exceeds its budgets.
var errVerifyFailed = errors.New("verification failed")

func newVerifyCmd() *cobra.Command {
	cfg := verify.DefaultConfig()
	cfg.Workers = defaultWorkers()
	var (
		maxULP   uint32
		maxSteps uint64
	)

	cmd := &cobra.Command{
		Use:   "verify",
		Short: "Sweep Atan over a range of non-negative bit patterns",
		Long: `Sweep Atan over a range of non-negative bit patterns and their negations,
checking exact oddness, NaN propagation, monotonicity and the error against
the float64 arctangent rounded to float32.

The default range covers every non-negative pattern up to +Inf. Atan steps
down by one ULP where the large-argument path begins (0x4c800000), which the
default --max-steps budget allows.`,
		Example: `  atanf verify
  atanf verify --from 0.5 --to 2 --workers 4
  ATANF_WORKERS=2 atanf verify --from 0x3f000000 --to 0x40000000 --stride 7`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			r, err := verify.Atan(cmd.Context(), cfg)
			if err != nil {
				return err
			}
			if err := r.Fprint(cmd.OutOrStdout()); err != nil {
				return err
			}
			if r.Failed(maxULP, maxSteps) {
				return errVerifyFailed
			}
			return nil
		},
	}

	f := cmd.Flags()
	f.Var(bitsFlag{&cfg.From}, "from", "first pattern, as a value or 0x bits")
	f.Var(bitsFlag{&cfg.To}, "to", "last pattern, as a value or 0x bits")
	f.Uint32Var(&cfg.Stride, "stride", cfg.Stride, "distance between swept patterns")
	f.IntVarP(&cfg.Workers, "workers", "w", cfg.Workers, "parallel workers (default from "+workersEnv+" or the CPU count)")
	f.Uint32Var(&cfg.ChunkSize, "chunk", cfg.ChunkSize, "patterns per work item")
	f.Uint32Var(&maxULP, "max-ulp", 1, "largest allowed error in ULPs")
	f.Uint64Var(&maxSteps, "max-steps", 1, "largest allowed number of monotonic steps")
	return cmd
}
