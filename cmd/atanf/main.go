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

// Command atanf evaluates the float32 sign primitives and Atan on values or
// raw bit patterns, and verifies Atan over ranges of inputs.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"runtime"
	"strconv"

	"github.com/spf13/cobra"
)

// workersEnv overrides the default verify worker count.
const workersEnv = "ATANF_WORKERS"

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "atanf: %v\n", err)
		stop()
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "atanf",
		Short:         "Inspect float32 sign primitives and arctangent",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.AddCommand(
		newAtanCmd(),
		newSignCmd(),
		newCopySignCmd(),
		newVerifyCmd(),
		newCPUInfoCmd(),
	)
	return root
}

// defaultWorkers reads ATANF_WORKERS, falling back to the CPU count when it
// is unset or not a positive integer.
func defaultWorkers() int {
	if s := os.Getenv(workersEnv); s != "" {
		if n, err := strconv.Atoi(s); err == nil && n > 0 {
			return n
		}
	}
	return runtime.NumCPU()
}
