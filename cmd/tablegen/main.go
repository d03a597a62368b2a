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

// Command tablegen writes the float32 constant tables used by
// float/math.Atan. It refuses to write a table whose decimal literals do
// not round to the documented bit patterns.
//
// Usage:
//
//	//go:generate go run ../../cmd/tablegen --output atan_tables.go
package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/pflag"
)

func main() {
	output := pflag.StringP("output", "o", "atan_tables.go", "output file")
	pkg := pflag.StringP("package", "p", "math", "package name of the generated file")
	pflag.Parse()

	if err := run(*output, *pkg); err != nil {
		fmt.Fprintf(os.Stderr, "tablegen: %v\n", err)
		os.Exit(1)
	}
}

func run(output, pkg string) error {
	g := &Generator{
		Package:  pkg,
		Filename: filepath.Base(output),
		Tables:   atanTables,
		Scalars:  atanScalars,
	}
	src, err := g.Generate()
	if err != nil {
		return err
	}
	if err := os.WriteFile(output, src, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", output, err)
	}
	return nil
}
