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

// Package cpuinfo reports the CPU features detected by Go that matter for
// reproducible float32 results.
package cpuinfo

import (
	"fmt"
	"io"
	"runtime"
	"runtime/debug"
	"strings"

	"golang.org/x/sys/cpu"
)

// Feature is a single CPU capability.
type Feature struct {
	Name    string
	Present bool
	Note    string
}

// Features returns the capabilities of the running CPU for GOARCH amd64 and
// arm64, and nil elsewhere.
func Features() []Feature {
	switch runtime.GOARCH {
	case "arm64":
		return arm64Features()
	case "amd64":
		return amd64Features()
	}
	return nil
}

func arm64Features() []Feature {
	return []Feature{
		{"HasFP", cpu.ARM64.HasFP, "Floating point"},
		{"HasASIMD", cpu.ARM64.HasASIMD, "NEON baseline"},
		{"HasFPHP", cpu.ARM64.HasFPHP, "FP16 scalar, ARMv8.2-A"},
		{"HasASIMDHP", cpu.ARM64.HasASIMDHP, "FP16 NEON, ARMv8.2-A"},
		{"HasASIMDFHM", cpu.ARM64.HasASIMDFHM, "FP16 FMA, ARMv8.4-A"},
		{"HasSVE", cpu.ARM64.HasSVE, "Scalable Vector Extension"},
	}
}

func amd64Features() []Feature {
	return []Feature{
		{"HasSSE2", cpu.X86.HasSSE2, "scalar float32 baseline"},
		{"HasSSE41", cpu.X86.HasSSE41, ""},
		{"HasAVX", cpu.X86.HasAVX, ""},
		{"HasAVX2", cpu.X86.HasAVX2, ""},
		{"HasFMA", cpu.X86.HasFMA, "fused multiply-add"},
		{"HasAVX512F", cpu.X86.HasAVX512F, ""},
	}
}

// ContractsFMA reports whether the Go compiler may fuse x*y+z into a single
// rounding on goarch. amd64 only does so when built for GOAMD64=v3 or
// higher, which amd64Level describes ("v1".."v4", empty for the default).
func ContractsFMA(goarch, amd64Level string) bool {
	switch goarch {
	case "arm64", "ppc64", "ppc64le", "s390x", "riscv64", "loong64":
		return true
	case "amd64":
		return amd64Level >= "v3"
	}
	return false
}

// amd64Level returns the GOAMD64 setting the binary was built with.
func amd64Level() string {
	info, ok := debug.ReadBuildInfo()
	if !ok {
		return ""
	}
	for _, s := range info.Settings {
		if s.Key == "GOAMD64" {
			return s.Value
		}
	}
	return ""
}

// Fprint writes a human-readable report to w.
func Fprint(w io.Writer) error {
	var b strings.Builder
	fmt.Fprintf(&b, "GOOS: %s\n", runtime.GOOS)
	fmt.Fprintf(&b, "GOARCH: %s\n", runtime.GOARCH)
	fmt.Fprintf(&b, "NumCPU: %d\n", runtime.NumCPU())
	if level := amd64Level(); level != "" {
		fmt.Fprintf(&b, "GOAMD64: %s\n", level)
	}
	b.WriteString("\n")

	if features := Features(); len(features) > 0 {
		fmt.Fprintf(&b, "=== golang.org/x/sys/cpu (%s) ===\n", runtime.GOARCH)
		for _, f := range features {
			fmt.Fprintf(&b, "  %-12s %v", f.Name+":", f.Present)
			if f.Note != "" {
				fmt.Fprintf(&b, " (%s)", f.Note)
			}
			b.WriteString("\n")
		}
		b.WriteString("\n")
	}

	fmt.Fprintf(&b, "Compiler may fuse x*y+z: %v\n", ContractsFMA(runtime.GOARCH, amd64Level()))
	_, err := io.WriteString(w, b.String())
	return err
}
