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
	"fmt"
	stdmath "math"
	"strconv"
	"strings"

	"github.com/spf13/pflag"
)

// ErrInvalidValue is returned for arguments that are neither a float nor a
// bit pattern.
var ErrInvalidValue = errors.New("invalid value")

// quietNaN is the canonical NaN produced for "nan".
const quietNaN = 0x7fc00000

// parseValue accepts a decimal or hex float ("1.5", "-0", "0x1p-3"), "inf",
// "-inf", "nan", or a raw bit pattern written as hex digits ("0x7fc00001").
func parseValue(s string) (float32, error) {
	t := strings.ToLower(strings.TrimSpace(s))
	switch t {
	case "nan":
		return stdmath.Float32frombits(quietNaN), nil
	case "inf", "+inf":
		return float32(stdmath.Inf(1)), nil
	case "-inf":
		return float32(stdmath.Inf(-1)), nil
	}

	if strings.HasPrefix(t, "0x") && !strings.ContainsRune(t, 'p') {
		b, err := strconv.ParseUint(t[2:], 16, 32)
		if err != nil {
			return 0, fmt.Errorf("%w %q: %v", ErrInvalidValue, s, err)
		}
		return stdmath.Float32frombits(uint32(b)), nil
	}

	v, err := strconv.ParseFloat(t, 32)
	if err != nil {
		return 0, fmt.Errorf("%w %q: %v", ErrInvalidValue, s, err)
	}
	return float32(v), nil
}

func parseValues(args []string) ([]float32, error) {
	values := make([]float32, len(args))
	for i, a := range args {
		v, err := parseValue(a)
		if err != nil {
			return nil, err
		}
		values[i] = v
	}
	return values, nil
}

// formatValue renders v with its bit pattern.
func formatValue(v float32) string {
	return fmt.Sprintf("%v (0x%08x)", v, stdmath.Float32bits(v))
}

// bitsFlag is a flag holding a bit pattern, written in any syntax
// parseValue accepts.
type bitsFlag struct {
	bits *uint32
}

var _ pflag.Value = bitsFlag{}

func (f bitsFlag) String() string {
	if f.bits == nil {
		return "0x00000000"
	}
	return fmt.Sprintf("0x%08x", *f.bits)
}

func (f bitsFlag) Set(s string) error {
	v, err := parseValue(s)
	if err != nil {
		return err
	}
	*f.bits = stdmath.Float32bits(v)
	return nil
}

func (f bitsFlag) Type() string { return "float32" }
