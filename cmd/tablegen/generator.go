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
	"bytes"
	"errors"
	"fmt"
	"math"
	"strconv"
	"text/template"

	"golang.org/x/tools/imports"
)

// ErrBitsMismatch is returned when a literal does not round to the bit
// pattern recorded for it.
var ErrBitsMismatch = errors.New("literal does not match bit pattern")

const source = `// Code generated by tablegen. DO NOT EDIT.

package {{.Package}}
{{range .Tables}}
// {{.Doc}}
var {{.Name}} = [{{len .Entries}}]float32{
{{- range .Entries}}
	{{.Literal}}, // {{.Label}} {{hex .Bits}}
{{- end}}
}
{{end}}
{{- range .Scalars}}
// {{.Doc}}
var {{.Name}} float32 = {{.Value.Literal}} // {{.Value.Label}} {{hex .Value.Bits}}
{{end}}`

var sourceTmpl = template.Must(template.New("tables").Funcs(template.FuncMap{
	"hex": func(b uint32) string { return fmt.Sprintf("0x%08x", b) },
}).Parse(source))

// Generator renders float32 tables into a Go source file.
type Generator struct {
	Package  string
	Filename string
	Tables   []Table
	Scalars  []Scalar
}

// Check verifies that every literal rounds to its recorded bit pattern.
func (g *Generator) Check() error {
	for _, t := range g.Tables {
		for i, e := range t.Entries {
			if err := checkEntry(e); err != nil {
				return fmt.Errorf("%s[%d]: %w", t.Name, i, err)
			}
		}
	}
	for _, s := range g.Scalars {
		if err := checkEntry(s.Value); err != nil {
			return fmt.Errorf("%s: %w", s.Name, err)
		}
	}
	return nil
}

func checkEntry(e Entry) error {
	v, err := strconv.ParseFloat(e.Literal, 32)
	if err != nil {
		return fmt.Errorf("parse %q: %w", e.Literal, err)
	}
	if got := math.Float32bits(float32(v)); got != e.Bits {
		return fmt.Errorf("%w: %s is 0x%08x, want 0x%08x", ErrBitsMismatch, e.Literal, got, e.Bits)
	}
	return nil
}

// Generate checks the tables and returns the formatted source.
func (g *Generator) Generate() ([]byte, error) {
	if err := g.Check(); err != nil {
		return nil, err
	}
	var buf bytes.Buffer
	if err := sourceTmpl.Execute(&buf, g); err != nil {
		return nil, fmt.Errorf("execute template: %w", err)
	}
	out, err := imports.Process(g.Filename, buf.Bytes(), &imports.Options{
		Comments:   true,
		TabIndent:  true,
		TabWidth:   8,
		FormatOnly: true,
	})
	if err != nil {
		return nil, fmt.Errorf("format %s: %w", g.Filename, err)
	}
	return out, nil
}
