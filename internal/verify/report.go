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

package verify

import (
	"fmt"
	"io"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// Report summarizes a sweep. Bit patterns in the report have the sign bit
// clear; a failure on the negated input is recorded against its magnitude.
type Report struct {
	// Checked counts swept patterns. Each is evaluated twice, once negated.
	Checked uint64

	// MaxULP is the largest distance from the reference, at MaxULPInput.
	MaxULP      uint32
	MaxULPInput uint32

	// OddFailures counts non-NaN inputs where f(-x) != -f(x) bitwise.
	OddFailures     uint64
	FirstOddFailure uint32

	// NaNFailures counts NaN inputs not returned unchanged.
	NaNFailures     uint64
	FirstNaNFailure uint32

	// MonotonicSteps counts swept inputs whose result is smaller than the
	// result for the previous swept input.
	MonotonicSteps     uint64
	FirstMonotonicStep uint32
}

func (r *Report) recordOdd(b uint32) {
	if r.OddFailures == 0 {
		r.FirstOddFailure = b
	}
	r.OddFailures++
}

func (r *Report) recordNaN(b uint32) {
	if r.NaNFailures == 0 {
		r.FirstNaNFailure = b
	}
	r.NaNFailures++
}

func (r *Report) recordStep(b uint32) {
	if r.MonotonicSteps == 0 {
		r.FirstMonotonicStep = b
	}
	r.MonotonicSteps++
}

// Failed reports whether the sweep broke oddness or NaN propagation, or
// exceeded the given error and monotonic step budgets.
func (r Report) Failed(maxULP uint32, maxSteps uint64) bool {
	return r.OddFailures > 0 ||
		r.NaNFailures > 0 ||
		r.MaxULP > maxULP ||
		r.MonotonicSteps > maxSteps
}

// Fprint writes the report to w with grouped digits.
func (r Report) Fprint(w io.Writer) error {
	p := message.NewPrinter(language.English)
	lines := []struct {
		label string
		count uint64
		first uint32
	}{
		{"odd failures", r.OddFailures, r.FirstOddFailure},
		{"NaN failures", r.NaNFailures, r.FirstNaNFailure},
		{"monotonic steps", r.MonotonicSteps, r.FirstMonotonicStep},
	}

	if _, err := p.Fprintf(w, "%-16s %d patterns (each also negated)\n", "checked:", r.Checked); err != nil {
		return err
	}
	if _, err := p.Fprintf(w, "%-16s %d ULP at %s\n", "max error:", r.MaxULP, hex(r.MaxULPInput)); err != nil {
		return err
	}
	for _, l := range lines {
		var err error
		if l.count == 0 {
			_, err = p.Fprintf(w, "%-16s 0\n", l.label+":")
		} else {
			_, err = p.Fprintf(w, "%-16s %d (first at %s)\n", l.label+":", l.count, hex(l.first))
		}
		if err != nil {
			return err
		}
	}
	return nil
}

func hex(b uint32) string { return fmt.Sprintf("0x%08x", b) }
