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

// Package verify sweeps ranges of float32 bit patterns through a function
// and checks the properties Atan guarantees: exact oddness, NaN
// propagation, monotonicity and error against a reference.
package verify

import (
	"context"
	"fmt"
	stdmath "math"

	"github.com/samber/lo"
	"golang.org/x/sync/errgroup"

	"github.com/ajroetker/go-floatbits/float"
	"github.com/ajroetker/go-floatbits/float/math"
)

// Func is a float32 function under test.
type Func func(float32) float32

// AtanReference rounds the float64 arctangent to float32.
func AtanReference(x float32) float32 {
	return float32(stdmath.Atan(float64(x)))
}

// cancelCheckInterval is how many patterns a worker evaluates between
// context checks.
const cancelCheckInterval = 1 << 16

// Atan sweeps math.Atan against AtanReference.
func Atan(ctx context.Context, cfg Config) (Report, error) {
	return Sweep(ctx, cfg, math.Atan, AtanReference)
}

// Sweep evaluates fn on every pattern selected by cfg and on its negation.
// If ref is nil the ULP error is not measured.
func Sweep(ctx context.Context, cfg Config, fn, ref Func) (Report, error) {
	if err := cfg.Validate(); err != nil {
		return Report{}, err
	}

	n := cfg.points()
	chunks := (n + uint64(cfg.ChunkSize) - 1) / uint64(cfg.ChunkSize)
	reports := make([]Report, chunks)

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(cfg.Workers)
	for c := range chunks {
		g.Go(func() error {
			first := c * uint64(cfg.ChunkSize)
			last := min(first+uint64(cfg.ChunkSize), n)
			r, err := sweepChunk(gctx, cfg, first, last, fn, ref)
			if err != nil {
				return fmt.Errorf("chunk at 0x%08x: %w", cfg.at(first), err)
			}
			reports[c] = r
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return Report{}, err
	}
	return merge(reports), nil
}

// sweepChunk checks the patterns with indices [first, last).
func sweepChunk(ctx context.Context, cfg Config, first, last uint64, fn, ref Func) (Report, error) {
	var r Report

	// Seed the monotonic check with the pattern preceding this chunk.
	var prev float32
	havePrev := false
	if first > 0 {
		if b := cfg.at(first - 1); b <= float.ExponentMask {
			prev, havePrev = fn(stdmath.Float32frombits(b)), true
		}
	}

	for i := first; i < last; i++ {
		if (i-first)%cancelCheckInterval == 0 {
			if err := ctx.Err(); err != nil {
				return Report{}, err
			}
		}

		b := cfg.at(i)
		x := stdmath.Float32frombits(b)
		pos := fn(x)
		neg := fn(float.FlipSign(x))
		r.Checked++

		if b > float.ExponentMask {
			if stdmath.Float32bits(pos) != b || stdmath.Float32bits(neg) != b|float.SignMask {
				r.recordNaN(b)
			}
			havePrev = false
			continue
		}

		if stdmath.Float32bits(neg) != stdmath.Float32bits(pos)^float.SignMask {
			r.recordOdd(b)
		}
		if havePrev && prev > pos {
			r.recordStep(b)
		}
		prev, havePrev = pos, true

		if ref != nil {
			if d := float.ULPDiff(pos, ref(x)); d > r.MaxULP {
				r.MaxULP, r.MaxULPInput = d, b
			}
		}
	}
	return r, nil
}

// merge combines per-chunk reports in chunk order, so "first" fields keep
// the lowest offending pattern.
func merge(reports []Report) Report {
	out := Report{
		Checked:        lo.SumBy(reports, func(r Report) uint64 { return r.Checked }),
		OddFailures:    lo.SumBy(reports, func(r Report) uint64 { return r.OddFailures }),
		NaNFailures:    lo.SumBy(reports, func(r Report) uint64 { return r.NaNFailures }),
		MonotonicSteps: lo.SumBy(reports, func(r Report) uint64 { return r.MonotonicSteps }),
	}

	worst := lo.MaxBy(reports, func(a, b Report) bool { return a.MaxULP > b.MaxULP })
	out.MaxULP, out.MaxULPInput = worst.MaxULP, worst.MaxULPInput

	if r, ok := lo.Find(reports, func(r Report) bool { return r.OddFailures > 0 }); ok {
		out.FirstOddFailure = r.FirstOddFailure
	}
	if r, ok := lo.Find(reports, func(r Report) bool { return r.NaNFailures > 0 }); ok {
		out.FirstNaNFailure = r.FirstNaNFailure
	}
	if r, ok := lo.Find(reports, func(r Report) bool { return r.MonotonicSteps > 0 }); ok {
		out.FirstMonotonicStep = r.FirstMonotonicStep
	}
	return out
}
