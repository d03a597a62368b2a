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
	"bytes"
	"context"
	stdmath "math"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ajroetker/go-floatbits/float"
	"github.com/ajroetker/go-floatbits/float/math"
)

func TestConfigValidate(t *testing.T) {
	base := Config{From: 0, To: 0x100, Stride: 1, Workers: 1, ChunkSize: 16}

	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr error
	}{
		{"valid", func(*Config) {}, nil},
		{"default", func(c *Config) { *c = DefaultConfig() }, nil},
		{"from after to", func(c *Config) { c.From = 0x200 }, ErrInvalidRange},
		{"negative patterns", func(c *Config) { c.To = 0x80000000 }, ErrInvalidRange},
		{"zero stride", func(c *Config) { c.Stride = 0 }, ErrInvalidStride},
		{"zero chunk", func(c *Config) { c.ChunkSize = 0 }, ErrInvalidStride},
		{"no workers", func(c *Config) { c.Workers = 0 }, ErrInvalidWorkers},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := base
			tt.mutate(&cfg)
			err := cfg.Validate()
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestConfigPoints(t *testing.T) {
	cfg := Config{From: 10, To: 20, Stride: 3}
	assert.Equal(t, uint64(4), cfg.points()) // 10, 13, 16, 19
	assert.Equal(t, uint32(19), cfg.at(3))

	full := DefaultConfig()
	assert.Equal(t, uint64(float.ExponentMask)+1, full.points())
}

func TestSweepAtanReductionRegions(t *testing.T) {
	cfg := Config{From: 0x39000000, To: 0x40400000, Stride: 97, Workers: 4, ChunkSize: 1000}
	r, err := Atan(context.Background(), cfg)
	require.NoError(t, err)

	assert.Equal(t, cfg.points(), r.Checked)
	assert.Zero(t, r.OddFailures)
	assert.Zero(t, r.NaNFailures)
	assert.Zero(t, r.MonotonicSteps)
	assert.LessOrEqual(t, r.MaxULP, uint32(1))
	assert.False(t, r.Failed(1, 0))
}

func TestSweepHugeThresholdStep(t *testing.T) {
	// 0x4c800000 is the first pattern of the ninth chunk, so the step is only
	// seen if chunks are seeded with their predecessor.
	cfg := Config{From: 0x4c7ff000, To: 0x4c801000, Stride: 1, Workers: 3, ChunkSize: 512}
	r, err := Atan(context.Background(), cfg)
	require.NoError(t, err)

	assert.Equal(t, uint64(1), r.MonotonicSteps)
	assert.Equal(t, uint32(0x4c800000), r.FirstMonotonicStep)
	assert.True(t, r.Failed(1, 0))
	assert.False(t, r.Failed(1, 1))
}

func TestSweepNaN(t *testing.T) {
	cfg := Config{From: 0x7f800000, To: 0x7f800100, Stride: 1, Workers: 2, ChunkSize: 64}

	r, err := Atan(context.Background(), cfg)
	require.NoError(t, err)
	assert.Zero(t, r.NaNFailures)

	quieting := func(x float32) float32 {
		if float.IsNaN(x) {
			return stdmath.Float32frombits(0x7fc00000)
		}
		return math.Atan(x)
	}
	r, err = Sweep(context.Background(), cfg, quieting, nil)
	require.NoError(t, err)
	assert.Equal(t, uint64(0x100), r.NaNFailures)
	assert.Equal(t, uint32(0x7f800001), r.FirstNaNFailure)
}

func TestSweepOddFailure(t *testing.T) {
	cfg := Config{From: 0x3f800000, To: 0x3f800009, Stride: 1, Workers: 1, ChunkSize: 4}
	r, err := Sweep(context.Background(), cfg, float.Abs, nil)
	require.NoError(t, err)

	assert.Equal(t, uint64(10), r.OddFailures)
	assert.Equal(t, uint32(0x3f800000), r.FirstOddFailure)
	assert.Zero(t, r.MaxULP, "no reference, no error measured")
}

func TestSweepDeterministic(t *testing.T) {
	cfg := Config{From: 0x3e000000, To: 0x41000000, Stride: 4099, Workers: 1, ChunkSize: 100}
	serial, err := Atan(context.Background(), cfg)
	require.NoError(t, err)

	cfg.Workers = 8
	parallel, err := Atan(context.Background(), cfg)
	require.NoError(t, err)

	if diff := cmp.Diff(serial, parallel); diff != "" {
		t.Errorf("parallel sweep differs from serial (-serial +parallel):\n%s", diff)
	}
}

func TestSweepCanceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := Atan(ctx, DefaultConfig())
	require.ErrorIs(t, err, context.Canceled)
}

func TestSweepInvalidConfig(t *testing.T) {
	_, err := Atan(context.Background(), Config{From: 2, To: 1, Stride: 1, Workers: 1, ChunkSize: 1})
	require.ErrorIs(t, err, ErrInvalidRange)
}

func TestMerge(t *testing.T) {
	reports := []Report{
		{Checked: 10, MaxULP: 1, MaxULPInput: 0x10},
		{Checked: 10, MaxULP: 2, MaxULPInput: 0x20, MonotonicSteps: 1, FirstMonotonicStep: 0x25},
		{Checked: 5, MaxULP: 2, MaxULPInput: 0x30, MonotonicSteps: 2, FirstMonotonicStep: 0x31,
			OddFailures: 1, FirstOddFailure: 0x33},
	}

	want := Report{
		Checked:            25,
		MaxULP:             2,
		MaxULPInput:        0x20,
		OddFailures:        1,
		FirstOddFailure:    0x33,
		MonotonicSteps:     3,
		FirstMonotonicStep: 0x25,
	}
	if diff := cmp.Diff(want, merge(reports)); diff != "" {
		t.Errorf("merge mismatch (-want +got):\n%s", diff)
	}
}

func TestReportFailed(t *testing.T) {
	tests := []struct {
		name   string
		report Report
		want   bool
	}{
		{"clean", Report{Checked: 1}, false},
		{"ulp within budget", Report{MaxULP: 1}, false},
		{"ulp over budget", Report{MaxULP: 2}, true},
		{"odd", Report{OddFailures: 1}, true},
		{"nan", Report{NaNFailures: 1}, true},
		{"steps over budget", Report{MonotonicSteps: 2}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.report.Failed(1, 1))
		})
	}
}

func TestReportFprint(t *testing.T) {
	r := Report{
		Checked:            1 << 20,
		MaxULP:             1,
		MaxULPInput:        0x3f800000,
		MonotonicSteps:     1,
		FirstMonotonicStep: 0x4c800000,
	}
	var buf bytes.Buffer
	require.NoError(t, r.Fprint(&buf))

	out := buf.String()
	assert.Contains(t, out, "1,048,576 patterns")
	assert.Contains(t, out, "1 ULP at 0x3f800000")
	assert.Contains(t, out, "monotonic steps: 1 (first at 0x4c800000)")
	assert.Regexp(t, `odd failures:\s+0\n`, out)
}
