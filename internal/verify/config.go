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
	"errors"
	"fmt"
	"runtime"

	"github.com/ajroetker/go-floatbits/float"
)

var (
	// ErrInvalidRange is returned when From > To or the range includes
	// patterns with the sign bit set.
	ErrInvalidRange = errors.New("invalid range")

	// ErrInvalidStride is returned for a zero stride or chunk size.
	ErrInvalidStride = errors.New("invalid stride")

	// ErrInvalidWorkers is returned when Workers < 1.
	ErrInvalidWorkers = errors.New("invalid worker count")
)

// DefaultChunkSize is the number of bit patterns one worker task evaluates.
const DefaultChunkSize = 1 << 20

// Config selects the bit patterns to sweep. Only patterns with the sign bit
// clear are listed; each one is also evaluated negated.
type Config struct {
	// From and To bound the swept patterns, both inclusive.
	From, To uint32
	// Stride is the distance between consecutive swept patterns.
	Stride uint32
	// Workers bounds the number of chunks evaluated concurrently.
	Workers int
	// ChunkSize is the number of patterns per task.
	ChunkSize uint32
}

// DefaultConfig sweeps every non-negative pattern from +0 to +Inf.
func DefaultConfig() Config {
	return Config{
		From:      0,
		To:        float.ExponentMask,
		Stride:    1,
		Workers:   runtime.NumCPU(),
		ChunkSize: DefaultChunkSize,
	}
}

// Validate reports whether c describes a sweep that can run.
func (c Config) Validate() error {
	if c.From > c.To {
		return fmt.Errorf("%w: from 0x%08x > to 0x%08x", ErrInvalidRange, c.From, c.To)
	}
	if c.To&float.SignMask != 0 {
		return fmt.Errorf("%w: to 0x%08x has the sign bit set", ErrInvalidRange, c.To)
	}
	if c.Stride == 0 {
		return fmt.Errorf("%w: stride must be positive", ErrInvalidStride)
	}
	if c.ChunkSize == 0 {
		return fmt.Errorf("%w: chunk size must be positive", ErrInvalidStride)
	}
	if c.Workers < 1 {
		return fmt.Errorf("%w: %d", ErrInvalidWorkers, c.Workers)
	}
	return nil
}

// points returns the number of swept patterns.
func (c Config) points() uint64 {
	return uint64(c.To-c.From)/uint64(c.Stride) + 1
}

// at returns the i-th swept pattern.
func (c Config) at(i uint64) uint32 {
	return c.From + uint32(i*uint64(c.Stride))
}
