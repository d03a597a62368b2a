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

package float

import "math"

// Binary32 layout masks.
const (
	SignMask      uint32 = 0x80000000
	MagnitudeMask uint32 = 0x7fffffff
	ExponentMask  uint32 = 0x7f800000
	MantissaMask  uint32 = 0x007fffff
)

// Abs clears the sign bit of v.
//
// Unlike an arithmetic absolute value, the magnitude bits are returned
// exactly as they were, including any NaN payload.
func Abs(v float32) float32 {
	return math.Float32frombits(math.Float32bits(v) & MagnitudeMask)
}

// IsNegative reports whether the sign bit of v is set.
// This includes -0 and NaNs carrying a sign bit.
func IsNegative(v float32) bool {
	return math.Float32bits(v) >= SignMask
}

// IsPositive reports whether the sign bit of v is clear.
// This includes +0 and NaNs without a sign bit.
func IsPositive(v float32) bool {
	return math.Float32bits(v) < SignMask
}

// FlipSign toggles the sign bit of v.
func FlipSign(v float32) float32 {
	return math.Float32frombits(math.Float32bits(v) ^ SignMask)
}

// CopySign returns a value with the magnitude bits of v and the sign bit
// of sign.
func CopySign(v, sign float32) float32 {
	return math.Float32frombits(math.Float32bits(v)&MagnitudeMask | math.Float32bits(sign)&SignMask)
}
