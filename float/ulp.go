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

// IsNaN reports whether v is a NaN of either sign, quiet or signaling.
func IsNaN(v float32) bool {
	return math.Float32bits(v)&MagnitudeMask > ExponentMask
}

// Ordered maps the bit pattern of v onto a signed integer such that
// adjacent float32 values map to adjacent integers and the integer order
// matches the float order. Both zeros map to 0.
//
// The result is meaningless for NaN.
func Ordered(v float32) int64 {
	b := math.Float32bits(v)
	mag := int64(b & MagnitudeMask)
	if b&SignMask != 0 {
		return -mag
	}
	return mag
}

// ULPDiff returns the number of representable float32 values between a and b.
// It returns 0 for +0 and -0, and math.MaxUint32 if exactly one of a and b
// is NaN. Two NaNs are 0 apart when their bit patterns match.
func ULPDiff(a, b float32) uint32 {
	an, bn := IsNaN(a), IsNaN(b)
	switch {
	case an && bn:
		if math.Float32bits(a) == math.Float32bits(b) {
			return 0
		}
		return math.MaxUint32
	case an || bn:
		return math.MaxUint32
	}
	d := Ordered(a) - Ordered(b)
	if d < 0 {
		d = -d
	}
	return uint32(d)
}
