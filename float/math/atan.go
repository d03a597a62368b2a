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

//go:generate go run ../../cmd/tablegen --output atan_tables.go

package math

import (
	stdmath "math"

	"github.com/ajroetker/go-floatbits/float"
)

// The algorithm and the constants in atan_tables.go come from FreeBSD's
// /usr/src/lib/msun/src/s_atanf.c, converted to float by Ian Lance Taylor,
// Cygnus Support, and carry this notice:
//
// ====================================================
// Copyright (C) 1993 by Sun Microsystems, Inc. All rights reserved.
//
// Developed at SunPro, a Sun Microsystems, Inc. business.
// Permission to use, copy, modify, and distribute this
// software is freely granted, provided that this notice
// is preserved.
// ====================================================

// Thresholds on the magnitude bits of the argument.
const (
	atanHugeBits   = 0x4c800000 // 2**26
	atanReduceBits = 0x3ee00000 // 7/16
	atanTinyBits   = 0x39800000 // 2**-12
	atanMid0Bits   = 0x3f300000 // 11/16
	atanMid1Bits   = 0x3f980000 // 19/16
	atanMid2Bits   = 0x401c0000 // 39/16
)

// Atan returns the arctangent of x in radians.
//
// The result is bit-identical to the FDLIBM single-precision atanf for every
// input, and within 1 ULP of the correctly rounded arctangent.
//
// Special cases:
//   - Atan(±0) = ±0
//   - Atan(x) = x for subnormal and other |x| < 2**-12
//   - Atan(±Inf) = ±1.5707962513 (0x3fc90fda)
//   - Atan(NaN) = the same NaN, payload and sign included
func Atan(x float32) float32 {
	bits := stdmath.Float32bits(x)
	sign := bits>>31 != 0
	ix := bits & float.MagnitudeMask

	if ix >= atanHugeBits {
		if ix > float.ExponentMask {
			return x
		}
		z := atanHi_f32[3] + atanTiny_f32
		if sign {
			return -z
		}
		return z
	}

	id := -1
	if ix < atanReduceBits {
		if ix < atanTinyBits {
			return x
		}
	} else {
		x, id = atanReduce(float.Abs(x), ix)
	}

	z := x * x
	w := z * z
	// Odd and even halves of sum_{i=0..4} aT[i]*z**(i+1). Every product that
	// reaches an addition is converted explicitly so it is never fused.
	s1 := float32(z * (atanT_f32[0] + float32(w*(atanT_f32[2]+float32(w*atanT_f32[4])))))
	s2 := float32(w * (atanT_f32[1] + float32(w*atanT_f32[3])))
	p := float32(x * (s1 + s2))

	if id < 0 {
		return x - p
	}
	z = atanHi_f32[id] - ((p - atanLo_f32[id]) - x)
	if sign {
		return -z
	}
	return z
}

// atanReduce maps ax = |x| with 7/16 <= ax < 2**26 to a small reduced
// argument and returns it with the index of the atanHi/atanLo pair that
// reconstructs the result. ix is the magnitude bit pattern of ax.
func atanReduce(ax float32, ix uint32) (float32, int) {
	switch {
	case ix < atanMid0Bits: // [7/16, 11/16)
		return (float32(2*ax) - 1) / (2 + ax), 0
	case ix < atanMid1Bits: // [11/16, 19/16)
		return (ax - 1) / (ax + 1), 1
	case ix < atanMid2Bits: // [19/16, 39/16)
		return (ax - 1.5) / (1 + float32(1.5*ax)), 2
	default: // [39/16, 2**26)
		return -1 / ax, 3
	}
}
