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

// Package math provides single-precision transcendental functions that
// evaluate entirely in float32 and reproduce the FDLIBM results bit for bit.
//
// The standard library math package only works on float64. Converting to
// float64, calling math.Atan and rounding back gives a correctly rounded
// answer most of the time, but not the same answer as the C libraries that
// ship atanf. Code that must agree with those libraries (or with itself
// across architectures) uses this package instead.
//
// # Functions
//
//   - Atan(x float32) float32 - arctangent in radians
//
// # Algorithm
//
// Atan reduces |x| into one of four intervals around 0.5, 1, 1.5 and
// infinity, evaluates an odd minimax polynomial on the reduced argument and
// reconstructs the result from a high/low split of the atan value at the
// interval center. Arguments below 7/16 skip the reduction.
//
// # Accuracy
//
//   - Bit-identical to FreeBSD s_atanf.c for every float32 input
//   - Within 1 ULP of the correctly rounded arctangent
//   - Exactly odd: Atan(-x) == -Atan(x) for every non-NaN x
//   - NaN inputs are returned unchanged, payload and sign included
//
// # Floating-Point Contraction
//
// The Go specification lets the compiler fuse x*y + z into a single FMA
// instruction on architectures that have one. A fused operation skips an
// intermediate rounding and changes the last bit of the result. Every
// product that feeds an addition is therefore wrapped in an explicit
// float32 conversion, which forbids fusion.
package math
