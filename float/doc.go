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

// Package float provides branchless primitives that operate on the raw
// IEEE 754 binary32 representation of a float32.
//
// # Sign Operations
//
// Every sign operation reinterprets the value as a uint32, touches bit 31
// and reinterprets it back. No floating-point arithmetic is performed, so
// NaN payloads (including signaling NaNs) pass through untouched:
//   - Abs(v) - clears the sign bit
//   - IsNegative(v) / IsPositive(v) - test the sign bit
//   - FlipSign(v) - toggles the sign bit
//   - CopySign(v, sign) - magnitude of v, sign bit of sign
//
// IsNegative and IsPositive are bit tests, not comparisons: IsNegative(-0)
// is true and a NaN with its sign bit set is negative.
//
// # Classification and ULPs
//
// IsNaN classifies on the exponent and mantissa bits. Ordered maps a bit
// pattern onto a signed integer line where adjacent floats are adjacent
// integers, and ULPDiff uses it to measure the distance between two results
// in units in the last place.
//
// All functions are pure and safe for concurrent use.
package float
