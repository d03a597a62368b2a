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

// Entry is one float32 constant: the decimal literal emitted into the
// generated source and the bit pattern that literal must round to.
type Entry struct {
	Literal string
	Label   string
	Bits    uint32
}

// Table is a fixed-size float32 array.
type Table struct {
	Name    string
	Doc     string
	Entries []Entry
}

// Scalar is a single float32 variable.
type Scalar struct {
	Name  string
	Doc   string
	Value Entry
}

// atanTables are the s_atanf.c constants. The literals are the ones printed
// in the C source; Bits are the patterns documented next to them.
var atanTables = []Table{
	{
		Name: "atanHi_f32",
		Doc:  "atanHi_f32 holds the high parts of atan(0.5), atan(1.0), atan(1.5) and atan(inf).",
		Entries: []Entry{
			{"4.6364760399e-01", "atan(0.5)hi", 0x3eed6338},
			{"7.8539812565e-01", "atan(1.0)hi", 0x3f490fda},
			{"9.8279368877e-01", "atan(1.5)hi", 0x3f7b985e},
			{"1.5707962513e+00", "atan(inf)hi", 0x3fc90fda},
		},
	},
	{
		Name: "atanLo_f32",
		Doc:  "atanLo_f32 holds the low-order corrections matching atanHi_f32.",
		Entries: []Entry{
			{"5.0121582440e-09", "atan(0.5)lo", 0x31ac3769},
			{"3.7748947079e-08", "atan(1.0)lo", 0x33222168},
			{"3.4473217170e-08", "atan(1.5)lo", 0x33140fb4},
			{"7.5497894159e-08", "atan(inf)lo", 0x33a22168},
		},
	},
	{
		Name: "atanT_f32",
		Doc:  "atanT_f32 holds the minimax coefficients of (atan(x) - x) / x on |x| < 7/16.",
		Entries: []Entry{
			{"3.3333328366e-01", "T0", 0x3eaaaaa9},
			{"-1.9999158382e-01", "T1", 0xbe4cca98},
			{"1.4253635705e-01", "T2", 0x3e11f50d},
			{"-1.0648017377e-01", "T3", 0xbdda1247},
			{"6.1687607318e-02", "T4", 0x3d7cac25},
		},
	},
}

var atanScalars = []Scalar{
	{
		Name:  "atanTiny_f32",
		Doc:   "atanTiny_f32 is added to atan(inf)hi so that the huge-argument result is inexact.",
		Value: Entry{"0x1p-120", "2**-120", 0x03800000},
	},
}
