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

package dct

import (
	"math"
	"unsafe"
)

// Size is the number of elements in a block.
const Size = 64

// Block8x8F is an 8x8 block of float32 samples or coefficients in row-major
// order. Quantization tables use the same type.
type Block8x8F [Size]float32

// At returns the element at (row, col).
// Indices outside [0, 8) panic or alias another element; callers must not
// pass them.
func (b *Block8x8F) At(row, col int) float32 {
	return b[row*8+col]
}

// Set stores v at (row, col). Same index contract as At.
func (b *Block8x8F) Set(row, col int, v float32) {
	b[row*8+col] = v
}

// Transpose swaps (r, c) with (c, r) in place.
func (b *Block8x8F) Transpose() {
	for r := 1; r < 8; r++ {
		for c := range r {
			b[r*8+c], b[c*8+r] = b[c*8+r], b[r*8+c]
		}
	}
}

// MultiplyInPlace multiplies every element by the matching element of t.
func (b *Block8x8F) MultiplyInPlace(t *Block8x8F) {
	for i := range b {
		b[i] *= t[i]
	}
}

// AddInPlace adds v to every element.
func (b *Block8x8F) AddInPlace(v float32) {
	for i := range b {
		b[i] += v
	}
}

// RoundInPlace rounds every element to the nearest integer, ties to even.
func (b *Block8x8F) RoundInPlace() {
	for i := range b {
		b[i] = float32(math.RoundToEven(float64(b[i])))
	}
}

// NormalizeColorsAndRoundInPlace undoes the level shift of an inverse
// transformed block: it adds ceil(maxValue/2), clamps to [0, maxValue] and
// rounds to the nearest integer.
func (b *Block8x8F) NormalizeColorsAndRoundInPlace(maxValue float32) {
	off := float32(math.Ceil(float64(maxValue) / 2))
	for i := range b {
		v := min(max(b[i]+off, 0), maxValue)
		b[i] = float32(math.RoundToEven(float64(v)))
	}
}

// LoadFrom converts integer coefficients into b.
func (b *Block8x8F) LoadFrom(src *[Size]int16) {
	for i := range b {
		b[i] = float32(src[i])
	}
}

// Quantize multiplies b by a forward table (see AdjustForForward), rounds
// and stores the saturated result in dst. b is left unchanged.
func (b *Block8x8F) Quantize(dst *[Size]int16, table *Block8x8F) {
	for i := range b {
		v := math.RoundToEven(float64(b[i] * table[i]))
		dst[i] = int16(min(max(v, math.MinInt16), math.MaxInt16))
	}
}

// Dequantize loads src multiplied by an inverse table (see AdjustForInverse).
func (b *Block8x8F) Dequantize(src *[Size]int16, table *Block8x8F) {
	for i := range b {
		b[i] = float32(src[i]) * table[i]
	}
}

// lanes4 views the block as 16 four-lane groups: group 2r holds row r
// columns 0..3 and group 2r+1 holds row r columns 4..7.
func (b *Block8x8F) lanes4() *[16]vec4 {
	return (*[16]vec4)(unsafe.Pointer(b))
}

// lanes8 views the block as its 8 rows.
func (b *Block8x8F) lanes8() *[8]vec8 {
	return (*[8]vec8)(unsafe.Pointer(b))
}
