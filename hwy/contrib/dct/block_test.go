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
	"math/rand"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestTransposeInvolution(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	for range 100 {
		orig := randomBlock(rng, 1000)
		b := orig
		b.Transpose()
		b.Transpose()
		if diff := cmp.Diff(orig, b); diff != "" {
			t.Fatalf("double transpose changed block (-want +got):\n%s", diff)
		}
	}
}

func TestTransposeMovesElements(t *testing.T) {
	var b Block8x8F
	for i := range b {
		b[i] = float32(i)
	}
	b.Transpose()
	for r := range 8 {
		for c := range 8 {
			if got, want := b.At(r, c), float32(c*8+r); got != want {
				t.Errorf("At(%d, %d) = %v, want %v", r, c, got, want)
			}
		}
	}
}

func TestAtSet(t *testing.T) {
	var b Block8x8F
	b.Set(3, 5, 42)
	if b[3*8+5] != 42 {
		t.Errorf("Set(3, 5) wrote %v at index 29", b[29])
	}
	if b.At(3, 5) != 42 {
		t.Errorf("At(3, 5) = %v, want 42", b.At(3, 5))
	}
	if b.At(5, 3) != 0 {
		t.Errorf("At(5, 3) = %v, want 0", b.At(5, 3))
	}
}

func TestMultiplyAndAdd(t *testing.T) {
	var b, m Block8x8F
	for i := range b {
		b[i] = float32(i)
		m[i] = 0.5
	}
	b.MultiplyInPlace(&m)
	b.AddInPlace(-1)
	for i := range b {
		if want := float32(i)*0.5 - 1; b[i] != want {
			t.Errorf("b[%d] = %v, want %v", i, b[i], want)
		}
	}
}

func TestRoundInPlace(t *testing.T) {
	var b Block8x8F
	in := []float32{0.5, 1.5, 2.5, -0.5, -1.5, 0.49, -7.6, 3}
	want := []float32{0, 2, 2, 0, -2, 0, -8, 3}
	copy(b[:], in)
	b.RoundInPlace()
	for i := range in {
		if b[i] != want[i] {
			t.Errorf("round(%v) = %v, want %v", in[i], b[i], want[i])
		}
	}
}

func TestNormalizeColorsAndRoundInPlace(t *testing.T) {
	var b Block8x8F
	in := []float32{-128, 0, 127, 200, -300, 0.4, -0.6, 126.6}
	want := []float32{0, 128, 255, 255, 0, 128, 127, 255}
	copy(b[:], in)
	b.NormalizeColorsAndRoundInPlace(MaxSample)
	for i := range in {
		if b[i] != want[i] {
			t.Errorf("normalize(%v) = %v, want %v", in[i], b[i], want[i])
		}
	}
	for i := len(in); i < Size; i++ {
		if b[i] != 128 {
			t.Errorf("normalize(0) at %d = %v, want 128", i, b[i])
		}
	}
}

func TestQuantize(t *testing.T) {
	var b, table Block8x8F
	for i := range table {
		table[i] = 0.5
	}
	// 1.5, 2.5 and -1.5 round to even; the large values saturate.
	b[0] = 3
	b[1] = 5
	b[2] = -3
	b[3] = 1e6
	b[4] = -1e6
	b[5] = 100.8
	orig := b

	var q [Size]int16
	b.Quantize(&q, &table)

	want := [Size]int16{2, 2, -2, math.MaxInt16, math.MinInt16, 50}
	if diff := cmp.Diff(want, q); diff != "" {
		t.Errorf("Quantize mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff(orig, b); diff != "" {
		t.Errorf("Quantize modified its receiver (-want +got):\n%s", diff)
	}
}

func TestDequantizeAndLoad(t *testing.T) {
	var src [Size]int16
	var table Block8x8F
	for i := range src {
		src[i] = int16(i - 32)
		table[i] = float32(i % 3)
	}

	var b Block8x8F
	b.Dequantize(&src, &table)
	for i := range b {
		if want := float32(i-32) * float32(i%3); b[i] != want {
			t.Errorf("Dequantize[%d] = %v, want %v", i, b[i], want)
		}
	}

	b.LoadFrom(&src)
	for i := range b {
		if b[i] != float32(src[i]) {
			t.Errorf("LoadFrom[%d] = %v, want %v", i, b[i], src[i])
		}
	}
}

func TestLaneViews(t *testing.T) {
	var b Block8x8F
	for i := range b {
		b[i] = float32(i)
	}
	v4 := b.lanes4()
	for r := range 8 {
		for c := range 4 {
			if v4[2*r][c] != b.At(r, c) || v4[2*r+1][c] != b.At(r, c+4) {
				t.Fatalf("lanes4 row %d col %d does not alias the block", r, c)
			}
		}
	}
	v8 := b.lanes8()
	v8[7][7] = -1
	if b[63] != -1 {
		t.Errorf("lanes8 does not alias the block")
	}
}
