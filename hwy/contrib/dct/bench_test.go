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
	"testing"

	"github.com/ajroetker/go-jpegdct/hwy/contrib/workerpool"
)

func BenchmarkForwardDCT(b *testing.B) {
	for _, k := range kernels() {
		b.Run(k.name, func(b *testing.B) {
			blk := wikiBlock
			b.ReportAllocs()
			b.SetBytes(Size * 4)
			for b.Loop() {
				k.forward(&blk)
			}
		})
	}
}

func BenchmarkInverseDCT(b *testing.B) {
	for _, k := range kernels() {
		b.Run(k.name, func(b *testing.B) {
			blk := wikiBlock
			b.ReportAllocs()
			b.SetBytes(Size * 4)
			for b.Loop() {
				k.inverse(&blk)
			}
		})
	}
}

func BenchmarkImageRoundTrip(b *testing.B) {
	src := smoothImage(512, 512)
	steps := ScaleTable(&LuminanceTable, 75)
	fwd := NewForwardTable(&steps)
	inv := NewInverseTable(&steps)

	run := func(b *testing.B, pool *workerpool.Pool) {
		img := src.Clone()
		b.ReportAllocs()
		b.SetBytes(512 * 512 * 4)
		for b.Loop() {
			ForwardImage(pool, img, &fwd)
			InverseImage(pool, img, &inv)
		}
	}

	b.Run("Serial", func(b *testing.B) { run(b, nil) })
	b.Run("Pool", func(b *testing.B) {
		pool := workerpool.New(0)
		defer pool.Close()
		run(b, pool)
	})
}
