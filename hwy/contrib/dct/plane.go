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
	"github.com/ajroetker/go-jpegdct/hwy/contrib/image"
	"github.com/ajroetker/go-jpegdct/hwy/contrib/workerpool"
)

// MaxSample is the largest 8-bit sample value.
const MaxSample = 255

// LevelShift is subtracted from 8-bit samples before the forward transform.
const LevelShift = (MaxSample + 1) / 2

// rowsPerTile is the number of block rows a worker claims at a time.
const rowsPerTile = 1

// ForwardImage replaces every 8x8 block of img with its quantized,
// transposed spectrum: level shift, ForwardDCT, multiply by table (from
// AdjustForForward) and round. Block rows are claimed by pool workers one
// at a time, each working in its own scratch block; a nil pool runs on the
// calling goroutine.
//
// Call img.PadEdges first if the image size is not a multiple of 8.
func ForwardImage(pool *workerpool.Pool, img *image.Image[float32], table *Block8x8F) {
	if img == nil || table == nil || img.BlocksWide() == 0 {
		return
	}

	pool.ForTiles(img.BlocksHigh(), rowsPerTile, func(w *workerpool.Worker, start, end int) {
		blk := (*Block8x8F)(w.Block())
		for by := start; by < end; by++ {
			for bx := range img.BlocksWide() {
				img.LoadBlock(bx, by, (*[Size]float32)(blk))
				blk.AddInPlace(-LevelShift)
				ForwardDCT(blk)
				blk.MultiplyInPlace(table)
				blk.RoundInPlace()
				img.StoreBlock(bx, by, (*[Size]float32)(blk))
			}
		}
	})
}

// InverseImage reverses ForwardImage: every block is dequantized with table
// (from AdjustForInverse), inverse transformed, shifted back and clamped to
// [0, MaxSample].
func InverseImage(pool *workerpool.Pool, img *image.Image[float32], table *Block8x8F) {
	if img == nil || table == nil || img.BlocksWide() == 0 {
		return
	}

	pool.ForTiles(img.BlocksHigh(), rowsPerTile, func(w *workerpool.Worker, start, end int) {
		blk := (*Block8x8F)(w.Block())
		for by := start; by < end; by++ {
			for bx := range img.BlocksWide() {
				img.LoadBlock(bx, by, (*[Size]float32)(blk))
				blk.MultiplyInPlace(table)
				InverseDCT(blk)
				blk.NormalizeColorsAndRoundInPlace(MaxSample)
				img.StoreBlock(bx, by, (*[Size]float32)(blk))
			}
		}
	})
}
