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

// Package image provides a single-channel 2D plane tiled into 8x8 blocks.
//
// The Image type pads its rows and its height to a multiple of BlockSize so
// block-oriented codecs can walk every block without special handling at
// the right and bottom edges. PadEdges fills that padding by replicating the
// last column and row, as JPEG encoders do.
//
// Example usage:
//
//	img := image.NewImage[float32](641, 479)
//	img.PadEdges()
//	var blk [64]float32
//	for by := range img.BlocksHigh() {
//	    for bx := range img.BlocksWide() {
//	        img.LoadBlock(bx, by, &blk)
//	        // transform blk
//	        img.StoreBlock(bx, by, &blk)
//	    }
//	}
package image
