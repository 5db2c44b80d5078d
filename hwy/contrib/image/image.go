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

package image

import "github.com/ajroetker/go-jpegdct/hwy"

// BlockSize is the edge length of the square blocks an image is tiled into.
const BlockSize = 8

// Image is a single-channel 2D array tiled into BlockSize x BlockSize blocks.
// Both the row stride and the allocated height are rounded up to BlockSize,
// so every block, including those on the right and bottom edges, is backed
// by memory.
type Image[T hwy.Lanes] struct {
	data   []T
	width  int
	height int
	stride int // elements per row (includes padding)
	rows   int // allocated rows (includes padding)
}

// NewImage creates a new image with the specified dimensions.
func NewImage[T hwy.Lanes](width, height int) *Image[T] {
	if width <= 0 || height <= 0 {
		return &Image[T]{}
	}

	stride := roundUp(width)
	rows := roundUp(height)

	return &Image[T]{
		data:   make([]T, stride*rows),
		width:  width,
		height: height,
		stride: stride,
		rows:   rows,
	}
}

func roundUp(n int) int {
	return (n + BlockSize - 1) / BlockSize * BlockSize
}

// Width returns the image width in pixels.
func (img *Image[T]) Width() int {
	return img.width
}

// Height returns the image height in pixels.
func (img *Image[T]) Height() int {
	return img.height
}

// Stride returns the number of elements per row (including padding).
func (img *Image[T]) Stride() int {
	return img.stride
}

// BlocksWide returns the number of block columns.
func (img *Image[T]) BlocksWide() int {
	return img.stride / BlockSize
}

// BlocksHigh returns the number of block rows.
func (img *Image[T]) BlocksHigh() int {
	return img.rows / BlockSize
}

// Row returns a mutable slice for the specified row.
// The slice includes padding elements beyond the image width.
func (img *Image[T]) Row(y int) []T {
	if y < 0 || y >= img.height || img.data == nil {
		return nil
	}
	start := y * img.stride
	return img.data[start : start+img.stride]
}

// At returns the value at position (x, y).
func (img *Image[T]) At(x, y int) T {
	if x < 0 || x >= img.width || y < 0 || y >= img.height || img.data == nil {
		var zero T
		return zero
	}
	return img.data[y*img.stride+x]
}

// Set sets the value at position (x, y).
func (img *Image[T]) Set(x, y int, value T) {
	if x < 0 || x >= img.width || y < 0 || y >= img.height || img.data == nil {
		return
	}
	img.data[y*img.stride+x] = value
}

// LoadBlock copies block (bx, by) into dst in row-major order.
// Out of range block coordinates leave dst untouched.
func (img *Image[T]) LoadBlock(bx, by int, dst *[BlockSize * BlockSize]T) {
	if !img.hasBlock(bx, by) {
		return
	}
	off := by*BlockSize*img.stride + bx*BlockSize
	for r := range BlockSize {
		copy(dst[r*BlockSize:(r+1)*BlockSize], img.data[off:off+BlockSize])
		off += img.stride
	}
}

// StoreBlock copies src into block (bx, by).
// Out of range block coordinates are ignored.
func (img *Image[T]) StoreBlock(bx, by int, src *[BlockSize * BlockSize]T) {
	if !img.hasBlock(bx, by) {
		return
	}
	off := by*BlockSize*img.stride + bx*BlockSize
	for r := range BlockSize {
		copy(img.data[off:off+BlockSize], src[r*BlockSize:(r+1)*BlockSize])
		off += img.stride
	}
}

func (img *Image[T]) hasBlock(bx, by int) bool {
	return img.data != nil && bx >= 0 && by >= 0 &&
		bx < img.BlocksWide() && by < img.BlocksHigh()
}

// PadEdges replicates the last column into the right padding and the last
// row into the bottom padding, so partial edge blocks carry no artificial
// discontinuity into the transform.
func (img *Image[T]) PadEdges() {
	if img.data == nil {
		return
	}
	for y := range img.height {
		row := img.data[y*img.stride : (y+1)*img.stride]
		last := row[img.width-1]
		for x := img.width; x < img.stride; x++ {
			row[x] = last
		}
	}
	lastRow := img.data[(img.height-1)*img.stride : img.height*img.stride]
	for y := img.height; y < img.rows; y++ {
		copy(img.data[y*img.stride:(y+1)*img.stride], lastRow)
	}
}

// Clone creates a deep copy of the image, padding included.
func (img *Image[T]) Clone() *Image[T] {
	if img.data == nil {
		return NewImage[T](0, 0)
	}

	clone := &Image[T]{
		data:   make([]T, len(img.data)),
		width:  img.width,
		height: img.height,
		stride: img.stride,
		rows:   img.rows,
	}
	copy(clone.data, img.data)
	return clone
}

// Fill sets all pixels, padding included, to the specified value.
func (img *Image[T]) Fill(value T) {
	for i := range img.data {
		img.data[i] = value
	}
}
