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

import "github.com/ajroetker/go-jpegdct/hwy"

// Path identifies the execution path bound to ForwardDCT and InverseDCT.
type Path int

const (
	// PathPortable processes each pass as two 4-lane halves.
	PathPortable Path = iota

	// PathWide processes each pass as one sweep over 8-lane rows.
	PathWide
)

// String returns a human-readable name for the path.
func (p Path) String() string {
	switch p {
	case PathPortable:
		return "portable"
	case PathWide:
		return "wide"
	default:
		return "unknown"
	}
}

// Dispatch function variables. They are bound once in init() and never
// reassigned afterwards, so concurrent callers need no synchronization.
var (
	// ForwardDCT transforms pixels to the transposed, AAN-scaled spectrum.
	ForwardDCT func(b *Block8x8F)

	// InverseDCT transforms a transposed, dequantized spectrum to pixels.
	InverseDCT func(b *Block8x8F)

	// ForwardDCTWide is the wide forward kernel. It is the hardware kernel
	// when one is registered and BaseForwardDCTWide otherwise, and is always
	// callable regardless of CurrentPath.
	ForwardDCTWide func(b *Block8x8F)

	// InverseDCTWide is the wide inverse kernel; see ForwardDCTWide.
	InverseDCTWide func(b *Block8x8F)
)

// wideAccelerated is set by architecture files that register a hardware
// wide kernel.
var wideAccelerated bool

var currentPath Path

func init() {
	// Initialize with the portable kernels. Architecture-specific init()
	// functions in z_*.go files may register hardware kernels and reselect.
	ForwardDCTWide = BaseForwardDCTWide
	InverseDCTWide = BaseInverseDCTWide
	selectPath()
}

// DetectPath reports the path suited to the running CPU: PathWide when a
// hardware wide kernel is registered and the dispatch level has 8-lane
// float32 registers, PathPortable otherwise. HWY_NO_SIMD forces the scalar
// level and therefore PathPortable.
func DetectPath() Path {
	if wideAccelerated && hwy.CurrentLevel().Wide() {
		return PathWide
	}
	return PathPortable
}

// CurrentPath returns the path bound to ForwardDCT and InverseDCT.
func CurrentPath() Path {
	return currentPath
}

func selectPath() {
	currentPath = DetectPath()
	switch currentPath {
	case PathWide:
		ForwardDCT = ForwardDCTWide
		InverseDCT = InverseDCTWide
	default:
		ForwardDCT = BaseForwardDCT
		InverseDCT = BaseInverseDCT
	}
}

// BaseForwardDCT is the portable forward transform: columns, transpose,
// then what were rows, each pass over the two 4-lane halves.
//
// The result is the spectrum in transposed order, scaled per coefficient by
// 8 * aanScaleFactor[u] * aanScaleFactor[v]; a table from AdjustForForward
// removes that scale.
func BaseForwardDCT(b *Block8x8F) {
	v := b.lanes4()
	fdct8x4(v[0:])
	fdct8x4(v[1:])

	b.Transpose()
	fdct8x4(v[0:])
	fdct8x4(v[1:])
}

// BaseInverseDCT is the portable inverse transform. Its input is the
// transposed spectrum premultiplied by a table from AdjustForInverse; its
// output is level-shifted pixels in natural order.
func BaseInverseDCT(b *Block8x8F) {
	v := b.lanes4()
	idct8x4(v[0:])
	idct8x4(v[1:])

	b.Transpose()
	idct8x4(v[0:])
	idct8x4(v[1:])
}
