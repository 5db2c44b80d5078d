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

// Package dct provides the 8x8 floating-point forward and inverse DCT used by
// JPEG-style block codecs, with the AAN (Arai-Agui-Nakajima) scale factors
// folded into the quantization tables.
//
// # Execution Paths
//
// Two implementations share one operation graph:
//
//   - Portable: the block is viewed as 16 groups of 4 lanes; the 1D
//     butterfly runs over the left and right halves separately.
//   - Wide: the block is viewed as 8 rows of 8 lanes; the 1D butterfly runs
//     once per pass. With GOEXPERIMENT=simd on an AVX2 CPU this uses
//     simd/archsimd Float32x8 registers.
//
// ForwardDCT and InverseDCT are bound once at init to the best path for the
// running CPU (see CurrentPath). Set HWY_NO_SIMD=1 to force the portable
// path. Neither path uses fused multiply-add, so both round identically.
//
// # Coefficient Layout
//
// ForwardDCT leaves the spectrum transposed: element r*8+c holds the
// coefficient for vertical frequency c and horizontal frequency r.
// InverseDCT expects that same transposed layout and returns pixels in
// natural row-major order. The table adjustments transpose the tables to
// match, so the usual pipeline is:
//
//	// encoder
//	fwd := dct.NewForwardTable(&raw)    // once per table
//	dct.ForwardDCT(&blk)
//	blk.Quantize(&coeffs, &fwd)
//
//	// decoder
//	inv := dct.NewInverseTable(&raw)    // once per table
//	blk.Dequantize(&coeffs, &inv)
//	dct.InverseDCT(&blk)
//
// Quantization steps must be non-zero; a zero step yields +Inf in the
// forward table and non-finite coefficients.
package dct
