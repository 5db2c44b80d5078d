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

//go:build amd64 && goexperiment.simd

package dct

import "github.com/ajroetker/go-jpegdct/hwy"

func init() {
	// Runs after transform.go's init (z_ sorts last), overriding the
	// portable wide kernels when the CPU has AVX2.
	if !hwy.HasAVX2() {
		return
	}
	ForwardDCTWide = ForwardDCT_AVX2
	InverseDCTWide = InverseDCT_AVX2
	wideAccelerated = true
	selectPath()
}
