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

//go:build amd64 && !goexperiment.simd

package hwy

import "golang.org/x/sys/cpu"

// Fallback for when GOEXPERIMENT=simd is not enabled.
//
// Without archsimd there is no way to emit vector instructions from Go, so
// the level stays scalar. The CPU flags are still recorded so callers can
// report what a GOEXPERIMENT=simd build would have used.

// hasAVX2 records whether the CPU (and OS) support AVX2.
var hasAVX2 bool

func init() {
	hasAVX2 = cpu.X86.HasAVX2

	setScalarMode()
}

// HasAVX2 returns true if the CPU supports AVX2 instructions.
func HasAVX2() bool {
	return hasAVX2
}
