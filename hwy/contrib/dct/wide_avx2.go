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

import "simd/archsimd"

// AVX2 broadcast butterfly coefficients.
var (
	avx2_0_7071  = archsimd.BroadcastFloat32x8(c0_7071)
	avx2_0_3826  = archsimd.BroadcastFloat32x8(c0_3826)
	avx2_0_5411  = archsimd.BroadcastFloat32x8(c0_5411)
	avx2_1_3065  = archsimd.BroadcastFloat32x8(c1_3065)
	avx2_1_4142  = archsimd.BroadcastFloat32x8(c1_4142)
	avx2_1_8477  = archsimd.BroadcastFloat32x8(c1_8477)
	avx2_n1_0823 = archsimd.BroadcastFloat32x8(cn1_0823)
	avx2_n2_6131 = archsimd.BroadcastFloat32x8(cn2_6131)
)

// ForwardDCT_AVX2 is the wide forward transform on Float32x8 registers.
// Products are added with separate instructions, never FMA, so results
// match BaseForwardDCT bit for bit.
func ForwardDCT_AVX2(b *Block8x8F) {
	fdct8x8_AVX2(b)
	b.Transpose()
	fdct8x8_AVX2(b)
}

// InverseDCT_AVX2 is the wide inverse transform on Float32x8 registers.
func InverseDCT_AVX2(b *Block8x8F) {
	idct8x8_AVX2(b)
	b.Transpose()
	idct8x8_AVX2(b)
}

func fdct8x8_AVX2(b *Block8x8F) {
	v0 := archsimd.LoadFloat32x8Slice(b[0:8])
	v1 := archsimd.LoadFloat32x8Slice(b[8:16])
	v2 := archsimd.LoadFloat32x8Slice(b[16:24])
	v3 := archsimd.LoadFloat32x8Slice(b[24:32])
	v4 := archsimd.LoadFloat32x8Slice(b[32:40])
	v5 := archsimd.LoadFloat32x8Slice(b[40:48])
	v6 := archsimd.LoadFloat32x8Slice(b[48:56])
	v7 := archsimd.LoadFloat32x8Slice(b[56:64])

	tmp0 := v0.Add(v7)
	tmp7 := v0.Sub(v7)
	tmp1 := v1.Add(v6)
	tmp6 := v1.Sub(v6)
	tmp2 := v2.Add(v5)
	tmp5 := v2.Sub(v5)
	tmp3 := v3.Add(v4)
	tmp4 := v3.Sub(v4)

	// Even part
	tmp10 := tmp0.Add(tmp3)
	tmp13 := tmp0.Sub(tmp3)
	tmp11 := tmp1.Add(tmp2)
	tmp12 := tmp1.Sub(tmp2)

	tmp10.Add(tmp11).StoreSlice(b[0:8])
	tmp10.Sub(tmp11).StoreSlice(b[32:40])

	z1 := tmp12.Add(tmp13).Mul(avx2_0_7071)
	tmp13.Add(z1).StoreSlice(b[16:24])
	tmp13.Sub(z1).StoreSlice(b[48:56])

	// Odd part
	tmp10 = tmp4.Add(tmp5)
	tmp11 = tmp5.Add(tmp6)
	tmp12 = tmp6.Add(tmp7)

	z5 := tmp10.Sub(tmp12).Mul(avx2_0_3826)
	z2 := avx2_0_5411.Mul(tmp10).Add(z5)
	z4 := avx2_1_3065.Mul(tmp12).Add(z5)
	z3 := tmp11.Mul(avx2_0_7071)

	z11 := tmp7.Add(z3)
	z13 := tmp7.Sub(z3)

	z13.Add(z2).StoreSlice(b[40:48])
	z13.Sub(z2).StoreSlice(b[24:32])
	z11.Add(z4).StoreSlice(b[8:16])
	z11.Sub(z4).StoreSlice(b[56:64])
}

func idct8x8_AVX2(b *Block8x8F) {
	// Even part
	tmp0 := archsimd.LoadFloat32x8Slice(b[0:8])
	tmp1 := archsimd.LoadFloat32x8Slice(b[16:24])
	tmp2 := archsimd.LoadFloat32x8Slice(b[32:40])
	tmp3 := archsimd.LoadFloat32x8Slice(b[48:56])

	tmp10 := tmp0.Add(tmp2)
	tmp11 := tmp0.Sub(tmp2)

	tmp13 := tmp1.Add(tmp3)
	tmp12 := tmp1.Sub(tmp3).Mul(avx2_1_4142).Sub(tmp13)

	tmp0 = tmp10.Add(tmp13)
	tmp3 = tmp10.Sub(tmp13)
	tmp1 = tmp11.Add(tmp12)
	tmp2 = tmp11.Sub(tmp12)

	// Odd part
	tmp4 := archsimd.LoadFloat32x8Slice(b[8:16])
	tmp5 := archsimd.LoadFloat32x8Slice(b[24:32])
	tmp6 := archsimd.LoadFloat32x8Slice(b[40:48])
	tmp7 := archsimd.LoadFloat32x8Slice(b[56:64])

	z13 := tmp6.Add(tmp5)
	z10 := tmp6.Sub(tmp5)
	z11 := tmp4.Add(tmp7)
	z12 := tmp4.Sub(tmp7)

	tmp7 = z11.Add(z13)
	tmp11 = z11.Sub(z13).Mul(avx2_1_4142)

	z5 := z10.Add(z12).Mul(avx2_1_8477)

	tmp10 = z12.Mul(avx2_n1_0823).Add(z5)
	tmp12 = z10.Mul(avx2_n2_6131).Add(z5)

	tmp6 = tmp12.Sub(tmp7)
	tmp5 = tmp11.Sub(tmp6)
	tmp4 = tmp10.Sub(tmp5)

	tmp0.Add(tmp7).StoreSlice(b[0:8])
	tmp0.Sub(tmp7).StoreSlice(b[56:64])
	tmp1.Add(tmp6).StoreSlice(b[8:16])
	tmp1.Sub(tmp6).StoreSlice(b[48:56])
	tmp2.Add(tmp5).StoreSlice(b[16:24])
	tmp2.Sub(tmp5).StoreSlice(b[40:48])
	tmp3.Add(tmp4).StoreSlice(b[24:32])
	tmp3.Sub(tmp4).StoreSlice(b[32:40])
}
