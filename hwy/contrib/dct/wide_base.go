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

// vec8 is one full block row: eight float32 lanes.
type vec8 [8]float32

func splat8(v float32) vec8 {
	return vec8{v, v, v, v, v, v, v, v}
}

func (a vec8) add(b vec8) vec8 {
	var r vec8
	for i := range r {
		r[i] = a[i] + b[i]
	}
	return r
}

func (a vec8) sub(b vec8) vec8 {
	var r vec8
	for i := range r {
		r[i] = a[i] - b[i]
	}
	return r
}

// mul rounds each product to float32; see vec4.mul.
func (a vec8) mul(b vec8) vec8 {
	var r vec8
	for i := range r {
		r[i] = float32(a[i] * b[i])
	}
	return r
}

var (
	v8_0_7071  = splat8(c0_7071)
	v8_0_3826  = splat8(c0_3826)
	v8_0_5411  = splat8(c0_5411)
	v8_1_3065  = splat8(c1_3065)
	v8_1_4142  = splat8(c1_4142)
	v8_1_8477  = splat8(c1_8477)
	v8_n1_0823 = splat8(cn1_0823)
	v8_n2_6131 = splat8(cn2_6131)
)

// BaseForwardDCTWide is the wide forward transform in portable Go: each
// pass runs the butterfly once over all 8 columns.
func BaseForwardDCTWide(b *Block8x8F) {
	fdct8x8(b.lanes8())
	b.Transpose()
	fdct8x8(b.lanes8())
}

// BaseInverseDCTWide is the wide inverse transform in portable Go.
func BaseInverseDCTWide(b *Block8x8F) {
	idct8x8(b.lanes8())
	b.Transpose()
	idct8x8(b.lanes8())
}

// fdct8x8 applies the 1D forward butterfly down all 8 columns at once.
func fdct8x8(v *[8]vec8) {
	tmp0 := v[0].add(v[7])
	tmp7 := v[0].sub(v[7])
	tmp1 := v[1].add(v[6])
	tmp6 := v[1].sub(v[6])
	tmp2 := v[2].add(v[5])
	tmp5 := v[2].sub(v[5])
	tmp3 := v[3].add(v[4])
	tmp4 := v[3].sub(v[4])

	// Even part
	tmp10 := tmp0.add(tmp3)
	tmp13 := tmp0.sub(tmp3)
	tmp11 := tmp1.add(tmp2)
	tmp12 := tmp1.sub(tmp2)

	v[0] = tmp10.add(tmp11)
	v[4] = tmp10.sub(tmp11)

	z1 := tmp12.add(tmp13).mul(v8_0_7071)
	v[2] = tmp13.add(z1)
	v[6] = tmp13.sub(z1)

	// Odd part
	tmp10 = tmp4.add(tmp5)
	tmp11 = tmp5.add(tmp6)
	tmp12 = tmp6.add(tmp7)

	z5 := tmp10.sub(tmp12).mul(v8_0_3826)
	z2 := v8_0_5411.mul(tmp10).add(z5)
	z4 := v8_1_3065.mul(tmp12).add(z5)
	z3 := tmp11.mul(v8_0_7071)

	z11 := tmp7.add(z3)
	z13 := tmp7.sub(z3)

	v[5] = z13.add(z2)
	v[3] = z13.sub(z2)
	v[1] = z11.add(z4)
	v[7] = z11.sub(z4)
}

// idct8x8 applies the 1D inverse butterfly down all 8 columns at once.
func idct8x8(v *[8]vec8) {
	// Even part
	tmp0 := v[0]
	tmp1 := v[2]
	tmp2 := v[4]
	tmp3 := v[6]

	tmp10 := tmp0.add(tmp2)
	tmp11 := tmp0.sub(tmp2)

	tmp13 := tmp1.add(tmp3)
	tmp12 := tmp1.sub(tmp3).mul(v8_1_4142).sub(tmp13)

	tmp0 = tmp10.add(tmp13)
	tmp3 = tmp10.sub(tmp13)
	tmp1 = tmp11.add(tmp12)
	tmp2 = tmp11.sub(tmp12)

	// Odd part
	tmp4 := v[1]
	tmp5 := v[3]
	tmp6 := v[5]
	tmp7 := v[7]

	z13 := tmp6.add(tmp5)
	z10 := tmp6.sub(tmp5)
	z11 := tmp4.add(tmp7)
	z12 := tmp4.sub(tmp7)

	tmp7 = z11.add(z13)
	tmp11 = z11.sub(z13).mul(v8_1_4142)

	z5 := z10.add(z12).mul(v8_1_8477)

	tmp10 = z12.mul(v8_n1_0823).add(z5)
	tmp12 = z10.mul(v8_n2_6131).add(z5)

	tmp6 = tmp12.sub(tmp7)
	tmp5 = tmp11.sub(tmp6)
	tmp4 = tmp10.sub(tmp5)

	v[0] = tmp0.add(tmp7)
	v[7] = tmp0.sub(tmp7)
	v[1] = tmp1.add(tmp6)
	v[6] = tmp1.sub(tmp6)
	v[2] = tmp2.add(tmp5)
	v[5] = tmp2.sub(tmp5)
	v[3] = tmp3.add(tmp4)
	v[4] = tmp3.sub(tmp4)
}
