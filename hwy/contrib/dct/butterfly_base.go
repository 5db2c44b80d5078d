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

// vec4 is four float32 lanes processed side by side.
type vec4 [4]float32

func splat4(v float32) vec4 {
	return vec4{v, v, v, v}
}

func (a vec4) add(b vec4) vec4 {
	return vec4{a[0] + b[0], a[1] + b[1], a[2] + b[2], a[3] + b[3]}
}

func (a vec4) sub(b vec4) vec4 {
	return vec4{a[0] - b[0], a[1] - b[1], a[2] - b[2], a[3] - b[3]}
}

// mul rounds each product to float32 so the compiler cannot fuse it into
// a following add.
func (a vec4) mul(b vec4) vec4 {
	return vec4{
		float32(a[0] * b[0]),
		float32(a[1] * b[1]),
		float32(a[2] * b[2]),
		float32(a[3] * b[3]),
	}
}

var (
	v4_0_7071  = splat4(c0_7071)
	v4_0_3826  = splat4(c0_3826)
	v4_0_5411  = splat4(c0_5411)
	v4_1_3065  = splat4(c1_3065)
	v4_1_4142  = splat4(c1_4142)
	v4_1_8477  = splat4(c1_8477)
	v4_n1_0823 = splat4(cn1_0823)
	v4_n2_6131 = splat4(cn2_6131)
)

// fdct8x4 applies the 1D forward butterfly down one 4-column half of a
// block. v[2*k] is row k of that half; odd elements belong to the other half
// and are not touched.
func fdct8x4(v []vec4) {
	_ = v[14]

	tmp0 := v[0].add(v[14])
	tmp7 := v[0].sub(v[14])
	tmp1 := v[2].add(v[12])
	tmp6 := v[2].sub(v[12])
	tmp2 := v[4].add(v[10])
	tmp5 := v[4].sub(v[10])
	tmp3 := v[6].add(v[8])
	tmp4 := v[6].sub(v[8])

	// Even part
	tmp10 := tmp0.add(tmp3)
	tmp13 := tmp0.sub(tmp3)
	tmp11 := tmp1.add(tmp2)
	tmp12 := tmp1.sub(tmp2)

	v[0] = tmp10.add(tmp11)
	v[8] = tmp10.sub(tmp11)

	z1 := tmp12.add(tmp13).mul(v4_0_7071)
	v[4] = tmp13.add(z1)
	v[12] = tmp13.sub(z1)

	// Odd part
	tmp10 = tmp4.add(tmp5)
	tmp11 = tmp5.add(tmp6)
	tmp12 = tmp6.add(tmp7)

	z5 := tmp10.sub(tmp12).mul(v4_0_3826)
	z2 := v4_0_5411.mul(tmp10).add(z5)
	z4 := v4_1_3065.mul(tmp12).add(z5)
	z3 := tmp11.mul(v4_0_7071)

	z11 := tmp7.add(z3)
	z13 := tmp7.sub(z3)

	v[10] = z13.add(z2)
	v[6] = z13.sub(z2)
	v[2] = z11.add(z4)
	v[14] = z11.sub(z4)
}

// idct8x4 applies the 1D inverse butterfly down one 4-column half of a
// block, with the same layout as fdct8x4.
func idct8x4(v []vec4) {
	_ = v[14]

	// Even part
	tmp0 := v[0]
	tmp1 := v[4]
	tmp2 := v[8]
	tmp3 := v[12]

	tmp10 := tmp0.add(tmp2)
	tmp11 := tmp0.sub(tmp2)

	tmp13 := tmp1.add(tmp3)
	tmp12 := tmp1.sub(tmp3).mul(v4_1_4142).sub(tmp13)

	tmp0 = tmp10.add(tmp13)
	tmp3 = tmp10.sub(tmp13)
	tmp1 = tmp11.add(tmp12)
	tmp2 = tmp11.sub(tmp12)

	// Odd part
	tmp4 := v[2]
	tmp5 := v[6]
	tmp6 := v[10]
	tmp7 := v[14]

	z13 := tmp6.add(tmp5)
	z10 := tmp6.sub(tmp5)
	z11 := tmp4.add(tmp7)
	z12 := tmp4.sub(tmp7)

	tmp7 = z11.add(z13)
	tmp11 = z11.sub(z13).mul(v4_1_4142)

	z5 := z10.add(z12).mul(v4_1_8477)

	tmp10 = z12.mul(v4_n1_0823).add(z5)
	tmp12 = z10.mul(v4_n2_6131).add(z5)

	tmp6 = tmp12.sub(tmp7)
	tmp5 = tmp11.sub(tmp6)
	tmp4 = tmp10.sub(tmp5)

	v[0] = tmp0.add(tmp7)
	v[14] = tmp0.sub(tmp7)
	v[2] = tmp1.add(tmp6)
	v[12] = tmp1.sub(tmp6)
	v[4] = tmp2.add(tmp5)
	v[10] = tmp2.sub(tmp5)
	v[6] = tmp3.add(tmp4)
	v[8] = tmp3.sub(tmp4)
}
