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

// AdjustForInverse turns a table of raw quantization steps into dequantization
// multipliers for InverseDCT:
//
//	table[i] = 0.125 * table[i] * aan[i]
//
// then transposes it to the transposed spectrum layout. Apply exactly once
// per table; a second call corrupts it.
func AdjustForInverse(table *Block8x8F) {
	for i := range table {
		table[i] = 0.125 * table[i] * adjustmentCoefficients[i]
	}
	table.Transpose()
}

// AdjustForForward turns a table of raw quantization steps into reciprocal
// divisors for ForwardDCT output:
//
//	table[i] = 0.125 / (table[i] * aan[i])
//
// then transposes it. Steps must be non-zero: a zero step becomes +Inf and
// is not trapped. Apply exactly once per table.
func AdjustForForward(table *Block8x8F) {
	for i := range table {
		table[i] = 0.125 / (table[i] * adjustmentCoefficients[i])
	}
	table.Transpose()
}

// NewInverseTable converts raw quantization steps in natural order, as read
// from a DQT segment, into an adjusted inverse table.
func NewInverseTable(raw *[Size]uint16) Block8x8F {
	t := tableFromSteps(raw)
	AdjustForInverse(&t)
	return t
}

// NewForwardTable converts raw quantization steps in natural order into an
// adjusted forward table.
func NewForwardTable(raw *[Size]uint16) Block8x8F {
	t := tableFromSteps(raw)
	AdjustForForward(&t)
	return t
}

func tableFromSteps(raw *[Size]uint16) Block8x8F {
	var t Block8x8F
	for i, s := range raw {
		t[i] = float32(s)
	}
	return t
}
