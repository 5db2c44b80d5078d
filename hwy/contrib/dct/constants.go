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

// Butterfly coefficients of the AAN network, rounded to float32.
const (
	// c0_7071 is cos(pi/4).
	c0_7071 float32 = 0.707106781

	// c0_3826 is cos(6*pi/16).
	c0_3826 float32 = 0.382683433

	// c0_5411 is cos(6*pi/16) * sqrt(2).
	c0_5411 float32 = 0.541196100

	// c1_3065 is cos(2*pi/16) * sqrt(2).
	c1_3065 float32 = 1.306562965

	// c1_4142 is sqrt(2).
	c1_4142 float32 = 1.414213562

	// c1_8477 is 2*cos(2*pi/16).
	c1_8477 float32 = 1.847759065

	// cn1_0823 is -2*(cos(2*pi/16) - cos(6*pi/16)).
	cn1_0823 float32 = -1.082392200

	// cn2_6131 is -2*(cos(2*pi/16) + cos(6*pi/16)).
	cn2_6131 float32 = -2.613125930
)

// aanScaleFactor[k] is cos(k*pi/16) * sqrt(2) for k > 0, and 1 for k = 0.
// These are the per-axis output scales of the AAN forward transform, kept
// in float64 so each table product is rounded to float32 only once.
var aanScaleFactor = [8]float64{
	1.0,
	1.387039845,
	1.306562965,
	1.175875602,
	1.0,
	0.785694958,
	0.541196100,
	0.275899379,
}

// adjustmentCoefficients[r*8+c] is float32(aanScaleFactor[r] * aanScaleFactor[c]).
// Built once at package init and read-only afterwards.
var adjustmentCoefficients = buildAdjustmentCoefficients()

func buildAdjustmentCoefficients() Block8x8F {
	var t Block8x8F
	for r := range 8 {
		for c := range 8 {
			t[r*8+c] = float32(aanScaleFactor[r] * aanScaleFactor[c])
		}
	}
	return t
}
