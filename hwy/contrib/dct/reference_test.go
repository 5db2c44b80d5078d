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

import (
	"math"
	"math/rand"
)

// refCos[x][u] = cos((2x+1) * u * pi / 16)
var refCos = func() (t [8][8]float64) {
	for x := range 8 {
		for u := range 8 {
			t[x][u] = math.Cos(float64(2*x+1) * float64(u) * math.Pi / 16)
		}
	}
	return t
}()

func refC(u int) float64 {
	if u == 0 {
		return 1 / math.Sqrt2
	}
	return 1
}

// referenceDCT is the textbook JPEG forward DCT in float64, natural order:
// F(u,v) = 1/4 C(u) C(v) sum_x sum_y f(x,y) cos((2x+1)u pi/16) cos((2y+1)v pi/16)
func referenceDCT(src *[Size]float64) [Size]float64 {
	var dst [Size]float64
	for u := range 8 {
		for v := range 8 {
			var sum float64
			for x := range 8 {
				for y := range 8 {
					sum += src[x*8+y] * refCos[x][u] * refCos[y][v]
				}
			}
			dst[u*8+v] = 0.25 * refC(u) * refC(v) * sum
		}
	}
	return dst
}

// referenceIDCT inverts referenceDCT.
func referenceIDCT(src *[Size]float64) [Size]float64 {
	var dst [Size]float64
	for x := range 8 {
		for y := range 8 {
			var sum float64
			for u := range 8 {
				for v := range 8 {
					sum += refC(u) * refC(v) * src[u*8+v] * refCos[x][u] * refCos[y][v]
				}
			}
			dst[x*8+y] = 0.25 * sum
		}
	}
	return dst
}

// wikiBlock is the 8x8 sample block from the JPEG article on Wikipedia,
// the customary worked example for the baseline DCT.
var wikiBlock = Block8x8F{
	52, 55, 61, 66, 70, 61, 64, 73,
	63, 59, 55, 90, 109, 85, 69, 72,
	62, 59, 68, 113, 144, 104, 66, 73,
	63, 58, 71, 122, 154, 106, 70, 69,
	67, 61, 68, 104, 126, 88, 68, 70,
	79, 65, 60, 70, 77, 68, 58, 75,
	85, 71, 64, 59, 55, 61, 65, 83,
	87, 79, 69, 68, 65, 76, 78, 94,
}

// wikiCoefficients is the DCT of wikiBlock - 128, natural order.
var wikiCoefficients = [Size]float64{
	-415.3750, -30.1857, -61.1971, 27.2393, 56.1250, -20.0952, -2.3876, 0.4618,
	4.4655, -21.8574, -60.7580, 10.2536, 13.1451, -7.0874, -8.5354, 4.8769,
	-46.8345, 7.3706, 77.1294, -24.5620, -28.9117, 9.9335, 5.4168, -5.6490,
	-48.5350, 12.0684, 34.0998, -14.7594, -10.2406, 6.2960, 1.8312, 1.9459,
	12.1250, -6.5534, -13.1961, -3.9514, -1.8750, 1.7453, -2.7872, 3.1353,
	-7.7347, 2.9055, 2.3798, -5.9393, -2.3778, 0.9414, 4.3037, 1.8487,
	-1.0307, 0.1831, 0.4168, -2.4156, -0.8778, -3.0193, 4.1206, -0.6619,
	-0.1654, 0.1416, -1.0715, -4.1929, -1.1703, -0.0978, 0.5013, 1.6755,
}

func randomBlock(rng *rand.Rand, amplitude float32) Block8x8F {
	var b Block8x8F
	for i := range b {
		b[i] = (rng.Float32()*2 - 1) * amplitude
	}
	return b
}

func randomSteps(rng *rand.Rand) [Size]uint16 {
	var s [Size]uint16
	for i := range s {
		s[i] = uint16(1 + rng.Intn(255))
	}
	return s
}

func unitSteps() [Size]uint16 {
	var s [Size]uint16
	for i := range s {
		s[i] = 1
	}
	return s
}

func toFloat64(b *Block8x8F) [Size]float64 {
	var out [Size]float64
	for i, v := range b {
		out[i] = float64(v)
	}
	return out
}
