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

// Standard quantization tables from ITU T.81 Annex K, natural order.
var (
	// LuminanceTable is Table K.1.
	LuminanceTable = [Size]uint16{
		16, 11, 10, 16, 24, 40, 51, 61,
		12, 12, 14, 19, 26, 58, 60, 55,
		14, 13, 16, 24, 40, 57, 69, 56,
		14, 17, 22, 29, 51, 87, 80, 62,
		18, 22, 37, 56, 68, 109, 103, 77,
		24, 35, 55, 64, 81, 104, 113, 92,
		49, 64, 78, 87, 103, 121, 120, 101,
		72, 92, 95, 98, 112, 100, 103, 99,
	}

	// ChrominanceTable is Table K.2.
	ChrominanceTable = [Size]uint16{
		17, 18, 24, 47, 99, 99, 99, 99,
		18, 21, 26, 66, 99, 99, 99, 99,
		24, 26, 56, 99, 99, 99, 99, 99,
		47, 66, 99, 99, 99, 99, 99, 99,
		99, 99, 99, 99, 99, 99, 99, 99,
		99, 99, 99, 99, 99, 99, 99, 99,
		99, 99, 99, 99, 99, 99, 99, 99,
		99, 99, 99, 99, 99, 99, 99, 99,
	}
)

// Quality bounds accepted by ScaleTable.
const (
	MinQuality = 1
	MaxQuality = 100
)

// ClampQuality limits quality to [MinQuality, MaxQuality], the setting
// QualityScale and ScaleTable actually apply.
func ClampQuality(quality int) int {
	return min(max(quality, MinQuality), MaxQuality)
}

// QualityScale returns the libjpeg percentage scale for a quality setting,
// after clamping it with ClampQuality. Quality 50 is 100%.
func QualityScale(quality int) int {
	quality = ClampQuality(quality)
	if quality < 50 {
		return 5000 / quality
	}
	return 200 - quality*2
}

// ScaleTable scales base by the libjpeg quality curve and clamps every step
// to the baseline range [1, 255].
func ScaleTable(base *[Size]uint16, quality int) [Size]uint16 {
	scale := QualityScale(quality)

	var out [Size]uint16
	for i, b := range base {
		v := (int(b)*scale + 50) / 100
		out[i] = uint16(min(max(v, 1), 255))
	}
	return out
}
