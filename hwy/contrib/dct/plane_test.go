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
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ajroetker/go-jpegdct/hwy/contrib/image"
	"github.com/ajroetker/go-jpegdct/hwy/contrib/workerpool"
)

func smoothImage(width, height int) *image.Image[float32] {
	img := image.NewImage[float32](width, height)
	for y := range height {
		for x := range width {
			v := 128 + 60*math.Sin(float64(x)/5) + 40*math.Cos(float64(y)/7)
			img.Set(x, y, float32(math.Round(v)))
		}
	}
	img.PadEdges()
	return img
}

func psnr(a, b *image.Image[float32]) float64 {
	var sum float64
	for y := range a.Height() {
		for x := range a.Width() {
			d := float64(a.At(x, y) - b.At(x, y))
			sum += d * d
		}
	}
	mse := sum / float64(a.Width()*a.Height())
	if mse == 0 {
		return math.Inf(1)
	}
	return 10 * math.Log10(MaxSample*MaxSample/mse)
}

func encodeDecode(pool *workerpool.Pool, src *image.Image[float32], quality int) *image.Image[float32] {
	steps := ScaleTable(&LuminanceTable, quality)
	fwd := NewForwardTable(&steps)
	inv := NewInverseTable(&steps)

	img := src.Clone()
	ForwardImage(pool, img, &fwd)
	InverseImage(pool, img, &inv)
	return img
}

func TestImageRoundTrip(t *testing.T) {
	src := smoothImage(37, 23)

	t.Run("Lossless", func(t *testing.T) {
		got := encodeDecode(nil, src, 100)
		assert.Greater(t, psnr(src, got), 45.0)
	})

	t.Run("Quality75", func(t *testing.T) {
		got := encodeDecode(nil, src, 75)
		assert.Greater(t, psnr(src, got), 30.0)
	})

	t.Run("SamplesStayInRange", func(t *testing.T) {
		got := encodeDecode(nil, src, 10)
		for y := range got.Height() {
			for x := range got.Width() {
				v := got.At(x, y)
				require.GreaterOrEqual(t, v, float32(0))
				require.LessOrEqual(t, v, float32(MaxSample))
				require.Equal(t, float32(math.Round(float64(v))), v)
			}
		}
	})
}

func TestImagePoolMatchesSerial(t *testing.T) {
	pool := workerpool.New(4)
	defer pool.Close()

	src := smoothImage(130, 77)
	for _, q := range []int{100, 50, 5} {
		serial := encodeDecode(nil, src, q)
		parallel := encodeDecode(pool, src, q)
		for y := range src.Height() {
			require.Equal(t, serial.Row(y), parallel.Row(y), "quality %d row %d", q, y)
		}
	}
}

func TestImagesShareOnePool(t *testing.T) {
	pool := workerpool.New(3)
	defer pool.Close()

	srcs := []*image.Image[float32]{
		smoothImage(64, 40), smoothImage(37, 23), smoothImage(90, 17), smoothImage(8, 8),
	}
	want := make([]*image.Image[float32], len(srcs))
	for i, src := range srcs {
		want[i] = encodeDecode(nil, src, 60)
	}

	got := make([]*image.Image[float32], len(srcs))
	var wg sync.WaitGroup
	for i, src := range srcs {
		wg.Add(1)
		go func() {
			defer wg.Done()
			got[i] = encodeDecode(pool, src, 60)
		}()
	}
	wg.Wait()

	for i := range srcs {
		for y := range srcs[i].Height() {
			require.Equal(t, want[i].Row(y), got[i].Row(y), "image %d row %d", i, y)
		}
	}
}

func TestForwardImageCoefficients(t *testing.T) {
	img := image.NewImage[float32](8, 8)
	img.Fill(200)

	steps := unitSteps()
	fwd := NewForwardTable(&steps)
	ForwardImage(nil, img, &fwd)

	// (200 - 128) * 64 / 8
	assert.Equal(t, float32(576), img.At(0, 0))
	for y := range 8 {
		for x := range 8 {
			if x == 0 && y == 0 {
				continue
			}
			assert.Zero(t, img.At(x, y), "(%d, %d)", x, y)
		}
	}
}

func TestImageNoOps(t *testing.T) {
	steps := unitSteps()
	fwd := NewForwardTable(&steps)

	assert.NotPanics(t, func() {
		ForwardImage(nil, nil, &fwd)
		InverseImage(nil, nil, &fwd)
		ForwardImage(nil, image.NewImage[float32](0, 0), &fwd)
		InverseImage(nil, image.NewImage[float32](0, 0), &fwd)
	})

	img := smoothImage(16, 16)
	before := img.Clone()
	ForwardImage(nil, img, nil)
	InverseImage(nil, img, nil)
	for y := range 16 {
		assert.Equal(t, before.Row(y), img.Row(y))
	}
}
