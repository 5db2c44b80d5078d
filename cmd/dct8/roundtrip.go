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

package main

import (
	"fmt"
	"image"
	"image/color"
	_ "image/gif"
	"image/jpeg"
	"image/png"
	"io"
	"math"
	"os"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/pkg/errors"
	"golang.org/x/image/bmp"
	"golang.org/x/image/tiff"

	"github.com/ajroetker/go-jpegdct/hwy/contrib/dct"
	hwyimage "github.com/ajroetker/go-jpegdct/hwy/contrib/image"
	"github.com/ajroetker/go-jpegdct/hwy/contrib/workerpool"
)

func runRoundTrip(args []string, stdout io.Writer) error {
	fs := newFlagSet("roundtrip", stdout)
	in := fs.String("in", "", "input image: PNG, JPEG, GIF, BMP or TIFF (required)")
	out := fs.String("out", "", "optional output image; format follows the extension, PNG by default")
	quality := fs.Int("quality", 75, "JPEG quality, 1 to 100")
	workers := fs.Int("workers", runtime.GOMAXPROCS(0), "number of worker goroutines")
	if ok, err := parseFlags(fs, args); !ok {
		return err
	}
	if *in == "" {
		return errors.New("-in flag is required")
	}

	src, err := decodeLuma(*in)
	if err != nil {
		return err
	}

	q := dct.ClampQuality(*quality)
	steps := dct.ScaleTable(&dct.LuminanceTable, q)
	fwd := dct.NewForwardTable(&steps)
	inv := dct.NewInverseTable(&steps)

	pool := workerpool.New(*workers)
	defer pool.Close()

	dst := src.Clone()
	dct.ForwardImage(pool, dst, &fwd)
	dct.InverseImage(pool, dst, &inv)

	fmt.Fprintf(stdout, "input:   %s (%dx%d)\n", *in, src.Width(), src.Height())
	fmt.Fprintf(stdout, "quality: %d\n", q)
	fmt.Fprintf(stdout, "path:    %s\n", dct.CurrentPath())
	fmt.Fprintf(stdout, "psnr:    %.2f dB\n", psnr(src, dst))

	if *out != "" {
		if err := encodeLuma(*out, dst, q); err != nil {
			return err
		}
		fmt.Fprintf(stdout, "output:  %s\n", *out)
	}
	return nil
}

// decodeLuma reads an image file and converts it to an edge-padded luma
// plane of 8-bit sample values.
func decodeLuma(path string) (*hwyimage.Image[float32], error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrapf(err, "open %s", path)
	}
	defer f.Close()

	img, format, err := image.Decode(f)
	if err != nil {
		return nil, errors.Wrapf(err, "decode %s", path)
	}
	b := img.Bounds()
	if b.Dx() <= 0 || b.Dy() <= 0 {
		return nil, errors.Errorf("%s image %s has no pixels", format, path)
	}

	plane := hwyimage.NewImage[float32](b.Dx(), b.Dy())
	for y := range b.Dy() {
		row := plane.Row(y)
		for x := range b.Dx() {
			g := color.GrayModel.Convert(img.At(b.Min.X+x, b.Min.Y+y)).(color.Gray)
			row[x] = float32(g.Y)
		}
	}
	plane.PadEdges()
	return plane, nil
}

func encodeLuma(path string, plane *hwyimage.Image[float32], quality int) error {
	gray := image.NewGray(image.Rect(0, 0, plane.Width(), plane.Height()))
	for y := range plane.Height() {
		row := plane.Row(y)
		for x := range plane.Width() {
			gray.Pix[y*gray.Stride+x] = uint8(min(max(row[x], 0), dct.MaxSample))
		}
	}

	f, err := os.Create(path)
	if err != nil {
		return errors.Wrapf(err, "create %s", path)
	}

	switch strings.ToLower(filepath.Ext(path)) {
	case ".bmp":
		err = bmp.Encode(f, gray)
	case ".tif", ".tiff":
		err = tiff.Encode(f, gray, &tiff.Options{Compression: tiff.Deflate})
	case ".jpg", ".jpeg":
		err = jpeg.Encode(f, gray, &jpeg.Options{Quality: quality})
	default:
		err = png.Encode(f, gray)
	}
	if cerr := f.Close(); err == nil {
		err = cerr
	}
	return errors.Wrapf(err, "encode %s", path)
}

// psnr compares the visible area of two planes of 8-bit samples.
func psnr(a, b *hwyimage.Image[float32]) float64 {
	var sum float64
	for y := range a.Height() {
		ra, rb := a.Row(y), b.Row(y)
		for x := range a.Width() {
			d := float64(ra[x] - rb[x])
			sum += d * d
		}
	}
	mse := sum / float64(a.Width()*a.Height())
	if mse == 0 {
		return math.Inf(1)
	}
	return 10 * math.Log10(dct.MaxSample*dct.MaxSample/mse)
}
