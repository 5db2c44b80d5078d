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
	"context"
	"fmt"
	"io"
	"math"
	"math/rand"
	"runtime"

	"github.com/pkg/errors"
	"github.com/samber/lo"
	"golang.org/x/sync/errgroup"

	"github.com/ajroetker/go-jpegdct/hwy/contrib/dct"
)

const (
	// roundTripTolerance bounds the absolute pixel error of forward,
	// quantize-free table multiply, and inverse.
	roundTripTolerance = 1e-3

	// pathTolerance bounds the difference between kernels, relative to
	// max(1, |coefficient|).
	pathTolerance = 1e-5
)

type checkStats struct {
	blocks    int
	roundTrip float64
	path      float64
}

func runCheck(args []string, stdout io.Writer) error {
	fs := newFlagSet("check", stdout)
	n := fs.Int("n", 10000, "number of random blocks")
	seed := fs.Int64("seed", 1, "random seed")
	workers := fs.Int("workers", runtime.GOMAXPROCS(0), "number of concurrent workers")
	if ok, err := parseFlags(fs, args); !ok {
		return err
	}
	if *n < 0 {
		return errors.Errorf("-n must not be negative, got %d", *n)
	}
	if *workers < 1 {
		return errors.Errorf("-workers must be at least 1, got %d", *workers)
	}

	stats := make([]checkStats, *workers)
	per := (*n + *workers - 1) / *workers

	g, ctx := errgroup.WithContext(context.Background())
	for w := range *workers {
		start := w * per
		end := min(start+per, *n)
		if start >= end {
			break
		}
		g.Go(func() error {
			rng := rand.New(rand.NewSource(*seed + int64(start)))
			return checkBlocks(ctx, rng, start, end, &stats[w])
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	total := lo.SumBy(stats, func(s checkStats) int { return s.blocks })
	maxRoundTrip := lo.Max(lo.Map(stats, func(s checkStats, _ int) float64 { return s.roundTrip }))
	maxPath := lo.Max(lo.Map(stats, func(s checkStats, _ int) float64 { return s.path }))

	fmt.Fprintf(stdout, "path:             %s\n", dct.CurrentPath())
	fmt.Fprintf(stdout, "blocks:           %d\n", total)
	fmt.Fprintf(stdout, "max round trip:   %.3g\n", maxRoundTrip)
	fmt.Fprintf(stdout, "max path diff:    %.3g\n", maxPath)
	fmt.Fprintln(stdout, "ok")
	return nil
}

func checkBlocks(ctx context.Context, rng *rand.Rand, start, end int, stats *checkStats) error {
	for i := start; i < end; i++ {
		if i%1024 == 0 {
			if err := ctx.Err(); err != nil {
				return err
			}
		}

		steps := dct.ScaleTable(&dct.LuminanceTable, 1+rng.Intn(dct.MaxQuality))
		fwd := dct.NewForwardTable(&steps)
		inv := dct.NewInverseTable(&steps)

		var px dct.Block8x8F
		for j := range px {
			px[j] = float32(rng.Intn(dct.MaxSample+1) - dct.LevelShift)
		}

		b := px
		dct.ForwardDCT(&b)

		portable, wide := px, px
		dct.BaseForwardDCT(&portable)
		dct.ForwardDCTWide(&wide)
		d := max(relDiff(&b, &portable), relDiff(&b, &wide))
		stats.path = max(stats.path, d)
		if d > pathTolerance {
			return errors.Errorf("block %d: forward kernels differ by %.3g", i, d)
		}

		b.MultiplyInPlace(&fwd)
		b.MultiplyInPlace(&inv)

		portable, wide = b, b
		dct.InverseDCT(&b)
		dct.BaseInverseDCT(&portable)
		dct.InverseDCTWide(&wide)
		d = max(relDiff(&b, &portable), relDiff(&b, &wide))
		stats.path = max(stats.path, d)
		if d > pathTolerance {
			return errors.Errorf("block %d: inverse kernels differ by %.3g", i, d)
		}

		e := absDiff(&px, &b)
		stats.roundTrip = max(stats.roundTrip, e)
		if e > roundTripTolerance {
			return errors.Errorf("block %d: round trip error %.3g exceeds %g", i, e, roundTripTolerance)
		}
		stats.blocks++
	}
	return nil
}

func absDiff(a, b *dct.Block8x8F) float64 {
	var d float64
	for i := range a {
		d = max(d, math.Abs(float64(a[i])-float64(b[i])))
	}
	return d
}

func relDiff(a, b *dct.Block8x8F) float64 {
	var d float64
	for i := range a {
		diff := math.Abs(float64(a[i]) - float64(b[i]))
		d = max(d, diff/max(1, math.Abs(float64(a[i]))))
	}
	return d
}
