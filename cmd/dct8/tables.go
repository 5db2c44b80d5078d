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
	"io"
	"strings"

	"github.com/samber/lo"

	"github.com/ajroetker/go-jpegdct/hwy/contrib/dct"
)

func runTables(args []string, stdout io.Writer) error {
	fs := newFlagSet("tables", stdout)
	quality := fs.Int("quality", 50, "JPEG quality, 1 to 100")
	if ok, err := parseFlags(fs, args); !ok {
		return err
	}
	q := dct.ClampQuality(*quality)

	bases := []struct {
		name  string
		table *[dct.Size]uint16
	}{
		{"luminance", &dct.LuminanceTable},
		{"chrominance", &dct.ChrominanceTable},
	}
	for i, base := range bases {
		if i > 0 {
			fmt.Fprintln(stdout)
		}
		steps := dct.ScaleTable(base.table, q)
		fwd := dct.NewForwardTable(&steps)
		inv := dct.NewInverseTable(&steps)

		fmt.Fprintf(stdout, "# %s, quality %d (scale %d%%)\n", base.name, q, dct.QualityScale(q))
		fmt.Fprintln(stdout, "## steps, natural order")
		writeRows(stdout, steps[:], "%4d")
		fmt.Fprintln(stdout, "## forward, transposed")
		writeRows(stdout, fwd[:], "%11.7f")
		fmt.Fprintln(stdout, "## inverse, transposed")
		writeRows(stdout, inv[:], "%11.5f")
	}
	return nil
}

func writeRows[T any](w io.Writer, values []T, format string) {
	for _, row := range lo.Chunk(values, 8) {
		cells := lo.Map(row, func(v T, _ int) string { return fmt.Sprintf(format, v) })
		fmt.Fprintln(w, strings.Join(cells, " "))
	}
}
