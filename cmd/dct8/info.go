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

	"github.com/ajroetker/go-jpegdct/hwy"
	"github.com/ajroetker/go-jpegdct/hwy/contrib/dct"
)

func runInfo(args []string, stdout io.Writer) error {
	fs := newFlagSet("info", stdout)
	if ok, err := parseFlags(fs, args); !ok {
		return err
	}

	fmt.Fprintf(stdout, "level:   %s\n", hwy.CurrentLevel())
	fmt.Fprintf(stdout, "target:  %s\n", hwy.CurrentName())
	fmt.Fprintf(stdout, "width:   %d bytes (%d float32 lanes)\n", hwy.CurrentWidth(), hwy.MaxLanes[float32]())
	fmt.Fprintf(stdout, "avx2:    %t\n", hwy.HasAVX2())
	fmt.Fprintf(stdout, "no-simd: %t\n", hwy.NoSimdEnv())
	fmt.Fprintf(stdout, "path:    %s\n", dct.CurrentPath())
	return nil
}
