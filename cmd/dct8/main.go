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

// Command dct8 inspects and exercises the 8x8 DCT kernels.
//
// Usage:
//
//	dct8 info                               # dispatch level and selected path
//	dct8 check -n 100000 -workers 8         # round-trip and path self-check
//	dct8 tables -quality 75                 # raw and adjusted tables
//	dct8 roundtrip -in photo.png -quality 75 -out result.png
//
// Set HWY_NO_SIMD=1 to force the portable path.
package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/pkg/errors"
)

type command struct {
	name    string
	summary string
	run     func(args []string, stdout io.Writer) error
}

var commands = []command{
	{"info", "print the dispatch level and selected transform path", runInfo},
	{"check", "verify round trips and path equivalence on random blocks", runCheck},
	{"tables", "print raw and adjusted quantization tables", runTables},
	{"roundtrip", "transform and reconstruct an image, reporting PSNR", runRoundTrip},
}

func main() {
	if err := run(os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run(args []string, stdout, stderr io.Writer) error {
	if len(args) == 0 {
		usage(stderr)
		return errors.New("no command given")
	}
	name := args[0]
	for _, c := range commands {
		if c.name == name {
			return errors.Wrap(c.run(args[1:], stdout), name)
		}
	}
	if name == "help" || name == "-h" || name == "-help" {
		usage(stdout)
		return nil
	}
	usage(stderr)
	return errors.Errorf("unknown command %q", name)
}

func usage(w io.Writer) {
	var b strings.Builder
	b.WriteString("Usage: dct8 <command> [flags]\n\nCommands:\n")
	for _, c := range commands {
		fmt.Fprintf(&b, "  %-10s %s\n", c.name, c.summary)
	}
	b.WriteString("\nRun 'dct8 <command> -h' for command flags.\n")
	io.WriteString(w, b.String())
}
