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
	"flag"
	"io"
	"strings"

	"github.com/pkg/errors"
)

func newFlagSet(name string, output io.Writer) *flag.FlagSet {
	fs := flag.NewFlagSet("dct8 "+name, flag.ContinueOnError)
	fs.SetOutput(output)
	return fs
}

// parseFlags parses args into fs. It reports false with a nil error when
// the caller asked for help and nothing else should run.
func parseFlags(fs *flag.FlagSet, args []string) (bool, error) {
	err := fs.Parse(args)
	if errors.Is(err, flag.ErrHelp) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	if fs.NArg() > 0 {
		return false, errors.Errorf("unexpected arguments: %s", strings.Join(fs.Args(), " "))
	}
	return true, nil
}
