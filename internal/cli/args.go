// Copyright 2016 The Citar Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package cli gathers the small conveniences shared by the spellcheck
// command-line tools: positional-argument-or-stream file resolution,
// fatal error reporting, and TOML-based configuration loading.
package cli

import (
	"flag"
	"os"
)

// FileOrStdin opens the file at the given positional index for
// reading when present, otherwise returns os.Stdin.
func FileOrStdin(args []string, idx int) *os.File {
	if len(args) > idx {
		input, err := os.Open(flag.Arg(idx))
		ExitIfError("cannot open input", err)
		return input
	}

	return os.Stdin
}

// FileOrStdout opens the file at the given positional index for
// writing when present, otherwise returns os.Stdout.
func FileOrStdout(args []string, idx int) *os.File {
	if len(args) > idx {
		output, err := os.Create(flag.Arg(idx))
		ExitIfError("cannot create output", err)
		return output
	}

	return os.Stdout
}
