// Copyright 2016 The Citar Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"bufio"
	"encoding/gob"
	"flag"
	"fmt"
	"io"
	"os"
	"runtime/pprof"
	"strings"

	"github.com/danieldk/spellcheck/internal/cli"
	"github.com/danieldk/spellcheck/spell"
)

func init() {
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s [options] config [input.txt] [output.txt]\n\n", os.Args[0])
		flag.PrintDefaults()
	}
}

var cpuprofile = flag.String("cpuprofile", "", "write cpu profile to file")
var modelFile = flag.String("model", "", "load a precompiled gob-encoded checker instead of config's aff/dic")
var saveModel = flag.String("save-model", "", "write a gob-encoded checker to this path after loading, then exit")

func main() {
	flag.Parse()

	if flag.NArg() == 0 || flag.NArg() > 3 {
		flag.Usage()
		os.Exit(1)
	}

	config := cli.MustParseConfig(flag.Arg(0))
	checker := loadChecker(config)

	if *saveModel != "" {
		f, err := os.Create(*saveModel)
		cli.ExitIfError("cannot create model file", err)
		defer f.Close()

		cli.ExitIfError("cannot encode model", gob.NewEncoder(f).Encode(checker))
		return
	}

	inputFile := cli.FileOrStdin(flag.Args(), 1)
	defer inputFile.Close()

	outputFile := cli.FileOrStdout(flag.Args(), 2)
	defer outputFile.Close()

	if *cpuprofile != "" {
		f, err := os.Create(*cpuprofile)
		cli.ExitIfError("cannot create CPU profile", err)
		pprof.StartCPUProfile(f)
		defer pprof.StopCPUProfile()
	}

	bufWriter := bufio.NewWriter(outputFile)
	defer bufWriter.Flush()

	scanner := bufio.NewScanner(inputFile)
	for scanner.Scan() {
		for _, token := range strings.Fields(scanner.Text()) {
			checkToken(bufWriter, checker, token)
		}
	}
	cli.ExitIfError("error reading input", scanner.Err())
}

func loadChecker(config *cli.Config) *spell.Checker {
	if *modelFile != "" {
		f, err := os.Open(*modelFile)
		cli.ExitIfError("cannot open model", err)
		defer f.Close()

		var checker spell.Checker
		cli.ExitIfError("cannot decode model", gob.NewDecoder(f).Decode(&checker))
		return &checker
	}

	affText, err := os.ReadFile(config.Affix)
	cli.ExitIfError("cannot read affix file", err)

	dicText, err := os.ReadFile(config.Dictionary)
	cli.ExitIfError("cannot read dictionary file", err)

	checker, err := spell.New(string(affText), string(dicText))
	cli.ExitIfError("cannot construct checker", err)

	if config.Personal != "" {
		personalText, err := os.ReadFile(config.Personal)
		cli.ExitIfError("cannot read personal dictionary", err)
		checker.Personal(string(personalText))
	}

	return checker
}

func checkToken(w io.Writer, checker *spell.Checker, token string) {
	if checker.Correct(token) {
		fmt.Fprintf(w, "%s\tCORRECT\n", token)
		return
	}

	suggestions := checker.Suggest(token)
	if len(suggestions) == 0 {
		fmt.Fprintf(w, "%s\tINCORRECT\n", token)
		return
	}

	fmt.Fprintf(w, "%s\tINCORRECT\t%s\n", token, strings.Join(suggestions, ","))
}
