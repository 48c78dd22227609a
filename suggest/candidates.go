// Copyright 2016 The Citar Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package suggest implements the spell checker's suggestion engine:
// candidate generation across six strategies, validation against a
// checker, weight-based ranking, and output formatting. The generation
// strategies cover a replacement table, keyboard-proximity swaps,
// double/missing characters, case variants, and edit distance 1 and 2,
// mirroring the repairs a Hunspell-compatible affix grammar expects a
// suggestion engine to try.
package suggest

import (
	"github.com/danieldk/spellcheck/affix"
	"github.com/danieldk/spellcheck/internal/text"
)

// candidate is a raw suggestion string plus whether it originated from
// the replacement-table strategy (strategy 1), which alone earns the
// weight-10 ranking bonus.
type candidate struct {
	value       string
	fromReplace bool
}

// generate runs strategies 1-5 against v, returning every distinct raw
// candidate produced along with its replacement-table provenance. The
// strategy-6 fallback is generateDistance2, called separately.
func generate(v string, model *affix.Model) []candidate {
	var out []candidate
	seen := make(map[string]bool)
	add := func(value string, fromReplace bool) {
		if value == "" || value == v || seen[value] {
			return
		}
		seen[value] = true
		out = append(out, candidate{value: value, fromReplace: fromReplace})
	}

	// Strategy 1: replacement table.
	for _, occ := range model.ReplacementOccurrences(v) {
		add(v[:occ.Start]+occ.To+v[occ.End:], true)
	}

	// Strategy 2: keyboard-group swap.
	for _, value := range keyboardSwaps(v, model.Flags().Key) {
		add(value, false)
	}

	// Strategy 3: double/missing character detection.
	for _, value := range doubleOrMissing(v) {
		add(value, false)
	}

	// Strategy 4: case variants, the seed set for strategy 5.
	caseVariants := buildCaseVariants(v)
	for _, value := range caseVariants {
		add(value, false)
	}

	// Strategy 5: edit distance 1 from every case variant.
	var distance1 []string
	for _, w := range caseVariants {
		distance1 = append(distance1, editDistance1(w, model.Flags().Try)...)
	}
	for _, value := range distance1 {
		add(value, false)
	}

	return out
}

// generateDistance2 implements the strategy-6 fallback: it walks
// distance1 in batches, rerunning the distance-1 procedure on each
// batch entry, stopping at the first batch that yields a candidate
// accepted by valid, and returning that whole batch. The
// caller is responsible for validating the returned candidates and for
// only invoking this when strategies 1-5 produced nothing valid.
func generateDistance2(v string, distance1 []string, model *affix.Model, valid func(string) bool) []candidate {
	if len(distance1) == 0 {
		return nil
	}

	vLen := len(v)

	batchSize := pow3(10 - vLen)
	if batchSize < 1 {
		batchSize = 1
	}

	capBase := 15 - vLen
	if capBase < 3 {
		capBase = 3
	}
	capTotal := pow3(capBase)
	if capTotal > len(distance1) {
		capTotal = len(distance1)
	}

	bounded := distance1[:capTotal]

	for start := 0; start < len(bounded); start += batchSize {
		end := start + batchSize
		if end > len(bounded) {
			end = len(bounded)
		}

		var batch []candidate
		seen := make(map[string]bool)
		for _, w := range bounded[start:end] {
			for _, value := range editDistance1(w, model.Flags().Try) {
				if value == "" || value == v || seen[value] {
					continue
				}
				seen[value] = true
				batch = append(batch, candidate{value: value})
			}
		}

		anyValid := false
		for _, c := range batch {
			if valid(c.value) {
				anyValid = true
				break
			}
		}
		if anyValid {
			return batch
		}
	}

	return nil
}

func pow3(n int) int {
	return n * n * n
}

// buildCaseVariants implements strategy 4.
func buildCaseVariants(v string) []string {
	variants := []string{v}
	casing := text.DetectCasing(v)

	lower := text.ToLower(v)
	if v == lower || casing == text.Undefined {
		variants = append(variants, text.Capitalize(v))
	}

	upper := text.ToUpper(v)
	if v != upper {
		variants = append(variants, upper)
	}

	return dedupStrings(variants)
}

func dedupStrings(values []string) []string {
	seen := make(map[string]bool, len(values))
	var out []string
	for _, v := range values {
		if seen[v] {
			continue
		}
		seen[v] = true
		out = append(out, v)
	}
	return out
}
