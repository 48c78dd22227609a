// Copyright 2016 The Citar Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package suggest

// maxDoubleGrowth bounds how many doubling insertions a single
// candidate may accumulate, keeping the branching factor of the
// double/missing-character strategy depth-limited.
const maxDoubleGrowth = 3

type doubleEntry struct {
	value  string
	growth int
}

// doubleOrMissing implements strategy 3: walking v left to right,
// every existing partial candidate is extended by the current
// character, and additionally forked into a variant with the
// character doubled whenever it differs from the following character,
// up to maxDoubleGrowth forks per candidate.
func doubleOrMissing(v string) []string {
	runes := []rune(v)
	entries := []doubleEntry{{}}

	for i, c := range runes {
		differsFromNext := i+1 >= len(runes) || runes[i+1] != c

		next := make([]doubleEntry, 0, len(entries)*2)
		for _, e := range entries {
			next = append(next, doubleEntry{value: e.value + string(c), growth: e.growth})
			if differsFromNext && e.growth < maxDoubleGrowth {
				next = append(next, doubleEntry{value: e.value + string(c) + string(c), growth: e.growth + 1})
			}
		}
		entries = next
	}

	out := make([]string, len(entries))
	for i, e := range entries {
		out[i] = e.value
	}
	return out
}
