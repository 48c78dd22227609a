// Copyright 2016 The Citar Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package suggest

import "unicode"

// keyboardSwaps implements strategy 2: for every position, substitute
// the character at that position with every other character found in
// the same KEY adjacency group, preserving the original character's
// case.
func keyboardSwaps(v string, groups []string) []string {
	runes := []rune(v)
	var out []string

	for i, r := range runes {
		lower := unicode.ToLower(r)
		upper := r != lower

		for _, group := range groups {
			if !containsRune(group, lower) {
				continue
			}

			seen := make(map[rune]bool)
			for _, c := range group {
				if c == lower || seen[c] {
					continue
				}
				seen[c] = true

				replacement := c
				if upper {
					replacement = unicode.ToUpper(c)
				}

				swapped := make([]rune, len(runes))
				copy(swapped, runes)
				swapped[i] = replacement
				out = append(out, string(swapped))
			}
		}
	}

	return out
}

func containsRune(s string, r rune) bool {
	for _, c := range s {
		if c == r {
			return true
		}
	}
	return false
}
