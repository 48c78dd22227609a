// Copyright 2016 The Citar Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package text

import "strings"

// SplitLines splits text on line boundaries, tolerating both "\n" and
// "\r\n", and trims a trailing carriage return from every line.
func SplitLines(s string) []string {
	rawLines := strings.Split(s, "\n")
	lines := make([]string, 0, len(rawLines))
	for _, line := range rawLines {
		lines = append(lines, strings.TrimSuffix(line, "\r"))
	}
	return lines
}

// IsBlankOrComment reports whether a raw .aff/.dic line should be
// skipped: empty after trimming, or starting with '#'.
func IsBlankOrComment(line string) bool {
	trimmed := strings.TrimSpace(line)
	if trimmed == "" {
		return true
	}
	return trimmed[0] == '#'
}

// Fields splits a line on runs of Unicode whitespace via strings.Fields,
// exposed here so affix/dict parsing share one tokenization rule.
func Fields(line string) []string {
	return strings.Fields(line)
}
