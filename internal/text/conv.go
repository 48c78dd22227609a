// Copyright 2016 The Citar Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package text

import "regexp"

// ConversionPair is one compiled ICONV/OCONV rule: every match of
// Pattern is replaced by Replacement.
type ConversionPair struct {
	Pattern     *regexp.Regexp
	Replacement string
}

// Conversion is an ordered list of conversion pairs, applied in
// declaration order, each over the whole string (global match).
type Conversion []ConversionPair

// Apply runs every conversion pair over s in order and returns the
// result.
func (c Conversion) Apply(s string) string {
	for _, pair := range c {
		s = pair.Pattern.ReplaceAllString(s, pair.Replacement)
	}
	return s
}

// CompileConversion compiles a single ICONV/OCONV pattern. Invalid
// patterns are reported via the second return value so the caller can
// silently drop them, per the affix parser's tolerance for malformed
// directives.
func CompileConversion(pattern, replacement string) (ConversionPair, bool) {
	re, err := regexp.Compile(pattern)
	if err != nil {
		return ConversionPair{}, false
	}
	return ConversionPair{Pattern: re, Replacement: replacement}, true
}
