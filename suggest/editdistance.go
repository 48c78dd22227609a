// Copyright 2016 The Citar Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package suggest

import (
	"unicode"

	"github.com/danieldk/spellcheck/internal/text"
)

// editDistance1 implements strategy 5: removal, transposition, a
// case-switch repair on the following segment, and insert/replace
// injections drawn from try, for every character position of w.
func editDistance1(w string, try string) []string {
	runes := []rune(w)
	var out []string

	for p := 0; p <= len(runes); p++ {
		if p < len(runes) {
			// remove
			out = append(out, string(runes[:p])+string(runes[p+1:]))
		}

		if p+1 < len(runes) {
			// transpose
			swapped := append([]rune(nil), runes...)
			swapped[p], swapped[p+1] = swapped[p+1], swapped[p]
			out = append(out, string(swapped))
		}

		if p+1 < len(runes) && differsInCasedness(runes[p], runes[p+1]) {
			// case-switch on the next segment
			rest := string(runes[p+1:])
			out = append(out, string(runes[:p])+text.SwitchCase(rest))

			tail := string(runes[p+2:])
			out = append(out, string(runes[:p])+text.SwitchCase(string(runes[p+1]))+text.SwitchCase(string(runes[p]))+tail)
		}

		anchorUpper := p > 0 && unicode.IsUpper(runes[p-1])

		for _, ch := range try {
			// insert
			out = append(out, string(runes[:p])+string(ch)+string(runes[p:]))
			if anchorUpper && unicode.ToUpper(ch) != ch {
				out = append(out, string(runes[:p])+string(unicode.ToUpper(ch))+string(runes[p:]))
			}

			// replace
			if p < len(runes) {
				out = append(out, string(runes[:p])+string(ch)+string(runes[p+1:]))
				if anchorUpper && unicode.ToUpper(ch) != ch {
					out = append(out, string(runes[:p])+string(unicode.ToUpper(ch))+string(runes[p+1:]))
				}
			}
		}
	}

	return out
}

func differsInCasedness(a, b rune) bool {
	return isCasedUpper(a) != isCasedUpper(b) && (unicode.IsUpper(a) || unicode.IsLower(a)) && (unicode.IsUpper(b) || unicode.IsLower(b))
}

func isCasedUpper(r rune) bool {
	return unicode.IsUpper(r)
}
