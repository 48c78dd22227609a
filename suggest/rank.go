// Copyright 2016 The Citar Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package suggest

import (
	"sort"
	"strings"

	"github.com/danieldk/spellcheck/affix"
	"github.com/danieldk/spellcheck/internal/text"
)

const maxSuggestions = 10

// rankAndFormat orders valid candidates by weight, then by whether
// their casing matches the input, then alphabetically; applies the
// output conversion pipeline; dedupes case-insensitively; and caps the
// result at maxSuggestions.
func rankAndFormat(model *affix.Model, inputCasing text.Casing, valid []scored) []string {
	sort.SliceStable(valid, func(i, j int) bool {
		if valid[i].weight != valid[j].weight {
			return valid[i].weight > valid[j].weight
		}
		if valid[i].caseMatching != valid[j].caseMatching {
			return valid[i].caseMatching
		}
		return strings.ToLower(valid[i].value) < strings.ToLower(valid[j].value)
	})

	seen := make(map[string]bool)
	var out []string
	for _, s := range valid {
		formatted := model.ConversionOut().Apply(s.value)
		key := strings.ToLower(formatted)
		if seen[key] {
			continue
		}
		seen[key] = true

		out = append(out, formatted)
		if len(out) == maxSuggestions {
			break
		}
	}

	return out
}
