// Copyright 2016 The Citar Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package suggest

import (
	"strings"

	"github.com/danieldk/spellcheck/affix"
	"github.com/danieldk/spellcheck/internal/text"
)

// Checker is the subset of spell.Checker the suggestion engine
// consumes, named as an interface so this package has no import-time
// dependency on the spell package.
type Checker interface {
	Correct(s string) bool
	FindForm(value string, includeForbidden bool) (string, []string, bool)
	Model() *affix.Model
}

type scored struct {
	value        string
	weight       int
	caseMatching bool
}

// Suggest runs the full suggestion pipeline end to end: candidate
// generation, validation, ranking, and output formatting. It returns
// at most 10 distinct suggestions, most likely first.
func Suggest(c Checker, token string) []string {
	model := c.Model()

	v := strings.TrimSpace(token)
	v = model.ConversionIn().Apply(v)
	if v == "" || c.Correct(v) {
		return nil
	}

	inputCasing := text.DetectCasing(v)

	memo := make(map[string]*scored)
	validate := func(cand candidate) *scored {
		if s, ok := memo[cand.value]; ok {
			return s
		}
		s := validateOne(c, model, cand, inputCasing)
		memo[cand.value] = s
		return s
	}

	raw := generate(v, model)

	var valid []scored
	for _, cand := range raw {
		if s := validate(cand); s != nil {
			valid = append(valid, *s)
		}
	}

	if len(valid) == 0 {
		var distance1 []string
		seen := make(map[string]bool)
		for _, w := range buildCaseVariants(v) {
			for _, d := range editDistance1(w, model.Flags().Try) {
				if !seen[d] {
					seen[d] = true
					distance1 = append(distance1, d)
				}
			}
		}

		fallback := generateDistance2(v, distance1, model, func(s string) bool {
			return validate(candidate{value: s}) != nil
		})

		for _, cand := range fallback {
			if s := validate(cand); s != nil {
				valid = append(valid, *s)
			}
		}
	}

	return rankAndFormat(model, inputCasing, valid)
}

// validateOne reports whether a raw candidate is a real suggestion: it
// must resolve through the checker's case cascade (without treating
// forbidden words as acceptable) and its terminal must not carry
// NOSUGGEST.
func validateOne(c Checker, model *affix.Model, cand candidate, inputCasing text.Casing) *scored {
	_, flags, ok := c.FindForm(cand.value, false)
	if !ok {
		return nil
	}

	noSuggest := model.Flags().NoSuggest
	if noSuggest != "" && text.ContainsFlag(flags, noSuggest) {
		return nil
	}

	weight := 0
	if cand.fromReplace {
		weight = 10
	}

	return &scored{
		value:        cand.value,
		weight:       weight,
		caseMatching: text.DetectCasing(cand.value) == inputCasing,
	}
}
