// Copyright 2016 The Citar Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package affix

import (
	"sort"
	"strings"

	"github.com/coregx/ahocorasick"
)

// replacementMatcher finds every occurrence of every REP "from" string
// in a value in a single pass, building one Aho-Corasick automaton
// over the whole replacement table instead of scanning the value once
// per entry. Built once per Model, since the replacement table is
// immutable after parsing.
type replacementMatcher struct {
	auto *ahocorasick.Automaton
	to   map[string]string
}

// Occurrence is one match of a replacement table entry within a value.
type Occurrence struct {
	Start, End int
	To         string
}

func newReplacementMatcher(table []ReplacementPair) *replacementMatcher {
	if len(table) == 0 {
		return &replacementMatcher{to: map[string]string{}}
	}

	to := make(map[string]string, len(table))
	builder := ahocorasick.NewBuilder()
	for _, pair := range table {
		if pair.From == "" {
			continue
		}
		builder.AddPattern([]byte(pair.From))
		// Later entries for the same "from" override earlier ones,
		// matching ordered-list-wins-on-lookup semantics.
		to[pair.From] = pair.To
	}

	auto, err := builder.Build()
	if err != nil {
		// Malformed or empty pattern set: fall back to a nil
		// automaton, which findAll degrades to a manual scan for.
		return &replacementMatcher{to: to}
	}

	return &replacementMatcher{auto: auto, to: to}
}

// findAll returns every (possibly overlapping) occurrence of a
// replacement-table "from" string in v, in left-to-right start-offset
// order.
func (r *replacementMatcher) findAll(v string) []Occurrence {
	if len(r.to) == 0 {
		return nil
	}

	if r.auto == nil {
		return r.findAllFallback(v)
	}

	haystack := []byte(v)
	var occs []Occurrence
	for pos := 0; pos <= len(haystack); {
		m := r.auto.Find(haystack, pos)
		if m == nil {
			break
		}
		matched := string(haystack[m.Start:m.End])
		if to, ok := r.to[matched]; ok {
			occs = append(occs, Occurrence{Start: m.Start, End: m.End, To: to})
		}
		pos = m.Start + 1
	}
	return occs
}

func (r *replacementMatcher) findAllFallback(v string) []Occurrence {
	var occs []Occurrence
	for from, to := range r.to {
		start := 0
		for {
			idx := strings.Index(v[start:], from)
			if idx < 0 {
				break
			}
			abs := start + idx
			occs = append(occs, Occurrence{Start: abs, End: abs + len(from), To: to})
			start = abs + 1
			if start > len(v) {
				break
			}
		}
	}
	sort.SliceStable(occs, func(i, j int) bool { return occs[i].Start < occs[j].Start })
	return occs
}

// matcherFor returns the model's replacement matcher. Parse builds it
// up front; a Model that did not come from Parse builds it lazily here.
func (m *Model) matcherFor() *replacementMatcher {
	if m.matcher == nil {
		m.matcher = newReplacementMatcher(m.replacementTable)
	}
	return m.matcher
}

// ReplacementOccurrences returns every occurrence of a REP "from"
// string in v along with its replacement, the raw material for the
// suggestion engine's replacement-table candidate strategy.
func (m *Model) ReplacementOccurrences(v string) []Occurrence {
	return m.matcherFor().findAll(v)
}
