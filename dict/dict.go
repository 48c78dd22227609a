// Copyright 2016 The Citar Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package dict loads Hunspell-style .dic word lists, expanding each
// root through the affix model and inserting every derived surface
// form into the word graph. Malformed or empty entries are skipped
// line by line rather than failing the whole load.
package dict

import (
	"strconv"
	"strings"

	"github.com/danieldk/spellcheck/affix"
	"github.com/danieldk/spellcheck/graph"
	"github.com/danieldk/spellcheck/internal/text"
)

// Load parses dicText and inserts every root (and its derived forms)
// into g, using m to decode flag strings and expand affixes. An
// optional leading word-count line is recognized and ignored.
func Load(m *affix.Model, g *graph.Graph, dicText string) {
	lines := text.SplitLines(dicText)

	start := 0
	for start < len(lines) && strings.TrimSpace(lines[start]) == "" {
		start++
	}
	if start < len(lines) {
		if _, err := strconv.Atoi(strings.TrimSpace(lines[start])); err == nil {
			start++
		}
	}

	for _, line := range lines[start:] {
		if strings.TrimSpace(line) == "" {
			continue
		}

		word, flagStr := splitWordAndFlags(line)
		if word == "" {
			continue
		}

		codes := text.ParseFlags(flagStr, m.Flags().Encoding)
		AddRoot(m, g, word, codes)
	}
}

// splitWordAndFlags finds the first unescaped '/' in line: everything
// before is the word (with "\/" decoded to "/"); everything after is
// the raw flag string. If no unescaped '/' is present, the whole line
// (trimmed) is the word and there are no flags.
func splitWordAndFlags(line string) (word, flagStr string) {
	runes := []rune(line)

	slashAt := -1
	for i := 0; i < len(runes); i++ {
		if runes[i] != '/' {
			continue
		}
		if i > 0 && runes[i-1] == '\\' {
			continue
		}
		slashAt = i
		break
	}

	if slashAt < 0 {
		return strings.TrimSpace(decodeEscapedSlash(line)), ""
	}

	rawWord := string(runes[:slashAt])
	rawFlags := string(runes[slashAt+1:])
	return strings.TrimSpace(decodeEscapedSlash(rawWord)), strings.TrimSpace(rawFlags)
}

func decodeEscapedSlash(s string) string {
	return strings.ReplaceAll(s, `\/`, "/")
}

// AddRoot inserts word with codes into g, expanding every affix rule
// referenced by codes (and, for combineable rule pairs, every
// prefix-suffix combination).
func AddRoot(m *affix.Model, g *graph.Graph, word string, codes []string) {
	needAffix := m.Flags().NeedAffix
	skipRoot := needAffix != "" && text.ContainsFlag(codes, needAffix)
	if !skipRoot {
		g.Insert(word, codes)
	}

	for _, code := range codes {
		m.RegisterCompoundRoot(code, word)

		rule, ok := m.Rule(code)
		if !ok {
			continue
		}

		derived := affix.Expand(word, rule, m)
		for _, form := range derived {
			g.Insert(form, nil)
		}

		if !rule.Combineable {
			continue
		}

		for _, other := range codes {
			if other == code {
				continue
			}
			otherRule, ok := m.Rule(other)
			if !ok || !otherRule.Combineable || otherRule.Type == rule.Type {
				continue
			}

			for _, form := range derived {
				combined := affix.Expand(form, otherRule, m)
				for _, c := range combined {
					g.Insert(c, nil)
				}
			}
		}
	}
}
