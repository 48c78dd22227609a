// Copyright 2016 The Citar Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package spell

import (
	"regexp"
	"strings"

	"github.com/danieldk/spellcheck/affix"
	"github.com/danieldk/spellcheck/graph"
)

// compoundPattern is one compiled COMPOUNDRULE alternative.
type compoundPattern struct {
	re *regexp.Regexp
}

// compileCompoundPatterns precomputes the compiled regex for every
// COMPOUNDRULE pattern. Compilation happens once, here, at construction
// time; later mutations to the graph via Add/Dictionary/Personal do not
// retrigger it.
func (c *Checker) compileCompoundPatterns() {
	c.compound = nil
	for _, pattern := range c.model.CompoundRules() {
		compiled, ok := compileCompoundRule(pattern, c.model.CompoundRuleCodes())
		if !ok {
			continue
		}
		c.compound = append(c.compound, compoundPattern{re: compiled})
	}
}

// compileCompoundRule expands a raw COMPOUNDRULE pattern into an
// anchored regex: every literal flag character is replaced by an
// alternation of the (escaped) roots registered under that flag; '*'
// and '?' pass through as regex quantifiers; every explicit '(...)'
// group is made optional ("(...)?") on top of whatever the author
// wrote, since COMPOUNDRULE groups denote optional subunits.
func compileCompoundRule(pattern string, codes map[string][]string) (*regexp.Regexp, bool) {
	var b strings.Builder
	b.WriteByte('^')

	for _, r := range pattern {
		switch r {
		case '*', '?', '(':
			b.WriteRune(r)
		case ')':
			b.WriteString(")?")
		default:
			roots, ok := codes[string(r)]
			if !ok || len(roots) == 0 {
				// Reference to an undefined (or never-populated) flag:
				// the whole rule is omitted from compound matching.
				return nil, false
			}
			b.WriteByte('(')
			for i, root := range roots {
				if i > 0 {
					b.WriteByte('|')
				}
				b.WriteString(regexp.QuoteMeta(root))
			}
			b.WriteByte(')')
		}
	}

	b.WriteByte('$')

	re, err := regexp.Compile(b.String())
	if err != nil {
		return nil, false
	}
	return re, true
}

// matchCompound reports whether token is a legal compound: at least
// 2*COMPOUNDMIN characters long, and matched in full by at least one
// compiled COMPOUNDRULE pattern.
func (c *Checker) matchCompound(token string) bool {
	if len([]rune(token)) < 2*c.model.Flags().CompoundMin {
		return false
	}

	for _, p := range c.compound {
		if p.re.MatchString(token) {
			return true
		}
	}
	return false
}

// rebuildCompoundBuckets re-registers every stored root's flags into
// m's compound-rule-code buckets, used after GobDecode restores a
// graph whose roots were never re-run through dict.AddRoot.
func rebuildCompoundBuckets(m *affix.Model, g *graph.Graph) {
	g.Each(func(word string, flags []string) {
		for _, code := range flags {
			m.RegisterCompoundRoot(code, word)
		}
	})
}
