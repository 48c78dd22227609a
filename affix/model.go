// Copyright 2016 The Citar Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package affix parses Hunspell-style .aff grammars into an AffixModel
// and expands a root word plus its flag codes into the full set of
// derived surface forms. Parsing scans the text blob line by line and
// skips malformed lines rather than failing the whole read.
package affix

import (
	"regexp"

	"github.com/danieldk/spellcheck/internal/text"
)

// RuleType distinguishes a prefix rule from a suffix rule.
type RuleType int

const (
	// Prefix rules prepend characters.
	Prefix RuleType = iota
	// Suffix rules append characters.
	Suffix
)

// Entry is one transformation within a Rule.
type Entry struct {
	// Add is the string appended (suffix) or prepended (prefix). Empty
	// when the source token was "0".
	Add string
	// Remove is the string stripped from the end (suffix) or start
	// (prefix) before Add is applied. Empty when the source was "0".
	Remove string
	// Match is the anchored condition, or nil for "unconditional".
	Match *regexp.Regexp
	// Continuation lists further flag codes applied recursively to
	// the derived form.
	Continuation []string
}

// Rule is a named group of affix transformations, selected by a flag
// code.
type Rule struct {
	Type        RuleType
	Combineable bool
	Entries     []Entry
}

// ReplacementPair is one REP directive entry: From is rewritten to To
// during suggestion generation.
type ReplacementPair struct {
	From string
	To   string
}

// DefaultTry is the built-in frequency-sorted English alphabet used to
// complete a TRY directive, or as the whole TRY alphabet when the
// directive is absent.
const DefaultTry = "etaoinshrdlcumwfgypbvkjxqz"

// DefaultKey is the built-in QWERTY-ish keyboard layout used when no
// KEY directive is present.
var DefaultKey = []string{"qwertyuiop", "asdfghjkl", "zxcvbnm"}

// Flags holds the scalar settings of a .aff file (section 3.4 of the
// affix grammar): the named options get explicit fields, and anything
// the parser doesn't recognize by name is kept in Extra so that no
// directive is silently lost.
type Flags struct {
	Encoding       text.FlagEncoding
	Key            []string
	Try            string
	NoSuggest      string
	Warn           string
	ForbiddenWord  string
	KeepCase       string
	OnlyInCompound string
	NeedAffix      string
	WordChars      string
	CompoundMin    int
	ForbidWarn     bool
	Extra          map[string]string
}

// Model is the fully-populated, (mostly) immutable representation of a
// parsed .aff file. Only CompoundRuleCodes is mutated after parsing,
// by the dictionary loader, as roots carrying compound flags are
// registered.
type Model struct {
	rules             map[string]*Rule
	replacementTable  []ReplacementPair
	conversionIn      text.Conversion
	conversionOut     text.Conversion
	compoundRules     []string
	compoundRuleCodes map[string][]string
	flags             Flags

	matcher *replacementMatcher
}

// newModel returns an empty Model with sane defaults.
func newModel() *Model {
	return &Model{
		rules:             make(map[string]*Rule),
		compoundRuleCodes: make(map[string][]string),
		flags: Flags{
			Key:         append([]string(nil), DefaultKey...),
			Try:         DefaultTry,
			CompoundMin: 3,
			Extra:       make(map[string]string),
		},
	}
}

// Rule returns the rule registered under code, if any.
func (m *Model) Rule(code string) (*Rule, bool) {
	r, ok := m.rules[code]
	return r, ok
}

// Rules returns the full flag-code -> rule mapping. Callers must not
// mutate the returned map.
func (m *Model) Rules() map[string]*Rule {
	return m.rules
}

// ReplacementTable returns the ordered REP pairs.
func (m *Model) ReplacementTable() []ReplacementPair {
	return m.replacementTable
}

// ConversionIn returns the ICONV pipeline.
func (m *Model) ConversionIn() text.Conversion {
	return m.conversionIn
}

// ConversionOut returns the OCONV pipeline.
func (m *Model) ConversionOut() text.Conversion {
	return m.conversionOut
}

// CompoundRules returns the raw (uncompiled) COMPOUNDRULE patterns.
func (m *Model) CompoundRules() []string {
	return m.compoundRules
}

// CompoundRuleCodes returns the flag-code -> root-word buckets used to
// expand COMPOUNDRULE alternations. Callers must not mutate the
// returned map or slices.
func (m *Model) CompoundRuleCodes() map[string][]string {
	return m.compoundRuleCodes
}

// RegisterCompoundRoot appends word to the compound-rule bucket for
// code, if that bucket exists (i.e. code appeared literally in some
// COMPOUNDRULE pattern, or was declared with ONLYINCOMPOUND). Called
// by the dictionary loader while inserting roots.
func (m *Model) RegisterCompoundRoot(code, word string) {
	if _, ok := m.compoundRuleCodes[code]; ok {
		m.compoundRuleCodes[code] = append(m.compoundRuleCodes[code], word)
	}
}

// Flags returns the scalar settings of the model.
func (m *Model) Flags() Flags {
	return m.flags
}
