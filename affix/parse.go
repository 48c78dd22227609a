// Copyright 2016 The Citar Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package affix

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/danieldk/spellcheck/internal/text"
)

// Parse reads the entirety of a .aff file's text and returns the
// populated Model. Parsing is line-oriented and whitespace-delimited;
// blank lines and comment lines (first non-space byte '#') are
// skipped. Malformed directives and entries are skipped rather than
// failing the parse.
func Parse(affText string) *Model {
	m := newModel()

	lines := text.SplitLines(affText)
	for i := 0; i < len(lines); i++ {
		line := lines[i]
		if text.IsBlankOrComment(line) {
			continue
		}

		fields := text.Fields(line)
		if len(fields) == 0 {
			continue
		}

		switch fields[0] {
		case "SET":
			// Text is pre-decoded; encoding declarations are ignored.
		case "FLAG":
			if len(fields) >= 2 {
				m.flags.Encoding = text.ParseFlagEncoding(fields[1])
			}
		case "TRY":
			if len(fields) >= 2 {
				m.flags.Try = buildTryAlphabet(fields[1])
			}
		case "KEY":
			if len(fields) >= 2 {
				m.flags.Key = strings.Split(fields[1], "|")
			}
		case "WORDCHARS":
			if len(fields) >= 2 {
				m.flags.WordChars = fields[1]
			}
		case "COMPOUNDMIN":
			if len(fields) >= 2 {
				if n, err := strconv.Atoi(fields[1]); err == nil {
					m.flags.CompoundMin = n
				}
			}
		case "FORBIDWARN":
			m.flags.ForbidWarn = true
		case "FORBIDDENWORD":
			if len(fields) >= 2 {
				m.flags.ForbiddenWord = fields[1]
			}
		case "WARN":
			if len(fields) >= 2 {
				m.flags.Warn = fields[1]
			}
		case "NOSUGGEST":
			if len(fields) >= 2 {
				m.flags.NoSuggest = fields[1]
			}
		case "NEEDAFFIX":
			if len(fields) >= 2 {
				m.flags.NeedAffix = fields[1]
			}
		case "KEEPCASE":
			if len(fields) >= 2 {
				m.flags.KeepCase = fields[1]
			}
		case "ONLYINCOMPOUND":
			if len(fields) >= 2 {
				m.flags.OnlyInCompound = fields[1]
				m.ensureCompoundBucket(fields[1])
			}
		case "REP":
			i = parseRepOrConvBlock(lines, i, fields, func(from, to string) {
				m.replacementTable = append(m.replacementTable, ReplacementPair{From: from, To: to})
			})
		case "ICONV":
			i = parseRepOrConvBlock(lines, i, fields, func(from, to string) {
				if pair, ok := text.CompileConversion(from, to); ok {
					m.conversionIn = append(m.conversionIn, pair)
				}
			})
		case "OCONV":
			i = parseRepOrConvBlock(lines, i, fields, func(from, to string) {
				if pair, ok := text.CompileConversion(from, to); ok {
					m.conversionOut = append(m.conversionOut, pair)
				}
			})
		case "COMPOUNDRULE":
			i = m.parseCompoundRuleBlock(lines, i, fields)
		case "PFX", "SFX":
			i = m.parseAffixBlock(lines, i, fields)
		default:
			if len(fields) >= 2 {
				m.flags.Extra[fields[0]] = fields[1]
			}
		}
	}

	m.matcher = newReplacementMatcher(m.replacementTable)
	return m
}

// buildTryAlphabet takes the lowercase characters of chars in source
// order, then appends any letters missing from the built-in
// frequency-sorted alphabet, guaranteeing completeness.
func buildTryAlphabet(chars string) string {
	seen := make(map[rune]bool)
	var b strings.Builder
	for _, r := range chars {
		lr := toLowerRune(r)
		if lr >= 'a' && lr <= 'z' && !seen[lr] {
			seen[lr] = true
			b.WriteRune(lr)
		}
	}
	for _, r := range DefaultTry {
		if !seen[r] {
			seen[r] = true
			b.WriteRune(r)
		}
	}
	return b.String()
}

func toLowerRune(r rune) rune {
	if r >= 'A' && r <= 'Z' {
		return r + ('a' - 'A')
	}
	return r
}

// parseRepOrConvBlock handles the dual REP/ICONV/OCONV forms: either a
// counted header ("REP n") followed by n data lines, or a single
// direct data line ("REP from to") when the second field isn't a pure
// count. Returns the index of the last line consumed.
func parseRepOrConvBlock(lines []string, i int, fields []string, add func(from, to string)) int {
	if len(fields) >= 3 {
		// Direct single-line form: "REP from to".
		add(fields[1], fields[2])
		return i
	}

	if len(fields) < 2 {
		return i
	}
	n, err := strconv.Atoi(fields[1])
	if err != nil {
		return i
	}

	for k := 0; k < n && i+1 < len(lines); k++ {
		i++
		dataFields := text.Fields(lines[i])
		if len(dataFields) < 3 {
			continue
		}
		add(dataFields[1], dataFields[2])
	}
	return i
}

func (m *Model) ensureCompoundBucket(code string) {
	if _, ok := m.compoundRuleCodes[code]; !ok {
		m.compoundRuleCodes[code] = nil
	}
}

// parseCompoundRuleBlock handles "COMPOUNDRULE n" (header + n pattern
// lines) and the direct single-pattern form "COMPOUNDRULE pattern".
func (m *Model) parseCompoundRuleBlock(lines []string, i int, fields []string) int {
	if len(fields) < 2 {
		return i
	}

	n, err := strconv.Atoi(fields[1])
	if err != nil {
		m.addCompoundRule(fields[1])
		return i
	}

	for k := 0; k < n && i+1 < len(lines); k++ {
		i++
		dataFields := text.Fields(lines[i])
		if len(dataFields) < 2 {
			continue
		}
		m.addCompoundRule(dataFields[1])
	}
	return i
}

func (m *Model) addCompoundRule(pattern string) {
	m.compoundRules = append(m.compoundRules, pattern)
	for _, r := range pattern {
		if r == '*' || r == '?' || r == '(' || r == ')' {
			continue
		}
		m.ensureCompoundBucket(string(r))
	}
}

// parseAffixBlock handles "PFX|SFX flag Y|N n" headers and their n
// entry lines "PFX|SFX flag remove add[/cont] condition".
func (m *Model) parseAffixBlock(lines []string, i int, fields []string) int {
	if len(fields) < 4 {
		return i
	}

	ruleType := Prefix
	if fields[0] == "SFX" {
		ruleType = Suffix
	}
	flag := fields[1]
	combineable := fields[2] == "Y"

	n, err := strconv.Atoi(fields[3])
	if err != nil {
		return i
	}

	rule, ok := m.rules[flag]
	if !ok {
		rule = &Rule{Type: ruleType, Combineable: combineable}
		m.rules[flag] = rule
	}

	for k := 0; k < n && i+1 < len(lines); k++ {
		i++
		entryFields := text.Fields(lines[i])
		if len(entryFields) < 5 {
			continue
		}

		removeRaw := entryFields[2]
		addRaw := entryFields[3]
		condRaw := entryFields[4]

		remove := removeRaw
		if remove == "0" {
			remove = ""
		}

		addPart, contPart, _ := strings.Cut(addRaw, "/")
		add := addPart
		if add == "0" {
			add = ""
		}

		var continuation []string
		if contPart != "" {
			continuation = text.ParseFlags(contPart, m.flags.Encoding)
		}

		var match *regexp.Regexp
		if condRaw != "." {
			pattern := condRaw
			if ruleType == Suffix {
				pattern = pattern + "$"
			} else {
				pattern = "^" + pattern
			}
			compiled, err := regexp.Compile(pattern)
			if err != nil {
				// Condition failed to compile: skip this entry, but
				// keep the rule (and its other entries).
				continue
			}
			match = compiled
		}

		rule.Entries = append(rule.Entries, Entry{
			Add:          add,
			Remove:       remove,
			Match:        match,
			Continuation: continuation,
		})
	}

	return i
}
