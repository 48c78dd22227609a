// Copyright 2016 The Citar Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package affix

import "strings"

// maxExpandDepth caps recursive continuation-flag expansion so that
// malformed, cyclic affix data cannot recurse forever (design note:
// affix authors are expected to produce acyclic continuations, but
// implementations should cap recursion depth to survive bad data).
const maxExpandDepth = 16

// Expand applies rule to value, producing every surface form the rule
// generates, including forms reached through the entries' continuation
// flags (applied recursively, depth-first, against m.Rules()).
func Expand(value string, rule *Rule, m *Model) []string {
	return expandDepth(value, rule, m, 0)
}

func expandDepth(value string, rule *Rule, m *Model, depth int) []string {
	if rule == nil || depth >= maxExpandDepth {
		return nil
	}

	var out []string
	for _, entry := range rule.Entries {
		if entry.Match != nil && !entry.Match.MatchString(value) {
			continue
		}

		var form string
		if entry.Remove != "" {
			switch rule.Type {
			case Suffix:
				if !strings.HasSuffix(value, entry.Remove) {
					continue
				}
				form = value[:len(value)-len(entry.Remove)] + entry.Add
			case Prefix:
				if !strings.HasPrefix(value, entry.Remove) {
					continue
				}
				form = entry.Add + value[len(entry.Remove):]
			}
		} else {
			switch rule.Type {
			case Suffix:
				form = value + entry.Add
			case Prefix:
				form = entry.Add + value
			}
		}

		out = append(out, form)

		for _, cont := range entry.Continuation {
			if contRule, ok := m.Rule(cont); ok {
				out = append(out, expandDepth(form, contRule, m, depth+1)...)
			}
		}
	}

	return out
}
