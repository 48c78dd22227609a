// Copyright 2016 The Citar Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package spell

import (
	"github.com/danieldk/spellcheck/internal/text"
)

// findForm runs the case cascade used to resolve a token against the
// word graph: an exact match is tried first, then an
// all-uppercase-to-capitalized fallback, then an all-lowercase
// fallback. The two fallback steps apply the "ignore rule" (skip
// KEEPCASE roots, and skip FORBIDDENWORD roots unless includeForbidden
// is set). The exact-match step never checks KEEPCASE, so KEEPCASE
// words remain correct in their stored case; it rejects only
// ONLYINCOMPOUND roots, and FORBIDDENWORD roots unless includeForbidden
// is set.
func (c *Checker) findForm(value string, includeForbidden bool) (string, []string, bool) {
	if flags, ok := c.graph.Flags(value); ok {
		onlyInCompound := c.model.Flags().OnlyInCompound
		if onlyInCompound != "" && text.ContainsFlag(flags, onlyInCompound) {
			return "", nil, false
		}
		forbiddenCode := c.model.Flags().ForbiddenWord
		if !includeForbidden && forbiddenCode != "" && text.ContainsFlag(flags, forbiddenCode) {
			return "", nil, false
		}
		return value, flags, true
	}

	if text.IsAllUpper(value) {
		candidate := text.Capitalize(value)
		if form, flags, ok := c.tryIgnoreRule(candidate, includeForbidden); ok {
			return form, flags, true
		}
	}

	lower := text.ToLower(value)
	if form, flags, ok := c.tryIgnoreRule(lower, includeForbidden); ok {
		return form, flags, true
	}

	return "", nil, false
}

// tryIgnoreRule looks candidate up in the graph and applies the ignore
// rule: a match is discarded if it carries KEEPCASE, or if it carries
// FORBIDDENWORD and includeForbidden is false.
func (c *Checker) tryIgnoreRule(candidate string, includeForbidden bool) (string, []string, bool) {
	flags, ok := c.graph.Flags(candidate)
	if !ok {
		return "", nil, false
	}

	keepCase := c.model.Flags().KeepCase
	if keepCase != "" && text.ContainsFlag(flags, keepCase) {
		return "", nil, false
	}

	forbiddenCode := c.model.Flags().ForbiddenWord
	if !includeForbidden && forbiddenCode != "" && text.ContainsFlag(flags, forbiddenCode) {
		return "", nil, false
	}

	return candidate, flags, true
}
