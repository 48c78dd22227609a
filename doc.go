// Copyright 2016 The Citar Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package spellcheck provides a Hunspell-compatible spell checker.
//
// Given an affix grammar (.aff) and a flag-annotated word list (.dic),
// it expands roots into their full set of derived surface forms,
// stores them in a prefix-sharing word graph, and answers whether an
// arbitrary token is a correctly spelled word (spell.Checker.Correct,
// spell.Checker.Spell) or, if not, what its most plausible corrections
// are (spell.Checker.Suggest).
//
// The affix package parses and expands the .aff grammar; graph holds
// the word graph; dict loads .dic text into it; spell wires the two
// together into the validator; suggest implements the candidate
// generation, validation, and ranking behind Suggest.
package spellcheck
