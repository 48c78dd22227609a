// Copyright 2016 The Citar Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package spell wires the affix model, word graph, and dictionary
// loader together into a Checker: the validator that answers whether a
// token is correctly spelled, and (via the suggest package) what its
// most plausible corrections are.
package spell

import (
	"bytes"
	"encoding/gob"
	"errors"
	"strings"

	"github.com/danieldk/spellcheck/affix"
	"github.com/danieldk/spellcheck/dict"
	"github.com/danieldk/spellcheck/graph"
	"github.com/danieldk/spellcheck/internal/text"
	"github.com/danieldk/spellcheck/suggest"
)

// ErrMissingAffix is the only hard error the core surfaces: a Checker
// cannot be constructed without affix grammar text.
var ErrMissingAffix = errors.New("spell: missing affix data")

// internalForbiddenFlag is the synthetic flag code Personal uses to
// mark a word forbidden without requiring a FORBIDDENWORD directive in
// the loaded affix model.
const internalForbiddenFlag = "__FORBIDDEN__"

// SpellResult is the detailed outcome of Spell.
type SpellResult struct {
	Correct   bool
	Forbidden bool
	Warn      bool
}

// Stats summarizes the checker's word graph.
type Stats struct {
	Words    int
	Nodes    int
	AvgDepth float64
}

// Checker is a loaded Hunspell-compatible spell checker: an affix
// model, a word graph, and the compiled compound-rule patterns derived
// from them. A Checker is safe for concurrent Correct/Spell/Suggest
// calls as long as no mutator (Add/Remove/Dictionary/Personal) runs
// concurrently.
type Checker struct {
	model    *affix.Model
	graph    *graph.Graph
	affText  string
	compound []compoundPattern
}

// New parses affText and (optionally) dicText and returns a ready
// Checker. affText must be non-empty; dicText may be empty for an
// initially word-less checker built up via Dictionary/Add.
func New(affText, dicText string) (*Checker, error) {
	if strings.TrimSpace(affText) == "" {
		return nil, ErrMissingAffix
	}

	m := affix.Parse(affText)
	g := graph.New()
	if strings.TrimSpace(dicText) != "" {
		dict.Load(m, g, dicText)
	}

	c := &Checker{model: m, graph: g, affText: affText}
	c.compileCompoundPatterns()
	return c, nil
}

// Correct reports whether s is a valid word.
func (c *Checker) Correct(s string) bool {
	return c.Spell(s).Correct
}

// Spell reports the detailed validity of s: whether it is correct,
// forbidden, or merely flagged with a warning.
func (c *Checker) Spell(s string) SpellResult {
	trimmed := strings.TrimSpace(s)
	if trimmed == "" {
		return SpellResult{}
	}

	normalized := c.model.ConversionIn().Apply(trimmed)

	var result SpellResult
	if _, flags, ok := c.findForm(normalized, true); ok {
		result.Correct = true

		forbiddenCode := c.model.Flags().ForbiddenWord
		if text.ContainsFlag(flags, forbiddenCode) || text.ContainsFlag(flags, internalForbiddenFlag) {
			result.Forbidden = true
			result.Correct = false
		}

		warnCode := c.model.Flags().Warn
		if text.ContainsFlag(flags, warnCode) {
			result.Warn = true
			if c.model.Flags().ForbidWarn {
				result.Correct = false
			}
		}

		return result
	}

	if c.matchCompound(normalized) {
		result.Correct = true
	}

	return result
}

// Suggest returns up to 10 plausible corrections for s, most likely
// first, using the six-strategy suggestion engine.
func (c *Checker) Suggest(s string) []string {
	return suggest.Suggest(c, s)
}

// Add inserts word into the graph. If model names a word already
// present in the graph, word inherits that word's flag list (and is
// expanded through the same affix rules); otherwise word is inserted
// with no flags.
func (c *Checker) Add(word, model string) error {
	if word == "" {
		return errors.New("spell: cannot add empty word")
	}

	var flags []string
	if model != "" {
		flags, _ = c.graph.Flags(model)
	}

	dict.AddRoot(c.model, c.graph, word, flags)
	return nil
}

// Remove marks the exact terminal for word as non-terminal. Derived
// forms produced when the word was originally added are not removed.
// Removing an absent word is a no-op.
func (c *Checker) Remove(word string) {
	c.graph.Remove(word)
}

// Dictionary loads additional .dic-formatted text into the existing
// graph, as an incremental payload.
func (c *Checker) Dictionary(dicText string) {
	dict.Load(c.model, c.graph, dicText)
}

// Personal loads a personal dictionary: one entry per line. "*word"
// marks word forbidden; "word/model" adds word inheriting model's
// flags; a bare word is added with no flags.
func (c *Checker) Personal(personalText string) {
	for _, line := range text.SplitLines(personalText) {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}

		if strings.HasPrefix(line, "*") {
			word := strings.TrimPrefix(line, "*")
			existing, _ := c.graph.Flags(word)
			flags := append(append([]string(nil), existing...), internalForbiddenFlag)
			c.graph.Insert(word, flags)
			continue
		}

		if w, model, ok := strings.Cut(line, "/"); ok {
			c.Add(w, model)
			continue
		}

		c.Add(line, "")
	}
}

// WordCharacters returns the WORDCHARS directive's value, if any.
func (c *Checker) WordCharacters() (string, bool) {
	wc := c.model.Flags().WordChars
	return wc, wc != ""
}

// Stats summarizes the checker's word graph.
func (c *Checker) Stats() Stats {
	s := c.graph.Stats()
	return Stats{Words: s.Words, Nodes: s.Nodes, AvgDepth: s.AvgDepth}
}

// Model exposes the underlying affix model for packages (such as
// suggest) that need direct access to rules, the replacement table, or
// scalar flags.
func (c *Checker) Model() *affix.Model {
	return c.model
}

// Graph exposes the underlying word graph.
func (c *Checker) Graph() *graph.Graph {
	return c.graph
}

// FindForm exposes the case-cascade lookup for the suggestion engine's
// candidate validation.
func (c *Checker) FindForm(value string, includeForbidden bool) (string, []string, bool) {
	return c.findForm(value, includeForbidden)
}

// encodedChecker is the gob-friendly mirror of Checker: rather than
// attempt to serialize compiled regexes, it stores the original affix
// text (deterministic to reparse) plus the current graph contents
// (which reflect any Add/Remove/Dictionary/Personal mutations since
// construction). The private Checker type is never encoded directly.
type encodedChecker struct {
	AffText   string
	GraphData []byte
}

var _ gob.GobEncoder = &Checker{}
var _ gob.GobDecoder = &Checker{}

// GobEncode serializes the checker's affix source and current graph
// state.
func (c *Checker) GobEncode() ([]byte, error) {
	graphData, err := c.graph.GobEncode()
	if err != nil {
		return nil, err
	}

	ec := encodedChecker{AffText: c.affText, GraphData: graphData}

	var buf bytes.Buffer
	if err := gob.NewEncoder(&buf).Encode(ec); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// GobDecode reparses the affix text, restores the graph, and rebuilds
// the compound-rule buckets and compiled patterns from the restored
// roots' flags.
func (c *Checker) GobDecode(data []byte) error {
	var ec encodedChecker
	if err := gob.NewDecoder(bytes.NewReader(data)).Decode(&ec); err != nil {
		return err
	}

	m := affix.Parse(ec.AffText)
	g := graph.New()
	if err := g.GobDecode(ec.GraphData); err != nil {
		return err
	}

	rebuildCompoundBuckets(m, g)

	c.model = m
	c.graph = g
	c.affText = ec.AffText
	c.compileCompoundPatterns()
	return nil
}
