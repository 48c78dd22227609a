// Copyright 2016 The Citar Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package suggest

import (
	"testing"

	"github.com/danieldk/spellcheck/affix"
	"github.com/danieldk/spellcheck/dict"
	"github.com/danieldk/spellcheck/graph"
)

const suggestTestAff = `
SET UTF-8
TRY esianrtolcdugmphbyfvkwzxqj
KEY qwertyuiop|asdfghjkl|zxcvbnm
REP 1
REP teh the
NOSUGGEST !
`

const suggestTestDic = `4
the
hello
cat
ignoreme/!
`

// fakeChecker is a minimal Checker backed directly by a graph and
// model, avoiding a dependency on the spell package (which itself
// imports this package) from the test.
type fakeChecker struct {
	model *affix.Model
	graph *graph.Graph
}

func newFakeChecker(t *testing.T) *fakeChecker {
	t.Helper()
	m := affix.Parse(suggestTestAff)
	g := graph.New()
	dict.Load(m, g, suggestTestDic)
	return &fakeChecker{model: m, graph: g}
}

func (f *fakeChecker) Correct(s string) bool {
	_, _, ok := f.FindForm(s, true)
	return ok
}

func (f *fakeChecker) FindForm(value string, includeForbidden bool) (string, []string, bool) {
	flags, ok := f.graph.Flags(value)
	if !ok {
		return "", nil, false
	}
	return value, flags, true
}

func (f *fakeChecker) Model() *affix.Model {
	return f.model
}

func TestSuggestCorrectReturnsEmpty(t *testing.T) {
	c := newFakeChecker(t)
	if got := Suggest(c, "hello"); got != nil {
		t.Errorf("Suggest(hello) = %v, want nil", got)
	}
}

func TestSuggestReplacementTable(t *testing.T) {
	c := newFakeChecker(t)

	got := Suggest(c, "teh")
	found := false
	for _, s := range got {
		if s == "the" {
			found = true
		}
	}
	if !found {
		t.Errorf("Suggest(teh) = %v, want it to contain %q", got, "the")
	}
}

func TestSuggestExcludesNoSuggest(t *testing.T) {
	c := newFakeChecker(t)

	got := Suggest(c, "ignorem")
	for _, s := range got {
		if s == "ignoreme" {
			t.Errorf("Suggest(ignorem) = %v, must not include NOSUGGEST word %q", got, "ignoreme")
		}
	}
}

func TestSuggestBounded(t *testing.T) {
	c := newFakeChecker(t)

	got := Suggest(c, "zzzzzzzzzz")
	if len(got) > 10 {
		t.Errorf("Suggest returned %d suggestions, want <= 10", len(got))
	}
}

func TestKeyboardSwaps(t *testing.T) {
	groups := []string{"asdfghjkl"}
	got := keyboardSwaps("cat", groups)
	if len(got) == 0 {
		t.Fatal("keyboardSwaps produced no candidates")
	}
	for _, v := range got {
		if len(v) != 3 {
			t.Errorf("keyboardSwaps candidate %q has unexpected length", v)
		}
	}
}

func TestDoubleOrMissing(t *testing.T) {
	got := doubleOrMissing("cat")
	found := false
	for _, v := range got {
		if v == "caat" {
			found = true
		}
	}
	if !found {
		t.Errorf("doubleOrMissing(cat) = %v, want it to contain %q", got, "caat")
	}
}

func TestEditDistance1Insert(t *testing.T) {
	got := editDistance1("ct", "a")
	found := false
	for _, v := range got {
		if v == "cat" {
			found = true
		}
	}
	if !found {
		t.Errorf("editDistance1(ct) = %v, want it to contain %q", got, "cat")
	}
}
