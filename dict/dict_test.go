// Copyright 2016 The Citar Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dict

import (
	"testing"

	"github.com/danieldk/spellcheck/affix"
	"github.com/danieldk/spellcheck/graph"
)

const dictTestAff = `
SET UTF-8
PFX A Y 1
PFX A 0 un .
SFX B Y 1
SFX B 0 s .
`

func TestLoadBasic(t *testing.T) {
	m := affix.Parse(dictTestAff)
	g := graph.New()

	Load(m, g, "3\nhello/B\ntest/A\ncat\n")

	if !g.Has("hello") {
		t.Error("expected hello")
	}
	if !g.Has("hellos") {
		t.Error("expected hellos (SFX B)")
	}
	if !g.Has("test") {
		t.Error("expected test")
	}
	if !g.Has("untest") {
		t.Error("expected untest (PFX A)")
	}
	if !g.Has("cat") {
		t.Error("expected cat")
	}
}

func TestSplitWordAndFlags(t *testing.T) {
	tests := []struct {
		line     string
		wantWord string
		wantFlag string
	}{
		{"hello/AB", "hello", "AB"},
		{"hello", "hello", ""},
		{`foo\/bar/AB`, "foo/bar", "AB"},
		{`foo\/bar`, "foo/bar", ""},
	}

	for _, tt := range tests {
		t.Run(tt.line, func(t *testing.T) {
			word, flag := splitWordAndFlags(tt.line)
			if word != tt.wantWord || flag != tt.wantFlag {
				t.Errorf("splitWordAndFlags(%q) = (%q, %q), want (%q, %q)",
					tt.line, word, flag, tt.wantWord, tt.wantFlag)
			}
		})
	}
}

func TestNeedAffixSkipsRoot(t *testing.T) {
	aff := `
SET UTF-8
NEEDAFFIX X
SFX B Y 1
SFX B 0 s .
`
	m := affix.Parse(aff)
	g := graph.New()

	Load(m, g, "stem/BX")

	if g.Has("stem") {
		t.Error("expected bare root to be skipped under NEEDAFFIX")
	}
	if !g.Has("stems") {
		t.Error("expected derived form to still be inserted")
	}
}

func TestCombineablePrefixSuffix(t *testing.T) {
	aff := `
SET UTF-8
PFX A Y 1
PFX A 0 un .
SFX B Y 1
SFX B 0 able .
`
	m := affix.Parse(aff)
	g := graph.New()

	Load(m, g, "do/AB")

	if !g.Has("doable") {
		t.Error("expected doable")
	}
	if !g.Has("undo") {
		t.Error("expected undo")
	}
	if !g.Has("undoable") {
		t.Error("expected undoable (combined prefix+suffix)")
	}
}

func TestLeadingCountLineIgnored(t *testing.T) {
	m := affix.Parse("SET UTF-8\n")
	g := graph.New()

	Load(m, g, "2\nfoo\nbar\n")

	if g.Size() != 2 {
		t.Errorf("Size() = %d, want 2", g.Size())
	}
}
