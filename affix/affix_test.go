// Copyright 2016 The Citar Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package affix

import "testing"

const testAff = `
SET UTF-8
TRY esianrtolcdugmph
KEY qwertyuiop|asdfghjkl|zxcvbnm
REP 2
REP ie ei
REP ei ie
PFX A Y 1
PFX A 0 un .
SFX B Y 2
SFX B 0 s .
SFX B 0 es [sxz]
SFX D N 1
SFX D y ied [^aeiou]y
COMPOUNDMIN 2
COMPOUNDRULE 1
COMPOUNDRULE AB*
FORBIDDENWORD Z
`

func TestParseBasics(t *testing.T) {
	m := Parse(testAff)

	if m.flags.CompoundMin != 2 {
		t.Errorf("CompoundMin = %d, want 2", m.flags.CompoundMin)
	}
	if m.flags.ForbiddenWord != "Z" {
		t.Errorf("ForbiddenWord = %q, want Z", m.flags.ForbiddenWord)
	}
	if len(m.replacementTable) != 2 {
		t.Fatalf("replacementTable = %v, want 2 entries", m.replacementTable)
	}
	if m.replacementTable[0].From != "ie" || m.replacementTable[0].To != "ei" {
		t.Errorf("replacementTable[0] = %+v", m.replacementTable[0])
	}

	if _, ok := m.Rule("A"); !ok {
		t.Error("expected rule A")
	}
	if _, ok := m.Rule("B"); !ok {
		t.Error("expected rule B")
	}
	if _, ok := m.Rule("D"); !ok {
		t.Error("expected rule D")
	}

	if len(m.compoundRules) != 1 || m.compoundRules[0] != "AB*" {
		t.Errorf("compoundRules = %v", m.compoundRules)
	}
	if _, ok := m.compoundRuleCodes["A"]; !ok {
		t.Error("expected compound bucket for A")
	}
	if _, ok := m.compoundRuleCodes["B"]; !ok {
		t.Error("expected compound bucket for B")
	}
}

func TestTryAlphabetCompletion(t *testing.T) {
	got := buildTryAlphabet("xyz")
	if got[:3] != "xyz" {
		t.Errorf("buildTryAlphabet prefix = %q, want xyz...", got[:3])
	}
	if len(got) != 26 {
		t.Errorf("buildTryAlphabet length = %d, want 26", len(got))
	}
}

func TestExpandSuffix(t *testing.T) {
	m := Parse(testAff)
	rule, _ := m.Rule("B")

	forms := Expand("hello", rule, m)
	if !containsStr(forms, "hellos") {
		t.Errorf("Expand(hello, B) = %v, want to contain hellos", forms)
	}
}

func TestExpandPrefix(t *testing.T) {
	m := Parse(testAff)
	rule, _ := m.Rule("A")

	forms := Expand("test", rule, m)
	if !containsStr(forms, "untest") {
		t.Errorf("Expand(test, A) = %v, want to contain untest", forms)
	}
}

func TestExpandConditional(t *testing.T) {
	m := Parse(testAff)
	rule, _ := m.Rule("D")

	forms := Expand("deny", rule, m)
	if !containsStr(forms, "denied") {
		t.Errorf("Expand(deny, D) = %v, want to contain denied", forms)
	}

	// "stay" ends in a vowel followed by y, so the [^aeiou]y condition
	// fails and no forms should be produced.
	forms = Expand("stay", rule, m)
	if len(forms) != 0 {
		t.Errorf("Expand(stay, D) = %v, want none", forms)
	}
}

func TestExpandRecursionCap(t *testing.T) {
	m := newModel()
	m.rules["X"] = &Rule{
		Type: Suffix,
		Entries: []Entry{
			{Add: "x", Continuation: []string{"X"}},
		},
	}

	rule := m.rules["X"]
	forms := Expand("a", rule, m)
	if len(forms) > maxExpandDepth*2 {
		t.Errorf("Expand recursion not capped: got %d forms", len(forms))
	}
}

func containsStr(haystack []string, needle string) bool {
	for _, s := range haystack {
		if s == needle {
			return true
		}
	}
	return false
}
