// Copyright 2016 The Citar Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package graph

import "testing"

func TestAddRemove(t *testing.T) {
	g := New()
	g.Insert("hello", nil)
	g.Insert("world", nil)

	if !g.Has("hello") {
		t.Error("expected hello to be present")
	}
	if !g.Has("world") {
		t.Error("expected world to be present")
	}
	if g.Has("earth") {
		t.Error("expected earth to be absent")
	}

	g.Remove("hello")
	if g.Has("hello") {
		t.Error("expected hello to be removed")
	}
	if !g.Has("world") {
		t.Error("expected world to remain")
	}
	if g.Size() != 1 {
		t.Errorf("Size() = %d, want 1", g.Size())
	}
}

func TestPrefixSharing(t *testing.T) {
	g := New()
	for _, w := range []string{"casa", "casas", "caso", "casos"} {
		g.Insert(w, nil)
	}

	stats := g.Stats()
	if stats.Words != 4 {
		t.Errorf("Words = %d, want 4", stats.Words)
	}
	if stats.Nodes >= 20 {
		t.Errorf("Nodes = %d, want < 20", stats.Nodes)
	}

	if !g.HasPrefix("cas") {
		t.Error("expected prefix cas to be present")
	}
	if g.HasPrefix("casx") {
		t.Error("expected prefix casx to be absent")
	}
}

func TestIdempotentInsert(t *testing.T) {
	g := New()
	g.Insert("hello", []string{"A"})
	g.Insert("hello", []string{"B"})

	if g.Size() != 1 {
		t.Errorf("Size() = %d, want 1", g.Size())
	}
	flags, ok := g.Flags("hello")
	if !ok || len(flags) != 1 || flags[0] != "B" {
		t.Errorf("Flags() = %v, want [B]", flags)
	}
}

func TestRemoveAbsent(t *testing.T) {
	g := New()
	g.Insert("hello", nil)
	g.Remove("nope")
	if g.Size() != 1 {
		t.Errorf("Size() = %d, want 1", g.Size())
	}
}

func TestEmptyWord(t *testing.T) {
	g := New()
	if g.Has("") {
		t.Error("empty string should never be stored")
	}
	if g.HasPrefix("") != false {
		t.Error("empty prefix on empty graph should not match")
	}
}

func TestGobRoundTrip(t *testing.T) {
	g := New()
	g.Insert("hello", []string{"A", "B"})
	g.Insert("world", nil)

	data, err := g.GobEncode()
	if err != nil {
		t.Fatalf("GobEncode: %v", err)
	}

	g2 := New()
	if err := g2.GobDecode(data); err != nil {
		t.Fatalf("GobDecode: %v", err)
	}

	if !g2.Has("hello") || !g2.Has("world") {
		t.Error("decoded graph missing words")
	}
	flags, _ := g2.Flags("hello")
	if len(flags) != 2 || flags[0] != "A" || flags[1] != "B" {
		t.Errorf("Flags() = %v, want [A B]", flags)
	}
}
