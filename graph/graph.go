// Copyright 2016 The Citar Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package graph implements the word graph: a prefix-sharing trie over
// Unicode scalar values (a map[rune]*node trie with per-node payload,
// recursively inserted and walked).
package graph

import (
	"bytes"
	"encoding/gob"
)

// node is one trie node: a mapping from rune to child, an end-of-word
// marker, and an optional flag list present only on terminals that
// were loaded as dictionary roots.
type node struct {
	children map[rune]*node
	terminal bool
	flags    []string
}

func newNode() *node {
	return &node{children: make(map[rune]*node)}
}

// Graph is a prefix-sharing trie of words with per-terminal flag
// annotations. The zero value is not usable; construct with New.
type Graph struct {
	root *node
	size int
}

// New returns an empty Graph.
func New() *Graph {
	return &Graph{root: newNode()}
}

// Insert adds word to the graph with the given flags, overwriting any
// previously stored flags for that exact word. Inserting the same word
// twice does not change Size(); the later flag list wins, per the
// idempotent-add invariant.
func (g *Graph) Insert(word string, flags []string) {
	if word == "" {
		return
	}

	n := g.root
	for _, r := range word {
		child, ok := n.children[r]
		if !ok {
			child = newNode()
			n.children[r] = child
		}
		n = child
	}

	if !n.terminal {
		g.size++
	}
	n.terminal = true
	n.flags = flags
}

// Has reports whether word is stored as a terminal.
func (g *Graph) Has(word string) bool {
	n := g.find(word)
	return n != nil && n.terminal
}

// Flags returns the flag list stored on word's terminal, and whether
// word is present at all.
func (g *Graph) Flags(word string) ([]string, bool) {
	n := g.find(word)
	if n == nil || !n.terminal {
		return nil, false
	}
	return n.flags, true
}

// HasPrefix reports whether some stored word has prefix as a prefix.
func (g *Graph) HasPrefix(prefix string) bool {
	if prefix == "" {
		return g.size > 0
	}

	// Remove leaves orphan branches behind, so a reachable node only
	// counts if some terminal still lies at or below it.
	var hasTerminal func(n *node) bool
	hasTerminal = func(n *node) bool {
		if n.terminal {
			return true
		}
		for _, child := range n.children {
			if hasTerminal(child) {
				return true
			}
		}
		return false
	}

	n := g.find(prefix)
	return n != nil && hasTerminal(n)
}

// Remove marks word as non-terminal and clears its flags. It does not
// descend into or prune child branches: structural compaction is not
// required. Removing an absent word is a no-op.
func (g *Graph) Remove(word string) {
	n := g.find(word)
	if n == nil || !n.terminal {
		return
	}
	n.terminal = false
	n.flags = nil
	g.size--
}

func (g *Graph) find(word string) *node {
	n := g.root
	for _, r := range word {
		child, ok := n.children[r]
		if !ok {
			return nil
		}
		n = child
	}
	return n
}

// Stats summarizes the graph's shape, per the library surface's
// getStats() contract.
type Stats struct {
	Words    int
	Nodes    int
	AvgDepth float64
}

// Stats computes word/node counts and the average terminal depth.
func (g *Graph) Stats() Stats {
	nodes := 0
	depthSum := 0
	words := 0

	var walk func(n *node, depth int)
	walk = func(n *node, depth int) {
		nodes++
		if n.terminal {
			words++
			depthSum += depth
		}
		for _, child := range n.children {
			walk(child, depth+1)
		}
	}
	walk(g.root, 0)

	avg := 0.0
	if words > 0 {
		avg = float64(depthSum) / float64(words)
	}

	return Stats{Words: words, Nodes: nodes, AvgDepth: avg}
}

// Size returns the number of terminals currently stored.
func (g *Graph) Size() int {
	return g.size
}

// Each calls fn once for every terminal word currently stored, along
// with its flag list.
func (g *Graph) Each(fn func(word string, flags []string)) {
	var walk func(prefix []rune, n *node)
	walk = func(prefix []rune, n *node) {
		if n.terminal {
			fn(string(prefix), n.flags)
		}
		for r, child := range n.children {
			walk(append(prefix, r), child)
		}
	}
	walk(nil, g.root)
}

// encodedEntry is one flattened (word, flags) pair used for gob
// round-tripping: the private Graph type is never encoded directly,
// only this exported mirror struct built for (de)serialization.
type encodedEntry struct {
	Word  string
	Flags []string
}

type encodedGraph struct {
	Entries []encodedEntry
}

var _ gob.GobEncoder = &Graph{}
var _ gob.GobDecoder = &Graph{}

// GobEncode flattens the trie into a word list and encodes it.
func (g *Graph) GobEncode() ([]byte, error) {
	eg := encodedGraph{}
	g.Each(func(word string, flags []string) {
		eg.Entries = append(eg.Entries, encodedEntry{Word: word, Flags: flags})
	})

	var buf bytes.Buffer
	if err := gob.NewEncoder(&buf).Encode(eg); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// GobDecode rebuilds the trie from a flattened word list.
func (g *Graph) GobDecode(data []byte) error {
	var eg encodedGraph
	if err := gob.NewDecoder(bytes.NewReader(data)).Decode(&eg); err != nil {
		return err
	}

	g.root = newNode()
	g.size = 0
	for _, entry := range eg.Entries {
		g.Insert(entry.Word, entry.Flags)
	}
	return nil
}
