// Copyright 2016 The Citar Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package text

import "testing"

func TestDetectCasing(t *testing.T) {
	tests := []struct {
		input string
		want  Casing
	}{
		{"", Undefined},
		{"hello", Lower},
		{"HELLO", Upper},
		{"Hello", Capitalized},
		{"HeLLo", Mixed},
		{"h", Lower},
		{"H", Upper},
		{"123", Lower},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			if got := DetectCasing(tt.input); got != tt.want {
				t.Errorf("DetectCasing(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestCapitalize(t *testing.T) {
	tests := []struct {
		input, want string
	}{
		{"", ""},
		{"hello", "Hello"},
		{"HELLO", "Hello"},
		{"hELLO", "Hello"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			if got := Capitalize(tt.input); got != tt.want {
				t.Errorf("Capitalize(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestSwitchCase(t *testing.T) {
	if got := SwitchCase("Hello"); got != "hELLO" {
		t.Errorf("SwitchCase(Hello) = %q, want hELLO", got)
	}
}

func TestParseFlags(t *testing.T) {
	tests := []struct {
		name string
		s    string
		enc  FlagEncoding
		want []string
	}{
		{"short", "AB", FlagShort, []string{"A", "B"}},
		{"long", "AABB", FlagLong, []string{"AA", "BB"}},
		{"num", "1,2,30", FlagNum, []string{"1", "2", "30"}},
		{"utf8", "αβ", FlagUTF8, []string{"α", "β"}},
		{"empty", "", FlagShort, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ParseFlags(tt.s, tt.enc)
			if len(got) != len(tt.want) {
				t.Fatalf("ParseFlags(%q) = %v, want %v", tt.s, got, tt.want)
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Errorf("ParseFlags(%q)[%d] = %q, want %q", tt.s, i, got[i], tt.want[i])
				}
			}
		})
	}
}

func TestConversion(t *testing.T) {
	pair, ok := CompileConversion("ie", "ei")
	if !ok {
		t.Fatal("expected CompileConversion to succeed")
	}
	conv := Conversion{pair}
	if got := conv.Apply("recieve"); got != "receive" {
		t.Errorf("Apply = %q, want receive", got)
	}
}

func TestCompileConversionInvalid(t *testing.T) {
	if _, ok := CompileConversion("(", "x"); ok {
		t.Error("expected invalid pattern to fail to compile")
	}
}
