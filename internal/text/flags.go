// Copyright 2016 The Citar Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package text

import "strings"

// FlagEncoding names one of the four flag-string encodings a .aff file
// can declare with the FLAG directive.
type FlagEncoding int

const (
	// FlagShort is the default: one byte-sized code point per flag.
	FlagShort FlagEncoding = iota
	// FlagLong packs two characters per flag.
	FlagLong
	// FlagNum is a comma-separated list of decimal numbers.
	FlagNum
	// FlagUTF8 is one Unicode code point per flag.
	FlagUTF8
)

// ParseFlagEncoding maps a FLAG directive argument to a FlagEncoding.
// Unrecognized values fall back to FlagShort.
func ParseFlagEncoding(s string) FlagEncoding {
	switch s {
	case "long":
		return FlagLong
	case "num":
		return FlagNum
	case "UTF-8":
		return FlagUTF8
	default:
		return FlagShort
	}
}

// ParseFlags splits a raw flag string into individual flag codes
// according to enc.
func ParseFlags(s string, enc FlagEncoding) []string {
	if s == "" {
		return nil
	}

	switch enc {
	case FlagLong:
		runes := []rune(s)
		var codes []string
		for i := 0; i+1 < len(runes); i += 2 {
			codes = append(codes, string(runes[i:i+2]))
		}
		return codes
	case FlagNum:
		parts := strings.Split(s, ",")
		codes := make([]string, 0, len(parts))
		for _, p := range parts {
			p = strings.TrimSpace(p)
			if p != "" {
				codes = append(codes, p)
			}
		}
		return codes
	default: // FlagShort, FlagUTF8: one code point each
		var codes []string
		for _, r := range s {
			codes = append(codes, string(r))
		}
		return codes
	}
}

// ContainsFlag reports whether code is present in codes.
func ContainsFlag(codes []string, code string) bool {
	if code == "" {
		return false
	}
	for _, c := range codes {
		if c == code {
			return true
		}
	}
	return false
}
