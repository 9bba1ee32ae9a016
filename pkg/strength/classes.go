// Copyright (c) 2022. Alvin Baena.
// SPDX-License-Identifier: MIT

package strength

import (
	"strings"
)

// Punctuation is the ASCII punctuation set, in code point order.
const Punctuation = "!\"#$%&'()*+,-./:;<=>?@[\\]^_`{|}~"

// CharClasses holds which character classes are present in a password.
type CharClasses struct {
	Lower  bool
	Upper  bool
	Digit  bool
	Symbol bool
}

// Count returns the number of classes present.
func (c CharClasses) Count() int {
	n := 0
	for _, present := range []bool{c.Lower, c.Upper, c.Digit, c.Symbol} {
		if present {
			n++
		}
	}
	return n
}

// Classes scans the password once. Only ASCII characters are classified,
// anything else counts towards length but no class.
func Classes(password string) CharClasses {
	var c CharClasses
	for _, r := range password {
		switch {
		case IsLower(r):
			c.Lower = true
		case IsUpper(r):
			c.Upper = true
		case IsDigit(r):
			c.Digit = true
		case IsSymbol(r):
			c.Symbol = true
		}
	}
	return c
}

func IsLower(r rune) bool {
	return r >= 'a' && r <= 'z'
}

func IsUpper(r rune) bool {
	return r >= 'A' && r <= 'Z'
}

func IsDigit(r rune) bool {
	return r >= '0' && r <= '9'
}

// IsSymbol reports ASCII punctuation. The hyphen is listed on its own as well,
// it is already part of Punctuation so the check is redundant.
func IsSymbol(r rune) bool {
	if r > 0x7f {
		return false
	}
	return strings.ContainsRune(Punctuation, r) || r == '-'
}
