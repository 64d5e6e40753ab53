// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package slug provides URL-friendly slug generation from arbitrary strings.
package slug

import (
	"regexp"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// separators matches every run of characters that cannot appear in a slug.
var separators = regexp.MustCompile(`[^a-z0-9]+`)

// foldDiacritics decomposes accented letters and drops the combining marks,
// so "café" becomes "cafe".
var foldDiacritics = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// cyrillic maps lowercase Cyrillic letters to their Latin transliteration.
var cyrillic = map[rune]string{
	'а': "a", 'б': "b", 'в': "v", 'г': "g", 'д': "d",
	'е': "e", 'ё': "e", 'ж': "zh", 'з': "z", 'и': "i",
	'й': "y", 'к': "k", 'л': "l", 'м': "m", 'н': "n",
	'о': "o", 'п': "p", 'р': "r", 'с': "s", 'т': "t",
	'у': "u", 'ф': "f", 'х': "kh", 'ц': "ts", 'ч': "ch",
	'ш': "sh", 'щ': "shch", 'ъ': "", 'ы': "y", 'ь': "",
	'э': "e", 'ю': "yu", 'я': "ya",
}

// Generate creates a URL-friendly slug from the given string: diacritics
// are folded, Cyrillic is transliterated, everything is lowercased, and
// every run of remaining non-alphanumeric characters collapses into a
// single hyphen.
// Example: "Hello, World! 2026" → "hello-world-2026"
func Generate(s string) string {
	// Transliterate before folding: NFD would decompose letters like й
	// into a base rune plus a combining mark and bypass the table.
	s = transliterate(s)
	if folded, _, err := transform.String(foldDiacritics, s); err == nil {
		s = folded
	}
	result := strings.ToLower(s)
	result = separators.ReplaceAllString(result, "-")
	return strings.Trim(result, "-")
}

// transliterate replaces Cyrillic letters with Latin equivalents and leaves
// every other rune untouched.
func transliterate(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		if latin, ok := cyrillic[unicode.ToLower(r)]; ok {
			b.WriteString(latin)
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}
