// Package vowel counts vowels in text.
//
// Count is a plain membership check against "aeiouAEIOU", so accented
// vowels such as "ó" are not counted. CountFolded first strips combining
// marks (NFD decomposition, then removal of nonspacing marks) so that
// accented vowels count as their base letter.
package vowel

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// vowels is the membership set used by Count.
const vowels = "aeiouAEIOU"

// Count returns the number of ASCII vowels in text, either case.
func Count(text string) int {
	count := 0
	for _, r := range text {
		if strings.ContainsRune(vowels, r) {
			count++
		}
	}
	return count
}

// CountFolded counts vowels after removing diacritics, so "Programación"
// yields 5 instead of 4. Text that cannot be folded is counted as-is.
func CountFolded(text string) int {
	return Count(Fold(text))
}

// Fold strips combining marks from text: "ó" becomes "o", "Ü" becomes "U".
func Fold(text string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	folded, _, err := transform.String(t, text)
	if err != nil {
		return text
	}
	return folded
}
