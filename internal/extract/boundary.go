package extract

import (
	"regexp"
	"unicode"
	"unicode/utf8"
)

// isWordRune follows the Unicode notion of a word character. regexp's \b
// only knows ASCII, so a hit like "Caf" inside "Café" has to be rejected here.
func isWordRune(r rune) bool {
	return r == '_' || unicode.IsLetter(r) || unicode.IsDigit(r)
}

func wordBounded(s string, start, end int) bool {
	if start > 0 {
		if r, _ := utf8.DecodeLastRuneInString(s[:start]); isWordRune(r) {
			return false
		}
	}
	if end < len(s) {
		if r, _ := utf8.DecodeRuneInString(s[end:]); isWordRune(r) {
			return false
		}
	}
	return true
}

// findBounded returns the submatch indexes of the leftmost hit of re whose
// edges are not touching a letter, digit or underscore of any script.
func findBounded(re *regexp.Regexp, s string) []int {
	off := 0
	for off <= len(s) {
		loc := re.FindStringSubmatchIndex(s[off:])
		if loc == nil {
			return nil
		}
		for i := range loc {
			if loc[i] >= 0 {
				loc[i] += off
			}
		}
		if wordBounded(s, loc[0], loc[1]) {
			return loc
		}
		_, size := utf8.DecodeRuneInString(s[loc[0]:])
		if size == 0 {
			size = 1
		}
		off = loc[0] + size
	}
	return nil
}
