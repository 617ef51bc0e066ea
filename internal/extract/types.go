package extract

import (
	"errors"
	"unicode/utf8"
)

var ErrNilDocument = errors.New("문서가 비어 있음(nil)")

type Metadata struct {
	Title   string
	Subject string
}

// Span is one run of text with its font size. Page is 1-based; 0 means the
// page is unknown.
type Span struct {
	Page int
	Size float64
	Text string
}

type RawDocument struct {
	Text     string
	Metadata *Metadata
	Spans    []Span
}

type KeyValue struct {
	Key   string
	Value string
	Index int
}

type Bullet struct {
	Text  string
	Index int
}

type Result struct {
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Summary     string   `json:"summary"`
	Features    []string `json:"features"`
}

func runeLen(s string) int {
	return utf8.RuneCountInString(s)
}

func firstRunes(s string, n int) string {
	if n <= 0 {
		return ""
	}
	i := 0
	for pos := range s {
		if i == n {
			return s[:pos]
		}
		i++
	}
	return s
}
