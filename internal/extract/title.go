package extract

import (
	"regexp"
	"sort"
	"strings"
)

const (
	maxNameRunes     = 100
	maxFallbackRunes = 80
	minMetaRunes     = 2
	minSpanSize      = 8
	topSpanCount     = 50
	spanPageLimit    = 2
)

var modelCodeRe = regexp.MustCompile(`(?i)\b([A-Z]{2,}[A-Z0-9\-_/]{1,}|[A-Z0-9]{2,}\-[A-Z0-9\-_/]+)\b`)

// titleStrategy returns ok=false when it has nothing to offer so the next
// strategy runs.
type titleStrategy func(doc *RawDocument) (string, bool)

func titleStrategies() []titleStrategy {
	return []titleStrategy{
		titleFromMetadata,
		titleFromSpans,
		titleFromModelCode,
		titleFromFirstLine,
	}
}

// ResolveTitle guesses a short product name. It never returns an empty string.
func ResolveTitle(doc *RawDocument, placeholder string) string {
	if placeholder == "" {
		placeholder = DefaultPlaceholderName
	}
	if doc == nil {
		return placeholder
	}
	for _, strategy := range titleStrategies() {
		name, ok := strategy(doc)
		if !ok {
			continue
		}
		name = strings.TrimSpace(firstRunes(name, maxNameRunes))
		if name != "" {
			return name
		}
	}
	return placeholder
}

func findModelCode(s string) (string, bool) {
	loc := findBounded(modelCodeRe, s)
	if loc == nil {
		return "", false
	}
	return s[loc[2]:loc[3]], true
}

func titleFromMetadata(doc *RawDocument) (string, bool) {
	if doc.Metadata == nil {
		return "", false
	}
	for _, v := range []string{doc.Metadata.Title, doc.Metadata.Subject} {
		v = strings.TrimSpace(v)
		if n := runeLen(v); v == "" || n < minMetaRunes || n > maxNameRunes {
			continue
		}
		if code, ok := findModelCode(v); ok {
			return strings.TrimSpace(code), true
		}
		return v, true
	}
	return "", false
}

func titleFromSpans(doc *RawDocument) (string, bool) {
	tops := make([]Span, 0, len(doc.Spans))
	for _, sp := range doc.Spans {
		if sp.Page > spanPageLimit {
			continue
		}
		text := strings.TrimSpace(sp.Text)
		if text == "" || sp.Size < minSpanSize {
			continue
		}
		tops = append(tops, Span{Page: sp.Page, Size: sp.Size, Text: text})
	}
	if len(tops) == 0 {
		return "", false
	}
	sort.SliceStable(tops, func(i, j int) bool { return tops[i].Size > tops[j].Size })
	if len(tops) > topSpanCount {
		tops = tops[:topSpanCount]
	}
	for _, sp := range tops {
		if code, ok := findModelCode(sp.Text); ok {
			return strings.TrimSpace(code), true
		}
	}
	return firstRunes(tops[0].Text, maxFallbackRunes), true
}

func titleFromModelCode(doc *RawDocument) (string, bool) {
	code, ok := findModelCode(doc.Text)
	if !ok {
		return "", false
	}
	return firstRunes(code, maxFallbackRunes), true
}

func titleFromFirstLine(doc *RawDocument) (string, bool) {
	for _, line := range splitLines(doc.Text) {
		line = strings.TrimSpace(line)
		if line != "" {
			return firstRunes(line, maxFallbackRunes), true
		}
	}
	return "", false
}
