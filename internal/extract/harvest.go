package extract

import "strings"

const (
	maxLineRunes = 300
	maxKeyRunes  = 60
	dashSep      = " - "
)

// bulletMarkers are the runes that open a list item in extracted text.
const bulletMarkers = "•●-▪‣–—·*"

const bulletEdgeTrim = " -–—·:*"

func splitLines(text string) []string {
	text = strings.ReplaceAll(text, "\r\n", "\n")
	text = strings.ReplaceAll(text, "\r", "\n")
	return strings.Split(text, "\n")
}

// HarvestKeyValues collects "key: value" and "key - value" lines in source
// order. The colon wins when a line has both separators.
func HarvestKeyValues(text string, limit int) []KeyValue {
	if limit <= 0 {
		limit = DefaultKVCap
	}
	out := make([]KeyValue, 0, 32)
	for i, line := range splitLines(text) {
		s := strings.TrimSpace(line)
		if s == "" || runeLen(s) > maxLineRunes {
			continue
		}
		var k, v string
		if idx := strings.Index(s, ":"); idx >= 0 {
			k, v = s[:idx], s[idx+1:]
		} else if idx := strings.Index(s, dashSep); idx >= 0 {
			k, v = s[:idx], s[idx+len(dashSep):]
		} else {
			continue
		}
		k, v = strings.TrimSpace(k), strings.TrimSpace(v)
		if n := runeLen(k); n < 1 || n > maxKeyRunes || v == "" {
			continue
		}
		out = append(out, KeyValue{Key: k, Value: v, Index: i})
		if len(out) >= limit {
			break
		}
	}
	return out
}

// HarvestBullets collects lines the source already marks as list items, with
// the markers stripped.
func HarvestBullets(text string, limit int) []Bullet {
	if limit <= 0 {
		limit = DefaultBulletCap
	}
	out := make([]Bullet, 0, 32)
	for i, line := range splitLines(text) {
		s := strings.TrimSpace(line)
		if s == "" || !startsWithMarker(s) {
			continue
		}
		s = strings.TrimLeft(s, bulletMarkers)
		s = strings.Trim(s, bulletEdgeTrim)
		if s == "" {
			continue
		}
		out = append(out, Bullet{Text: s, Index: i})
		if len(out) >= limit {
			break
		}
	}
	return out
}

func startsWithMarker(s string) bool {
	for _, r := range s {
		return strings.ContainsRune(bulletMarkers, r)
	}
	return false
}
