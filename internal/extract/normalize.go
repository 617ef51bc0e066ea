package extract

import (
	"regexp"
	"strings"
	"unicode"

	"golang.org/x/text/unicode/norm"
)

const bulletPrefix = "- "

var (
	trailingDecorRe = regexp.MustCompile(`["'·•*]+$`)
	trailingSepRe   = regexp.MustCompile(`(?:[、,，…]|\.{2,})+$`)
	dashReplacer    = strings.NewReplacer("•", "", "–", "-", "—", "-")
)

// Normalizer canonicalizes feature bullets. Its output is a fixed point:
// normalizing an already normalized list returns the same list.
type Normalizer struct {
	maxLen int
	unitRe *regexp.Regexp
	script *unicode.RangeTable
}

func NewNormalizer(maxLen int, units []string, script *unicode.RangeTable) *Normalizer {
	if maxLen <= 0 {
		maxLen = DefaultBulletMaxLen
	}
	if maxLen < minBulletLen {
		maxLen = minBulletLen
	}
	return &Normalizer{maxLen: maxLen, unitRe: compileUnits(units), script: script}
}

// NewNormalizerFromConfig builds the normalizer a Config describes.
func NewNormalizerFromConfig(cfg Config) *Normalizer {
	cfg = cfg.withDefaults()
	return NewNormalizer(cfg.BulletMaxLen, cfg.Units, ScriptTable(cfg.TargetScript))
}

func compileUnits(units []string) *regexp.Regexp {
	parts := make([]string, 0, len(units))
	for _, u := range units {
		u = strings.TrimSpace(u)
		if u == "" {
			continue
		}
		parts = append(parts, regexp.QuoteMeta(u))
	}
	if len(parts) == 0 {
		return nil
	}
	return regexp.MustCompile(`(?i)\b(` + strings.Join(parts, "|") + `)\b`)
}

func (n *Normalizer) Normalize(items []string) []string {
	out := make([]string, 0, len(items))
	seen := map[string]struct{}{}
	for _, raw := range items {
		s, ok := n.normalizeOne(raw)
		if !ok {
			continue
		}
		key := strings.ToLower(s)
		if _, dup := seen[key]; dup {
			continue
		}
		seen[key] = struct{}{}
		out = append(out, s)
	}
	return out
}

func (n *Normalizer) normalizeOne(raw string) (string, bool) {
	body := strings.TrimSpace(raw)
	if body == "" {
		return "", false
	}
	// Glyph removal runs before NFKC; NFKC can still emit dashes from
	// presentation forms, hence the second pass.
	body = dashReplacer.Replace(body)
	body = norm.NFKC.String(body)
	body = dashReplacer.Replace(body)
	body = strings.Join(strings.Fields(body), " ")
	body = strings.TrimLeft(body, "-•* ")
	body = trimTrailing(body)
	body = trimTrailing(firstRunes(body, n.maxLen-runeLen(bulletPrefix)))
	if body == "" {
		return "", false
	}
	s := bulletPrefix + body
	if !n.hasContent(s) {
		return "", false
	}
	return s, true
}

// trimTrailing strips decorative quotes and list separators from the end of s
// until nothing changes.
func trimTrailing(s string) string {
	for {
		next := strings.TrimRightFunc(s, unicode.IsSpace)
		next = trailingDecorRe.ReplaceAllString(next, "")
		next = strings.TrimRightFunc(next, unicode.IsSpace)
		next = trailingSepRe.ReplaceAllString(next, "")
		next = strings.TrimRightFunc(next, unicode.IsSpace)
		if next == s {
			return s
		}
		s = next
	}
}

// hasContent admits bullets carrying a digit, a unit token or a rune of the
// target script.
func (n *Normalizer) hasContent(s string) bool {
	for _, r := range s {
		if unicode.IsDigit(r) {
			return true
		}
		if n.script != nil && unicode.Is(n.script, r) {
			return true
		}
	}
	return n.unitRe != nil && findBounded(n.unitRe, s) != nil
}
