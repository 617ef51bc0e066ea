package extract

import (
	"fmt"
	"strings"
)

// Assembler turns a RawDocument into the four product-copy fields. It holds
// only read-only configuration and is safe for concurrent use.
type Assembler struct {
	cfg        Config
	normalizer *Normalizer
}

func NewAssembler(cfg Config) *Assembler {
	cfg = cfg.withDefaults()
	cfg.Categories = cloneCategories(cfg.Categories)
	return &Assembler{cfg: cfg, normalizer: NewNormalizerFromConfig(cfg)}
}

// Build extracts name, description, summary and features. Missing facts are
// omitted, never filled in; the only error is a nil document.
func (a *Assembler) Build(doc *RawDocument) (Result, error) {
	if doc == nil {
		return Result{}, ErrNilDocument
	}
	flat := collapseWhitespace(doc.Text)
	res := Result{
		Name:        ResolveTitle(doc, a.cfg.PlaceholderName),
		Description: firstRunes(flat, a.cfg.DescMax),
		Summary:     firstRunes(flat, a.cfg.SummaryMax),
	}
	res.Features = a.features(doc.Text)
	return res, nil
}

func (a *Assembler) features(text string) []string {
	kvs := HarvestKeyValues(text, a.cfg.KVCap)
	bullets := HarvestBullets(text, a.cfg.BulletCap)
	fl := newFeatureList(a.cfg.FeatureCap)

	used := make(map[int]struct{}, len(a.cfg.Categories))
	for _, cat := range a.cfg.Categories {
		for i, kv := range kvs {
			if _, ok := used[i]; ok {
				continue
			}
			if !cat.Matches(kv.Key, kv.Value) {
				continue
			}
			used[i] = struct{}{}
			fl.add(fmt.Sprintf("- %s: %s", cat.Key, kv.Value))
			break
		}
		if fl.full() {
			return a.finish(fl.items)
		}
	}

	for i, kv := range kvs {
		if _, ok := used[i]; ok {
			continue
		}
		fl.addUnique(fmt.Sprintf("- %s: %s", kv.Key, kv.Value))
		if fl.full() {
			return a.finish(fl.items)
		}
	}

	for _, b := range bullets {
		line := b.Text
		if !strings.HasPrefix(line, "-") {
			line = "- " + line
		}
		fl.addUnique(line)
		if fl.full() {
			break
		}
	}
	return a.finish(fl.items)
}

func (a *Assembler) finish(items []string) []string {
	out := a.normalizer.Normalize(items)
	if len(out) > a.cfg.FeatureCap {
		out = out[:a.cfg.FeatureCap]
	}
	return out
}

type featureList struct {
	items []string
	cap   int
	seen  map[string]struct{}
}

func newFeatureList(limit int) *featureList {
	return &featureList{items: make([]string, 0, limit), cap: limit, seen: map[string]struct{}{}}
}

func (f *featureList) add(s string) {
	if f.full() {
		return
	}
	f.items = append(f.items, s)
	f.seen[s] = struct{}{}
}

func (f *featureList) addUnique(s string) {
	if _, ok := f.seen[s]; ok {
		return
	}
	f.add(s)
}

func (f *featureList) full() bool {
	return len(f.items) >= f.cap
}

func collapseWhitespace(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

// Build runs the pipeline once with cfg.
func Build(doc *RawDocument, cfg Config) (Result, error) {
	return NewAssembler(cfg).Build(doc)
}

// NormalizeFeatures applies the bullet normalizer to a hand-edited list and
// caps it at the feature limit.
func (a *Assembler) NormalizeFeatures(items []string) []string {
	return a.finish(items)
}

func NormalizeFeatures(items []string, cfg Config) []string {
	return NewAssembler(cfg).NormalizeFeatures(items)
}
