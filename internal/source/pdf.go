package source

import (
	"fmt"
	"strings"

	"github.com/tsawler/tabula"
	"github.com/tsawler/tabula/core"
	"github.com/tsawler/tabula/reader"
	xunicode "golang.org/x/text/encoding/unicode"

	"webspec/internal/extract"
)

// spanPages is how many leading pages feed the title resolver.
const spanPages = 2

func loadPDF(path string) (Document, error) {
	r, err := reader.Open(path)
	if err != nil {
		return Document{}, fmt.Errorf("PDF 열기 실패(%s): %w", path, err)
	}
	defer r.Close()

	text, warnings, err := tabula.FromReader(r).Text()
	if err != nil {
		return Document{}, fmt.Errorf("PDF 텍스트 추출 실패(%s): %w", path, err)
	}
	doc := Document{
		SourcePath: path,
		Kind:       KindPDF,
		Raw:        ParseText(text),
	}
	if len(warnings) > 0 {
		doc.Warnings = append(doc.Warnings, fmt.Sprintf("텍스트 추출 경고 %d건", len(warnings)))
	}

	meta, err := readMetadata(r)
	if err != nil {
		doc.Warnings = append(doc.Warnings, fmt.Sprintf("메타데이터 읽기 실패, 무시함: %v", err))
	} else {
		doc.Raw.Metadata = meta
	}

	spans, err := readSpans(r)
	if err != nil {
		doc.Warnings = append(doc.Warnings, fmt.Sprintf("글꼴 정보 읽기 실패, 무시함: %v", err))
	} else {
		doc.Raw.Spans = spans
	}
	return doc, nil
}

func readMetadata(r *reader.Reader) (*extract.Metadata, error) {
	info, err := r.GetInfo()
	if err != nil {
		return nil, err
	}
	if info == nil {
		return nil, nil
	}
	meta := &extract.Metadata{
		Title:   infoString(info, "Title"),
		Subject: infoString(info, "Subject"),
	}
	if meta.Title == "" && meta.Subject == "" {
		return nil, nil
	}
	return meta, nil
}

func infoString(info core.Dict, key string) string {
	s, ok := info.GetString(key)
	if !ok {
		return ""
	}
	return strings.TrimSpace(decodePDFText(string(s)))
}

// decodePDFText turns a UTF-16 text string (signalled by its BOM) into UTF-8.
// Other strings are returned unchanged.
func decodePDFText(s string) string {
	if !strings.HasPrefix(s, "\xfe\xff") && !strings.HasPrefix(s, "\xff\xfe") {
		return s
	}
	dec := xunicode.UTF16(xunicode.BigEndian, xunicode.ExpectBOM).NewDecoder()
	out, err := dec.String(s)
	if err != nil {
		return s
	}
	return out
}

func readSpans(r *reader.Reader) ([]extract.Span, error) {
	count, err := r.PageCount()
	if err != nil {
		return nil, err
	}
	if count > spanPages {
		count = spanPages
	}
	spans := make([]extract.Span, 0, 256)
	for page := 1; page <= count; page++ {
		frags, _, err := tabula.FromReader(r).Pages(page).Fragments()
		if err != nil {
			return nil, err
		}
		for _, f := range frags {
			spans = append(spans, extract.Span{Page: page, Size: f.FontSize, Text: f.Text})
		}
	}
	return spans, nil
}
