package source

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"webspec/internal/extract"
)

const (
	KindPDF  = "pdf"
	KindText = "text"
)

var extKinds = map[string]string{
	".pdf": KindPDF,
	".txt": KindText,
	".md":  KindText,
}

// Document is one input file turned into the pipeline's raw input. Warnings
// describe parts of the file that could not be read and were treated as absent.
type Document struct {
	SourcePath string
	Kind       string
	Raw        extract.RawDocument
	Warnings   []string
}

func KindOf(path string) (string, bool) {
	kind, ok := extKinds[strings.ToLower(filepath.Ext(path))]
	return kind, ok
}

func Supported(path string) bool {
	_, ok := KindOf(path)
	return ok
}

func Load(path string) (Document, error) {
	kind, ok := KindOf(path)
	if !ok {
		return Document{}, fmt.Errorf("지원하지 않는 파일 형식: %s", path)
	}
	if kind == KindPDF {
		return loadPDF(path)
	}
	raw, err := os.ReadFile(path)
	if err != nil {
		return Document{}, fmt.Errorf("파일 읽기 실패(%s): %w", path, err)
	}
	return Document{
		SourcePath: path,
		Kind:       KindText,
		Raw:        ParseText(string(raw)),
	}, nil
}

// ParseText prepares plain extracted text: BOM removed, line endings unified.
func ParseText(raw string) extract.RawDocument {
	raw = strings.TrimPrefix(raw, "\ufeff")
	raw = strings.ReplaceAll(raw, "\r\n", "\n")
	return extract.RawDocument{Text: raw}
}
