package app

import (
	"encoding/json"
	"strings"

	"webspec/internal/config"
	"webspec/internal/extract"
)

// featureLabel is printed right above the feature bullets.
const featureLabel = "**◆ 주요 특징 ◆**"

func RenderMarkdown(res extract.Result) string {
	var b strings.Builder
	b.WriteString("**제품명**: ")
	b.WriteString(res.Name)
	b.WriteString("\n\n### 제품 설명\n")
	b.WriteString(res.Description)
	b.WriteString("\n\n### 제품 요약\n")
	b.WriteString(res.Summary)
	b.WriteString("\n\n### 특징\n")
	b.WriteString(featureLabel)
	b.WriteString("\n")
	if len(res.Features) == 0 {
		b.WriteString("-\n")
		return b.String()
	}
	for _, f := range res.Features {
		b.WriteString(f)
		b.WriteString("\n")
	}
	return b.String()
}

func RenderJSON(res extract.Result) ([]byte, error) {
	if res.Features == nil {
		res.Features = []string{}
	}
	b, err := json.MarshalIndent(res, "", "  ")
	if err != nil {
		return nil, err
	}
	return append(b, '\n'), nil
}

// render returns the file body and extension for format.
func render(format string, res extract.Result) ([]byte, string, error) {
	if format == config.FormatJSON {
		b, err := RenderJSON(res)
		return b, ".json", err
	}
	return []byte(RenderMarkdown(res)), ".md", nil
}
