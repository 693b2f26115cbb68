package report

import (
	"bytes"
	"fmt"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/text"
)

// md renders GitHub-style tables, which the report relies on.
var md = goldmark.New(goldmark.WithExtensions(extension.Table))

// RenderHTML converts the markdown report to an HTML fragment.
func RenderHTML(r *Report) (string, error) {
	var buf bytes.Buffer
	if err := md.Convert([]byte(RenderMarkdown(r)), &buf); err != nil {
		return "", fmt.Errorf("converting report to HTML: %w", err)
	}
	return buf.String(), nil
}

// ValidateMarkdown checks that rendered output parses as markdown.
// Goldmark is very permissive, so this is a basic sanity check used by
// tests and the orchestration layer.
func ValidateMarkdown(input string) bool {
	parser := md.Parser()
	doc := parser.Parse(text.NewReader([]byte(input)))
	return doc != nil
}
