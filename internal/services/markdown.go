package services

import (
	"bytes"
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
)

var markdown = goldmark.New(goldmark.WithExtensions(extension.GFM))

// RenderMarkdown converts model-produced markdown into HTML for display.
func RenderMarkdown(md string) (string, error) {
	if md == "" {
		return "", nil
	}
	var buf bytes.Buffer
	if err := markdown.Convert([]byte(md), &buf); err != nil {
		return "", err
	}
	return buf.String(), nil
}

// FlattenSections joins the section_content values when a chat reply turns
// out to be a sections JSON document. Any other reply is returned unchanged.
func FlattenSections(text string) string {
	p := ExtractPayload(text, "sections")
	if !p.Parsed || !p.HasMarker {
		return text
	}

	raw, _ := p.Data["sections"].([]any)
	var parts []string
	for _, item := range raw {
		section, ok := item.(map[string]any)
		if !ok {
			continue
		}
		if content, ok := section["section_content"].(string); ok && content != "" {
			parts = append(parts, content)
		}
	}

	if len(parts) == 0 {
		return text
	}
	return strings.Join(parts, "\n\n")
}
