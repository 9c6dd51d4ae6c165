// Package markdown renders listing descriptions to sanitised HTML.
package markdown

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/microcosm-cc/bluemonday"
	"github.com/yuin/goldmark"
)

var (
	engine = goldmark.New()
	policy = newDescriptionPolicy()
)

func newDescriptionPolicy() *bluemonday.Policy {
	p := bluemonday.UGCPolicy()
	p.AllowAttrs("class").OnElements("p", "span")
	p.RequireNoFollowOnLinks(true)
	return p
}

// Render converts Markdown source into HTML safe to embed in a page.
// Blank input renders to an empty string.
func Render(source string) (string, error) {
	trimmed := strings.TrimSpace(source)
	if trimmed == "" {
		return "", nil
	}
	var buf bytes.Buffer
	if err := engine.Convert([]byte(trimmed), &buf); err != nil {
		return "", fmt.Errorf("render markdown: %w", err)
	}
	return strings.TrimSpace(policy.Sanitize(buf.String())), nil
}
