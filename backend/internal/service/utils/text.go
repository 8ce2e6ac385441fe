package utils

import (
	"bytes"
	"html"
	"strings"
	"unicode"

	"github.com/itchan-dev/kanban/shared/logger"
	"github.com/microcosm-cc/bluemonday"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	gmhtml "github.com/yuin/goldmark/renderer/html"
)

// TextProcessor normalizes user text before storage and renders card descriptions for display.
// Stored text is kept verbatim; HTML is produced only by Render.
type TextProcessor struct {
	md  goldmark.Markdown
	ugc *bluemonday.Policy
}

func NewTextProcessor() *TextProcessor {
	md := goldmark.New(
		goldmark.WithExtensions(extension.Strikethrough, extension.Linkify, extension.TaskList),
		goldmark.WithRendererOptions(gmhtml.WithHardWraps()),
	)
	ugc := bluemonday.UGCPolicy()
	ugc.RequireNoFollowOnLinks(true)
	ugc.AddTargetBlankToFullyQualifiedLinks(true)
	return &TextProcessor{md: md, ugc: ugc}
}

// Plain trims surrounding whitespace and drops control characters other than
// newline and tab. Angle brackets are ordinary text here: "<urgent>" is a valid label.
func (p *TextProcessor) Plain(s string) string {
	s = strings.Map(func(r rune) rune {
		if r != '\n' && r != '\t' && unicode.IsControl(r) {
			return -1
		}
		return r
	}, s)
	return strings.TrimSpace(s)
}

// PlainPtr is Plain for optional fields; an empty result becomes nil.
func (p *TextProcessor) PlainPtr(s *string) *string {
	if s == nil {
		return nil
	}
	clean := p.Plain(*s)
	if clean == "" {
		return nil
	}
	return &clean
}

// Render converts markdown to sanitized HTML.
func (p *TextProcessor) Render(s string) string {
	if s == "" {
		return ""
	}
	var buf bytes.Buffer
	if err := p.md.Convert([]byte(s), &buf); err != nil {
		logger.Log.Error("failed to render markdown", "error", err)
		return p.ugc.Sanitize(html.EscapeString(s))
	}
	return p.ugc.Sanitize(buf.String())
}
