// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package render turns draft Markdown into HTML for previews.
package render

import (
	"github.com/gomarkdown/markdown"
	"github.com/gomarkdown/markdown/html"
	"github.com/gomarkdown/markdown/parser"
)

const extensions = parser.CommonExtensions | parser.AutoHeadingIDs | parser.Footnotes | parser.NoEmptyLineBeforeBlock

// HTML renders md as an HTML fragment. Raw HTML in the source is escaped
// and links open in a new tab.
func HTML(md []byte) []byte {
	doc := parser.NewWithExtensions(extensions).Parse(md)

	renderer := html.NewRenderer(html.RendererOptions{
		Flags: html.CommonFlags | html.HrefTargetBlank | html.SkipHTML | html.FootnoteReturnLinks,
	})
	return markdown.Render(doc, renderer)
}

// Page wraps a rendered fragment in a minimal standalone document.
func Page(title string, md []byte) []byte {
	renderer := html.NewRenderer(html.RendererOptions{
		Title: title,
		Flags: html.CommonFlags | html.HrefTargetBlank | html.SkipHTML | html.CompletePage,
	})
	doc := parser.NewWithExtensions(extensions).Parse(md)
	return markdown.Render(doc, renderer)
}
