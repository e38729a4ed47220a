// Package html_parser reduces feed-supplied HTML to plain text. Feeds ship
// arbitrary markup; stored summaries and bodies are text only.
package html_parser

import (
	htmlesc "html"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/microcosm-cc/bluemonday"
	"golang.org/x/net/html"
)

var stripPolicy = bluemonday.StrictPolicy()

// StripText converts raw (possibly HTML-bearing) content into plain text:
// tag-delimited spans become a single space, whitespace collapses, and the
// result is trimmed. Returns "" for empty input.
func StripText(raw string) string {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return ""
	}

	// Already plain text, just normalize entities and whitespace.
	if !strings.Contains(trimmed, "<") {
		return collapseWhitespace(htmlesc.UnescapeString(trimmed))
	}

	// Walk every text node so direct text survives next to inline children
	// ("a <b>bold</b> word" keeps all three spans).
	if doc, err := goquery.NewDocumentFromReader(strings.NewReader(trimmed)); err == nil {
		var parts []string
		for _, root := range doc.Nodes {
			collectText(root, &parts)
		}
		if len(parts) > 0 {
			return collapseWhitespace(strings.Join(parts, " "))
		}
	}

	// Fallback: sanitize away every tag. A space is forced at tag
	// boundaries first so "a<br>b" does not fuse into "ab".
	spaced := strings.ReplaceAll(trimmed, "<", " <")
	stripped := stripPolicy.Sanitize(spaced)
	return collapseWhitespace(htmlesc.UnescapeString(stripped))
}

func collectText(n *html.Node, parts *[]string) {
	if n.Type == html.ElementNode && (n.Data == "script" || n.Data == "style") {
		return
	}
	if n.Type == html.TextNode {
		if text := strings.TrimSpace(n.Data); text != "" {
			*parts = append(*parts, text)
		}
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		collectText(c, parts)
	}
}

// StripTextPtr is StripText for optional content: nil in, nil out, and empty
// results become nil as well.
func StripTextPtr(raw string) *string {
	text := StripText(raw)
	if text == "" {
		return nil
	}
	return &text
}

func collapseWhitespace(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
