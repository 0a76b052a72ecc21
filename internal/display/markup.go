package display

import (
	"strings"

	"golang.org/x/net/html"
)

// blockTags are the tags that break lines when markup is flattened.
var blockTags = map[string]struct{}{
	"p": {}, "div": {}, "br": {}, "li": {}, "ul": {}, "ol": {},
	"h1": {}, "h2": {}, "h3": {}, "h4": {}, "table": {}, "tr": {},
}

// RenderMarkup flattens result markup into plain terminal text. Block-level
// tags become line breaks, every other tag is stripped and entities are
// unescaped. Plain text passes through unchanged.
func RenderMarkup(markup string) string {
	tokenizer := html.NewTokenizer(strings.NewReader(markup))

	var raw strings.Builder
	for {
		switch tokenizer.Next() {
		case html.ErrorToken:
			return collapse(raw.String())
		case html.TextToken:
			raw.Write(tokenizer.Text())
		case html.StartTagToken, html.EndTagToken, html.SelfClosingTagToken:
			name, _ := tokenizer.TagName()
			if _, ok := blockTags[string(name)]; ok {
				raw.WriteByte('\n')
			}
		}
	}
}

func collapse(raw string) string {
	var lines []string
	for _, line := range strings.Split(raw, "\n") {
		if trimmed := strings.TrimSpace(line); trimmed != "" {
			lines = append(lines, trimmed)
		}
	}

	return strings.Join(lines, "\n")
}
