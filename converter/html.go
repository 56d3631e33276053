package converter

import (
	"strings"

	"golang.org/x/net/html"
)

// plainText reduces an HTML fragment to text. Input without markup is
// returned trimmed and otherwise untouched.
func plainText(s string) string {
	s = strings.TrimSpace(s)
	if !strings.ContainsAny(s, "<&") {
		return s
	}
	doc, err := html.Parse(strings.NewReader(s))
	if err != nil {
		return s
	}
	var b strings.Builder
	textContent(doc, &b)
	return tidy(b.String())
}

func skipElement(tag string) bool {
	switch tag {
	case "script", "style", "noscript", "template", "svg", "math", "iframe", "object", "embed", "head":
		return true
	}
	return false
}

func textContent(n *html.Node, b *strings.Builder) {
	switch n.Type {
	case html.TextNode:
		b.WriteString(n.Data)
	case html.ElementNode:
		if skipElement(n.Data) {
			return
		}
		switch n.Data {
		case "br":
			b.WriteString("\n")
		case "li":
			b.WriteString("\n- ")
		}
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		textContent(c, b)
	}
	if n.Type == html.ElementNode {
		switch n.Data {
		case "p", "div", "ul", "ol", "table", "blockquote", "pre", "h1", "h2", "h3", "h4", "h5", "h6":
			b.WriteString("\n\n")
		case "tr":
			b.WriteString("\n")
		case "td", "th":
			b.WriteString(" ")
		}
	}
}

// tidy collapses blanks inside lines and keeps at most one empty line
// between paragraphs.
func tidy(s string) string {
	lines := strings.Split(s, "\n")
	out := make([]string, 0, len(lines))
	blank := false
	for _, l := range lines {
		l = strings.Join(strings.Fields(l), " ")
		if l == "" {
			if len(out) > 0 && !blank {
				out = append(out, "")
			}
			blank = true
			continue
		}
		blank = false
		out = append(out, l)
	}
	return strings.TrimSpace(strings.Join(out, "\n"))
}
