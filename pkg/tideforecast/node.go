package tideforecast

import (
	"strings"

	"golang.org/x/net/html"
)

// The helpers below are the small slice of node querying this package needs:
// find descendants by tag and class token, read attributes, and flatten text.

// findAll collects descendants of n (n excluded) that are elements named tag
// and, when class is non-empty, carry class as one of their class tokens.
// Results are in document order.
func findAll(n *html.Node, tag, class string) []*html.Node {
	var out []*html.Node
	var walk func(*html.Node)
	walk = func(cur *html.Node) {
		for c := cur.FirstChild; c != nil; c = c.NextSibling {
			if c.Type == html.ElementNode && c.Data == tag &&
				(class == "" || hasClass(c, class)) {
				out = append(out, c)
			}
			walk(c)
		}
	}
	walk(n)
	return out
}

// findFirst is findAll limited to the first match, or nil.
func findFirst(n *html.Node, tag, class string) *html.Node {
	var found *html.Node
	var walk func(*html.Node) bool
	walk = func(cur *html.Node) bool {
		for c := cur.FirstChild; c != nil; c = c.NextSibling {
			if c.Type == html.ElementNode && c.Data == tag &&
				(class == "" || hasClass(c, class)) {
				found = c
				return true
			}
			if walk(c) {
				return true
			}
		}
		return false
	}
	walk(n)
	return found
}

// attr returns the value of the named attribute on n.
func attr(n *html.Node, key string) (string, bool) {
	for _, a := range n.Attr {
		if a.Key == key {
			return a.Val, true
		}
	}
	return "", false
}

// hasClass reports whether class appears as a whole token in n's class
// attribute.
func hasClass(n *html.Node, class string) bool {
	v, ok := attr(n, "class")
	if !ok {
		return false
	}
	for _, tok := range strings.Fields(v) {
		if tok == class {
			return true
		}
	}
	return false
}

// collectText flattens every text node under n into one string.
func collectText(n *html.Node) string {
	var b strings.Builder
	var walk func(*html.Node)
	walk = func(cur *html.Node) {
		for c := cur.FirstChild; c != nil; c = c.NextSibling {
			if c.Type == html.TextNode {
				b.WriteString(c.Data)
			}
			walk(c)
		}
	}
	walk(n)
	return b.String()
}
