package textfeed

import (
	"io"
	"strings"

	"golang.org/x/net/html"
)

// TokensFromHTML extracts the textual content of an HTML fragment and scans
// it into whitespace-delimited tokens. It resembles feeding the fragment's
//
//	document.getElementById("myNode").innerText
//
// through Words, except that markup is never interpreted for visibility:
// every text node contributes its content. Element boundaries always act as
// token separators, so adjacent elements never fuse into a single token.
func TokensFromHTML(input io.Reader) ([]string, error) {
	nodes, err := html.ParseFragment(input, nil)
	if err != nil {
		return nil, err
	}
	var text strings.Builder
	for _, n := range nodes {
		collectText(n, &text)
	}
	return Words(strings.NewReader(text.String()))
}

func collectText(n *html.Node, b *strings.Builder) {
	if n.Type == html.TextNode {
		b.WriteString(n.Data)
		b.WriteByte(' ') // element boundaries delimit tokens
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		collectText(c, b)
	}
}
