package content

import (
	"strings"

	xhtml "golang.org/x/net/html"
)

// Strategy selects how a comment body is rendered.
type Strategy int

const (
	// PlainText renders the decoded raw body as styled text.
	PlainText Strategy = iota
	// RichBlock renders the markup in a measured embedded block.
	RichBlock
)

func (s Strategy) String() string {
	if s == RichBlock {
		return "rich"
	}
	return "plain"
}

// richTags force rich rendering when present. Inline formatting (<b>, <i>,
// <a>, <code>) degrades fine as plain text and is deliberately absent.
var richTags = map[string]bool{
	"img":    true,
	"video":  true,
	"source": true,
	"iframe": true,
	"table":  true,
}

// videoHosts are hosting domains whose links embed video/animated content
// even without a media tag.
var videoHosts = []string{
	"v.redd.it",
	"gfycat.com",
	"redgifs.com",
	"streamable.com",
	"giphy.com",
}

// Classify decides the rendering strategy for a decoded markup fragment.
// It is pure and cheap enough to re-evaluate on every render.
func Classify(markup string) Strategy {
	if markup == "" {
		return PlainText
	}

	tokenizer := xhtml.NewTokenizer(strings.NewReader(markup))
	for {
		tt := tokenizer.Next()
		switch tt {
		case xhtml.ErrorToken:
			// End of input (or unparseable tail): nothing rich found.
			return PlainText

		case xhtml.StartTagToken, xhtml.SelfClosingTagToken:
			t := tokenizer.Token()
			if richTags[t.Data] {
				return RichBlock
			}
			for _, attr := range t.Attr {
				if attr.Key != "href" && attr.Key != "src" {
					continue
				}
				if isVideoURL(attr.Val) {
					return RichBlock
				}
			}
		}
	}
}

func isVideoURL(u string) bool {
	lower := strings.ToLower(u)
	for _, host := range videoHosts {
		if strings.Contains(lower, host) {
			return true
		}
	}
	// Direct media files imgur and friends serve without a video tag.
	trimmed := strings.TrimSuffix(lower, "/")
	return strings.HasSuffix(trimmed, ".gifv") || strings.HasSuffix(trimmed, ".mp4")
}
