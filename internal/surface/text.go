package surface

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	xhtml "golang.org/x/net/html"

	"github.com/whyisjake/today-tui/internal/content"
)

// Shared styles are created once at package scope and only read
// afterwards; every TextSurface instance uses the same set.
var (
	richBorderStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder(), false, false, false, true).
			PaddingLeft(1)
	mediaStubStyle = lipgloss.NewStyle().Italic(true)
	tableCellStyle = lipgloss.NewStyle().PaddingRight(2)
)

// TextSurface renders styled documents as wrapped terminal text. Images
// and video embeds become labeled stubs whose links are reported in the
// block; tables are laid out cell by cell.
type TextSurface struct{}

// NewTextSurface creates a terminal rendering surface.
func NewTextSurface() *TextSurface {
	return &TextSurface{}
}

// Render lays out the document's body at the document width and
// measures the result. The height is simply the line count.
func (s *TextSurface) Render(ctx context.Context, doc content.Document) (Block, error) {
	if err := ctx.Err(); err != nil {
		return Block{}, err
	}
	if strings.TrimSpace(doc.HTML) == "" {
		return Block{}, fmt.Errorf("rendering document: empty document")
	}

	width := doc.Width
	if width < 20 {
		width = 20
	}

	body, links, err := layOut(doc.HTML, width)
	if err != nil {
		return Block{}, fmt.Errorf("rendering document: %w", err)
	}

	rendered := richBorderStyle.Width(width).Render(body)
	lines := strings.Split(rendered, "\n")
	return Block{
		Lines:  lines,
		Height: len(lines),
		Links:  links,
	}, nil
}

// layOut walks the document and produces plain wrapped text plus the
// hyperlinks found along the way. The head (and its stylesheet) is
// skipped entirely.
func layOut(docHTML string, width int) (string, []string, error) {
	tokenizer := xhtml.NewTokenizer(strings.NewReader(docHTML))

	var sb strings.Builder
	var links []string
	var skipDepth int
	var inCell bool

	flushBlock := func() {
		if sb.Len() > 0 && !strings.HasSuffix(sb.String(), "\n") {
			sb.WriteString("\n")
		}
	}

	for {
		tt := tokenizer.Next()
		switch tt {
		case xhtml.ErrorToken:
			text := strings.TrimRight(sb.String(), "\n")
			if strings.TrimSpace(text) == "" {
				return "", nil, fmt.Errorf("document has no renderable content")
			}
			return wrap(text, width-2), links, nil

		case xhtml.StartTagToken, xhtml.SelfClosingTagToken:
			t := tokenizer.Token()
			switch t.Data {
			case "head", "style", "script":
				if tt == xhtml.StartTagToken {
					skipDepth++
				}
			case "p", "div", "blockquote":
				flushBlock()
			case "br":
				sb.WriteString("\n")
			case "img":
				src, alt := attrs(t, "src", "alt")
				if alt == "" {
					alt = "image"
				}
				flushBlock()
				sb.WriteString(mediaStubStyle.Render("[" + alt + "]"))
				sb.WriteString("\n")
				if src != "" {
					links = append(links, src)
				}
			case "video", "iframe", "source":
				src, _ := attrs(t, "src", "")
				flushBlock()
				sb.WriteString(mediaStubStyle.Render("[video]"))
				sb.WriteString("\n")
				if src != "" {
					links = append(links, src)
				}
			case "a":
				href, _ := attrs(t, "href", "")
				if href != "" {
					links = append(links, href)
				}
			case "tr":
				flushBlock()
			case "td", "th":
				inCell = true
			}

		case xhtml.EndTagToken:
			t := tokenizer.Token()
			switch t.Data {
			case "head", "style", "script":
				if skipDepth > 0 {
					skipDepth--
				}
			case "td", "th":
				inCell = false
			case "table":
				flushBlock()
			}

		case xhtml.TextToken:
			if skipDepth > 0 {
				continue
			}
			text := tokenizer.Token().Data
			if strings.TrimSpace(text) == "" {
				continue
			}
			if inCell {
				sb.WriteString(tableCellStyle.Render(strings.TrimSpace(text)))
				continue
			}
			sb.WriteString(text)
		}
	}
}

func attrs(t xhtml.Token, primary, secondary string) (string, string) {
	var p, s string
	for _, attr := range t.Attr {
		if attr.Key == primary {
			p = attr.Val
		}
		if secondary != "" && attr.Key == secondary {
			s = attr.Val
		}
	}
	return p, s
}

// wrap word-wraps text to width, leaving already-broken lines alone
// when they fit.
func wrap(text string, width int) string {
	if width <= 0 {
		return text
	}
	var out strings.Builder
	for _, line := range strings.Split(text, "\n") {
		words := strings.Fields(line)
		if len(words) == 0 {
			out.WriteString("\n")
			continue
		}
		lineLen := 0
		for i, word := range words {
			if i > 0 && lineLen+1+len(word) > width {
				out.WriteString("\n")
				lineLen = 0
			} else if i > 0 {
				out.WriteString(" ")
				lineLen++
			}
			out.WriteString(word)
			lineLen += len(word)
		}
		out.WriteString("\n")
	}
	return strings.TrimRight(out.String(), "\n")
}
