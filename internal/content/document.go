package content

import (
	"bytes"
	"errors"
	"fmt"
	"html/template"
	"strings"
)

// Style carries the read-only presentation inputs for a rich document.
// Values are resolved by the caller (accent hex, font choice, scheme) so
// the builder never reads ambient preference state.
type Style struct {
	AccentHex string
	Serif     bool
	Dark      bool
	Width     int
}

// Document is a fully-formed styled document ready for an embedded
// rendering surface.
type Document struct {
	HTML  string
	Width int
}

// ErrEmptyMarkup reports markup with nothing to lay out.
var ErrEmptyMarkup = errors.New("empty markup")

const (
	sansStack  = `-apple-system, 'Helvetica Neue', Arial, sans-serif`
	serifStack = `Georgia, 'Times New Roman', serif`

	darkForeground  = "#D7DADC"
	darkBackground  = "#1A1A1B"
	lightForeground = "#1A1A1B"
	lightBackground = "#FFFFFF"
)

// docTemplate is parsed once at process scope and only read afterwards;
// every surface instance shares it.
var docTemplate = template.Must(template.New("richdoc").Parse(`<!DOCTYPE html>
<html><head><meta charset="utf-8"><style>
body { margin: 0; padding: 0; font-family: {{.FontStack}}; font-size: 16px; line-height: 1.5; color: {{.Foreground}}; background-color: {{.Background}}; }
a { color: {{.Accent}}; }
img, video { max-width: 100%; height: auto; }
code { font-family: Menlo, monospace; font-size: 14px; background-color: {{.InsetBackground}}; padding: 1px 4px; border-radius: 3px; }
pre { background-color: {{.InsetBackground}}; padding: 8px; border-radius: 4px; overflow-x: auto; }
blockquote { margin: 0 0 0 4px; padding-left: 8px; border-left: 3px solid {{.Accent}}; opacity: 0.85; }
table { border-collapse: collapse; }
th, td { border: 1px solid {{.Foreground}}; padding: 3px 6px; }
</style></head><body>{{.Body}}</body></html>`))

type docData struct {
	FontStack       string
	Foreground      string
	Background      string
	InsetBackground string
	Accent          string
	Body            template.HTML
}

// BuildDocument wraps decoded markup in the minimal styled document handed
// to the rendering surface. A nil error guarantees a usable document; any
// failure here is a MarkupParseFailure the caller recovers from by falling
// back to the plain body for that node only.
func BuildDocument(markup string, st Style) (Document, error) {
	if strings.TrimSpace(markup) == "" {
		return Document{}, ErrEmptyMarkup
	}

	data := docData{
		FontStack:       sansStack,
		Foreground:      lightForeground,
		Background:      lightBackground,
		InsetBackground: "#F0F0F0",
		Accent:          st.AccentHex,
		Body:            template.HTML(markup),
	}
	if st.Serif {
		data.FontStack = serifStack
	}
	if st.Dark {
		data.Foreground = darkForeground
		data.Background = darkBackground
		data.InsetBackground = "#2A2A2B"
	}

	var buf bytes.Buffer
	if err := docTemplate.Execute(&buf, data); err != nil {
		return Document{}, fmt.Errorf("building document: %w", err)
	}
	return Document{HTML: buf.String(), Width: st.Width}, nil
}
