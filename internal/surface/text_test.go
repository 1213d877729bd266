package surface

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/whyisjake/today-tui/internal/content"
)

func buildDoc(t *testing.T, markup string) content.Document {
	t.Helper()
	doc, err := content.BuildDocument(markup, content.Style{AccentHex: "#FF4500", Width: 60})
	require.NoError(t, err)
	return doc
}

func TestTextSurfaceMeasuresHeight(t *testing.T) {
	s := NewTextSurface()

	block, err := s.Render(context.Background(), buildDoc(t, "<p>short comment</p>"))
	require.NoError(t, err)
	assert.Equal(t, len(block.Lines), block.Height, "height is the laid-out line count")
	assert.Greater(t, block.Height, 0)
}

func TestTextSurfaceSkipsStylesheet(t *testing.T) {
	s := NewTextSurface()

	block, err := s.Render(context.Background(), buildDoc(t, "<p>visible text</p>"))
	require.NoError(t, err)
	for _, line := range block.Lines {
		assert.NotContains(t, line, "font-family", "document head must not leak into output")
	}
}

func TestTextSurfaceExtractsLinksInsteadOfNavigating(t *testing.T) {
	s := NewTextSurface()

	markup := `<p>see <a href="https://example.com/a">this</a></p>` +
		`<p><img src="https://i.redd.it/pic.png" alt="screenshot"></p>`
	block, err := s.Render(context.Background(), buildDoc(t, markup))
	require.NoError(t, err)

	assert.Contains(t, block.Links, "https://example.com/a")
	assert.Contains(t, block.Links, "https://i.redd.it/pic.png")
}

func TestTextSurfaceStubsMedia(t *testing.T) {
	s := NewTextSurface()

	block, err := s.Render(context.Background(), buildDoc(t, `<p><img src="x.png" alt="diagram"></p>`))
	require.NoError(t, err)

	joined := ""
	for _, l := range block.Lines {
		joined += l + "\n"
	}
	assert.Contains(t, joined, "[diagram]")
}

func TestTextSurfaceRejectsEmptyDocument(t *testing.T) {
	s := NewTextSurface()

	_, err := s.Render(context.Background(), content.Document{HTML: "  ", Width: 60})
	assert.Error(t, err)
}

func TestTextSurfaceHonorsCancelledContext(t *testing.T) {
	s := NewTextSurface()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := s.Render(ctx, buildDoc(t, "<p>x</p>"))
	assert.ErrorIs(t, err, context.Canceled)
}
