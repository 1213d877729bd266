package content

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildDocument(t *testing.T) {
	t.Run("should embed markup without re-escaping", func(t *testing.T) {
		doc, err := BuildDocument(`<p>a &amp; b</p>`, Style{AccentHex: "#FF4500", Width: 72})
		require.NoError(t, err)
		assert.Contains(t, doc.HTML, `<p>a &amp; b</p>`)
		assert.Equal(t, 72, doc.Width)
	})

	t.Run("should style hyperlinks with the accent color", func(t *testing.T) {
		doc, err := BuildDocument(`<p>x</p>`, Style{AccentHex: "#0079D3"})
		require.NoError(t, err)
		assert.Contains(t, doc.HTML, "a { color: #0079D3; }")
	})

	t.Run("should pick the serif stack when asked", func(t *testing.T) {
		doc, err := BuildDocument(`<p>x</p>`, Style{AccentHex: "#FF4500", Serif: true})
		require.NoError(t, err)
		assert.Contains(t, doc.HTML, "Georgia")

		doc, err = BuildDocument(`<p>x</p>`, Style{AccentHex: "#FF4500"})
		require.NoError(t, err)
		assert.Contains(t, doc.HTML, "Helvetica Neue")
	})

	t.Run("should flip foreground and background for dark scheme", func(t *testing.T) {
		dark, err := BuildDocument(`<p>x</p>`, Style{AccentHex: "#FF4500", Dark: true})
		require.NoError(t, err)
		assert.Contains(t, dark.HTML, darkBackground)
		assert.Contains(t, dark.HTML, darkForeground)

		light, err := BuildDocument(`<p>x</p>`, Style{AccentHex: "#FF4500"})
		require.NoError(t, err)
		assert.Contains(t, light.HTML, lightBackground)
		assert.NotContains(t, light.HTML, darkBackground)
	})

	t.Run("should reject empty markup", func(t *testing.T) {
		_, err := BuildDocument("   ", Style{AccentHex: "#FF4500"})
		assert.ErrorIs(t, err, ErrEmptyMarkup)
	})
}
