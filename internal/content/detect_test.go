package content

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		name     string
		markup   string
		expected Strategy
	}{
		{
			name:     "image tag is rich",
			markup:   `<p>look</p><img src="https://i.redd.it/abc.png">`,
			expected: RichBlock,
		},
		{
			name:     "table is rich",
			markup:   `<table><tr><td>a</td></tr></table>`,
			expected: RichBlock,
		},
		{
			name:     "video tag is rich",
			markup:   `<video controls><source src="clip.mp4"></video>`,
			expected: RichBlock,
		},
		{
			name:     "bold and link alone stay plain",
			markup:   `<b>bold</b> and <a href="https://example.com/page">link</a>`,
			expected: PlainText,
		},
		{
			name:     "italics and code stay plain",
			markup:   `<p><i>hm</i> <code>x := 1</code></p>`,
			expected: PlainText,
		},
		{
			name:     "video host link is rich",
			markup:   `<a href="https://v.redd.it/xyz123">clip</a>`,
			expected: RichBlock,
		},
		{
			name:     "gfycat link is rich",
			markup:   `<p><a href="https://gfycat.com/TenseAnyBear">heh</a></p>`,
			expected: RichBlock,
		},
		{
			name:     "gifv link is rich",
			markup:   `<a href="https://i.imgur.com/abc.gifv">gif</a>`,
			expected: RichBlock,
		},
		{
			name:     "plain paragraph",
			markup:   `<p>nothing fancy here</p>`,
			expected: PlainText,
		},
		{
			name:     "empty",
			markup:   "",
			expected: PlainText,
		},
		{
			name:     "bare text without tags",
			markup:   "no markup at all",
			expected: PlainText,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Classify(tt.markup))
		})
	}
}

func TestClassifyAfterDecode(t *testing.T) {
	// body_html arrives double-encoded; classification runs on the
	// decoded form.
	raw := "&amp;lt;img src=&amp;quot;https://i.redd.it/x.jpg&amp;quot;&amp;gt;"
	assert.Equal(t, RichBlock, Classify(DecodeEntities(raw)))
	assert.Equal(t, PlainText, Classify(raw))
}
