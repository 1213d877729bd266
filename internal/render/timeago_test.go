package render

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestTimeAgo(t *testing.T) {
	now := time.Now()

	tests := []struct {
		name     string
		unix     int64
		expected string
	}{
		{name: "zero", unix: 0, expected: ""},
		{name: "seconds", unix: now.Add(-30 * time.Second).Unix(), expected: "just now"},
		{name: "minutes", unix: now.Add(-5 * time.Minute).Unix(), expected: "5m ago"},
		{name: "hours", unix: now.Add(-3 * time.Hour).Unix(), expected: "3h ago"},
		{name: "days", unix: now.Add(-48 * time.Hour).Unix(), expected: "2d ago"},
		{name: "months", unix: now.Add(-70 * 24 * time.Hour).Unix(), expected: "2mo ago"},
		{name: "years", unix: now.Add(-800 * 24 * time.Hour).Unix(), expected: "2y ago"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, TimeAgo(tt.unix))
		})
	}
}
