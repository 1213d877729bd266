// Package surface defines the embedded rendering boundary for rich
// comment content. The view hands a fully-formed styled document to a
// Surface and gets back a laid-out block with a measured height. The
// surface never navigates on its own; hyperlinks are collected in the
// block for the application to open.
package surface

import (
	"context"

	"github.com/whyisjake/today-tui/internal/content"
)

// Block is the laid-out result of rendering one document.
type Block struct {
	Lines  []string
	Height int
	Links  []string
}

// Surface lays out styled documents.
type Surface interface {
	// Render lays a document out and measures it. Height is settled
	// exactly once per call; the caller decides what to do with late or
	// stale results.
	Render(ctx context.Context, doc content.Document) (Block, error)
}
