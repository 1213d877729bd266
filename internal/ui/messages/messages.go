package messages

import (
	"github.com/whyisjake/today-tui/internal/config"
	"github.com/whyisjake/today-tui/internal/content"
	"github.com/whyisjake/today-tui/internal/reddit"
	"github.com/whyisjake/today-tui/internal/surface"
	"github.com/whyisjake/today-tui/internal/thread"
)

// View transition messages.
type (
	OpenThreadMsg   struct{ Post *reddit.Post }
	GoBackMsg       struct{}
	OpenSettingsMsg struct{}
)

// PostsLoadedMsg is sent when the merged subreddit listing finishes
// loading.
type PostsLoadedMsg struct {
	Posts []*reddit.Post
	Err   error
}

// ThreadLoadedMsg is sent when a post's comment tree finishes loading.
// On failure Records is nil: no partial tree is ever delivered.
type ThreadLoadedMsg struct {
	PostID  string
	Post    *reddit.Post
	Records []thread.Record
	Err     error
}

// HeightMeasuredMsg is sent when the rendering surface settles one rich
// block's layout. Result carries the generation token used to reject
// stale completions.
type HeightMeasuredMsg struct {
	Result content.HeightResult
	Block  surface.Block
}

// ThemeChangedMsg is sent when settings change any styling input. Rich
// blocks re-render and re-measure in response.
type ThemeChangedMsg struct {
	Accent config.Accent
	Font   config.Font
	Scheme config.Scheme
}

// OpenURLMsg asks the app to open a link in the system browser. Links
// inside rendered rich content arrive here instead of navigating the
// surface.
type OpenURLMsg struct{ URL string }

// StatusMsg updates the status bar.
type StatusMsg struct {
	Text    string
	IsError bool
}
