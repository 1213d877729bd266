// Package threadview renders one post's comment tree: depth-indented,
// collapsible, with rich comment bodies measured asynchronously by the
// rendering surface.
package threadview

import (
	"context"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/sirupsen/logrus"

	"github.com/whyisjake/today-tui/internal/cache"
	"github.com/whyisjake/today-tui/internal/config"
	"github.com/whyisjake/today-tui/internal/content"
	"github.com/whyisjake/today-tui/internal/reddit"
	"github.com/whyisjake/today-tui/internal/render"
	"github.com/whyisjake/today-tui/internal/surface"
	"github.com/whyisjake/today-tui/internal/thread"
	"github.com/whyisjake/today-tui/internal/ui/messages"
)

const scrollStep = 3

type commentOffset struct {
	startLine int
	endLine   int
}

// Model is the comment thread view.
type Model struct {
	viewport viewport.Model
	post     *reddit.Post

	tree     *thread.Tree
	collapse thread.CollapseState
	visible  []thread.VisibleComment

	// Rich-content state for the current tree generation.
	ledger        *content.Ledger
	blocks        map[string]surface.Block
	plainFallback map[string]bool

	offsets     []commentOffset
	selectedIdx int

	client  *reddit.Client
	cache   *cache.DB
	surface surface.Surface
	cfg     config.Config
	log     *logrus.Logger

	loading bool
	loadErr error
	width   int
	height  int
}

// New creates a thread view for one post.
func New(post *reddit.Post, cfg config.Config, client *reddit.Client, db *cache.DB, surf surface.Surface, log *logrus.Logger) Model {
	vp := viewport.New(0, 0)
	vp.SetContent("  Loading comments...")

	return Model{
		viewport:      vp,
		post:          post,
		collapse:      thread.NewCollapseState(),
		blocks:        make(map[string]surface.Block),
		plainFallback: make(map[string]bool),
		client:        client,
		cache:         db,
		surface:       surf,
		cfg:           cfg,
		log:           log,
		loading:       true,
	}
}

// Init loads the thread.
func (m Model) Init() tea.Cmd {
	return m.loadCmd(false)
}

func (m Model) loadCmd(force bool) tea.Cmd {
	post := m.post
	client := m.client
	db := m.cache
	ttl := m.cfg.ThreadTTL
	return func() tea.Msg {
		ctx := context.Background()

		if !force {
			if raw, fresh, _ := db.GetThread(post.ID, ttl); fresh && raw != nil {
				if th, err := reddit.DecodeThread(raw); err == nil {
					return loadedMsg(post.ID, th)
				}
			}
		}

		th, err := client.FetchThread(ctx, post.ID)
		if err != nil {
			// Offline fallback: a stale cached thread beats an error.
			if raw, _, _ := db.GetThread(post.ID, ttl); raw != nil {
				if cached, derr := reddit.DecodeThread(raw); derr == nil {
					return loadedMsg(post.ID, cached)
				}
			}
			return messages.ThreadLoadedMsg{PostID: post.ID, Err: err}
		}
		db.PutThread(post.ID, th.Raw)
		return loadedMsg(post.ID, th)
	}
}

func loadedMsg(postID string, th *reddit.Thread) messages.ThreadLoadedMsg {
	return messages.ThreadLoadedMsg{
		PostID:  postID,
		Post:    th.Post,
		Records: toRecords(th.Comments),
	}
}

// toRecords converts fetched comments to tree records, resolving the
// relative-time labels at conversion time.
func toRecords(comments []*reddit.Comment) []thread.Record {
	recs := make([]thread.Record, 0, len(comments))
	for _, c := range comments {
		recs = append(recs, thread.Record{
			ID:       c.ID,
			Author:   c.Author,
			Body:     c.Body,
			BodyHTML: c.BodyHTML,
			Score:    c.Score,
			Age:      render.TimeAgo(int64(c.CreatedUTC)),
			Replies:  toRecords(c.Children()),
		})
	}
	return recs
}

// SetSize updates viewport dimensions. Wrapping depends on width, so a
// width change invalidates every measured block and rich nodes re-enter
// the measurement cycle.
func (m *Model) SetSize(w, h int) tea.Cmd {
	widthChanged := w != m.width
	m.width = w
	m.height = h
	m.viewport.Width = w
	m.resizeViewport()
	if widthChanged && m.ledger != nil {
		m.ledger.Reset()
		m.blocks = make(map[string]surface.Block)
		m.rebuildContent()
		return m.measureCmds()
	}
	m.rebuildContent()
	return nil
}

func (m *Model) resizeViewport() {
	header := m.renderHeader()
	headerLines := lipgloss.Height(header)
	m.viewport.Height = m.height - headerLines
	if m.viewport.Height < 1 {
		m.viewport.Height = 1
	}
}

// Update handles messages.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case messages.ThreadLoadedMsg:
		if msg.PostID != m.post.ID {
			// A load for a view this model no longer shows.
			return m, nil
		}
		m.loading = false
		if msg.Err != nil {
			// The previous tree, if any, stays untouched.
			m.loadErr = msg.Err
			m.rebuildContent()
			if m.tree != nil {
				err := msg.Err
				return m, func() tea.Msg {
					return messages.StatusMsg{Text: "Refresh failed: " + err.Error(), IsError: true}
				}
			}
			return m, nil
		}
		m.loadErr = nil
		if msg.Post != nil {
			m.post = msg.Post
		}
		m.tree = thread.BuildTree(msg.Records)
		m.collapse = thread.NewCollapseState()
		m.ledger = content.NewLedger(m.tree.Generation)
		m.blocks = make(map[string]surface.Block)
		m.plainFallback = make(map[string]bool)
		m.selectedIdx = 0
		m.resizeViewport()
		m.rebuildComments()
		m.rebuildContent()
		return m, m.measureCmds()

	case messages.HeightMeasuredMsg:
		if m.ledger == nil {
			return m, nil
		}
		if !m.ledger.Apply(msg.Result) {
			// Stale or unknown: never touches the current tree.
			return m, nil
		}
		if msg.Result.Err != nil {
			m.log.WithField("comment", msg.Result.NodeID).
				WithError(msg.Result.Err).
				Warn("rich block measurement failed")
			if msg.Result.ParseFailure {
				m.plainFallback[msg.Result.NodeID] = true
			}
		} else {
			m.blocks[msg.Result.NodeID] = msg.Block
		}
		m.rebuildContent()
		return m, nil

	case messages.ThemeChangedMsg:
		m.cfg.Accent = msg.Accent
		m.cfg.Font = msg.Font
		m.cfg.Scheme = msg.Scheme
		if m.ledger != nil {
			// Same tree, new render cycle: everything re-measures.
			m.ledger.Reset()
			m.blocks = make(map[string]surface.Block)
			m.plainFallback = make(map[string]bool)
			m.rebuildContent()
			return m, m.measureCmds()
		}
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)
	return m, cmd
}

func (m Model) handleKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	switch msg.String() {
	case "j", "down":
		if m.selectedIdx >= 0 && m.selectedIdx < len(m.offsets) {
			off := m.offsets[m.selectedIdx]
			viewBottom := m.viewport.YOffset + m.viewport.Height
			if off.endLine >= viewBottom {
				// Comment extends below the viewport, scroll within it.
				m.viewport.SetYOffset(m.viewport.YOffset + scrollStep)
				return m, nil
			}
		}
		if m.selectedIdx < len(m.visible)-1 {
			m.selectedIdx++
			m.rebuildContent()
			m.scrollToCursor()
		}
		return m, nil
	case "k", "up":
		if m.selectedIdx >= 0 && m.selectedIdx < len(m.offsets) {
			off := m.offsets[m.selectedIdx]
			if off.startLine < m.viewport.YOffset {
				newOff := m.viewport.YOffset - scrollStep
				if newOff < off.startLine {
					newOff = off.startLine
				}
				m.viewport.SetYOffset(newOff)
				return m, nil
			}
		}
		if m.selectedIdx > 0 {
			m.selectedIdx--
			m.rebuildContent()
			m.scrollToCursor()
		}
		return m, nil
	case "enter", " ":
		if m.selectedIdx >= 0 && m.selectedIdx < len(m.visible) {
			m.collapse.Toggle(m.visible[m.selectedIdx].Node.ID)
			m.rebuildComments()
			m.rebuildContent()
			// Expanding can reveal rich nodes that were hidden when the
			// last measurement cycle ran.
			return m, m.measureCmds()
		}
		return m, nil
	case "z":
		// If anything with replies is expanded, collapse all; otherwise
		// expand all.
		anyExpanded := false
		for _, vc := range m.visible {
			if vc.Node.HasReplies() && !m.collapse.Collapsed(vc.Node.ID) {
				anyExpanded = true
				break
			}
		}
		if m.tree != nil {
			m.tree.Walk(func(n *thread.Node) {
				if n.HasReplies() && m.collapse.Collapsed(n.ID) != anyExpanded {
					m.collapse.Toggle(n.ID)
				}
			})
		}
		m.rebuildComments()
		m.rebuildContent()
		if anyExpanded {
			m.viewport.GotoTop()
			m.selectedIdx = 0
		}
		return m, m.measureCmds()
	case "[", "p":
		if idx := thread.FindParentIndex(m.visible, m.selectedIdx); idx >= 0 {
			m.selectedIdx = idx
			m.rebuildContent()
			m.scrollToCursor()
		}
		return m, nil
	case "]":
		if idx := thread.FindNextSiblingIndex(m.visible, m.selectedIdx); idx >= 0 {
			m.selectedIdx = idx
			m.rebuildContent()
			m.scrollToCursor()
		}
		return m, nil
	case "g", "home":
		m.selectedIdx = 0
		m.rebuildContent()
		m.viewport.GotoTop()
		return m, nil
	case "G", "end":
		if len(m.visible) > 0 {
			m.selectedIdx = len(m.visible) - 1
			m.rebuildContent()
			m.viewport.GotoBottom()
		}
		return m, nil
	case "ctrl+r":
		m.loading = true
		m.loadErr = nil
		m.cache.InvalidateThread(m.post.ID)
		m.viewport.SetContent("  Refreshing...")
		return m, m.loadCmd(true)
	case "o":
		if m.post.URL != "" {
			url := m.post.URL
			return m, func() tea.Msg { return messages.OpenURLMsg{URL: url} }
		}
		return m, nil
	case "O":
		// Open the first link inside the selected comment's rich block.
		if m.selectedIdx >= 0 && m.selectedIdx < len(m.visible) {
			if block, ok := m.blocks[m.visible[m.selectedIdx].Node.ID]; ok && len(block.Links) > 0 {
				url := block.Links[0]
				return m, func() tea.Msg { return messages.OpenURLMsg{URL: url} }
			}
		}
		return m, nil
	case "backspace", "h":
		return m, func() tea.Msg { return messages.GoBackMsg{} }
	case "ctrl+d", "pgdown":
		m.viewport.HalfViewDown()
		return m, nil
	case "ctrl+u", "pgup":
		m.viewport.HalfViewUp()
		return m, nil
	}

	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)
	return m, cmd
}

// View renders the thread view.
func (m Model) View() string {
	return lipgloss.JoinVertical(lipgloss.Left, m.renderHeader(), m.viewport.View())
}

// Post returns the post this view shows.
func (m Model) Post() *reddit.Post {
	return m.post
}

func (m *Model) rebuildComments() {
	m.visible = thread.Flatten(m.tree, m.collapse)
	if m.selectedIdx >= len(m.visible) {
		m.selectedIdx = len(m.visible) - 1
	}
	if m.selectedIdx < 0 {
		m.selectedIdx = 0
	}
}

func (m *Model) scrollToCursor() {
	if m.selectedIdx < 0 || m.selectedIdx >= len(m.offsets) {
		return
	}
	off := m.offsets[m.selectedIdx]
	if off.startLine < m.viewport.YOffset || off.startLine >= m.viewport.YOffset+m.viewport.Height {
		m.viewport.SetYOffset(off.startLine)
	}
}
