package threadview

import (
	"context"
	"fmt"
	"math"
	"net/url"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/whyisjake/today-tui/internal/config"
	"github.com/whyisjake/today-tui/internal/content"
	"github.com/whyisjake/today-tui/internal/render"
	"github.com/whyisjake/today-tui/internal/thread"
	"github.com/whyisjake/today-tui/internal/ui/messages"
	"github.com/whyisjake/today-tui/internal/ui/theme"
)

var (
	commentAuthorStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#FF4500")).Bold(true)
	commentMetaStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#666666"))
	commentOPStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("#000")).Background(lipgloss.Color("#FF4500")).Bold(true)
	commentSelStyle    = lipgloss.NewStyle().Background(lipgloss.Color("#333333"))
	commentDelStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("#555555")).Italic(true)
	postHeaderStyle    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#FFFFFF")).Padding(0, 1)
	postMetaStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("#828282")).Padding(0, 1)
	separatorStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("#444444"))
	measuringStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("#555555")).Italic(true)
)

// style resolves the read-only presentation inputs for one rich block.
func (m Model) style(bodyWidth int) content.Style {
	return content.Style{
		AccentHex: theme.AccentHex(m.cfg.Accent),
		Serif:     m.cfg.Font == config.FontSerif,
		Dark:      m.cfg.Scheme == config.SchemeDark,
		Width:     bodyWidth,
	}
}

// measureCmds starts measurement for every visible rich comment that is
// not already in flight or settled. One command per node; siblings
// complete in any order.
func (m *Model) measureCmds() tea.Cmd {
	if m.ledger == nil {
		return nil
	}
	var cmds []tea.Cmd
	for _, vc := range m.visible {
		n := vc.Node
		if n.BodyHTML == "" || m.plainFallback[n.ID] {
			continue
		}
		markup := content.DecodeEntities(n.BodyHTML)
		if content.Classify(markup) != content.RichBlock {
			continue
		}
		if !m.ledger.Begin(n.ID) {
			continue
		}
		cmds = append(cmds, m.measureCmd(n.ID, markup, m.bodyWidth(n.Depth)))
	}
	if len(cmds) == 0 {
		return nil
	}
	return tea.Batch(cmds...)
}

// measureCmd builds the styled document and hands it to the surface off
// the update loop. The completion message carries the generation token;
// the update loop applies or rejects it.
func (m Model) measureCmd(nodeID, markup string, bodyWidth int) tea.Cmd {
	gen := m.ledger.Generation()
	surf := m.surface
	st := m.style(bodyWidth)
	return func() tea.Msg {
		doc, err := content.BuildDocument(markup, st)
		if err != nil {
			return messages.HeightMeasuredMsg{Result: content.HeightResult{
				Generation:   gen,
				NodeID:       nodeID,
				Err:          fmt.Errorf("building rich document: %w", err),
				ParseFailure: true,
			}}
		}
		block, err := surf.Render(context.Background(), doc)
		if err != nil {
			return messages.HeightMeasuredMsg{Result: content.HeightResult{
				Generation: gen,
				NodeID:     nodeID,
				Err:        fmt.Errorf("measuring rich block: %w", err),
			}}
		}
		return messages.HeightMeasuredMsg{
			Result: content.HeightResult{Generation: gen, NodeID: nodeID, Height: block.Height},
			Block:  block,
		}
	}
}

func (m Model) bodyWidth(depth int) int {
	indent := indentFor(depth)
	w := m.width - indent - 8
	if w < 20 {
		w = 20
	}
	return w
}

func indentFor(depth int) int {
	return int(math.Min(float64(depth*2), 30))
}

func (m *Model) rebuildContent() {
	if m.loadErr != nil && m.tree == nil {
		m.offsets = nil
		m.viewport.SetContent(
			"  " + theme.ErrorStyle.Render("Couldn't load comments") + "\n" +
				"  " + theme.MetaStyle.Render(m.loadErr.Error()) + "\n\n" +
				"  " + theme.DimStyle.Render("ctrl+r to retry"))
		return
	}
	if len(m.visible) == 0 {
		m.offsets = nil
		if m.loading {
			m.viewport.SetContent("  Loading comments...")
		} else {
			m.viewport.SetContent("  No comments yet.")
		}
		return
	}

	var sb strings.Builder
	m.offsets = make([]commentOffset, len(m.visible))

	lineCount := 0
	for i, vc := range m.visible {
		startLine := lineCount
		n := vc.Node
		indent := indentFor(n.Depth)
		indentStr := strings.Repeat(" ", indent)

		barColor := theme.DepthColor(n.Depth)
		selected := i == m.selectedIdx
		if selected {
			barColor = theme.AccentColor(m.cfg.Accent)
		}
		bar := lipgloss.NewStyle().Foreground(barColor).Render("│")

		// Header: author + time + score + collapse badge.
		authorStyle := commentAuthorStyle
		if n.Author == "[deleted]" {
			authorStyle = commentDelStyle
		}
		header := authorStyle.Render(n.Author)
		if n.AgeLabel != "" {
			header += " " + commentMetaStyle.Render(n.AgeLabel)
		}
		header += " " + commentMetaStyle.Render(fmt.Sprintf("%d points", n.Score))
		if m.post != nil && n.Author == m.post.Author {
			header += " " + commentOPStyle.Render(" OP ")
		}
		if vc.IsCollapsed {
			header += " " + commentMetaStyle.Render(fmt.Sprintf("[+%d]", vc.HiddenCount))
		}

		headerLine := indentStr + bar + " " + header
		if selected {
			headerLine = commentSelStyle.Render(headerLine)
		}
		sb.WriteString(headerLine + "\n")
		lineCount++

		if !vc.IsCollapsed {
			for _, line := range m.bodyLines(n) {
				bodyLine := indentStr + bar + " " + line
				if selected {
					bodyLine = commentSelStyle.Render(bodyLine)
				}
				sb.WriteString(bodyLine + "\n")
				lineCount++
			}
		}
		sb.WriteString("\n")
		lineCount++

		m.offsets[i] = commentOffset{startLine: startLine, endLine: lineCount - 1}
	}

	m.viewport.SetContent(sb.String())
}

// bodyLines picks the rendering strategy for one comment and produces
// its visible lines. Classification is recomputed here on every render.
func (m *Model) bodyLines(n *thread.Node) []string {
	bodyWidth := m.bodyWidth(n.Depth)

	rich := false
	if n.BodyHTML != "" && !m.plainFallback[n.ID] {
		rich = content.Classify(content.DecodeEntities(n.BodyHTML)) == content.RichBlock
	}

	if !rich {
		raw := n.BodyHTML
		if raw == "" {
			raw = n.Body
		}
		body := render.HTMLToText(raw, bodyWidth)
		if body == "" {
			// Empty bodies render as an empty block, not an error.
			return []string{""}
		}
		return strings.Split(body, "\n")
	}

	if block, ok := m.blocks[n.ID]; ok {
		return block.Lines
	}

	// Unmeasured, in flight, or failed: hold the fallback height so the
	// layout doesn't collapse while measurement settles.
	height := content.MinBlockHeight
	if m.ledger != nil {
		height = m.ledger.Height(n.ID)
	}
	lines := make([]string, height)
	lines[0] = measuringStyle.Render("[rendering rich content...]")
	return lines
}

func (m Model) renderHeader() string {
	if m.post == nil {
		return postHeaderStyle.Render("Loading...")
	}

	var parts []string
	parts = append(parts, postHeaderStyle.Render(m.post.Title))
	parts = append(parts, postMetaStyle.Render(fmt.Sprintf(
		"%d points | by %s | r/%s | %d comments",
		m.post.Score, m.post.Author, m.post.Subreddit, m.post.NumComments,
	)))
	if m.post.URL != "" {
		if u, err := url.Parse(m.post.URL); err == nil && u.Host != "" {
			parts = append(parts, postMetaStyle.Render(u.Host))
		}
	}
	parts = append(parts, separatorStyle.Render(strings.Repeat("─", max(m.width, 1))))
	hint := commentMetaStyle.Render("j/k:move  [:parent  ]:sibling  space:collapse  z:fold all  o:open  O:open link  ctrl+r:refresh  h:back")
	parts = append(parts, hint)
	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}
