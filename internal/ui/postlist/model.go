package postlist

import (
	"context"
	"strings"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/whyisjake/today-tui/internal/cache"
	"github.com/whyisjake/today-tui/internal/config"
	"github.com/whyisjake/today-tui/internal/reddit"
	"github.com/whyisjake/today-tui/internal/ui/messages"
)

// Model is the merged subreddit post list.
type Model struct {
	list    list.Model
	client  *reddit.Client
	cache   *cache.DB
	cfg     config.Config
	loading bool
	width   int
	height  int
}

// New creates the post list model.
func New(cfg config.Config, client *reddit.Client, db *cache.DB) Model {
	l := list.New(nil, Delegate{}, 0, 0)
	l.Title = listTitle(cfg)
	l.SetShowStatusBar(true)
	l.SetShowHelp(false)
	l.SetFilteringEnabled(true)

	return Model{
		list:   l,
		client: client,
		cache:  db,
		cfg:    cfg,
	}
}

// Init loads the initial listing.
func (m Model) Init() tea.Cmd {
	return m.loadPosts(false)
}

// SetSize updates the list dimensions.
func (m *Model) SetSize(w, h int) {
	m.width = w
	m.height = h
	m.list.SetSize(w, h)
}

// Update handles messages.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case messages.PostsLoadedMsg:
		m.loading = false
		if msg.Err != nil {
			m.list.Title = "Error: " + msg.Err.Error()
			return m, nil
		}
		items := make([]list.Item, 0, len(msg.Posts))
		for i, p := range msg.Posts {
			if p != nil {
				items = append(items, PostItem{Post: p, Index: i})
			}
		}
		m.list.SetItems(items)
		m.list.Title = listTitle(m.cfg)
		return m, nil

	case tea.KeyMsg:
		if m.list.FilterState() == list.Filtering {
			break
		}
		switch msg.String() {
		case "enter":
			if item, ok := m.list.SelectedItem().(PostItem); ok {
				post := item.Post
				return m, func() tea.Msg {
					return messages.OpenThreadMsg{Post: post}
				}
			}
		case "o":
			if item, ok := m.list.SelectedItem().(PostItem); ok && item.Post.URL != "" {
				url := item.Post.URL
				return m, func() tea.Msg {
					return messages.OpenURLMsg{URL: url}
				}
			}
		case "r", "ctrl+r":
			m.loading = true
			m.list.Title = listTitle(m.cfg) + " (refreshing...)"
			return m, m.loadPosts(true)
		}
	}

	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

// View renders the post list.
func (m Model) View() string {
	return m.list.View()
}

// Filtering reports whether the list is capturing text input.
func (m Model) Filtering() bool {
	return m.list.FilterState() == list.Filtering
}

func (m Model) loadPosts(force bool) tea.Cmd {
	client := m.client
	db := m.cache
	cfg := m.cfg
	key := cache.ListingKey(cfg.Subreddits)

	return func() tea.Msg {
		ctx := context.Background()

		if force {
			db.InvalidateListing(key)
		} else {
			if posts, fresh, _ := db.GetListing(key, cfg.ListingTTL); fresh && len(posts) > 0 {
				return messages.PostsLoadedMsg{Posts: posts}
			}
		}

		posts, err := client.FetchPosts(ctx, cfg.Subreddits, cfg.FetchPageSize)
		if err != nil {
			// Stale cache beats an error when the network is down.
			if cached, _, _ := db.GetListing(key, cfg.ListingTTL); len(cached) > 0 {
				return messages.PostsLoadedMsg{Posts: cached}
			}
			return messages.PostsLoadedMsg{Err: err}
		}
		db.PutListing(key, posts)
		return messages.PostsLoadedMsg{Posts: posts}
	}
}

func listTitle(cfg config.Config) string {
	return "today: r/" + strings.Join(cfg.Subreddits, " r/")
}
