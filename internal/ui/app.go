package ui

import (
	"os/exec"
	"runtime"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/sirupsen/logrus"

	"github.com/whyisjake/today-tui/internal/cache"
	"github.com/whyisjake/today-tui/internal/config"
	"github.com/whyisjake/today-tui/internal/reddit"
	"github.com/whyisjake/today-tui/internal/surface"
	"github.com/whyisjake/today-tui/internal/ui/messages"
	"github.com/whyisjake/today-tui/internal/ui/postlist"
	"github.com/whyisjake/today-tui/internal/ui/settings"
	"github.com/whyisjake/today-tui/internal/ui/statusbar"
	"github.com/whyisjake/today-tui/internal/ui/threadview"
)

// ViewType identifies the active view.
type ViewType int

const (
	ViewPostList ViewType = iota
	ViewThread
	ViewSettings
)

// App is the root Bubble Tea model. Every state transition runs through
// its Update loop; asynchronous work re-enters here as messages.
type App struct {
	activeView    ViewType
	previousViews []ViewType

	postList   postlist.Model
	threadView threadview.Model
	settings   settings.Model
	statusBar  statusbar.Model
	hasThread  bool

	cfg     config.Config
	client  *reddit.Client
	cache   *cache.DB
	surface surface.Surface
	log     *logrus.Logger

	width  int
	height int
}

// NewApp creates the root application model.
func NewApp(cfg config.Config, client *reddit.Client, db *cache.DB, log *logrus.Logger) *App {
	return &App{
		activeView: ViewPostList,
		postList:   postlist.New(cfg, client, db),
		settings:   settings.New(cfg),
		statusBar:  statusbar.New(cfg.Accent),
		cfg:        cfg,
		client:     client,
		cache:      db,
		surface:    surface.NewTextSurface(),
		log:        log,
	}
}

// Init starts the application.
func (a *App) Init() tea.Cmd {
	return a.postList.Init()
}

// Update handles all messages.
func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		contentHeight := msg.Height - 1 // Reserve 1 line for status bar.
		a.postList.SetSize(msg.Width, contentHeight)
		a.statusBar.SetSize(msg.Width)
		a.settings.SetSize(msg.Width, contentHeight)
		if a.hasThread {
			cmds = append(cmds, a.threadView.SetSize(msg.Width, contentHeight))
		}
		return a, tea.Batch(cmds...)

	case tea.KeyMsg:
		if a.activeView == ViewPostList && a.postList.Filtering() {
			break
		}
		switch msg.String() {
		case "ctrl+c":
			return a, tea.Quit
		case "q":
			if a.activeView == ViewPostList {
				return a, tea.Quit
			}
			return a, a.goBack()
		case "esc":
			if len(a.previousViews) > 0 {
				return a, a.goBack()
			}
			if a.activeView != ViewPostList {
				a.activeView = ViewPostList
				return a, nil
			}
		case "?":
			a.statusBar.SetStatus(helpText(), false)
			return a, nil
		case "s":
			return a, func() tea.Msg { return messages.OpenSettingsMsg{} }
		}

	case messages.OpenThreadMsg:
		a.pushView(ViewThread)
		a.threadView = threadview.New(msg.Post, a.cfg, a.client, a.cache, a.surface, a.log)
		a.threadView.SetSize(a.width, a.height-1)
		a.hasThread = true
		return a, a.threadView.Init()

	case messages.OpenSettingsMsg:
		if a.activeView != ViewSettings {
			a.pushView(ViewSettings)
			a.settings = settings.New(a.cfg)
			a.settings.SetSize(a.width, a.height-1)
		}
		return a, nil

	case messages.GoBackMsg:
		return a, a.goBack()

	case messages.ThemeChangedMsg:
		a.cfg.Accent = msg.Accent
		a.cfg.Font = msg.Font
		a.cfg.Scheme = msg.Scheme
		a.statusBar.SetAccent(msg.Accent)
		if a.hasThread {
			var cmd tea.Cmd
			a.threadView, cmd = a.threadView.Update(msg)
			cmds = append(cmds, cmd)
		}
		return a, tea.Batch(cmds...)

	case messages.OpenURLMsg:
		a.statusBar.SetStatus("Opening: "+msg.URL, false)
		go openBrowser(msg.URL)
		return a, nil

	case messages.StatusMsg:
		a.statusBar.SetStatus(msg.Text, msg.IsError)
	}

	// Route to the active view.
	var cmd tea.Cmd
	switch a.activeView {
	case ViewPostList:
		a.postList, cmd = a.postList.Update(msg)
		cmds = append(cmds, cmd)
	case ViewThread:
		a.threadView, cmd = a.threadView.Update(msg)
		cmds = append(cmds, cmd)
	case ViewSettings:
		a.settings, cmd = a.settings.Update(msg)
		cmds = append(cmds, cmd)
	}

	// Thread loads and measurements can complete while another view is
	// on top; they still belong to the thread view.
	if a.activeView != ViewThread && a.hasThread {
		switch msg.(type) {
		case messages.ThreadLoadedMsg, messages.HeightMeasuredMsg:
			a.threadView, cmd = a.threadView.Update(msg)
			cmds = append(cmds, cmd)
		}
	}

	a.statusBar, cmd = a.statusBar.Update(msg)
	cmds = append(cmds, cmd)

	return a, tea.Batch(cmds...)
}

// View renders the application.
func (a *App) View() string {
	var content string
	switch a.activeView {
	case ViewPostList:
		content = a.postList.View()
	case ViewThread:
		content = a.threadView.View()
	case ViewSettings:
		content = a.settings.View()
	}

	return lipgloss.JoinVertical(lipgloss.Left, content, a.statusBar.View())
}

func (a *App) pushView(v ViewType) {
	a.previousViews = append(a.previousViews, a.activeView)
	a.activeView = v
}

func (a *App) goBack() tea.Cmd {
	if len(a.previousViews) > 0 {
		a.activeView = a.previousViews[len(a.previousViews)-1]
		a.previousViews = a.previousViews[:len(a.previousViews)-1]
	}
	return nil
}

func openBrowser(url string) {
	var cmd *exec.Cmd
	switch runtime.GOOS {
	case "darwin":
		cmd = exec.Command("open", url)
	case "linux":
		cmd = exec.Command("xdg-open", url)
	default:
		return
	}
	cmd.Run()
}
