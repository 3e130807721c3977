package tui

import (
	"context"
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/hirewire/hirewire/internal/browser"
	"github.com/hirewire/hirewire/internal/config"
	"github.com/hirewire/hirewire/internal/notify"
	"github.com/hirewire/hirewire/pkg/client"
	"github.com/hirewire/hirewire/pkg/domain"
	"github.com/hirewire/hirewire/pkg/push"
)

type view int

const (
	viewOverview view = iota
	viewNotifications
)

// logoTickMsg drives the logo wave animation.
type logoTickMsg time.Time

func logoTickCmd() tea.Cmd {
	return tea.Tick(80*time.Millisecond, func(t time.Time) tea.Msg {
		return logoTickMsg(t)
	})
}

// meLoadedMsg carries the result of GetMe.
type meLoadedMsg struct {
	me  *domain.Account
	err error
}

// pushEventMsg carries one notification delivered over the push channel.
type pushEventMsg struct {
	n  domain.Notification
	ok bool
}

// pushStatusMsg carries a push-channel state transition.
type pushStatusMsg struct {
	s  push.StatusEvent
	ok bool
}

// storeChangedMsg signals that the notification store mutated and every
// surface reading it should re-render.
type storeChangedMsg struct{}

// pollTickMsg fires the snapshot-poll fallback used while the push channel
// is down.
type pollTickMsg time.Time

type toastKind int

const (
	toastInfo toastKind = iota
	toastOk
	toastErr
)

// toastMsg requests a transient status line. Surfaces emit it as a command
// result and the root model displays it.
type toastMsg struct {
	kind toastKind
	text string
}

type toastExpiredMsg struct{ seq int }

// App is the root Bubbletea model.
type App struct {
	client *client.Client
	store  *notify.Store
	cfg    *config.Config

	events  <-chan domain.Notification
	status  <-chan push.StatusEvent
	changes chan struct{}

	invites *invitationHandler

	view       view
	overview   overviewModel
	notifs     notifsModel
	dropdown   dropdownModel
	dropOpen   bool
	helpOpen   bool
	helpCursor int

	me        *domain.Account
	connState push.State

	toast     string
	toastKind toastKind
	toastSeq  int

	width  int
	height int
	frame  int // logo animation frame
}

// NewApp creates the TUI application. The push channel's event and status
// streams are passed in already opened; the app only consumes them.
func NewApp(c *client.Client, store *notify.Store, cfg *config.Config, events <-chan domain.Notification, status <-chan push.StatusEvent) App {
	h := newInvitationHandler(c, store)
	return App{
		client:   c,
		store:    store,
		cfg:      cfg,
		events:   events,
		status:   status,
		changes:  store.Subscribe(),
		invites:  h,
		overview: newOverviewModel(store),
		notifs:   newNotifsModel(c, store, h),
		dropdown: newDropdownModel(c, store, cfg, h),
	}
}

func (a App) Init() tea.Cmd {
	return tea.Batch(
		logoTickCmd(),
		a.loadMe(),
		fetchNotifications(a.client, a.store),
		a.waitForPush(),
		a.waitForStatus(),
		a.waitForChange(),
		a.pollTick(),
	)
}

func (a App) loadMe() tea.Cmd {
	c := a.client
	return func() tea.Msg {
		me, err := c.GetMe(context.Background())
		return meLoadedMsg{me: me, err: err}
	}
}

func (a App) waitForPush() tea.Cmd {
	ch := a.events
	return func() tea.Msg {
		n, ok := <-ch
		return pushEventMsg{n: n, ok: ok}
	}
}

func (a App) waitForStatus() tea.Cmd {
	ch := a.status
	return func() tea.Msg {
		s, ok := <-ch
		return pushStatusMsg{s: s, ok: ok}
	}
}

func (a App) waitForChange() tea.Cmd {
	ch := a.changes
	return func() tea.Msg {
		<-ch
		return storeChangedMsg{}
	}
}

func (a App) pollTick() tea.Cmd {
	interval := time.Duration(a.cfg.PollIntervalSec) * time.Second
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return pollTickMsg(t)
	})
}

func (a App) showToast(kind toastKind, text string) (App, tea.Cmd) {
	a.toast = text
	a.toastKind = kind
	a.toastSeq++
	seq := a.toastSeq
	return a, tea.Tick(3*time.Second, func(time.Time) tea.Msg {
		return toastExpiredMsg{seq: seq}
	})
}

func (a App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		// Chrome: header(2) + tabs(1) + toast(1) + help(1) = 5 lines
		bodyMsg := tea.WindowSizeMsg{Width: msg.Width, Height: msg.Height - 5}
		a.overview, _ = a.overview.Update(bodyMsg)
		a.notifs, _ = a.notifs.Update(bodyMsg)
		a.dropdown, _ = a.dropdown.Update(bodyMsg)

	case logoTickMsg:
		a.frame++
		return a, logoTickCmd()

	case meLoadedMsg:
		if msg.err == nil && msg.me != nil {
			a.me = msg.me
		}
		a.overview, _ = a.overview.Update(msg)
		return a, nil

	case pushEventMsg:
		if !msg.ok {
			return a, nil
		}
		fresh := a.store.Ingest(msg.n)
		cmds := []tea.Cmd{a.waitForPush()}
		if fresh && !msg.n.IsRead {
			var cmd tea.Cmd
			a, cmd = a.showToast(toastInfo, truncStr(msg.n.Message, 60))
			cmds = append(cmds, cmd)
		}
		return a, tea.Batch(cmds...)

	case pushStatusMsg:
		if !msg.ok {
			return a, nil
		}
		wasConnected := a.connState == push.StateConnected
		a.connState = msg.s.State
		a.overview, _ = a.overview.Update(msg)
		cmds := []tea.Cmd{a.waitForStatus()}
		// A reconnect may have missed frames; resync from a snapshot.
		if msg.s.Connected() && !wasConnected {
			cmds = append(cmds, fetchNotifications(a.client, a.store))
		}
		return a, tea.Batch(cmds...)

	case storeChangedMsg:
		return a, a.waitForChange()

	case pollTickMsg:
		cmds := []tea.Cmd{a.pollTick()}
		if a.connState != push.StateConnected {
			cmds = append(cmds, fetchNotifications(a.client, a.store))
		}
		return a, tea.Batch(cmds...)

	case fetchDoneMsg:
		a.notifs, _ = a.notifs.Update(msg)
		a.dropdown, _ = a.dropdown.Update(msg)
		return a, nil

	case invitationResolvedMsg:
		a.invites.finish(msg)
		if msg.err != nil {
			if client.IsConflict(msg.err) {
				// Someone else answered or the company withdrew; resync to
				// pick up the terminal state.
				next, cmd := a.showToast(toastErr, "invitation is no longer available")
				return next, tea.Batch(cmd, fetchNotifications(a.client, a.store))
			}
			return a.appendToastCmd(toastErr, msg.err.Error())
		}
		if msg.accepted {
			return a.appendToastCmd(toastOk, "invitation accepted")
		}
		return a.appendToastCmd(toastOk, "invitation declined")

	case toastMsg:
		return a.appendToastCmd(msg.kind, msg.text)

	case toastExpiredMsg:
		if msg.seq == a.toastSeq {
			a.toast = ""
		}
		return a, nil

	case tea.KeyMsg:
		// Help overlay captures all keys when open
		if a.helpOpen {
			return a.updateHelp(msg)
		}

		// Dropdown overlay captures all keys when open
		if a.dropOpen {
			if msg.String() == "b" || msg.String() == "esc" {
				a.dropOpen = false
				return a, nil
			}
			var cmd tea.Cmd
			a.dropdown, cmd = a.dropdown.Update(msg)
			return a, cmd
		}

		switch msg.String() {
		case "h":
			a.helpOpen = true
			a.helpCursor = 0
			return a, nil
		case "q", "ctrl+c":
			return a, tea.Quit
		case "b":
			a.dropOpen = true
			var cmd tea.Cmd
			a.dropdown, cmd = a.dropdown.open()
			return a, cmd
		case "1":
			if a.view != viewOverview {
				a.view = viewOverview
			}
			return a, nil
		case "2":
			if a.view != viewNotifications {
				a.view = viewNotifications
				return a, a.notifs.Init()
			}
			return a, nil
		}
	}

	// Route remaining messages to overlays and the active view
	if a.dropOpen {
		var cmd tea.Cmd
		a.dropdown, cmd = a.dropdown.Update(msg)
		return a, cmd
	}

	var cmd tea.Cmd
	switch a.view {
	case viewOverview:
		a.overview, cmd = a.overview.Update(msg)
	case viewNotifications:
		a.notifs, cmd = a.notifs.Update(msg)
	}
	return a, cmd
}

func (a App) appendToastCmd(kind toastKind, text string) (tea.Model, tea.Cmd) {
	next, cmd := a.showToast(kind, text)
	return next, cmd
}

func (a App) updateHelp(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "h", "esc":
		a.helpOpen = false
	case "q", "ctrl+c":
		return a, tea.Quit
	case "j", "down":
		if a.helpCursor < len(helpItems)-1 {
			a.helpCursor++
		}
	case "k", "up":
		if a.helpCursor > 0 {
			a.helpCursor--
		}
	case "enter":
		item := helpItems[a.helpCursor]
		if item.url != "" {
			browser.Open(item.url) //nolint:errcheck // best-effort browser open
		}
	}
	return a, nil
}

func (a App) View() string {
	// Header: centered logo
	logo := renderLogo(a.frame)

	// Identity and status line below the logo
	parts := []string{}
	if a.me != nil {
		parts = append(parts, dimStyle.Render(a.me.DisplayName))
		if a.me.CompanyName != "" {
			parts = append(parts, metaStyle.Render(a.me.CompanyName))
		}
	}
	parts = append(parts, connDot(connStateLabel(a.connState)))
	if unread := a.store.UnreadCount(); unread > 0 {
		parts = append(parts, badgeStyle.Render(fmt.Sprintf(" %d unread ", unread)))
	}
	statsLine := strings.Join(parts, metaStyle.Render(" · "))

	logoWidth := lipgloss.Width(logo)
	logoPad := (a.width - logoWidth) / 2
	if logoPad < 0 {
		logoPad = 0
	}
	header := strings.Repeat(" ", logoPad) + logo

	statsWidth := lipgloss.Width(statsLine)
	statsPad := (a.width - statsWidth) / 2
	if statsPad < 0 {
		statsPad = 0
	}
	header += "\n" + strings.Repeat(" ", statsPad) + statsLine

	// Tab bar: 1 Overview  2 Notifications
	type tabEntry struct {
		key  string
		name string
		v    view
	}
	tabs := []tabEntry{
		{"1", "Overview", viewOverview},
		{"2", "Notifications", viewNotifications},
	}

	colWidth := a.width / len(tabs)
	var tabBar strings.Builder
	for _, t := range tabs {
		var label string
		if t.v == a.view {
			label = accentStyle.Render(t.key) + " " + selectedStyle.Underline(true).Render(t.name)
		} else {
			label = metaStyle.Render(t.key) + " " + dimStyle.Render(t.name)
		}
		if t.v == viewNotifications {
			if unread := a.store.UnreadCount(); unread > 0 {
				label += " " + unreadDotStyle.Render("●") + dimStyle.Render(fmt.Sprintf("%d", unread))
			}
		}
		labelWidth := lipgloss.Width(label)
		leftPad := (colWidth - labelWidth) / 2
		if leftPad < 0 {
			leftPad = 0
		}
		rightPad := colWidth - labelWidth - leftPad
		if rightPad < 0 {
			rightPad = 0
		}
		tabBar.WriteString(strings.Repeat(" ", leftPad) + label + strings.Repeat(" ", rightPad))
	}
	centeredTabs := tabBar.String()

	// Body
	var body string
	var help string
	switch a.view {
	case viewOverview:
		body = a.overview.View()
		help = " " + helpEntry("1-2", "tabs") + "  " + helpEntry("b", "bell") + "  " + helpEntry("h", "help") + "  " + helpEntry("q", "quit")
	case viewNotifications:
		body = a.notifs.View()
		help = " " + helpEntry("j/k", "nav") + "  " + helpEntry("u", "unread") + "  " + helpEntry("enter", "open") + "  " + helpEntry("m", "read") + "  " + helpEntry("M", "read all") + "  " + helpEntry("a/d", "invite") + "  " + helpEntry("c", "copy") + "  " + helpEntry("r", "refresh") + "  " + helpEntry("q", "quit")
	}

	// Dropdown overlay
	if a.dropOpen {
		body = a.dropdown.View()
		help = " " + helpEntry("j/k", "nav") + "  " + helpEntry("u", "unread") + "  " + helpEntry("enter", "open") + "  " + helpEntry("m", "read") + "  " + helpEntry("a/d", "invite") + "  " + helpEntry("r", "refresh") + "  " + helpEntry("b/esc", "close")
	}

	// Help overlay
	if a.helpOpen {
		body = helpView(a.helpCursor)
		help = " " + helpEntry("j/k", "nav") + "  " + helpEntry("enter", "open") + "  " + helpEntry("esc", "close")
	}

	// Toast line
	toastLine := ""
	if a.toast != "" {
		switch a.toastKind {
		case toastOk:
			toastLine = " " + toastOkStyle.Render(a.toast)
		case toastErr:
			toastLine = " " + toastErrStyle.Render(a.toast)
		default:
			toastLine = " " + toastInfoStyle.Render(a.toast)
		}
	}

	// Chrome budget: header(2) + tabs(1) + toast(1) + help(1) = 5 lines + body
	chrome := 5
	body = strings.TrimRight(truncateToHeight(body, a.height-chrome), "\n")

	return fmt.Sprintf("%s\n%s\n%s\n%s\n%s", header, centeredTabs, body, toastLine, help)
}

// connStateLabel maps a push state onto the label set connDot understands.
func connStateLabel(s push.State) string {
	switch s {
	case push.StateConnected:
		return "connected"
	case push.StateReconnecting:
		return "reconnecting"
	default:
		return "disconnected"
	}
}
