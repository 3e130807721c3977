package tui

import (
	"fmt"
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// renderLogo renders "H I R E W I R E" as a slow wave of amber light.
// Deep bronze (#3a2e14) -> bright gold (#d4a844). No hue drift.
// Letters are spaced apart and rendered without a background box.
func renderLogo(frame int) string {
	const text = "HIREWIRE"
	n := len(text)

	var out string

	t := float64(frame)

	for i := 0; i < n; i++ {
		x := float64(i) / float64(n-1)

		// Flowing phase — one smooth wave advancing through the text
		phase := t*0.1 - x*3.0

		// Gentle speed modulation
		phase += math.Sin(t*0.023) * 2.0

		b := math.Sin(phase)*0.5 + 0.5
		b = math.Pow(b, 1.3)

		// Slow breathing tide
		tide := math.Sin(t*0.035) * 0.12
		b = b*0.75 + tide + 0.18

		if b > 1.0 {
			b = 1.0
		} else if b < 0.05 {
			b = 0.05
		}

		// Continuous RGB interpolation: deep bronze -> bright gold
		// Deep:   (58, 46, 20)   #3a2e14
		// Bright: (212, 168, 68) #d4a844
		r := clampByte(58 + b*(212-58))
		g := clampByte(46 + b*(168-46))
		bl := clampByte(20 + b*(68-20))

		color := fmt.Sprintf("#%02X%02X%02X", r, g, bl)

		s := lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color(color))
		out += s.Render(string(text[i]))

		if i < n-1 {
			out += "  "
		}
	}

	return out
}

func clampByte(v float64) int {
	if v > 255 {
		return 255
	}
	if v < 0 {
		return 0
	}
	return int(v)
}

var (
	// Base styles — hirewire neutral palette
	dimStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#8890a0"))

	selectedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#e4e4ec")).
			Bold(true)

	normalStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#c0c4d0"))

	metaStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#505868"))

	// Help bar
	helpKeyStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#8890a0"))

	helpLabelStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#505868"))

	// Accent / action styles
	accentStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#d4a844"))

	goldStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#d4a844")).
			Bold(true)

	// Unread marker and badge
	unreadDotStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#d4a844"))

	badgeStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#14110a")).
			Background(lipgloss.Color("#d4a844")).
			Bold(true)

	// Connection dot states
	connectedDotStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("#4ade80"))

	reconnectingDotStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("#f59e0b"))

	disconnectedDotStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("#b45555"))

	// Invitation actions
	acceptStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#4ade80")).
			Bold(true)

	declineStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#b45555")).
			Bold(true)

	pendingStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#f59e0b"))

	// Toast styles
	toastInfoStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#8890a0"))

	toastOkStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#4ade80"))

	toastErrStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#e06060"))

	errStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#b45555"))

	sectionHeaderStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("#606878"))
)

// connDot renders the push-channel state as a colored dot with a dim label.
func connDot(state string) string {
	switch state {
	case "connected":
		return connectedDotStyle.Render("●") + " " + dimStyle.Render("live")
	case "reconnecting":
		return reconnectingDotStyle.Render("●") + " " + dimStyle.Render("reconnecting")
	default:
		return disconnectedDotStyle.Render("●") + " " + dimStyle.Render("offline")
	}
}

// helpEntry renders a single "key label" pair for help bars.
func helpEntry(key, label string) string {
	return helpKeyStyle.Render(key) + " " + helpLabelStyle.Render(label)
}

// helpItem is a selectable link in the help overlay.
type helpItem struct {
	label string
	desc  string
	url   string
}

var helpItems = []helpItem{
	{"Terms of Service", "hirewire.dev/terms", "https://hirewire.dev/terms"},
	{"Privacy Policy", "hirewire.dev/privacy", "https://hirewire.dev/privacy"},
	{"FAQ", "hirewire.dev/faq", "https://hirewire.dev/faq"},
	{"Website", "hirewire.dev", "https://hirewire.dev"},
}

// helpView renders the interactive help overlay with a cursor.
func helpView(cursor int) string {
	title := lipgloss.NewStyle().
		Foreground(lipgloss.Color("#d4a844")).
		Bold(true).
		Render("H I R E W I R E")

	cmdStyle := lipgloss.NewStyle().Bold(true)
	descStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	sectionStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("245")).Bold(true)
	cursorStyle := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#d4a844"))
	linkDescStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("245")).Italic(true)

	commands := []struct{ cmd, desc string }{
		{"hirewire", "Open the dashboard (interactive TUI)"},
		{"hirewire login", "Store your access token"},
		{"hirewire logout", "Clear your session"},
		{"hirewire --version", "Show version"},
	}

	var b strings.Builder
	fmt.Fprintf(&b, "\n  %s\n\n", title)

	// Commands section
	fmt.Fprintf(&b, "  %s\n", sectionStyle.Render("Commands"))
	for _, c := range commands {
		fmt.Fprintf(&b, "    %s  %s\n", cmdStyle.Render(fmt.Sprintf("%-20s", c.cmd)), descStyle.Render(c.desc))
	}

	// Links section (selectable)
	fmt.Fprintf(&b, "\n  %s\n", sectionStyle.Render("Links (enter to open)"))
	for i, item := range helpItems {
		label := cmdStyle.Render(fmt.Sprintf("%-20s", item.label))
		prefix := "    "
		if i == cursor {
			label = cursorStyle.Render(fmt.Sprintf("%-20s", item.label))
			prefix = "  > "
		}
		fmt.Fprintf(&b, "%s%s  %s\n", prefix, label, linkDescStyle.Render(item.desc))
	}
	return b.String()
}
