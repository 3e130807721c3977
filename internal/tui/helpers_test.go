package tui

import (
	"strings"
	"testing"
	"time"
)

func TestFormatTime(t *testing.T) {
	tests := []struct {
		age  time.Duration
		want string
	}{
		{30 * time.Second, "just now"},
		{5 * time.Minute, "5m ago"},
		{3 * time.Hour, "3h ago"},
		{48 * time.Hour, "2d ago"},
	}
	for _, tt := range tests {
		got := formatTime(time.Now().Add(-tt.age))
		if got != tt.want {
			t.Errorf("formatTime(-%v) = %q, want %q", tt.age, got, tt.want)
		}
	}
}

func TestTruncStr(t *testing.T) {
	if got := truncStr("short", 10); got != "short" {
		t.Errorf("truncStr short = %q", got)
	}
	got := truncStr("a very long notification message", 10)
	if len([]rune(got)) != 10 {
		t.Errorf("truncStr length = %d, want 10", len([]rune(got)))
	}
	if !strings.HasSuffix(got, "…") {
		t.Errorf("truncStr = %q, want ellipsis suffix", got)
	}
	// Rune-aware: multibyte input must not be split mid-rune
	if got := truncStr("héllo wörld exceeds", 8); !strings.HasSuffix(got, "…") {
		t.Errorf("truncStr multibyte = %q", got)
	}
}

func TestTruncateToHeight(t *testing.T) {
	s := "a\nb\nc\nd\n"
	if got := truncateToHeight(s, 2); got != "a\nb\n" {
		t.Errorf("truncateToHeight = %q", got)
	}
	if got := truncateToHeight(s, 0); got != s {
		t.Errorf("maxLines<=0 must return input unchanged, got %q", got)
	}
	if got := truncateToHeight("one line", 5); got != "one line" {
		t.Errorf("short input must pass through, got %q", got)
	}
}

func TestRenderLogoStable(t *testing.T) {
	a := renderLogo(0)
	b := renderLogo(0)
	if a != b {
		t.Error("same frame must render identically")
	}
	// Only color varies between frames, and color is stripped when no
	// profile is detected — so assert the text, not the styling.
	for _, ch := range "HIREWIRE" {
		if !strings.Contains(a, string(ch)) {
			t.Errorf("logo missing letter %q", ch)
		}
	}
}

func TestHelpEntry(t *testing.T) {
	out := helpEntry("j/k", "nav")
	if !strings.Contains(out, "j/k") || !strings.Contains(out, "nav") {
		t.Errorf("helpEntry = %q", out)
	}
}
