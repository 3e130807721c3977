package main

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/hirewire/hirewire/internal/browser"
	"github.com/hirewire/hirewire/internal/config"
	"github.com/hirewire/hirewire/internal/notify"
	"github.com/hirewire/hirewire/internal/tui"
	"github.com/hirewire/hirewire/pkg/client"
	"github.com/hirewire/hirewire/pkg/push"
)

// version is set at build time via -ldflags "-X main.version=..."
var version = "dev"

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

// tokenFilePath returns ~/.hirewire/token.
func tokenFilePath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("get home dir: %w", err)
	}
	return filepath.Join(home, ".hirewire", "token"), nil
}

// readToken returns the auth token using precedence: env var > file > empty.
func readToken() string {
	if tok := os.Getenv("HIREWIRE_TOKEN"); tok != "" {
		return tok
	}
	path, err := tokenFilePath()
	if err != nil {
		return ""
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return ""
	}
	return strings.TrimSpace(string(data))
}

func run() error {
	cfg, err := config.Load(config.DefaultPath())
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	if len(os.Args) > 1 {
		switch os.Args[1] {
		case "--version", "version", "-v":
			fmt.Println("hirewire " + version)
			return nil
		case "help", "--help", "-h":
			printHelp()
			return nil
		case "terms":
			return openLegal("terms")
		case "privacy":
			return openLegal("privacy")
		case "login":
			return runLogin(cfg)
		case "logout":
			return runLogout()
		}
	}

	token := readToken()
	if token == "" {
		printWelcome()
		return nil
	}
	c := client.New(cfg.APIURL, token)
	// Only force re-login on actual auth failures (401), not transient errors.
	if _, err := c.GetMe(context.Background()); err != nil {
		if client.IsStatus(err, 401) {
			printWelcome()
			return nil
		}
		// Network/server error — launch TUI anyway, it retries internally.
	}

	return launchTUI(c, cfg)
}

func launchTUI(c *client.Client, cfg *config.Config) error {
	store := notify.NewStore()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	ch := push.New(c.BaseURL(), c.Token())
	ch.Open(ctx)

	app := tui.NewApp(c, store, cfg, ch.Events(), ch.Status())
	p := tea.NewProgram(app, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("tui error: %w", err)
	}
	return nil
}

// runLogin reads a personal access token from stdin, verifies it against the
// API, and stores it at ~/.hirewire/token.
func runLogin(cfg *config.Config) error {
	fmt.Println("Create a token at https://hirewire.dev/settings/tokens")
	fmt.Print("Paste your access token: ")

	reader := bufio.NewReader(os.Stdin)
	line, err := reader.ReadString('\n')
	if err != nil && line == "" {
		return fmt.Errorf("read token: %w", err)
	}
	token := strings.TrimSpace(line)
	if token == "" {
		return fmt.Errorf("no token provided")
	}

	// Verify before saving.
	c := client.New(cfg.APIURL, token)
	me, err := c.GetMe(context.Background())
	if err != nil {
		if client.IsStatus(err, 401) {
			return fmt.Errorf("token rejected by %s", cfg.APIURL)
		}
		return fmt.Errorf("verify token: %w", err)
	}

	tokPath, err := tokenFilePath()
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(tokPath), 0700); err != nil {
		return fmt.Errorf("create ~/.hirewire dir: %w", err)
	}
	if err := os.WriteFile(tokPath, []byte(token), 0600); err != nil {
		return fmt.Errorf("save token: %w", err)
	}

	fmt.Printf("Logged in as %s\n\n", me.DisplayName)
	return launchTUI(c, cfg)
}

func runLogout() error {
	tokPath, err := tokenFilePath()
	if err != nil {
		return err
	}
	if _, err := os.Stat(tokPath); os.IsNotExist(err) {
		fmt.Println("Already logged out.")
		return nil
	}
	if err := os.Remove(tokPath); err != nil {
		return fmt.Errorf("remove token: %w", err)
	}
	fmt.Println("Logged out.")
	return nil
}

func openLegal(page string) error {
	url := "https://hirewire.dev/" + page
	if err := browser.Open(url); err != nil {
		fmt.Println(url)
	}
	return nil
}
