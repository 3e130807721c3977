package main

import "fmt"

// ANSI color constants for plain-terminal output (no lipgloss — runs outside
// the TUI).
const (
	ansiReset = "\033[0m"
	ansiBold  = "\033[1m"
	ansiGold  = "\033[38;2;212;168;68m"  // #d4a844
	ansiAmber = "\033[38;2;245;158;11m"  // #f59e0b
	ansiSlate = "\033[38;2;136;144;160m" // #8890a0
	ansiDim   = "\033[38;2;80;88;104m"   // #505868
)

// printLogo prints the spaced HIREWIRE wordmark in alternating gold.
func printLogo() {
	letters := "HIREWIRE"
	colors := [2]string{ansiGold, ansiAmber}
	fmt.Print("\n  ")
	for i, ch := range letters {
		fmt.Printf("%s%s%c%s", colors[i%2], ansiBold, ch, ansiReset)
		if i < len(letters)-1 {
			fmt.Print("  ")
		}
	}
	fmt.Println()
}

// printWelcome greets a logged-out user and points them at login.
func printWelcome() {
	printLogo()
	fmt.Println()
	fmt.Printf("  %sYou are not logged in.%s\n\n", ansiSlate, ansiReset)
	fmt.Printf("  %shirewire login%s   %sstore your access token%s\n", ansiBold, ansiReset, ansiDim, ansiReset)
	fmt.Printf("  %shirewire help%s    %sall commands%s\n\n", ansiBold, ansiReset, ansiDim, ansiReset)
}

// printHelp lists every subcommand.
func printHelp() {
	printLogo()
	fmt.Println()
	commands := []struct{ cmd, desc string }{
		{"hirewire", "open the dashboard (interactive TUI)"},
		{"hirewire login", "store your access token"},
		{"hirewire logout", "clear your session"},
		{"hirewire terms", "open the terms of service"},
		{"hirewire privacy", "open the privacy policy"},
		{"hirewire --version", "show version"},
	}
	for _, c := range commands {
		fmt.Printf("  %s%-20s%s %s%s%s\n", ansiBold, c.cmd, ansiReset, ansiDim, c.desc, ansiReset)
	}
	fmt.Println()
	fmt.Printf("  %sconfig: ~/.config/hirewire/config.yaml · token: ~/.hirewire/token%s\n\n", ansiDim, ansiReset)
}
