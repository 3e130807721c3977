package browser

import (
	"fmt"
	"os/exec"
	"runtime"
)

// Open opens url in the user's default browser. The command is started, not
// waited on; callers treat failures as non-fatal.
func Open(url string) error {
	switch runtime.GOOS {
	case "darwin":
		return exec.Command("open", url).Start()
	case "linux":
		return exec.Command("xdg-open", url).Start()
	case "windows":
		return exec.Command("rundll32", "url.dll,FileProtocolHandler", url).Start()
	default:
		return fmt.Errorf("unsupported OS: %s", runtime.GOOS)
	}
}
