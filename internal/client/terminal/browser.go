package terminal

import (
	"fmt"
	"os/exec"
	"runtime"
)

// openInBrowser launches the platform's default browser. A test seam so
// handler tests do not actually open tabs.
var openInBrowser = openURL

func openURL(url string) error {
	switch runtime.GOOS {
	case "darwin":
		return exec.Command("open", url).Start()
	case "windows":
		return exec.Command("rundll32", "url.dll,FileProtocolHandler", url).Start()
	case "linux":
		return exec.Command("xdg-open", url).Start()
	default:
		return fmt.Errorf("unsupported platform: %s", runtime.GOOS)
	}
}
