package services

import (
	"os/exec"
	"runtime"
)

// OSFileOpener launches the platform's default viewer for a file.
type OSFileOpener struct{}

func (OSFileOpener) OpenPath(path string) error {
	name, args := openCommand(runtime.GOOS, path)
	return exec.Command(name, args...).Start()
}

func openCommand(goos, path string) (string, []string) {
	switch goos {
	case "darwin":
		return "open", []string{path}
	case "windows":
		return "rundll32", []string{"url.dll,FileProtocolHandler", path}
	default:
		return "xdg-open", []string{path}
	}
}
