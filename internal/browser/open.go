// Package browser hands URLs to the operating system's default handler.
package browser

import (
	"fmt"
	"os/exec"
	"runtime"
)

// Opener opens a URL in the user's browser (or whatever the OS has
// registered for the scheme, which is what makes magnet links work).
type Opener interface {
	Open(url string) error
}

// ExecOpener shells out to the platform's open command.
type ExecOpener struct{}

// Open launches the URL without waiting for the handler to exit.
func (ExecOpener) Open(url string) error {
	var cmd *exec.Cmd
	switch runtime.GOOS {
	case "darwin":
		cmd = exec.Command("open", url)
	case "windows":
		cmd = exec.Command("rundll32", "url.dll,FileProtocolHandler", url)
	default:
		cmd = exec.Command("xdg-open", url)
	}
	if err := cmd.Start(); err != nil {
		return fmt.Errorf("failed to open %s: %w", url, err)
	}
	return nil
}

// RecordingOpener captures opened URLs for tests.
type RecordingOpener struct {
	URLs []string
	Err  error
}

// Open records the URL.
func (o *RecordingOpener) Open(url string) error {
	if o.Err != nil {
		return o.Err
	}
	o.URLs = append(o.URLs, url)
	return nil
}
