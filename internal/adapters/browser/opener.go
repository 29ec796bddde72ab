// Package browser opens URLs in the user's default browser.
package browser

import (
	"context"
	"errors"
	"os/exec"
	"runtime"
	"strings"

	"github.com/SscSPs/usdt_desk/internal/core/ports"
)

// Opener implements ports.URLOpener by starting the platform URL handler.
// It does not wait for the browser to exit.
type Opener struct {
	goos  string
	start func(cmd *exec.Cmd) error
}

// NewOpener creates an Opener for the running platform.
func NewOpener() *Opener {
	return &Opener{
		goos:  runtime.GOOS,
		start: func(cmd *exec.Cmd) error { return cmd.Start() },
	}
}

var _ ports.URLOpener = (*Opener)(nil)

// Command returns the program and arguments that open url on goos.
func Command(goos, url string) (string, []string) {
	switch goos {
	case "darwin":
		return "open", []string{url}
	case "windows":
		return "rundll32", []string{"url.dll,FileProtocolHandler", url}
	default:
		return "xdg-open", []string{url}
	}
}

func (o *Opener) Open(ctx context.Context, rawURL string) error {
	url := strings.TrimSpace(rawURL)
	if url == "" {
		return errors.New("url is required")
	}
	name, args := Command(o.goos, url)
	// Not CommandContext: the browser must outlive the request that opened it.
	cmd := exec.Command(name, args...)
	if err := ctx.Err(); err != nil {
		return err
	}
	return o.start(cmd)
}
