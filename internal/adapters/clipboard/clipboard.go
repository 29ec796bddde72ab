// Package clipboard writes to the system clipboard.
package clipboard

import (
	"context"
	"errors"

	"github.com/atotto/clipboard"

	"github.com/SscSPs/usdt_desk/internal/core/ports"
)

// ErrUnsupported is returned when no clipboard utility is available.
var ErrUnsupported = errors.New("clipboard not supported on this host")

// System implements ports.Clipboard on top of atotto/clipboard.
type System struct {
	write       func(string) error
	unsupported bool
}

// NewSystem creates a clipboard bound to the host's clipboard utilities.
func NewSystem() *System {
	return &System{write: clipboard.WriteAll, unsupported: clipboard.Unsupported}
}

var _ ports.Clipboard = (*System)(nil)

func (s *System) WriteText(ctx context.Context, text string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if s.unsupported {
		return ErrUnsupported
	}
	return s.write(text)
}
