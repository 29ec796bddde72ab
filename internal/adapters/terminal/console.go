// Package terminal hosts the desk page on a text console: buttons become a
// numbered menu and prompt/alert dialogs become line I/O.
package terminal

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
	"sync"

	"github.com/SscSPs/usdt_desk/internal/core/ports"
	"github.com/SscSPs/usdt_desk/internal/page"
)

// Button is a clickable element rendered as a menu entry.
type Button struct {
	ID    string
	Label string
}

type element struct {
	Button
	handlers []page.Handler
}

func (e *element) OnClick(h page.Handler) {
	e.handlers = append(e.handlers, h)
}

// Console implements ports.Dialog and page.Host over a reader/writer pair.
type Console struct {
	mu       sync.Mutex
	in       *bufio.Reader
	out      io.Writer
	elements []*element
}

// NewConsole creates a console exposing the given buttons.
func NewConsole(in io.Reader, out io.Writer, buttons ...Button) *Console {
	c := &Console{
		in:  bufio.NewReader(in),
		out: out,
	}
	for _, b := range buttons {
		c.elements = append(c.elements, &element{Button: b})
	}
	return c
}

var (
	_ ports.Dialog = (*Console)(nil)
	_ page.Host    = (*Console)(nil)
)

// ElementByID implements page.Host.
func (c *Console) ElementByID(id string) (page.Element, bool) {
	for _, el := range c.elements {
		if el.ID == id {
			return el, true
		}
	}
	return nil, false
}

// readLine returns the next line without its terminator. ok is false on EOF
// with nothing read.
func (c *Console) readLine() (string, bool, error) {
	line, err := c.in.ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return "", false, err
	}
	if errors.Is(err, io.EOF) && line == "" {
		return "", false, nil
	}
	return strings.TrimRight(line, "\r\n"), true, nil
}

// Prompt prints message and reads one line. End of input counts as cancel.
func (c *Console) Prompt(ctx context.Context, message string) (string, bool, error) {
	if err := ctx.Err(); err != nil {
		return "", false, err
	}
	c.mu.Lock()
	defer c.mu.Unlock()

	if _, err := fmt.Fprintf(c.out, "%s ", message); err != nil {
		return "", false, err
	}
	return c.readLine()
}

// Alert prints message on its own block.
func (c *Console) Alert(ctx context.Context, message string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	c.mu.Lock()
	defer c.mu.Unlock()

	_, err := fmt.Fprintf(c.out, "%s\n", message)
	return err
}

func (c *Console) attached() []*element {
	var out []*element
	for _, el := range c.elements {
		if len(el.handlers) > 0 {
			out = append(out, el)
		}
	}
	return out
}

func (c *Console) renderMenu(items []*element) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	for i, el := range items {
		if _, err := fmt.Fprintf(c.out, "%d) %s [%s]\n", i+1, el.Label, el.ID); err != nil {
			return err
		}
	}
	_, err := fmt.Fprint(c.out, "q) Salir\n> ")
	return err
}

func (c *Console) nextChoice() (string, bool, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	line, ok, err := c.readLine()
	return strings.TrimSpace(line), ok, err
}

// Serve renders the menu and clicks the chosen button until the input ends,
// the user quits or ctx is done. Handlers run one at a time.
func (c *Console) Serve(ctx context.Context) error {
	items := c.attached()
	if len(items) == 0 {
		return errors.New("no buttons have handlers attached")
	}
	for {
		if err := ctx.Err(); err != nil {
			return nil
		}
		if err := c.renderMenu(items); err != nil {
			return err
		}
		choice, ok, err := c.nextChoice()
		if err != nil {
			return err
		}
		if !ok || strings.EqualFold(choice, "q") {
			return nil
		}
		el := pick(items, choice)
		if el == nil {
			if err := c.Alert(ctx, "Opción no válida"); err != nil {
				return err
			}
			continue
		}
		for _, h := range el.handlers {
			h(ctx)
		}
	}
}

// pick resolves a menu choice by 1-based index or element ID.
func pick(items []*element, choice string) *element {
	if n, err := strconv.Atoi(choice); err == nil {
		if n >= 1 && n <= len(items) {
			return items[n-1]
		}
		return nil
	}
	for _, el := range items {
		if el.ID == choice {
			return el
		}
	}
	return nil
}
