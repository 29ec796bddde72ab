// Package page binds the desk's UI triggers to their handlers once at startup.
package page

import (
	"context"
	"errors"
	"log/slog"

	"github.com/SscSPs/usdt_desk/internal/apperrors"
	portssvc "github.com/SscSPs/usdt_desk/internal/core/ports/services"
	"github.com/SscSPs/usdt_desk/internal/middleware"
)

// Element IDs the host page is expected to expose.
const (
	LauncherElementID  = "convXE"
	ConverterElementID = "convManual"
)

// Handler runs on every activation of an element.
type Handler func(ctx context.Context)

// Element is a clickable trigger on the host page.
type Element interface {
	OnClick(h Handler)
}

// Host locates elements by ID.
type Host interface {
	ElementByID(id string) (Element, bool)
}

// Binding pairs an element ID with the handler it should run.
type Binding struct {
	ElementID string
	Handler   Handler
}

// DefaultBindings returns the desk's fixed trigger list.
func DefaultBindings(launcher portssvc.LauncherSvc, converter portssvc.ConverterSvc) []Binding {
	return []Binding{
		{ElementID: LauncherElementID, Handler: LauncherHandler(launcher)},
		{ElementID: ConverterElementID, Handler: ConverterHandler(converter)},
	}
}

// LauncherHandler adapts a LauncherSvc to a click handler.
func LauncherHandler(launcher portssvc.LauncherSvc) Handler {
	return func(ctx context.Context) {
		launcher.Launch(ctx)
	}
}

// ConverterHandler adapts a ConverterSvc to a click handler. The converter
// reports every outcome to the user itself; only host failures are logged.
func ConverterHandler(converter portssvc.ConverterSvc) Handler {
	return func(ctx context.Context) {
		err := converter.Run(ctx)
		if err == nil ||
			errors.Is(err, apperrors.ErrCancelled) ||
			errors.Is(err, apperrors.ErrInvalidAmount) ||
			errors.Is(err, apperrors.ErrRateUnavailable) {
			return
		}
		middleware.GetLoggerFromCtx(ctx).Warn("Converter run failed", slog.String("error", err.Error()))
	}
}

// Attach binds every handler whose element exists on host and returns how
// many were bound. Missing elements are skipped silently.
func Attach(host Host, bindings []Binding) int {
	attached := 0
	for _, b := range bindings {
		el, ok := host.ElementByID(b.ElementID)
		if !ok || b.Handler == nil {
			continue
		}
		el.OnClick(b.Handler)
		attached++
	}
	return attached
}
