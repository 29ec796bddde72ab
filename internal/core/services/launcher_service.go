package services

import (
	"context"
	"log/slog"

	"github.com/SscSPs/usdt_desk/internal/core/ports"
	portssvc "github.com/SscSPs/usdt_desk/internal/core/ports/services"
)

// DefaultXEURL is the external converter opened by the launcher.
const DefaultXEURL = "https://www.xe.com/es-es/currencyconverter/"

type launcherService struct {
	BaseService
	opener ports.URLOpener
	url    string
}

// NewLauncherService creates a LauncherSvc. An empty url means DefaultXEURL.
func NewLauncherService(opener ports.URLOpener, url string) portssvc.LauncherSvc {
	if url == "" {
		url = DefaultXEURL
	}
	return &launcherService{opener: opener, url: url}
}

var _ portssvc.LauncherSvc = (*launcherService)(nil)

// Launch asks the host to open the converter site. Host failures are not
// surfaced to the user.
func (s *launcherService) Launch(ctx context.Context) {
	if err := s.opener.Open(ctx, s.url); err != nil {
		s.LogDebug(ctx, "Host could not open URL", slog.String("url", s.url), slog.String("error", err.Error()))
	}
}

func (s *launcherService) URL() string {
	return s.url
}
