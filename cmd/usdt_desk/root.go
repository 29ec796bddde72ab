package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/SscSPs/usdt_desk/internal/adapters/browser"
	"github.com/SscSPs/usdt_desk/internal/adapters/clipboard"
	"github.com/SscSPs/usdt_desk/internal/adapters/rates"
	"github.com/SscSPs/usdt_desk/internal/adapters/terminal"
	portsrepo "github.com/SscSPs/usdt_desk/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/usdt_desk/internal/core/ports/services"
	"github.com/SscSPs/usdt_desk/internal/core/services"
	"github.com/SscSPs/usdt_desk/internal/middleware"
	"github.com/SscSPs/usdt_desk/internal/platform/config"
	"github.com/spf13/cobra"
)

// Global config
var cfg *config.Config

var rootCmd = &cobra.Command{
	Use:   "usdt_desk",
	Short: "EUR→USDT desk: live conversion, XE shortcut and operations ledger",
	Long: `usdt_desk converts euro amounts to USDT at the live EUR→USD rate,
opens the XE converter, and serves a small operations ledger over HTTP.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		cfg, err = config.LoadConfig()
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}
		if lvl, _ := cmd.Flags().GetString("log-level"); lvl != "" {
			if err := cfg.LogLevel.UnmarshalText([]byte(lvl)); err != nil {
				return fmt.Errorf("invalid --log-level %q: %w", lvl, err)
			}
		}
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().String("log-level", "", "log level override (debug, info, warn, error)")

	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(convertCmd)
	rootCmd.AddCommand(xeCmd)
	rootCmd.AddCommand(menuCmd)
}

// cliLogger logs to stderr so prompts and alerts keep stdout to themselves.
func cliLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: cfg.LogLevel}))
}

// cliContext returns the command context carrying logger.
func cliContext(cmd *cobra.Command, logger *slog.Logger) context.Context {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	return middleware.WithLogger(ctx, logger)
}

// newDeskServices wires the interactive services over console.
func newDeskServices(console *terminal.Console) *portssvc.ServiceContainer {
	hosts := services.Hosts{
		Rates:     rates.NewExchangeRateHostClient(cfg.RateAPIURL, cfg.RateAPITimeout),
		Opener:    browser.NewOpener(),
		Clipboard: clipboard.NewSystem(),
		XEURL:     cfg.XEURL,
	}
	if console != nil {
		hosts.Dialog = console
	}
	return services.NewServiceContainer(hosts, portsrepo.RepositoryProvider{})
}
