package main

import (
	"errors"
	"log/slog"
	"os"

	"github.com/SscSPs/usdt_desk/internal/adapters/terminal"
	"github.com/SscSPs/usdt_desk/internal/apperrors"
	"github.com/SscSPs/usdt_desk/internal/page"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

var convertCmd = &cobra.Command{
	Use:   "convert",
	Short: "Ask for a euro amount and show its USDT value",
	RunE: func(cmd *cobra.Command, args []string) error {
		logger := cliLogger()
		ctx := cliContext(cmd, logger)

		console := terminal.NewConsole(os.Stdin, os.Stdout)
		container := newDeskServices(console)

		err := container.Converter.Run(ctx)
		switch {
		case err == nil, errors.Is(err, apperrors.ErrCancelled):
			return nil
		case errors.Is(err, apperrors.ErrInvalidAmount), errors.Is(err, apperrors.ErrRateUnavailable):
			// Already alerted.
			logger.Debug("Conversion did not complete", slog.String("error", err.Error()))
			return nil
		}
		return err
	},
}

var xeCmd = &cobra.Command{
	Use:   "xe",
	Short: "Open the XE currency converter in the browser",
	RunE: func(cmd *cobra.Command, args []string) error {
		logger := cliLogger()
		ctx := cliContext(cmd, logger)

		container := newDeskServices(nil)
		container.Launcher.Launch(ctx)
		logger.Info("XE converter requested", slog.String("url", container.Launcher.URL()))
		return nil
	},
}

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Show the desk buttons as an interactive menu",
	RunE: func(cmd *cobra.Command, args []string) error {
		logger := cliLogger()
		ctx := cliContext(cmd, logger)

		if !term.IsTerminal(int(os.Stdin.Fd())) {
			logger.Debug("stdin is not a terminal, reading choices line by line")
		}

		console := terminal.NewConsole(os.Stdin, os.Stdout,
			terminal.Button{ID: page.LauncherElementID, Label: "Conversor XE"},
			terminal.Button{ID: page.ConverterElementID, Label: "Conversor manual"},
		)
		container := newDeskServices(console)

		attached := page.Attach(console, page.DefaultBindings(container.Launcher, container.Converter))
		logger.Debug("Page handlers attached", slog.Int("count", attached))

		return console.Serve(ctx)
	},
}
