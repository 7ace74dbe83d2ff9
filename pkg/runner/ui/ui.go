// Package ui runs the interactive terminal UI.
package ui

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/sirupsen/logrus"

	"tableflip.dev/tabdo/pkg/app"
	"tableflip.dev/tabdo/pkg/tui"
)

// UI launches the Bubble Tea front end over a Service.
type UI struct {
	Service *app.Service
	// LogFile receives logs while the UI owns the terminal. Empty discards them.
	LogFile string
}

// Do runs the UI until the user quits.
func (u *UI) Do(_ context.Context) error {
	if u.Service == nil {
		return errors.New("ui: no service configured")
	}
	if !isatty.IsTerminal(os.Stdout.Fd()) && !isatty.IsCygwinTerminal(os.Stdout.Fd()) {
		return errors.New("ui: stdout is not a terminal, try `tabdo replay` instead")
	}

	restore, err := redirectLogs(u.LogFile)
	if err != nil {
		return err
	}
	defer restore()

	return tui.Run(u.Service)
}

func redirectLogs(path string) (func(), error) {
	std := logrus.StandardLogger()
	prev := std.Out
	if path == "" {
		std.SetOutput(io.Discard)
		return func() { std.SetOutput(prev) }, nil
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, fmt.Errorf("ui: open log file: %w", err)
	}
	std.SetOutput(f)
	return func() {
		std.SetOutput(prev)
		if err := f.Close(); err != nil {
			fmt.Fprintf(os.Stderr, "ui: close log file: %v\n", err)
		}
	}, nil
}
