package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/mattn/go-isatty"

	"github.com/alexanderramin/duesoon/internal/canvas"
	"github.com/alexanderramin/duesoon/internal/cli"
	"github.com/alexanderramin/duesoon/internal/config"
	"github.com/alexanderramin/duesoon/internal/fetch"
	"github.com/alexanderramin/duesoon/internal/gradescope"
	"github.com/alexanderramin/duesoon/internal/progress"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfgPath, err := config.Path()
	if err != nil {
		return err
	}
	cfg, err := config.Load(cfgPath)
	if err != nil {
		return err
	}

	policy := fetch.DefaultPolicy()

	canvasClient, err := fetch.NewClient(cfg.CanvasURL, fetch.Credentials{Bearer: cfg.Token}, policy)
	if err != nil {
		return fmt.Errorf("configuring canvas client: %w", err)
	}

	// The progress line only makes sense on a terminal.
	var progressOut io.Writer = io.Discard
	if isatty.IsTerminal(os.Stderr.Fd()) || isatty.IsCygwinTerminal(os.Stderr.Fd()) {
		progressOut = os.Stderr
	}
	tracker := progress.New(progressOut)

	app := &cli.App{
		Config:     cfg,
		ConfigPath: cfgPath,
		Canvas:     canvas.NewSource(canvasClient, tracker),
		Tracker:    tracker,
		Out:        os.Stdout,
		Now:        time.Now,
	}

	if cfg.GradescopeCookie != "" {
		gradescopeClient, err := fetch.NewClient(gradescope.BaseURL, fetch.Credentials{Cookie: cfg.GradescopeCookie}, policy)
		if err != nil {
			return fmt.Errorf("configuring gradescope client: %w", err)
		}
		app.Gradescope = gradescope.NewSource(gradescopeClient, tracker)
	}

	rootCmd := cli.NewRootCmd(app)
	if err := rootCmd.Execute(); err != nil {
		var statusErr *fetch.StatusError
		if errors.As(err, &statusErr) && statusErr.Hint() != "" {
			return fmt.Errorf("%w (%s)", err, statusErr.Hint())
		}
		return err
	}
	return nil
}
