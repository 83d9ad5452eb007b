// BookFinder - semantic book search in the terminal.
//
// The TUI talks to a search backend over HTTP (BOOKFINDER_API_URL, default
// http://localhost:8000). Run cmd/bookfinder-stub for a local backend.
package main

import (
	"context"
	"fmt"
	"os"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/abelbrown/bookfinder/internal/book"
	"github.com/abelbrown/bookfinder/internal/config"
	"github.com/abelbrown/bookfinder/internal/logging"
	"github.com/abelbrown/bookfinder/internal/otel"
	"github.com/abelbrown/bookfinder/internal/search"
	"github.com/abelbrown/bookfinder/internal/ui"
)

func main() {
	if err := run(); err != nil {
		fatal("Error: %v", err)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	dataDir := config.Dir()
	if err := os.MkdirAll(dataDir, 0755); err != nil {
		return fmt.Errorf("create data directory: %w", err)
	}

	// Initialize logging
	if err := logging.Init(dataDir); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: failed to initialize logging: %v\n", err)
	}
	defer logging.Close()
	logging.Debug("Config loaded",
		"path", config.ConfigPath(),
		"debounce", cfg.DebounceDelay(),
		"timeout", cfg.API.Timeout.Std(),
		"alt_screen", cfg.UI.AltScreen,
	)

	// Diagnostic event log, mirrored into the debug overlay's ring
	var events *otel.Logger
	if cfg.Diagnostics.EventLog {
		f, err := os.OpenFile(config.EventLogPath(), os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0644)
		if err != nil {
			logging.Warn("Event log disabled", "error", err)
		} else {
			defer f.Close()
			events = otel.NewLogger(f)
		}
	}
	if events == nil {
		events = otel.NewNullLogger()
	}
	defer events.Close()

	ring := otel.NewRingBuffer(cfg.Diagnostics.RingSize)
	events.SetRingBuffer(ring)

	client := search.NewClient(cfg.API.BaseURL, cfg.API.Timeout.Std())
	logging.Info("Search backend", "url", client.BaseURL(), "top_k", cfg.Search.TopK)
	events.Emit(otel.Event{
		Level: otel.LevelInfo,
		Kind:  otel.KindStartup,
		Comp:  "main",
		Msg:   client.BaseURL(),
	})

	app := ui.NewAppWithConfig(ui.AppConfig{
		Search:        ui.SearchWith(loggedSearcher(client, logging.WithPrefix("search"))),
		TopK:          cfg.Search.TopK,
		DebounceDelay: cfg.DebounceDelay(),
		Obs:           ui.ObsConfig{Logger: events, Ring: ring},
	})

	var opts []tea.ProgramOption
	if cfg.UI.AltScreen {
		opts = append(opts, tea.WithAltScreen())
	}
	p := tea.NewProgram(app, opts...)

	logging.Info("Starting UI")
	_, err = p.Run()
	events.Emit(otel.Event{Level: otel.LevelInfo, Kind: otel.KindShutdown, Comp: "main"})
	if err != nil {
		logging.Error("Application error", "error", err)
		events.Error(otel.KindError, "main", err)
		return err
	}
	return nil
}

// loggedSearcher records every backend call in the log file. Failures are
// logged as warnings; the UI itself stays quiet about them.
func loggedSearcher(s search.Searcher, l *log.Logger) search.Searcher {
	return search.SearcherFunc(func(ctx context.Context, req search.Request) (*book.SearchResponse, error) {
		start := time.Now()
		resp, err := s.Search(ctx, req)
		dur := time.Since(start).Round(time.Millisecond)
		if err != nil {
			l.Warn("search failed", "query", req.Query, "dur", dur, "err", err)
			return nil, err
		}
		n := 0
		if resp != nil {
			n = len(resp.Results)
		}
		l.Debug("search", "query", req.Query, "results", n, "dur", dur)
		return resp, nil
	})
}

func fatal(format string, args ...interface{}) {
	fmt.Fprintf(os.Stderr, format+"\n", args...)
	os.Exit(1)
}
