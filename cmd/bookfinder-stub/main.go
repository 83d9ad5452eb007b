// Command bookfinder-stub serves the search API from a local SQLite catalog,
// for running the TUI without the semantic backend.
package main

import (
	"context"
	"errors"
	"flag"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/charmbracelet/log"
	"golang.org/x/sync/errgroup"

	"github.com/abelbrown/bookfinder/internal/config"
	"github.com/abelbrown/bookfinder/internal/logging"
	"github.com/abelbrown/bookfinder/internal/store"
	"github.com/abelbrown/bookfinder/internal/stub"
)

func main() {
	addr := flag.String("addr", ":8000", "listen address")
	dbPath := flag.String("db", "", "catalog database (default: catalog.db in the data directory)")
	seed := flag.Bool("seed", true, "load the demo books when the catalog is empty")
	flag.Parse()

	logger := logging.New(os.Stderr, log.InfoLevel).WithPrefix("stub")

	if *dbPath == "" {
		if err := os.MkdirAll(config.Dir(), 0755); err != nil {
			logger.Fatal("create data dir", "err", err)
		}
		*dbPath = config.CatalogPath()
	}

	st, err := store.Open(*dbPath)
	if err != nil {
		logger.Fatal("open catalog", "path", *dbPath, "err", err)
	}
	defer st.Close()

	n, err := st.Count()
	if err != nil {
		logger.Fatal("count catalog", "err", err)
	}
	if n == 0 && *seed {
		if n, err = st.Add(store.DemoBooks()); err != nil {
			logger.Fatal("seed catalog", "err", err)
		}
		logger.Info("seeded demo catalog", "books", n)
	}

	e := stub.NewServer(stub.NewHandler(st, logger))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		logger.Info("listening", "addr", *addr, "catalog", *dbPath, "books", n)
		if err := e.Start(*addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return e.Shutdown(shutdownCtx)
	})

	if err := g.Wait(); err != nil {
		logger.Error("server stopped", "err", err)
		return
	}
	logger.Info("stopped")
}
