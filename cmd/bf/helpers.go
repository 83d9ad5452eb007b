package main

import (
	"fmt"
	"strings"

	"github.com/urfave/cli/v2"

	"github.com/abelbrown/bookfinder/internal/book"
	"github.com/abelbrown/bookfinder/internal/config"
	"github.com/abelbrown/bookfinder/internal/mood"
	"github.com/abelbrown/bookfinder/internal/search"
)

// loadConfig reads the client config and applies the global flags.
func loadConfig(c *cli.Context) (*config.Config, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}
	if c.IsSet("api-url") {
		cfg.API.BaseURL = strings.TrimRight(c.String("api-url"), "/")
	}
	if c.IsSet("timeout") {
		cfg.API.Timeout = config.Duration(c.Duration("timeout"))
	}
	return cfg, nil
}

func newClient(cfg *config.Config) *search.Client {
	return search.NewClient(cfg.API.BaseURL, cfg.API.Timeout.Std())
}

// formatBook renders one result line: rank, match badge, title, authors,
// top mood.
func formatBook(rank int, b book.Book) string {
	line := fmt.Sprintf("%3d. %10s  %s by %s", rank, book.FormatMatch(b.SimilarityScore), truncate(b.Title, 60), b.DisplayAuthors())
	if y := b.Year(); y > 0 {
		line += fmt.Sprintf(" (%d)", y)
	}
	if m, ok := mood.Top(b.Moods); ok {
		line += " [" + string(m) + "]"
	}
	return line
}

// truncate shortens a string to max runes, appending "..." if truncated.
func truncate(s string, max int) string {
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	return string(runes[:max-3]) + "..."
}
