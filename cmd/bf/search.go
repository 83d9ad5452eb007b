package main

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/urfave/cli/v2"

	"github.com/abelbrown/bookfinder/internal/book"
	"github.com/abelbrown/bookfinder/internal/mood"
	"github.com/abelbrown/bookfinder/internal/query"
	"github.com/abelbrown/bookfinder/internal/search"
)

func searchCommand() *cli.Command {
	return &cli.Command{
		Name:      "search",
		Usage:     "Run one search and print the normalized results",
		ArgsUsage: "<query>",
		Action:    runSearch,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "mood",
				Aliases: []string{"m"},
				Usage:   "Mood filter (see 'bf moods')",
			},
			&cli.IntFlag{
				Name:  "top-k",
				Usage: "Number of results to request (default from config)",
			},
			&cli.BoolFlag{
				Name:  "json",
				Usage: "Print the results as JSON",
			},
		},
	}
}

func runSearch(c *cli.Context) error {
	m, err := mood.Parse(c.String("mood"))
	if err != nil {
		return cli.Exit(err.Error(), 2)
	}

	q, ok := query.Compose(query.Intent{Text: strings.Join(c.Args().Slice(), " "), Mood: m})
	if !ok {
		return cli.Exit("nothing to search: give a query or --mood", 2)
	}

	cfg, err := loadConfig(c)
	if err != nil {
		return err
	}
	topK := cfg.Search.TopK
	if c.IsSet("top-k") {
		topK = c.Int("top-k")
	}

	start := time.Now()
	resp, err := newClient(cfg).Search(c.Context, search.NewRequest(q, topK))
	if err != nil {
		return fmt.Errorf("search %q: %w", q.Text, err)
	}
	results := book.Normalize(resp.Results)

	w := c.App.Writer
	if c.Bool("json") {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(results)
	}

	fmt.Fprintf(w, "Results for %q", q.Text)
	if !q.Mood.IsNone() {
		fmt.Fprintf(w, " [%s]", strings.ToUpper(string(q.Mood)))
	}
	fmt.Fprintf(w, ": %d books (server %.0fms, total %s)\n",
		len(results), resp.QueryTime*1000, time.Since(start).Round(time.Millisecond))
	if len(results) == 0 {
		fmt.Fprintln(w, "No books found")
		return nil
	}
	for i, b := range results {
		fmt.Fprintln(w, formatBook(i+1, b))
	}
	return nil
}
