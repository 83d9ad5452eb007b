package main

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/urfave/cli/v2"

	"github.com/abelbrown/bookfinder/internal/mood"
	"github.com/abelbrown/bookfinder/internal/session"
)

const moodPrefix = ":mood"

func watchCommand() *cli.Command {
	return &cli.Command{
		Name:  "watch",
		Usage: "Drive a headless search session from stdin",
		Description: `Each input line replaces the search text, as if typed into the search box,
and goes through the same debounce as the TUI. A line ":mood <name>" selects a
mood (":mood" alone clears it). Every state change is printed. At end of input
any pending text is committed and the last search is waited for.`,
		Action: runWatch,
		Flags: []cli.Flag{
			&cli.DurationFlag{
				Name:  "debounce",
				Usage: "Debounce window (default from config)",
			},
			&cli.IntFlag{
				Name:  "top-k",
				Usage: "Number of results to request (default from config)",
			},
			&cli.BoolFlag{
				Name:  "no-bootstrap",
				Usage: "Skip the initial recommendations search",
			},
		},
	}
}

func runWatch(c *cli.Context) error {
	cfg, err := loadConfig(c)
	if err != nil {
		return err
	}
	delay := cfg.DebounceDelay()
	if c.IsSet("debounce") {
		delay = c.Duration("debounce")
	}
	topK := cfg.Search.TopK
	if c.IsSet("top-k") {
		topK = c.Int("top-k")
	}

	w := c.App.Writer
	r := session.NewRunner(newClient(cfg), session.Options{
		TopK:     topK,
		Delay:    delay,
		OnChange: func(st session.State) { printState(w, st) },
	})
	defer r.Close()

	if !c.Bool("no-bootstrap") {
		r.Start()
	}

	sc := bufio.NewScanner(c.App.Reader)
	for sc.Scan() {
		line := sc.Text()
		if rest, ok := strings.CutPrefix(line, moodPrefix); ok {
			m, err := mood.Parse(rest)
			if err != nil {
				fmt.Fprintln(c.App.ErrWriter, err)
				continue
			}
			r.SelectMood(m)
			continue
		}
		r.TypeText(line)
	}
	if err := sc.Err(); err != nil {
		return err
	}

	r.Flush()
	r.Settle()
	return nil
}

// printState writes one state change: the header, then results once the
// search has landed.
func printState(w io.Writer, st session.State) {
	title := "Recommended for You"
	if st.LastQuery != "" {
		title = fmt.Sprintf("Results for %q", st.LastQuery)
	}
	if !st.Intent.Mood.IsNone() {
		title += " [" + strings.ToUpper(string(st.Intent.Mood)) + "]"
	}

	if st.Loading {
		fmt.Fprintf(w, "#%d %s: Curating best matches...\n", st.Epoch, title)
		return
	}
	fmt.Fprintf(w, "#%d %s: Found %d books matching your criteria\n", st.Epoch, title, len(st.Results))
	for i, b := range st.Results {
		if i == 5 {
			fmt.Fprintf(w, "     ... %d more\n", len(st.Results)-5)
			break
		}
		fmt.Fprintln(w, formatBook(i+1, b))
	}
}
