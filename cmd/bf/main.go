// Command bf is the BookFinder debug CLI.
//
// Usage:
//
//	bf search [--mood m] [--top-k n] <query>   One search, printed as a list
//	bf moods [--remote]                        Mood enumeration
//	bf events [-f] [--kind k]                  JSONL event log viewer
//	bf seed [--demo] [books.json]              Load books into the dev catalog
//	bf watch                                   Headless session driven by stdin
//	bf config [--save]                         Effective configuration
package main

import (
	"os"

	"github.com/charmbracelet/log"
	"github.com/urfave/cli/v2"
)

func main() {
	if err := newApp().Run(os.Args); err != nil {
		log.Fatal("bf", "err", err)
	}
}

func newApp() *cli.App {
	return &cli.App{
		Name:  "bf",
		Usage: "BookFinder debug & maintenance CLI",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "api-url",
				Aliases: []string{"u"},
				Usage:   "Search backend base URL (overrides config and BOOKFINDER_API_URL)",
			},
			&cli.DurationFlag{
				Name:  "timeout",
				Usage: "Request timeout (overrides config and BOOKFINDER_TIMEOUT)",
			},
		},
		Commands: []*cli.Command{
			searchCommand(),
			moodsCommand(),
			eventsCommand(),
			seedCommand(),
			watchCommand(),
			configCommand(),
		},
	}
}
