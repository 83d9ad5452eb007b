package main

import (
	"fmt"

	"github.com/urfave/cli/v2"

	"github.com/abelbrown/bookfinder/internal/mood"
)

func moodsCommand() *cli.Command {
	return &cli.Command{
		Name:   "moods",
		Usage:  "List the moods a search can filter by",
		Action: runMoods,
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:  "remote",
				Usage: "Ask the backend (GET /api/moods) instead of the built-in list",
			},
		},
	}
}

func runMoods(c *cli.Context) error {
	w := c.App.Writer
	if !c.Bool("remote") {
		for _, m := range mood.All() {
			fmt.Fprintln(w, m)
		}
		return nil
	}

	cfg, err := loadConfig(c)
	if err != nil {
		return err
	}
	moods, err := newClient(cfg).Moods(c.Context)
	if err != nil {
		return err
	}
	for _, m := range moods {
		if _, err := mood.Parse(m); err != nil {
			fmt.Fprintf(w, "%s (unknown to this client)\n", m)
			continue
		}
		fmt.Fprintln(w, m)
	}
	return nil
}
