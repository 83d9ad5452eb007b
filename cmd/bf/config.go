package main

import (
	"encoding/json"
	"fmt"

	"github.com/urfave/cli/v2"

	"github.com/abelbrown/bookfinder/internal/config"
)

func configCommand() *cli.Command {
	return &cli.Command{
		Name:   "config",
		Usage:  "Print the effective configuration (file, .env, environment and flags)",
		Action: runConfig,
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:  "save",
				Usage: "Write the effective configuration to the config file",
			},
		},
	}
}

func runConfig(c *cli.Context) error {
	cfg, err := loadConfig(c)
	if err != nil {
		return err
	}
	w := c.App.Writer

	if c.Bool("save") {
		if err := cfg.Save(); err != nil {
			return fmt.Errorf("save config: %w", err)
		}
		fmt.Fprintf(w, "wrote %s\n", config.ConfigPath())
		return nil
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(cfg)
}
