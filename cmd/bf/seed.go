package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/urfave/cli/v2"

	"github.com/abelbrown/bookfinder/internal/book"
	"github.com/abelbrown/bookfinder/internal/config"
	"github.com/abelbrown/bookfinder/internal/store"
)

func seedCommand() *cli.Command {
	return &cli.Command{
		Name:      "seed",
		Usage:     "Load books into the development backend's catalog",
		ArgsUsage: "[books.json | -]",
		Action:    runSeed,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "db",
				Usage: "Catalog database (default: catalog.db in the data directory)",
			},
			&cli.BoolFlag{
				Name:  "demo",
				Usage: "Include the built-in demo books",
			},
		},
	}
}

func runSeed(c *cli.Context) error {
	var books []book.Book
	if c.Bool("demo") {
		books = append(books, store.DemoBooks()...)
	}
	for _, path := range c.Args().Slice() {
		loaded, err := readBooks(c, path)
		if err != nil {
			return err
		}
		books = append(books, loaded...)
	}
	if len(books) == 0 {
		return cli.Exit("nothing to seed: pass a JSON file of books or --demo", 2)
	}

	dbPath := c.String("db")
	if dbPath == "" {
		dbPath = config.CatalogPath()
		if err := os.MkdirAll(config.Dir(), 0755); err != nil {
			return err
		}
	}
	st, err := store.Open(dbPath)
	if err != nil {
		return err
	}
	defer st.Close()

	n, err := st.Add(books)
	if err != nil {
		return err
	}
	total, err := st.Count()
	if err != nil {
		return err
	}
	fmt.Fprintf(c.App.Writer, "seeded %d books into %s (%d in catalog)\n", n, dbPath, total)
	return nil
}

// readBooks decodes a JSON array of books from path, or stdin for "-".
func readBooks(c *cli.Context, path string) ([]book.Book, error) {
	var r io.Reader = c.App.Reader
	if path != "-" {
		f, err := os.Open(path)
		if err != nil {
			return nil, err
		}
		defer f.Close()
		r = f
	}
	var books []book.Book
	if err := json.NewDecoder(r).Decode(&books); err != nil {
		return nil, fmt.Errorf("read books from %s: %w", path, err)
	}
	return books, nil
}
