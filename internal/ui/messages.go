// Package ui provides the Bubble Tea TUI for BookFinder.
package ui

import (
	"time"

	"github.com/abelbrown/bookfinder/internal/book"
	"github.com/abelbrown/bookfinder/internal/debounce"
)

// SearchCompleted is sent when a search attempt returns, successfully or not.
// Epoch ties it to the attempt that produced it.
type SearchCompleted struct {
	Epoch    uint64
	Response *book.SearchResponse
	Err      error
	Dur      time.Duration
}

// debounceExpired fires when a text change has been idle for the debounce
// delay. Only the latest ticket commits.
type debounceExpired struct {
	Ticket debounce.Ticket
}
