package ui

import (
	"context"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/abelbrown/bookfinder/internal/search"
	"github.com/abelbrown/bookfinder/internal/session"
)

// SearchWith returns the App's search function backed by s. Each attempt
// runs in its own Cmd; the client owns the timeout.
func SearchWith(s search.Searcher) func(session.Attempt) tea.Cmd {
	return func(at session.Attempt) tea.Cmd {
		return func() tea.Msg {
			start := time.Now()
			resp, err := s.Search(context.Background(), at.Request())
			return SearchCompleted{
				Epoch:    at.Epoch,
				Response: resp,
				Err:      err,
				Dur:      time.Since(start),
			}
		}
	}
}
