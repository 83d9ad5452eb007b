package ui

import (
	"strings"
	"testing"

	"github.com/abelbrown/bookfinder/internal/book"
)

func TestRenderResultsEmpty(t *testing.T) {
	got := RenderResults(nil, 0, 80, 20, false)
	if !strings.Contains(got, "No books found") {
		t.Errorf("empty results should show the empty state, got %q", got)
	}
}

func TestRenderResultsSkeleton(t *testing.T) {
	got := RenderResults(nil, 0, 80, 20, true)
	if strings.Contains(got, "No books found") {
		t.Error("loading with no results should not show the empty state")
	}
	if n := strings.Count(got, "\n") + 1; n != skeletonRows {
		t.Errorf("skeleton rows = %d, want %d", n, skeletonRows)
	}

	got = RenderResults(nil, 0, 80, 3, true)
	if n := strings.Count(got, "\n") + 1; n != 3 {
		t.Errorf("skeleton should fit the height, got %d rows", n)
	}
}

func TestRenderResultsScrollsToCursor(t *testing.T) {
	var books []book.Book
	for _, title := range []string{"Alpha", "Bravo", "Charlie", "Delta", "Echo"} {
		books = append(books, book.Book{ISBN13: title, Title: title})
	}

	got := RenderResults(books, 4, 80, 2, false)
	if strings.Contains(got, "Alpha") || !strings.Contains(got, "Delta") || !strings.Contains(got, "Echo") {
		t.Errorf("window should end at the cursor, got:\n%s", got)
	}
}

func TestRenderBookLine(t *testing.T) {
	b := book.Book{
		ISBN13:          "9780261102217",
		Title:           "The Hobbit",
		Authors:         "J.R.R. Tolkien",
		PublishedYear:   book.Float(1937),
		Moods:           map[string]float64{"adventurous": 0.9, "dark": 0.3},
		SimilarityScore: book.Float(0.5),
	}
	got := renderBookLine(b, false, false, 100)
	for _, want := range []string{"75% Match", "The Hobbit", "J.R.R. Tolkien (1937)", "adventurous"} {
		if !strings.Contains(got, want) {
			t.Errorf("line missing %q: %q", want, got)
		}
	}

	bare := renderBookLine(book.Book{Title: "Untitled"}, true, false, 100)
	if strings.Contains(bare, "Match") {
		t.Errorf("no distance should mean no badge: %q", bare)
	}
	if !strings.Contains(bare, "Unknown") {
		t.Errorf("blank authors should read Unknown: %q", bare)
	}
}

func TestRenderBookLineTruncatesTitle(t *testing.T) {
	b := book.Book{Title: strings.Repeat("long ", 40), Authors: "A"}
	got := renderBookLine(b, false, false, 60)
	if !strings.Contains(got, "...") {
		t.Errorf("long title should be cut: %q", got)
	}
}

func TestCalcScrollOffset(t *testing.T) {
	tests := []struct {
		total, cursor, height, want int
	}{
		{0, 0, 10, 0},
		{5, 2, 10, 0},
		{20, 9, 10, 0},
		{20, 10, 10, 1},
		{20, 19, 10, 10},
		{20, 40, 10, 10},
		{20, -1, 10, 0},
	}
	for _, tt := range tests {
		got := calcScrollOffset(tt.total, tt.cursor, tt.height)
		if got != tt.want {
			t.Errorf("calcScrollOffset(%d, %d, %d) = %d, want %d", tt.total, tt.cursor, tt.height, got, tt.want)
		}
	}
}

func TestTruncateRunes(t *testing.T) {
	tests := []struct {
		s    string
		n    int
		want string
	}{
		{"hello", 10, "hello"},
		{"hello", 5, "hello"},
		{"hello world", 8, "hello..."},
		{"日本語のタイトル", 5, "日本..."},
		{"hello", 2, "he"},
		{"hello", 0, ""},
	}
	for _, tt := range tests {
		if got := truncateRunes(tt.s, tt.n); got != tt.want {
			t.Errorf("truncateRunes(%q, %d) = %q, want %q", tt.s, tt.n, got, tt.want)
		}
	}
}

func TestSectionTitle(t *testing.T) {
	app, _ := newTestApp(t)
	if got := sectionTitle(app.State()); got != "Recommended for You" {
		t.Errorf("sectionTitle = %q", got)
	}
	app = typeText(t, app, "sci fi")
	app = commit(t, app)
	if got := sectionTitle(app.State()); got != `Results for "sci fi"` {
		t.Errorf("sectionTitle = %q", got)
	}
}
