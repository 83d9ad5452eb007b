package ui

import (
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/abelbrown/bookfinder/internal/book"
	"github.com/abelbrown/bookfinder/internal/mood"
)

// detailPanelChrome is the border plus vertical padding of DetailPanel.
const detailPanelChrome = 4

// renderDetail renders the full view of one book.
func renderDetail(b book.Book, width, height int) string {
	inner := width - 6
	if inner < 20 {
		inner = 20
	}

	var lines []string
	if m, ok := mood.Top(b.Moods); ok {
		lines = append(lines, MoodBadge.Render(string(m)))
	}
	lines = append(lines, DetailTitle.Render(truncateRunes(b.Title, inner)))

	authors := b.Authors
	if strings.TrimSpace(authors) == "" {
		authors = "Unknown Author"
	}
	lines = append(lines, "by "+authors)

	year := "N/A"
	if y := b.Year(); y > 0 {
		year = strconv.Itoa(y)
	}
	rating := "N/A"
	if b.AverageRating != nil && *b.AverageRating > 0 {
		rating = strconv.FormatFloat(*b.AverageRating, 'f', -1, 64)
	}
	lines = append(lines,
		DetailLabel.Render("Published: ")+year+"   "+DetailLabel.Render("Rating: ")+rating+" / 5")

	if b.Categories != "" {
		lines = append(lines, DetailLabel.Render("Categories: ")+b.Categories)
	}
	if match := book.FormatMatch(b.SimilarityScore); match != "" {
		lines = append(lines, MatchBadge.Render(match))
	}
	if b.ISBN13 != "" {
		lines = append(lines, DetailLabel.Render("ISBN: ")+b.ISBN13)
	}

	desc := b.Description
	if strings.TrimSpace(desc) == "" {
		desc = "No description available for this book."
	}
	lines = append(lines, "", lipgloss.NewStyle().Width(inner).Render(desc))

	content := strings.Split(strings.Join(lines, "\n"), "\n")
	maxHeight := max(1, height-detailPanelChrome)
	if len(content) > maxHeight {
		content = content[:maxHeight]
	}
	return DetailPanel.Width(inner + 4).Render(strings.Join(content, "\n"))
}
