package ui

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/charmbracelet/lipgloss"

	"github.com/abelbrown/bookfinder/internal/book"
	"github.com/abelbrown/bookfinder/internal/mood"
)

// skeletonRows is how many placeholder rows show while the first results load.
const skeletonRows = 10

// matchColWidth fits "100% Match".
const matchColWidth = 10

// RenderResults renders the result list, one book per line, scrolled so the
// cursor stays visible. While loading with nothing to show it draws a
// skeleton; with no results it draws the empty state. Results from an older
// search stay visible, dimmed, until the new one lands.
func RenderResults(books []book.Book, cursor, width, height int, loading bool) string {
	if height < 1 {
		height = 1
	}

	if len(books) == 0 {
		if loading {
			return renderSkeleton(width, height)
		}
		return EmptyState.Render("No books found") + "\n" +
			MetaItem.Render("  Try a different mood or keyword.")
	}

	offset := calcScrollOffset(len(books), cursor, height)
	lines := make([]string, 0, min(height, len(books)))
	for i := offset; i < len(books) && len(lines) < height; i++ {
		lines = append(lines, renderBookLine(books[i], i == cursor, loading, width))
	}
	return strings.Join(lines, "\n")
}

// calcScrollOffset returns the first visible index that keeps cursor inside
// a window of availableHeight lines.
func calcScrollOffset(total, cursor, availableHeight int) int {
	if total == 0 || cursor < 0 || availableHeight < 1 {
		return 0
	}
	if cursor >= total {
		cursor = total - 1
	}
	if cursor >= availableHeight {
		return cursor - availableHeight + 1
	}
	return 0
}

// renderBookLine renders a single result: match badge, title, authors and
// year, top mood.
func renderBookLine(b book.Book, selected, dim bool, width int) string {
	badge := MatchBadge.Render(fmt.Sprintf("%*s", matchColWidth, book.FormatMatch(b.SimilarityScore)))

	meta := b.DisplayAuthors()
	if y := b.Year(); y > 0 {
		meta += fmt.Sprintf(" (%d)", y)
	}
	styledMeta := MetaItem.Render(meta)

	moodTag := ""
	if m, ok := mood.Top(b.Moods); ok {
		moodTag = " " + MoodBadge.Render(string(m))
	}

	titleWidth := width - lipgloss.Width(badge) - lipgloss.Width(styledMeta) - lipgloss.Width(moodTag) - 4
	if titleWidth < 20 {
		titleWidth = 20
	}
	title := truncateRunes(b.Title, titleWidth)

	var titleStyle lipgloss.Style
	switch {
	case selected:
		titleStyle = SelectedItem
	case dim:
		titleStyle = DimItem
	default:
		titleStyle = NormalItem
	}

	return badge + " " + titleStyle.Render(title) + " " + styledMeta + moodTag
}

func renderSkeleton(width, height int) string {
	widths := []int{42, 30, 36, 24, 40, 28, 34, 26, 38, 32}
	rows := min(skeletonRows, height)
	lines := make([]string, 0, rows)
	for i := 0; i < rows; i++ {
		w := min(widths[i%len(widths)], max(4, width-matchColWidth-4))
		lines = append(lines, strings.Repeat(" ", matchColWidth)+" "+SkeletonItem.Render(strings.Repeat("░", w)))
	}
	return strings.Join(lines, "\n")
}

// truncateRunes shortens s to at most n runes, marking the cut with "...".
func truncateRunes(s string, n int) string {
	if n <= 0 {
		return ""
	}
	if utf8.RuneCountInString(s) <= n {
		return s
	}
	runes := []rune(s)
	if n <= 3 {
		return string(runes[:n])
	}
	return string(runes[:n-3]) + "..."
}
