package ui

import (
	"fmt"
	"strings"
	"time"

	"github.com/abelbrown/bookfinder/internal/otel"
)

// debugPanelChrome is the number of terminal lines consumed by DebugPanel's
// border (top + bottom = 2) and vertical padding (top + bottom = 2).
// Must be updated if DebugPanel style changes.
const debugPanelChrome = 4

// debugOverlay renders the debug panel showing session stats and recent events.
// Pure function with no side effects. Returns empty string if ring is nil.
func debugOverlay(ring *otel.RingBuffer, width, height int) string {
	if ring == nil {
		return ""
	}

	stats := ring.Stats()
	recent := ring.Last(20)

	// --- Stats section (keyed lookups, not map iteration) ---
	var lines []string
	lines = append(lines, DebugHeaderStyle.Render("Session Stats"))
	lines = append(lines, fmt.Sprintf("  Searches:   %d started, %d complete, %d errors",
		stats[otel.KindSearchStart], stats[otel.KindSearchComplete], stats[otel.KindSearchError]))
	lines = append(lines, fmt.Sprintf("  Discarded:  %d stale, %d skipped",
		stats[otel.KindSearchStale], stats[otel.KindSearchSkip]))
	lines = append(lines, fmt.Sprintf("  Input:      %d commits, %d mood changes",
		stats[otel.KindDebounceCommit], stats[otel.KindMoodSelect]))
	lines = append(lines, fmt.Sprintf("  Buffer:     %d / %d events", ring.Len(), ring.Cap()))
	lines = append(lines, "")

	// --- Recent events section ---
	lines = append(lines, DebugHeaderStyle.Render("Recent Events"))
	for _, e := range recent {
		line := fmt.Sprintf("  %6s  %-18s", formatAge(time.Since(e.Time)), string(e.Kind))
		if e.Epoch != 0 {
			line += fmt.Sprintf("  #%d", e.Epoch)
		}
		if e.Query != "" {
			line += fmt.Sprintf("  %q", truncateRunes(e.Query, 24))
		}
		if e.Mood != "" {
			line += "  mood:" + e.Mood
		}
		if e.Count != 0 {
			line += fmt.Sprintf("  n=%d", e.Count)
		}
		if e.Msg != "" {
			line += "  " + truncateRunes(e.Msg, 40)
		}
		if e.Err != "" {
			line += "  ERR:" + truncateRunes(e.Err, 30)
		}
		lines = append(lines, line)
	}

	// Truncate to fit terminal height (subtract chrome added by DebugPanel border/padding)
	maxHeight := height - debugPanelChrome
	if maxHeight < 1 {
		maxHeight = 1
	}
	if len(lines) > maxHeight {
		lines = lines[:maxHeight]
	}

	panelWidth := 76
	if panelWidth > width-4 {
		panelWidth = width - 4
	}
	if panelWidth < 20 {
		panelWidth = 20
	}

	content := strings.Join(lines, "\n")
	return DebugPanel.Width(panelWidth).Render(content)
}

// formatAge formats a duration as a compact human string.
// Handles negative durations from clock skew by clamping to "0ms".
func formatAge(d time.Duration) string {
	if d < 0 {
		return "0ms"
	}
	switch {
	case d < time.Second:
		return fmt.Sprintf("%dms", d.Milliseconds())
	case d < time.Minute:
		return fmt.Sprintf("%.1fs", d.Seconds())
	default:
		return fmt.Sprintf("%.0fm", d.Minutes())
	}
}

// debugStatusBar renders the status bar for the debug overlay.
func debugStatusBar(width int) string {
	hint := StatusBarKey.Render("ctrl+o") + StatusBarText.Render(":close")
	return StatusBar.Width(width).Render("  [DEBUG]  " + hint)
}
