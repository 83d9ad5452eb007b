package ui

import "github.com/charmbracelet/lipgloss"

// Colors used in the application.
var (
	colorPrimary   = lipgloss.Color("62")  // Purple
	colorSecondary = lipgloss.Color("241") // Gray
	colorMuted     = lipgloss.Color("240") // Darker gray
	colorHighlight = lipgloss.Color("212") // Pink
	colorSuccess   = lipgloss.Color("78")  // Green
)

// Brand style for the "BookFinder" title.
var Brand = lipgloss.NewStyle().
	Bold(true).
	Foreground(colorHighlight).
	Padding(0, 1)

// SearchBox style around the text input.
var SearchBox = lipgloss.NewStyle().
	Border(lipgloss.RoundedBorder()).
	BorderForeground(colorPrimary).
	Padding(0, 1)

// SectionHeader style for "Recommended for You" / "Results for ...".
var SectionHeader = lipgloss.NewStyle().
	Bold(true).
	Foreground(lipgloss.Color("255")).
	Padding(0, 1)

// SectionSubtitle style for the loading / count line under the header.
var SectionSubtitle = lipgloss.NewStyle().
	Foreground(colorSecondary).
	Padding(0, 1)

// MoodBadge style for the selected mood and a book's top mood.
var MoodBadge = lipgloss.NewStyle().
	Bold(true).
	Foreground(lipgloss.Color("255")).
	Background(colorPrimary).
	Padding(0, 1)

// MoodLabel style for the "Mood:" selector prefix.
var MoodLabel = lipgloss.NewStyle().
	Foreground(colorSecondary).
	Padding(0, 1)

// MatchBadge style for the "87% Match" badge.
var MatchBadge = lipgloss.NewStyle().
	Foreground(colorSuccess).
	Bold(true)

// SelectedItem style for the currently highlighted book.
var SelectedItem = lipgloss.NewStyle().
	Bold(true).
	Foreground(lipgloss.Color("255")).
	Background(colorPrimary).
	Padding(0, 1)

// NormalItem style for unselected books.
var NormalItem = lipgloss.NewStyle().
	Foreground(lipgloss.Color("255")).
	Padding(0, 1)

// DimItem style for books shown while a newer search is loading.
var DimItem = lipgloss.NewStyle().
	Foreground(colorSecondary).
	Padding(0, 1)

// MetaItem style for author and year text.
var MetaItem = lipgloss.NewStyle().
	Foreground(colorMuted)

// SkeletonItem style for placeholder rows while the first results load.
var SkeletonItem = lipgloss.NewStyle().
	Foreground(lipgloss.Color("236")).
	Padding(0, 1)

// EmptyState style for "No books found".
var EmptyState = lipgloss.NewStyle().
	Bold(true).
	Foreground(colorSecondary).
	Padding(1, 2)

// StatusBar style for the bottom status bar.
var StatusBar = lipgloss.NewStyle().
	Foreground(lipgloss.Color("255")).
	Background(lipgloss.Color("236")).
	Padding(0, 1)

// StatusBarKey style for key hints in status bar.
var StatusBarKey = lipgloss.NewStyle().
	Foreground(colorHighlight).
	Bold(true)

// StatusBarText style for descriptive text in status bar.
var StatusBarText = lipgloss.NewStyle().
	Foreground(colorSecondary)

// HelpStyle for help text.
var HelpStyle = lipgloss.NewStyle().
	Foreground(colorMuted).
	Padding(1, 2)

// DetailPanel frames the detail view.
var DetailPanel = lipgloss.NewStyle().
	Border(lipgloss.RoundedBorder()).
	BorderForeground(colorPrimary).
	Padding(1, 2)

// DetailTitle style for the book title in the detail view.
var DetailTitle = lipgloss.NewStyle().
	Bold(true).
	Foreground(lipgloss.Color("255"))

// DetailLabel style for field labels in the detail view.
var DetailLabel = lipgloss.NewStyle().
	Foreground(colorSecondary)

// DebugPanel frames the debug overlay.
var DebugPanel = lipgloss.NewStyle().
	Border(lipgloss.RoundedBorder()).
	BorderForeground(colorHighlight).
	Padding(1, 2)

// DebugHeaderStyle for section headers inside the debug overlay.
var DebugHeaderStyle = lipgloss.NewStyle().
	Bold(true).
	Foreground(colorHighlight)
