package ui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/abelbrown/bookfinder/internal/debounce"
	"github.com/abelbrown/bookfinder/internal/mood"
	"github.com/abelbrown/bookfinder/internal/otel"
	"github.com/abelbrown/bookfinder/internal/session"
)

// ObsConfig wires the diagnostic channel. Both fields may be nil.
type ObsConfig struct {
	Logger *otel.Logger
	Ring   *otel.RingBuffer
}

// AppConfig holds everything the App needs from main.
type AppConfig struct {
	// Search returns a Cmd that runs the attempt and answers with
	// SearchCompleted. Nil disables searching.
	Search        func(a session.Attempt) tea.Cmd
	TopK          int
	DebounceDelay time.Duration
	Obs           ObsConfig
}

// Key bindings
var keys = struct {
	Quit     key.Binding
	Back     key.Binding
	NextMood key.Binding
	PrevMood key.Binding
	Up       key.Binding
	Down     key.Binding
	Open     key.Binding
	Debug    key.Binding
}{
	Quit:     key.NewBinding(key.WithKeys("ctrl+c")),
	Back:     key.NewBinding(key.WithKeys("esc")),
	NextMood: key.NewBinding(key.WithKeys("tab")),
	PrevMood: key.NewBinding(key.WithKeys("shift+tab")),
	Up:       key.NewBinding(key.WithKeys("up", "ctrl+p")),
	Down:     key.NewBinding(key.WithKeys("down", "ctrl+n")),
	Open:     key.NewBinding(key.WithKeys("enter")),
	Debug:    key.NewBinding(key.WithKeys("ctrl+o")),
}

// App is the root Bubble Tea model.
// IMPORTANT: App does no I/O. Searches run in the Cmds returned by search and
// come back as SearchCompleted; the session controller decides what applies.
type App struct {
	search func(session.Attempt) tea.Cmd
	delay  time.Duration
	logger *otel.Logger
	ring   *otel.RingBuffer

	session *session.Controller
	gate    *debounce.Gate
	boot    session.Attempt

	input   textinput.Model
	spinner spinner.Model

	state        session.State
	cursor       int
	detail       bool
	debugVisible bool
	width        int
	height       int
	ready        bool
}

// NewApp creates an App with default settings.
func NewApp(search func(session.Attempt) tea.Cmd) App {
	return NewAppWithConfig(AppConfig{Search: search})
}

// NewAppWithConfig creates an App and starts the bootstrap search. The
// bootstrap Cmd is returned by Init.
func NewAppWithConfig(cfg AppConfig) App {
	delay := cfg.DebounceDelay
	if delay <= 0 {
		delay = debounce.DefaultDelay
	}

	ti := textinput.New()
	ti.Placeholder = "Describe a plot, a vibe, a character..."
	ti.Prompt = "> "
	ti.CharLimit = 256
	ti.Focus()

	sp := spinner.New()
	sp.Spinner = spinner.Dot

	gate := debounce.NewGate()
	gate.Change(ti.Value())

	a := App{
		search:  cfg.Search,
		delay:   delay,
		logger:  cfg.Obs.Logger,
		ring:    cfg.Obs.Ring,
		session: session.NewController(cfg.TopK, cfg.Obs.Logger),
		gate:    gate,
		input:   ti,
		spinner: sp,
	}
	a.boot = a.session.Bootstrap()
	a.sync()
	return a
}

// Init runs the bootstrap search and starts the cursor and spinner.
func (a App) Init() tea.Cmd {
	return tea.Batch(a.runSearch(a.boot), textinput.Blink, a.spinner.Tick)
}

// Update handles messages and returns the updated model and any commands.
func (a App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if otel.TraceEnabled() {
		a.logger.Emit(otel.Event{
			Level: otel.LevelDebug,
			Kind:  otel.KindMsgReceived,
			Comp:  "ui",
			Msg:   fmt.Sprintf("%T", msg),
		})
	}

	switch msg := msg.(type) {
	case tea.KeyMsg:
		return a.handleKeyMsg(msg)

	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		a.ready = true
		a.input.Width = max(10, msg.Width-8)
		return a, nil

	case SearchCompleted:
		res := a.session.Complete(session.Outcome{
			Epoch:    msg.Epoch,
			Response: msg.Response,
			Err:      msg.Err,
			Dur:      msg.Dur,
		})
		if res == session.Applied {
			a.cursor = 0
			a.detail = false
		}
		a.sync()
		return a, nil

	case debounceExpired:
		text, ok := a.gate.Expire(msg.Ticket)
		if !ok {
			return a, nil
		}
		a.logger.Emit(otel.Event{
			Level: otel.LevelDebug,
			Kind:  otel.KindDebounceCommit,
			Comp:  "ui",
			Query: text,
		})
		return a.afterSubmit(a.session.SubmitText(text))

	case spinner.TickMsg:
		var cmd tea.Cmd
		a.spinner, cmd = a.spinner.Update(msg)
		return a, cmd
	}

	// Cursor blink and anything else the text input understands.
	var cmd tea.Cmd
	a.input, cmd = a.input.Update(msg)
	return a, cmd
}

// handleKeyMsg processes keyboard input. Keys that are not bindings go to
// the search box.
func (a App) handleKeyMsg(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.Quit):
		return a, tea.Quit

	case key.Matches(msg, keys.Debug):
		a.debugVisible = !a.debugVisible
		return a, nil

	case key.Matches(msg, keys.Back):
		switch {
		case a.debugVisible:
			a.debugVisible = false
		case a.detail:
			a.detail = false
		default:
			return a, tea.Quit
		}
		return a, nil

	case key.Matches(msg, keys.NextMood):
		return a.selectMood(mood.Next(a.state.Intent.Mood))

	case key.Matches(msg, keys.PrevMood):
		return a.selectMood(mood.Prev(a.state.Intent.Mood))

	case key.Matches(msg, keys.Up):
		if a.cursor > 0 {
			a.cursor--
		}
		return a, nil

	case key.Matches(msg, keys.Down):
		if a.cursor < len(a.state.Results)-1 {
			a.cursor++
		}
		return a, nil

	case key.Matches(msg, keys.Open):
		if a.detail {
			a.detail = false
		} else if len(a.state.Results) > 0 {
			a.detail = true
		}
		return a, nil
	}

	if a.detail {
		return a, nil
	}

	before := a.input.Value()
	var cmd tea.Cmd
	a.input, cmd = a.input.Update(msg)
	after := a.input.Value()
	if after == before {
		return a, cmd
	}
	return a, tea.Batch(cmd, a.scheduleCommit(a.gate.Change(after)))
}

func (a App) selectMood(m mood.Mood) (tea.Model, tea.Cmd) {
	a.logger.Emit(otel.Event{
		Level: otel.LevelInfo,
		Kind:  otel.KindMoodSelect,
		Comp:  "ui",
		Mood:  string(m),
	})
	return a.afterSubmit(a.session.SubmitMood(m))
}

// afterSubmit refreshes the snapshot and runs the attempt, if there is one.
func (a App) afterSubmit(at session.Attempt, ok bool) (tea.Model, tea.Cmd) {
	a.sync()
	if !ok {
		return a, nil
	}
	return a, a.runSearch(at)
}

func (a App) runSearch(at session.Attempt) tea.Cmd {
	if a.search == nil {
		return nil
	}
	return a.search(at)
}

func (a App) scheduleCommit(t debounce.Ticket) tea.Cmd {
	return tea.Tick(a.delay, func(time.Time) tea.Msg {
		return debounceExpired{Ticket: t}
	})
}

// sync copies the controller state and keeps the cursor in range.
func (a *App) sync() {
	a.state = a.session.State()
	n := len(a.state.Results)
	if a.cursor >= n {
		a.cursor = max(0, n-1)
	}
	if n == 0 {
		a.detail = false
	}
}

// View renders the UI.
func (a App) View() string {
	if !a.ready {
		return "Loading..."
	}

	if a.debugVisible {
		return debugOverlay(a.ring, a.width, a.height-1) + "\n" + debugStatusBar(a.width)
	}

	if a.detail {
		return renderDetail(a.state.Results[a.cursor], a.width, a.height-1) + "\n" + a.statusBar()
	}

	top := a.renderHeader()
	listHeight := a.height - lipgloss.Height(top) - 1
	list := RenderResults(a.state.Results, a.cursor, a.width, listHeight, a.state.Loading)

	return top + "\n" + list + "\n" + a.statusBar()
}

// renderHeader draws the brand, search box, mood selector and the section
// title with its subtitle.
func (a App) renderHeader() string {
	var b strings.Builder

	b.WriteString(Brand.Render("BookFinder"))
	b.WriteString("\n")
	b.WriteString(SearchBox.Width(max(20, a.width-2)).Render(a.input.View()))
	b.WriteString("\n")

	selected := "All Moods"
	if !a.state.Intent.Mood.IsNone() {
		selected = string(a.state.Intent.Mood)
	}
	b.WriteString(MoodLabel.Render("Filter by mood:"))
	b.WriteString(MoodBadge.Render(selected))
	b.WriteString(StatusBarText.Render("  tab/shift+tab"))
	b.WriteString("\n\n")

	b.WriteString(SectionHeader.Render(sectionTitle(a.state)))
	if !a.state.Intent.Mood.IsNone() {
		b.WriteString(" ")
		b.WriteString(MoodBadge.Render(strings.ToUpper(string(a.state.Intent.Mood))))
	}
	b.WriteString("\n")

	subtitle := sectionSubtitle(a.state)
	if a.state.Loading {
		subtitle = a.spinner.View() + " " + subtitle
	}
	b.WriteString(SectionSubtitle.Render(subtitle))
	return b.String()
}

// sectionTitle is "Recommended for You" until text has been committed.
func sectionTitle(s session.State) string {
	if s.LastQuery == "" {
		return "Recommended for You"
	}
	return fmt.Sprintf("Results for %q", s.LastQuery)
}

func sectionSubtitle(s session.State) string {
	if s.Loading {
		return "Curating best matches..."
	}
	return fmt.Sprintf("Found %d books matching your criteria", len(s.Results))
}

// statusBar renders the bottom bar with position and key hints.
func (a App) statusBar() string {
	var position string
	if a.state.Loading {
		position = " Searching... "
	} else if n := len(a.state.Results); n > 0 {
		position = fmt.Sprintf(" %d/%d ", a.cursor+1, n)
	}

	hints := []string{
		StatusBarKey.Render("↑/↓") + StatusBarText.Render(":nav"),
		StatusBarKey.Render("tab") + StatusBarText.Render(":mood"),
		StatusBarKey.Render("enter") + StatusBarText.Render(":details"),
		StatusBarKey.Render("ctrl+o") + StatusBarText.Render(":debug"),
		StatusBarKey.Render("esc") + StatusBarText.Render(":back"),
	}
	keyHints := strings.Join(hints, " ")

	padding := a.width - 2 - lipgloss.Width(position) - lipgloss.Width(keyHints)
	if padding < 0 {
		padding = 0
	}
	return StatusBar.Width(a.width).Render(position + strings.Repeat(" ", padding) + keyHints)
}

// State returns the current session snapshot (for testing).
func (a App) State() session.State {
	return a.state
}

// Cursor returns the current cursor position (for testing).
func (a App) Cursor() int {
	return a.cursor
}
