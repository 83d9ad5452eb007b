package main

import (
	"bufio"
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/urfave/cli/v2"

	"github.com/abelbrown/bookfinder/internal/config"
)

// eventRecord is the decoded form of one log line. It is declared here, not
// taken from otel, so old logs with unknown kinds still decode.
type eventRecord struct {
	Time      time.Time      `json:"t"`
	Level     string         `json:"level"`
	Kind      string         `json:"kind"`
	Comp      string         `json:"comp"`
	SessionID string         `json:"session_id"`
	Epoch     uint64         `json:"epoch"`
	Query     string         `json:"query"`
	Mood      string         `json:"mood"`
	Count     int            `json:"count"`
	DurMs     float64        `json:"dur_ms"`
	Err       string         `json:"err"`
	Msg       string         `json:"msg"`
	Extra     map[string]any `json:"extra"`
}

// eventFilter selects which records are shown.
type eventFilter struct {
	kind     string
	minLevel string
	comp     string
	session  string
	epoch    uint64
}

// levelRank returns a numeric rank for filtering (higher = more severe).
func levelRank(level string) int {
	switch level {
	case "debug":
		return 0
	case "info":
		return 1
	case "warn":
		return 2
	case "error":
		return 3
	default:
		return 0
	}
}

func (f eventFilter) match(ev eventRecord) bool {
	if f.kind != "" && !strings.HasPrefix(ev.Kind, f.kind) {
		return false
	}
	if f.minLevel != "" && levelRank(ev.Level) < levelRank(f.minLevel) {
		return false
	}
	if f.comp != "" && ev.Comp != f.comp {
		return false
	}
	if f.session != "" && !strings.HasPrefix(ev.SessionID, f.session) {
		return false
	}
	if f.epoch != 0 && ev.Epoch != f.epoch {
		return false
	}
	return true
}

func eventsCommand() *cli.Command {
	return &cli.Command{
		Name:   "events",
		Usage:  "JSONL event log viewer",
		Action: runEvents,
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "file", Usage: "Event log (default: the TUI's log in the data directory)"},
			&cli.IntFlag{Name: "tail", Value: 50, Usage: "Number of recent lines to show"},
			&cli.BoolFlag{Name: "follow", Aliases: []string{"f"}, Usage: "Follow mode (like tail -f)"},
			&cli.StringFlag{Name: "kind", Usage: "Filter by event kind prefix (e.g. 'search')"},
			&cli.StringFlag{Name: "level", Usage: "Minimum level: debug, info, warn, error"},
			&cli.StringFlag{Name: "comp", Usage: "Filter by component name"},
			&cli.StringFlag{Name: "session", Usage: "Filter by session ID prefix"},
			&cli.Uint64Flag{Name: "epoch", Usage: "Filter by search epoch"},
			&cli.BoolFlag{Name: "json", Usage: "Output raw JSON lines"},
		},
	}
}

func runEvents(c *cli.Context) error {
	logPath := c.String("file")
	if logPath == "" {
		logPath = config.EventLogPath()
	}

	f, err := os.Open(logPath)
	if err != nil {
		return cli.Exit(fmt.Sprintf("event log not found at %s: %v\n  Run bookfinder first to generate events.", logPath, err), 1)
	}
	defer f.Close()

	filter := eventFilter{
		kind:     c.String("kind"),
		minLevel: c.String("level"),
		comp:     c.String("comp"),
		session:  c.String("session"),
		epoch:    c.Uint64("epoch"),
	}
	raw := c.Bool("json")
	w := c.App.Writer

	for _, l := range readTailLines(f, c.Int("tail"), filter.match) {
		fmt.Fprintln(w, formatEvent(l.ev, l.raw, raw))
	}
	if !c.Bool("follow") {
		return nil
	}

	// The file offset is at EOF now: poll for new lines until interrupted
	reader := bufio.NewReader(f)
	for {
		line, err := reader.ReadBytes('\n')
		if err != nil {
			if err != io.EOF {
				return err
			}
			select {
			case <-c.Context.Done():
				return nil
			case <-time.After(100 * time.Millisecond):
			}
			continue
		}
		line = trimLine(line)
		if len(line) == 0 {
			continue
		}
		var ev eventRecord
		if json.Unmarshal(line, &ev) != nil {
			continue
		}
		if filter.match(ev) {
			fmt.Fprintln(w, formatEvent(ev, line, raw))
		}
	}
}

func formatEvent(ev eventRecord, line []byte, raw bool) string {
	if raw {
		return string(line)
	}
	ts := ev.Time.Format("15:04:05.000")
	lvl := strings.ToUpper(ev.Level)
	if lvl == "" {
		lvl = "?"
	}

	parts := []string{fmt.Sprintf("%s %-5s [%-7s] %-18s", ts, lvl, ev.Comp, ev.Kind)}

	if ev.Epoch != 0 {
		parts = append(parts, fmt.Sprintf("#%d", ev.Epoch))
	}
	if ev.Msg != "" {
		parts = append(parts, "- "+ev.Msg)
	}
	if ev.DurMs > 0 {
		parts = append(parts, fmt.Sprintf("(%.*fms)", durPrecision(ev.DurMs), ev.DurMs))
	}
	if ev.Count > 0 {
		parts = append(parts, fmt.Sprintf("n=%d", ev.Count))
	}
	if ev.Query != "" {
		parts = append(parts, fmt.Sprintf("q=%q", ev.Query))
	}
	if ev.Mood != "" {
		parts = append(parts, "mood="+ev.Mood)
	}
	if ev.Err != "" {
		parts = append(parts, "err="+ev.Err)
	}

	return strings.Join(parts, " ")
}

type parsedLine struct {
	ev  eventRecord
	raw []byte
}

// readTailLines returns the last n lines of r that decode and match, oldest
// first. Lines that are not JSON are skipped.
func readTailLines(r io.Reader, n int, match func(eventRecord) bool) []parsedLine {
	if n <= 0 {
		return nil
	}
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 256*1024)

	ring := make([]parsedLine, n)
	seen := 0
	for sc.Scan() {
		line := sc.Bytes()
		if len(line) == 0 {
			continue
		}
		var ev eventRecord
		if json.Unmarshal(line, &ev) != nil || !match(ev) {
			continue
		}
		ring[seen%n] = parsedLine{ev: ev, raw: bytes.Clone(line)}
		seen++
	}

	if seen <= n {
		return ring[:seen]
	}
	i := seen % n
	return append(ring[i:], ring[:i]...)
}

func trimLine(b []byte) []byte {
	for len(b) > 0 && (b[len(b)-1] == '\n' || b[len(b)-1] == '\r') {
		b = b[:len(b)-1]
	}
	return b
}

func durPrecision(ms float64) int {
	if ms >= 100 {
		return 0
	}
	if ms >= 1 {
		return 1
	}
	return 2
}
