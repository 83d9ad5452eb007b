package debounce

import "github.com/jonboulle/clockwork"

// Clock schedules the idle-window timers. Production code uses the wall
// clock; tests drive a clockwork.FakeClock.
type Clock = clockwork.Clock
