package comm

import (
	"strings"
	"unicode/utf8"

	"github.com/robotalks/fcu.go/pkg/link"
)

// Log buffer dimensions.
const (
	LogBufferSize  = 25
	LogMessageSize = 50
)

type logEntry struct {
	severity link.LogSeverity
	text     [LogMessageSize]byte
	size     int
}

// LogBuffer is a fixed ring of log messages which drops the oldest
// entry when full.
type LogBuffer struct {
	entries [LogBufferSize]logEntry
	head    int
	tail    int
	full    bool
}

// Push appends a message, truncated to LogMessageSize bytes.
func (b *LogBuffer) Push(severity link.LogSeverity, text string) {
	e := &b.entries[b.head]
	e.severity = severity
	e.size = copy(e.text[:], truncate(text))
	// tail moves first so head never overtakes an unread entry.
	if b.full {
		b.tail = (b.tail + 1) % LogBufferSize
	}
	b.head = (b.head + 1) % LogBufferSize
	b.full = b.head == b.tail
}

// Len returns the number of buffered messages.
func (b *LogBuffer) Len() int {
	switch {
	case b.full:
		return LogBufferSize
	case b.head >= b.tail:
		return b.head - b.tail
	default:
		return LogBufferSize + b.head - b.tail
	}
}

// Drain calls fn for every message, oldest first, then empties the buffer.
func (b *LogBuffer) Drain(fn func(link.LogSeverity, string)) {
	for n := b.Len(); n > 0; n-- {
		e := &b.entries[b.tail]
		fn(e.severity, string(e.text[:e.size]))
		b.tail = (b.tail + 1) % LogBufferSize
	}
	b.Reset()
}

// Reset empties the buffer.
func (b *LogBuffer) Reset() {
	b.head, b.tail, b.full = 0, 0, false
}

// truncate returns valid UTF-8 of at most LogMessageSize bytes, cut on a
// rune boundary. The wire encoding rejects invalid UTF-8 strings.
func truncate(text string) string {
	text = strings.ToValidUTF8(text, string(utf8.RuneError))
	if len(text) <= LogMessageSize {
		return text
	}
	n := LogMessageSize
	for n > 0 && !utf8.RuneStart(text[n]) {
		n--
	}
	return text[:n]
}
