package vterm

import "testing"

func TestNoopLoggerDiscardsEvents(t *testing.T) {
	var l LoggerProvider = NoopLogger{}
	l.Warn("anything", "key", "value") // must not panic
}

func TestWithLoggerOverridesDefault(t *testing.T) {
	rec := &recordingLogger{}
	term := New(WithLogger(rec))

	// New hands the WithLogger sink to the default paragraph scrollback, so
	// overflowing a one-line cap there logs through it.
	ps := term.ScrollbackProvider().(*ParagraphScrollback)
	ps.SetMaxLines(1)
	ps.Push(makeCells("line"), false)
	ps.Push(makeCells("lin2"), false)

	if len(rec.msgs) == 0 {
		t.Fatal("expected a logged warning when scrollback history limit is exceeded")
	}
}

type recordingLogger struct {
	msgs []string
}

func (r *recordingLogger) Warn(msg string, fields ...any) {
	r.msgs = append(r.msgs, msg)
}
