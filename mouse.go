package vterm

import "fmt"

// MouseButton identifies which button a mouse event concerns.
type MouseButton int

const (
	MouseButtonLeft MouseButton = iota
	MouseButtonMiddle
	MouseButtonRight
	MouseButtonNone // motion-only event, no button held
	MouseButtonWheelUp
	MouseButtonWheelDown
)

// MouseEventKind distinguishes press/release/drag for encoding purposes.
type MouseEventKind int

const (
	MousePress MouseEventKind = iota
	MouseRelease
	MouseMotion
)

// EncodeMouse returns the escape sequence to report a mouse event at
// (row, col) (0-based), or nil if no mouse reporting mode is enabled, or
// the event is filtered out by the active mode (e.g. plain click reporting
// ignores motion-only events). Mirrors xterm's X10/normal/SGR mouse
// protocols, preferring SGR when ModeSGRMouse is set since it has no
// coordinate overflow limit.
func (t *Terminal) EncodeMouse(button MouseButton, kind MouseEventKind, row, col int, mods KeyModifiers) []byte {
	t.mu.RLock()
	modes := t.modes
	t.mu.RUnlock()

	reportClicks := modes&ModeReportMouseClicks != 0
	reportCellMotion := modes&ModeReportCellMouseMotion != 0
	reportAllMotion := modes&ModeReportAllMouseMotion != 0

	if !reportClicks && !reportCellMotion && !reportAllMotion {
		return nil
	}
	if kind == MouseMotion && !reportCellMotion && !reportAllMotion {
		return nil
	}

	cb := mouseButtonCode(button, kind, mods)

	if modes&ModeSGRMouse != 0 {
		final := byte('M')
		if kind == MouseRelease {
			final = 'm'
		}
		return []byte(fmt.Sprintf("\x1b[<%d;%d;%d%c", cb, col+1, row+1, final))
	}

	// Legacy X10/normal encoding: coordinates are biased by 33 and clamped
	// to a single byte, so positions beyond 223 cannot be represented.
	encCol := col + 1 + 32
	encRow := row + 1 + 32
	if encCol > 255 {
		encCol = 255
	}
	if encRow > 255 {
		encRow = 255
	}
	return []byte{0x1b, '[', 'M', byte(cb + 32), byte(encCol), byte(encRow)}
}

func mouseButtonCode(button MouseButton, kind MouseEventKind, mods KeyModifiers) int {
	code := 0
	switch button {
	case MouseButtonLeft:
		code = 0
	case MouseButtonMiddle:
		code = 1
	case MouseButtonRight:
		code = 2
	case MouseButtonNone:
		code = 3
	case MouseButtonWheelUp:
		code = 0x40
	case MouseButtonWheelDown:
		code = 0x41
	}

	if kind == MouseMotion {
		code |= 0x20
	}
	if mods&ModShift != 0 {
		code |= 0x04
	}
	if mods&ModAlt != 0 {
		code |= 0x08
	}
	if mods&ModCtrl != 0 {
		code |= 0x10
	}
	return code
}

// SendMouse encodes and writes a mouse event back through the response
// provider, if a mouse reporting mode is currently enabled.
func (t *Terminal) SendMouse(button MouseButton, kind MouseEventKind, row, col int, mods KeyModifiers) {
	seq := t.EncodeMouse(button, kind, row, col, mods)
	if seq != nil {
		t.writeResponse(seq)
	}
}
