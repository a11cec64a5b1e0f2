package vterm

import "fmt"

// KeySym names a non-printable key. Printable keys are sent through
// WriteString directly; KeySym only covers keys that require xterm-style
// escape sequence encoding. Mapping a platform/toolkit key event onto a
// KeySym is an outer-layer concern (keyboard layout, IME, GUI toolkit) and
// is deliberately left to the caller.
type KeySym int

const (
	KeyUp KeySym = iota
	KeyDown
	KeyRight
	KeyLeft
	KeyHome
	KeyEnd
	KeyPageUp
	KeyPageDown
	KeyInsert
	KeyDelete
	KeyF1
	KeyF2
	KeyF3
	KeyF4
	KeyF5
	KeyF6
	KeyF7
	KeyF8
	KeyF9
	KeyF10
	KeyF11
	KeyF12
	KeyTab
	KeyBackspace
	KeyEnter
	KeyEscape
)

// KeyModifiers is a bitmask of modifier keys held during a key event,
// encoded the way xterm's modifyOtherKeys parameter expects: 1 + bits.
type KeyModifiers int

const (
	ModShift KeyModifiers = 1 << iota
	ModAlt
	ModCtrl
	ModMeta
)

// xtermParam returns the CSI modifier parameter (2-16), or 0 for "no
// modifiers", per xterm's encoding table.
func (m KeyModifiers) xtermParam() int {
	if m == 0 {
		return 0
	}
	return 1 + int(m)
}

// KeyAction names a host-level action a key chord can be bound to instead
// of being sent to the child process: font resize, viewport scroll, history
// clearing, clipboard copy/paste, search. The host decides what each action
// actually does (SendKey only reports that a binding fired, via the action
// string reaching the caller's own dispatch); the core only owns the lookup.
type KeyAction string

// keyChord identifies one (KeySym, KeyModifiers) combination.
type keyChord struct {
	key  KeySym
	mods KeyModifiers
}

// KeyBindings maps key chords to host actions, consulted before the xterm
// byte-encoding fallback. A bound chord never reaches the child process as
// bytes; the host is expected to look up and perform the action itself.
type KeyBindings map[keyChord]KeyAction

// NewKeyBindings returns an empty binding table ready for Bind calls.
func NewKeyBindings() KeyBindings {
	return make(KeyBindings)
}

// Bind registers action for the given chord, overwriting any existing
// binding for it.
func (kb KeyBindings) Bind(key KeySym, mods KeyModifiers, action KeyAction) {
	kb[keyChord{key, mods}] = action
}

// Lookup returns the action bound to the given chord, if any.
func (kb KeyBindings) Lookup(key KeySym, mods KeyModifiers) (KeyAction, bool) {
	a, ok := kb[keyChord{key, mods}]
	return a, ok
}

// WithKeyBindings installs a key-binding table consulted by SendKey before
// falling back to xterm byte encoding. Defaults to nil (no bindings, every
// key is encoded and sent to the child).
func WithKeyBindings(kb KeyBindings) Option {
	return func(t *Terminal) {
		t.keyBindings = kb
	}
}

// EncodeKey returns the byte sequence to send to the child process for the
// given key symbol, honoring cursor-key mode. Keypad-application mode is
// not consulted.
func (t *Terminal) EncodeKey(key KeySym, mods KeyModifiers) []byte {
	t.mu.RLock()
	appCursor := t.modes&ModeCursorKeys != 0
	t.mu.RUnlock()

	if mods != 0 {
		if seq, ok := encodeModifiedKey(key, mods); ok {
			return []byte(seq)
		}
	}

	cursorLetter := func(letter byte) []byte {
		if appCursor {
			return []byte{0x1b, 'O', letter}
		}
		return []byte{0x1b, '[', letter}
	}

	switch key {
	case KeyUp:
		return cursorLetter('A')
	case KeyDown:
		return cursorLetter('B')
	case KeyRight:
		return cursorLetter('C')
	case KeyLeft:
		return cursorLetter('D')
	case KeyHome:
		return cursorLetter('H')
	case KeyEnd:
		return cursorLetter('F')
	case KeyPageUp:
		return []byte{0x1b, '[', '5', '~'}
	case KeyPageDown:
		return []byte{0x1b, '[', '6', '~'}
	case KeyInsert:
		return []byte{0x1b, '[', '2', '~'}
	case KeyDelete:
		return []byte{0x1b, '[', '3', '~'}
	case KeyTab:
		return []byte{'\t'}
	case KeyBackspace:
		return []byte{0x7f}
	case KeyEnter:
		return []byte{'\r'}
	case KeyEscape:
		return []byte{0x1b}
	case KeyF1:
		return appKeypadFn(appCursor, 'P')
	case KeyF2:
		return appKeypadFn(appCursor, 'Q')
	case KeyF3:
		return appKeypadFn(appCursor, 'R')
	case KeyF4:
		return appKeypadFn(appCursor, 'S')
	case KeyF5:
		return []byte("\x1b[15~")
	case KeyF6:
		return []byte("\x1b[17~")
	case KeyF7:
		return []byte("\x1b[18~")
	case KeyF8:
		return []byte("\x1b[19~")
	case KeyF9:
		return []byte("\x1b[20~")
	case KeyF10:
		return []byte("\x1b[21~")
	case KeyF11:
		return []byte("\x1b[23~")
	case KeyF12:
		return []byte("\x1b[24~")
	}
	return nil
}

func appKeypadFn(appCursor bool, letter byte) []byte {
	if appCursor {
		return []byte{0x1b, 'O', letter}
	}
	return []byte{0x1b, '[', letter}
}

// encodeModifiedKey handles the subset of keys whose CSI final byte changes
// to carry a modifier parameter (e.g. shift-Up -> "CSI 1 ; 2 A").
func encodeModifiedKey(key KeySym, mods KeyModifiers) (string, bool) {
	param := mods.xtermParam()
	if param == 0 {
		return "", false
	}

	letter := byte(0)
	tilde := -1
	switch key {
	case KeyUp:
		letter = 'A'
	case KeyDown:
		letter = 'B'
	case KeyRight:
		letter = 'C'
	case KeyLeft:
		letter = 'D'
	case KeyHome:
		letter = 'H'
	case KeyEnd:
		letter = 'F'
	case KeyPageUp:
		tilde = 5
	case KeyPageDown:
		tilde = 6
	case KeyInsert:
		tilde = 2
	case KeyDelete:
		tilde = 3
	default:
		return "", false
	}

	if tilde >= 0 {
		return fmt.Sprintf("\x1b[%d;%d~", tilde, param), true
	}
	return fmt.Sprintf("\x1b[1;%d%c", param, letter), true
}

// SendKey encodes key and writes it back through the response provider, as
// if the child process had requested it (the usual path for delivering
// keyboard input that the parent read from a GUI/toolkit event loop). If a
// KeyBindings table is installed and the chord matches a binding, the key
// is not sent to the child at all; action is returned for the caller to
// perform (font resize, clear scrollback, copy/paste, search), and ok is
// true. Otherwise the key is encoded and written as usual, and ok is false.
func (t *Terminal) SendKey(key KeySym, mods KeyModifiers) (action KeyAction, ok bool) {
	t.mu.RLock()
	bindings := t.keyBindings
	t.mu.RUnlock()

	if bindings != nil {
		if a, bound := bindings.Lookup(key, mods); bound {
			return a, true
		}
	}

	seq := t.EncodeKey(key, mods)
	if seq != nil {
		t.writeResponse(seq)
	}
	return "", false
}
