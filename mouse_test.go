package vterm

import (
	"testing"

	"github.com/danielgatis/go-ansicode"
)

func TestEncodeMouseDisabledByDefault(t *testing.T) {
	term := New()
	if got := term.EncodeMouse(MouseButtonLeft, MousePress, 0, 0, 0); got != nil {
		t.Fatalf("EncodeMouse with no reporting mode set = %v, want nil", got)
	}
}

func TestEncodeMouseX10Encoding(t *testing.T) {
	term := New()
	term.SetMode(ansicode.TerminalModeReportMouseClicks)

	got := term.EncodeMouse(MouseButtonLeft, MousePress, 3, 5, 0)
	want := []byte{0x1b, '[', 'M', byte(0 + 32), byte(5 + 1 + 32), byte(3 + 1 + 32)}
	if string(got) != string(want) {
		t.Fatalf("X10 mouse press = %v, want %v", got, want)
	}
}

func TestEncodeMouseSGREncoding(t *testing.T) {
	term := New()
	term.SetMode(ansicode.TerminalModeReportMouseClicks)
	term.SetMode(ansicode.TerminalModeSGRMouse)

	press := string(term.EncodeMouse(MouseButtonLeft, MousePress, 3, 5, 0))
	if want := "\x1b[<0;6;4M"; press != want {
		t.Fatalf("SGR mouse press = %q, want %q", press, want)
	}

	release := string(term.EncodeMouse(MouseButtonLeft, MouseRelease, 3, 5, 0))
	if want := "\x1b[<0;6;4m"; release != want {
		t.Fatalf("SGR mouse release = %q, want %q", release, want)
	}
}

func TestEncodeMouseModifiersAndWheel(t *testing.T) {
	term := New()
	term.SetMode(ansicode.TerminalModeReportMouseClicks)
	term.SetMode(ansicode.TerminalModeSGRMouse)

	got := string(term.EncodeMouse(MouseButtonWheelUp, MousePress, 0, 0, ModShift|ModCtrl))
	want := "\x1b[<84;1;1M" // 0x40 (wheel up) | 0x04 (shift) | 0x10 (ctrl) = 0x54 = 84
	if got != want {
		t.Fatalf("wheel+modifiers = %q, want %q", got, want)
	}
}

func TestEncodeMouseMotionFilteredWithoutMotionMode(t *testing.T) {
	term := New()
	term.SetMode(ansicode.TerminalModeReportMouseClicks)

	if got := term.EncodeMouse(MouseButtonNone, MouseMotion, 1, 1, 0); got != nil {
		t.Fatalf("motion event with only click reporting enabled = %v, want nil", got)
	}

	term.SetMode(ansicode.TerminalModeReportAllMouseMotion)
	if got := term.EncodeMouse(MouseButtonNone, MouseMotion, 1, 1, 0); got == nil {
		t.Fatal("motion event with all-motion reporting enabled should encode, got nil")
	}
}
