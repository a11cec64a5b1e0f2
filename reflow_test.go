package vterm

import "testing"

func cellsText(cells []Cell) string {
	out := make([]rune, 0, len(cells))
	for _, c := range cells {
		r, ok := cellTextRune(c)
		if !ok {
			continue
		}
		out = append(out, r)
	}
	return string(out)
}

func TestResizeReflowShrinkSplitsWrappedParagraph(t *testing.T) {
	term := New(WithSize(2, 6))
	term.WriteString("helloworld")

	// Before reflow: "hellow" (wrapped) / "orld  ", cursor at (1, 4).
	if got := cellsText(term.activeBuffer.cells[0]); got != "hellow" {
		t.Fatalf("row0 before reflow = %q, want %q", got, "hellow")
	}
	if row, col := term.CursorPos(); row != 1 || col != 4 {
		t.Fatalf("cursor before reflow = (%d,%d), want (1,4)", row, col)
	}

	term.ResizeReflow(2, 4)

	if got, want := term.Rows(), 2; got != want {
		t.Fatalf("rows after reflow = %d, want %d", got, want)
	}
	if got, want := term.Cols(), 4; got != want {
		t.Fatalf("cols after reflow = %d, want %d", got, want)
	}
	if got, want := term.ScrollbackLen(), 1; got != want {
		t.Fatalf("scrollback len = %d, want %d", got, want)
	}
	if got, want := cellsText(term.ScrollbackLine(0)), "hell"; got != want {
		t.Fatalf("history[0] = %q, want %q", got, want)
	}
	if got, want := term.LineContent(0), "owor"; got != want {
		t.Fatalf("active row 0 = %q, want %q", got, want)
	}
	if got, want := term.LineContent(1), "ld"; got != want {
		t.Fatalf("active row 1 = %q, want %q", got, want)
	}

	row, col := term.CursorPos()
	if row != 1 || col != 2 {
		t.Fatalf("cursor after reflow = (%d,%d), want (1,2)", row, col)
	}
}

func TestResizeReflowRoundTrip(t *testing.T) {
	term := New(WithSize(3, 10))
	term.WriteString("the quick brown fox jumps over the lazy dog\r\nsecond line of text here\r\nthird")

	before := make([]string, 0)
	n := term.ScrollbackLen()
	for i := 0; i < n; i++ {
		before = append(before, cellsText(term.ScrollbackLine(i)))
	}
	for r := 0; r < term.Rows(); r++ {
		before = append(before, term.LineContent(r))
	}

	term.ResizeReflow(3, 6)
	term.ResizeReflow(3, 10)

	after := make([]string, 0)
	n = term.ScrollbackLen()
	for i := 0; i < n; i++ {
		after = append(after, cellsText(term.ScrollbackLine(i)))
	}
	for r := 0; r < term.Rows(); r++ {
		after = append(after, term.LineContent(r))
	}

	joinedBefore, joinedAfter := "", ""
	for _, l := range before {
		joinedBefore += l + "|"
	}
	for _, l := range after {
		joinedAfter += l + "|"
	}
	if joinedBefore != joinedAfter {
		t.Fatalf("reflow round trip mismatch:\n before=%q\n after =%q", joinedBefore, joinedAfter)
	}
}

func TestResizeReflowPreservesParagraphAcrossHistoryBoundary(t *testing.T) {
	// A grid only two rows tall, so a long wrapped paragraph starts
	// scrolling into history while later segments are still in the active
	// grid, exercising ParagraphScrollback's still-open pending paragraph.
	term := New(WithSize(2, 4))
	term.SetMaxScrollback(100)
	term.WriteString("abcdefghijklmnop") // 16 chars, 4 rows of 4 at cols=4

	// 4 rows written but only 2 fit; 2 rows ("abcd","efgh") scrolled into
	// history while the paragraph (no newline) is still open.
	if got := term.ScrollbackLen(); got != 2 {
		t.Fatalf("scrollback len = %d, want 2", got)
	}

	term.ResizeReflow(2, 8)

	var all string
	for i := 0; i < term.ScrollbackLen(); i++ {
		all += cellsText(term.ScrollbackLine(i))
	}
	for r := 0; r < term.Rows(); r++ {
		all += term.LineContent(r)
	}
	if all != "abcdefghijklmnop" {
		t.Fatalf("reflow lost data across history boundary: got %q, want %q", all, "abcdefghijklmnop")
	}
}
