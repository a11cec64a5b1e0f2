package vterm

// historyRow returns the cells for the row addressed by an APos.Row value,
// plus whether that row wraps into the next one. Row < 0 reads scrollback
// (-1 is the most recently scrolled-off line); row >= 0 reads the active
// buffer. Returns nil if the row is out of range.
func (t *Terminal) historyRow(row int) (cells []Cell, wrapped bool) {
	scrollbackLen := t.primaryBuffer.ScrollbackLen()

	if row < 0 {
		index := scrollbackLen + row
		if index < 0 || index >= scrollbackLen {
			return nil, false
		}
		return t.primaryBuffer.ScrollbackLine(index), t.primaryBuffer.scrollback.IsWrapped(index)
	}

	if row >= t.rows {
		return nil, false
	}
	line := make([]Cell, t.cols)
	for c := 0; c < t.cols; c++ {
		if cell := t.activeBuffer.Cell(row, c); cell != nil {
			line[c] = *cell
		}
	}
	return line, t.activeBuffer.IsWrapped(row)
}

// HistoryHeight returns the total number of addressable rows spanning
// scrollback and the active grid: scrollback lines plus t.rows.
func (t *Terminal) HistoryHeight() int {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.primaryBuffer.ScrollbackLen() + t.rows
}

// oldestAPosRow returns the Row value of the oldest addressable history row.
func (t *Terminal) oldestAPosRow() int {
	return -t.primaryBuffer.ScrollbackLen()
}

// ViewportRowToAbsolute converts a 0-based viewport row into an absolute row
// counted from the oldest scrollback line (row 0 = oldest scrollback line,
// or row 0 of the active grid if there is no scrollback).
func (t *Terminal) ViewportRowToAbsolute(viewportRow int) int {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.primaryBuffer.ScrollbackLen() + viewportRow
}

// AbsoluteRowToViewport converts an absolute row (see ViewportRowToAbsolute)
// back to a viewport row, or -1 if it addresses a scrollback line or falls
// outside the current viewport.
func (t *Terminal) AbsoluteRowToViewport(absRow int) int {
	t.mu.RLock()
	defer t.mu.RUnlock()
	viewportRow := absRow - t.primaryBuffer.ScrollbackLen()
	if viewportRow < 0 || viewportRow >= t.rows {
		return -1
	}
	return viewportRow
}

// cellTextRune converts a cell to the rune it contributes to plain text,
// treating unset cells as spaces and skipping wide-character spacers.
func cellTextRune(c Cell) (r rune, ok bool) {
	if c.IsWideSpacer() {
		return 0, false
	}
	if c.Char == 0 {
		return ' ', true
	}
	return c.Char, true
}

// rowRunes converts a row's cells to the runes used for text search and
// selection extraction, trimming nothing (callers trim as needed).
func rowRunes(cells []Cell) []rune {
	out := make([]rune, 0, len(cells))
	for _, c := range cells {
		if r, ok := cellTextRune(c); ok {
			out = append(out, r)
		}
	}
	return out
}
