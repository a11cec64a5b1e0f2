package vterm

// flatParagraph is a paragraph's full cell stream awaiting re-segmentation
// at a new column width.
type flatParagraph struct {
	cells []Cell
}

// ResizeReflow changes the terminal's dimensions like Resize, but instead of
// clipping content to the new grid, it re-wraps the entire logical text
// stream (scrollback plus the active grid) at the new column width and
// rebuilds scrollback and the active grid from that. The cursor's position
// within the logical stream is preserved, so it ends up on the same
// character after a column-width change, the way real terminals behave on
// a window resize. Falls back to the clipping behavior of Resize when the
// active buffer's scrollback isn't reflow-capable (e.g. the alternate
// screen, which has none).
func (t *Terminal) ResizeReflow(rows, cols int) {
	if rows <= 0 || cols <= 0 {
		return
	}

	t.mu.Lock()
	defer t.mu.Unlock()

	if t.activeBuffer != t.primaryBuffer {
		t.resizeClipLocked(rows, cols)
		return
	}

	ps, ok := t.primaryBuffer.scrollback.(*ParagraphScrollback)
	if !ok {
		t.resizeClipLocked(rows, cols)
		return
	}

	oldCols := t.cols

	// 1. Flatten history paragraphs, oldest first. The most recent one may
	// still be open (its closing row hasn't scrolled out of the active grid
	// yet); its prefix seeds `cur` below instead of being appended here, so
	// it gets stitched onto its own continuation rather than duplicated or
	// dropped.
	var paras []flatParagraph
	for _, tag := range ps.Paragraphs() {
		paras = append(paras, flatParagraph{cells: ps.Paragraph(tag)})
	}
	pendingPrefix := ps.PendingCells()
	maxLines := ps.MaxLines()
	ps.Clear()

	// 2. Flatten active-grid rows into paragraphs, tracking the cursor's
	// paragraph index and intra-paragraph cell offset.
	cursorParaIdx := -1
	cursorOffset := 0

	cur := append([]Cell(nil), pendingPrefix...)
	for row := 0; row < t.primaryBuffer.rows; row++ {
		rowCells := make([]Cell, oldCols)
		for c := 0; c < oldCols; c++ {
			if cell := t.primaryBuffer.Cell(row, c); cell != nil {
				rowCells[c] = *cell
			}
		}

		if row == t.cursor.Row {
			cursorParaIdx = len(paras)
			cursorOffset = len(cur) + t.cursor.Col
			if t.cursor.WrapNext {
				cursorOffset++
			}
		}

		cur = append(cur, rowCells...)

		if !t.primaryBuffer.IsWrapped(row) {
			paras = append(paras, flatParagraph{cells: cur})
			cur = nil
		}
	}
	if len(cur) > 0 {
		paras = append(paras, flatParagraph{cells: cur})
	}

	// Trailing blank cells are row padding: drop them so each paragraph
	// re-segments by its written length, keeping every cell up to the cursor.
	blank := func(c Cell) bool {
		return (c.Char == ' ' || c.Char == 0) && c.Flags&^CellFlagDirty == 0 && c.Hyperlink == nil &&
			resolveDefaultColor(c.Bg, false) == DefaultBackground
	}
	for i := range paras {
		n := len(paras[i].cells)
		for n > 0 && blank(paras[i].cells[n-1]) {
			n--
		}
		if i == cursorParaIdx && n < cursorOffset {
			n = cursorOffset
		}
		paras[i].cells = paras[i].cells[:n]
	}

	// 3. Re-segment every paragraph at the new column width.
	type segRow struct {
		cells   []Cell
		wrapped bool
	}
	var allRows []segRow
	cursorNewRow := 0
	cursorNewCol := 0
	cursorNewWrapNext := false
	rowsBeforeCursorPara := 0

	for i, para := range paras {
		n := len(para.cells)
		segCount := n / cols
		if n%cols != 0 || n == 0 {
			segCount++
		}

		if i == cursorParaIdx {
			rowsBeforeCursorPara = len(allRows)
			r := cursorOffset / cols
			c := cursorOffset % cols
			wrapNext := false
			if r >= segCount {
				r = segCount - 1
				c = cols - 1
				wrapNext = true
			}
			cursorNewRow = r
			cursorNewCol = c
			cursorNewWrapNext = wrapNext
		}

		for s := 0; s < segCount; s++ {
			start := s * cols
			end := start + cols
			row := make([]Cell, cols)
			for c := range row {
				row[c] = NewCell()
			}
			if start < n {
				segEnd := end
				if segEnd > n {
					segEnd = n
				}
				copy(row, para.cells[start:segEnd])
			}
			allRows = append(allRows, segRow{cells: row, wrapped: s < segCount-1})
		}
	}

	// 4. Split into history (everything but the last `rows`) and active.
	total := len(allRows)
	activeStart := total - rows
	if activeStart < 0 {
		activeStart = 0
	}
	historyRows := allRows[:activeStart]
	activeRows := allRows[activeStart:]

	newBuffer := NewBufferWithStorage(rows, cols, ps)
	ps.cols = cols
	ps.SetMaxLines(maxLines)

	for _, r := range historyRows {
		ps.Push(r.cells, r.wrapped)
	}

	for i, r := range activeRows {
		copy(newBuffer.cells[i], r.cells)
		newBuffer.wrapped[i] = r.wrapped
	}
	for i := len(activeRows); i < rows; i++ {
		for c := range newBuffer.cells[i] {
			newBuffer.cells[i][c] = NewCell()
		}
		newBuffer.wrapped[i] = false
	}

	t.primaryBuffer = newBuffer
	t.activeBuffer = newBuffer
	t.rows = rows
	t.cols = cols

	cursorAbsRow := rowsBeforeCursorPara + cursorNewRow
	newCursorRow := cursorAbsRow - activeStart
	if cursorParaIdx < 0 {
		newCursorRow = 0
		cursorNewCol = 0
		cursorNewWrapNext = false
	}
	t.cursor.Row = clamp(newCursorRow, 0, rows-1)
	t.cursor.Col = clamp(cursorNewCol, 0, cols-1)
	t.cursor.WrapNext = cursorNewWrapNext

	t.scrollTop = 0
	t.scrollBottom = rows
	t.selection = Selection{}
	t.historySelection.Active = false
}

// resizeClipLocked performs the non-reflowing resize. Caller must hold t.mu.
func (t *Terminal) resizeClipLocked(rows, cols int) {
	oldRows := t.rows

	if rows < oldRows && t.activeBuffer == t.primaryBuffer {
		linesToScroll := oldRows - rows
		if t.cursor.Row >= rows {
			t.primaryBuffer.ScrollUp(0, oldRows, linesToScroll)
			t.cursor.Row -= linesToScroll
			if t.cursor.Row < 0 {
				t.cursor.Row = 0
			}
		}
	}

	t.rows = rows
	t.cols = cols
	t.primaryBuffer.Resize(rows, cols)
	t.alternateBuffer.Resize(rows, cols)
	if ps, ok := t.primaryBuffer.scrollback.(*ParagraphScrollback); ok {
		ps.cols = cols
	}

	t.cursor.Row = clamp(t.cursor.Row, 0, rows-1)
	t.cursor.Col = clamp(t.cursor.Col, 0, cols-1)
	t.cursor.WrapNext = false

	t.scrollTop = 0
	t.scrollBottom = rows
	t.selection = Selection{}
	t.historySelection.Active = false
}
