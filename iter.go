package vterm

// BufferIter walks rows of the combined scrollback + active stream from
// oldest to newest, in absolute coordinates. It is the row-granular
// counterpart to ParaIter below.
type BufferIter struct {
	t   *Terminal
	row int
}

// NewBufferIter creates an iterator starting at the oldest addressable row.
func (t *Terminal) NewBufferIter() *BufferIter {
	t.mu.RLock()
	oldest := t.oldestAPosRow()
	t.mu.RUnlock()
	return &BufferIter{t: t, row: oldest}
}

// Next returns the next row's cells and whether it wraps into the
// following row, advancing the iterator. ok is false once rows are
// exhausted.
func (it *BufferIter) Next() (cells []Cell, wrapped bool, ok bool) {
	it.t.mu.RLock()
	defer it.t.mu.RUnlock()

	if it.row >= it.t.rows {
		return nil, false, false
	}
	cells, wrapped = it.t.historyRow(it.row)
	it.row++
	return cells, wrapped, cells != nil
}

// Paragraph is one logical line reconstructed by joining wrapped rows.
type Paragraph struct {
	Begin APos
	End   APos
	Text  string
}

// ParaIter walks whole paragraphs (wrapped rows joined) from oldest to
// newest, which is what rendering a "logical line at a time" view (or
// exporting plain-text history) wants instead of raw on-screen rows.
type ParaIter struct {
	t   *Terminal
	row int
}

// NewParaIter creates a paragraph iterator starting at the oldest
// addressable row.
func (t *Terminal) NewParaIter() *ParaIter {
	t.mu.RLock()
	oldest := t.oldestAPosRow()
	t.mu.RUnlock()
	return &ParaIter{t: t, row: oldest}
}

// Next returns the next paragraph, advancing past it. ok is false once
// paragraphs are exhausted.
func (it *ParaIter) Next() (p Paragraph, ok bool) {
	it.t.mu.RLock()
	defer it.t.mu.RUnlock()

	if it.row >= it.t.rows {
		return Paragraph{}, false
	}

	begin := APos{Row: it.row, Col: 0}
	var text []rune
	var lastCells []Cell

	for {
		cells, wrapped := it.t.historyRow(it.row)
		if cells == nil {
			return Paragraph{}, false
		}
		text = append(text, rowRunes(cells)...)
		lastCells = cells
		it.row++
		if !wrapped {
			break
		}
	}

	end := APos{Row: it.row - 1, Col: len(lastCells) - 1}
	return Paragraph{Begin: begin, End: end, Text: string(text)}, true
}
