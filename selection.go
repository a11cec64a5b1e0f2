package vterm

// HistorySelection is a selection expressed in absolute coordinates so it
// stays valid as history grows and the viewport scrolls, unlike Selection
// which is pinned to the active grid. Begin/End are normalized so Begin is
// never after End.
type HistorySelection struct {
	Begin  APos
	End    APos
	Active bool
}

// SetHistorySelection sets the active cross-history selection.
func (t *Terminal) SetHistorySelection(a, b APos) {
	t.mu.Lock()
	defer t.mu.Unlock()

	begin, end := NormalizeAPos(a, b)
	t.historySelection = HistorySelection{Begin: begin, End: end, Active: true}
}

// ClearHistorySelection deactivates the cross-history selection.
func (t *Terminal) ClearHistorySelection() {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.historySelection.Active = false
}

// GetHistorySelection returns the current cross-history selection.
func (t *Terminal) GetHistorySelection() HistorySelection {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.historySelection
}

// IsHistorySelected reports whether the given absolute position falls
// within the active cross-history selection.
func (t *Terminal) IsHistorySelected(pos APos) bool {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.isHistorySelectedLocked(pos)
}

func (t *Terminal) isHistorySelectedLocked(pos APos) bool {
	if !t.historySelection.Active {
		return false
	}
	begin, end := t.historySelection.Begin, t.historySelection.End
	return !pos.Before(begin) && !end.Before(pos)
}

// GetHistorySelectedText extracts the selected text, walking scrollback and
// the active grid as one continuous stream. Wrapped rows are joined without
// an inserted newline; rows ended by an explicit newline get one.
func (t *Terminal) GetHistorySelectedText() string {
	t.mu.RLock()
	defer t.mu.RUnlock()

	if !t.historySelection.Active {
		return ""
	}
	return t.extractRangeLocked(t.historySelection.Begin, t.historySelection.End)
}

func (t *Terminal) extractRangeLocked(begin, end APos) string {
	var out []rune

	for row := begin.Row; row <= end.Row; row++ {
		cells, wrapped := t.historyRow(row)
		if cells == nil {
			continue
		}

		startCol := 0
		endCol := len(cells)
		if row == begin.Row {
			startCol = begin.Col
		}
		if row == end.Row {
			endCol = end.Col + 1
		}
		if startCol < 0 {
			startCol = 0
		}
		if endCol > len(cells) {
			endCol = len(cells)
		}

		for col := startCol; col < endCol; col++ {
			if r, ok := cellTextRune(cells[col]); ok {
				out = append(out, r)
			}
		}

		if row < end.Row && !wrapped {
			out = append(out, '\n')
		}
	}

	return string(out)
}

// ExpandSelectionWord returns the APos range covering the word touching pos.
// A cell belongs to the word if its rune matches the configured cut_chars
// class (Config.CutChars / WithCutChars), defaulting to \w.
func (t *Terminal) ExpandSelectionWord(pos APos) (begin, end APos) {
	t.mu.RLock()
	defer t.mu.RUnlock()

	cells, _ := t.historyRow(pos.Row)
	if cells == nil || pos.Col < 0 || pos.Col >= len(cells) {
		return pos, pos
	}

	cutChars := t.cutChars
	if cutChars == nil {
		cutChars = defaultCutChars
	}
	isWord := func(c Cell) bool {
		r, ok := cellTextRune(c)
		if !ok {
			return false
		}
		return cutChars.MatchString(string(r))
	}

	if !isWord(cells[pos.Col]) {
		return pos, pos
	}

	startCol := pos.Col
	for startCol > 0 && isWord(cells[startCol-1]) {
		startCol--
	}
	endCol := pos.Col
	for endCol < len(cells)-1 && isWord(cells[endCol+1]) {
		endCol++
	}

	return APos{Row: pos.Row, Col: startCol}, APos{Row: pos.Row, Col: endCol}
}

// ExpandSelectionLine returns the APos range covering the full logical line
// (paragraph) containing pos, following wrapped-row continuations in both
// directions.
func (t *Terminal) ExpandSelectionLine(pos APos) (begin, end APos) {
	t.mu.RLock()
	defer t.mu.RUnlock()

	row := pos.Row
	for row > t.oldestAPosRow() {
		_, prevWrapped := t.historyRow(row - 1)
		if !prevWrapped {
			break
		}
		row--
	}
	begin = APos{Row: row, Col: 0}

	row = pos.Row
	for {
		cells, wrapped := t.historyRow(row)
		if cells == nil {
			row--
			break
		}
		if !wrapped {
			end = APos{Row: row, Col: len(cells) - 1}
			return begin, end
		}
		row++
	}
	cells, _ := t.historyRow(row)
	if cells != nil {
		end = APos{Row: row, Col: len(cells) - 1}
	} else {
		end = APos{Row: row, Col: 0}
	}
	return begin, end
}
