package vterm

import "regexp"

// SearchMatch is one match found by SearchHistory, in absolute coordinates.
type SearchMatch struct {
	Begin APos
	End   APos
}

// SearchHistory finds every match of pattern (a regular expression) across
// the combined scrollback + active grid, in oldest-to-newest order. Matches
// are found line by line; a match cannot span a wrapped-row boundary within
// a single call since paragraphs can be arbitrarily long and re-running a
// regexp engine over an unbounded joined string per keystroke is not
// something a terminal's search-as-you-type UI can afford. Callers that
// need paragraph-spanning matches should use SearchParagraphs instead.
func (t *Terminal) SearchHistory(pattern string) ([]SearchMatch, error) {
	re, err := regexp.Compile(pattern)
	if err != nil {
		return nil, err
	}

	t.mu.RLock()
	defer t.mu.RUnlock()

	var matches []SearchMatch
	oldest := t.oldestAPosRow()
	for row := oldest; row < t.rows; row++ {
		cells, _ := t.historyRow(row)
		if cells == nil {
			continue
		}
		line := string(rowRunes(cells))
		for _, loc := range re.FindAllStringIndex(line, -1) {
			startCol := len([]rune(line[:loc[0]]))
			endCol := len([]rune(line[:loc[1]])) - 1
			if endCol < startCol {
				endCol = startCol
			}
			matches = append(matches, SearchMatch{
				Begin: APos{Row: row, Col: startCol},
				End:   APos{Row: row, Col: endCol},
			})
		}
	}
	return matches, nil
}

// SearchParagraphs finds matches of pattern across whole logical paragraphs
// (joining wrapped rows before matching), so a match may span what was
// originally several on-screen rows. Slower than SearchHistory but correct
// for patterns that can straddle a wrap point.
func (t *Terminal) SearchParagraphs(pattern string) ([]SearchMatch, error) {
	re, err := regexp.Compile(pattern)
	if err != nil {
		return nil, err
	}

	t.mu.RLock()
	defer t.mu.RUnlock()

	var matches []SearchMatch
	oldest := t.oldestAPosRow()
	row := oldest
	for row < t.rows {
		paraStart := row
		var cols []int
		var text []rune

		for {
			cells, wrapped := t.historyRow(row)
			if cells == nil {
				break
			}
			cols = append(cols, len(text))
			text = append(text, rowRunes(cells)...)
			if !wrapped {
				row++
				break
			}
			row++
		}

		if len(text) == 0 {
			row++
			continue
		}

		s := string(text)
		for _, loc := range re.FindAllStringIndex(s, -1) {
			beginRune := len([]rune(s[:loc[0]]))
			endRune := len([]rune(s[:loc[1]])) - 1
			if endRune < beginRune {
				endRune = beginRune
			}
			matches = append(matches, SearchMatch{
				Begin: runeOffsetToAPos(paraStart, cols, beginRune),
				End:   runeOffsetToAPos(paraStart, cols, endRune),
			})
		}
	}
	return matches, nil
}

// runeOffsetToAPos maps a rune offset within a flattened paragraph back to
// an APos, given paraStart (the paragraph's first row) and rowOffsets (the
// flattened-text offset at which each consecutive row begins).
func runeOffsetToAPos(paraStart int, rowOffsets []int, offset int) APos {
	row := paraStart
	col := offset
	for i := len(rowOffsets) - 1; i >= 0; i-- {
		if offset >= rowOffsets[i] {
			row = paraStart + i
			col = offset - rowOffsets[i]
			break
		}
	}
	return APos{Row: row, Col: col}
}
