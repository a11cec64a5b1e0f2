package vterm

// HLine identifies one on-screen row's worth of a stored paragraph: Tag
// names the paragraph and Segment is which cols-wide slice of it (0 = the
// paragraph's first row). Wrapped reports whether the paragraph continues
// on the next HLine.
type HLine struct {
	Tag     Tag
	Segment int
	Wrapped bool
}

// ParagraphScrollback is a ScrollbackProvider that groups consecutive
// wrapped lines into logical paragraphs and stores each paragraph exactly
// once through a Deduper, regardless of how many times it recurs (repeated
// shell prompts, banners, progress bars). It is the default history storage
// for Buffer; callers that want a different backend can still hand Buffer
// any other ScrollbackProvider, including one built the same way around a
// different Deduper.
type ParagraphScrollback struct {
	dedupe   Deduper
	cols     int
	history  []HLine
	lostTags uint64 // count of HLine entries permanently evicted

	pending     []Cell // cells of the in-progress (not yet finalized) paragraph
	pendingOpen bool

	maxLines int

	logger LoggerProvider
}

// NewParagraphScrollback creates a paragraph-deduping scrollback backed by
// dedupe. cols is the active buffer's current column width; rows pushed at
// a different width should go through Terminal.ResizeReflow first.
func NewParagraphScrollback(dedupe Deduper, cols int) *ParagraphScrollback {
	return &ParagraphScrollback{dedupe: dedupe, cols: cols, logger: NoopLogger{}}
}

// SetLogger installs a diagnostic sink for eviction warnings. Called by
// Terminal when constructed with WithLogger; defaults to NoopLogger.
func (p *ParagraphScrollback) SetLogger(l LoggerProvider) {
	if l != nil {
		p.logger = l
	}
}

// Push appends one on-screen row. wrapped must be true iff the row was
// split purely by column width (no newline), i.e. the paragraph continues
// on the next Push.
func (p *ParagraphScrollback) Push(line []Cell, wrapped bool) {
	segment := 0
	if p.pendingOpen {
		segment = len(p.pending) / p.cols
	}

	p.pending = append(p.pending, line...)
	hl := HLine{Segment: segment, Wrapped: wrapped}

	if wrapped {
		p.pendingOpen = true
		// placeholder; Tag is filled in once the paragraph closes
		p.history = append(p.history, hl)
		p.enforceLimit()
		return
	}

	tag := p.dedupe.Store(p.pending)
	hl.Tag = tag

	if p.pendingOpen {
		// backfill the tag into every segment of this paragraph already
		// appended to history.
		paraStart := len(p.history) - segment
		for i := paraStart; i < len(p.history); i++ {
			p.history[i].Tag = tag
		}
	}
	p.history = append(p.history, hl)
	p.pending = nil
	p.pendingOpen = false
	p.enforceLimit()
}

func (p *ParagraphScrollback) Len() int {
	return len(p.history)
}

func (p *ParagraphScrollback) resolve(index int) ([]Cell, bool) {
	if index < 0 || index >= len(p.history) {
		return nil, false
	}
	hl := p.history[index]
	if hl.Tag == InvalidTag {
		// still-pending paragraph: read straight from the assembly buffer
		offset := hl.Segment * p.cols
		if offset >= len(p.pending) {
			return make([]Cell, p.cols), hl.Wrapped
		}
		end := offset + p.cols
		if end > len(p.pending) {
			end = len(p.pending)
		}
		seg := make([]Cell, p.cols)
		copy(seg, p.pending[offset:end])
		for i := end - offset; i < p.cols; i++ {
			seg[i] = NewCell()
		}
		return seg, hl.Wrapped
	}
	seg, _ := p.dedupe.LookupSegment(hl.Tag, hl.Segment*p.cols, p.cols)
	return seg, hl.Wrapped
}

func (p *ParagraphScrollback) Line(index int) []Cell {
	cells, _ := p.resolve(index)
	return cells
}

func (p *ParagraphScrollback) IsWrapped(index int) bool {
	_, wrapped := p.resolve(index)
	return wrapped
}

func (p *ParagraphScrollback) Clear() {
	for _, hl := range p.history {
		if hl.Tag != InvalidTag {
			p.dedupe.Remove(hl.Tag)
		}
	}
	p.history = nil
	p.pending = nil
	p.pendingOpen = false
	p.lostTags = 0
}

func (p *ParagraphScrollback) SetMaxLines(max int) {
	p.maxLines = max
	p.enforceLimit()
}

func (p *ParagraphScrollback) MaxLines() int {
	return p.maxLines
}

// enforceLimit evicts the oldest HLine rows until history fits maxLines.
// A paragraph's dedupe entry is only released once every HLine referencing
// its Tag has been evicted.
func (p *ParagraphScrollback) enforceLimit() {
	if p.maxLines <= 0 {
		return
	}
	for len(p.history) > p.maxLines {
		oldest := p.history[0]
		p.history = p.history[1:]
		p.lostTags++

		if p.logger != nil {
			p.logger.Warn("scrollback history limit reached, evicting oldest line", "maxLines", p.maxLines, "lostTags", p.lostTags)
		}

		if oldest.Tag == InvalidTag {
			continue
		}
		stillReferenced := false
		for _, hl := range p.history {
			if hl.Tag == oldest.Tag {
				stillReferenced = true
				break
			}
		}
		if !stillReferenced {
			p.dedupe.Remove(oldest.Tag)
		}
	}
}

// Paragraphs returns the distinct Tags referenced by history, oldest first,
// deduplicated so each paragraph appears once regardless of how many rows
// it spans. Used by reflow and Terminal.Close to walk whole paragraphs
// instead of individual rows. The most recent paragraph is omitted while it is still
// open (not yet finalized with a newline); callers that need its content
// too should consult PendingCells.
func (p *ParagraphScrollback) Paragraphs() []Tag {
	var tags []Tag
	for _, hl := range p.history {
		if hl.Segment == 0 && hl.Tag != InvalidTag {
			tags = append(tags, hl.Tag)
		}
	}
	return tags
}

// PendingOpen reports whether the most recent paragraph in history has not
// yet been finalized (its continuation may still be arriving via Push).
func (p *ParagraphScrollback) PendingOpen() bool {
	return p.pendingOpen
}

// PendingCells returns a copy of the cells accumulated so far for the
// still-open trailing paragraph, or nil if none is open. Reflow uses this
// to stitch a paragraph's history-resident prefix onto its still-active
// continuation instead of losing it to enforceLimit bookkeeping.
func (p *ParagraphScrollback) PendingCells() []Cell {
	if !p.pendingOpen {
		return nil
	}
	out := make([]Cell, len(p.pending))
	copy(out, p.pending)
	return out
}

// ParagraphAt returns the Tag and row span [start, start+rows) in history
// for the paragraph containing the given history index.
func (p *ParagraphScrollback) ParagraphAt(index int) (tag Tag, start, rows int) {
	if index < 0 || index >= len(p.history) {
		return InvalidTag, 0, 0
	}
	start = index - p.history[index].Segment
	tag = p.history[index].Tag
	end := index
	for end+1 < len(p.history) && p.history[end].Wrapped {
		end++
	}
	return tag, start, end - start + 1
}

// Paragraph returns the full cell content stored under tag.
func (p *ParagraphScrollback) Paragraph(tag Tag) []Cell {
	return p.dedupe.Lookup(tag)
}

// ByteStats reports deduplication effectiveness across all stored history.
func (p *ParagraphScrollback) ByteStats() (unique, total int64) {
	return p.dedupe.ByteStats()
}

var _ ScrollbackProvider = (*ParagraphScrollback)(nil)
