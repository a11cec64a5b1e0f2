package vterm

import (
	"image/color"
	"strings"
	"sync"
)

// Tag is an opaque handle returned by a Deduper when a paragraph is stored.
// Each Store returns a new Tag; Tags for equal content share one stored
// copy while any of them survives, which is what makes storage at-most-once.
type Tag uint64

// InvalidTag marks a paragraph still being assembled (its trailing line has
// not been finalized with a newline yet), so it has nothing to store.
const InvalidTag Tag = 0

// Deduper is the external storage boundary for scrollback paragraphs. A
// terminal core has no business deciding how or where history is persisted;
// it only needs to store and retrieve byte-identical paragraphs without
// paying to store duplicates twice. Implementations may back this with
// memory, disk, or a remote content store.
type Deduper interface {
	// Store saves cells as a single paragraph and returns a new Tag for it.
	// If an equal paragraph is already stored, the new Tag shares that copy
	// (refcounted) rather than storing a second one.
	Store(cells []Cell) Tag
	// Lookup returns a copy of the paragraph stored under tag, or nil if
	// the tag is unknown.
	Lookup(tag Tag) []Cell
	// LookupSegment returns cols cells starting at offset within the
	// paragraph stored under tag (MemoryDeduper copies the whole paragraph
	// to cut the segment). cont reports whether the paragraph continues past this
	// segment (i.e. this is not its last row at this width).
	LookupSegment(tag Tag, offset, cols int) (cells []Cell, cont bool)
	// Length returns the number of cells stored under tag, or 0 if unknown.
	Length(tag Tag) int
	// Remove drops one reference to tag. When the last reference to a
	// given paragraph's content is removed, its storage is freed. Remove
	// is idempotent and safe to call from any goroutine.
	Remove(tag Tag)
	// ByteStats reports the unique bytes physically stored versus the
	// total bytes that would be stored without deduplication.
	ByteStats() (unique, total int64)
}

// dedupEntry is one physically-stored, content-addressed paragraph.
type dedupEntry struct {
	cells    []Cell
	refcount int
}

// MemoryDeduper is an in-memory, content-addressed Deduper. It is the
// reference storage backend: production deployments are expected to supply
// their own (disk-backed, remote, etc.) implementation of Deduper, exactly
// as a caller supplies its own ScrollbackProvider.
type MemoryDeduper struct {
	mu      sync.Mutex
	entries map[string]*dedupEntry
	byTag   map[Tag]string
	nextTag Tag
}

// NewMemoryDeduper creates an empty in-memory deduper.
func NewMemoryDeduper() *MemoryDeduper {
	return &MemoryDeduper{
		entries: make(map[string]*dedupEntry),
		byTag:   make(map[Tag]string),
	}
}

// cellKey builds a canonical string key for content-addressing a paragraph.
// Colors are resolved to RGBA before hashing, so two differently-represented
// colors that render identically collapse into the same stored paragraph;
// that is a feature here, not a collision bug.
func cellKey(cells []Cell) string {
	var b strings.Builder
	b.Grow(len(cells) * 12)
	for _, c := range cells {
		b.WriteRune(c.Char)
		writeRGBAKey(&b, resolveDefaultColor(c.Fg, true))
		writeRGBAKey(&b, resolveDefaultColor(c.Bg, false))
		b.WriteByte(byte(c.Flags))
		b.WriteByte(byte(c.Flags >> 8))
		if c.Hyperlink != nil {
			b.WriteByte(1)
			b.WriteString(c.Hyperlink.URI)
		}
		b.WriteByte(0xff)
	}
	return b.String()
}

func writeRGBAKey(b *strings.Builder, c color.RGBA) {
	b.WriteByte(c.R)
	b.WriteByte(c.G)
	b.WriteByte(c.B)
	b.WriteByte(c.A)
}

func (d *MemoryDeduper) Store(cells []Cell) Tag {
	if len(cells) == 0 {
		return InvalidTag
	}
	key := cellKey(cells)

	d.mu.Lock()
	defer d.mu.Unlock()

	if entry, ok := d.entries[key]; ok {
		entry.refcount++
	} else {
		cp := make([]Cell, len(cells))
		copy(cp, cells)
		d.entries[key] = &dedupEntry{cells: cp, refcount: 1}
	}

	d.nextTag++
	tag := d.nextTag
	d.byTag[tag] = key
	return tag
}

func (d *MemoryDeduper) Lookup(tag Tag) []Cell {
	if tag == InvalidTag {
		return nil
	}
	d.mu.Lock()
	defer d.mu.Unlock()

	key, ok := d.byTag[tag]
	if !ok {
		return nil
	}
	entry, ok := d.entries[key]
	if !ok {
		return nil
	}
	out := make([]Cell, len(entry.cells))
	copy(out, entry.cells)
	return out
}

func (d *MemoryDeduper) LookupSegment(tag Tag, offset, cols int) ([]Cell, bool) {
	full := d.Lookup(tag)
	if full == nil {
		return nil, false
	}
	if offset >= len(full) {
		return make([]Cell, cols), false
	}
	end := offset + cols
	cont := end < len(full)
	if end > len(full) {
		end = len(full)
	}
	seg := make([]Cell, cols)
	copy(seg, full[offset:end])
	for i := end - offset; i < cols; i++ {
		seg[i] = NewCell()
	}
	return seg, cont
}

func (d *MemoryDeduper) Length(tag Tag) int {
	if tag == InvalidTag {
		return 0
	}
	d.mu.Lock()
	defer d.mu.Unlock()
	key, ok := d.byTag[tag]
	if !ok {
		return 0
	}
	entry, ok := d.entries[key]
	if !ok {
		return 0
	}
	return len(entry.cells)
}

func (d *MemoryDeduper) Remove(tag Tag) {
	if tag == InvalidTag {
		return
	}
	d.mu.Lock()
	defer d.mu.Unlock()

	key, ok := d.byTag[tag]
	if !ok {
		return
	}
	delete(d.byTag, tag)

	entry, ok := d.entries[key]
	if !ok {
		return
	}
	entry.refcount--
	if entry.refcount <= 0 {
		delete(d.entries, key)
	}
}

func (d *MemoryDeduper) ByteStats() (unique, total int64) {
	d.mu.Lock()
	defer d.mu.Unlock()

	for _, entry := range d.entries {
		n := int64(len(entry.cells)) * cellByteSize
		unique += n
		total += n * int64(entry.refcount)
	}
	return unique, total
}

// cellByteSize is the nominal on-disk size of one Cell, used only to express
// ByteStats in bytes rather than cell counts.
const cellByteSize = 16

var _ Deduper = (*MemoryDeduper)(nil)
