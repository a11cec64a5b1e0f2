package vterm

import "testing"

func makeCells(s string) []Cell {
	cells := make([]Cell, len(s))
	for i, r := range s {
		c := NewCell()
		c.Char = r
		cells[i] = c
	}
	return cells
}

func TestMemoryDeduperStoreLookup(t *testing.T) {
	d := NewMemoryDeduper()

	tag := d.Store(makeCells("hello"))
	if tag == InvalidTag {
		t.Fatal("Store returned InvalidTag for non-empty content")
	}

	got := d.Lookup(tag)
	if cellsText(got) != "hello" {
		t.Fatalf("Lookup = %q, want %q", cellsText(got), "hello")
	}
}

func TestMemoryDeduperContentAddressing(t *testing.T) {
	d := NewMemoryDeduper()

	tag1 := d.Store(makeCells("repeat"))
	tag2 := d.Store(makeCells("repeat"))

	unique, total := d.ByteStats()
	if total != 2*unique {
		t.Fatalf("expected total to be 2x unique bytes for a duplicate store, got unique=%d total=%d", unique, total)
	}

	// Removing one reference must not invalidate the other.
	d.Remove(tag1)
	if got := d.Lookup(tag2); cellsText(got) != "repeat" {
		t.Fatalf("Lookup(tag2) after Remove(tag1) = %q, want %q", cellsText(got), "repeat")
	}
}

func TestMemoryDeduperRemoveFreesStorage(t *testing.T) {
	d := NewMemoryDeduper()
	tag := d.Store(makeCells("gone"))
	d.Remove(tag)

	if got := d.Lookup(tag); got != nil {
		t.Fatalf("Lookup after last Remove = %v, want nil", got)
	}
	unique, _ := d.ByteStats()
	if unique != 0 {
		t.Fatalf("ByteStats unique after freeing all entries = %d, want 0", unique)
	}
}

func TestMemoryDeduperLookupSegment(t *testing.T) {
	d := NewMemoryDeduper()
	tag := d.Store(makeCells("abcdefgh"))

	seg, cont := d.LookupSegment(tag, 0, 4)
	if cellsText(seg) != "abcd" || !cont {
		t.Fatalf("first segment = %q cont=%v, want %q cont=true", cellsText(seg), cont, "abcd")
	}

	seg, cont = d.LookupSegment(tag, 4, 4)
	if cellsText(seg) != "efgh" || cont {
		t.Fatalf("last segment = %q cont=%v, want %q cont=false", cellsText(seg), cont, "efgh")
	}
}

func TestMemoryDeduperInvalidTagIsNoop(t *testing.T) {
	d := NewMemoryDeduper()
	if got := d.Lookup(InvalidTag); got != nil {
		t.Fatalf("Lookup(InvalidTag) = %v, want nil", got)
	}
	if got := d.Length(InvalidTag); got != 0 {
		t.Fatalf("Length(InvalidTag) = %d, want 0", got)
	}
	d.Remove(InvalidTag) // must not panic
}

func TestMemoryDeduperEmptyStoreReturnsInvalidTag(t *testing.T) {
	d := NewMemoryDeduper()
	if tag := d.Store(nil); tag != InvalidTag {
		t.Fatalf("Store(nil) = %v, want InvalidTag", tag)
	}
}
