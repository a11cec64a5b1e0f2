package vterm

import "sync"

// AsyncDestroyer removes evicted scrollback tags from a Deduper on a
// background goroutine, so that trimming history to MaxLines does not wait
// on storage I/O (which, for a disk- or network-backed Deduper, can be
// arbitrarily slow) unless its bounded queue is full.
type AsyncDestroyer struct {
	dedupe Deduper
	queue  chan Tag
	done   chan struct{}
	once   sync.Once
}

// NewAsyncDestroyer starts a worker goroutine draining tag removals against
// dedupe. capacity bounds the pending queue; Enqueue blocks once it fills,
// which applies natural backpressure to eviction-heavy callers instead of
// growing memory without bound.
func NewAsyncDestroyer(dedupe Deduper, capacity int) *AsyncDestroyer {
	if capacity <= 0 {
		capacity = 256
	}
	d := &AsyncDestroyer{
		dedupe: dedupe,
		queue:  make(chan Tag, capacity),
		done:   make(chan struct{}),
	}
	go d.run()
	return d
}

func (d *AsyncDestroyer) run() {
	for tag := range d.queue {
		d.dedupe.Remove(tag)
	}
	close(d.done)
}

// Enqueue schedules tag for removal. Safe to call from any goroutine.
func (d *AsyncDestroyer) Enqueue(tag Tag) {
	if tag == InvalidTag {
		return
	}
	d.queue <- tag
}

// Close stops accepting new work and blocks until the queue drains.
func (d *AsyncDestroyer) Close() {
	d.once.Do(func() {
		close(d.queue)
	})
	<-d.done
}

// asyncDedupe wraps a Deduper so that Remove is handed off to an
// AsyncDestroyer instead of running synchronously on the caller's
// goroutine. Store/Lookup/etc. still go straight to the underlying Deduper.
type asyncDedupe struct {
	Deduper
	destroyer *AsyncDestroyer
}

// NewAsyncDeduper wraps dedupe so Remove calls are queued for background
// processing rather than executed inline.
func NewAsyncDeduper(dedupe Deduper, queueCapacity int) Deduper {
	return &asyncDedupe{
		Deduper:   dedupe,
		destroyer: NewAsyncDestroyer(dedupe, queueCapacity),
	}
}

func (a *asyncDedupe) Remove(tag Tag) {
	a.destroyer.Enqueue(tag)
}

var _ Deduper = (*asyncDedupe)(nil)
