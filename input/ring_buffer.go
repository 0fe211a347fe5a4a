package input

import "time"

// ringBufferCapacity is the ring buffer's hard cap (spec.md §3.7: "capped at
// 32 entries").
const ringBufferCapacity = 32

// defaultBufferDuration is how long an entry remains eligible for sequence
// matching before eviction (spec.md §3.7 default).
const defaultBufferDuration = 200 * time.Millisecond

// ringEntry is one buffered edge event: a binding that just transitioned
// from unpressed to pressed, stamped with the time it occurred.
type ringEntry struct {
	binding   Binding
	timestamp time.Time
}

// ringBuffer is the capped FIFO of recent press-edge events backing
// sequence detection (spec.md §3.7, §4.G).
type ringBuffer struct {
	entries        []ringEntry
	bufferDuration time.Duration
}

func newRingBuffer() *ringBuffer {
	return &ringBuffer{bufferDuration: defaultBufferDuration}
}

// push appends a press-edge entry, dropping the oldest if the buffer is at
// capacity.
func (rb *ringBuffer) push(b Binding, now time.Time) {
	if len(rb.entries) >= ringBufferCapacity {
		rb.entries = rb.entries[1:]
	}
	rb.entries = append(rb.entries, ringEntry{binding: b, timestamp: now})
}

// evictExpired drops every entry older than bufferDuration relative to now.
func (rb *ringBuffer) evictExpired(now time.Time) {
	cutoff := 0
	for cutoff < len(rb.entries) && now.Sub(rb.entries[cutoff].timestamp) > rb.bufferDuration {
		cutoff++
	}
	if cutoff > 0 {
		rb.entries = rb.entries[cutoff:]
	}
}

// clear empties the buffer, used by ConsumeSequence on a match.
func (rb *ringBuffer) clear() { rb.entries = rb.entries[:0] }

// detect scans oldest-to-newest, advancing a cursor through sequence on
// each matching entry; unrelated entries between matches are skipped
// (spec.md §4.H sequence detection algorithm).
func (rb *ringBuffer) detect(sequence []Binding) bool {
	k := 0
	for _, e := range rb.entries {
		if k >= len(sequence) {
			break
		}
		if e.binding == sequence[k] {
			k++
		}
	}
	return k == len(sequence)
}
