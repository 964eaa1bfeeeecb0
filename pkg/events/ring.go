package events

// catchupRing is a bounded FIFO of marshaled envelopes for one
// commander channel. Not safe for concurrent use; the hub guards all
// rings with ringMu.
type catchupRing struct {
	capacity   int
	entries    []ringEntry
	evictedMax int64 // highest seq dropped from the ring, 0 if none
}

type ringEntry struct {
	seq  int64
	data []byte
}

func newCatchupRing(capacity int) *catchupRing {
	return &catchupRing{
		capacity: capacity,
		entries:  make([]ringEntry, 0, capacity),
	}
}

// add appends one envelope, evicting the oldest when full. Sequence
// numbers are assigned by the orchestrator and arrive increasing but
// not dense, since one counter spans all commanders.
func (r *catchupRing) add(seq int64, data []byte) {
	if len(r.entries) >= r.capacity {
		r.evictedMax = r.entries[0].seq
		copy(r.entries, r.entries[1:])
		r.entries = r.entries[:len(r.entries)-1]
	}
	r.entries = append(r.entries, ringEntry{seq: seq, data: data})
}

// since returns the retained envelopes with seq greater than sinceSeq,
// oldest first, and whether any event the caller has not seen was
// already evicted. Callers hitting lost=true need a full REST reload.
func (r *catchupRing) since(sinceSeq int64) (out [][]byte, lost bool) {
	for _, e := range r.entries {
		if e.seq > sinceSeq {
			out = append(out, e.data)
		}
	}
	return out, r.evictedMax > sinceSeq
}
