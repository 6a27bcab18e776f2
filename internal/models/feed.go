package models

import "sync"

// Feed is an append-only, insertion-ordered sequence of stat records.
// One feed lives for as long as its dashboard stays attached.
type Feed struct {
	mu      sync.RWMutex
	id      string
	records []StatRecord
}

func NewFeed(id string) *Feed {
	return &Feed{
		id:      id,
		records: make([]StatRecord, 0, 16),
	}
}

func (f *Feed) ID() string {
	return f.id
}

func (f *Feed) Append(r StatRecord) int {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.records = append(f.records, r)
	return len(f.records)
}

func (f *Feed) Len() int {
	f.mu.RLock()
	defer f.mu.RUnlock()
	return len(f.records)
}

// Snapshot returns a copy of the records appended so far together with the
// length it was taken at.
func (f *Feed) Snapshot() ([]StatRecord, int) {
	f.mu.RLock()
	defer f.mu.RUnlock()
	out := make([]StatRecord, len(f.records))
	copy(out, f.records)
	return out, len(out)
}
