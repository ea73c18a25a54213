package monitor

import (
	"sync/atomic"
	"time"
)

// StatusBoard maps account identity to the latest StatusRecord. The key
// set is fixed at construction; each key has exactly one writer (its
// NodeWorker) for the life of the process, so publication is a single
// atomic pointer swap and readers always see a complete record.
type StatusBoard struct {
	order []string
	slots map[string]*boardSlot
}

type boardSlot struct {
	rec atomic.Pointer[StatusRecord]
}

// NewStatusBoard creates a board for the given account identities, in the
// order snapshots should present them. Every slot is seeded with a
// connecting record so the table shows all accounts immediately.
func NewStatusBoard(accounts []string) *StatusBoard {
	b := &StatusBoard{
		order: make([]string, len(accounts)),
		slots: make(map[string]*boardSlot, len(accounts)),
	}
	copy(b.order, accounts)

	now := time.Now()
	for _, id := range accounts {
		slot := &boardSlot{}
		slot.rec.Store(&StatusRecord{
			Account:  id,
			Proxy:    ProxyNone,
			Status:   StatusConnecting,
			Observed: now,
		})
		b.slots[id] = slot
	}
	return b
}

// Publish replaces the record for its account. Records for unknown
// accounts are dropped. Callers must be the sole writer for the record's
// account key.
func (b *StatusBoard) Publish(rec StatusRecord) {
	slot, ok := b.slots[rec.Account]
	if !ok {
		return
	}
	slot.rec.Store(&rec)
}

// Get returns the current record for one account.
func (b *StatusBoard) Get(account string) (StatusRecord, bool) {
	slot, ok := b.slots[account]
	if !ok {
		return StatusRecord{}, false
	}
	return *slot.rec.Load(), true
}

// Snapshot returns the current record for every account, in board order.
// Each record is read atomically; the slice is a copy the caller owns.
func (b *StatusBoard) Snapshot() []StatusRecord {
	out := make([]StatusRecord, 0, len(b.order))
	for _, id := range b.order {
		out = append(out, *b.slots[id].rec.Load())
	}
	return out
}

// ActiveCount returns how many accounts are currently polling.
func (b *StatusBoard) ActiveCount() int {
	n := 0
	for _, id := range b.order {
		if b.slots[id].rec.Load().Status == StatusActive {
			n++
		}
	}
	return n
}

// Size returns the number of accounts on the board.
func (b *StatusBoard) Size() int {
	return len(b.order)
}
