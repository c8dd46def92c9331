package food

import (
	"ordering/internal/core/domain/model/kernel"
)

// Snapshot is an immutable copy of the catalog data needed for one order creation decision.
type Snapshot struct {
	id        int64
	price     kernel.Money
	available bool
}

// NewSnapshot creates a snapshot of a catalog entry.
func NewSnapshot(id int64, price kernel.Money, available bool) Snapshot {
	return Snapshot{
		id:        id,
		price:     price,
		available: available,
	}
}

// ID returns the catalog id of the food item.
func (s Snapshot) ID() int64 {
	return s.id
}

// Price returns the unit price captured at lookup time.
func (s Snapshot) Price() kernel.Money {
	return s.price
}

// Available reports whether the item could be ordered at lookup time.
func (s Snapshot) Available() bool {
	return s.available
}

// Snapshots indexes a batch lookup result by food id. Lookups never depend on the
// order in which the catalog returned the entries.
type Snapshots map[int64]Snapshot

// IndexSnapshots builds a Snapshots index. When the catalog returns the same id more
// than once the last entry wins.
func IndexSnapshots(items []Snapshot) Snapshots {
	index := make(Snapshots, len(items))
	for _, s := range items {
		index[s.id] = s
	}
	return index
}

// Find returns the snapshot for id and whether it was present in the lookup result.
func (s Snapshots) Find(id int64) (Snapshot, bool) {
	snapshot, ok := s[id]
	return snapshot, ok
}
