// Package food models catalog entries from two points of view.
//
// The catalog service owns Food: a priced, named, categorised item that can be switched
// between available and unavailable. The ordering core only ever sees a Snapshot: the
// id, price and availability of a food item as returned by one catalog lookup. Snapshots
// are never persisted or cached by the ordering core.
package food
