// Package kernel provides the shared value objects of the ordering domain.
//
// The package includes:
//   - UUID: identifier of orders and order items, assigned by the order store
//   - Money: an exact decimal monetary amount used for catalog prices and order totals
//
// Both are immutable and safe for concurrent use.
package kernel
