// Package ports defines the contracts between the ordering core and its infrastructure:
// order storage, catalog lookup, catalog storage and order event publishing.
// These interfaces enable dependency inversion and testability.
package ports
