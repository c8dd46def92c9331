// Package services provides domain services that work across more than one
// domain model of the ordering system.
//
// The package includes:
//   - OrderComposer: turns requested food ids and quantities into a priced Order
//     using catalog snapshots
package services
