// Package order provides the Order aggregate of the ordering system.
//
// The package includes:
//   - Order: the aggregate root holding the user, status, total and line items
//   - Item: a line item with a unit price copied from the catalog at creation time
//   - Status: the lifecycle state of an order
//
// Key business rules:
//   - An order has at least one item and a requesting user
//   - The total is computed once, at creation, as the sum of unit price times quantity
//     and is never recomputed afterwards
//   - New orders start in PENDING
//   - Cancellation is only possible from PENDING
//   - Any other status value may be written through ChangeStatus; no further
//     transition rules are enforced
package order
