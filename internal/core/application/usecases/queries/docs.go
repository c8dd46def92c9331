// Package queries contains read-only operations of the ordering and catalog services.
// Implements the query side of the CQRS architecture: queries never modify state,
// so repeated calls with the same input return the same result absent an intervening write.
package queries
