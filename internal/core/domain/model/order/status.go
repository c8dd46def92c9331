package order

import (
	"fmt"

	"ordering/internal/pkg/errs"
)

// Status is the lifecycle state of an order.
//
// Status values are free-form strings: ChangeStatus accepts any value. The constants
// below are the states the system itself produces or reports on.
//
//	PENDING ──> PROCESSING ──> ...
//	   │
//	   └──> CANCELLED
type Status string

const (
	// Pending is the initial status of every new order.
	Pending Status = "PENDING"

	// Processing indicates the order is being prepared.
	Processing Status = "PROCESSING"

	// Completed indicates the order has been handed over.
	Completed Status = "COMPLETED"

	// Cancelled is reachable only from Pending through Cancel.
	Cancelled Status = "CANCELLED"
)

// KnownStatuses lists the statuses the system produces itself.
func KnownStatuses() []Status {
	return []Status{Pending, Processing, Completed, Cancelled}
}

// String returns the raw status value.
func (s Status) String() string {
	return string(s)
}

// IsKnown reports whether s is one of KnownStatuses.
func (s Status) IsKnown() bool {
	for _, known := range KnownStatuses() {
		if s == known {
			return true
		}
	}
	return false
}

// ValidateCancel checks whether an order in status s may be cancelled.
func (s Status) ValidateCancel() error {
	if s != Pending {
		return errs.NewPreconditionFailedError(fmt.Sprintf("cannot cancel order with status %s", s))
	}
	return nil
}

// Cancel transitions the status to Cancelled.
//
// Valid transitions:
//   - Pending -> Cancelled
//
// Every other source status is rejected with a PreconditionFailedError naming it.
func (s Status) Cancel() (Status, error) {
	if err := s.ValidateCancel(); err != nil {
		return s, err
	}
	return Cancelled, nil
}
