package queries

import (
	"errors"
	"time"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/pkg/errs"
	"dispatch/internal/pkg/guard"
)

var ErrGetDispatchBoardQueryIsNotConstructed = errors.New(
	"GetDispatchBoardQuery must be created via NewGetDispatchBoardQuery constructor",
)

// GetDispatchBoardQuery retrieves the live dispatch board: every executing
// order with its completion estimate, progress and delay alert, all
// evaluated at an explicit instant so the board renders the same for the
// same input.
type GetDispatchBoardQuery struct { //nolint:recvcheck //using for validation
	now time.Time

	guard guard.ConstructorGuard
}

// NewGetDispatchBoardQuery creates a query evaluating the board at the
// given instant.
func NewGetDispatchBoardQuery(now time.Time) (GetDispatchBoardQuery, error) {
	if now.IsZero() {
		return GetDispatchBoardQuery{}, errs.NewValueIsRequiredError("now")
	}

	return GetDispatchBoardQuery{
		now:   now,
		guard: guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetDispatchBoardQuery) Validate() error {
	return q.guard.Validate(ErrGetDispatchBoardQueryIsNotConstructed)
}

// Now returns the evaluation instant.
func (q GetDispatchBoardQuery) Now() time.Time {
	return q.now
}

// GetDispatchBoardQueryResponse is one executing order on the board,
// decorated with the analyzer's verdict.
type GetDispatchBoardQueryResponse struct {
	ID                       kernel.UUID
	OrderNumber              string
	CompanyName              string
	Quantity                 float64
	Status                   string
	StartTime                *time.Time
	EstimatedDurationMinutes float64
	EstimatedEndTime         time.Time
	AlertLevel               string
	AlertMessage             string
	Progress                 int
}
