package indemnity

import (
	"context"

	"github.com/shopspring/decimal"
)

// IndemnityRepository defines data access methods for indemnity records.
type IndemnityRepository interface {
	// UpsertCalculation creates the employee's record or updates years and
	// amount in place. Status defaults to Active on insert and is preserved
	// on update; a Paid record is never flipped back.
	UpsertCalculation(ctx context.Context, empID string, years, amount decimal.Decimal) (Record, error)

	GetByEmpID(ctx context.Context, empID string) (Record, error)
	List(ctx context.Context) ([]Record, error)

	// MarkPaid flips status to Paid. The flip is one-way.
	MarkPaid(ctx context.Context, empID string) (Record, error)
}
