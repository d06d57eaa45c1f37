package loan

import (
	"context"
	"time"
)

type Repository interface {
	Create(ctx context.Context, l *Loan) error
	GetByLoanID(ctx context.Context, loanID string) (*Loan, error)
	// ListActiveByPatronID returns loans not yet expired at now, soonest expiry first.
	ListActiveByPatronID(ctx context.Context, patronID string, now time.Time) ([]Loan, error)
	Save(ctx context.Context, l *Loan) error
}
