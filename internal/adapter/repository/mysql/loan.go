package mysql

import (
	"context"
	"errors"
	"time"

	loanDomain "publizon-loans/internal/domain/loan"
	"publizon-loans/pkg/id"

	"gorm.io/gorm"
)

type LoanRepository struct{ db *gorm.DB }

func NewLoanRepository(db *gorm.DB) *LoanRepository { return &LoanRepository{db: db} }

// AutoMigrate creates the loans table; production MySQL schemas are managed by migrations.
func AutoMigrate(db *gorm.DB) error { return db.AutoMigrate(&loanDomain.Loan{}) }

// Create stores l, assigning a public loan id when none is set.
func (r *LoanRepository) Create(ctx context.Context, l *loanDomain.Loan) error {
	if l.LoanID == "" {
		l.LoanID = id.NewID32()
	}
	return r.db.WithContext(ctx).Create(l).Error
}

func (r *LoanRepository) Save(ctx context.Context, l *loanDomain.Loan) error {
	return r.db.WithContext(ctx).Save(l).Error
}

func (r *LoanRepository) GetByLoanID(ctx context.Context, loanID string) (*loanDomain.Loan, error) {
	var out loanDomain.Loan
	err := r.db.WithContext(ctx).Where("loan_id = ?", loanID).First(&out).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, loanDomain.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &out, nil
}

func (r *LoanRepository) ListActiveByPatronID(ctx context.Context, patronID string, now time.Time) ([]loanDomain.Loan, error) {
	var out []loanDomain.Loan
	err := r.db.WithContext(ctx).
		Where("patron_id = ? AND expires_at > ?", patronID, now).
		Order("expires_at ASC, id ASC").
		Find(&out).Error
	return out, err
}
