package loan

import (
	"errors"
	"time"

	"github.com/dustin/go-humanize"
	"gorm.io/gorm"
)

var ErrNotFound = errors.New("loan not found")

// ExpiredText is shown instead of a countdown once the loan period is over.
const ExpiredText = "Expired"

// Loan is an e-book loan as synced from the lending platform.
type Loan struct {
	ID           uint64         `gorm:"primaryKey;column:id" json:"-"`
	LoanID       string         `gorm:"size:32;uniqueIndex:ux_loans_loan_id_active" json:"loan_id"`
	PatronID     string         `gorm:"size:32;index:idx_loans_patron_active" json:"patron_id"`
	TingObjectID string         `gorm:"size:64;column:ting_object_id" json:"ting_object_id"`
	ISBN         string         `gorm:"size:17;column:isbn" json:"isbn"`
	Title        string         `gorm:"type:text" json:"title"`
	Authors      string         `gorm:"type:text" json:"authors"`
	CoverPath    string         `gorm:"type:text" json:"cover_path"`
	DownloadURL  string         `gorm:"type:text" json:"download_url"`
	LoanedAt     time.Time      `json:"loaned_at"`
	ExpiresAt    time.Time      `gorm:"index:idx_loans_patron_active" json:"expires_at"`
	CreatedAt    time.Time      `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt    time.Time      `gorm:"autoUpdateTime" json:"updated_at"`
	DeletedAt    gorm.DeletedAt `gorm:"index" json:"-"`
}

func (Loan) TableName() string { return "loans" }

func (l *Loan) Expired(now time.Time) bool { return !l.ExpiresAt.After(now) }

// ExpiresInAt is the countdown text relative to now, e.g. "2 days left".
func (l *Loan) ExpiresInAt(now time.Time) string {
	if l.Expired(now) {
		return ExpiredText
	}
	return humanize.RelTime(l.ExpiresAt, now, "ago", "left")
}
