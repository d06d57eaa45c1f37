package loan

import (
	"html/template"
	"time"

	domain "publizon-loans/internal/domain/loan"
	"publizon-loans/internal/view/loancard"
)

// CoverStyler resolves a stored cover path to a URL for an image style.
type CoverStyler interface {
	URL(path, style string) string
}

// loanView adapts a stored loan to the card's read-only view. The card
// writes values as is, so they are escaped here.
type loanView struct {
	l      *domain.Loan
	covers CoverStyler
	now    time.Time
}

func (v loanView) Product() loancard.Product { return productView(v) }
func (v loanView) ExpiresIn() string {
	return template.HTMLEscapeString(v.l.ExpiresInAt(v.now))
}

type productView loanView

func (p productView) TingObjectID() string { return p.l.TingObjectID }
func (p productView) Cover(size string) string {
	return template.HTMLEscapeString(p.covers.URL(p.l.CoverPath, size))
}

// staticLoan backs previews, where every value is already resolved.
type staticLoan struct{ in PreviewInput }

func (s staticLoan) Product() loancard.Product { return s }
func (s staticLoan) ExpiresIn() string         { return template.HTMLEscapeString(s.in.ExpiresIn) }
func (s staticLoan) TingObjectID() string      { return s.in.TingObjectID }
func (s staticLoan) Cover(string) string       { return template.HTMLEscapeString(s.in.CoverURL) }
