package loan

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"html/template"
	"log"
	"strings"
	"time"

	domain "publizon-loans/internal/domain/loan"
	"publizon-loans/internal/view/loancard"
)

var ErrInvalidInput = errors.New("invalid input")

// CardCache stores rendered cards per loan id.
type CardCache interface {
	Get(ctx context.Context, loanID string) (string, bool, error)
	Set(ctx context.Context, loanID, html string) error
	Invalidate(ctx context.Context, loanID string) error
}

type Usecase struct {
	repo   domain.Repository
	covers CoverStyler
	cards  *loancard.Renderer
	cache  CardCache
	now    func() time.Time
}

type Option func(*Usecase)

// WithCache enables caching of single rendered cards.
func WithCache(c CardCache) Option { return func(u *Usecase) { u.cache = c } }

func WithClock(now func() time.Time) Option { return func(u *Usecase) { u.now = now } }

func NewUsecase(r domain.Repository, covers CoverStyler, cards *loancard.Renderer, opts ...Option) *Usecase {
	u := &Usecase{
		repo:   r,
		covers: covers,
		cards:  cards,
		now:    func() time.Time { return time.Now().UTC() },
	}
	for _, o := range opts {
		o(u)
	}
	return u
}

func (u *Usecase) Get(ctx context.Context, loanID string) (*LoanDTO, error) {
	l, err := u.repo.GetByLoanID(ctx, loanID)
	if err != nil {
		return nil, err
	}
	now := u.now()
	return &LoanDTO{
		LoanID:       l.LoanID,
		PatronID:     l.PatronID,
		TingObjectID: l.TingObjectID,
		Title:        l.Title,
		Authors:      l.Authors,
		CoverURL:     u.covers.URL(l.CoverPath, loancard.DefaultCoverStyle),
		ExpiresAt:    l.ExpiresAt,
		ExpiresIn:    l.ExpiresInAt(now),
		Expired:      l.Expired(now),
	}, nil
}

// RenderCard renders the card of a single loan.
func (u *Usecase) RenderCard(ctx context.Context, loanID string) (string, error) {
	if u.cache != nil {
		html, ok, err := u.cache.Get(ctx, loanID)
		if err != nil {
			log.Printf("card cache get %s: %v", loanID, err)
		} else if ok {
			return html, nil
		}
	}

	l, err := u.repo.GetByLoanID(ctx, loanID)
	if err != nil {
		return "", err
	}
	html, err := u.renderLoan(l, u.now())
	if err != nil {
		return "", err
	}

	if u.cache != nil {
		if err := u.cache.Set(ctx, loanID, html); err != nil {
			log.Printf("card cache set %s: %v", loanID, err)
		}
	}
	return html, nil
}

// InvalidateCard drops the cached card of an existing loan so the next
// RenderCard renders it again. It is a no-op without a cache.
func (u *Usecase) InvalidateCard(ctx context.Context, loanID string) error {
	if _, err := u.repo.GetByLoanID(ctx, loanID); err != nil {
		return err
	}
	if u.cache == nil {
		return nil
	}
	if err := u.cache.Invalidate(ctx, loanID); err != nil {
		return fmt.Errorf("invalidate card %s: %w", loanID, err)
	}
	return nil
}

// RenderPatronLoans renders every active loan of a patron as a list of cards.
func (u *Usecase) RenderPatronLoans(ctx context.Context, patronID string) (string, error) {
	now := u.now()
	loans, err := u.repo.ListActiveByPatronID(ctx, patronID, now)
	if err != nil {
		return "", err
	}

	cards := make([]string, 0, len(loans))
	for i := range loans {
		html, err := u.renderLoan(&loans[i], now)
		if err != nil {
			return "", fmt.Errorf("render loan %s: %w", loans[i].LoanID, err)
		}
		cards = append(cards, html)
	}

	var buf bytes.Buffer
	if err := u.cards.RenderList(&buf, cards); err != nil {
		return "", err
	}
	return buf.String(), nil
}

// Preview renders a card from caller supplied values without touching storage.
func (u *Usecase) Preview(ctx context.Context, in PreviewInput) (string, error) {
	if strings.TrimSpace(in.TingObjectID) == "" || strings.TrimSpace(in.Title) == "" {
		return "", ErrInvalidInput
	}
	return u.cards.RenderString(loancard.Card{
		Loan:    staticLoan{in: in},
		Title:   loancard.Text(in.Title),
		Authors: loancard.Text(in.Authors),
		Actions: template.HTML(loancard.ActionsPolicy().Sanitize(in.Actions)),
	})
}

func (u *Usecase) renderLoan(l *domain.Loan, now time.Time) (string, error) {
	actions, err := u.cards.RenderActions(loancard.Actions{
		DownloadURL: l.DownloadURL,
		Expired:     l.Expired(now),
	})
	if err != nil {
		return "", err
	}
	return u.cards.RenderString(loancard.Card{
		Loan:    loanView{l: l, covers: u.covers, now: now},
		Title:   loancard.Text(l.Title),
		Authors: loancard.Text(l.Authors),
		Actions: actions,
	})
}
