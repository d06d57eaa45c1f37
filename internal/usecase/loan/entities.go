package loan

import "time"

type LoanDTO struct {
	LoanID       string    `json:"loan_id"`
	PatronID     string    `json:"patron_id"`
	TingObjectID string    `json:"ting_object_id"`
	Title        string    `json:"title"`
	Authors      string    `json:"authors"`
	CoverURL     string    `json:"cover_url"`
	ExpiresAt    time.Time `json:"expires_at"`
	ExpiresIn    string    `json:"expires_in"`
	Expired      bool      `json:"expired"`
}

// PreviewInput renders a card from caller supplied values. Title and Authors
// are plain text; Actions is markup and goes through the actions policy.
type PreviewInput struct {
	TingObjectID string `json:"ting_object_id"`
	CoverURL     string `json:"cover_url"`
	Title        string `json:"title"`
	Authors      string `json:"authors"`
	ExpiresIn    string `json:"expires_in"`
	Actions      string `json:"actions"`
}
