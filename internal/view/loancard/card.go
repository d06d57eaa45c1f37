// Package loancard renders the loan summary card shown on a patron's loans
// page: cover thumbnail linked to the catalogue object, title, authors,
// loan countdown and an actions slot.
package loancard

import (
	"bytes"
	"embed"
	"errors"
	"html/template"
	"io"
	"net/url"
	"strings"
	texttemplate "text/template"
)

//go:embed templates/*.html
var templateFS embed.FS

const (
	cardTemplate    = "loan_card.html"
	actionsTemplate = "loan_actions.html"
	listTemplate    = "loan_list.html"

	// DefaultCoverStyle is the image style used for the card thumbnail.
	DefaultCoverStyle = "65_x"

	objectRoute = "ting/object/"
)

var ErrNilLoan = errors.New("loancard: nil loan")

// Product is the loaned item as seen by the card. The cover URL is written
// into the src attribute as is.
type Product interface {
	TingObjectID() string
	Cover(size string) string
}

// Loan is a read-only view of a loan record owned by the caller. ExpiresIn
// is markup and is written as is.
type Loan interface {
	Product() Product
	ExpiresIn() string
}

// Card holds the inputs of one rendered card. Every value, including the
// loan's cover URL and expiry text, is emitted verbatim, so the caller is
// responsible for escaping them.
type Card struct {
	Loan    Loan
	Title   template.HTML
	Authors template.HTML
	Actions template.HTML
}

// Actions is the data for the default actions fragment.
type Actions struct {
	DownloadURL string
	Expired     bool
}

type cardData struct {
	ObjectURL string
	CoverURL  string
	Title     template.HTML
	Authors   template.HTML
	ExpiresIn string
	Actions   template.HTML
}

type listData struct {
	Cards []template.HTML
	Empty string
}

type Option func(*Renderer)

// WithBasePath prefixes object links the way the site url() helper does,
// e.g. "/" or "/library/".
func WithBasePath(p string) Option {
	return func(r *Renderer) { r.basePath = p }
}

func WithCoverStyle(style string) Option {
	return func(r *Renderer) {
		if style != "" {
			r.coverStyle = style
		}
	}
}

func WithEmptyText(s string) Option {
	return func(r *Renderer) { r.emptyText = s }
}

// Renderer is immutable after New and safe for concurrent use.
type Renderer struct {
	// card is a text template: its inputs arrive escaped.
	card       *texttemplate.Template
	tmpl       *template.Template
	basePath   string
	coverStyle string
	emptyText  string
}

func New(opts ...Option) (*Renderer, error) {
	card, err := texttemplate.ParseFS(templateFS, "templates/"+cardTemplate)
	if err != nil {
		return nil, err
	}
	tmpl, err := template.ParseFS(templateFS, "templates/"+actionsTemplate, "templates/"+listTemplate)
	if err != nil {
		return nil, err
	}
	r := &Renderer{
		card:       card,
		tmpl:       tmpl,
		coverStyle: DefaultCoverStyle,
		emptyText:  "You have no loans.",
	}
	for _, o := range opts {
		o(r)
	}
	return r, nil
}

// ObjectURL returns the site link of a catalogue object.
func (r *Renderer) ObjectURL(tingObjectID string) string {
	base := r.basePath
	if base != "" && !strings.HasSuffix(base, "/") {
		base += "/"
	}
	return base + objectRoute + url.PathEscape(tingObjectID)
}

// Render writes the card markup for c to w.
func (r *Renderer) Render(w io.Writer, c Card) error {
	if c.Loan == nil {
		return ErrNilLoan
	}
	p := c.Loan.Product()
	if p == nil {
		return ErrNilLoan
	}
	return r.card.ExecuteTemplate(w, cardTemplate, cardData{
		ObjectURL: r.ObjectURL(p.TingObjectID()),
		CoverURL:  p.Cover(r.coverStyle),
		Title:     c.Title,
		Authors:   c.Authors,
		ExpiresIn: c.Loan.ExpiresIn(),
		Actions:   c.Actions,
	})
}

func (r *Renderer) RenderString(c Card) (string, error) {
	var buf bytes.Buffer
	if err := r.Render(&buf, c); err != nil {
		return "", err
	}
	return buf.String(), nil
}

// RenderActions renders the default actions fragment: a download link for
// active loans and an expired marker otherwise.
func (r *Renderer) RenderActions(a Actions) (template.HTML, error) {
	var buf bytes.Buffer
	if err := r.tmpl.ExecuteTemplate(&buf, actionsTemplate, a); err != nil {
		return "", err
	}
	return template.HTML(buf.String()), nil
}

// RenderList wraps already rendered cards in the loans list markup.
func (r *Renderer) RenderList(w io.Writer, cards []string) error {
	data := listData{Empty: r.emptyText}
	for _, c := range cards {
		data.Cards = append(data.Cards, template.HTML(c))
	}
	return r.tmpl.ExecuteTemplate(w, listTemplate, data)
}

// Text escapes plain text for use as Title or Authors.
func Text(s string) template.HTML {
	return template.HTML(template.HTMLEscapeString(s))
}
