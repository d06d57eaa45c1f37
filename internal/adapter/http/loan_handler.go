package http

import (
	"errors"
	"log"
	"net/http"

	domain "publizon-loans/internal/domain/loan"
	"publizon-loans/internal/usecase/loan"
	"publizon-loans/pkg/id"

	"github.com/labstack/echo/v4"
)

type LoanHandler struct{ uc *loan.Usecase }

func NewLoanHandler(uc *loan.Usecase) *LoanHandler { return &LoanHandler{uc: uc} }

type previewCardReq struct {
	TingObjectID string `json:"ting_object_id" validate:"required,tingid"`
	CoverURL     string `json:"cover_url"      validate:"required,url"`
	Title        string `json:"title"          validate:"required,max=500"`
	Authors      string `json:"authors"        validate:"max=500"`
	ExpiresIn    string `json:"expires_in"     validate:"required,max=100"`
	Actions      string `json:"actions"        validate:"max=4000"`
}

type loanCardReq struct {
	LoanID string `param:"loan_id" validate:"required,hex32"`
}

func (h *LoanHandler) GetLoan(c echo.Context) error {
	loanID := c.Param("loan_id")
	dto, err := h.uc.Get(c.Request().Context(), loanID)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, dto)
}

// GetLoanCard serves the card fragment of one loan.
func (h *LoanHandler) GetLoanCard(c echo.Context) error {
	loanID := c.Param("loan_id")
	if loanID == "" {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "missing loan_id path param"})
	}
	html, err := h.uc.RenderCard(c.Request().Context(), loanID)
	if err != nil {
		return writeError(c, err)
	}
	return c.HTML(http.StatusOK, html)
}

// InvalidateLoanCard drops the cached card of a loan, e.g. after the lending
// platform sync changed it.
func (h *LoanHandler) InvalidateLoanCard(c echo.Context) error {
	var req loanCardReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid params"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusUnprocessableEntity, ErrorResponse{
			Error:   "validation failed",
			Details: ToFieldErrors(err),
		})
	}
	if err := h.uc.InvalidateCard(c.Request().Context(), req.LoanID); err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, map[string]any{"loan_id": req.LoanID, "invalidated": true})
}

// ListPatronLoanCards serves the loans list of a patron.
func (h *LoanHandler) ListPatronLoanCards(c echo.Context) error {
	patronID := c.Param("patron_id")
	if !id.Valid(patronID) {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid patron_id path param"})
	}
	html, err := h.uc.RenderPatronLoans(c.Request().Context(), patronID)
	if err != nil {
		return writeError(c, err)
	}
	return c.HTML(http.StatusOK, html)
}

func (h *LoanHandler) PreviewCard(c echo.Context) error {
	var req previewCardReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusUnprocessableEntity, ErrorResponse{
			Error:   "validation failed",
			Details: ToFieldErrors(err),
		})
	}
	html, err := h.uc.Preview(c.Request().Context(), loan.PreviewInput(req))
	if err != nil {
		return writeError(c, err)
	}
	return c.HTML(http.StatusOK, html)
}

// Map domain errors → HTTP codes
func writeError(c echo.Context, err error) error {
	switch {
	case errors.Is(err, domain.ErrNotFound):
		return c.JSON(http.StatusNotFound, ErrorResponse{Error: "not found"})
	case errors.Is(err, loan.ErrInvalidInput):
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
	default:
		log.Printf("%s %s: %v", c.Request().Method, c.Path(), err)
		return c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "internal error"})
	}
}
