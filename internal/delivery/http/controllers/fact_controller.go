package controllers

import (
	"errors"
	"log/slog"
	"net/http"

	"tourbooking/internal/delivery/http/helpers"
	"tourbooking/internal/delivery/http/middleware"
	"tourbooking/internal/domain"
)

type FactController struct {
	Logger  *slog.Logger
	Service domain.FactService
}

func NewFactController(logger *slog.Logger, svc domain.FactService) *FactController {
	return &FactController{
		Logger:  logger,
		Service: svc,
	}
}

// CreateFactRequest is the request body for POST /api/facts.
type CreateFactRequest struct {
	Category string `json:"category"`
	Text     string `json:"text"`
}

// Validate implements helpers.Validator.
func (r *CreateFactRequest) Validate() []string {
	if r.Text == "" {
		return []string{"text is required"}
	}
	return nil
}

// CreateFact godoc
// @Summary Create a fact
// @Tags facts
// @Accept json
// @Produce json
// @Param body body controllers.CreateFactRequest true "Fact fields"
// @Success 201 {object} helpers.SuccessResponse "data contains the created fact"
// @Failure 400 {object} helpers.ErrorResponse
// @Failure 500 {object} helpers.ErrorResponse
// @Router /api/facts [post]
func (c *FactController) CreateFact(w http.ResponseWriter, r *http.Request) {
	var req CreateFactRequest
	if !helpers.DecodeAndValidate(w, r, &req) {
		return
	}

	fact := &domain.Fact{Category: req.Category, Text: req.Text}
	if err := c.Service.CreateFact(r.Context(), fact); err != nil {
		if errors.Is(err, domain.ErrInvalidInput) {
			helpers.WriteJSONError(w, r, http.StatusBadRequest, err.Error(), nil)
			return
		}
		c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
		helpers.WriteJSONError(w, r, http.StatusInternalServerError, "Internal server error", nil)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusCreated, fact)
}

// DeleteFact godoc
// @Summary Delete a fact
// @Tags facts
// @Produce json
// @Param factID path string true "Fact ID (UUID)"
// @Success 200 {object} helpers.SuccessResponse "data contains {status: deleted}"
// @Failure 400 {object} helpers.ErrorResponse
// @Failure 404 {object} helpers.ErrorResponse
// @Failure 500 {object} helpers.ErrorResponse
// @Router /api/facts/{factID} [delete]
func (c *FactController) DeleteFact(w http.ResponseWriter, r *http.Request) {
	factID := r.PathValue("factID")
	if !uuidRegex.MatchString(factID) {
		helpers.WriteJSONError(w, r, http.StatusBadRequest, "invalid factID", nil)
		return
	}

	if err := c.Service.DeleteFact(r.Context(), factID); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			helpers.WriteJSONError(w, r, http.StatusNotFound, "fact not found", nil)
			return
		}
		c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
		helpers.WriteJSONError(w, r, http.StatusInternalServerError, "Internal server error", nil)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, map[string]string{"status": "deleted"})
}

// ListFacts godoc
// @Summary List facts
// @Description Returns a paginated list of facts. The facts widget tolerates bad pagination input: invalid page/limit fall back to defaults instead of failing. Filterable: category. Sortable: createdAt, views.
// @Tags facts
// @Produce json
// @Param page query int false "Page number (default 1)"
// @Param limit query string false "Page size (default 10) or the literal all"
// @Param category query string false "Filter by category"
// @Param sortBy query string false "Sort field"
// @Param sortOrder query string false "asc or desc (default desc)"
// @Success 200 {object} helpers.SuccessResponse "data contains items and pagination"
// @Failure 500 {object} helpers.ErrorResponse
// @Router /api/facts [get]
func (c *FactController) ListFacts(w http.ResponseWriter, r *http.Request) {
	pg, ok := middleware.PaginationFromContext(r.Context())
	if !ok {
		pg = helpers.DefaultPagination(helpers.DefaultLimit)
	}
	sort, _ := middleware.SortFromContext(r.Context())
	filter, _ := middleware.FilterFromContext(r.Context())

	page, err := c.Service.ListFacts(r.Context(), filter, sort, pg)
	if err != nil {
		if errors.Is(err, domain.ErrResultSetTooLarge) {
			helpers.WriteJSONError(w, r, http.StatusBadRequest, err.Error(), nil)
			return
		}
		c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
		helpers.WriteJSONError(w, r, http.StatusInternalServerError, "Internal server error", nil)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, page)
}
