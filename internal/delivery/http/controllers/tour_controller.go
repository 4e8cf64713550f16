package controllers

import (
	"errors"
	"log/slog"
	"net/http"
	"regexp"

	"tourbooking/internal/delivery/http/helpers"
	"tourbooking/internal/delivery/http/middleware"
	"tourbooking/internal/domain"
)

// uuidRegex matches a canonical UUID string (8-4-4-4-12 hex).
var uuidRegex = regexp.MustCompile(`^[0-9a-fA-F]{8}-[0-9a-fA-F]{4}-[0-9a-fA-F]{4}-[0-9a-fA-F]{4}-[0-9a-fA-F]{12}$`)

type TourController struct {
	Logger  *slog.Logger
	Service domain.TourService
}

func NewTourController(logger *slog.Logger, svc domain.TourService) *TourController {
	return &TourController{
		Logger:  logger,
		Service: svc,
	}
}

// CreateTourRequest is the request body for POST /api/tours.
type CreateTourRequest struct {
	Title        string  `json:"title"`
	Location     string  `json:"location"`
	Difficulty   string  `json:"difficulty"`
	Price        float64 `json:"price"`
	DurationDays int     `json:"duration_days"`
	Featured     bool    `json:"featured"`
}

// Validate implements helpers.Validator.
func (r *CreateTourRequest) Validate() []string {
	var errs []string
	if r.Title == "" {
		errs = append(errs, "title is required")
	}
	if r.Difficulty == "" {
		errs = append(errs, "difficulty is required")
	}
	if r.DurationDays < 1 {
		errs = append(errs, "duration_days must be >= 1")
	}
	return errs
}

// CreateTour godoc
// @Summary Create a tour
// @Description Creates a new tour listing. Difficulty must be one of easy, moderate, hard.
// @Tags tours
// @Accept json
// @Produce json
// @Param body body controllers.CreateTourRequest true "Tour fields"
// @Success 201 {object} helpers.SuccessResponse "data contains the created tour"
// @Failure 400 {object} helpers.ErrorResponse
// @Failure 500 {object} helpers.ErrorResponse
// @Router /api/tours [post]
func (c *TourController) CreateTour(w http.ResponseWriter, r *http.Request) {
	var req CreateTourRequest
	if !helpers.DecodeAndValidate(w, r, &req) {
		return
	}

	tour := &domain.Tour{
		Title:        req.Title,
		Location:     req.Location,
		Difficulty:   req.Difficulty,
		Price:        req.Price,
		DurationDays: req.DurationDays,
		Featured:     req.Featured,
	}
	if err := c.Service.CreateTour(r.Context(), tour); err != nil {
		if errors.Is(err, domain.ErrInvalidInput) {
			helpers.WriteJSONError(w, r, http.StatusBadRequest, err.Error(), nil)
			return
		}
		c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
		helpers.WriteJSONError(w, r, http.StatusInternalServerError, "Internal server error", nil)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusCreated, tour)
}

// GetTour godoc
// @Summary Get a tour by ID
// @Tags tours
// @Produce json
// @Param tourID path string true "Tour ID (UUID)"
// @Success 200 {object} helpers.SuccessResponse "data contains the tour"
// @Failure 400 {object} helpers.ErrorResponse
// @Failure 404 {object} helpers.ErrorResponse
// @Failure 500 {object} helpers.ErrorResponse
// @Router /api/tours/{tourID} [get]
func (c *TourController) GetTour(w http.ResponseWriter, r *http.Request) {
	tourID := r.PathValue("tourID")
	if !uuidRegex.MatchString(tourID) {
		helpers.WriteJSONError(w, r, http.StatusBadRequest, "invalid tourID", nil)
		return
	}

	tour, err := c.Service.GetTour(r.Context(), tourID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			helpers.WriteJSONError(w, r, http.StatusNotFound, "tour not found", nil)
			return
		}
		c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
		helpers.WriteJSONError(w, r, http.StatusInternalServerError, "Internal server error", nil)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, tour)
}

// DeleteTour godoc
// @Summary Delete a tour
// @Tags tours
// @Produce json
// @Param tourID path string true "Tour ID (UUID)"
// @Success 200 {object} helpers.SuccessResponse "data contains {status: deleted}"
// @Failure 400 {object} helpers.ErrorResponse
// @Failure 404 {object} helpers.ErrorResponse
// @Failure 500 {object} helpers.ErrorResponse
// @Router /api/tours/{tourID} [delete]
func (c *TourController) DeleteTour(w http.ResponseWriter, r *http.Request) {
	tourID := r.PathValue("tourID")
	if !uuidRegex.MatchString(tourID) {
		helpers.WriteJSONError(w, r, http.StatusBadRequest, "invalid tourID", nil)
		return
	}

	if err := c.Service.DeleteTour(r.Context(), tourID); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			helpers.WriteJSONError(w, r, http.StatusNotFound, "tour not found", nil)
			return
		}
		c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
		helpers.WriteJSONError(w, r, http.StatusInternalServerError, "Internal server error", nil)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, map[string]string{"status": "deleted"})
}

// ListTours godoc
// @Summary List tours
// @Description Returns a paginated list of tours. Use page and limit (or limit=all) query params. Filterable: title, location, difficulty, featured. Sortable: createdAt, price, title.
// @Tags tours
// @Produce json
// @Param page query int false "Page number (default 1)"
// @Param limit query string false "Page size (default 10) or the literal all"
// @Param sortBy query string false "Sort field"
// @Param sortOrder query string false "asc or desc (default desc)"
// @Success 200 {object} helpers.SuccessResponse "data contains items and pagination"
// @Failure 400 {object} helpers.ErrorResponse "invalid pagination parameters or result set too large"
// @Failure 500 {object} helpers.ErrorResponse
// @Router /api/tours [get]
func (c *TourController) ListTours(w http.ResponseWriter, r *http.Request) {
	pg, ok := middleware.PaginationFromContext(r.Context())
	if !ok {
		pg = helpers.DefaultPagination(helpers.DefaultLimit)
	}
	sort, _ := middleware.SortFromContext(r.Context())
	filter, _ := middleware.FilterFromContext(r.Context())

	page, err := c.Service.ListTours(r.Context(), filter, sort, pg)
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
