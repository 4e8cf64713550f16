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

// objectIDRegex matches a 24-character hex MongoDB ObjectID.
var objectIDRegex = regexp.MustCompile(`^[0-9a-fA-F]{24}$`)

type SubscriberController struct {
	Logger  *slog.Logger
	Service domain.SubscriberService
}

func NewSubscriberController(logger *slog.Logger, svc domain.SubscriberService) *SubscriberController {
	return &SubscriberController{
		Logger:  logger,
		Service: svc,
	}
}

// SubscribeRequest is the request body for POST /api/subscribers.
type SubscribeRequest struct {
	Email string `json:"email"`
}

// Validate implements helpers.Validator.
func (r *SubscribeRequest) Validate() []string {
	if r.Email == "" {
		return []string{"email is required"}
	}
	return nil
}

// Subscribe godoc
// @Summary Subscribe an email address
// @Description Records a newsletter subscription. Idempotent: returns 201 when a new subscription is created, 200 when the email is already subscribed.
// @Tags subscribers
// @Accept json
// @Produce json
// @Param body body controllers.SubscribeRequest true "Email to subscribe"
// @Success 200 {object} helpers.SuccessResponse "Already subscribed"
// @Success 201 {object} helpers.SuccessResponse "New subscription created"
// @Failure 400 {object} helpers.ErrorResponse
// @Failure 500 {object} helpers.ErrorResponse
// @Router /api/subscribers [post]
func (c *SubscriberController) Subscribe(w http.ResponseWriter, r *http.Request) {
	var req SubscribeRequest
	if !helpers.DecodeAndValidate(w, r, &req) {
		return
	}

	sub, created, err := c.Service.Subscribe(r.Context(), req.Email)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidInput) {
			helpers.WriteJSONError(w, r, http.StatusBadRequest, err.Error(), nil)
			return
		}
		c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
		helpers.WriteJSONError(w, r, http.StatusInternalServerError, "Internal server error", nil)
		return
	}
	if created {
		helpers.WriteJSONSuccess(w, http.StatusCreated, sub)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, sub)
}

// Unsubscribe godoc
// @Summary Remove a subscriber
// @Tags subscribers
// @Produce json
// @Param subscriberID path string true "Subscriber ID (ObjectID hex)"
// @Success 200 {object} helpers.SuccessResponse "data contains {status: unsubscribed}"
// @Failure 400 {object} helpers.ErrorResponse
// @Failure 404 {object} helpers.ErrorResponse
// @Failure 500 {object} helpers.ErrorResponse
// @Router /api/subscribers/{subscriberID} [delete]
func (c *SubscriberController) Unsubscribe(w http.ResponseWriter, r *http.Request) {
	subscriberID := r.PathValue("subscriberID")
	if !objectIDRegex.MatchString(subscriberID) {
		helpers.WriteJSONError(w, r, http.StatusBadRequest, "invalid subscriberID", nil)
		return
	}

	if err := c.Service.Unsubscribe(r.Context(), subscriberID); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			helpers.WriteJSONError(w, r, http.StatusNotFound, "subscriber not found", nil)
			return
		}
		c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
		helpers.WriteJSONError(w, r, http.StatusInternalServerError, "Internal server error", nil)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, map[string]string{"status": "unsubscribed"})
}

// ListSubscribers godoc
// @Summary List subscribers
// @Description Returns a paginated list of subscribers. Use page and limit (or limit=all) query params. Filterable: status, email. Sortable: createdAt, email.
// @Tags subscribers
// @Produce json
// @Param page query int false "Page number (default 1)"
// @Param limit query string false "Page size (default 10) or the literal all"
// @Param status query string false "Filter by status"
// @Param sortBy query string false "Sort field"
// @Param sortOrder query string false "asc or desc (default desc)"
// @Success 200 {object} helpers.SuccessResponse "data contains items and pagination"
// @Failure 400 {object} helpers.ErrorResponse "invalid pagination parameters or result set too large"
// @Failure 500 {object} helpers.ErrorResponse
// @Router /api/subscribers [get]
func (c *SubscriberController) ListSubscribers(w http.ResponseWriter, r *http.Request) {
	pg, ok := middleware.PaginationFromContext(r.Context())
	if !ok {
		pg = helpers.DefaultPagination(helpers.DefaultLimit)
	}
	sort, _ := middleware.SortFromContext(r.Context())
	filter, _ := middleware.FilterFromContext(r.Context())

	page, err := c.Service.ListSubscribers(r.Context(), filter, sort, pg)
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
