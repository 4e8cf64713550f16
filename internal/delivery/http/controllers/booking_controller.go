package controllers

import (
	"errors"
	"log/slog"
	"net/http"
	"time"

	"tourbooking/internal/delivery/http/helpers"
	"tourbooking/internal/delivery/http/middleware"
	"tourbooking/internal/domain"
)

type BookingController struct {
	Logger  *slog.Logger
	Service domain.BookingService
}

func NewBookingController(logger *slog.Logger, svc domain.BookingService) *BookingController {
	return &BookingController{
		Logger:  logger,
		Service: svc,
	}
}

// CreateBookingRequest is the request body for POST /api/bookings.
type CreateBookingRequest struct {
	TourID        string `json:"tour_id"`
	CustomerName  string `json:"customer_name"`
	CustomerEmail string `json:"customer_email"`
	Guests        int    `json:"guests"`
	StartDate     string `json:"start_date"` // RFC 3339 date, e.g. 2026-09-01T00:00:00Z
}

// Validate implements helpers.Validator.
func (r *CreateBookingRequest) Validate() []string {
	var errs []string
	if !uuidRegex.MatchString(r.TourID) {
		errs = append(errs, "tour_id must be a UUID")
	}
	if r.CustomerName == "" {
		errs = append(errs, "customer_name is required")
	}
	if r.CustomerEmail == "" {
		errs = append(errs, "customer_email is required")
	}
	if r.Guests < 1 {
		errs = append(errs, "guests must be >= 1")
	}
	if _, err := time.Parse(time.RFC3339, r.StartDate); err != nil {
		errs = append(errs, "start_date must be an RFC 3339 timestamp")
	}
	return errs
}

// CreateBooking godoc
// @Summary Create a booking
// @Description Books a tour for the given customer. The booking starts in status pending with payment unpaid.
// @Tags bookings
// @Accept json
// @Produce json
// @Param body body controllers.CreateBookingRequest true "Booking fields"
// @Success 201 {object} helpers.SuccessResponse "data contains the created booking"
// @Failure 400 {object} helpers.ErrorResponse
// @Failure 404 {object} helpers.ErrorResponse "tour not found"
// @Failure 500 {object} helpers.ErrorResponse
// @Router /api/bookings [post]
func (c *BookingController) CreateBooking(w http.ResponseWriter, r *http.Request) {
	var req CreateBookingRequest
	if !helpers.DecodeAndValidate(w, r, &req) {
		return
	}
	startDate, _ := time.Parse(time.RFC3339, req.StartDate)

	booking := &domain.Booking{
		TourID:        req.TourID,
		CustomerName:  req.CustomerName,
		CustomerEmail: req.CustomerEmail,
		Guests:        req.Guests,
		StartDate:     startDate,
	}
	if err := c.Service.CreateBooking(r.Context(), booking); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			helpers.WriteJSONError(w, r, http.StatusNotFound, "tour not found", nil)
			return
		}
		if errors.Is(err, domain.ErrInvalidInput) {
			helpers.WriteJSONError(w, r, http.StatusBadRequest, err.Error(), nil)
			return
		}
		c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
		helpers.WriteJSONError(w, r, http.StatusInternalServerError, "Internal server error", nil)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusCreated, booking)
}

// GetBooking godoc
// @Summary Get a booking by ID
// @Tags bookings
// @Produce json
// @Param bookingID path string true "Booking ID (UUID)"
// @Success 200 {object} helpers.SuccessResponse "data contains the booking"
// @Failure 400 {object} helpers.ErrorResponse
// @Failure 404 {object} helpers.ErrorResponse
// @Failure 500 {object} helpers.ErrorResponse
// @Router /api/bookings/{bookingID} [get]
func (c *BookingController) GetBooking(w http.ResponseWriter, r *http.Request) {
	bookingID := r.PathValue("bookingID")
	if !uuidRegex.MatchString(bookingID) {
		helpers.WriteJSONError(w, r, http.StatusBadRequest, "invalid bookingID", nil)
		return
	}

	booking, err := c.Service.GetBooking(r.Context(), bookingID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			helpers.WriteJSONError(w, r, http.StatusNotFound, "booking not found", nil)
			return
		}
		c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
		helpers.WriteJSONError(w, r, http.StatusInternalServerError, "Internal server error", nil)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, booking)
}

// DeleteBooking godoc
// @Summary Delete a booking
// @Tags bookings
// @Produce json
// @Param bookingID path string true "Booking ID (UUID)"
// @Success 200 {object} helpers.SuccessResponse "data contains {status: deleted}"
// @Failure 400 {object} helpers.ErrorResponse
// @Failure 404 {object} helpers.ErrorResponse
// @Failure 500 {object} helpers.ErrorResponse
// @Router /api/bookings/{bookingID} [delete]
func (c *BookingController) DeleteBooking(w http.ResponseWriter, r *http.Request) {
	bookingID := r.PathValue("bookingID")
	if !uuidRegex.MatchString(bookingID) {
		helpers.WriteJSONError(w, r, http.StatusBadRequest, "invalid bookingID", nil)
		return
	}

	if err := c.Service.DeleteBooking(r.Context(), bookingID); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			helpers.WriteJSONError(w, r, http.StatusNotFound, "booking not found", nil)
			return
		}
		c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
		helpers.WriteJSONError(w, r, http.StatusInternalServerError, "Internal server error", nil)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, map[string]string{"status": "deleted"})
}

// ListBookings godoc
// @Summary List bookings
// @Description Returns a paginated list of bookings. Use page and limit (or limit=all) query params. Filterable: status, paymentStatus, tourId. Sortable: createdAt, startDate.
// @Tags bookings
// @Produce json
// @Param page query int false "Page number (default 1)"
// @Param limit query string false "Page size (default 10) or the literal all"
// @Param status query string false "Filter by booking status"
// @Param paymentStatus query string false "Filter by payment status"
// @Param tourId query string false "Filter by tour"
// @Param sortBy query string false "Sort field"
// @Param sortOrder query string false "asc or desc (default desc)"
// @Success 200 {object} helpers.SuccessResponse "data contains items and pagination"
// @Failure 400 {object} helpers.ErrorResponse "invalid pagination parameters or result set too large"
// @Failure 500 {object} helpers.ErrorResponse
// @Router /api/bookings [get]
func (c *BookingController) ListBookings(w http.ResponseWriter, r *http.Request) {
	pg, ok := middleware.PaginationFromContext(r.Context())
	if !ok {
		pg = helpers.DefaultPagination(helpers.DefaultLimit)
	}
	sort, _ := middleware.SortFromContext(r.Context())
	filter, _ := middleware.FilterFromContext(r.Context())

	page, err := c.Service.ListBookings(r.Context(), filter, sort, pg)
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
