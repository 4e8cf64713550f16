package http

import (
	"log/slog"
	"net/http"

	httpSwagger "github.com/swaggo/http-swagger"

	"tourbooking/config"
	"tourbooking/internal/delivery/http/controllers"
	"tourbooking/internal/delivery/http/middleware"
)

// NewRouter initializes the HTTP router with all application routes.
// Every list route runs behind the pagination middleware with its own
// filter/sort allow-list; the facts list tolerates invalid pagination input
// (Required=false) because it backs a public dashboard widget.
func NewRouter(
	cfg *config.Config,
	logger *slog.Logger,
	tourController *controllers.TourController,
	bookingController *controllers.BookingController,
	factController *controllers.FactController,
	subscriberController *controllers.SubscriberController,
) *http.ServeMux {
	mux := http.NewServeMux()

	listTours := middleware.Pagination(cfg.Pagination, logger, middleware.PaginationOptions{
		Required:     true,
		FilterFields: []string{"title", "location", "difficulty", "featured"},
		SortFields:   []string{"createdAt", "price", "title"},
	})
	listBookings := middleware.Pagination(cfg.Pagination, logger, middleware.PaginationOptions{
		Required:     true,
		FilterFields: []string{"status", "paymentStatus", "tourId"},
		SortFields:   []string{"createdAt", "startDate"},
	})
	listFacts := middleware.Pagination(cfg.Pagination, logger, middleware.PaginationOptions{
		Required:     false,
		FilterFields: []string{"category"},
		SortFields:   []string{"createdAt", "views"},
	})
	listSubscribers := middleware.Pagination(cfg.Pagination, logger, middleware.PaginationOptions{
		Required:     true,
		FilterFields: []string{"status", "email"},
		SortFields:   []string{"createdAt", "email"},
	})

	// Tours
	mux.HandleFunc("POST /api/tours", tourController.CreateTour)
	mux.HandleFunc("GET /api/tours", listTours(tourController.ListTours))
	mux.HandleFunc("GET /api/tours/{tourID}", tourController.GetTour)
	mux.HandleFunc("DELETE /api/tours/{tourID}", tourController.DeleteTour)

	// Bookings
	mux.HandleFunc("POST /api/bookings", bookingController.CreateBooking)
	mux.HandleFunc("GET /api/bookings", listBookings(bookingController.ListBookings))
	mux.HandleFunc("GET /api/bookings/{bookingID}", bookingController.GetBooking)
	mux.HandleFunc("DELETE /api/bookings/{bookingID}", bookingController.DeleteBooking)

	// Facts
	mux.HandleFunc("POST /api/facts", factController.CreateFact)
	mux.HandleFunc("GET /api/facts", listFacts(factController.ListFacts))
	mux.HandleFunc("DELETE /api/facts/{factID}", factController.DeleteFact)

	// Subscribers
	mux.HandleFunc("POST /api/subscribers", subscriberController.Subscribe)
	mux.HandleFunc("GET /api/subscribers", listSubscribers(subscriberController.ListSubscribers))
	mux.HandleFunc("DELETE /api/subscribers/{subscriberID}", subscriberController.Unsubscribe)

	// Swagger
	mux.Handle("/swagger/", httpSwagger.WrapHandler)

	return mux
}
