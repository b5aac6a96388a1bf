package wire

import (
	"corfumania-backoffice/internal/adaptor"
	"corfumania-backoffice/internal/data/repository"
	"corfumania-backoffice/pkg/middleware"
	"corfumania-backoffice/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireBooking(
	r chi.Router,
	bookingHandler *adaptor.BookingHandler,
	repo *repository.Repository,
	config *utils.Config,
	log *zap.Logger,
) {
	auth := middleware.AuthSession(repo.Session, repo.User, config.Session.CookieName, log)
	admin := middleware.Admin(log)

	r.Route("/api/bookings", func(r chi.Router) {
		r.Use(auth)

		r.Post("/", bookingHandler.CreateBooking)
		r.Get("/{id}", bookingHandler.GetBookingByID)
		r.Put("/{id}", bookingHandler.UpdateBooking)
		r.Post("/{id}/refund", bookingHandler.RefundBooking)
		r.Delete("/{id}", bookingHandler.DeleteBooking)
	})

	r.With(auth).Get("/api/rentals", bookingHandler.GetRentals)

	// Approval decisions on underpriced bookings are an admin concern.
	r.With(auth, admin).Post("/api/admin/bookings/{id}/decision", bookingHandler.DecideBooking)
}
