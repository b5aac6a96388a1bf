package wire

import (
	"corfumania-backoffice/internal/adaptor"
	"corfumania-backoffice/internal/data/repository"
	"corfumania-backoffice/pkg/middleware"
	"corfumania-backoffice/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireEvents(
	r chi.Router,
	excursionHandler *adaptor.ExcursionHandler,
	transferHandler *adaptor.TransferHandler,
	repo *repository.Repository,
	config *utils.Config,
	log *zap.Logger,
) {
	auth := middleware.AuthSession(repo.Session, repo.User, config.Session.CookieName, log)
	admin := middleware.Admin(log)

	r.Route("/api/excursions", func(r chi.Router) {
		r.Use(auth)

		r.Get("/", excursionHandler.GetExcursions)
		r.Get("/{id}", excursionHandler.GetExcursionByID)
		r.Get("/{id}/financials", excursionHandler.GetExcursionFinancials)
		r.With(admin).Post("/", excursionHandler.CreateExcursion)
		r.With(admin).Put("/{id}", excursionHandler.UpdateExcursion)
		r.With(admin).Delete("/{id}", excursionHandler.DeleteExcursion)
	})

	r.Route("/api/transfers", func(r chi.Router) {
		r.Use(auth)

		r.Get("/", transferHandler.GetTransfers)
		r.Get("/{id}", transferHandler.GetTransferByID)
		r.Get("/{id}/financials", transferHandler.GetTransferFinancials)
		r.With(admin).Post("/", transferHandler.CreateTransfer)
		r.With(admin).Put("/{id}", transferHandler.UpdateTransfer)
		r.With(admin).Delete("/{id}", transferHandler.DeleteTransfer)
	})
}
