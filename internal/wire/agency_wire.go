package wire

import (
	"corfumania-backoffice/internal/adaptor"
	"corfumania-backoffice/internal/data/repository"
	"corfumania-backoffice/pkg/middleware"
	"corfumania-backoffice/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// wireAgency covers the partner directory: agencies, suppliers, and clients.
// Reading is open to any authenticated user; writes are admin only.
func wireAgency(
	r chi.Router,
	agencyHandler *adaptor.AgencyHandler,
	supplierHandler *adaptor.SupplierHandler,
	clientHandler *adaptor.ClientHandler,
	repo *repository.Repository,
	config *utils.Config,
	log *zap.Logger,
) {
	auth := middleware.AuthSession(repo.Session, repo.User, config.Session.CookieName, log)
	admin := middleware.Admin(log)

	r.Route("/api/agencies", func(r chi.Router) {
		r.Use(auth)

		r.Get("/", agencyHandler.GetAgencies)
		r.With(admin).Post("/", agencyHandler.CreateAgency)
		r.With(admin).Put("/{id}", agencyHandler.UpdateAgency)
		r.With(admin).Delete("/{id}", agencyHandler.DeleteAgency)
	})

	r.Route("/api/suppliers", func(r chi.Router) {
		r.Use(auth)

		r.Get("/", supplierHandler.GetSuppliers)
		r.With(admin).Post("/", supplierHandler.CreateSupplier)
		r.With(admin).Put("/{id}", supplierHandler.UpdateSupplier)
		r.With(admin).Delete("/{id}", supplierHandler.DeleteSupplier)
	})

	r.With(auth).Get("/api/clients", clientHandler.GetClients)
}
