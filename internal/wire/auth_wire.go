package wire

import (
	"corfumania-backoffice/internal/adaptor"
	"corfumania-backoffice/internal/data/repository"
	"corfumania-backoffice/pkg/middleware"
	"corfumania-backoffice/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireAuth(
	r chi.Router,
	authHandler *adaptor.AuthHandler,
	repo *repository.Repository,
	config *utils.Config,
	log *zap.Logger,
) {
	auth := middleware.AuthSession(repo.Session, repo.User, config.Session.CookieName, log)

	r.Post("/api/auth/login", authHandler.Login)

	r.With(auth).Post("/api/auth/logout", authHandler.Logout)
	r.With(auth).Get("/api/auth/me", authHandler.Me)
	r.With(auth).Post("/api/auth/change-password", authHandler.ChangePassword)
}
