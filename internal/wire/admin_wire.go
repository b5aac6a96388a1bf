package wire

import (
	"corfumania-backoffice/internal/adaptor"
	"corfumania-backoffice/internal/data/repository"
	"corfumania-backoffice/pkg/middleware"
	"corfumania-backoffice/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireAdmin(
	r chi.Router,
	reportHandler *adaptor.ReportHandler,
	auditHandler *adaptor.AuditHandler,
	repo *repository.Repository,
	config *utils.Config,
	log *zap.Logger,
) {
	auth := middleware.AuthSession(repo.Session, repo.User, config.Session.CookieName, log)
	admin := middleware.Admin(log)

	r.With(auth, admin).Get("/api/admin/reports", reportHandler.GetReport)
	r.With(auth, admin).Get("/api/admin/audit-log", auditHandler.GetAuditLog)
}
