package handler

import (
	"encoding/json"
	"net/http"

	"github.com/julienschmidt/httprouter"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/marketing-intelligence-api/internal/domain"
	"github.com/vfg2006/marketing-intelligence-api/internal/scheduler"
	"github.com/vfg2006/marketing-intelligence-api/pkg/apiErrors"
	"github.com/vfg2006/marketing-intelligence-api/pkg/middleware"
)

// CronJobType define o tipo de cron job que será executada
const (
	CronJobTypeSnapshots = "snapshots"
	CronJobTypeAll       = "all"
)

// CronJobServices contém os serviços de cron disponíveis para execução manual
type CronJobServices struct {
	SnapshotSyncService *scheduler.SnapshotSyncService
}

// RunCronJob executa manualmente uma cron job específica
func RunCronJob(services CronJobServices) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - RunCronJob")

		userClaims, ok := r.Context().Value(middleware.ContextKeyUser).(*domain.Claims)
		if !ok || userClaims.UserRoleID != middleware.RoleAdmin {
			apiErrors.WriteError(w, apiErrors.ErrInsufficientPrivilege, "Apenas administradores podem executar cron jobs", nil)
			return
		}

		cronType := httprouter.ParamsFromContext(r.Context()).ByName("type")
		if cronType == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "Tipo de cron job não especificado", nil)
			return
		}

		switch cronType {
		case CronJobTypeSnapshots, CronJobTypeAll:
			if services.SnapshotSyncService == nil {
				apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Serviço de sincronização de fotografias não disponível", nil)
				return
			}
			services.SnapshotSyncService.TriggerManualSync()

		default:
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Tipo de cron job inválido. Valores aceitos: snapshots, all", nil)
			return
		}

		response := map[string]any{
			"message": "Cron job iniciada com sucesso",
			"type":    cronType,
		}
		json.NewEncoder(w).Encode(response)
	}
}

// GetCronStatus retorna o status das cron jobs
func GetCronStatus(services CronJobServices) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - GetCronStatus")

		userClaims, ok := r.Context().Value(middleware.ContextKeyUser).(*domain.Claims)
		if !ok || userClaims.UserRoleID != middleware.RoleAdmin {
			apiErrors.WriteError(w, apiErrors.ErrInsufficientPrivilege, "Apenas administradores podem verificar status de cron jobs", nil)
			return
		}

		status := map[string]any{
			"snapshots": services.SnapshotSyncService.GetStatus(),
		}

		json.NewEncoder(w).Encode(status)
	}
}
