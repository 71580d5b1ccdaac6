package handler

import (
	"encoding/json"
	"net/http"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/creative-analysis-api/internal/domain"
	"github.com/vfg2006/creative-analysis-api/internal/scheduler"
	"github.com/vfg2006/creative-analysis-api/pkg/apiErrors"
	"github.com/vfg2006/creative-analysis-api/pkg/middleware"
)

// RunAnalysisSync dispara manualmente uma execução do pipeline de análise
func RunAnalysisSync(syncService *scheduler.AnalysisSyncService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - RunAnalysisSync")

		// Verificar permissões - apenas administradores podem executar cron jobs
		userClaims, ok := r.Context().Value(middleware.ContextKeyUser).(*domain.Claims)
		if !ok || userClaims.UserRoleID != 1 {
			apiErrors.WriteError(w, apiErrors.ErrInsufficientPrivilege, "Apenas administradores podem executar cron jobs", nil)
			return
		}

		if syncService == nil {
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Serviço de sincronização de análises não disponível", nil)
			return
		}

		syncService.TriggerManualSync()

		response := map[string]any{
			"message": "Análise de criativos iniciada com sucesso",
		}
		json.NewEncoder(w).Encode(response)
	}
}

// GetAnalysisSyncStatus retorna o status do agendador de análises
func GetAnalysisSyncStatus(syncService *scheduler.AnalysisSyncService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - GetAnalysisSyncStatus")

		// Verificar permissões - apenas administradores podem ver status das crons
		userClaims, ok := r.Context().Value(middleware.ContextKeyUser).(*domain.Claims)
		if !ok || userClaims.UserRoleID != 1 {
			apiErrors.WriteError(w, apiErrors.ErrInsufficientPrivilege, "Apenas administradores podem verificar status de cron jobs", nil)
			return
		}

		status := map[string]any{
			"analysis": syncService.GetStatus(),
		}

		json.NewEncoder(w).Encode(status)
	}
}
