package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/julienschmidt/httprouter"
	"github.com/vfg2006/creative-analysis-api/infrastructure/repository"
	"github.com/vfg2006/creative-analysis-api/internal/domain"
	"github.com/vfg2006/creative-analysis-api/pkg/apiErrors"
	"github.com/vfg2006/creative-analysis-api/pkg/log"
	"github.com/vfg2006/creative-analysis-api/pkg/utils"
)

const (
	defaultHistoryLimit = 30
	defaultRunsLimit    = 20
)

// GetAnalysisResults retorna os resultados de análise de uma conta em uma data.
// Sem o parâmetro date, retorna os resultados do dia corrente.
func GetAnalysisResults(resultRepo repository.AnalysisResultRepository) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		accountID := httprouter.ParamsFromContext(r.Context()).ByName("id")
		logger.WithField("account_id", accountID).Info("analysis: fetching analysis results")

		date, err := parseDateOrToday(r.URL.Query().Get("date"))
		if err != nil {
			logger.WithFields(log.Fields{
				"account_id": accountID,
				"date":       r.URL.Query().Get("date"),
				"error":      err.Error(),
			}).Warn("analysis: invalid date parameter")

			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Data inválida, use o formato YYYY-MM-DD", nil)
			return
		}

		results, err := resultRepo.GetByAccountIDAndDate(accountID, date)
		if err != nil {
			logger.WithFields(log.Fields{
				"account_id": accountID,
				"date":       date.Format(time.DateOnly),
				"error":      err.Error(),
			}).Error("analysis: failed to fetch analysis results")

			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao buscar resultados de análise", nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(results); err != nil {
			logger.WithError(err).Error("analysis: failed to encode response")
		}
	})
}

// GetAdAnalysisHistory retorna o histórico de análises de um anúncio,
// da mais recente para a mais antiga.
func GetAdAnalysisHistory(resultRepo repository.AnalysisResultRepository) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		adID := httprouter.ParamsFromContext(r.Context()).ByName("id")
		logger.WithField("ad_id", adID).Info("analysis: fetching ad analysis history")

		limit, err := parseLimit(r.URL.Query().Get("limit"), defaultHistoryLimit)
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Parâmetro limit inválido", nil)
			return
		}

		results, err := resultRepo.GetByAdID(adID, limit)
		if err != nil {
			logger.WithFields(log.Fields{
				"ad_id": adID,
				"error": err.Error(),
			}).Error("analysis: failed to fetch ad analysis history")

			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao buscar histórico de análises", nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(results); err != nil {
			logger.WithError(err).Error("analysis: failed to encode response")
		}
	})
}

// GetDashboardSummary retorna o resumo do dashboard de uma conta. Sem o
// parâmetro date, retorna o resumo mais recente.
func GetDashboardSummary(summaryRepo repository.DashboardSummaryRepository) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		accountID := httprouter.ParamsFromContext(r.Context()).ByName("id")
		logger.WithField("account_id", accountID).Info("analysis: fetching dashboard summary")

		dateParam := r.URL.Query().Get("date")

		var summary *domain.DashboardSummary
		var err error
		if dateParam == "" {
			summary, err = summaryRepo.GetLatestByAccountID(accountID)
		} else {
			date, parseErr := utils.ParseDate(dateParam)
			if parseErr != nil {
				apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Data inválida, use o formato YYYY-MM-DD", nil)
				return
			}
			summary, err = summaryRepo.GetByAccountIDAndDate(accountID, *date)
		}

		if err != nil {
			logger.WithFields(log.Fields{
				"account_id": accountID,
				"error":      err.Error(),
			}).Error("analysis: failed to fetch dashboard summary")

			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao buscar resumo do dashboard", nil)
			return
		}

		if summary == nil {
			http.Error(w, "nenhum resumo encontrado para a conta", http.StatusNotFound)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(summary); err != nil {
			logger.WithError(err).Error("analysis: failed to encode response")
		}
	})
}

// ListAnalysisRuns retorna as execuções mais recentes do pipeline de uma conta.
func ListAnalysisRuns(runRepo repository.AnalysisRunRepository) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		accountID := httprouter.ParamsFromContext(r.Context()).ByName("id")

		limit, err := parseLimit(r.URL.Query().Get("limit"), defaultRunsLimit)
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Parâmetro limit inválido", nil)
			return
		}

		runs, err := runRepo.ListByAccountID(accountID, limit)
		if err != nil {
			logger.WithFields(log.Fields{
				"account_id": accountID,
				"error":      err.Error(),
			}).Error("analysis: failed to list analysis runs")

			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao buscar execuções de análise", nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(runs); err != nil {
			logger.WithError(err).Error("analysis: failed to encode response")
		}
	})
}

// GetAnalysisRun retorna as estatísticas de uma execução específica.
func GetAnalysisRun(runRepo repository.AnalysisRunRepository) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		runID := httprouter.ParamsFromContext(r.Context()).ByName("id")

		run, err := runRepo.GetByRunID(runID)
		if err != nil {
			logger.WithFields(log.Fields{
				"run_id": runID,
				"error":  err.Error(),
			}).Error("analysis: failed to fetch analysis run")

			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao buscar execução de análise", nil)
			return
		}

		if run == nil {
			http.Error(w, "execução não encontrada", http.StatusNotFound)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(run); err != nil {
			logger.WithError(err).Error("analysis: failed to encode response")
		}
	})
}

func parseDateOrToday(dateStr string) (time.Time, error) {
	parsed, err := utils.ParseDate(dateStr)
	if err != nil {
		return time.Time{}, err
	}

	if parsed.IsZero() {
		now := time.Now()
		return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC), nil
	}

	return *parsed, nil
}

func parseLimit(limitStr string, fallback int) (int, error) {
	if limitStr == "" {
		return fallback, nil
	}

	limit, err := strconv.Atoi(limitStr)
	if err != nil || limit <= 0 {
		return 0, errors.New("limite inválido")
	}

	return limit, nil
}
