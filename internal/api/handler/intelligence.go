package handler

import (
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/julienschmidt/httprouter"
	"github.com/vfg2006/marketing-intelligence-api/internal/domain"
	"github.com/vfg2006/marketing-intelligence-api/internal/usecases/analyzing"
	"github.com/vfg2006/marketing-intelligence-api/pkg/apiErrors"
	"github.com/vfg2006/marketing-intelligence-api/pkg/log"
	"github.com/vfg2006/marketing-intelligence-api/pkg/utils"
)

// parsePeriodFilters valida os parâmetros de data obrigatórios da query
func parsePeriodFilters(r *http.Request) (*domain.PeriodFilters, error) {
	rawStart := r.URL.Query().Get("start_date")
	rawEnd := r.URL.Query().Get("end_date")
	if rawStart == "" || rawEnd == "" {
		return nil, fmt.Errorf("start_date e end_date são obrigatórios")
	}

	startDate, err := utils.ParseDate(rawStart)
	if err != nil {
		return nil, err
	}

	endDate, err := utils.ParseDate(rawEnd)
	if err != nil {
		return nil, err
	}

	if endDate.Before(*startDate) {
		return nil, fmt.Errorf("end_date anterior a start_date")
	}

	return &domain.PeriodFilters{
		StartDate: startDate,
		EndDate:   endDate,
	}, nil
}

func AnalyzeAccount(service analyzing.Analyzer) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		id := httprouter.ParamsFromContext(r.Context()).ByName("id")
		logger.WithField("account_id", id).Info("intelligence: running account analysis")

		filters, err := parsePeriodFilters(r)
		if err != nil {
			logger.WithFields(log.Fields{
				"account_id": id,
				"start_date": r.URL.Query().Get("start_date"),
				"end_date":   r.URL.Query().Get("end_date"),
				"error":      err.Error(),
			}).Warn("intelligence: invalid period parameters")

			apiErrors.WriteError(w, apiErrors.ErrInvalidPeriod, "Período inválido: informe start_date e end_date no formato AAAA-MM-DD", nil)
			return
		}

		result, err := service.AnalyzeAccount(id, filters)
		if err != nil {
			logger.WithFields(log.Fields{
				"account_id": id,
				"start_date": filters.StartDate.Format(time.DateOnly),
				"end_date":   filters.EndDate.Format(time.DateOnly),
				"error":      err.Error(),
			}).Error("intelligence: analysis failed for account")

			apiErrors.WriteError(w, apiErrors.ErrAnalysisFailed, "Erro ao executar a análise da conta", nil)
			return
		}

		logger.WithFields(log.Fields{
			"account_id":   id,
			"health_score": result.HealthScore,
			"quick_wins":   len(result.QuickWins),
			"insights":     len(result.Insights),
		}).Info("intelligence: analysis completed")

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(result); err != nil {
			logger.WithFields(log.Fields{
				"account_id": id,
				"error":      err.Error(),
			}).Error("intelligence: failed to encode response")

			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao codificar resposta", nil)
		}
	})
}

func GetSmartAlerts(service analyzing.Analyzer) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		id := httprouter.ParamsFromContext(r.Context()).ByName("id")
		logger.WithField("account_id", id).Info("intelligence: computing smart alerts")

		filters, err := parsePeriodFilters(r)
		if err != nil {
			logger.WithFields(log.Fields{
				"account_id": id,
				"start_date": r.URL.Query().Get("start_date"),
				"end_date":   r.URL.Query().Get("end_date"),
				"error":      err.Error(),
			}).Warn("intelligence: invalid period parameters")

			apiErrors.WriteError(w, apiErrors.ErrInvalidPeriod, "Período inválido: informe start_date e end_date no formato AAAA-MM-DD", nil)
			return
		}

		alerts, err := service.ComputeAlerts(id, filters)
		if err != nil {
			logger.WithFields(log.Fields{
				"account_id": id,
				"error":      err.Error(),
			}).Error("intelligence: failed to compute alerts")

			apiErrors.WriteError(w, apiErrors.ErrAnalysisFailed, "Erro ao calcular os alertas da conta", nil)
			return
		}

		logger.WithFields(log.Fields{
			"account_id": id,
			"alerts":     len(alerts),
		}).Info("intelligence: alerts computed")

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(map[string]any{
			"account_id": id,
			"start_date": filters.StartDate.Format(time.DateOnly),
			"end_date":   filters.EndDate.Format(time.DateOnly),
			"alerts":     alerts,
		}); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao codificar resposta", nil)
		}
	})
}
