package handler

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/julienschmidt/httprouter"
	"github.com/vfg2006/marketing-intelligence-api/internal/domain"
	"github.com/vfg2006/marketing-intelligence-api/internal/usecases/planning"
	"github.com/vfg2006/marketing-intelligence-api/pkg/apiErrors"
	"github.com/vfg2006/marketing-intelligence-api/pkg/log"
)

// parseTargetPeriod extrai e valida ano e mês da URL
func parseTargetPeriod(r *http.Request) (string, int, int, bool) {
	params := httprouter.ParamsFromContext(r.Context())

	id := params.ByName("id")
	if id == "" {
		return "", 0, 0, false
	}

	year, err := strconv.Atoi(params.ByName("year"))
	if err != nil {
		return "", 0, 0, false
	}

	month, err := strconv.Atoi(params.ByName("month"))
	if err != nil {
		return "", 0, 0, false
	}

	return id, year, month, true
}

func GetTargetMonth(service planning.Planner) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		id, year, month, ok := parseTargetPeriod(r)
		if !ok {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "Conta, ano e mês são obrigatórios", nil)
			return
		}

		logger.WithFields(log.Fields{
			"account_id": id,
			"year":       year,
			"month":      month,
		}).Info("targets: fetching target month")

		targets, err := service.GetTargetMonth(id, year, month)
		if err != nil {
			logger.WithFields(log.Fields{
				"account_id": id,
				"year":       year,
				"month":      month,
				"error":      err.Error(),
			}).Error("targets: failed to get target month")

			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao buscar as metas do mês", nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(targets); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao codificar resposta", nil)
		}
	})
}

func SaveTargetMonth(service planning.Planner) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		id, year, month, ok := parseTargetPeriod(r)
		if !ok {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "Conta, ano e mês são obrigatórios", nil)
			return
		}

		var inputs domain.PlanningMetrics
		if err := json.NewDecoder(r.Body).Decode(&inputs); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Corpo da requisição inválido: "+err.Error(), nil)
			return
		}

		logger.WithFields(log.Fields{
			"account_id": id,
			"year":       year,
			"month":      month,
			"metrics":    len(inputs),
		}).Info("targets: saving target month")

		targets, err := service.SaveTargetMonth(id, year, month, inputs)
		if err != nil {
			logger.WithFields(log.Fields{
				"account_id": id,
				"year":       year,
				"month":      month,
				"error":      err.Error(),
			}).Error("targets: failed to save target month")

			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao salvar as metas do mês", nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(targets); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao codificar resposta", nil)
		}
	})
}
