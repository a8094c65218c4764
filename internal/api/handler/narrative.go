package handler

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/julienschmidt/httprouter"
	"github.com/vfg2006/marketing-intelligence-api/internal/cache"
	"github.com/vfg2006/marketing-intelligence-api/internal/config"
	"github.com/vfg2006/marketing-intelligence-api/internal/domain"
	"github.com/vfg2006/marketing-intelligence-api/internal/usecases/analyzing"
	"github.com/vfg2006/marketing-intelligence-api/internal/usecases/narrating"
	"github.com/vfg2006/marketing-intelligence-api/pkg/apiErrors"
	"github.com/vfg2006/marketing-intelligence-api/pkg/log"
	"github.com/vfg2006/marketing-intelligence-api/pkg/utils"
)

// NarrativeDeps agrupa as dependências da geração de narrativas
type NarrativeDeps struct {
	Analyzer analyzing.Analyzer
	Narrator narrating.Narrator
	Cache    *cache.TTLStore
	Counter  *cache.HourlyCounter
	Config   config.Narrator
}

func GetNarrative(deps NarrativeDeps) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		id := httprouter.ParamsFromContext(r.Context()).ByName("id")

		if deps.Narrator == nil {
			logger.WithField("account_id", id).Warn("narrative: narrator disabled by configuration")
			apiErrors.WriteError(w, apiErrors.ErrNarratorDisabled, "Geração de narrativas desabilitada", nil)
			return
		}

		filters, err := parsePeriodFilters(r)
		if err != nil {
			logger.WithFields(log.Fields{
				"account_id": id,
				"error":      err.Error(),
			}).Warn("narrative: invalid period parameters")

			apiErrors.WriteError(w, apiErrors.ErrInvalidPeriod, "Período inválido: informe start_date e end_date no formato AAAA-MM-DD", nil)
			return
		}

		cacheKey := fmt.Sprintf("%s:%s:%s", id, filters.StartDate.Format(time.DateOnly), filters.EndDate.Format(time.DateOnly))

		// A narrativa de um mesmo período é estável dentro da janela do cache
		if cached, ok := deps.Cache.Get(cacheKey); ok {
			logger.WithField("account_id", id).Debug("narrative: cache hit")

			w.Header().Set("Content-Type", "application/json")
			if err := json.NewEncoder(w).Encode(cached); err != nil {
				apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao codificar resposta", nil)
			}
			return
		}

		if deps.Counter.Count(id) >= deps.Config.HourlyLimit {
			logger.WithFields(log.Fields{
				"account_id": id,
				"limit":      deps.Config.HourlyLimit,
			}).Warn("narrative: hourly limit reached for account")

			apiErrors.WriteError(w, apiErrors.ErrRateLimited, "Limite de narrativas por hora excedido para a conta", nil)
			return
		}

		result, err := deps.Analyzer.AnalyzeAccount(id, filters)
		if err != nil {
			logger.WithFields(log.Fields{
				"account_id": id,
				"error":      err.Error(),
			}).Error("narrative: analysis failed for account")

			apiErrors.WriteError(w, apiErrors.ErrAnalysisFailed, "Erro ao executar a análise da conta", nil)
			return
		}

		period := domain.PeriodMeta{
			StartDate:  *filters.StartDate,
			EndDate:    *filters.EndDate,
			PeriodDays: utils.DaysBetween(*filters.StartDate, *filters.EndDate),
		}

		ctx, cancel := context.WithTimeout(r.Context(), deps.Config.Timeout)
		defer cancel()

		narrative, err := deps.Narrator.Narrate(ctx, id, period, result)
		if err != nil {
			logger.WithFields(log.Fields{
				"account_id": id,
				"error":      err.Error(),
			}).Error("narrative: failed to generate narrative")

			apiErrors.WriteError(w, apiErrors.ErrExternalService, "Erro ao gerar a narrativa", nil)
			return
		}

		deps.Counter.Increment(id)
		deps.Cache.Set(cacheKey, narrative)

		logger.WithFields(log.Fields{
			"account_id": id,
			"model":      narrative.Model,
		}).Info("narrative: generated successfully")

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(narrative); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao codificar resposta", nil)
		}
	})
}
