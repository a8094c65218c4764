package ga

import (
	"fmt"
	"strconv"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/marketing-intelligence-api/infrastructure/integrator/ga/gaclient"
	"github.com/vfg2006/marketing-intelligence-api/internal/cache"
	"github.com/vfg2006/marketing-intelligence-api/internal/config"
	"github.com/vfg2006/marketing-intelligence-api/internal/domain"
	"github.com/vfg2006/marketing-intelligence-api/pkg/utils"
)

// GaIntegrator consulta o provedor de web analytics e entrega os resumos
// já normalizados, com as taxas derivadas no ato da conversão
type GaIntegrator struct {
	cfg    *config.Config
	Client gaclient.Client
	store  *cache.TTLStore
}

func New(cfg *config.Config, client gaclient.Client) *GaIntegrator {
	return &GaIntegrator{
		cfg:    cfg,
		Client: client,
	}
}

// WithCache habilita o cache de curta duração dos relatórios do provedor
func (s *GaIntegrator) WithCache(store *cache.TTLStore) *GaIntegrator {
	s.store = store
	return s
}

// cacheKey monta a chave de cache por relatório, propriedade e período
func cacheKey(report, propertyID string, filters *domain.PeriodFilters) string {
	start, end := "", ""
	if filters != nil && filters.StartDate != nil {
		start = filters.StartDate.Format(time.DateOnly)
	}
	if filters != nil && filters.EndDate != nil {
		end = filters.EndDate.Format(time.DateOnly)
	}

	return fmt.Sprintf("%s:%s:%s:%s", report, propertyID, start, end)
}

func (s *GaIntegrator) Summary(propertyID string, filters *domain.PeriodFilters) (*domain.AnalyticsSummary, error) {
	key := cacheKey("summary", propertyID, filters)
	if s.store != nil {
		if cached, ok := s.store.Get(key); ok {
			return cached.(*domain.AnalyticsSummary), nil
		}
	}

	report, err := s.Client.GetSummaryReport(propertyID, filters)
	if err != nil {
		logrus.WithFields(logrus.Fields{
			"property_id": propertyID,
			"error":       err.Error(),
		}).Error("analytics: failed to get summary report from API")
		return nil, fmt.Errorf("erro ao consultar o resumo de web analytics: %w", err)
	}

	channels := make([]domain.ChannelData, 0, len(report.Channels))
	for _, row := range report.Channels {
		channels = append(channels, domain.ChannelData{
			Channel:   row.Channel,
			Sessions:  row.Sessions,
			Users:     row.Users,
			Purchases: row.Purchases,
			Revenue:   utils.RoundWithTwoDecimalPlace(parseRate(row.Revenue, "revenue")),
		})
	}

	summary := &domain.AnalyticsSummary{
		Sessions:            report.Sessions,
		Users:               report.Users,
		Purchases:           report.Purchases,
		Revenue:             utils.RoundWithTwoDecimalPlace(parseRate(report.Revenue, "revenue")),
		BounceRate:          utils.RoundWithTwoDecimalPlace(parseRate(report.BounceRate, "bounce_rate")),
		CartAbandonmentRate: utils.RoundWithTwoDecimalPlace(parseRate(report.CartAbandonmentRate, "cart_abandonment_rate")),
		ConversionRate:      utils.SafeRatio(float64(report.Purchases)*100, float64(report.Sessions)),
		Channels:            channels,
	}

	if s.store != nil {
		s.store.Set(key, summary)
	}

	return summary, nil
}

func (s *GaIntegrator) Retention(propertyID string, filters *domain.PeriodFilters) (*domain.RetentionSummary, error) {
	key := cacheKey("retention", propertyID, filters)
	if s.store != nil {
		if cached, ok := s.store.Get(key); ok {
			return cached.(*domain.RetentionSummary), nil
		}
	}

	report, err := s.Client.GetRetentionReport(propertyID, filters)
	if err != nil {
		logrus.WithFields(logrus.Fields{
			"property_id": propertyID,
			"error":       err.Error(),
		}).Error("analytics: failed to get retention report from API")
		return nil, fmt.Errorf("erro ao consultar a retenção: %w", err)
	}

	total := report.NewCustomers + report.ReturningCustomers

	retention := &domain.RetentionSummary{
		ReturnRatePct:  utils.SafeRatio(float64(report.ReturningCustomers)*100, float64(total)),
		NewCustomers:   report.NewCustomers,
		ReturningCount: report.ReturningCustomers,
	}

	if s.store != nil {
		s.store.Set(key, retention)
	}

	return retention, nil
}

func (s *GaIntegrator) Funnel(propertyID string, filters *domain.PeriodFilters) ([]domain.FunnelStep, error) {
	key := cacheKey("funnel", propertyID, filters)
	if s.store != nil {
		if cached, ok := s.store.Get(key); ok {
			return cached.([]domain.FunnelStep), nil
		}
	}

	rows, err := s.Client.GetFunnelReport(propertyID, filters)
	if err != nil {
		logrus.WithFields(logrus.Fields{
			"property_id": propertyID,
			"error":       err.Error(),
		}).Error("analytics: failed to get funnel report from API")
		return nil, fmt.Errorf("erro ao consultar o funil: %w", err)
	}

	steps := make([]domain.FunnelStep, 0, len(rows))
	for _, row := range rows {
		steps = append(steps, domain.FunnelStep{
			Step:  row.Step,
			Count: row.Count,
		})
	}

	if s.store != nil {
		s.store.Set(key, steps)
	}

	return steps, nil
}

// CheckProperty verifica se a propriedade existe e está acessível no provedor
func (s *GaIntegrator) CheckProperty(propertyID string) (bool, error) {
	property, err := s.Client.GetProperty(propertyID)
	if err != nil {
		logrus.WithFields(logrus.Fields{
			"property_id": propertyID,
			"error":       err.Error(),
		}).Error("analytics: failed to check property on API")
		return false, fmt.Errorf("erro ao verificar a propriedade: %w", err)
	}

	return property != nil, nil
}

func parseRate(raw, field string) float64 {
	if raw == "" {
		return 0
	}

	value, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		logrus.WithFields(logrus.Fields{
			"field": field,
			"value": raw,
			"error": err.Error(),
		}).Warn("analytics: error converting report value to float")
		return 0
	}

	return value
}
