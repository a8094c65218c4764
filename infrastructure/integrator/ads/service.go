package ads

import (
	"fmt"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/marketing-intelligence-api/infrastructure/integrator/ads/adsclient"
	"github.com/vfg2006/marketing-intelligence-api/infrastructure/repository"
	"github.com/vfg2006/marketing-intelligence-api/internal/cache"
	"github.com/vfg2006/marketing-intelligence-api/internal/config"
	"github.com/vfg2006/marketing-intelligence-api/internal/domain"
)

// AdsIntegrator consulta o provedor de anúncios e entrega as métricas já
// normalizadas, enriquecendo os SKUs com os dados cadastrais da base local
type AdsIntegrator struct {
	cfg     *config.Config
	Client  adsclient.Client
	skuRepo repository.SkuExtrasRepository
	store   *cache.TTLStore
}

func New(cfg *config.Config, client adsclient.Client, skuRepo repository.SkuExtrasRepository) *AdsIntegrator {
	return &AdsIntegrator{
		cfg:     cfg,
		Client:  client,
		skuRepo: skuRepo,
	}
}

// WithCache habilita o cache de curta duração das respostas do provedor
func (s *AdsIntegrator) WithCache(store *cache.TTLStore) *AdsIntegrator {
	s.store = store
	return s
}

// cacheKey monta a chave de cache por endpoint, conta e período
func cacheKey(endpoint, accountExternalID string, filters *domain.PeriodFilters) string {
	start, end := "", ""
	if filters != nil && filters.StartDate != nil {
		start = filters.StartDate.Format(time.DateOnly)
	}
	if filters != nil && filters.EndDate != nil {
		end = filters.EndDate.Format(time.DateOnly)
	}

	return fmt.Sprintf("%s:%s:%s:%s", endpoint, accountExternalID, start, end)
}

func (s *AdsIntegrator) AccountTotals(accountExternalID string, filters *domain.PeriodFilters) (*domain.AccountMetrics, error) {
	key := cacheKey("account_totals", accountExternalID, filters)
	if s.store != nil {
		if cached, ok := s.store.Get(key); ok {
			return cached.(*domain.AccountMetrics), nil
		}
	}

	resp, err := s.Client.GetAccountInsights(accountExternalID, filters)
	if err != nil {
		logrus.WithFields(logrus.Fields{
			"account_id": accountExternalID,
			"error":      err.Error(),
		}).Error("insights: failed to get account totals from API")
		return nil, fmt.Errorf("erro ao consultar os totais da conta: %w", err)
	}

	totals := FactoryAccountMetrics(resp)
	if s.store != nil {
		s.store.Set(key, totals)
	}

	return totals, nil
}

func (s *AdsIntegrator) AllSkuMetrics(accountExternalID string, filters *domain.PeriodFilters) ([]*domain.SkuMetrics, error) {
	key := cacheKey("sku_metrics", accountExternalID, filters)
	if s.store != nil {
		if cached, ok := s.store.Get(key); ok {
			return cached.([]*domain.SkuMetrics), nil
		}
	}

	resp, err := s.Client.GetSkuInsights(accountExternalID, filters)
	if err != nil {
		logrus.WithFields(logrus.Fields{
			"account_id": accountExternalID,
			"error":      err.Error(),
		}).Error("insights: failed to get sku insights from API")
		return nil, fmt.Errorf("erro ao consultar as métricas por SKU: %w", err)
	}

	extras, err := s.skuRepo.GetByAccount(accountExternalID)
	if err != nil {
		// Sem a base cadastral todos os SKUs seguem com os defaults
		logrus.WithFields(logrus.Fields{
			"account_id": accountExternalID,
			"error":      err.Error(),
		}).Warn("insights: failed to load sku extras, using defaults")
		extras = nil
	}

	skus := make([]*domain.SkuMetrics, 0, len(resp))
	for _, insight := range resp {
		skus = append(skus, FactorySkuMetrics(insight, extras[insight.SKU]))
	}

	if s.store != nil {
		s.store.Set(key, skus)
	}

	return skus, nil
}

func (s *AdsIntegrator) AllCampaignMetrics(accountExternalID string, filters *domain.PeriodFilters) ([]*domain.CampaignMetrics, error) {
	key := cacheKey("campaign_metrics", accountExternalID, filters)
	if s.store != nil {
		if cached, ok := s.store.Get(key); ok {
			return cached.([]*domain.CampaignMetrics), nil
		}
	}

	resp, err := s.Client.GetCampaignInsights(accountExternalID, filters)
	if err != nil {
		logrus.WithFields(logrus.Fields{
			"account_id": accountExternalID,
			"error":      err.Error(),
		}).Error("insights: failed to get campaign insights from API")
		return nil, fmt.Errorf("erro ao consultar as métricas por campanha: %w", err)
	}

	campaigns := make([]*domain.CampaignMetrics, 0, len(resp))
	for _, insight := range resp {
		campaigns = append(campaigns, FactoryCampaignMetrics(insight))
	}

	if s.store != nil {
		s.store.Set(key, campaigns)
	}

	return campaigns, nil
}

func (s *AdsIntegrator) DailySeries(accountExternalID string, filters *domain.PeriodFilters) ([]domain.DailyPoint, error) {
	key := cacheKey("daily_series", accountExternalID, filters)
	if s.store != nil {
		if cached, ok := s.store.Get(key); ok {
			return cached.([]domain.DailyPoint), nil
		}
	}

	resp, err := s.Client.GetDailyInsights(accountExternalID, filters)
	if err != nil {
		logrus.WithFields(logrus.Fields{
			"account_id": accountExternalID,
			"error":      err.Error(),
		}).Error("insights: failed to get daily insights from API")
		return nil, fmt.Errorf("erro ao consultar a série diária: %w", err)
	}

	series := make([]domain.DailyPoint, 0, len(resp))
	for _, insight := range resp {
		point, ok := FactoryDailyPoint(insight)
		if !ok {
			continue
		}
		series = append(series, point)
	}

	if s.store != nil {
		s.store.Set(key, series)
	}

	return series, nil
}

// ListAccounts lista as contas disponíveis no provedor para sincronização
func (s *AdsIntegrator) ListAccounts() ([]*domain.Account, error) {
	resp, err := s.Client.ListAdAccounts()
	if err != nil {
		logrus.WithError(err).Error("accounts: failed to list ad accounts from API")
		return nil, fmt.Errorf("erro ao listar as contas do provedor: %w", err)
	}

	accounts := make([]*domain.Account, 0, len(resp))
	for _, account := range resp {
		accounts = append(accounts, &domain.Account{
			ExternalID: account.ID,
			Name:       account.Name,
		})
	}

	return accounts, nil
}
