package analyzing

import (
	"fmt"
	"sync"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/marketing-intelligence-api/infrastructure/repository"
	"github.com/vfg2006/marketing-intelligence-api/internal/domain"
	"github.com/vfg2006/marketing-intelligence-api/internal/usecases/alerting"
	"github.com/vfg2006/marketing-intelligence-api/internal/usecases/classifying"
	"github.com/vfg2006/marketing-intelligence-api/pkg/utils"
)

// Service implementa o motor de análise cognitiva sobre os provedores
// normalizados de anúncios e web analytics
type Service struct {
	adsService        AdsInsighter
	analyticsService  AnalyticsInsighter
	accountRepository repository.AccountRepository
	sink              InsightSink
	now               func() time.Time
}

// NewService cria uma nova instância do motor de análise
func NewService(
	adsService AdsInsighter,
	analyticsService AnalyticsInsighter,
	accountRepo repository.AccountRepository,
) *Service {
	return &Service{
		adsService:        adsService,
		analyticsService:  analyticsService,
		accountRepository: accountRepo,
		now:               time.Now,
	}
}

// WithSink habilita a persistência assíncrona de insights e fotografias
func (s *Service) WithSink(sink InsightSink) *Service {
	s.sink = sink
	return s
}

// AnalyzeAccount busca os dados do período e do período anterior, monta o
// contexto e executa a análise completa
func (s *Service) AnalyzeAccount(accountID string, filters *domain.PeriodFilters) (*domain.IntelligenceResult, error) {
	actx, err := s.buildContext(accountID, filters)
	if err != nil {
		return nil, err
	}

	return s.Analyze(actx)
}

// ComputeAlerts monta o contexto e retorna apenas os alertas do período
func (s *Service) ComputeAlerts(accountID string, filters *domain.PeriodFilters) ([]domain.SmartAlert, error) {
	actx, err := s.buildContext(accountID, filters)
	if err != nil {
		return nil, err
	}

	return actx.Alerts, nil
}

// Analyze executa o motor sobre um contexto já montado. A função é pura:
// o mesmo contexto produz sempre o mesmo resultado e as entradas nunca
// são modificadas.
func (s *Service) Analyze(actx *domain.AnalysisContext) (*domain.IntelligenceResult, error) {
	if actx == nil || actx.AccountMetrics == nil {
		return nil, fmt.Errorf("contexto de análise sem métricas da conta")
	}

	scoped := *actx
	scoped.Skus = classifySkus(actx.Skus)

	insights := buildInsights(&scoped)

	result := &domain.IntelligenceResult{
		HealthScore: computeHealthScore(&scoped),
		TopPriority: findTopPriority(scoped.Alerts),
		QuickWins:   selectQuickWins(insights),
		Insights:    insights,
	}

	s.dispatchPersistence(&scoped, insights)

	return result, nil
}

// classifySkus preenche o status dos SKUs ainda não classificados. O retorno
// são sempre cópias: os ponteiros de entrada podem estar no cache de
// respostas do provedor, compartilhado entre requisições concorrentes.
func classifySkus(skus []*domain.SkuMetrics) []*domain.SkuMetrics {
	classified := make([]*domain.SkuMetrics, 0, len(skus))

	for _, sku := range skus {
		if sku == nil {
			continue
		}

		copied := *sku
		if copied.Status == "" {
			copied.Status = classifying.ClassifySku(&copied)
		}

		classified = append(classified, &copied)
	}

	return classified
}

// buildContext resolve a conta e busca em paralelo os dados do período
// atual, do período anterior e do web analytics. Apenas as métricas da
// conta e os SKUs do período atual são obrigatórios; o restante degrada
// a análise quando indisponível.
func (s *Service) buildContext(accountID string, filters *domain.PeriodFilters) (*domain.AnalysisContext, error) {
	if filters == nil || filters.StartDate == nil || filters.EndDate == nil {
		return nil, fmt.Errorf("é necessário informar as datas de início e fim")
	}

	if filters.StartDate.After(*filters.EndDate) {
		return nil, fmt.Errorf("a data de início não pode ser posterior à data de fim")
	}

	account, err := s.accountRepository.GetAccountByExternalID(accountID)
	if err != nil {
		logrus.WithError(err).Error("Erro ao buscar conta pelo ID no repositório")
		return nil, err
	}

	if account == nil {
		return nil, fmt.Errorf("conta não encontrada: %s", accountID)
	}

	prevStart, prevEnd := utils.PreviousPeriod(*filters.StartDate, *filters.EndDate)
	prevFilters := &domain.PeriodFilters{StartDate: &prevStart, EndDate: &prevEnd}

	var (
		current     *domain.AccountMetrics
		skus        []*domain.SkuMetrics
		campaigns   []*domain.CampaignMetrics
		daily       []domain.DailyPoint
		previous    *domain.PeriodMetrics
		analytics   *domain.AnalyticsSummary
		retention   *domain.RetentionSummary
		funnel      []domain.FunnelStep
		currentErr  error
		skuErr      error
		campaignErr error
		dailyErr    error
		previousErr error
	)

	wg := sync.WaitGroup{}
	wg.Add(5)

	go func() {
		defer wg.Done()
		current, currentErr = s.adsService.AccountTotals(account.ExternalID, filters)
	}()

	go func() {
		defer wg.Done()
		skus, skuErr = s.adsService.AllSkuMetrics(account.ExternalID, filters)
	}()

	go func() {
		defer wg.Done()
		campaigns, campaignErr = s.adsService.AllCampaignMetrics(account.ExternalID, filters)
		if campaignErr == nil {
			daily, dailyErr = s.adsService.DailySeries(account.ExternalID, filters)
		}
	}()

	go func() {
		defer wg.Done()
		previous, previousErr = s.fetchPreviousPeriod(account.ExternalID, prevFilters)
	}()

	go func() {
		defer wg.Done()
		if account.PropertyID == nil || *account.PropertyID == "" {
			return
		}
		analytics, retention, funnel = s.fetchAnalytics(*account.PropertyID, filters)
	}()

	wg.Wait()

	// Entradas obrigatórias abortam a análise
	if currentErr != nil {
		logrus.WithError(currentErr).Error("Erro ao buscar métricas da conta no provedor de anúncios")
		return nil, currentErr
	}

	if skuErr != nil {
		logrus.WithError(skuErr).Error("Erro ao buscar métricas por SKU no provedor de anúncios")
		return nil, skuErr
	}

	// Entradas opcionais apenas degradam o contexto
	if campaignErr != nil {
		logrus.WithError(campaignErr).Warn("Erro ao buscar métricas por campanha; seguindo sem elas")
		campaigns = nil
	}

	if dailyErr != nil {
		logrus.WithError(dailyErr).Warn("Erro ao buscar série diária; seguindo sem tendência")
		daily = nil
	}

	if previousErr != nil {
		logrus.WithError(previousErr).Warn("Erro ao buscar período anterior; seguindo sem comparação")
		previous = nil
	}

	actx := &domain.AnalysisContext{
		AccountID:      account.ID,
		Period:         buildPeriodMeta(*filters.StartDate, *filters.EndDate),
		AccountMetrics: current,
		Skus:           skus,
		Campaigns:      campaigns,
		Analytics:      analytics,
		Retention:      retention,
		Funnel:         funnel,
	}

	if previous != nil {
		actx.PreviousAccount = previous.Account
	}

	currentPeriod := &domain.PeriodMetrics{
		Account:   current,
		Campaigns: campaigns,
		Skus:      skus,
	}

	actx.Alerts = alerting.ComputeAllSmartAlerts(currentPeriod, previous, daily, retention)

	return actx, nil
}

// fetchPreviousPeriod busca os agregados do período anterior. Qualquer
// falha parcial invalida a comparação inteira, para não comparar janelas
// incompletas.
func (s *Service) fetchPreviousPeriod(accountExternalID string, filters *domain.PeriodFilters) (*domain.PeriodMetrics, error) {
	account, err := s.adsService.AccountTotals(accountExternalID, filters)
	if err != nil {
		return nil, err
	}

	if account == nil || account.IsEmpty() {
		return nil, nil
	}

	campaigns, err := s.adsService.AllCampaignMetrics(accountExternalID, filters)
	if err != nil {
		return nil, err
	}

	skus, err := s.adsService.AllSkuMetrics(accountExternalID, filters)
	if err != nil {
		return nil, err
	}

	return &domain.PeriodMetrics{
		Account:   account,
		Campaigns: campaigns,
		Skus:      skus,
	}, nil
}

// fetchAnalytics busca os três relatórios de web analytics. Cada falha
// degrada apenas o relatório correspondente; os demais seguem no contexto.
func (s *Service) fetchAnalytics(propertyID string, filters *domain.PeriodFilters) (*domain.AnalyticsSummary, *domain.RetentionSummary, []domain.FunnelStep) {
	summary, err := s.analyticsService.Summary(propertyID, filters)
	if err != nil {
		logrus.WithError(err).Warn("Erro ao buscar resumo de web analytics; seguindo sem ele")
		summary = nil
	}

	retention, err := s.analyticsService.Retention(propertyID, filters)
	if err != nil {
		logrus.WithError(err).Warn("Erro ao buscar retenção; seguindo sem ela")
		retention = nil
	}

	funnel, err := s.analyticsService.Funnel(propertyID, filters)
	if err != nil {
		logrus.WithError(err).Warn("Erro ao buscar funil; seguindo sem ele")
		funnel = nil
	}

	return summary, retention, funnel
}

// dispatchPersistence envia os insights e, quando o período termina no dia
// corrente, a fotografia do dia ao destino de persistência, fora do caminho
// da resposta. Falhas são apenas registradas em log.
func (s *Service) dispatchPersistence(actx *domain.AnalysisContext, insights []domain.Insight) {
	if s.sink == nil {
		return
	}

	accountID := actx.AccountID
	period := actx.Period

	if len(insights) > 0 {
		toPersist := make([]domain.Insight, len(insights))
		copy(toPersist, insights)

		go func() {
			if err := s.sink.AppendInsights(accountID, period, toPersist); err != nil {
				logrus.WithError(err).WithField("accountID", accountID).
					Error("Erro ao persistir insights da análise")
			}
		}()
	}

	if !sameDay(period.EndDate, s.now()) {
		return
	}

	snapshot := &domain.DailySnapshot{
		AccountID: accountID,
		Date:      period.EndDate,
		Account:   actx.AccountMetrics,
		Skus:      actx.Skus,
	}

	go func() {
		if err := s.sink.AppendDailySnapshot(snapshot); err != nil {
			logrus.WithError(err).WithField("accountID", accountID).
				Error("Erro ao persistir a fotografia do dia")
		}
	}()
}

func sameDay(a, b time.Time) bool {
	return a.Year() == b.Year() && a.Month() == b.Month() && a.Day() == b.Day()
}

func buildPeriodMeta(start, end time.Time) domain.PeriodMeta {
	return domain.PeriodMeta{
		StartDate:   start,
		EndDate:     end,
		PeriodDays:  utils.DaysBetween(start, end),
		DayOfMonth:  end.Day(),
		DaysInMonth: time.Date(end.Year(), end.Month()+1, 0, 0, 0, 0, 0, end.Location()).Day(),
	}
}
