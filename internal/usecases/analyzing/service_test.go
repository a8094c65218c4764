package analyzing

import (
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	repomocks "github.com/vfg2006/marketing-intelligence-api/infrastructure/repository/mocks"
	"github.com/vfg2006/marketing-intelligence-api/internal/domain"
	"github.com/vfg2006/marketing-intelligence-api/internal/usecases/analyzing/mocks"
	"go.uber.org/mock/gomock"
)

func analysisContextFixture() *domain.AnalysisContext {
	return &domain.AnalysisContext{
		AccountID: "ACC001",
		Period: domain.PeriodMeta{
			StartDate:  time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC),
			EndDate:    time.Date(2025, 3, 15, 0, 0, 0, 0, time.UTC),
			PeriodDays: 15,
		},
		AccountMetrics: domain.NewAccountMetrics(1260.21, 150000, 4200, 30, 6000),
		Skus: []*domain.SkuMetrics{
			{SKU: "SKU-A", Spend: 200, Conversions: 0, ROAS: 0, CPA: 0, MarginPct: 30},
			{SKU: "SKU-B", Spend: 300, Conversions: 10, ROAS: 9, CPA: 30, MarginPct: 40, Stock: 50},
		},
		Retention: &domain.RetentionSummary{ReturnRatePct: 12.0, NewCustomers: 80, ReturningCount: 11},
		Alerts: []domain.SmartAlert{
			{
				ID:       "account-roas-drop",
				Category: domain.CategoryAccount,
				Severity: domain.SeverityDanger,
				Title:    "Queda acentuada de ROAS",
				Metric:   "roas",
				DeltaPct: -35.66,
			},
			{
				ID:       "sku-SKU-A-waste",
				Category: domain.CategorySku,
				Severity: domain.SeverityDanger,
				Metric:   "conversions",
				DeltaPct: -100,
			},
			{
				ID:       "retention-low",
				Category: domain.CategoryRetention,
				Severity: domain.SeverityWarn,
				Metric:   "return_rate",
				DeltaPct: -60,
			},
		},
	}
}

func TestService_Analyze(t *testing.T) {
	service := NewService(nil, nil, nil)

	t.Run("Contexto sem métricas da conta é rejeitado", func(t *testing.T) {
		_, err := service.Analyze(&domain.AnalysisContext{AccountID: "ACC001"})
		assert.Error(t, err)
	})

	t.Run("Análise completa produz score, prioridade e quick wins", func(t *testing.T) {
		actx := analysisContextFixture()

		result, err := service.Analyze(actx)
		require.NoError(t, err)
		require.NotNil(t, result)

		assert.GreaterOrEqual(t, result.HealthScore, 0.0)
		assert.LessOrEqual(t, result.HealthScore, 100.0)

		// Dois alertas danger; empate resolvido pelo maior |deltaPct|
		require.NotNil(t, result.TopPriority)
		assert.Equal(t, "sku-SKU-A-waste", result.TopPriority.ID)

		assert.NotEmpty(t, result.Insights)
		assert.LessOrEqual(t, len(result.QuickWins), 3)
		for _, win := range result.QuickWins {
			assert.True(t, win.QuickWin)
		}
	})

	t.Run("SKUs sem status são classificados sem alterar a entrada", func(t *testing.T) {
		actx := analysisContextFixture()

		result, err := service.Analyze(actx)
		require.NoError(t, err)

		// Os ponteiros de entrada podem estar no cache de respostas do
		// provedor e não podem ser tocados
		assert.Empty(t, actx.Skus[0].Status)
		assert.Empty(t, actx.Skus[1].Status)

		ids := make([]string, 0, len(result.Insights))
		for _, insight := range result.Insights {
			ids = append(ids, insight.ID)
		}

		assert.Contains(t, ids, "sku-pause-candidates")
		assert.Contains(t, ids, "sku-escalate-candidates")
	})

	t.Run("Análises concorrentes sobre os mesmos SKUs não interferem", func(t *testing.T) {
		shared := analysisContextFixture()
		other := analysisContextFixture()
		other.Skus = shared.Skus

		var wg sync.WaitGroup
		wg.Add(2)

		for _, actx := range []*domain.AnalysisContext{shared, other} {
			go func(a *domain.AnalysisContext) {
				defer wg.Done()

				_, err := service.Analyze(a)
				assert.NoError(t, err)
			}(actx)
		}

		wg.Wait()
	})

	t.Run("Sem alertas negativos a prioridade fica vazia", func(t *testing.T) {
		actx := analysisContextFixture()
		actx.Alerts = []domain.SmartAlert{
			{ID: "account-roas-gain", Category: domain.CategoryAccount, Severity: domain.SeveritySuccess},
		}

		result, err := service.Analyze(actx)
		require.NoError(t, err)

		assert.Nil(t, result.TopPriority)
	})

	t.Run("O mesmo contexto produz sempre o mesmo resultado", func(t *testing.T) {
		first, err := service.Analyze(analysisContextFixture())
		require.NoError(t, err)

		second, err := service.Analyze(analysisContextFixture())
		require.NoError(t, err)

		assert.Equal(t, first, second)
	})
}

func TestService_Analyze_PersistenciaAssincrona(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	persisted := make(chan struct{})

	mockSink := mocks.NewMockInsightSink(ctrl)
	mockSink.EXPECT().
		AppendInsights("ACC001", gomock.Any(), gomock.Any()).
		DoAndReturn(func(string, domain.PeriodMeta, []domain.Insight) error {
			close(persisted)
			return nil
		})

	service := NewService(nil, nil, nil).WithSink(mockSink)

	result, err := service.Analyze(analysisContextFixture())
	require.NoError(t, err)
	require.NotNil(t, result)

	select {
	case <-persisted:
	case <-time.After(2 * time.Second):
		t.Fatal("persistência de insights não foi disparada")
	}
}

func TestService_Analyze_FotografiaDoDia(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	persisted := make(chan struct{})

	actx := analysisContextFixture()

	mockSink := mocks.NewMockInsightSink(ctrl)
	mockSink.EXPECT().
		AppendInsights("ACC001", gomock.Any(), gomock.Any()).
		Return(nil)
	mockSink.EXPECT().
		AppendDailySnapshot(gomock.Any()).
		DoAndReturn(func(snapshot *domain.DailySnapshot) error {
			assert.Equal(t, "ACC001", snapshot.AccountID)
			assert.Equal(t, actx.Period.EndDate, snapshot.Date)
			assert.Equal(t, actx.AccountMetrics, snapshot.Account)

			// A fotografia carrega os SKUs já classificados
			require.Len(t, snapshot.Skus, 2)
			assert.Equal(t, domain.SkuStatusPause, snapshot.Skus[0].Status)
			assert.Equal(t, domain.SkuStatusEscalate, snapshot.Skus[1].Status)

			close(persisted)
			return nil
		})

	service := NewService(nil, nil, nil).WithSink(mockSink)
	// Período encerrado no dia corrente dispara a fotografia
	service.now = func() time.Time {
		return actx.Period.EndDate.Add(20 * time.Hour)
	}

	_, err := service.Analyze(actx)
	require.NoError(t, err)

	select {
	case <-persisted:
	case <-time.After(2 * time.Second):
		t.Fatal("fotografia do dia não foi disparada")
	}
}

func TestService_Analyze_FalhaDePersistenciaNaoPropaga(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	persisted := make(chan struct{})

	mockSink := mocks.NewMockInsightSink(ctrl)
	mockSink.EXPECT().
		AppendInsights(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(string, domain.PeriodMeta, []domain.Insight) error {
			close(persisted)
			return errors.New("banco fora do ar")
		})

	service := NewService(nil, nil, nil).WithSink(mockSink)

	_, err := service.Analyze(analysisContextFixture())
	assert.NoError(t, err)

	<-persisted
}

func TestService_AnalyzeAccount(t *testing.T) {
	startDate := time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)
	endDate := time.Date(2025, 3, 15, 0, 0, 0, 0, time.UTC)
	filters := &domain.PeriodFilters{StartDate: &startDate, EndDate: &endDate}

	account := &domain.Account{
		ID:         "ACC001",
		ExternalID: "act_123",
		Name:       "Loja A",
		Status:     domain.AccountStatusActive,
	}

	t.Run("Filtros sem datas são rejeitados", func(t *testing.T) {
		service := NewService(nil, nil, nil)

		_, err := service.AnalyzeAccount("act_123", &domain.PeriodFilters{})
		assert.Error(t, err)
	})

	t.Run("Data de início posterior à de fim é rejeitada", func(t *testing.T) {
		service := NewService(nil, nil, nil)

		inverted := &domain.PeriodFilters{StartDate: &endDate, EndDate: &startDate}
		_, err := service.AnalyzeAccount("act_123", inverted)
		assert.Error(t, err)
	})

	t.Run("Conta inexistente é rejeitada", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockAccountRepo := repomocks.NewMockAccountRepository(ctrl)
		mockAccountRepo.EXPECT().GetAccountByExternalID("act_999").Return(nil, nil)

		service := NewService(nil, nil, mockAccountRepo)

		_, err := service.AnalyzeAccount("act_999", filters)
		assert.Error(t, err)
	})

	t.Run("Análise completa com período anterior e sem web analytics", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockAccountRepo := repomocks.NewMockAccountRepository(ctrl)
		mockAccountRepo.EXPECT().GetAccountByExternalID("act_123").Return(account, nil)

		metrics := domain.NewAccountMetrics(1000, 100000, 3000, 25, 7500)
		skus := []*domain.SkuMetrics{
			{SKU: "SKU-B", Spend: 300, Conversions: 10, ROAS: 9, CPA: 30, MarginPct: 40, Stock: 50},
		}

		mockAds := mocks.NewMockAdsInsighter(ctrl)
		// Período atual e período anterior compartilham as mesmas buscas
		mockAds.EXPECT().AccountTotals("act_123", gomock.Any()).Return(metrics, nil).Times(2)
		mockAds.EXPECT().AllSkuMetrics("act_123", gomock.Any()).Return(skus, nil).Times(2)
		mockAds.EXPECT().AllCampaignMetrics("act_123", gomock.Any()).Return(nil, nil).Times(2)
		mockAds.EXPECT().DailySeries("act_123", gomock.Any()).Return(nil, nil)

		service := NewService(mockAds, nil, mockAccountRepo)

		result, err := service.AnalyzeAccount("act_123", filters)
		require.NoError(t, err)
		require.NotNil(t, result)

		// Períodos idênticos não geram alertas negativos
		assert.Nil(t, result.TopPriority)
		assert.GreaterOrEqual(t, result.HealthScore, 0.0)
	})

	t.Run("Falha parcial do web analytics mantém os relatórios obtidos", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		propertyID := "prop_1"
		accountWithProperty := &domain.Account{
			ID:         "ACC001",
			ExternalID: "act_123",
			PropertyID: &propertyID,
			Status:     domain.AccountStatusActive,
		}

		mockAccountRepo := repomocks.NewMockAccountRepository(ctrl)
		mockAccountRepo.EXPECT().GetAccountByExternalID("act_123").Return(accountWithProperty, nil)

		metrics := domain.NewAccountMetrics(1000, 100000, 3000, 25, 7500)

		mockAds := mocks.NewMockAdsInsighter(ctrl)
		mockAds.EXPECT().AccountTotals("act_123", gomock.Any()).Return(metrics, nil).Times(2)
		mockAds.EXPECT().AllSkuMetrics("act_123", gomock.Any()).Return(nil, nil).Times(2)
		mockAds.EXPECT().AllCampaignMetrics("act_123", gomock.Any()).Return(nil, nil).Times(2)
		mockAds.EXPECT().DailySeries("act_123", gomock.Any()).Return(nil, nil)

		summary := &domain.AnalyticsSummary{
			Sessions:       10000,
			Users:          8000,
			Purchases:      100,
			ConversionRate: 1.0,
		}

		quotaErr := errors.New("quota do provedor excedida")

		mockAnalytics := mocks.NewMockAnalyticsInsighter(ctrl)
		mockAnalytics.EXPECT().Summary(propertyID, gomock.Any()).Return(summary, nil)
		mockAnalytics.EXPECT().Retention(propertyID, gomock.Any()).Return(nil, quotaErr)
		mockAnalytics.EXPECT().Funnel(propertyID, gomock.Any()).Return(nil, quotaErr)

		service := NewService(mockAds, mockAnalytics, mockAccountRepo)

		result, err := service.AnalyzeAccount("act_123", filters)
		require.NoError(t, err)

		// O resumo obtido segue no contexto mesmo com os demais relatórios
		// indisponíveis
		ids := make([]string, 0, len(result.Insights))
		for _, insight := range result.Insights {
			ids = append(ids, insight.ID)
		}
		assert.Contains(t, ids, "funnel-conversion")
	})

	t.Run("Falha no provedor de anúncios aborta a análise", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockAccountRepo := repomocks.NewMockAccountRepository(ctrl)
		mockAccountRepo.EXPECT().GetAccountByExternalID("act_123").Return(account, nil)

		providerErr := errors.New("provedor indisponível")

		mockAds := mocks.NewMockAdsInsighter(ctrl)
		mockAds.EXPECT().AccountTotals("act_123", gomock.Any()).Return(nil, providerErr).Times(2)
		mockAds.EXPECT().AllSkuMetrics("act_123", gomock.Any()).Return(nil, nil)
		mockAds.EXPECT().AllCampaignMetrics("act_123", gomock.Any()).Return(nil, nil)
		mockAds.EXPECT().DailySeries("act_123", gomock.Any()).Return(nil, nil)

		service := NewService(mockAds, nil, mockAccountRepo)

		_, err := service.AnalyzeAccount("act_123", filters)
		assert.ErrorIs(t, err, providerErr)
	})
}

func TestService_ComputeAlerts(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	startDate := time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)
	endDate := time.Date(2025, 3, 15, 0, 0, 0, 0, time.UTC)
	filters := &domain.PeriodFilters{StartDate: &startDate, EndDate: &endDate}

	account := &domain.Account{ID: "ACC001", ExternalID: "act_123"}

	mockAccountRepo := repomocks.NewMockAccountRepository(ctrl)
	mockAccountRepo.EXPECT().GetAccountByExternalID("act_123").Return(account, nil)

	current := domain.NewAccountMetrics(1260.21, 150000, 4200, 30, 6000)
	previous := domain.NewAccountMetrics(1223.50, 140000, 4100, 45, 9053)

	mockAds := mocks.NewMockAdsInsighter(ctrl)
	mockAds.EXPECT().AccountTotals("act_123", gomock.Any()).
		DoAndReturn(func(_ string, f *domain.PeriodFilters) (*domain.AccountMetrics, error) {
			if f.StartDate.Before(startDate) {
				return previous, nil
			}
			return current, nil
		}).Times(2)
	mockAds.EXPECT().AllSkuMetrics("act_123", gomock.Any()).Return(nil, nil).Times(2)
	mockAds.EXPECT().AllCampaignMetrics("act_123", gomock.Any()).Return(nil, nil).Times(2)
	mockAds.EXPECT().DailySeries("act_123", gomock.Any()).Return(nil, nil)

	service := NewService(mockAds, nil, mockAccountRepo)

	alerts, err := service.ComputeAlerts("act_123", filters)
	require.NoError(t, err)
	require.NotEmpty(t, alerts)

	assert.Equal(t, "account-roas-drop", alerts[0].ID)
	assert.Equal(t, domain.SeverityDanger, alerts[0].Severity)
}
