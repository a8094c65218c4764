package analyzing

import (
	"github.com/vfg2006/marketing-intelligence-api/internal/domain"
)

// AdsInsighter define o contrato consumido do provedor de anúncios,
// já na forma normalizada
type AdsInsighter interface {
	// AccountTotals obtém os totais da conta para um período
	AccountTotals(accountExternalID string, filters *domain.PeriodFilters) (*domain.AccountMetrics, error)

	// AllSkuMetrics obtém as métricas por SKU para um período
	AllSkuMetrics(accountExternalID string, filters *domain.PeriodFilters) ([]*domain.SkuMetrics, error)

	// AllCampaignMetrics obtém as métricas por campanha para um período
	AllCampaignMetrics(accountExternalID string, filters *domain.PeriodFilters) ([]*domain.CampaignMetrics, error)

	// DailySeries obtém a série diária da conta para um período
	DailySeries(accountExternalID string, filters *domain.PeriodFilters) ([]domain.DailyPoint, error)
}

// AnalyticsInsighter define o contrato consumido do provedor de web analytics
type AnalyticsInsighter interface {
	// Summary obtém o resumo do período, incluindo a quebra por canal
	Summary(propertyID string, filters *domain.PeriodFilters) (*domain.AnalyticsSummary, error)

	// Retention obtém o resumo de retenção por coorte
	Retention(propertyID string, filters *domain.PeriodFilters) (*domain.RetentionSummary, error)

	// Funnel obtém as contagens dos passos do funil de conversão
	Funnel(propertyID string, filters *domain.PeriodFilters) ([]domain.FunnelStep, error)
}

// InsightSink é o destino de persistência dos insights e fotografias
// diárias. As chamadas são sempre append-only e disparadas fora do caminho
// da resposta: falhas são registradas em log e nunca propagadas.
type InsightSink interface {
	AppendInsights(accountID string, period domain.PeriodMeta, insights []domain.Insight) error
	AppendDailySnapshot(snapshot *domain.DailySnapshot) error
}

// Analyzer é a interface do motor de análise cognitiva
type Analyzer interface {
	// AnalyzeAccount busca os dados das integrações, monta o contexto de
	// análise e produz o resultado completo de inteligência
	AnalyzeAccount(accountID string, filters *domain.PeriodFilters) (*domain.IntelligenceResult, error)

	// ComputeAlerts produz apenas os alertas inteligentes do período
	ComputeAlerts(accountID string, filters *domain.PeriodFilters) ([]domain.SmartAlert, error)

	// Analyze executa o motor sobre um contexto já montado
	Analyze(actx *domain.AnalysisContext) (*domain.IntelligenceResult, error)
}
