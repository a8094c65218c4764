package analyzing

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/vfg2006/marketing-intelligence-api/internal/domain"
)

func healthyContext() *domain.AnalysisContext {
	return &domain.AnalysisContext{
		AccountID:      "ACC001",
		AccountMetrics: &domain.AccountMetrics{ROAS: 8.0, CPA: 40.0, Spend: 1000, Revenue: 8000},
		Retention:      &domain.RetentionSummary{ReturnRatePct: 35.0},
		Analytics:      &domain.AnalyticsSummary{Sessions: 5000, ConversionRate: 2.5},
	}
}

func TestComputeHealthScore(t *testing.T) {
	tests := []struct {
		name     string
		mutate   func(actx *domain.AnalysisContext)
		expected float64
	}{
		{
			name:     "Conta saudável em todas as dimensões fica com score máximo",
			mutate:   func(actx *domain.AnalysisContext) {},
			expected: 100,
		},
		{
			name: "ROAS abaixo do alvo desconta proporcionalmente",
			mutate: func(actx *domain.AnalysisContext) {
				// shortfall de (7-3.5)/7 = 50% sobre peso 25
				actx.AccountMetrics.ROAS = 3.5
			},
			expected: 87.5,
		},
		{
			name: "CPA acima do teto desconta proporcionalmente",
			mutate: func(actx *domain.AnalysisContext) {
				// excesso de (120-80)/80 = 50% sobre peso 15
				actx.AccountMetrics.CPA = 120.0
			},
			expected: 92.5,
		},
		{
			name: "Alertas negativos pesam por severidade",
			mutate: func(actx *domain.AnalysisContext) {
				actx.Alerts = []domain.SmartAlert{
					{Severity: domain.SeverityDanger},
					{Severity: domain.SeverityWarn},
					{Severity: domain.SeveritySuccess},
				}
			},
			expected: 89,
		},
		{
			name: "Penalidade de alertas respeita o teto",
			mutate: func(actx *domain.AnalysisContext) {
				alerts := make([]domain.SmartAlert, 10)
				for i := range alerts {
					alerts[i] = domain.SmartAlert{Severity: domain.SeverityDanger}
				}
				actx.Alerts = alerts
			},
			expected: 70,
		},
		{
			name: "Tudo no pior caso nunca fica abaixo de zero",
			mutate: func(actx *domain.AnalysisContext) {
				actx.AccountMetrics = &domain.AccountMetrics{ROAS: 0, CPA: 10000}
				actx.Retention = &domain.RetentionSummary{ReturnRatePct: 0}
				actx.Analytics = &domain.AnalyticsSummary{Sessions: 100, ConversionRate: 0}
				alerts := make([]domain.SmartAlert, 20)
				for i := range alerts {
					alerts[i] = domain.SmartAlert{Severity: domain.SeverityDanger}
				}
				actx.Alerts = alerts
			},
			expected: 0,
		},
		{
			name: "Sem retenção nem analytics as dimensões ausentes não penalizam",
			mutate: func(actx *domain.AnalysisContext) {
				actx.Retention = nil
				actx.Analytics = nil
			},
			expected: 100,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			actx := healthyContext()
			tt.mutate(actx)

			assert.Equal(t, tt.expected, computeHealthScore(actx))
		})
	}
}

// Aproximar qualquer métrica do alvo, mantendo o resto fixo, nunca pode
// reduzir o score
func TestComputeHealthScore_Monotonicidade(t *testing.T) {
	base := healthyContext()
	base.AccountMetrics.ROAS = 2.0
	base.AccountMetrics.CPA = 150.0
	base.Retention.ReturnRatePct = 10.0
	base.Analytics.ConversionRate = 0.5
	base.Alerts = []domain.SmartAlert{{Severity: domain.SeverityDanger}}

	baseScore := computeHealthScore(base)

	improvements := []struct {
		name   string
		mutate func(actx *domain.AnalysisContext)
	}{
		{"ROAS maior", func(a *domain.AnalysisContext) { a.AccountMetrics.ROAS = 5.0 }},
		{"CPA menor", func(a *domain.AnalysisContext) { a.AccountMetrics.CPA = 90.0 }},
		{"Retenção maior", func(a *domain.AnalysisContext) { a.Retention.ReturnRatePct = 25.0 }},
		{"Conversão maior", func(a *domain.AnalysisContext) { a.Analytics.ConversionRate = 1.5 }},
		{"Menos alertas", func(a *domain.AnalysisContext) { a.Alerts = nil }},
	}

	for _, imp := range improvements {
		t.Run(imp.name, func(t *testing.T) {
			improved := healthyContext()
			improved.AccountMetrics.ROAS = 2.0
			improved.AccountMetrics.CPA = 150.0
			improved.Retention.ReturnRatePct = 10.0
			improved.Analytics.ConversionRate = 0.5
			improved.Alerts = []domain.SmartAlert{{Severity: domain.SeverityDanger}}

			imp.mutate(improved)

			assert.GreaterOrEqual(t, computeHealthScore(improved), baseScore)
		})
	}
}
