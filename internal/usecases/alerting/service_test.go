package alerting

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/marketing-intelligence-api/internal/domain"
)

func TestComputeAllSmartAlerts_AccountRoasDrop(t *testing.T) {
	// Queda de ROAS de 7.40 para 4.76 (~-35.7%) deve gerar um alerta danger
	current := &domain.PeriodMetrics{
		Account: domain.NewAccountMetrics(1260.21, 10000, 500, 80, 6000),
	}
	previous := &domain.PeriodMetrics{
		Account: domain.NewAccountMetrics(1223.50, 11000, 520, 110, 9053),
	}

	alerts := ComputeAllSmartAlerts(current, previous, nil, nil)

	require.Len(t, alerts, 1)
	assert.Equal(t, domain.CategoryAccount, alerts[0].Category)
	assert.Equal(t, domain.SeverityDanger, alerts[0].Severity)
	assert.Equal(t, "roas", alerts[0].Metric)
	assert.InDelta(t, 4.76, alerts[0].CurrentValue, 0.01)
	assert.InDelta(t, 7.40, alerts[0].PreviousValue, 0.01)
	assert.InDelta(t, -35.7, alerts[0].DeltaPct, 0.2)
}

func TestComputeAllSmartAlerts_SkuWasteSignal(t *testing.T) {
	// SKU com gasto e zero conversões deve gerar alerta danger de desperdício
	current := &domain.PeriodMetrics{
		Skus: []*domain.SkuMetrics{
			domain.NewSkuMetrics("SKU-9", 0, 93.33, 500, 20, 0, nil),
		},
	}
	previous := &domain.PeriodMetrics{
		Skus: []*domain.SkuMetrics{
			domain.NewSkuMetrics("SKU-9", 300, 80, 450, 18, 1.5, nil),
		},
	}

	alerts := ComputeAllSmartAlerts(current, previous, nil, nil)

	var waste *domain.SmartAlert
	for i := range alerts {
		if alerts[i].ID == "sku-SKU-9-waste" {
			waste = &alerts[i]
		}
	}

	require.NotNil(t, waste, "alerta de desperdício deveria existir")
	assert.Equal(t, domain.CategorySku, waste.Category)
	assert.Equal(t, domain.SeverityDanger, waste.Severity)
	assert.Equal(t, 1.5, waste.PreviousValue)
	assert.Equal(t, 0.0, waste.DeltaPct)
}

func TestComputeAllSmartAlerts_NoPreviousPeriod(t *testing.T) {
	// Período anterior ausente degrada para lista vazia, nunca erro
	current := &domain.PeriodMetrics{
		Account: domain.NewAccountMetrics(1000, 5000, 200, 10, 3000),
		Campaigns: []*domain.CampaignMetrics{
			domain.NewCampaignMetrics("c1", "Campanha 1", domain.ChannelSocial, domain.CampaignActive, 500, 1500, 5, 2000, 100),
		},
	}

	alerts := ComputeAllSmartAlerts(current, nil, nil, nil)
	assert.Empty(t, alerts)
}

func TestComputeAllSmartAlerts_ZeroPreviousNeverDivides(t *testing.T) {
	// Valor anterior zero com atual não-zero deve resultar em deltaPct 0
	current := &domain.PeriodMetrics{
		Account: domain.NewAccountMetrics(1000, 5000, 200, 10, 8000),
	}
	previous := &domain.PeriodMetrics{
		Account: domain.NewAccountMetrics(0, 0, 0, 0, 0),
	}

	alerts := ComputeAllSmartAlerts(current, previous, nil, nil)

	for _, alert := range alerts {
		assert.Equal(t, 0.0, alert.DeltaPct)
	}
}

func TestComputeAllSmartAlerts_CampaignOutliers(t *testing.T) {
	mk := func(id string, spend, revenue, conversions float64) *domain.CampaignMetrics {
		return domain.NewCampaignMetrics(id, "Campanha "+id, domain.ChannelSocial, domain.CampaignActive, spend, revenue, conversions, 1000, 100)
	}

	current := &domain.PeriodMetrics{
		Campaigns: []*domain.CampaignMetrics{
			mk("queda", 500, 1000, 10),   // ROAS 2 vs 8: -75%, danger
			mk("estavel", 500, 4000, 10), // ROAS 8 vs 8: sem alerta
			mk("pequena", 50, 10, 1),     // Gasto abaixo do piso: ignorada
			mk("nova", 500, 100, 1),      // Sem par no período anterior: ignorada
		},
	}
	previous := &domain.PeriodMetrics{
		Campaigns: []*domain.CampaignMetrics{
			mk("queda", 500, 4000, 10),
			mk("estavel", 500, 4000, 10),
			mk("pequena", 50, 400, 1),
			mk("encerrada", 900, 100, 1), // Só existia antes: ignorada
		},
	}

	alerts := ComputeAllSmartAlerts(current, previous, nil, nil)

	require.Len(t, alerts, 1)
	assert.Equal(t, domain.CategoryCampaign, alerts[0].Category)
	assert.Equal(t, domain.SeverityDanger, alerts[0].Severity)
	require.NotNil(t, alerts[0].EntityID)
	assert.Equal(t, "queda", *alerts[0].EntityID)
}

func TestComputeAllSmartAlerts_TrendRun(t *testing.T) {
	day := func(offset int, roas float64) domain.DailyPoint {
		base := time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC)
		return domain.DailyPoint{Date: base.AddDate(0, 0, offset), ROAS: roas}
	}

	tests := []struct {
		name     string
		daily    []domain.DailyPoint
		expected int
		severity domain.AlertSeverity
	}{
		{
			name:     "Três dias de queda não disparam alerta",
			daily:    []domain.DailyPoint{day(0, 8), day(1, 7), day(2, 6), day(3, 6.5)},
			expected: 0,
		},
		{
			name:     "Quatro dias de queda geram warn",
			daily:    []domain.DailyPoint{day(0, 8), day(1, 7), day(2, 6), day(3, 5)},
			expected: 1,
			severity: domain.SeverityWarn,
		},
		{
			name: "Seis dias de queda geram danger",
			daily: []domain.DailyPoint{
				day(0, 9), day(1, 8), day(2, 7), day(3, 6), day(4, 5), day(5, 4),
			},
			expected: 1,
			severity: domain.SeverityDanger,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			alerts := ComputeAllSmartAlerts(&domain.PeriodMetrics{}, nil, tt.daily, nil)
			require.Len(t, alerts, tt.expected)
			if tt.expected > 0 {
				assert.Equal(t, domain.CategoryTrend, alerts[0].Category)
				assert.Equal(t, tt.severity, alerts[0].Severity)
			}
		})
	}
}

func TestComputeAllSmartAlerts_RetentionBelowIdeal(t *testing.T) {
	retention := &domain.RetentionSummary{ReturnRatePct: 12.5, NewCustomers: 200, ReturningCount: 25}

	alerts := ComputeAllSmartAlerts(&domain.PeriodMetrics{}, nil, nil, retention)

	require.Len(t, alerts, 1)
	assert.Equal(t, domain.CategoryRetention, alerts[0].Category)
	assert.Equal(t, domain.SeverityWarn, alerts[0].Severity)

	healthy := &domain.RetentionSummary{ReturnRatePct: 45}
	assert.Empty(t, ComputeAllSmartAlerts(&domain.PeriodMetrics{}, nil, nil, healthy))
}

func TestComputeAllSmartAlerts_OrderIsStableAndSeverityMajor(t *testing.T) {
	current := &domain.PeriodMetrics{
		Account: domain.NewAccountMetrics(1500, 10000, 500, 80, 6000), // ROAS 4 vs 8: danger
		Skus: []*domain.SkuMetrics{
			domain.NewSkuMetrics("A", 0, 50, 100, 10, 0, nil), // danger (desperdício)
		},
	}
	previous := &domain.PeriodMetrics{
		Account: domain.NewAccountMetrics(1000, 10000, 500, 100, 8000),
		Skus: []*domain.SkuMetrics{
			domain.NewSkuMetrics("A", 100, 40, 90, 9, 2, nil),
		},
	}
	retention := &domain.RetentionSummary{ReturnRatePct: 10}

	first := ComputeAllSmartAlerts(current, previous, nil, retention)
	second := ComputeAllSmartAlerts(current, previous, nil, retention)

	// Mesmo resultado, mesma ordem, a cada chamada
	assert.Equal(t, first, second)

	// Severidade decrescente; empates preservam a ordem de entrada
	for i := 1; i < len(first); i++ {
		assert.LessOrEqual(t, first[i-1].Severity.Rank(), first[i].Severity.Rank())
	}

	// Danger da conta vem antes dos dangers de SKU (ordem de entrada no
	// empate); a retenção warn fica por último
	require.Len(t, first, 4)
	assert.Equal(t, domain.CategoryAccount, first[0].Category)
	assert.Equal(t, domain.CategorySku, first[1].Category)
	assert.Equal(t, "sku-A-waste", first[1].ID)
	assert.Equal(t, "sku-A-roas-drop", first[2].ID)
	assert.Equal(t, domain.CategoryRetention, first[3].Category)
}
