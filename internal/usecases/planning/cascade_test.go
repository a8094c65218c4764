package planning

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/vfg2006/marketing-intelligence-api/internal/domain"
)

func TestComputeTargetMonth(t *testing.T) {
	tests := []struct {
		name     string
		inputs   domain.PlanningMetrics
		expected map[string]float64
		absent   []string
	}{
		{
			name: "ROAS captado derivado de receita e investimento",
			inputs: domain.PlanningMetrics{
				domain.MetricCapturedRevenue: 150000,
				domain.MetricTotalInvestment: 20000,
			},
			expected: map[string]float64{
				domain.MetricCapturedRoas: 7.5,
			},
			// Sem approvalRate a receita faturada fica ausente, não zero
			absent: []string{domain.MetricBilledRevenue, domain.MetricBilledRoas},
		},
		{
			name: "Cascata completa em cadeia",
			inputs: domain.PlanningMetrics{
				domain.MetricCapturedRevenue: 100000,
				domain.MetricTotalInvestment: 10000,
				domain.MetricApprovalRate:    0.8,
				domain.MetricAverageTicket:   200,
				domain.MetricConversionRate:  0.02,
			},
			expected: map[string]float64{
				domain.MetricBilledRevenue:  80000,
				domain.MetricBilledTicket:   160,
				domain.MetricCapturedRoas:   10,
				domain.MetricBilledRoas:     8,
				domain.MetricOrders:         500,
				domain.MetricBilledOrders:   400,
				domain.MetricCPA:            20,
				domain.MetricSessions:       25000,
				domain.MetricCostPerSession: 0.4,
			},
		},
		{
			name: "Divisão por zero em razão resulta em zero",
			inputs: domain.PlanningMetrics{
				domain.MetricCapturedRevenue: 50000,
				domain.MetricTotalInvestment: 0,
			},
			expected: map[string]float64{
				domain.MetricCapturedRoas: 0,
			},
		},
		{
			name: "Valor de entrada nunca é sobrescrito pela derivação",
			inputs: domain.PlanningMetrics{
				domain.MetricCapturedRevenue: 150000,
				domain.MetricTotalInvestment: 20000,
				domain.MetricCapturedRoas:    9.9,
			},
			expected: map[string]float64{
				domain.MetricCapturedRoas: 9.9,
			},
		},
		{
			name:   "Mapa vazio permanece vazio",
			inputs: domain.PlanningMetrics{},
			absent: []string{
				domain.MetricCapturedRoas,
				domain.MetricBilledRevenue,
				domain.MetricOrders,
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := ComputeTargetMonth(tt.inputs)

			for metric, value := range tt.expected {
				got, ok := result.Get(metric)
				assert.True(t, ok, "métrica %s deveria estar presente", metric)
				assert.InDelta(t, value, got, 0.001, "métrica %s", metric)
			}

			for _, metric := range tt.absent {
				assert.False(t, result.Has(metric), "métrica %s deveria estar ausente", metric)
			}
		})
	}
}

func TestComputeTargetMonthIsIdempotent(t *testing.T) {
	inputs := domain.PlanningMetrics{
		domain.MetricCapturedRevenue: 100000,
		domain.MetricTotalInvestment: 10000,
		domain.MetricApprovalRate:    0.85,
		domain.MetricAverageTicket:   250,
	}

	once := ComputeTargetMonth(inputs)
	twice := ComputeTargetMonth(once)

	assert.Equal(t, once, twice)
}

func TestComputeTargetMonthDoesNotMutateInput(t *testing.T) {
	inputs := domain.PlanningMetrics{
		domain.MetricCapturedRevenue: 100000,
		domain.MetricTotalInvestment: 10000,
	}

	_ = ComputeTargetMonth(inputs)

	assert.Len(t, inputs, 2)
	assert.False(t, inputs.Has(domain.MetricCapturedRoas))
}
