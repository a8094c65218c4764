package planning

import (
	"github.com/vfg2006/marketing-intelligence-api/internal/domain"
	"github.com/vfg2006/marketing-intelligence-api/pkg/utils"
)

// derivation define como uma métrica é calculada a partir de suas
// dependências diretas. A fórmula só roda quando todas as dependências
// estão presentes no mapa (entrada ou já derivadas).
type derivation struct {
	target  string
	deps    []string
	compute func(m domain.PlanningMetrics) float64
}

// O grafo de dependências da cascata de metas. A ordem de declaração não
// importa: as derivações são aplicadas até o ponto fixo.
var derivations = []derivation{
	{
		target: domain.MetricBilledRevenue,
		deps:   []string{domain.MetricCapturedRevenue, domain.MetricApprovalRate},
		compute: func(m domain.PlanningMetrics) float64 {
			return utils.RoundWithTwoDecimalPlace(m[domain.MetricCapturedRevenue] * m[domain.MetricApprovalRate])
		},
	},
	{
		target: domain.MetricBilledTicket,
		deps:   []string{domain.MetricAverageTicket, domain.MetricApprovalRate},
		compute: func(m domain.PlanningMetrics) float64 {
			return utils.RoundWithTwoDecimalPlace(m[domain.MetricAverageTicket] * m[domain.MetricApprovalRate])
		},
	},
	{
		target: domain.MetricCapturedRoas,
		deps:   []string{domain.MetricCapturedRevenue, domain.MetricTotalInvestment},
		compute: func(m domain.PlanningMetrics) float64 {
			return utils.SafeRatio(m[domain.MetricCapturedRevenue], m[domain.MetricTotalInvestment])
		},
	},
	{
		target: domain.MetricBilledRoas,
		deps:   []string{domain.MetricBilledRevenue, domain.MetricTotalInvestment},
		compute: func(m domain.PlanningMetrics) float64 {
			return utils.SafeRatio(m[domain.MetricBilledRevenue], m[domain.MetricTotalInvestment])
		},
	},
	{
		target: domain.MetricOrders,
		deps:   []string{domain.MetricCapturedRevenue, domain.MetricAverageTicket},
		compute: func(m domain.PlanningMetrics) float64 {
			return utils.SafeRatio(m[domain.MetricCapturedRevenue], m[domain.MetricAverageTicket])
		},
	},
	{
		target: domain.MetricBilledOrders,
		deps:   []string{domain.MetricOrders, domain.MetricApprovalRate},
		compute: func(m domain.PlanningMetrics) float64 {
			return utils.RoundWithTwoDecimalPlace(m[domain.MetricOrders] * m[domain.MetricApprovalRate])
		},
	},
	{
		target: domain.MetricCPA,
		deps:   []string{domain.MetricTotalInvestment, domain.MetricOrders},
		compute: func(m domain.PlanningMetrics) float64 {
			return utils.SafeRatio(m[domain.MetricTotalInvestment], m[domain.MetricOrders])
		},
	},
	{
		target: domain.MetricSessions,
		deps:   []string{domain.MetricOrders, domain.MetricConversionRate},
		compute: func(m domain.PlanningMetrics) float64 {
			return utils.SafeRatio(m[domain.MetricOrders], m[domain.MetricConversionRate])
		},
	},
	{
		target: domain.MetricCostPerSession,
		deps:   []string{domain.MetricTotalInvestment, domain.MetricSessions},
		compute: func(m domain.PlanningMetrics) float64 {
			return utils.SafeRatio(m[domain.MetricTotalInvestment], m[domain.MetricSessions])
		},
	},
	{
		target: domain.MetricDailyInvestment,
		deps:   []string{domain.MetricTotalInvestment, domain.MetricDaysInMonth},
		compute: func(m domain.PlanningMetrics) float64 {
			return utils.SafeRatio(m[domain.MetricTotalInvestment], m[domain.MetricDaysInMonth])
		},
	},
	{
		target: domain.MetricRevenueShareOfTarget,
		deps:   []string{domain.MetricCapturedRevenue, domain.MetricRevenueGoal},
		compute: func(m domain.PlanningMetrics) float64 {
			return utils.SafeRatio(m[domain.MetricCapturedRevenue], m[domain.MetricRevenueGoal])
		},
	},
}

// ComputeTargetMonth expande o mapa esparso de entradas de planejamento com
// todas as métricas alcançáveis pelo grafo de dependências.
//
// Dependência ausente mantém a métrica ausente em vez de forçar zero, porque
// zero é um valor calculado válido. Valores já presentes (entradas do usuário
// ou derivações anteriores) nunca são sobrescritos, o que torna a cascata
// idempotente.
func ComputeTargetMonth(inputs domain.PlanningMetrics) domain.PlanningMetrics {
	result := inputs.Clone()

	// Aplica as derivações até o ponto fixo: uma derivação pode liberar
	// as dependências de outra
	for {
		progressed := false

		for _, d := range derivations {
			if result.Has(d.target) {
				continue
			}

			ready := true
			for _, dep := range d.deps {
				if !result.Has(dep) {
					ready = false
					break
				}
			}

			if !ready {
				continue
			}

			result[d.target] = d.compute(result)
			progressed = true
		}

		if !progressed {
			break
		}
	}

	return result
}
