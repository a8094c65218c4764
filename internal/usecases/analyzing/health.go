package analyzing

import (
	"github.com/vfg2006/marketing-intelligence-api/internal/domain"
	"github.com/vfg2006/marketing-intelligence-api/pkg/utils"
)

// Parâmetros do score de saúde. O score parte da base e desconta
// penalidades proporcionais, cada uma com teto próprio; o resultado é
// sempre recortado para [0,100].
const (
	healthBase = 100.0

	healthRoasTarget  = 7.0
	healthRoasWeight  = 25.0
	healthCpaCeiling  = 80.0
	healthCpaWeight   = 15.0
	healthAlertWeight = 30.0

	healthRetentionIdealPct = 30.0
	healthRetentionWeight   = 15.0

	healthFunnelTargetPct = 2.0
	healthFunnelWeight    = 15.0

	dangerAlertPenalty = 8.0
	warnAlertPenalty   = 3.0
)

// computeHealthScore calcula o indicador composto de saúde da conta.
//
// Cada penalidade é monotônica na própria métrica: aproximar qualquer
// métrica do alvo, mantendo o resto fixo, nunca reduz o score.
func computeHealthScore(actx *domain.AnalysisContext) float64 {
	score := healthBase

	if actx.AccountMetrics != nil {
		score -= roasPenalty(actx.AccountMetrics.ROAS)
		score -= cpaPenalty(actx.AccountMetrics.CPA)
	}

	score -= alertPenalty(actx.Alerts)

	if actx.Retention != nil {
		score -= retentionPenalty(actx.Retention.ReturnRatePct)
	}

	if actx.Analytics != nil {
		score -= funnelPenalty(actx.Analytics.ConversionRate)
	}

	return utils.RoundWithTwoDecimalPlace(clamp(score, 0, 100))
}

// roasPenalty cresce proporcionalmente à distância do ROAS abaixo do alvo
func roasPenalty(roas float64) float64 {
	if roas >= healthRoasTarget {
		return 0
	}

	shortfall := (healthRoasTarget - roas) / healthRoasTarget
	return clamp(shortfall*healthRoasWeight, 0, healthRoasWeight)
}

// cpaPenalty cresce proporcionalmente ao excesso de CPA acima do teto.
// CPA zero significa ausência de conversões pagas e não é penalizado aqui;
// esse caso já pesa via ROAS e alertas.
func cpaPenalty(cpa float64) float64 {
	if cpa <= healthCpaCeiling {
		return 0
	}

	excess := (cpa - healthCpaCeiling) / healthCpaCeiling
	return clamp(excess*healthCpaWeight, 0, healthCpaWeight)
}

// alertPenalty pesa a quantidade e a severidade dos alertas negativos
func alertPenalty(alerts []domain.SmartAlert) float64 {
	penalty := 0.0

	for _, alert := range alerts {
		switch alert.Severity {
		case domain.SeverityDanger:
			penalty += dangerAlertPenalty
		case domain.SeverityWarn:
			penalty += warnAlertPenalty
		}
	}

	return clamp(penalty, 0, healthAlertWeight)
}

func retentionPenalty(returnRatePct float64) float64 {
	if returnRatePct >= healthRetentionIdealPct {
		return 0
	}

	shortfall := (healthRetentionIdealPct - returnRatePct) / healthRetentionIdealPct
	return clamp(shortfall*healthRetentionWeight, 0, healthRetentionWeight)
}

func funnelPenalty(conversionRatePct float64) float64 {
	if conversionRatePct >= healthFunnelTargetPct {
		return 0
	}

	shortfall := (healthFunnelTargetPct - conversionRatePct) / healthFunnelTargetPct
	return clamp(shortfall*healthFunnelWeight, 0, healthFunnelWeight)
}

func clamp(v, min, max float64) float64 {
	if v < min {
		return min
	}
	if v > max {
		return max
	}
	return v
}
