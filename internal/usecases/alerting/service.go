// Package alerting detecta anomalias e tendências comparando o período
// corrente com o período anterior. O detector é puro: não guarda estado,
// não muta as entradas e produz sempre a mesma lista para as mesmas
// entradas, na mesma ordem.
package alerting

import (
	"fmt"

	"github.com/vfg2006/marketing-intelligence-api/internal/domain"
	"github.com/vfg2006/marketing-intelligence-api/pkg/utils"
)

// Limiares de severidade dos alertas. Percentuais de variação entre períodos.
const (
	AccountRoasDangerPct  = -30.0
	AccountRoasWarnPct    = -15.0
	AccountRoasSuccessPct = 20.0
	AccountSpendInfoPct   = 50.0

	// Campanhas só alertam quando são outliers com gasto relevante
	CampaignSignificancePct = 40.0
	CampaignDangerPct       = -50.0
	CampaignMinSpend        = 100.0

	SkuSwingPct = 50.0

	// Dias consecutivos de queda de ROAS na série diária
	TrendMinRun    = 4
	TrendDangerRun = 6

	// Taxa ideal de retorno de clientes, em pontos percentuais
	RetentionIdealPct = 30.0
)

// ComputeAllSmartAlerts avalia todos os escopos e retorna os alertas
// ordenados por severidade (danger > warn > info > success), preservando a
// ordem de entrada dentro de cada severidade.
//
// Período anterior totalmente ausente em um escopo produz lista vazia para
// aquele escopo, nunca erro. Valor anterior zero resulta em deltaPct 0 por
// convenção, nunca divisão por zero.
func ComputeAllSmartAlerts(
	current *domain.PeriodMetrics,
	previous *domain.PeriodMetrics,
	daily []domain.DailyPoint,
	retention *domain.RetentionSummary,
) []domain.SmartAlert {
	alerts := make([]domain.SmartAlert, 0)

	if current == nil {
		return alerts
	}

	var prevAccount *domain.AccountMetrics
	var prevCampaigns []*domain.CampaignMetrics
	var prevSkus []*domain.SkuMetrics

	if previous != nil {
		prevAccount = previous.Account
		prevCampaigns = previous.Campaigns
		prevSkus = previous.Skus
	}

	alerts = append(alerts, detectAccountAlerts(current.Account, prevAccount)...)
	alerts = append(alerts, detectCampaignAlerts(current.Campaigns, prevCampaigns)...)
	alerts = append(alerts, detectSkuAlerts(current.Skus, prevSkus)...)
	alerts = append(alerts, detectTrendAlerts(daily)...)
	alerts = append(alerts, detectRetentionAlert(retention)...)

	domain.SortAlertsBySeverity(alerts)

	return alerts
}

// detectAccountAlerts compara ROAS e gasto nos totais da conta
func detectAccountAlerts(current, previous *domain.AccountMetrics) []domain.SmartAlert {
	alerts := make([]domain.SmartAlert, 0)

	if current == nil || previous == nil {
		return alerts
	}

	roasDelta := utils.DeltaPct(current.ROAS, previous.ROAS)

	switch {
	case roasDelta <= AccountRoasDangerPct:
		alerts = append(alerts, domain.SmartAlert{
			ID:             "account-roas-drop",
			Category:       domain.CategoryAccount,
			Severity:       domain.SeverityDanger,
			Title:          "Queda acentuada de ROAS",
			Description:    fmt.Sprintf("O ROAS da conta caiu de %.2f para %.2f (%.1f%%) em relação ao período anterior", previous.ROAS, current.ROAS, roasDelta),
			Metric:         "roas",
			CurrentValue:   current.ROAS,
			PreviousValue:  previous.ROAS,
			DeltaPct:       roasDelta,
			Recommendation: strPtr("Revise os criativos e a segmentação das campanhas com maior gasto"),
		})
	case roasDelta <= AccountRoasWarnPct:
		alerts = append(alerts, domain.SmartAlert{
			ID:            "account-roas-drop",
			Category:      domain.CategoryAccount,
			Severity:      domain.SeverityWarn,
			Title:         "ROAS em queda",
			Description:   fmt.Sprintf("O ROAS da conta caiu %.1f%% em relação ao período anterior", roasDelta),
			Metric:        "roas",
			CurrentValue:  current.ROAS,
			PreviousValue: previous.ROAS,
			DeltaPct:      roasDelta,
		})
	case roasDelta >= AccountRoasSuccessPct:
		alerts = append(alerts, domain.SmartAlert{
			ID:            "account-roas-gain",
			Category:      domain.CategoryAccount,
			Severity:      domain.SeveritySuccess,
			Title:         "ROAS em alta",
			Description:   fmt.Sprintf("O ROAS da conta subiu %.1f%% em relação ao período anterior", roasDelta),
			Metric:        "roas",
			CurrentValue:  current.ROAS,
			PreviousValue: previous.ROAS,
			DeltaPct:      roasDelta,
		})
	}

	// Aumento de gasto sozinho não é um problema: vira alerta informativo,
	// e apenas quando o ROAS não caiu junto
	spendDelta := utils.DeltaPct(current.Spend, previous.Spend)
	if spendDelta >= AccountSpendInfoPct && roasDelta > AccountRoasWarnPct {
		alerts = append(alerts, domain.SmartAlert{
			ID:            "account-spend-surge",
			Category:      domain.CategoryAccount,
			Severity:      domain.SeverityInfo,
			Title:         "Gasto acelerado",
			Description:   fmt.Sprintf("O investimento da conta aumentou %.1f%% em relação ao período anterior", spendDelta),
			Metric:        "spend",
			CurrentValue:  current.Spend,
			PreviousValue: previous.Spend,
			DeltaPct:      spendDelta,
		})
	}

	return alerts
}

// detectCampaignAlerts emite alertas apenas para campanhas casadas entre os
// dois períodos cujo desvio de CPA ou ROAS cruza o limiar de significância.
// Campanhas presentes em um período só são ignoradas.
func detectCampaignAlerts(current, previous []*domain.CampaignMetrics) []domain.SmartAlert {
	alerts := make([]domain.SmartAlert, 0)

	if len(current) == 0 || len(previous) == 0 {
		return alerts
	}

	previousByID := make(map[string]*domain.CampaignMetrics, len(previous))
	for _, campaign := range previous {
		previousByID[campaign.CampaignID] = campaign
	}

	for _, campaign := range current {
		prev, matched := previousByID[campaign.CampaignID]
		if !matched {
			continue
		}

		if campaign.Spend < CampaignMinSpend {
			continue
		}

		roasDelta := utils.DeltaPct(campaign.ROAS, prev.ROAS)
		cpaDelta := utils.DeltaPct(campaign.CPA, prev.CPA)

		adverse := roasDelta <= -CampaignSignificancePct || cpaDelta >= CampaignSignificancePct
		if !adverse {
			continue
		}

		severity := domain.SeverityWarn
		if roasDelta <= CampaignDangerPct {
			severity = domain.SeverityDanger
		}

		entityID := campaign.CampaignID
		alerts = append(alerts, domain.SmartAlert{
			ID:             fmt.Sprintf("campaign-%s-performance", campaign.CampaignID),
			Category:       domain.CategoryCampaign,
			Severity:       severity,
			Title:          fmt.Sprintf("Campanha %s com desvio de performance", campaign.Name),
			Description:    fmt.Sprintf("ROAS variou %.1f%% e CPA variou %.1f%% em relação ao período anterior", roasDelta, cpaDelta),
			Metric:         "roas",
			CurrentValue:   campaign.ROAS,
			PreviousValue:  prev.ROAS,
			DeltaPct:       roasDelta,
			EntityID:       &entityID,
			Recommendation: strPtr("Avalie pausar ou reequilibrar o orçamento desta campanha"),
		})
	}

	return alerts
}

// detectSkuAlerts sinaliza desperdício (gasto sem conversão) e oscilações
// fortes de ROAS por SKU
func detectSkuAlerts(current, previous []*domain.SkuMetrics) []domain.SmartAlert {
	alerts := make([]domain.SmartAlert, 0)

	previousBySku := make(map[string]*domain.SkuMetrics, len(previous))
	for _, sku := range previous {
		previousBySku[sku.SKU] = sku
	}

	for _, sku := range current {
		// Gasto sem nenhuma conversão é o sinal de desperdício mais direto
		if sku.Spend > 0 && sku.Conversions == 0 {
			entityID := sku.SKU
			alerts = append(alerts, domain.SmartAlert{
				ID:             fmt.Sprintf("sku-%s-waste", sku.SKU),
				Category:       domain.CategorySku,
				Severity:       domain.SeverityDanger,
				Title:          fmt.Sprintf("SKU %s gastando sem converter", sku.Name),
				Description:    fmt.Sprintf("R$ %.2f investidos no período sem nenhuma conversão", sku.Spend),
				Metric:         "conversions",
				CurrentValue:   0,
				PreviousValue:  previousConversions(previousBySku, sku.SKU),
				DeltaPct:       0,
				EntityID:       &entityID,
				Recommendation: strPtr("Pause o anúncio deste SKU ou revise a página do produto"),
			})
		}

		prev, matched := previousBySku[sku.SKU]
		if !matched {
			continue
		}

		roasDelta := utils.DeltaPct(sku.ROAS, prev.ROAS)

		if roasDelta <= -SkuSwingPct {
			entityID := sku.SKU
			alerts = append(alerts, domain.SmartAlert{
				ID:            fmt.Sprintf("sku-%s-roas-drop", sku.SKU),
				Category:      domain.CategorySku,
				Severity:      domain.SeverityDanger,
				Title:         fmt.Sprintf("ROAS do SKU %s despencou", sku.Name),
				Description:   fmt.Sprintf("O ROAS caiu de %.2f para %.2f (%.1f%%)", prev.ROAS, sku.ROAS, roasDelta),
				Metric:        "roas",
				CurrentValue:  sku.ROAS,
				PreviousValue: prev.ROAS,
				DeltaPct:      roasDelta,
				EntityID:      &entityID,
			})
		} else if roasDelta >= SkuSwingPct {
			entityID := sku.SKU
			alerts = append(alerts, domain.SmartAlert{
				ID:            fmt.Sprintf("sku-%s-roas-gain", sku.SKU),
				Category:      domain.CategorySku,
				Severity:      domain.SeveritySuccess,
				Title:         fmt.Sprintf("ROAS do SKU %s disparou", sku.Name),
				Description:   fmt.Sprintf("O ROAS subiu de %.2f para %.2f (%.1f%%)", prev.ROAS, sku.ROAS, roasDelta),
				Metric:        "roas",
				CurrentValue:  sku.ROAS,
				PreviousValue: prev.ROAS,
				DeltaPct:      roasDelta,
				EntityID:      &entityID,
			})
		}
	}

	return alerts
}

// detectTrendAlerts varre a série diária procurando uma sequência de dias
// consecutivos de queda de ROAS. É o único alerta derivado da forma da
// série, e não da comparação entre períodos.
func detectTrendAlerts(daily []domain.DailyPoint) []domain.SmartAlert {
	alerts := make([]domain.SmartAlert, 0)

	if len(daily) < TrendMinRun {
		return alerts
	}

	longestRun := 0
	run := 0
	runEnd := 0

	for i := 1; i < len(daily); i++ {
		if daily[i].ROAS < daily[i-1].ROAS {
			run++
			if run > longestRun {
				longestRun = run
				runEnd = i
			}
		} else {
			run = 0
		}
	}

	// run conta transições; uma sequência de N dias em queda tem N-1 transições
	declineDays := longestRun + 1
	if longestRun == 0 || declineDays < TrendMinRun {
		return alerts
	}

	severity := domain.SeverityWarn
	if declineDays >= TrendDangerRun {
		severity = domain.SeverityDanger
	}

	first := daily[runEnd-longestRun].ROAS
	last := daily[runEnd].ROAS

	alerts = append(alerts, domain.SmartAlert{
		ID:             "trend-roas-decline",
		Category:       domain.CategoryTrend,
		Severity:       severity,
		Title:          "Tendência de queda de ROAS",
		Description:    fmt.Sprintf("ROAS diário em queda há %d dias consecutivos (de %.2f para %.2f)", declineDays, first, last),
		Metric:         "roas",
		CurrentValue:   last,
		PreviousValue:  first,
		DeltaPct:       utils.DeltaPct(last, first),
		Recommendation: strPtr("Investigue mudanças recentes de leilão, criativos ou concorrência"),
	})

	return alerts
}

// detectRetentionAlert emite no máximo um alerta comparando a taxa de
// retorno com o ideal fixo
func detectRetentionAlert(retention *domain.RetentionSummary) []domain.SmartAlert {
	alerts := make([]domain.SmartAlert, 0)

	if retention == nil {
		return alerts
	}

	if retention.ReturnRatePct >= RetentionIdealPct {
		return alerts
	}

	alerts = append(alerts, domain.SmartAlert{
		ID:             "retention-return-rate",
		Category:       domain.CategoryRetention,
		Severity:       domain.SeverityWarn,
		Title:          "Retenção abaixo do ideal",
		Description:    fmt.Sprintf("Taxa de retorno de clientes em %.1f%%, abaixo do ideal de %.0f%%", retention.ReturnRatePct, RetentionIdealPct),
		Metric:         "return_rate",
		CurrentValue:   retention.ReturnRatePct,
		PreviousValue:  RetentionIdealPct,
		DeltaPct:       0,
		Recommendation: strPtr("Ative campanhas de recompra para a base de clientes do período"),
	})

	return alerts
}

func previousConversions(previousBySku map[string]*domain.SkuMetrics, sku string) float64 {
	if prev, ok := previousBySku[sku]; ok {
		return prev.Conversions
	}
	return 0
}

func strPtr(s string) *string {
	return &s
}
