package analyzing

import (
	"fmt"
	"math"

	"github.com/vfg2006/marketing-intelligence-api/internal/domain"
)

// Limiares usados na geração de insights de funil
const (
	funnelConversionTargetPct = 2.0
	cartAbandonmentCeilingPct = 70.0
	quickWinLimit             = 3
)

// buildInsights combina alertas, resultados do classificador e sinais de
// funil/retenção em registros estruturados. A ordem de construção é fixa,
// o que mantém o resultado determinístico.
func buildInsights(actx *domain.AnalysisContext) []domain.Insight {
	insights := make([]domain.Insight, 0)

	insights = append(insights, accountInsights(actx)...)
	insights = append(insights, wasteInsight(actx)...)
	insights = append(insights, campaignInsight(actx)...)
	insights = append(insights, classifierInsights(actx)...)
	insights = append(insights, trendInsight(actx)...)
	insights = append(insights, funnelInsight(actx)...)
	insights = append(insights, retentionInsight(actx)...)

	return insights
}

// accountInsights resume os alertas negativos de escopo de conta
func accountInsights(actx *domain.AnalysisContext) []domain.Insight {
	for _, alert := range actx.Alerts {
		if alert.Category != domain.CategoryAccount || !alert.Severity.IsNegative() {
			continue
		}

		metrics := map[string]float64{
			"current_" + alert.Metric:  alert.CurrentValue,
			"previous_" + alert.Metric: alert.PreviousValue,
			"delta_pct":                alert.DeltaPct,
		}

		return []domain.Insight{{
			ID:          "account-performance",
			Category:    domain.CategoryAccount,
			Severity:    alert.Severity,
			Title:       alert.Title,
			Description: alert.Description,
			Metrics:     metrics,
			Recommendations: []string{
				"Compare o desempenho por campanha para isolar a origem da queda",
				"Revise alterações recentes de orçamento e segmentação",
			},
			Source: domain.SourceAlerts,
		}}
	}

	return nil
}

// wasteInsight agrega os SKUs com gasto sem conversão em um único insight
// de remediação rápida
func wasteInsight(actx *domain.AnalysisContext) []domain.Insight {
	wastedSpend := 0.0
	count := 0

	for _, alert := range actx.Alerts {
		if alert.Category != domain.CategorySku || alert.Metric != "conversions" {
			continue
		}
		count++
	}

	for _, sku := range actx.Skus {
		if sku.Spend > 0 && sku.Conversions == 0 {
			wastedSpend += sku.Spend
		}
	}

	if count == 0 {
		return nil
	}

	return []domain.Insight{{
		ID:          "sku-wasted-spend",
		Category:    domain.CategorySku,
		Severity:    domain.SeverityDanger,
		Title:       fmt.Sprintf("%d SKUs gastando sem converter", count),
		Description: fmt.Sprintf("R$ %.2f investidos no período em SKUs sem nenhuma conversão", wastedSpend),
		Metrics: map[string]float64{
			"sku_count":    float64(count),
			"wasted_spend": wastedSpend,
		},
		Recommendations: []string{
			"Pause os anúncios dos SKUs sem conversão",
			"Verifique preço, estoque e página dos produtos afetados",
		},
		Source:   domain.SourceAlerts,
		QuickWin: true,
	}}
}

// campaignInsight resume as campanhas outlier do período
func campaignInsight(actx *domain.AnalysisContext) []domain.Insight {
	worst := findWorstAlert(actx.Alerts, domain.CategoryCampaign)
	if worst == nil {
		return nil
	}

	count := 0
	for _, alert := range actx.Alerts {
		if alert.Category == domain.CategoryCampaign && alert.Severity.IsNegative() {
			count++
		}
	}

	return []domain.Insight{{
		ID:          "campaign-outliers",
		Category:    domain.CategoryCampaign,
		Severity:    worst.Severity,
		Title:       fmt.Sprintf("%d campanhas com desvio relevante de performance", count),
		Description: worst.Description,
		Metrics: map[string]float64{
			"campaign_count": float64(count),
			"worst_delta":    worst.DeltaPct,
		},
		Recommendations: []string{
			"Redistribua orçamento das campanhas em queda para as estáveis",
		},
		Source:   domain.SourceAlerts,
		QuickWin: true,
	}}
}

// classifierInsights converte a distribuição de status dos SKUs em insights
func classifierInsights(actx *domain.AnalysisContext) []domain.Insight {
	pauseCount := 0
	escalateCount := 0

	for _, sku := range actx.Skus {
		switch sku.Status {
		case domain.SkuStatusPause:
			pauseCount++
		case domain.SkuStatusEscalate:
			escalateCount++
		}
	}

	insights := make([]domain.Insight, 0, 2)

	if pauseCount > 0 {
		insights = append(insights, domain.Insight{
			ID:          "sku-pause-candidates",
			Category:    domain.CategorySku,
			Severity:    domain.SeverityWarn,
			Title:       fmt.Sprintf("%d SKUs recomendados para pausa", pauseCount),
			Description: "SKUs com ROAS ou CPA fora dos limites de rentabilidade",
			Metrics: map[string]float64{
				"pause_count": float64(pauseCount),
			},
			Recommendations: []string{
				"Pause os SKUs indicados e realoque o investimento",
			},
			Source:   domain.SourceClassifier,
			QuickWin: true,
		})
	}

	if escalateCount > 0 {
		insights = append(insights, domain.Insight{
			ID:          "sku-escalate-candidates",
			Category:    domain.CategorySku,
			Severity:    domain.SeveritySuccess,
			Title:       fmt.Sprintf("%d SKUs prontos para escalar", escalateCount),
			Description: "SKUs rentáveis, com margem saudável e estoque disponível",
			Metrics: map[string]float64{
				"escalate_count": float64(escalateCount),
			},
			Recommendations: []string{
				"Aumente gradualmente o orçamento dos SKUs indicados",
			},
			Source:   domain.SourceClassifier,
			QuickWin: true,
		})
	}

	return insights
}

// trendInsight reflete o alerta de tendência intra-período, quando existe
func trendInsight(actx *domain.AnalysisContext) []domain.Insight {
	for _, alert := range actx.Alerts {
		if alert.Category != domain.CategoryTrend {
			continue
		}

		return []domain.Insight{{
			ID:          "roas-trend",
			Category:    domain.CategoryTrend,
			Severity:    alert.Severity,
			Title:       alert.Title,
			Description: alert.Description,
			Metrics: map[string]float64{
				"delta_pct": alert.DeltaPct,
			},
			Recommendations: []string{
				"Antecipe ajustes de lance antes que a queda comprometa o mês",
			},
			Source: domain.SourceAlerts,
		}}
	}

	return nil
}

// funnelInsight avalia conversão e abandono de carrinho do web analytics
func funnelInsight(actx *domain.AnalysisContext) []domain.Insight {
	if actx.Analytics == nil {
		return nil
	}

	insights := make([]domain.Insight, 0, 1)

	if actx.Analytics.ConversionRate < funnelConversionTargetPct && actx.Analytics.Sessions > 0 {
		insights = append(insights, domain.Insight{
			ID:          "funnel-conversion",
			Category:    domain.CategoryAccount,
			Severity:    domain.SeverityWarn,
			Title:       "Conversão do site abaixo do esperado",
			Description: fmt.Sprintf("Taxa de conversão em %.2f%% contra a referência de %.1f%%", actx.Analytics.ConversionRate, funnelConversionTargetPct),
			Metrics: map[string]float64{
				"conversion_rate": actx.Analytics.ConversionRate,
				"sessions":        float64(actx.Analytics.Sessions),
			},
			Recommendations: []string{
				"Avalie a velocidade e a usabilidade das páginas de produto",
			},
			Source: domain.SourceFunnel,
		})
	} else if actx.Analytics.CartAbandonmentRate > cartAbandonmentCeilingPct {
		insights = append(insights, domain.Insight{
			ID:          "funnel-cart-abandonment",
			Category:    domain.CategoryAccount,
			Severity:    domain.SeverityWarn,
			Title:       "Abandono de carrinho elevado",
			Description: fmt.Sprintf("%.1f%% dos carrinhos não chegam ao checkout", actx.Analytics.CartAbandonmentRate),
			Metrics: map[string]float64{
				"cart_abandonment_rate": actx.Analytics.CartAbandonmentRate,
			},
			Recommendations: []string{
				"Simplifique o checkout e exponha o frete mais cedo",
			},
			Source:   domain.SourceFunnel,
			QuickWin: true,
		})
	}

	return insights
}

// retentionInsight reflete o alerta de retenção, quando existe
func retentionInsight(actx *domain.AnalysisContext) []domain.Insight {
	for _, alert := range actx.Alerts {
		if alert.Category != domain.CategoryRetention {
			continue
		}

		metrics := map[string]float64{
			"return_rate": alert.CurrentValue,
		}
		if actx.Retention != nil {
			metrics["new_customers"] = float64(actx.Retention.NewCustomers)
			metrics["returning_count"] = float64(actx.Retention.ReturningCount)
		}

		return []domain.Insight{{
			ID:          "retention-below-ideal",
			Category:    domain.CategoryRetention,
			Severity:    alert.Severity,
			Title:       alert.Title,
			Description: alert.Description,
			Metrics:     metrics,
			Recommendations: []string{
				"Dispare uma campanha de recompra para os clientes do período",
			},
			Source:   domain.SourceRetention,
			QuickWin: true,
		}}
	}

	return nil
}

// findTopPriority escolhe o item negativo de maior severidade; empate é
// resolvido pelo maior |deltaPct|. Sem itens negativos, retorna nil.
func findTopPriority(alerts []domain.SmartAlert) *domain.SmartAlert {
	var top *domain.SmartAlert

	for i := range alerts {
		alert := &alerts[i]
		if !alert.Severity.IsNegative() {
			continue
		}

		if top == nil {
			top = alert
			continue
		}

		if alert.Severity.Rank() < top.Severity.Rank() {
			top = alert
			continue
		}

		if alert.Severity.Rank() == top.Severity.Rank() &&
			math.Abs(alert.DeltaPct) > math.Abs(top.DeltaPct) {
			top = alert
		}
	}

	if top == nil {
		return nil
	}

	// Cópia: o resultado não pode compartilhar memória com a entrada
	copied := *top
	return &copied
}

// selectQuickWins retorna o subconjunto limitado e determinístico de
// insights marcados como remediação rápida
func selectQuickWins(insights []domain.Insight) []domain.Insight {
	wins := make([]domain.Insight, 0, quickWinLimit)

	for _, insight := range insights {
		if !insight.QuickWin {
			continue
		}

		wins = append(wins, insight)
		if len(wins) == quickWinLimit {
			break
		}
	}

	return wins
}

func findWorstAlert(alerts []domain.SmartAlert, category domain.AlertCategory) *domain.SmartAlert {
	var worst *domain.SmartAlert

	for i := range alerts {
		alert := &alerts[i]
		if alert.Category != category || !alert.Severity.IsNegative() {
			continue
		}

		if worst == nil || alert.Severity.Rank() < worst.Severity.Rank() ||
			(alert.Severity.Rank() == worst.Severity.Rank() &&
				math.Abs(alert.DeltaPct) > math.Abs(worst.DeltaPct)) {
			worst = alert
		}
	}

	return worst
}
