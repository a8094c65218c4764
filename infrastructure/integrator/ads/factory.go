package ads

import (
	"strconv"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
	adsdomain "github.com/vfg2006/marketing-intelligence-api/infrastructure/integrator/ads/domain"
	"github.com/vfg2006/marketing-intelligence-api/internal/domain"
	"github.com/vfg2006/marketing-intelligence-api/internal/usecases/classifying"
)

// parseAmount converte um valor monetário do provedor (string) para float64.
// Valores inválidos viram 0 com log de aviso, nunca abortam a normalização.
func parseAmount(raw, field string) float64 {
	if raw == "" {
		return 0
	}

	value, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		logrus.WithFields(logrus.Fields{
			"field": field,
			"value": raw,
			"error": err.Error(),
		}).Warn("insights: error converting provider amount to float")
		return 0
	}

	return value
}

// FactoryChannel mapeia o canal reportado pelo provedor para o tipo canônico
func FactoryChannel(raw string) domain.ChannelType {
	switch strings.ToUpper(strings.TrimSpace(raw)) {
	case "SEARCH":
		return domain.ChannelSearch
	case "SOCIAL":
		return domain.ChannelSocial
	case "DISPLAY":
		return domain.ChannelDisplay
	case "VIDEO":
		return domain.ChannelVideo
	default:
		return domain.ChannelOther
	}
}

// FactoryLifecycle mapeia o estado de veiculação reportado pelo provedor
func FactoryLifecycle(raw string) domain.CampaignLifecycle {
	switch strings.ToUpper(strings.TrimSpace(raw)) {
	case "PAUSED":
		return domain.CampaignPaused
	case "ARCHIVED":
		return domain.CampaignArchived
	default:
		return domain.CampaignActive
	}
}

// FactoryAccountMetrics normaliza os totais brutos da conta
func FactoryAccountMetrics(insight *adsdomain.AccountInsight) *domain.AccountMetrics {
	if insight == nil {
		return domain.NewAccountMetrics(0, 0, 0, 0, 0)
	}

	return domain.NewAccountMetrics(
		parseAmount(insight.Spend, "spend"),
		insight.Impressions,
		insight.Clicks,
		parseAmount(insight.Conversions, "conversions"),
		parseAmount(insight.Revenue, "revenue"),
	)
}

// FactorySkuMetrics normaliza um SKU bruto aplicando os dados cadastrais.
// O status operacional é calculado aqui, uma única vez por normalização, e
// acompanha o SKU em tudo que o consome depois, inclusive as fotografias
// diárias persistidas.
func FactorySkuMetrics(insight adsdomain.SkuInsight, extras *domain.SkuExtras) *domain.SkuMetrics {
	sku := domain.NewSkuMetrics(
		insight.SKU,
		parseAmount(insight.Revenue, "revenue"),
		parseAmount(insight.Spend, "spend"),
		insight.Impressions,
		insight.Clicks,
		parseAmount(insight.Conversions, "conversions"),
		extras,
	)

	sku.Status = classifying.ClassifySku(sku)

	return sku
}

// FactoryCampaignMetrics normaliza uma campanha bruta
func FactoryCampaignMetrics(insight adsdomain.CampaignInsight) *domain.CampaignMetrics {
	return domain.NewCampaignMetrics(
		insight.CampaignID,
		insight.CampaignName,
		FactoryChannel(insight.Channel),
		FactoryLifecycle(insight.Status),
		parseAmount(insight.Spend, "spend"),
		parseAmount(insight.Revenue, "revenue"),
		parseAmount(insight.Conversions, "conversions"),
		insight.Impressions,
		insight.Clicks,
	)
}

// FactoryDailyPoint normaliza um ponto da série diária. Retorna false
// quando a data do provedor é inválida e o ponto deve ser descartado.
func FactoryDailyPoint(insight adsdomain.DailyInsight) (domain.DailyPoint, bool) {
	date, err := time.Parse(time.DateOnly, insight.Date)
	if err != nil {
		logrus.WithFields(logrus.Fields{
			"date":  insight.Date,
			"error": err.Error(),
		}).Warn("insights: error parsing daily point date")
		return domain.DailyPoint{}, false
	}

	return domain.NewDailyPoint(
		date,
		parseAmount(insight.Spend, "spend"),
		parseAmount(insight.Revenue, "revenue"),
		parseAmount(insight.Conversions, "conversions"),
	), true
}
