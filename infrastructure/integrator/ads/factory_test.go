package ads

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	adsdomain "github.com/vfg2006/marketing-intelligence-api/infrastructure/integrator/ads/domain"
	"github.com/vfg2006/marketing-intelligence-api/internal/domain"
)

func TestFactoryChannel(t *testing.T) {
	testCases := []struct {
		name     string
		raw      string
		expected domain.ChannelType
	}{
		{
			name:     "canal de busca",
			raw:      "SEARCH",
			expected: domain.ChannelSearch,
		},
		{
			name:     "canal social em minúsculas",
			raw:      "social",
			expected: domain.ChannelSocial,
		},
		{
			name:     "canal de vídeo com espaços",
			raw:      " video ",
			expected: domain.ChannelVideo,
		},
		{
			name:     "canal desconhecido vira other",
			raw:      "AUDIO",
			expected: domain.ChannelOther,
		},
		{
			name:     "canal vazio vira other",
			raw:      "",
			expected: domain.ChannelOther,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, FactoryChannel(tc.raw))
		})
	}
}

func TestFactoryLifecycle(t *testing.T) {
	assert.Equal(t, domain.CampaignPaused, FactoryLifecycle("paused"))
	assert.Equal(t, domain.CampaignArchived, FactoryLifecycle("ARCHIVED"))
	assert.Equal(t, domain.CampaignActive, FactoryLifecycle("ACTIVE"))
	assert.Equal(t, domain.CampaignActive, FactoryLifecycle("qualquer coisa"))
}

func TestFactoryAccountMetrics(t *testing.T) {
	t.Run("normaliza totais e deriva razões", func(t *testing.T) {
		metrics := FactoryAccountMetrics(&adsdomain.AccountInsight{
			Spend:       "1250.00",
			Impressions: 50000,
			Clicks:      1500,
			Conversions: "40",
			Revenue:     "4000",
		})

		assert.Equal(t, float64(1250), metrics.Spend)
		assert.Equal(t, 50000, metrics.Impressions)
		assert.Equal(t, 1500, metrics.Clicks)
		assert.Equal(t, float64(40), metrics.Conversions)
		assert.Equal(t, float64(4000), metrics.Revenue)
		assert.Equal(t, 3.2, metrics.ROAS)
		assert.Equal(t, 31.25, metrics.CPA)
		assert.Equal(t, 3.0, metrics.CTR)
	})

	t.Run("insight ausente vira totais zerados", func(t *testing.T) {
		metrics := FactoryAccountMetrics(nil)

		assert.True(t, metrics.IsEmpty())
		assert.Equal(t, float64(0), metrics.ROAS)
	})

	t.Run("valor monetário inválido vira zero sem abortar", func(t *testing.T) {
		metrics := FactoryAccountMetrics(&adsdomain.AccountInsight{
			Spend:       "abc",
			Impressions: 100,
			Clicks:      10,
			Conversions: "2",
			Revenue:     "50",
		})

		assert.Equal(t, float64(0), metrics.Spend)
		assert.Equal(t, float64(50), metrics.Revenue)
		assert.Equal(t, float64(0), metrics.ROAS)
	})
}

func TestFactorySkuMetrics(t *testing.T) {
	t.Run("status operacional é calculado na normalização", func(t *testing.T) {
		sku := FactorySkuMetrics(adsdomain.SkuInsight{
			SKU:         "SKU-100",
			Spend:       "400",
			Revenue:     "3600",
			Impressions: 20000,
			Clicks:      800,
			Conversions: "10",
		}, &domain.SkuExtras{Name: "Tênis Runner", MarginPct: 40, Stock: 50})

		assert.Equal(t, "Tênis Runner", sku.Name)
		assert.Equal(t, 9.0, sku.ROAS)
		assert.Equal(t, 40.0, sku.CPA)
		assert.Equal(t, domain.SkuStatusEscalate, sku.Status)
	})

	t.Run("gasto sem conversão já sai recomendado para pausa", func(t *testing.T) {
		sku := FactorySkuMetrics(adsdomain.SkuInsight{
			SKU:         "SKU-200",
			Spend:       "100",
			Revenue:     "0",
			Conversions: "0",
		}, nil)

		assert.Equal(t, domain.DefaultSkuMarginPct, sku.MarginPct)
		assert.Equal(t, domain.SkuStatusPause, sku.Status)
	})
}

func TestFactoryDailyPoint(t *testing.T) {
	t.Run("ponto válido com roas derivado", func(t *testing.T) {
		point, ok := FactoryDailyPoint(adsdomain.DailyInsight{
			Date:        "2025-03-10",
			Spend:       "200",
			Revenue:     "600",
			Conversions: "5",
		})

		assert.True(t, ok)
		assert.Equal(t, time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC), point.Date)
		assert.Equal(t, 3.0, point.ROAS)
	})

	t.Run("data inválida descarta o ponto", func(t *testing.T) {
		_, ok := FactoryDailyPoint(adsdomain.DailyInsight{
			Date:  "10/03/2025",
			Spend: "200",
		})

		assert.False(t, ok)
	})
}
