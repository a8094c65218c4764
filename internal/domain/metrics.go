package domain

import (
	"time"

	"github.com/vfg2006/marketing-intelligence-api/pkg/utils"
)

// AccountMetrics são os totais normalizados da conta de anúncios para um período.
// As razões (roas, cpa, ctr) são sempre derivadas no construtor, nunca gravadas
// diretamente, e valem 0 quando o denominador é 0.
type AccountMetrics struct {
	Spend       float64 `json:"spend"`
	Impressions int     `json:"impressions"`
	Clicks      int     `json:"clicks"`
	Conversions float64 `json:"conversions"`
	Revenue     float64 `json:"revenue"`
	ROAS        float64 `json:"roas"`
	CPA         float64 `json:"cpa"`
	CTR         float64 `json:"ctr"`
}

// NewAccountMetrics monta os totais da conta calculando as métricas derivadas
func NewAccountMetrics(spend float64, impressions, clicks int, conversions, revenue float64) *AccountMetrics {
	return &AccountMetrics{
		Spend:       utils.RoundWithTwoDecimalPlace(spend),
		Impressions: impressions,
		Clicks:      clicks,
		Conversions: conversions,
		Revenue:     utils.RoundWithTwoDecimalPlace(revenue),
		ROAS:        utils.SafeRatio(revenue, spend),
		CPA:         utils.SafeRatio(spend, conversions),
		CTR:         utils.SafeRatio(float64(clicks)*100, float64(impressions)),
	}
}

func (m *AccountMetrics) IsEmpty() bool {
	if m == nil {
		return true
	}

	return m.Spend == 0 && m.Impressions == 0 && m.Clicks == 0 && m.Revenue == 0
}

// DailyPoint é um ponto da série diária do período corrente
type DailyPoint struct {
	Date        time.Time `json:"date"`
	Spend       float64   `json:"spend"`
	Revenue     float64   `json:"revenue"`
	Conversions float64   `json:"conversions"`
	ROAS        float64   `json:"roas"`
}

// NewDailyPoint monta um ponto diário com o ROAS derivado
func NewDailyPoint(date time.Time, spend, revenue, conversions float64) DailyPoint {
	return DailyPoint{
		Date:        date,
		Spend:       utils.RoundWithTwoDecimalPlace(spend),
		Revenue:     utils.RoundWithTwoDecimalPlace(revenue),
		Conversions: conversions,
		ROAS:        utils.SafeRatio(revenue, spend),
	}
}
