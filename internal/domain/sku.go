package domain

import "github.com/vfg2006/marketing-intelligence-api/pkg/utils"

// SkuStatus é a recomendação operacional calculada para um SKU
type SkuStatus string

const (
	SkuStatusEscalate SkuStatus = "ESCALATE"
	SkuStatusMaintain SkuStatus = "MAINTAIN"
	SkuStatusPause    SkuStatus = "PAUSE"
)

// SkuMetrics são as métricas normalizadas de um SKU para um período.
// ROAS e CPA são derivados, nunca informados pelo provedor.
type SkuMetrics struct {
	SKU         string    `json:"sku"`
	Name        string    `json:"name"`
	Revenue     float64   `json:"revenue"`
	Spend       float64   `json:"spend"`
	ROAS        float64   `json:"roas"`
	CPA         float64   `json:"cpa"`
	Impressions int       `json:"impressions"`
	Clicks      int       `json:"clicks"`
	Conversions float64   `json:"conversions"`
	MarginPct   float64   `json:"margin_pct"`
	Stock       int       `json:"stock"`
	Status      SkuStatus `json:"status"`
}

// SkuExtras são os dados cadastrais do SKU mantidos fora do provedor de anúncios
type SkuExtras struct {
	Name        string   `json:"name"`
	MarginPct   float64  `json:"margin_pct"`
	Stock       int      `json:"stock"`
	CostOfGoods *float64 `json:"cost_of_goods,omitempty"`
	Category    *string  `json:"category,omitempty"`
}

// Defaults cadastrais aplicados quando o SKU não consta na base de referência
const (
	DefaultSkuMarginPct = 30.0
	DefaultSkuStock     = 0
)

// NewSkuMetrics monta as métricas do SKU derivando ROAS e CPA
func NewSkuMetrics(sku string, revenue, spend float64, impressions, clicks int, conversions float64, extras *SkuExtras) *SkuMetrics {
	marginPct := DefaultSkuMarginPct
	stock := DefaultSkuStock
	name := sku

	if extras != nil {
		marginPct = extras.MarginPct
		stock = extras.Stock
		if extras.Name != "" {
			name = extras.Name
		}
	}

	return &SkuMetrics{
		SKU:         sku,
		Name:        name,
		Revenue:     utils.RoundWithTwoDecimalPlace(revenue),
		Spend:       utils.RoundWithTwoDecimalPlace(spend),
		ROAS:        utils.SafeRatio(revenue, spend),
		CPA:         utils.SafeRatio(spend, conversions),
		Impressions: impressions,
		Clicks:      clicks,
		Conversions: conversions,
		MarginPct:   marginPct,
		Stock:       stock,
	}
}
