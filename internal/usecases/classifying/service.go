// Package classifying calcula o status operacional de um SKU a partir de
// regras de negócio fixas e explicáveis
package classifying

import (
	"github.com/vfg2006/marketing-intelligence-api/internal/domain"
)

// Limiares de negócio do classificador. Comparações exatas, sem tolerância.
const (
	RoasPauseThreshold    = 5.0
	RoasMaintainThreshold = 7.0
	CpaPauseThreshold     = 80.0
	MarginMaintainPct     = 25.0
	StockEscalateUnits    = 20
)

// signals agrupa as cinco entradas do classificador
type signals struct {
	roas        float64
	cpa         float64
	marginPct   float64
	stock       int
	conversions float64
}

// rule é um par (predicado, resultado); a primeira regra satisfeita vence
type rule struct {
	matches func(s signals) bool
	outcome domain.SkuStatus
}

// As regras são avaliadas em ordem; a última é o caso residual e sempre casa
var rules = []rule{
	{
		// Sem conversão e sem retorno: investimento morto
		matches: func(s signals) bool { return s.conversions == 0 && s.roas == 0 },
		outcome: domain.SkuStatusPause,
	},
	{
		matches: func(s signals) bool { return s.roas < RoasPauseThreshold || s.cpa > CpaPauseThreshold },
		outcome: domain.SkuStatusPause,
	},
	{
		matches: func(s signals) bool { return s.roas < RoasMaintainThreshold || s.marginPct < MarginMaintainPct },
		outcome: domain.SkuStatusMaintain,
	},
	{
		matches: func(s signals) bool { return s.stock > StockEscalateUnits },
		outcome: domain.SkuStatusEscalate,
	},
	{
		matches: func(s signals) bool { return true },
		outcome: domain.SkuStatusMaintain,
	},
}

// Classify é uma função total: toda combinação de entradas produz um status
func Classify(roas, cpa, marginPct float64, stock int, conversions float64) domain.SkuStatus {
	s := signals{
		roas:        roas,
		cpa:         cpa,
		marginPct:   marginPct,
		stock:       stock,
		conversions: conversions,
	}

	for _, r := range rules {
		if r.matches(s) {
			return r.outcome
		}
	}

	// Inalcançável: a regra residual sempre casa
	return domain.SkuStatusMaintain
}

// ClassifySku aplica o classificador sobre as métricas já normalizadas do SKU
func ClassifySku(sku *domain.SkuMetrics) domain.SkuStatus {
	return Classify(sku.ROAS, sku.CPA, sku.MarginPct, sku.Stock, sku.Conversions)
}
