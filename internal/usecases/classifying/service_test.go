package classifying

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/vfg2006/marketing-intelligence-api/internal/domain"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		name        string
		roas        float64
		cpa         float64
		marginPct   float64
		stock       int
		conversions float64
		expected    domain.SkuStatus
	}{
		{
			name:        "Sem conversão e sem ROAS deve pausar",
			roas:        0,
			cpa:         0,
			marginPct:   30,
			stock:       0,
			conversions: 0,
			expected:    domain.SkuStatusPause,
		},
		{
			name:        "ROAS abaixo de 5 deve pausar mesmo com conversões",
			roas:        4.9,
			cpa:         20,
			marginPct:   40,
			stock:       50,
			conversions: 10,
			expected:    domain.SkuStatusPause,
		},
		{
			name:        "CPA acima de 80 deve pausar mesmo com ROAS bom",
			roas:        9,
			cpa:         80.01,
			marginPct:   40,
			stock:       50,
			conversions: 10,
			expected:    domain.SkuStatusPause,
		},
		{
			name:        "ROAS saudável com estoque alto deve escalar",
			roas:        8,
			cpa:         20,
			marginPct:   30,
			stock:       25,
			conversions: 5,
			expected:    domain.SkuStatusEscalate,
		},
		{
			name:        "Margem abaixo de 25 trava em manter antes da checagem de estoque",
			roas:        6,
			cpa:         30,
			marginPct:   20,
			stock:       0,
			conversions: 5,
			expected:    domain.SkuStatusMaintain,
		},
		{
			name:        "ROAS entre 5 e 7 deve manter",
			roas:        6.5,
			cpa:         30,
			marginPct:   40,
			stock:       100,
			conversions: 5,
			expected:    domain.SkuStatusMaintain,
		},
		{
			name:        "ROAS no limiar de 7 com margem boa e estoque baixo deve manter",
			roas:        7,
			cpa:         30,
			marginPct:   40,
			stock:       20,
			conversions: 5,
			expected:    domain.SkuStatusMaintain,
		},
		{
			name:        "Limiar exato de ROAS 5 não pausa",
			roas:        5,
			cpa:         30,
			marginPct:   40,
			stock:       0,
			conversions: 5,
			expected:    domain.SkuStatusMaintain,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := Classify(tt.roas, tt.cpa, tt.marginPct, tt.stock, tt.conversions)
			assert.Equal(t, tt.expected, result)
		})
	}
}

func TestClassifySku(t *testing.T) {
	sku := domain.NewSkuMetrics("SKU-1", 800, 100, 1000, 50, 5, &domain.SkuExtras{
		Name:      "Produto A",
		MarginPct: 40,
		Stock:     30,
	})

	// ROAS 8, CPA 20, margem 40, estoque 30: deve escalar
	assert.Equal(t, domain.SkuStatusEscalate, ClassifySku(sku))
}
