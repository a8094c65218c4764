package domain

import "time"

// PeriodFilters delimita a janela de datas de uma consulta de métricas
type PeriodFilters struct {
	StartDate *time.Time
	EndDate   *time.Time
}

// PeriodMetrics agrupa as métricas normalizadas de uma conta em um período,
// a unidade de comparação do detector de alertas
type PeriodMetrics struct {
	Account   *AccountMetrics    `json:"account"`
	Campaigns []*CampaignMetrics `json:"campaigns"`
	Skus      []*SkuMetrics      `json:"skus"`
}
