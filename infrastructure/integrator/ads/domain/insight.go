package domain

// AccountInsight é o payload bruto de totais da conta retornado pelo
// provedor de anúncios. Valores monetários chegam como string.
type AccountInsight struct {
	AccountID   string `json:"account_id"`
	AccountName string `json:"account_name"`
	Spend       string `json:"spend"`
	Revenue     string `json:"revenue"`
	Impressions int    `json:"impressions"`
	Clicks      int    `json:"clicks"`
	Conversions string `json:"conversions"`
}

// SkuInsight é o payload bruto de métricas por SKU
type SkuInsight struct {
	SKU         string `json:"sku"`
	Spend       string `json:"spend"`
	Revenue     string `json:"revenue"`
	Impressions int    `json:"impressions"`
	Clicks      int    `json:"clicks"`
	Conversions string `json:"conversions"`
}

// CampaignInsight é o payload bruto de métricas por campanha
type CampaignInsight struct {
	CampaignID   string `json:"campaign_id"`
	CampaignName string `json:"campaign_name"`
	Channel      string `json:"channel"`
	Status       string `json:"status"`
	Spend        string `json:"spend"`
	Revenue      string `json:"revenue"`
	Impressions  int    `json:"impressions"`
	Clicks       int    `json:"clicks"`
	Conversions  string `json:"conversions"`
}

// DailyInsight é o payload bruto de um dia da série diária da conta
type DailyInsight struct {
	Date        string `json:"date"`
	Spend       string `json:"spend"`
	Revenue     string `json:"revenue"`
	Conversions string `json:"conversions"`
}
