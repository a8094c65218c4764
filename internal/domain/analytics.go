package domain

// AnalyticsSummary é o resumo normalizado do provedor de web analytics (GA4)
type AnalyticsSummary struct {
	Sessions            int           `json:"sessions"`
	Users               int           `json:"users"`
	Purchases           int           `json:"purchases"`
	Revenue             float64       `json:"revenue"`
	BounceRate          float64       `json:"bounce_rate"`
	CartAbandonmentRate float64       `json:"cart_abandonment_rate"`
	ConversionRate      float64       `json:"conversion_rate"`
	Channels            []ChannelData `json:"channels,omitempty"`
}

// ChannelData é a quebra de aquisição por canal do web analytics
type ChannelData struct {
	Channel   string  `json:"channel"`
	Sessions  int     `json:"sessions"`
	Users     int     `json:"users"`
	Purchases int     `json:"purchases"`
	Revenue   float64 `json:"revenue"`
}

// RetentionSummary é o resumo de retenção de clientes por coorte
type RetentionSummary struct {
	ReturnRatePct  float64 `json:"return_rate_pct"`
	NewCustomers   int     `json:"new_customers"`
	ReturningCount int     `json:"returning_count"`
}

// FunnelStep é a contagem de um passo do funil de conversão
type FunnelStep struct {
	Step  string `json:"step"`
	Count int    `json:"count"`
}
