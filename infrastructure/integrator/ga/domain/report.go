package domain

// SummaryReport é o relatório bruto de aquisição e conversão da propriedade
type SummaryReport struct {
	Sessions            int          `json:"sessions"`
	Users               int          `json:"users"`
	Purchases           int          `json:"purchases"`
	Revenue             string       `json:"revenue"`
	BounceRate          string       `json:"bounce_rate"`
	CartAbandonmentRate string       `json:"cart_abandonment_rate"`
	Channels            []ChannelRow `json:"channels"`
}

// ChannelRow é a linha bruta da quebra por canal de aquisição
type ChannelRow struct {
	Channel   string `json:"channel"`
	Sessions  int    `json:"sessions"`
	Users     int    `json:"users"`
	Purchases int    `json:"purchases"`
	Revenue   string `json:"revenue"`
}

// RetentionReport é o relatório bruto de coortes de clientes
type RetentionReport struct {
	NewCustomers       int `json:"new_customers"`
	ReturningCustomers int `json:"returning_customers"`
}

// FunnelStepRow é um passo bruto do funil de conversão
type FunnelStepRow struct {
	Step  string `json:"step"`
	Count int    `json:"count"`
}

// Property descreve uma propriedade de web analytics
type Property struct {
	ID          string `json:"id"`
	DisplayName string `json:"display_name"`
}
