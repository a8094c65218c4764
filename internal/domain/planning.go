package domain

// Nomes das métricas de planejamento mensal. O mapa contém tanto os valores
// digitados pelo usuário quanto os derivados pela cascata de metas.
const (
	MetricCapturedRevenue      = "capturedRevenue"
	MetricBilledRevenue        = "billedRevenue"
	MetricTotalInvestment      = "totalInvestment"
	MetricApprovalRate         = "approvalRate"
	MetricAverageTicket        = "averageTicket"
	MetricBilledTicket         = "billedTicket"
	MetricCapturedRoas         = "capturedRoas"
	MetricBilledRoas           = "billedRoas"
	MetricOrders               = "orders"
	MetricBilledOrders         = "billedOrders"
	MetricCPA                  = "cpa"
	MetricConversionRate       = "conversionRate"
	MetricSessions             = "sessions"
	MetricCostPerSession       = "costPerSession"
	MetricDaysInMonth          = "daysInMonth"
	MetricDailyInvestment      = "dailyInvestment"
	MetricRevenueGoal          = "revenueGoal"
	MetricRevenueShareOfTarget = "revenueShareOfTarget"
)

// PlanningMetrics é o mapa esparso de métricas de planejamento de um mês.
// Ausência de chave é diferente de valor zero: zero é um valor calculado
// válido, ausência significa que a métrica não pôde ser derivada.
type PlanningMetrics map[string]float64

// Has informa se a métrica está presente no mapa
func (p PlanningMetrics) Has(name string) bool {
	_, ok := p[name]
	return ok
}

// Get retorna o valor da métrica e se ela está presente
func (p PlanningMetrics) Get(name string) (float64, bool) {
	v, ok := p[name]
	return v, ok
}

// Clone copia o mapa para evitar mutação do original
func (p PlanningMetrics) Clone() PlanningMetrics {
	out := make(PlanningMetrics, len(p))
	for k, v := range p {
		out[k] = v
	}
	return out
}

// PlanningEntry é uma linha da loja de planejamento mensal
type PlanningEntry struct {
	AccountID string  `json:"account_id"`
	Year      int     `json:"year"`
	Month     int     `json:"month"`
	PlanType  string  `json:"plan_type"`
	Metric    string  `json:"metric"`
	Value     float64 `json:"value"`
}

// PlanTypeTarget é o tipo de plano usado pelas metas mensais
const PlanTypeTarget = "target"
