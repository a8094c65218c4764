package domain

import "sort"

// AlertSeverity é a severidade de um alerta inteligente
type AlertSeverity string

const (
	SeverityDanger  AlertSeverity = "danger"
	SeverityWarn    AlertSeverity = "warn"
	SeverityInfo    AlertSeverity = "info"
	SeveritySuccess AlertSeverity = "success"
)

// severityRank ordena danger > warn > info > success
var severityRank = map[AlertSeverity]int{
	SeverityDanger:  0,
	SeverityWarn:    1,
	SeverityInfo:    2,
	SeveritySuccess: 3,
}

// Rank retorna a posição da severidade na ordenação (menor vem primeiro)
func (s AlertSeverity) Rank() int {
	rank, ok := severityRank[s]
	if !ok {
		return len(severityRank)
	}
	return rank
}

// IsNegative informa se a severidade representa um problema
func (s AlertSeverity) IsNegative() bool {
	return s == SeverityDanger || s == SeverityWarn
}

// AlertCategory é o escopo de origem de um alerta
type AlertCategory string

const (
	CategoryAccount   AlertCategory = "account"
	CategoryCampaign  AlertCategory = "campaign"
	CategorySku       AlertCategory = "sku"
	CategoryTrend     AlertCategory = "trend"
	CategoryRetention AlertCategory = "retention"
)

// SmartAlert é um alerta de anomalia ou tendência entre períodos.
// Uma vez emitido, o alerta é imutável e efêmero por requisição.
type SmartAlert struct {
	ID             string        `json:"id"`
	Category       AlertCategory `json:"category"`
	Severity       AlertSeverity `json:"severity"`
	Title          string        `json:"title"`
	Description    string        `json:"description"`
	Metric         string        `json:"metric"`
	CurrentValue   float64       `json:"current_value"`
	PreviousValue  float64       `json:"previous_value"`
	DeltaPct       float64       `json:"delta_pct"`
	EntityID       *string       `json:"entity_id,omitempty"`
	Recommendation *string       `json:"recommendation,omitempty"`
}

// SortAlertsBySeverity ordena os alertas por severidade preservando a ordem
// de entrada dentro de cada severidade
func SortAlertsBySeverity(alerts []SmartAlert) {
	sort.SliceStable(alerts, func(i, j int) bool {
		return alerts[i].Severity.Rank() < alerts[j].Severity.Rank()
	})
}
