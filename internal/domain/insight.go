package domain

import "time"

// InsightSource identifica o sinal que originou um insight
type InsightSource string

const (
	SourceAlerts     InsightSource = "alerts"
	SourceClassifier InsightSource = "classifier"
	SourceFunnel     InsightSource = "funnel"
	SourceRetention  InsightSource = "retention"
)

// Insight é um registro estruturado produzido pelo motor de análise cognitiva.
// Imutável após a emissão; a persistência é a única saída além da resposta.
type Insight struct {
	ID              string             `json:"id"`
	Category        AlertCategory      `json:"category"`
	Severity        AlertSeverity      `json:"severity"`
	Title           string             `json:"title"`
	Description     string             `json:"description"`
	Metrics         map[string]float64 `json:"metrics,omitempty"`
	Recommendations []string           `json:"recommendations,omitempty"`
	Source          InsightSource      `json:"source"`
	QuickWin        bool               `json:"quick_win"`
}

// IntelligenceResult é o resultado completo da análise cognitiva
type IntelligenceResult struct {
	HealthScore float64     `json:"health_score"`
	TopPriority *SmartAlert `json:"top_priority"`
	QuickWins   []Insight   `json:"quick_wins"`
	Insights    []Insight   `json:"insights"`
}

// PeriodMeta são os metadados do período analisado
type PeriodMeta struct {
	StartDate   time.Time `json:"start_date"`
	EndDate     time.Time `json:"end_date"`
	PeriodDays  int       `json:"period_days"`
	DayOfMonth  int       `json:"day_of_month"`
	DaysInMonth int       `json:"days_in_month"`
}

// AnalysisContext agrega todas as entradas do motor de análise cognitiva.
// AccountMetrics e Skus são obrigatórios; o restante degrada a análise
// quando ausente, sem abortá-la.
type AnalysisContext struct {
	AccountID       string             `json:"account_id"`
	Period          PeriodMeta         `json:"period"`
	AccountMetrics  *AccountMetrics    `json:"account_metrics"`
	PreviousAccount *AccountMetrics    `json:"previous_account,omitempty"`
	Skus            []*SkuMetrics      `json:"skus"`
	Campaigns       []*CampaignMetrics `json:"campaigns,omitempty"`
	Analytics       *AnalyticsSummary  `json:"analytics,omitempty"`
	Retention       *RetentionSummary  `json:"retention,omitempty"`
	Funnel          []FunnelStep       `json:"funnel,omitempty"`
	Planning        PlanningMetrics    `json:"planning,omitempty"`
	Alerts          []SmartAlert       `json:"alerts"`
}

// DailySnapshot é a fotografia diária persistida de uma conta
type DailySnapshot struct {
	AccountID string          `json:"account_id"`
	Date      time.Time       `json:"date"`
	Account   *AccountMetrics `json:"account"`
	Skus      []*SkuMetrics   `json:"skus"`
}
