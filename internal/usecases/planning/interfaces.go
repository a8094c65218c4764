package planning

import (
	"github.com/vfg2006/marketing-intelligence-api/internal/domain"
)

// Planner define as operações de metas mensais expostas pela API
type Planner interface {
	// GetTargetMonth carrega as entradas salvas e retorna o mapa cascateado
	GetTargetMonth(accountID string, year, month int) (domain.PlanningMetrics, error)

	// SaveTargetMonth grava as entradas brutas e retorna o mapa cascateado
	SaveTargetMonth(accountID string, year, month int, inputs domain.PlanningMetrics) (domain.PlanningMetrics, error)
}
