package repository

import (
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"
	"github.com/vfg2006/marketing-intelligence-api/infrastructure/database/postgres"
	"github.com/vfg2006/marketing-intelligence-api/internal/domain"
)

const planningTable = "monthly_planning mp"

// PlanningRepository guarda as métricas de planejamento mensal, uma linha
// por (conta, ano, mês, tipo de plano, métrica)
type PlanningRepository interface {
	GetByAccountAndMonth(accountID string, year, month int, planType string) (domain.PlanningMetrics, error)
	SaveOrUpdate(entries []*domain.PlanningEntry) error
}

type planningRepository struct {
	conn *postgres.Connection
}

func NewPlanningRepository(conn *postgres.Connection) PlanningRepository {
	return &planningRepository{
		conn: conn,
	}
}

func (r *planningRepository) GetByAccountAndMonth(accountID string, year, month int, planType string) (domain.PlanningMetrics, error) {
	query, args, err := squirrel.
		Select("mp.metric, mp.value").
		From(planningTable).
		Where(squirrel.Eq{
			"mp.account_id": accountID,
			"mp.year":       year,
			"mp.month":      month,
			"mp.plan_type":  planType,
		}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.conn.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("erro ao executar a query: %w", err)
	}
	defer rows.Close()

	metrics := make(domain.PlanningMetrics)
	for rows.Next() {
		var metric string
		var value float64
		if err := rows.Scan(&metric, &value); err != nil {
			return nil, fmt.Errorf("erro ao escanear métrica de planejamento: %w", err)
		}
		metrics[metric] = value
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return metrics, nil
}

func (r *planningRepository) SaveOrUpdate(entries []*domain.PlanningEntry) error {
	if len(entries) == 0 {
		return nil
	}

	builder := squirrel.StatementBuilder.
		Insert("monthly_planning").
		Columns("account_id", "year", "month", "plan_type", "metric", "value")

	for _, entry := range entries {
		builder = builder.Values(
			entry.AccountID,
			entry.Year,
			entry.Month,
			entry.PlanType,
			entry.Metric,
			entry.Value,
		)
	}

	query, args, err := builder.
		Suffix(`
			ON CONFLICT (account_id, year, month, plan_type, metric) DO UPDATE SET
				value = EXCLUDED.value,
				updated_at = NOW()
		`).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir a query: %w", err)
	}

	if _, err := r.conn.Exec(query, args...); err != nil {
		if pqErr, ok := err.(*pq.Error); ok {
			return fmt.Errorf("erro no banco de dados: %w (código: %s)", pqErr, pqErr.Code)
		}
		return fmt.Errorf("erro ao executar a query: %w", err)
	}

	return nil
}
