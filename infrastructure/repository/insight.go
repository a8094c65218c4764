package repository

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"
	"github.com/vfg2006/marketing-intelligence-api/infrastructure/database/postgres"
	"github.com/vfg2006/marketing-intelligence-api/internal/domain"
	"github.com/vfg2006/marketing-intelligence-api/pkg/utils"
)

const insightsTable = "insights i"

// InsightRepository é a loja append-only de insights gerados pelo motor
// de análise. Registros nunca são atualizados nem removidos por aqui.
type InsightRepository interface {
	AppendInsights(accountID string, period domain.PeriodMeta, insights []domain.Insight) error
	GetByAccountAndPeriod(accountID string, startDate, endDate time.Time) ([]domain.Insight, error)
}

type insightRepository struct {
	conn *postgres.Connection
}

func NewInsightRepository(conn *postgres.Connection) InsightRepository {
	return &insightRepository{
		conn: conn,
	}
}

func (r *insightRepository) AppendInsights(accountID string, period domain.PeriodMeta, insights []domain.Insight) error {
	if len(insights) == 0 {
		return nil
	}

	builder := squirrel.StatementBuilder.
		Insert("insights").
		Columns("id", "account_id", "start_date", "end_date", "payload")

	for _, insight := range insights {
		rowID, err := utils.GenerateID()
		if err != nil {
			return fmt.Errorf("erro ao gerar identificador do insight: %w", err)
		}

		payload, err := json.Marshal(insight)
		if err != nil {
			return fmt.Errorf("erro ao serializar insight para JSON: %w", err)
		}

		builder = builder.Values(
			rowID,
			accountID,
			period.StartDate.Format("2006-01-02"),
			period.EndDate.Format("2006-01-02"),
			payload,
		)
	}

	query, args, err := builder.
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

func (r *insightRepository) GetByAccountAndPeriod(accountID string, startDate, endDate time.Time) ([]domain.Insight, error) {
	query, args, err := squirrel.
		Select("i.payload").
		From(insightsTable).
		Where(squirrel.Eq{"i.account_id": accountID}).
		Where(squirrel.GtOrEq{"i.start_date": startDate.Format("2006-01-02")}).
		Where(squirrel.LtOrEq{"i.end_date": endDate.Format("2006-01-02")}).
		OrderBy("i.created_at ASC").
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

	insights := make([]domain.Insight, 0)
	for rows.Next() {
		var payload []byte
		if err := rows.Scan(&payload); err != nil {
			return nil, fmt.Errorf("erro ao escanear insight: %w", err)
		}

		var insight domain.Insight
		if err := json.Unmarshal(payload, &insight); err != nil {
			return nil, fmt.Errorf("erro ao deserializar JSON do insight: %w", err)
		}

		insights = append(insights, insight)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return insights, nil
}
