package repository

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"
	"github.com/vfg2006/marketing-intelligence-api/infrastructure/database/postgres"
	"github.com/vfg2006/marketing-intelligence-api/internal/domain"
)

const snapshotsTable = "daily_snapshots ds"

// SnapshotRepository guarda a fotografia diária de métricas por conta,
// uma linha por (conta, dia), com as métricas em JSONB
type SnapshotRepository interface {
	SaveOrUpdate(snapshot *domain.DailySnapshot) error
	GetByAccountAndDate(accountID string, date time.Time) (*domain.DailySnapshot, error)
	GetByDateRange(accountID string, startDate, endDate time.Time) ([]*domain.DailySnapshot, error)
	DeleteOlderThan(days int) (int64, error)
}

type snapshotRepository struct {
	conn *postgres.Connection
}

func NewSnapshotRepository(conn *postgres.Connection) SnapshotRepository {
	return &snapshotRepository{
		conn: conn,
	}
}

func (r *snapshotRepository) SaveOrUpdate(snapshot *domain.DailySnapshot) error {
	var accountJSON, skusJSON []byte
	var err error

	if snapshot.Account != nil {
		accountJSON, err = json.Marshal(snapshot.Account)
		if err != nil {
			return fmt.Errorf("erro ao serializar métricas da conta para JSON: %w", err)
		}
	}

	if snapshot.Skus != nil {
		skusJSON, err = json.Marshal(snapshot.Skus)
		if err != nil {
			return fmt.Errorf("erro ao serializar métricas de SKU para JSON: %w", err)
		}
	}

	query, args, err := squirrel.StatementBuilder.
		Insert("daily_snapshots").
		Columns("account_id", "date", "account_metrics", "sku_metrics").
		Values(
			snapshot.AccountID,
			snapshot.Date.Format("2006-01-02"),
			accountJSON,
			skusJSON,
		).
		Suffix(`
			ON CONFLICT (account_id, date) DO UPDATE SET
				account_metrics = EXCLUDED.account_metrics,
				sku_metrics = EXCLUDED.sku_metrics,
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

func (r *snapshotRepository) GetByAccountAndDate(accountID string, date time.Time) (*domain.DailySnapshot, error) {
	query, args, err := squirrel.
		Select("ds.account_id, ds.date, ds.account_metrics, ds.sku_metrics").
		From(snapshotsTable).
		Where(squirrel.Eq{"ds.account_id": accountID, "ds.date": date.Format("2006-01-02")}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	row := r.conn.QueryRow(query, args...)

	snapshot, err := scanSnapshot(row)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}

	return snapshot, nil
}

func (r *snapshotRepository) GetByDateRange(accountID string, startDate, endDate time.Time) ([]*domain.DailySnapshot, error) {
	query, args, err := squirrel.
		Select("ds.account_id, ds.date, ds.account_metrics, ds.sku_metrics").
		From(snapshotsTable).
		Where(squirrel.Eq{"ds.account_id": accountID}).
		Where(squirrel.GtOrEq{"ds.date": startDate.Format("2006-01-02")}).
		Where(squirrel.LtOrEq{"ds.date": endDate.Format("2006-01-02")}).
		OrderBy("ds.date ASC").
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

	snapshots := make([]*domain.DailySnapshot, 0)
	for rows.Next() {
		snapshot, err := scanSnapshotRows(rows)
		if err != nil {
			return nil, fmt.Errorf("erro ao escanear fotografia diária: %w", err)
		}
		snapshots = append(snapshots, snapshot)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return snapshots, nil
}

func (r *snapshotRepository) DeleteOlderThan(days int) (int64, error) {
	cutoffDate := time.Now().AddDate(0, 0, -days).Format("2006-01-02")

	query, args, err := squirrel.
		Delete("daily_snapshots").
		Where(squirrel.Lt{"date": cutoffDate}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("erro ao construir a query: %w", err)
	}

	result, err := r.conn.Exec(query, args...)
	if err != nil {
		return 0, fmt.Errorf("erro ao executar a query: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("erro ao obter número de linhas afetadas: %w", err)
	}

	return rowsAffected, nil
}

func scanSnapshot(row *sql.Row) (*domain.DailySnapshot, error) {
	snapshot := &domain.DailySnapshot{}
	var accountJSON, skusJSON []byte
	var dateStr string

	err := row.Scan(
		&snapshot.AccountID,
		&dateStr,
		&accountJSON,
		&skusJSON,
	)
	if err != nil {
		return nil, err
	}

	return fillSnapshot(snapshot, dateStr, accountJSON, skusJSON)
}

func scanSnapshotRows(rows *sql.Rows) (*domain.DailySnapshot, error) {
	snapshot := &domain.DailySnapshot{}
	var accountJSON, skusJSON []byte
	var dateStr string

	err := rows.Scan(
		&snapshot.AccountID,
		&dateStr,
		&accountJSON,
		&skusJSON,
	)
	if err != nil {
		return nil, err
	}

	return fillSnapshot(snapshot, dateStr, accountJSON, skusJSON)
}

func fillSnapshot(snapshot *domain.DailySnapshot, dateStr string, accountJSON, skusJSON []byte) (*domain.DailySnapshot, error) {
	date, err := time.Parse("2006-01-02", dateStr)
	if err != nil {
		return nil, fmt.Errorf("erro ao converter data: %w", err)
	}
	snapshot.Date = date

	if accountJSON != nil {
		account := &domain.AccountMetrics{}
		if err := json.Unmarshal(accountJSON, account); err != nil {
			return nil, fmt.Errorf("erro ao deserializar JSON de account_metrics: %w", err)
		}
		snapshot.Account = account
	}

	if skusJSON != nil {
		skus := make([]*domain.SkuMetrics, 0)
		if err := json.Unmarshal(skusJSON, &skus); err != nil {
			return nil, fmt.Errorf("erro ao deserializar JSON de sku_metrics: %w", err)
		}
		snapshot.Skus = skus
	}

	return snapshot, nil
}
