package repository

import (
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"
	"github.com/vfg2006/marketing-intelligence-api/infrastructure/database/postgres"
	"github.com/vfg2006/marketing-intelligence-api/internal/domain"
)

const skuExtrasTable = "sku_extras se"

// SkuExtrasRepository guarda os dados cadastrais de SKU (margem, estoque)
// mantidos fora do provedor de anúncios
type SkuExtrasRepository interface {
	GetByAccount(accountID string) (map[string]*domain.SkuExtras, error)
	GetBySku(accountID, sku string) (*domain.SkuExtras, error)
	SaveOrUpdate(accountID string, sku string, extras *domain.SkuExtras) error
}

type skuExtrasRepository struct {
	conn *postgres.Connection
}

func NewSkuExtrasRepository(conn *postgres.Connection) SkuExtrasRepository {
	return &skuExtrasRepository{
		conn: conn,
	}
}

// GetByAccount retorna o cadastro completo da conta indexado por SKU
func (r *skuExtrasRepository) GetByAccount(accountID string) (map[string]*domain.SkuExtras, error) {
	query, args, err := squirrel.
		Select("se.sku, se.name, se.margin_pct, se.stock, se.cost_of_goods, se.category").
		From(skuExtrasTable).
		Where(squirrel.Eq{"se.account_id": accountID}).
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

	extrasBySku := make(map[string]*domain.SkuExtras)
	for rows.Next() {
		var sku string
		extras := &domain.SkuExtras{}

		err := rows.Scan(
			&sku,
			&extras.Name,
			&extras.MarginPct,
			&extras.Stock,
			&extras.CostOfGoods,
			&extras.Category,
		)
		if err != nil {
			return nil, fmt.Errorf("erro ao escanear cadastro de SKU: %w", err)
		}

		extrasBySku[sku] = extras
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return extrasBySku, nil
}

func (r *skuExtrasRepository) GetBySku(accountID, sku string) (*domain.SkuExtras, error) {
	query, args, err := squirrel.
		Select("se.name, se.margin_pct, se.stock, se.cost_of_goods, se.category").
		From(skuExtrasTable).
		Where(squirrel.Eq{"se.account_id": accountID, "se.sku": sku}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	extras := &domain.SkuExtras{}
	err = r.conn.QueryRow(query, args...).Scan(
		&extras.Name,
		&extras.MarginPct,
		&extras.Stock,
		&extras.CostOfGoods,
		&extras.Category,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}

	return extras, nil
}

func (r *skuExtrasRepository) SaveOrUpdate(accountID string, sku string, extras *domain.SkuExtras) error {
	query, args, err := squirrel.StatementBuilder.
		Insert("sku_extras").
		Columns("account_id", "sku", "name", "margin_pct", "stock", "cost_of_goods", "category").
		Values(
			accountID,
			sku,
			extras.Name,
			extras.MarginPct,
			extras.Stock,
			extras.CostOfGoods,
			extras.Category,
		).
		Suffix(`
			ON CONFLICT (account_id, sku) DO UPDATE SET
				name = EXCLUDED.name,
				margin_pct = EXCLUDED.margin_pct,
				stock = EXCLUDED.stock,
				cost_of_goods = EXCLUDED.cost_of_goods,
				category = EXCLUDED.category,
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
