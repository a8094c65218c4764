package repository

import (
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"
	"github.com/vfg2006/marketing-intelligence-api/infrastructure/database/postgres"
	"github.com/vfg2006/marketing-intelligence-api/internal/domain"
)

const accountsTable = "accounts a"

type AccountRepository interface {
	GetAccountByID(accountID string) (*domain.Account, error)
	GetAccountByExternalID(accountExternalID string) (*domain.Account, error)
	ListAccounts(availableStatus []domain.AccountStatus) ([]*domain.Account, error)
	ListAccountsMap() (map[string]struct{}, error)
	SaveOrUpdate(accounts []*domain.Account) error
	UpdateAccount(account *domain.Account) error
}

type accountRepository struct {
	conn *postgres.Connection
}

func NewAccountRepository(conn *postgres.Connection) AccountRepository {
	return &accountRepository{
		conn: conn,
	}
}

func (a *accountRepository) GetAccountByID(accountID string) (*domain.Account, error) {
	return a.getAccount(squirrel.Eq{"a.id": accountID})
}

func (a *accountRepository) GetAccountByExternalID(accountExternalID string) (*domain.Account, error) {
	return a.getAccount(squirrel.Eq{"a.external_id": accountExternalID})
}

func (a *accountRepository) getAccount(whereClause map[string]interface{}) (*domain.Account, error) {
	query, args, err := squirrel.
		Select("a.id, a.external_id, a.name, a.nickname, a.property_id, a.status, a.roas_target, a.cpa_ceiling").
		From(accountsTable).
		Where(whereClause).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	row := a.conn.QueryRow(query, args...)

	account, err := scanAccount(row)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}

	return account, nil
}

func (a *accountRepository) ListAccounts(availableStatus []domain.AccountStatus) ([]*domain.Account, error) {
	builder := squirrel.
		Select("a.id, a.external_id, a.name, a.nickname, a.property_id, a.status, a.roas_target, a.cpa_ceiling").
		From(accountsTable).
		OrderBy("a.name ASC").
		PlaceholderFormat(squirrel.Dollar)

	if len(availableStatus) > 0 {
		statuses := make([]string, 0, len(availableStatus))
		for _, s := range availableStatus {
			statuses = append(statuses, string(s))
		}
		builder = builder.Where(squirrel.Eq{"a.status": statuses})
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := a.conn.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("erro ao executar a query: %w", err)
	}
	defer rows.Close()

	accounts := make([]*domain.Account, 0)
	for rows.Next() {
		account, err := scanAccountRows(rows)
		if err != nil {
			return nil, fmt.Errorf("erro ao escanear conta: %w", err)
		}
		accounts = append(accounts, account)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return accounts, nil
}

// ListAccountsMap retorna o conjunto de external_ids já cadastrados,
// usado pela sincronização para pular contas existentes
func (a *accountRepository) ListAccountsMap() (map[string]struct{}, error) {
	query, _, err := squirrel.
		Select("a.external_id").
		From(accountsTable).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := a.conn.Query(query)
	if err != nil {
		return nil, fmt.Errorf("erro ao executar a query: %w", err)
	}
	defer rows.Close()

	existing := make(map[string]struct{})
	for rows.Next() {
		var externalID string
		if err := rows.Scan(&externalID); err != nil {
			return nil, fmt.Errorf("erro ao escanear external_id: %w", err)
		}
		existing[externalID] = struct{}{}
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return existing, nil
}

func (a *accountRepository) SaveOrUpdate(accounts []*domain.Account) error {
	if len(accounts) == 0 {
		return nil
	}

	builder := squirrel.StatementBuilder.
		Insert("accounts").
		Columns("id", "external_id", "name", "nickname", "property_id", "status", "roas_target", "cpa_ceiling")

	for _, account := range accounts {
		builder = builder.Values(
			account.ID,
			account.ExternalID,
			account.Name,
			account.Nickname,
			account.PropertyID,
			account.Status,
			account.RoasTarget,
			account.CpaCeiling,
		)
	}

	query, args, err := builder.
		Suffix(`
			ON CONFLICT (external_id) DO UPDATE SET
				name = EXCLUDED.name,
				updated_at = NOW()
		`).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir a query: %w", err)
	}

	if _, err := a.conn.Exec(query, args...); err != nil {
		if pqErr, ok := err.(*pq.Error); ok {
			return fmt.Errorf("erro no banco de dados: %w (código: %s)", pqErr, pqErr.Code)
		}
		return fmt.Errorf("erro ao executar a query: %w", err)
	}

	return nil
}

func (a *accountRepository) UpdateAccount(account *domain.Account) error {
	query, args, err := squirrel.
		Update("accounts").
		Set("nickname", account.Nickname).
		Set("property_id", account.PropertyID).
		Set("status", account.Status).
		Set("roas_target", account.RoasTarget).
		Set("cpa_ceiling", account.CpaCeiling).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": account.ID}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir a query: %w", err)
	}

	if _, err := a.conn.Exec(query, args...); err != nil {
		return fmt.Errorf("erro ao executar a query: %w", err)
	}

	return nil
}

func scanAccount(row *sql.Row) (*domain.Account, error) {
	account := &domain.Account{}

	err := row.Scan(
		&account.ID,
		&account.ExternalID,
		&account.Name,
		&account.Nickname,
		&account.PropertyID,
		&account.Status,
		&account.RoasTarget,
		&account.CpaCeiling,
	)
	if err != nil {
		return nil, err
	}

	return account, nil
}

func scanAccountRows(rows *sql.Rows) (*domain.Account, error) {
	account := &domain.Account{}

	err := rows.Scan(
		&account.ID,
		&account.ExternalID,
		&account.Name,
		&account.Nickname,
		&account.PropertyID,
		&account.Status,
		&account.RoasTarget,
		&account.CpaCeiling,
	)
	if err != nil {
		return nil, err
	}

	return account, nil
}
