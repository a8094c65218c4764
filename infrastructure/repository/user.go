package repository

import (
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/vfg2006/marketing-intelligence-api/infrastructure/database/postgres"
	"github.com/vfg2006/marketing-intelligence-api/internal/domain"
)

const (
	usersTable        = "users"
	userAccountsTable = "user_accounts"
)

type UserRepository interface {
	CreateUser(user *domain.User) (*domain.User, error)
	UpdateUser(user *domain.User) error
	GetUserByEmail(email string) (*domain.User, error)
	GetUserByID(userID int) (*domain.User, error)
	ListUser() ([]*domain.User, error)
	GetUserLinkedAccounts(userID int) ([]string, error)
	LinkUserAccount(userID int, accountID string) error
	UnlinkUserAccount(userID int, accountID string) error
}

type userRepository struct {
	conn *postgres.Connection
}

func NewUserRepository(conn *postgres.Connection) UserRepository {
	return &userRepository{
		conn: conn,
	}
}

func (r *userRepository) CreateUser(user *domain.User) (*domain.User, error) {
	query, args, err := squirrel.
		Insert(usersTable).
		Columns("name", "lastname", "email", "password_hash", "active", "role_id").
		Values(user.Name, user.Lastname, user.Email, user.PasswordHash, user.Active, user.RoleID).
		Suffix("RETURNING id").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, err
	}

	if err := r.conn.QueryRow(query, args...).Scan(&user.ID); err != nil {
		return nil, err
	}

	return user, nil
}

func (r *userRepository) UpdateUser(user *domain.User) error {
	builder := squirrel.
		Update(usersTable).
		Set("active", user.Active).
		Where(squirrel.Eq{"id": user.ID})

	if user.Name != "" {
		builder = builder.Set("name", user.Name)
	}

	if user.Lastname != "" {
		builder = builder.Set("lastname", user.Lastname)
	}

	if user.Email != "" {
		builder = builder.Set("email", user.Email)
	}

	if user.PasswordHash != "" {
		builder = builder.Set("password_hash", user.PasswordHash)
	}

	if user.RoleID != 0 {
		builder = builder.Set("role_id", user.RoleID)
	}

	if user.Deleted {
		builder = builder.Set("deleted", true)
		builder = builder.Set("deleted_at", user.DeletedAt)
	}

	query, args, err := builder.PlaceholderFormat(squirrel.Dollar).ToSql()
	if err != nil {
		return err
	}

	if _, err := r.conn.Exec(query, args...); err != nil {
		return err
	}

	return nil
}

func (r *userRepository) GetUserByEmail(email string) (*domain.User, error) {
	return r.getUser(squirrel.Eq{"email": email})
}

func (r *userRepository) GetUserByID(userID int) (*domain.User, error) {
	return r.getUser(squirrel.Eq{"id": userID})
}

func (r *userRepository) getUser(whereClause map[string]interface{}) (*domain.User, error) {
	query, args, err := squirrel.
		Select("id, name, lastname, email, password_hash, active, role_id, created_at, updated_at").
		From(usersTable).
		Where(whereClause).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	var user domain.User
	err = r.conn.QueryRow(query, args...).Scan(
		&user.ID,
		&user.Name,
		&user.Lastname,
		&user.Email,
		&user.PasswordHash,
		&user.Active,
		&user.RoleID,
		&user.CreatedAt,
		&user.UpdatedAt,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}

	linked, err := r.GetUserLinkedAccounts(user.ID)
	if err != nil {
		return nil, err
	}
	user.LinkedAccounts = linked

	return &user, nil
}

func (r *userRepository) ListUser() ([]*domain.User, error) {
	query, args, err := squirrel.
		Select("id, name, lastname, email, active, role_id, created_at, updated_at").
		From(usersTable).
		Where(squirrel.Eq{"deleted": false}).
		OrderBy("name ASC").
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

	users := make([]*domain.User, 0)
	for rows.Next() {
		var user domain.User
		err := rows.Scan(
			&user.ID,
			&user.Name,
			&user.Lastname,
			&user.Email,
			&user.Active,
			&user.RoleID,
			&user.CreatedAt,
			&user.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("erro ao escanear usuário: %w", err)
		}
		users = append(users, &user)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return users, nil
}

func (r *userRepository) GetUserLinkedAccounts(userID int) ([]string, error) {
	query, args, err := squirrel.
		Select("account_id").
		From(userAccountsTable).
		Where(squirrel.Eq{"user_id": userID}).
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

	accountIDs := make([]string, 0)
	for rows.Next() {
		var accountID string
		if err := rows.Scan(&accountID); err != nil {
			return nil, fmt.Errorf("erro ao escanear vínculo de conta: %w", err)
		}
		accountIDs = append(accountIDs, accountID)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return accountIDs, nil
}

func (r *userRepository) LinkUserAccount(userID int, accountID string) error {
	query, args, err := squirrel.
		Insert(userAccountsTable).
		Columns("user_id", "account_id").
		Values(userID, accountID).
		Suffix("ON CONFLICT (user_id, account_id) DO NOTHING").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir a query: %w", err)
	}

	if _, err := r.conn.Exec(query, args...); err != nil {
		return fmt.Errorf("erro ao executar a query: %w", err)
	}

	return nil
}

func (r *userRepository) UnlinkUserAccount(userID int, accountID string) error {
	query, args, err := squirrel.
		Delete(userAccountsTable).
		Where(squirrel.Eq{"user_id": userID, "account_id": accountID}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir a query: %w", err)
	}

	if _, err := r.conn.Exec(query, args...); err != nil {
		return fmt.Errorf("erro ao executar a query: %w", err)
	}

	return nil
}
