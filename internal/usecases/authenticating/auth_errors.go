package authenticating

import (
	"errors"
	"fmt"
)

// Erros base de autenticação e autorização
var (
	ErrInvalidCredentials    = errors.New("credenciais inválidas")
	ErrUserDisabled          = errors.New("usuário desativado")
	ErrUserNotFound          = errors.New("usuário não encontrado")
	ErrInvalidToken          = errors.New("token inválido")
	ErrInsufficientPrivilege = errors.New("privilégios insuficientes")
	ErrUserAlreadyExists     = errors.New("usuário já existe")
	ErrMissingRequiredData   = errors.New("dados obrigatórios ausentes")
	ErrWeakPassword          = errors.New("senha fraca")
	ErrDatabaseOperation     = errors.New("erro ao realizar operação no banco de dados")
)

// AuthError carrega o código de API e o contexto do usuário junto do erro base
type AuthError struct {
	Err     error
	Code    string
	UserID  int
	Details string
}

func (e *AuthError) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("%s: %s", e.Err.Error(), e.Details)
	}
	return e.Err.Error()
}

func (e *AuthError) Unwrap() error {
	return e.Err
}

// NewAuthError cria um erro de autenticação com código de API
func NewAuthError(baseErr error, code string, details string) *AuthError {
	return &AuthError{
		Err:     baseErr,
		Code:    code,
		Details: details,
	}
}

// NewUserAuthError cria um erro de autenticação com contexto de usuário
func NewUserAuthError(baseErr error, code string, userID int, details string) *AuthError {
	return &AuthError{
		Err:     baseErr,
		Code:    code,
		UserID:  userID,
		Details: details,
	}
}

// IsCredentialsError informa se o erro é de credenciais ou conta desativada
func IsCredentialsError(err error) bool {
	return errors.Is(err, ErrInvalidCredentials) || errors.Is(err, ErrUserDisabled)
}
