package account

import (
	"errors"
	"fmt"
)

// Erros base das operações de conta
var (
	ErrAccountIDRequired = errors.New("ID da conta é obrigatório")
	ErrAccountNotFound   = errors.New("conta não encontrada")
	ErrFetchAccounts     = errors.New("erro ao buscar contas")
	ErrProviderSync      = errors.New("erro ao sincronizar contas com o provedor de anúncios")
	ErrInvalidProperty   = errors.New("propriedade de web analytics inválida")
	ErrGenerateID        = errors.New("erro ao gerar identificador")
	ErrDatabaseOperation = errors.New("erro ao realizar operação no banco de dados")
	ErrUpdateAccount     = errors.New("erro ao atualizar conta")
)

// AccountError carrega o código de API e o ID da conta junto do erro base
type AccountError struct {
	Err       error
	Code      string
	AccountID string
	Details   string
}

func (e *AccountError) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("%s: %s", e.Err.Error(), e.Details)
	}
	return e.Err.Error()
}

func (e *AccountError) Unwrap() error {
	return e.Err
}

// NewAccountError cria um erro de conta com código de API
func NewAccountError(baseErr error, code string, details string) *AccountError {
	return &AccountError{
		Err:     baseErr,
		Code:    code,
		Details: details,
	}
}

// NewAccountErrorWithID cria um erro de conta com o ID envolvido
func NewAccountErrorWithID(baseErr error, code string, accountID string, details string) *AccountError {
	return &AccountError{
		Err:       baseErr,
		Code:      code,
		AccountID: accountID,
		Details:   details,
	}
}
