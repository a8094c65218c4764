package apiErrors

import (
	"encoding/json"
	"net/http"
)

// Códigos de erro padronizados da API
const (
	// Erros de autenticação (AUTH)
	ErrInvalidCredentials    = "AUTH_001" // Credenciais inválidas
	ErrUserDisabled          = "AUTH_002" // Usuário desativado
	ErrUserNotFound          = "AUTH_003" // Usuário não encontrado
	ErrInvalidToken          = "AUTH_004" // Token inválido
	ErrExpiredToken          = "AUTH_005" // Token expirado
	ErrInsufficientPrivilege = "AUTH_006" // Privilégios insuficientes
	ErrUserAlreadyExists     = "AUTH_007" // Usuário já existe

	// Erros de validação (VAL)
	ErrInvalidRequest      = "VAL_001" // Requisição inválida
	ErrMissingRequiredData = "VAL_002" // Dados obrigatórios ausentes
	ErrInvalidFormat       = "VAL_003" // Formato de dados inválido
	ErrInvalidPeriod       = "VAL_004" // Período de datas inválido

	// Erros do servidor (SRV)
	ErrInternalServer    = "SRV_001" // Erro interno do servidor
	ErrDatabaseOperation = "SRV_002" // Erro de operação de banco de dados
	ErrExternalService   = "SRV_003" // Erro em serviço externo
	ErrAnalysisFailed    = "SRV_004" // Falha na análise cognitiva
	ErrNarratorDisabled  = "SRV_005" // Narrador de insights indisponível
	ErrRateLimited       = "SRV_006" // Limite de chamadas de IA excedido
)

// Mapeamento de códigos de erro para status HTTP
var httpStatusMap = map[string]int{
	ErrInvalidCredentials:    http.StatusUnauthorized,
	ErrUserDisabled:          http.StatusForbidden,
	ErrUserNotFound:          http.StatusNotFound,
	ErrInvalidToken:          http.StatusUnauthorized,
	ErrExpiredToken:          http.StatusUnauthorized,
	ErrInsufficientPrivilege: http.StatusForbidden,
	ErrUserAlreadyExists:     http.StatusBadRequest,
	ErrInvalidRequest:        http.StatusBadRequest,
	ErrMissingRequiredData:   http.StatusBadRequest,
	ErrInvalidFormat:         http.StatusBadRequest,
	ErrInvalidPeriod:         http.StatusBadRequest,
	ErrInternalServer:        http.StatusInternalServerError,
	ErrDatabaseOperation:     http.StatusInternalServerError,
	ErrExternalService:       http.StatusBadGateway,
	ErrAnalysisFailed:        http.StatusInternalServerError,
	ErrNarratorDisabled:      http.StatusServiceUnavailable,
	ErrRateLimited:           http.StatusTooManyRequests,
}

// APIError representa um erro de API padronizado
type APIError struct {
	Code    string `json:"code"`              // Código de erro para o cliente
	Message string `json:"message,omitempty"` // Mensagem descritiva (opcional)
	Details any    `json:"details,omitempty"` // Detalhes adicionais (opcional)
}

// WriteError escreve o erro padronizado para a resposta HTTP
func WriteError(w http.ResponseWriter, code string, message string, details any) {
	status, exists := httpStatusMap[code]
	if !exists {
		status = http.StatusInternalServerError
	}

	apiErr := APIError{
		Code:    code,
		Message: message,
		Details: details,
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(apiErr)
}

// FromError cria um erro de API a partir de um erro Go
func FromError(err error, code string) APIError {
	if err == nil {
		return APIError{
			Code:    ErrInternalServer,
			Message: "Erro desconhecido",
		}
	}

	return APIError{
		Code:    code,
		Message: err.Error(),
	}
}
