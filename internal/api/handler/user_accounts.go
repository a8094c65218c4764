package handler

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/julienschmidt/httprouter"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/marketing-intelligence-api/internal/domain"
	"github.com/vfg2006/marketing-intelligence-api/internal/usecases/authenticating"
	"github.com/vfg2006/marketing-intelligence-api/pkg/apiErrors"
	"github.com/vfg2006/marketing-intelligence-api/pkg/middleware"
)

type UserAccountsRequest struct {
	AccountIDs []string `json:"account_ids"`
}

// GetUserAccounts retorna as contas vinculadas ao usuário logado
func GetUserAccounts(service authenticating.Authenticator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userClaims, ok := r.Context().Value(middleware.ContextKeyUser).(*domain.Claims)
		if !ok {
			apiErrors.WriteError(w, apiErrors.ErrInsufficientPrivilege, "Você não tem permissão para ver as contas deste usuário", nil)
			return
		}

		accounts, err := service.GetUserLinkedAccounts(userClaims.UserID)
		if err != nil {
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao buscar contas vinculadas", nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(accounts); err != nil {
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao enviar resposta", nil)
		}
	}
}

// UpdateUserAccounts substitui o conjunto de contas vinculadas a um usuário
func UpdateUserAccounts(service authenticating.Authenticator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		idStr := httprouter.ParamsFromContext(r.Context()).ByName("id")
		if idStr == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "ID do usuário não fornecido", nil)
			return
		}

		id, err := strconv.Atoi(idStr)
		if err != nil {
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "ID do usuário inválido", nil)
			return
		}

		userClaims, ok := r.Context().Value(middleware.ContextKeyUser).(*domain.Claims)
		if !ok || userClaims.UserRoleID != middleware.RoleAdmin {
			apiErrors.WriteError(w, apiErrors.ErrInsufficientPrivilege, "Apenas administradores podem alterar as contas vinculadas", nil)
			return
		}

		var req UserAccountsRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Erro ao decodificar requisição", nil)
			return
		}

		err = service.ManageUserAccounts(id, req.AccountIDs)
		if err != nil {
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao atualizar contas vinculadas", nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		response := map[string]interface{}{
			"message":     "Contas vinculadas atualizadas com sucesso",
			"user_id":     id,
			"account_ids": req.AccountIDs,
		}
		if err := json.NewEncoder(w).Encode(response); err != nil {
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao enviar resposta", nil)
		}
	}
}
