package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/julienschmidt/httprouter"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/marketing-intelligence-api/internal/domain"
	"github.com/vfg2006/marketing-intelligence-api/internal/usecases/account"
	"github.com/vfg2006/marketing-intelligence-api/pkg/apiErrors"
)

func AccountList(service account.AccountService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		filterStatus := r.URL.Query().Get("status")

		availableStatus := make([]domain.AccountStatus, 0)
		if filterStatus != "" {
			for _, status := range strings.Split(filterStatus, ",") {
				availableStatus = append(availableStatus, domain.AccountStatus(status))
			}
		}

		accounts, err := service.ListAccounts(availableStatus)
		if err != nil {
			logrus.Error("Error listing accounts:", err)

			var accountErr *account.AccountError
			if errors.As(err, &accountErr) {
				apiErrors.WriteError(w, accountErr.Code, accountErr.Error(), nil)
				return
			}

			if errors.Is(err, account.ErrFetchAccounts) {
				apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao consultar contas no banco de dados", nil)
			} else {
				apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao listar contas", nil)
			}
			return
		}

		w.Header().Set("Content-Type", "application/json")

		if err := json.NewEncoder(w).Encode(accounts); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao codificar resposta", nil)
		}
	})
}

func SyncAccounts(service account.AccountService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - SyncAccounts")

		resp, err := service.SyncAccounts()
		if err != nil {
			logrus.Error("Error syncing accounts:", err)

			var accountErr *account.AccountError
			if errors.As(err, &accountErr) {
				apiErrors.WriteError(w, accountErr.Code, accountErr.Error(), nil)
				return
			}

			switch {
			case errors.Is(err, account.ErrProviderSync):
				apiErrors.WriteError(w, apiErrors.ErrExternalService, "Erro ao obter contas do provedor de anúncios", nil)

			case errors.Is(err, account.ErrFetchAccounts) || errors.Is(err, account.ErrDatabaseOperation):
				apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao consultar contas no banco de dados", nil)

			case errors.Is(err, account.ErrGenerateID):
				apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao gerar identificadores únicos", nil)

			default:
				apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao sincronizar contas", nil)
			}
			return
		}

		w.Header().Set("Content-Type", "application/json")

		if err := json.NewEncoder(w).Encode(resp); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao codificar resposta", nil)
		}
	})
}

func UpdateAccount(service account.AccountService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - UpdateAccount")

		w.Header().Set("Content-Type", "application/json")

		id := httprouter.ParamsFromContext(r.Context()).ByName("id")
		if id == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "ID da conta é obrigatório", nil)
			return
		}

		var updateRequest domain.UpdateAccountRequest
		if err := json.NewDecoder(r.Body).Decode(&updateRequest); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Corpo da requisição inválido: "+err.Error(), nil)
			return
		}

		// O ID da URL prevalece sobre o do corpo
		updateRequest.ID = id

		resp, err := service.UpdateAccount(&updateRequest)
		if err != nil {
			logrus.Error("Error updating account:", err)

			var accountErr *account.AccountError
			if errors.As(err, &accountErr) {
				apiErrors.WriteError(w, accountErr.Code, accountErr.Error(), map[string]interface{}{
					"account_id": accountErr.AccountID,
					"error_type": accountErr.Err.Error(),
				})
				return
			}

			switch {
			case errors.Is(err, account.ErrAccountIDRequired):
				apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "ID da conta é obrigatório", nil)

			case errors.Is(err, account.ErrAccountNotFound):
				apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Conta não encontrada", map[string]interface{}{
					"account_id": id,
					"error_type": "account_not_found",
				})

			case errors.Is(err, account.ErrInvalidProperty):
				apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Propriedade de web analytics inválida ou inacessível", nil)

			case errors.Is(err, account.ErrDatabaseOperation) || errors.Is(err, account.ErrUpdateAccount):
				apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao atualizar conta no banco de dados", nil)

			default:
				apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro interno ao atualizar conta", nil)
			}
			return
		}

		if err := json.NewEncoder(w).Encode(resp); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao codificar resposta", nil)
		}
	})
}
