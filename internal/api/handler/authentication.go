package handler

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/julienschmidt/httprouter"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/marketing-intelligence-api/internal/domain"
	"github.com/vfg2006/marketing-intelligence-api/internal/usecases/authenticating"
	"github.com/vfg2006/marketing-intelligence-api/pkg/apiErrors"
	"github.com/vfg2006/marketing-intelligence-api/pkg/middleware"
)

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type ResetPasswordResponse struct {
	Password string `json:"password"`
}

type ChangePasswordRequest struct {
	CurrentPassword string `json:"current_password"`
	NewPassword     string `json:"new_password"`
}

func Login(service authenticating.Authenticator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req LoginRequest

		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Formato de requisição inválido", nil)
			return
		}

		token, err := service.LoginUser(req.Email, req.Password)
		if err != nil {
			handleLoginError(w, err)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]string{
			"token": token,
		})
	}
}

// GetMe retorna as informações do usuário logado
func GetMe(service authenticating.Authenticator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userClaims, ok := r.Context().Value(middleware.ContextKeyUser).(*domain.Claims)
		if !ok {
			apiErrors.WriteError(w, apiErrors.ErrInvalidToken, "Usuário não autenticado", nil)
			return
		}

		user, err := service.GetUserProfile(userClaims.UserID)
		if err != nil {
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao obter dados do usuário", nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		err = json.NewEncoder(w).Encode(user)
		if err != nil {
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao enviar resposta", nil)
			return
		}
	}
}

// handleLoginError trata erros específicos de login e retorna a resposta apropriada
func handleLoginError(w http.ResponseWriter, err error) {
	var authErr *authenticating.AuthError
	if errors.As(err, &authErr) {
		apiErrors.WriteError(w, authErr.Code, authErr.Error(), map[string]any{
			"user_id": authErr.UserID,
		})
		return
	}

	switch {
	case errors.Is(err, authenticating.ErrInvalidCredentials):
		apiErrors.WriteError(w, apiErrors.ErrInvalidCredentials, "Credenciais inválidas", nil)

	case errors.Is(err, authenticating.ErrUserDisabled):
		apiErrors.WriteError(w, apiErrors.ErrUserDisabled, "Usuário desativado", nil)

	case errors.Is(err, authenticating.ErrUserNotFound):
		apiErrors.WriteError(w, apiErrors.ErrUserNotFound, "Usuário não encontrado", nil)

	default:
		apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro interno ao realizar login", nil)
	}
}

// ChangePassword permite que o usuário altere a própria senha
func ChangePassword(service authenticating.Authenticator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - ChangePassword")

		targetUserIDStr := httprouter.ParamsFromContext(r.Context()).ByName("id")
		if targetUserIDStr == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "ID do usuário não fornecido", nil)
			return
		}

		targetUserID, err := strconv.Atoi(targetUserIDStr)
		if err != nil {
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "ID do usuário inválido", nil)
			return
		}

		userClaims, ok := r.Context().Value(middleware.ContextKeyUser).(*domain.Claims)
		if !ok {
			apiErrors.WriteError(w, apiErrors.ErrInvalidToken, "Não autorizado", nil)
			return
		}

		var req ChangePasswordRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Erro ao decodificar requisição", nil)
			return
		}

		if userClaims.UserID != targetUserID {
			apiErrors.WriteError(w, apiErrors.ErrInsufficientPrivilege, "Não autorizado a alterar a senha de outro usuário", nil)
			return
		}

		err = service.ChangePassword(targetUserID, req.CurrentPassword, req.NewPassword)
		if err != nil {
			logrus.Error(err)

			switch {
			case errors.Is(err, authenticating.ErrUserNotFound):
				apiErrors.WriteError(w, apiErrors.ErrUserNotFound, "Usuário não encontrado", nil)

			case errors.Is(err, authenticating.ErrInvalidCredentials):
				apiErrors.WriteError(w, apiErrors.ErrInvalidCredentials, "Senha atual incorreta", nil)

			case errors.Is(err, authenticating.ErrWeakPassword):
				apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, err.Error(), nil)

			default:
				apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao alterar senha", nil)
			}
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
	}
}

// ResetPassword gera uma nova senha forte para um usuário.
// Apenas administradores podem executar a operação.
func ResetPassword(service authenticating.Authenticator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - ResetPassword")

		userClaims, ok := r.Context().Value(middleware.ContextKeyUser).(*domain.Claims)
		if !ok {
			apiErrors.WriteError(w, apiErrors.ErrInvalidToken, "Não autorizado", nil)
			return
		}

		targetUserIDStr := httprouter.ParamsFromContext(r.Context()).ByName("id")
		if targetUserIDStr == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "ID do usuário não fornecido", nil)
			return
		}

		targetUserID, err := strconv.Atoi(targetUserIDStr)
		if err != nil {
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "ID do usuário inválido", nil)
			return
		}

		newPassword, err := service.ResetPassword(userClaims.UserID, targetUserID)
		if err != nil {
			logrus.Error(err)

			switch {
			case errors.Is(err, authenticating.ErrInsufficientPrivilege):
				apiErrors.WriteError(w, apiErrors.ErrInsufficientPrivilege, "Apenas administradores podem gerar novas senhas", nil)

			case errors.Is(err, authenticating.ErrUserNotFound):
				apiErrors.WriteError(w, apiErrors.ErrUserNotFound, "Usuário não encontrado", nil)

			default:
				apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao gerar senha", nil)
			}
			return
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(ResetPasswordResponse{
			Password: newPassword,
		})
	}
}
