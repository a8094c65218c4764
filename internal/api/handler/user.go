package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/julienschmidt/httprouter"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/marketing-intelligence-api/internal/domain"
	"github.com/vfg2006/marketing-intelligence-api/internal/usecases/authenticating"
	"github.com/vfg2006/marketing-intelligence-api/pkg/apiErrors"
	"github.com/vfg2006/marketing-intelligence-api/pkg/middleware"
)

// GetUser retorna informações do usuário por ID
func GetUser(service authenticating.Authenticator) http.HandlerFunc {
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

		user, err := service.GetUserProfile(id)
		if err != nil {
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao buscar usuário", nil)
			return
		}

		if user == nil {
			apiErrors.WriteError(w, apiErrors.ErrUserNotFound, "Usuário não encontrado", nil)
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

// CreateUser cria um novo usuário
func CreateUser(service authenticating.Authenticator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - CreateUser")

		var user *domain.User

		if err := json.NewDecoder(r.Body).Decode(&user); err != nil {
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Erro ao decodificar requisição", nil)
			return
		}

		if user.Name == "" || user.Email == "" || user.PasswordHash == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "Nome, email e senha são obrigatórios", nil)
			return
		}

		user, err := service.CreateUser(user)
		if err != nil {
			logrus.Error(err)

			if errors.Is(err, authenticating.ErrUserAlreadyExists) {
				apiErrors.WriteError(w, apiErrors.ErrUserAlreadyExists, "Email já cadastrado", nil)
				return
			} else if errors.Is(err, authenticating.ErrMissingRequiredData) {
				apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, err.Error(), nil)
				return
			} else if errors.Is(err, authenticating.ErrWeakPassword) {
				apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, err.Error(), nil)
				return
			} else if errors.Is(err, authenticating.ErrDatabaseOperation) {
				apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao criar usuário", nil)
				return
			}

			var authErr *authenticating.AuthError
			if errors.As(err, &authErr) {
				apiErrors.WriteError(w, authErr.Code, authErr.Details, nil)
				return
			}

			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao criar usuário", nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		err = json.NewEncoder(w).Encode(user)
		if err != nil {
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao enviar resposta", nil)
			return
		}
	}
}

// ListUsers lista todos os usuários
func ListUsers(service authenticating.Authenticator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userClaims, ok := r.Context().Value(middleware.ContextKeyUser).(*domain.Claims)
		if !ok || userClaims.UserRoleID != middleware.RoleAdmin {
			apiErrors.WriteError(w, apiErrors.ErrInsufficientPrivilege, "Apenas administradores podem listar todos os usuários", nil)
			return
		}

		users, err := service.ListUser()
		if err != nil {
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao buscar usuários", nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		err = json.NewEncoder(w).Encode(users)
		if err != nil {
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao enviar resposta", nil)
			return
		}
	}
}

// UpdateUser atualiza informações do usuário
func UpdateUser(service authenticating.Authenticator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - UpdateUser")

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

		// O usuário edita apenas o próprio perfil, a menos que seja admin
		userClaims, ok := r.Context().Value(middleware.ContextKeyUser).(*domain.Claims)
		if !ok || (userClaims.UserID != id && userClaims.UserRoleID != middleware.RoleAdmin) {
			apiErrors.WriteError(w, apiErrors.ErrInsufficientPrivilege, "Você não tem permissão para editar este usuário", nil)
			return
		}

		var updateReq domain.UpdateUserRequest
		if err := json.NewDecoder(r.Body).Decode(&updateReq); err != nil {
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Erro ao decodificar requisição", nil)
			return
		}

		updateReq.ID = id

		// Somente administradores alteram o tipo de usuário
		if updateReq.RoleID != nil && userClaims.UserRoleID != middleware.RoleAdmin {
			apiErrors.WriteError(w, apiErrors.ErrInsufficientPrivilege, "Apenas administradores podem alterar o tipo de usuário", nil)
			return
		}

		err = service.UpdateUser(&updateReq)
		if err != nil {
			logrus.Error(err)
			if errors.Is(err, authenticating.ErrUserAlreadyExists) {
				apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Email já cadastrado", nil)
				return
			}
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao atualizar usuário", nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
	}
}
