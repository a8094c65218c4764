package middleware

import (
	"net/http"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/marketing-intelligence-api/internal/domain"
	"github.com/vfg2006/marketing-intelligence-api/pkg/apiErrors"
)

// Constantes para identificar os roles
const (
	RoleAdmin      = 1
	RoleSupervisor = 2
	RoleClient     = 3
)

// RoleMiddleware restringe o acesso com base nos roles permitidos
func RoleMiddleware(allowedRoles []int) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			userClaims, ok := r.Context().Value(ContextKeyUser).(*domain.Claims)

			if !ok {
				logrus.Warning("Tentativa de acesso sem autenticação")
				apiErrors.WriteError(w, apiErrors.ErrInvalidToken, "Usuário não autenticado", nil)
				return
			}

			isAllowed := false
			for _, role := range allowedRoles {
				if userClaims.UserRoleID == role {
					isAllowed = true
					break
				}
			}

			if !isAllowed {
				logrus.Warningf("Acesso negado para usuário ID=%d, Role=%d", userClaims.UserID, userClaims.UserRoleID)
				apiErrors.WriteError(w, apiErrors.ErrInsufficientPrivilege, "Você não tem permissão para acessar este recurso", nil)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

// AdminOnly permite acesso apenas para administradores
func AdminOnly() func(http.Handler) http.Handler {
	return RoleMiddleware([]int{RoleAdmin})
}

// AdminOrSupervisor permite acesso para administradores e supervisores
func AdminOrSupervisor() func(http.Handler) http.Handler {
	return RoleMiddleware([]int{RoleAdmin, RoleSupervisor})
}

// AllRoles permite acesso para qualquer usuário autenticado
func AllRoles() func(http.Handler) http.Handler {
	return RoleMiddleware([]int{RoleAdmin, RoleSupervisor, RoleClient})
}
