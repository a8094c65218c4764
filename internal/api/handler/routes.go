package handler

import (
	"net/http"

	"github.com/vfg2006/marketing-intelligence-api/internal/api/handler/router"
	"github.com/vfg2006/marketing-intelligence-api/internal/usecases/account"
	"github.com/vfg2006/marketing-intelligence-api/internal/usecases/analyzing"
	"github.com/vfg2006/marketing-intelligence-api/internal/usecases/authenticating"
	"github.com/vfg2006/marketing-intelligence-api/internal/usecases/planning"
	"github.com/vfg2006/marketing-intelligence-api/pkg/middleware"
)

func Healthcheck() []router.Route {
	return []router.Route{
		{
			Path:    "/healthcheck",
			Method:  http.MethodGet,
			Handler: HealthcheckHandler(),
		},
	}
}

func Accounts(service account.AccountService) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/accounts",
			Method:      http.MethodGet,
			Handler:     AccountList(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOnly()},
		},
		{
			Path:        "/v1/accounts/sync",
			Method:      http.MethodGet,
			Handler:     SyncAccounts(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOnly()},
		},
		{
			Path:        "/v1/accounts/:id",
			Method:      http.MethodPut,
			Handler:     UpdateAccount(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
	}
}

func Intelligence(service analyzing.Analyzer) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/intelligence/:id",
			Method:      http.MethodGet,
			Handler:     AnalyzeAccount(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/intelligence/:id/alerts",
			Method:      http.MethodGet,
			Handler:     GetSmartAlerts(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
	}
}

func Targets(service planning.Planner) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/targets/:id/:year/:month",
			Method:      http.MethodGet,
			Handler:     GetTargetMonth(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/targets/:id/:year/:month",
			Method:      http.MethodPut,
			Handler:     SaveTargetMonth(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOrSupervisor()},
		},
	}
}

func Narrative(deps NarrativeDeps) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/intelligence/:id/narrative",
			Method:      http.MethodGet,
			Handler:     GetNarrative(deps),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
	}
}

func Authentication(service authenticating.Authenticator) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/login",
			Method:  http.MethodPost,
			Handler: Login(service),
		},
		{
			Path:    "/v1/register",
			Method:  http.MethodPost,
			Handler: CreateUser(service),
		},
		{
			Path:        "/v1/users/:id/generate-password",
			Method:      http.MethodPost,
			Handler:     ResetPassword(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOnly()},
		},
		{
			Path:        "/v1/users/:id/change-password",
			Method:      http.MethodPost,
			Handler:     ChangePassword(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/me",
			Method:      http.MethodGet,
			Handler:     GetMe(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
	}
}

func User(service authenticating.Authenticator) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/users",
			Method:      http.MethodGet,
			Handler:     ListUsers(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOnly()},
		},
		{
			Path:        "/v1/users",
			Method:      http.MethodPost,
			Handler:     CreateUser(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOnly()},
		},
		{
			Path:        "/v1/users/:id",
			Method:      http.MethodGet,
			Handler:     GetUser(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/users/:id",
			Method:      http.MethodPut,
			Handler:     UpdateUser(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
	}
}

// UserAccounts retorna as rotas de gerenciamento de contas vinculadas a usuários
func UserAccounts(service authenticating.Authenticator) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/me/accounts",
			Method:      http.MethodGet,
			Handler:     GetUserAccounts(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/users/:id/accounts",
			Method:      http.MethodPut,
			Handler:     UpdateUserAccounts(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOnly()},
		},
	}
}

func CronJobs(services CronJobServices) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/cron/:type/run",
			Method:      http.MethodPost,
			Handler:     RunCronJob(services),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOrSupervisor()},
		},
		{
			Path:        "/v1/cron/status",
			Method:      http.MethodGet,
			Handler:     GetCronStatus(services),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOrSupervisor()},
		},
	}
}
