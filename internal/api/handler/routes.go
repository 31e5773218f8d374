package handler

import (
	"net/http"

	"github.com/somework/landing-api/internal/api/handler/router"
	"github.com/somework/landing-api/internal/usecases/authenticating"
	"github.com/somework/landing-api/internal/usecases/configuring"
	"github.com/somework/landing-api/internal/usecases/insighting"
	"github.com/somework/landing-api/internal/usecases/resourcing"
	"github.com/somework/landing-api/internal/usecases/tracking"
	"github.com/somework/landing-api/pkg/middleware"
)

type middlewares = []func(http.Handler) http.Handler

func Healthcheck() []router.Route {
	return []router.Route{
		{
			Path:    "/healthcheck",
			Method:  http.MethodGet,
			Handler: HealthcheckHandler(),
		},
	}
}

// Metrics expõe o handler do Prometheus
func Metrics(handler http.Handler) []router.Route {
	return []router.Route{
		{
			Path:    "/metrics",
			Method:  http.MethodGet,
			Handler: handler,
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
			Path:        "/v1/admin/me",
			Method:      http.MethodGet,
			Handler:     GetMe(service),
			Middlewares: middlewares{middleware.AllRoles()},
		},
		{
			Path:        "/v1/admin/users/:id/change-password",
			Method:      http.MethodPost,
			Handler:     ChangePassword(service),
			Middlewares: middlewares{middleware.AllRoles()},
		},
		{
			Path:        "/v1/admin/users/:id/generate-password",
			Method:      http.MethodPost,
			Handler:     GeneratePassword(service),
			Middlewares: middlewares{middleware.AdminOnly()},
		},
	}
}

func User(service authenticating.Authenticator) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/admin/users",
			Method:      http.MethodGet,
			Handler:     ListUsers(service),
			Middlewares: middlewares{middleware.AdminOnly()},
		},
		{
			Path:        "/v1/admin/users",
			Method:      http.MethodPost,
			Handler:     CreateUser(service),
			Middlewares: middlewares{middleware.AdminOnly()},
		},
		{
			Path:        "/v1/admin/users/:id",
			Method:      http.MethodPut,
			Handler:     UpdateUser(service),
			Middlewares: middlewares{middleware.AllRoles()},
		},
	}
}

func Resources(service resourcing.Resourcer) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/landing",
			Method:  http.MethodGet,
			Handler: Landing(service),
		},
		{
			Path:    "/v1/resources",
			Method:  http.MethodGet,
			Handler: ListPublicResources(service),
		},
		{
			Path:        "/v1/admin/resources",
			Method:      http.MethodGet,
			Handler:     ListAdminResources(service),
			Middlewares: middlewares{middleware.AllRoles()},
		},
		{
			Path:        "/v1/admin/resources",
			Method:      http.MethodPost,
			Handler:     CreateResource(service),
			Middlewares: middlewares{middleware.AllRoles()},
		},
		{
			Path:        "/v1/admin/resources/:id",
			Method:      http.MethodGet,
			Handler:     GetResource(service),
			Middlewares: middlewares{middleware.AllRoles()},
		},
		{
			Path:        "/v1/admin/resources/:id",
			Method:      http.MethodPut,
			Handler:     UpdateResource(service),
			Middlewares: middlewares{middleware.AllRoles()},
		},
		{
			Path:        "/v1/admin/resources/:id",
			Method:      http.MethodDelete,
			Handler:     DeleteResource(service),
			Middlewares: middlewares{middleware.AllRoles()},
		},
		{
			Path:        "/v1/admin/stats",
			Method:      http.MethodGet,
			Handler:     ResourceStats(service),
			Middlewares: middlewares{middleware.AllRoles()},
		},
	}
}

func Settings(service configuring.Configurer) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/admin/settings",
			Method:      http.MethodGet,
			Handler:     GetSettings(service),
			Middlewares: middlewares{middleware.AdminOnly()},
		},
		{
			Path:        "/v1/admin/settings",
			Method:      http.MethodPut,
			Handler:     SaveSettings(service),
			Middlewares: middlewares{middleware.AdminOnly()},
		},
	}
}

func Tracking(service tracking.Tracker) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/track/pageview",
			Method:  http.MethodPost,
			Handler: TrackPageView(service),
		},
		{
			Path:    "/v1/track/click",
			Method:  http.MethodPost,
			Handler: TrackClick(service),
		},
	}
}

func Analytics(service insighting.Insighter) []router.Route {
	return []router.Route{
		{
			Path:    "/api/analytics",
			Method:  http.MethodGet,
			Handler: GetAnalytics(service),
		},
	}
}

func Dashboards(dashboards DashboardProvider) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/admin/dashboards/:name",
			Method:      http.MethodGet,
			Handler:     GetDashboard(dashboards),
			Middlewares: middlewares{middleware.AllRoles()},
		},
	}
}

func CronJobs(services CronJobServices) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/admin/cron/:type/run",
			Method:      http.MethodPost,
			Handler:     RunCronJob(services),
			Middlewares: middlewares{middleware.AdminOnly()},
		},
		{
			Path:        "/v1/admin/cron/status",
			Method:      http.MethodGet,
			Handler:     GetCronStatus(services),
			Middlewares: middlewares{middleware.AdminOnly()},
		},
	}
}
