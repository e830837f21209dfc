package handler

import (
	"net/http"

	"github.com/vfg2006/influencer-hub-api/internal/api/handler/router"
	"github.com/vfg2006/influencer-hub-api/internal/usecases/authenticating"
	"github.com/vfg2006/influencer-hub-api/internal/usecases/campaigning"
	"github.com/vfg2006/influencer-hub-api/internal/usecases/searching"
	"github.com/vfg2006/influencer-hub-api/internal/usecases/syncing"
	"github.com/vfg2006/influencer-hub-api/pkg/middleware"
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
			Handler: Register(service),
		},
		{
			Path:        "/v1/me",
			Method:      http.MethodGet,
			Handler:     GetMe(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/me/password",
			Method:      http.MethodPost,
			Handler:     ChangePassword(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/profile",
			Method:      http.MethodPost,
			Handler:     UpsertProfile(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
	}
}

// AuthHooks recebe os avisos do provedor de autenticação
func AuthHooks(service authenticating.Authenticator, hookSecret string) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/hooks/auth/email-verified",
			Method:      http.MethodPost,
			Handler:     EmailVerifiedHook(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.SharedSecret(middleware.HeaderAuthHookSecret, hookSecret)},
		},
	}
}

func Search(service searching.Searcher) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/search/options",
			Method:      http.MethodGet,
			Handler:     SearchOptions(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/search",
			Method:      http.MethodGet,
			Handler:     SearchInfluencers(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/influencers",
			Method:      http.MethodGet,
			Handler:     ListInfluencers(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/influencers/:id",
			Method:      http.MethodGet,
			Handler:     GetInfluencer(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
	}
}

func Campaigns(service campaigning.Campaigner) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/campaigns",
			Method:      http.MethodPost,
			Handler:     CreateCampaign(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/campaigns",
			Method:      http.MethodGet,
			Handler:     ListCampaigns(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/campaigns/:id",
			Method:      http.MethodGet,
			Handler:     GetCampaign(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/campaigns/:id",
			Method:      http.MethodPut,
			Handler:     UpdateCampaign(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/campaigns/:id/influencers",
			Method:      http.MethodGet,
			Handler:     ListCampaignInfluencers(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/campaigns/:id/influencers",
			Method:      http.MethodPost,
			Handler:     AttachInfluencer(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
	}
}

// InstagramSync expõe a sincronização para jobs externos autenticados por token de serviço
func InstagramSync(service syncing.Syncer, serviceToken string) []router.Route {
	serviceOnly := middleware.SharedSecret(middleware.HeaderServiceToken, serviceToken)

	return []router.Route{
		{
			Path:        "/v1/sync/instagram/account",
			Method:      http.MethodPost,
			Handler:     SyncInstagramAccount(service),
			Middlewares: []func(http.Handler) http.Handler{serviceOnly},
		},
		{
			Path:        "/v1/sync/instagram/posts",
			Method:      http.MethodPost,
			Handler:     SyncInstagramPosts(service),
			Middlewares: []func(http.Handler) http.Handler{serviceOnly},
		},
	}
}

func CronJobs(services CronJobServices) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/cron/:type/run",
			Method:      http.MethodPost,
			Handler:     RunCronJob(services),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOnly()},
		},
		{
			Path:        "/v1/cron/status",
			Method:      http.MethodGet,
			Handler:     GetCronStatus(services),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOnly()},
		},
	}
}
