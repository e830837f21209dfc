package handler

import (
	"net/http"
	"strings"

	jsoniter "github.com/json-iterator/go"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/influencer-hub-api/internal/domain"
	"github.com/vfg2006/influencer-hub-api/internal/usecases/authenticating"
	"github.com/vfg2006/influencer-hub-api/internal/usecases/campaigning"
	"github.com/vfg2006/influencer-hub-api/internal/usecases/searching"
	"github.com/vfg2006/influencer-hub-api/internal/usecases/syncing"
	"github.com/vfg2006/influencer-hub-api/pkg/apiErrors"
	"github.com/vfg2006/influencer-hub-api/pkg/log"
	"github.com/vfg2006/influencer-hub-api/pkg/middleware"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		logrus.WithError(err).Error("Erro ao enviar resposta")
	}
}

// currentUser devolve as claims do usuário autenticado ou responde 401
func currentUser(w http.ResponseWriter, r *http.Request) (*domain.Claims, bool) {
	claims, ok := middleware.ClaimsFromContext(r.Context())
	if !ok {
		apiErrors.WriteError(w, apiErrors.ErrInvalidToken, "Usuário não autenticado", nil)
		return nil, false
	}
	return claims, true
}

// errorMessage evita expor detalhes de banco ou de serviços externos ao cliente
func errorMessage(base error, code, details string) string {
	if strings.HasPrefix(code, "SRV_") || details == "" {
		return base.Error()
	}
	return details
}

// writeUseCaseError traduz os erros tipados dos casos de uso para a resposta padronizada
func writeUseCaseError(w http.ResponseWriter, r *http.Request, err error, fallback string) {
	var (
		authErr     *authenticating.AuthError
		campaignErr *campaigning.CampaignError
		searchErr   *searching.SearchError
		syncErr     *syncing.SyncError
	)

	switch {
	case errors.As(err, &authErr):
		apiErrors.WriteError(w, authErr.Code, errorMessage(authErr.Err, authErr.Code, authErr.Details), nil)
	case errors.As(err, &campaignErr):
		var details any
		if campaignErr.CampaignID != "" {
			details = map[string]any{"campaign_id": campaignErr.CampaignID}
		}
		apiErrors.WriteError(w, campaignErr.Code, errorMessage(campaignErr.Err, campaignErr.Code, campaignErr.Details), details)
	case errors.As(err, &searchErr):
		apiErrors.WriteError(w, searchErr.Code, errorMessage(searchErr.Err, searchErr.Code, searchErr.Details), nil)
	case errors.As(err, &syncErr):
		apiErrors.WriteError(w, syncErr.Code, errorMessage(syncErr.Err, syncErr.Code, syncErr.Details), nil)
	default:
		log.ForContext(r.Context()).WithError(err).Error(fallback)
		apiErrors.WriteError(w, apiErrors.ErrInternalServer, fallback, nil)
	}
}
