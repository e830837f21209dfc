package handler

import (
	"net/http"

	"github.com/julienschmidt/httprouter"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/influencer-hub-api/internal/domain"
	"github.com/vfg2006/influencer-hub-api/internal/usecases/campaigning"
	"github.com/vfg2006/influencer-hub-api/pkg/apiErrors"
)

type AttachInfluencerRequest struct {
	AccountID string `json:"account_id"`
}

func CreateCampaign(service campaigning.Campaigner) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - CreateCampaign")

		claims, ok := currentUser(w, r)
		if !ok {
			return
		}

		var req domain.CreateCampaignRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Formato de requisição inválido", nil)
			return
		}

		campaign, err := service.Create(r.Context(), claims.UserID, req)
		if err != nil {
			writeUseCaseError(w, r, err, "Erro ao criar campanha")
			return
		}

		writeJSON(w, http.StatusOK, map[string]any{"campaign": campaign})
	}
}

// ListCampaigns lista as campanhas do usuário, mais recentes primeiro.
// Aceita o filtro opcional ?status=
func ListCampaigns(service campaigning.Campaigner) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - ListCampaigns")

		claims, ok := currentUser(w, r)
		if !ok {
			return
		}

		campaigns, err := service.List(r.Context(), claims.UserID, r.URL.Query().Get("status"))
		if err != nil {
			writeUseCaseError(w, r, err, "Erro ao listar campanhas")
			return
		}

		if campaigns == nil {
			campaigns = []*domain.Campaign{}
		}

		writeJSON(w, http.StatusOK, map[string]any{"campaigns": campaigns})
	}
}

func GetCampaign(service campaigning.Campaigner) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := currentUser(w, r)
		if !ok {
			return
		}

		campaignID := httprouter.ParamsFromContext(r.Context()).ByName("id")

		campaign, err := service.Get(r.Context(), claims.UserID, campaignID)
		if err != nil {
			writeUseCaseError(w, r, err, "Erro ao carregar campanha")
			return
		}

		writeJSON(w, http.StatusOK, map[string]any{"campaign": campaign})
	}
}

func UpdateCampaign(service campaigning.Campaigner) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - UpdateCampaign")

		claims, ok := currentUser(w, r)
		if !ok {
			return
		}

		var req domain.UpdateCampaignRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Formato de requisição inválido", nil)
			return
		}
		req.ID = httprouter.ParamsFromContext(r.Context()).ByName("id")

		campaign, err := service.Update(r.Context(), claims.UserID, req)
		if err != nil {
			writeUseCaseError(w, r, err, "Erro ao atualizar campanha")
			return
		}

		writeJSON(w, http.StatusOK, map[string]any{"campaign": campaign})
	}
}

func ListCampaignInfluencers(service campaigning.Campaigner) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := currentUser(w, r)
		if !ok {
			return
		}

		campaignID := httprouter.ParamsFromContext(r.Context()).ByName("id")

		influencers, err := service.ListInfluencers(r.Context(), claims.UserID, campaignID)
		if err != nil {
			writeUseCaseError(w, r, err, "Erro ao listar influenciadores da campanha")
			return
		}

		if influencers == nil {
			influencers = []domain.CampaignInfluencer{}
		}

		writeJSON(w, http.StatusOK, map[string]any{"influencers": influencers})
	}
}

// AttachInfluencer vincula um influenciador à campanha. Repetir o vínculo não duplica.
func AttachInfluencer(service campaigning.Campaigner) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - AttachInfluencer")

		claims, ok := currentUser(w, r)
		if !ok {
			return
		}

		var req AttachInfluencerRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Formato de requisição inválido", nil)
			return
		}

		campaignID := httprouter.ParamsFromContext(r.Context()).ByName("id")

		campaign, err := service.AttachInfluencer(r.Context(), claims.UserID, campaignID, req.AccountID)
		if err != nil {
			writeUseCaseError(w, r, err, "Erro ao vincular influenciador")
			return
		}

		writeJSON(w, http.StatusOK, map[string]any{"campaign": campaign})
	}
}
