package handler

import (
	"net/http"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/influencer-hub-api/internal/usecases/syncing"
	"github.com/vfg2006/influencer-hub-api/pkg/log"
)

type SyncAccountRequest struct {
	ProfileID string `json:"profile_id"`
}

// writeSyncFailure responde no formato esperado pelos jobs externos
func writeSyncFailure(w http.ResponseWriter, r *http.Request, err error) {
	log.ForContext(r.Context()).WithError(err).Warn("Sincronização do Instagram falhou")
	writeJSON(w, http.StatusBadRequest, map[string]any{
		"ok":    false,
		"error": err.Error(),
	})
}

// SyncInstagramAccount sincroniza a conta do Instagram de um usuário
func SyncInstagramAccount(service syncing.Syncer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - SyncInstagramAccount")

		var req SyncAccountRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeSyncFailure(w, r, syncing.ErrProfileIDRequired)
			return
		}

		result, err := service.SyncAccount(r.Context(), req.ProfileID)
		if err != nil {
			writeSyncFailure(w, r, err)
			return
		}

		writeJSON(w, http.StatusOK, result)
	}
}

// SyncInstagramPosts sincroniza as mídias mais vistas da conta business
func SyncInstagramPosts(service syncing.Syncer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - SyncInstagramPosts")

		result, err := service.SyncPosts(r.Context())
		if err != nil {
			writeSyncFailure(w, r, err)
			return
		}

		writeJSON(w, http.StatusOK, result)
	}
}
