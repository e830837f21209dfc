package handler

import (
	"context"
	"net/http"

	"github.com/julienschmidt/httprouter"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/influencer-hub-api/pkg/apiErrors"
)

// CronJobType define o tipo de cron job que será executada
const (
	CronJobTypeInstagram = "instagram"
	CronJobTypeAll       = "all"
)

// ManualSyncer é implementado pelos agendadores que aceitam execução manual
type ManualSyncer interface {
	TriggerManualSync(ctx context.Context) bool
	GetStatus() map[string]any
}

// CronJobServices contém os serviços de cron necessários para executar manualmente
type CronJobServices struct {
	InstagramSyncService ManualSyncer
}

// RunCronJob executa manualmente uma cron job específica
func RunCronJob(services CronJobServices) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - RunCronJob")

		cronType := httprouter.ParamsFromContext(r.Context()).ByName("type")
		if cronType == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "Tipo de cron job não especificado", nil)
			return
		}

		// A execução continua depois que a requisição termina
		ctx := context.WithoutCancel(r.Context())

		var started bool
		switch cronType {
		case CronJobTypeInstagram, CronJobTypeAll:
			if services.InstagramSyncService == nil {
				apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Serviço de sincronização do Instagram não disponível", nil)
				return
			}
			started = services.InstagramSyncService.TriggerManualSync(ctx)
		default:
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Tipo de cron job inválido. Valores aceitos: instagram, all", nil)
			return
		}

		message := "Cron job iniciada com sucesso"
		if !started {
			message = "Cron job já está em execução"
		}

		writeJSON(w, http.StatusOK, map[string]any{
			"message": message,
			"type":    cronType,
			"started": started,
		})
	}
}

// GetCronStatus retorna o status das cron jobs
func GetCronStatus(services CronJobServices) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - GetCronStatus")

		status := map[string]any{}
		if services.InstagramSyncService != nil {
			status[CronJobTypeInstagram] = services.InstagramSyncService.GetStatus()
		}

		writeJSON(w, http.StatusOK, status)
	}
}
