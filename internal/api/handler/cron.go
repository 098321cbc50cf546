package handler

import (
	"net/http"

	"github.com/julienschmidt/httprouter"
	"github.com/spotfinder/parking-analytics-api/internal/scheduler"
	"github.com/spotfinder/parking-analytics-api/pkg/apiErrors"
	"github.com/spotfinder/parking-analytics-api/pkg/log"
)

// CronJob é um serviço agendado que também pode ser disparado manualmente
type CronJob interface {
	TriggerManualSync() bool
	GetStatus() map[string]any
}

// CronJobServices indexa os serviços agendados pelo tipo usado na URL
type CronJobServices map[string]CronJob

func NewCronJobServices(snapshotSync *scheduler.SnapshotSyncService) CronJobServices {
	services := CronJobServices{}
	if snapshotSync != nil {
		services[scheduler.SnapshotJobType] = snapshotSync
	}
	return services
}

// RunCronJob executa manualmente uma cron job específica
func RunCronJob(services CronJobServices) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		cronType := httprouter.ParamsFromContext(r.Context()).ByName("type")
		if cronType == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "Tipo de cron job não especificado", nil)
			return
		}

		job, ok := services[cronType]
		if !ok {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Tipo de cron job inválido. Valores aceitos: "+scheduler.SnapshotJobType, nil)
			return
		}

		started := job.TriggerManualSync()
		log.ForContext(r.Context()).WithFields(log.Fields{"type": cronType, "started": started}).Info("Cron job solicitada manualmente")

		message := "Cron job iniciada com sucesso"
		if !started {
			message = "Cron job já em andamento"
		}

		writeJSON(w, r, http.StatusAccepted, map[string]any{
			"message": message,
			"type":    cronType,
			"started": started,
		})
	}
}

// GetCronStatus retorna o status das cron jobs
func GetCronStatus(services CronJobServices) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		status := make(map[string]any, len(services))
		for name, job := range services {
			status[name] = job.GetStatus()
		}

		writeJSON(w, r, http.StatusOK, status)
	}
}
