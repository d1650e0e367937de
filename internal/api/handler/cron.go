package handler

import (
	"context"
	"net/http"

	"github.com/julienschmidt/httprouter"
	"github.com/vfg2006/postwise-api/pkg/apiErrors"
	"github.com/vfg2006/postwise-api/pkg/log"
)

// CronJobTypeDatasetRetention identifica a limpeza de datasets antigos
const CronJobTypeDatasetRetention = "dataset-retention"

// CronJob é um job agendado que também pode ser disparado manualmente
type CronJob interface {
	TriggerManualSync(ctx context.Context) bool
	GetStatus() map[string]any
}

// CronJobServices contém os jobs disponíveis para execução manual
type CronJobServices struct {
	DatasetRetention CronJob
}

func (s CronJobServices) byType(cronType string) (CronJob, bool) {
	switch cronType {
	case CronJobTypeDatasetRetention:
		return s.DatasetRetention, s.DatasetRetention != nil
	default:
		return nil, false
	}
}

// RunCronJob executa manualmente o job informado na rota
func RunCronJob(services CronJobServices) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		cronType := httprouter.ParamsFromContext(r.Context()).ByName("type")

		job, ok := services.byType(cronType)
		if !ok {
			apiErrors.WriteError(w, apiErrors.ErrResourceNotFound, "Unknown cron job", nil)
			return
		}

		if !job.TriggerManualSync(r.Context()) {
			apiErrors.WriteError(w, apiErrors.ErrResourceConflict, "Cron job already running", nil)
			return
		}

		log.ForContext(r.Context()).WithField("type", cronType).Info("cron: execução manual iniciada")

		writeJSON(w, r, http.StatusAccepted, map[string]any{
			"message": "Cron job started",
			"type":    cronType,
		})
	}
}

// GetCronStatus retorna o status dos jobs agendados
func GetCronStatus(services CronJobServices) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		status := map[string]any{}
		if services.DatasetRetention != nil {
			status[CronJobTypeDatasetRetention] = services.DatasetRetention.GetStatus()
		}

		writeJSON(w, r, http.StatusOK, status)
	}
}
