package handler

import (
	"net/http"
	"sort"

	"github.com/julienschmidt/httprouter"

	"github.com/yuuki-courage/aads/pkg/apiErrors"
	"github.com/yuuki-courage/aads/pkg/log"
)

// Tipos de cron job executáveis manualmente
const (
	CronJobTypeBulkGeneration = "bulk-generation"
	CronJobTypeAll            = "all"
)

// CronJob é um job agendado que também pode ser disparado manualmente
type CronJob interface {
	TriggerManualSync() bool
	GetStatus() map[string]any
}

// CronJobServices contém os jobs disponíveis por tipo
type CronJobServices map[string]CronJob

// RunCronJob executa manualmente uma cron job específica
func RunCronJob(services CronJobServices) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		cronType := httprouter.ParamsFromContext(r.Context()).ByName("type")
		if cronType == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "Tipo de cron job não especificado", nil)
			return
		}

		var started []string
		switch cronType {
		case CronJobTypeAll:
			for name, job := range services {
				if job != nil && job.TriggerManualSync() {
					started = append(started, name)
				}
			}
			sort.Strings(started)
		default:
			job, ok := services[cronType]
			if !ok || job == nil {
				apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Tipo de cron job inválido", map[string]any{"type": cronType})
				return
			}
			if !job.TriggerManualSync() {
				writeJSON(w, http.StatusConflict, map[string]any{
					"message": "Cron job já em andamento",
					"type":    cronType,
				})
				return
			}
			started = append(started, cronType)
		}

		log.ForContext(r.Context()).WithField("count_jobs", len(started)).Info("Cron jobs disparadas manualmente")
		writeJSON(w, http.StatusAccepted, map[string]any{
			"message": "Cron job iniciada com sucesso",
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
			if job != nil {
				status[name] = job.GetStatus()
			}
		}
		writeJSON(w, http.StatusOK, status)
	}
}
