package handler

import (
	"net/http"
	"sort"

	"github.com/julienschmidt/httprouter"
	"github.com/vfg2006/cloud-spend-api/internal/scheduler"
	"github.com/vfg2006/cloud-spend-api/pkg/apiErrors"
	"github.com/vfg2006/cloud-spend-api/pkg/log"
)

const CronJobTypeBudgetRollover = "budget-rollover"

// CronJobServices indexa os jobs disponíveis pelo tipo usado na rota
type CronJobServices map[string]scheduler.Job

func (s CronJobServices) types() []string {
	types := make([]string, 0, len(s))
	for t := range s {
		types = append(types, t)
	}
	sort.Strings(types)
	return types
}

// RunCronJob executa manualmente o job informado em :type
func RunCronJob(services CronJobServices) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		cronType := httprouter.ParamsFromContext(r.Context()).ByName("type")

		job, ok := services[cronType]
		if !ok {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Tipo de cron job inválido", map[string]any{
				"accepted": services.types(),
			})
			return
		}

		if !job.TriggerManualSync() {
			writeJSON(w, r, http.StatusConflict, map[string]any{
				"message": "Cron job já em andamento",
				"type":    cronType,
			})
			return
		}

		log.ForContext(r.Context()).WithField("type", cronType).Info("cron: execução manual iniciada")
		writeJSON(w, r, http.StatusAccepted, map[string]any{
			"message": "Cron job iniciada com sucesso",
			"type":    cronType,
		})
	}
}

// GetCronStatus retorna o status de todos os jobs
func GetCronStatus(services CronJobServices) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		status := make(map[string]any, len(services))
		for cronType, job := range services {
			status[cronType] = job.GetStatus()
		}
		writeJSON(w, r, http.StatusOK, status)
	}
}
