package handler

import (
	"net/http"
	"sort"
	"strings"

	"github.com/julienschmidt/httprouter"
	"github.com/vfg2006/sdr-metrics-api/pkg/apiErrors"
	"github.com/vfg2006/sdr-metrics-api/pkg/log"
)

// CronJobType define o tipo de cron job que será executada
const (
	CronJobTypeDigest = "digest"
	CronJobTypeAll    = "all"
)

// CronJob é um serviço agendado que pode ser disparado manualmente
type CronJob interface {
	TriggerManualSync()
	GetStatus() map[string]any
}

// CronJobServices mapeia o tipo de cron job ao serviço
type CronJobServices map[string]CronJob

func (s CronJobServices) types() []string {
	types := make([]string, 0, len(s))
	for t := range s {
		types = append(types, t)
	}
	sort.Strings(types)
	return types
}

// RunCronJob executa manualmente uma cron job específica
func RunCronJob(services CronJobServices) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		cronType := httprouter.ParamsFromContext(r.Context()).ByName("type")
		if cronType == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "Tipo de cron job não especificado", nil)
			return
		}

		if cronType == CronJobTypeAll {
			for _, t := range services.types() {
				services[t].TriggerManualSync()
			}
		} else {
			job, ok := services[cronType]
			if !ok || job == nil {
				apiErrors.WriteError(w, apiErrors.ErrJobNotFound,
					"Tipo de cron job inválido. Valores aceitos: "+strings.Join(append(services.types(), CronJobTypeAll), ", "), nil)
				return
			}
			job.TriggerManualSync()
		}

		logger.WithField("job_type", cronType).Info("cron: execução manual solicitada")

		writeJSON(w, r, http.StatusAccepted, map[string]any{
			"message": "Cron job iniciada com sucesso",
			"type":    cronType,
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

		writeJSON(w, r, http.StatusOK, status)
	}
}
