package handler

import (
	"errors"
	"net/http"

	jsoniter "github.com/json-iterator/go"

	"github.com/vfg2006/sdr-metrics-api/internal/usecases/forecasting"
	"github.com/vfg2006/sdr-metrics-api/internal/usecases/insighting"
	"github.com/vfg2006/sdr-metrics-api/internal/usecases/recording"
	"github.com/vfg2006/sdr-metrics-api/pkg/apiErrors"
	"github.com/vfg2006/sdr-metrics-api/pkg/log"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

const maxBodyBytes = 1 << 20

func writeJSON(w http.ResponseWriter, r *http.Request, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		log.ForContext(r.Context()).WithError(err).Error("handler: erro ao enviar resposta")
	}
}

// writeUsecaseError traduz os erros tipados dos casos de uso em respostas padronizadas
func writeUsecaseError(w http.ResponseWriter, err error) {
	var (
		activityErr   *recording.ActivityError
		insightErr    *insighting.InsightError
		projectionErr *forecasting.ProjectionError
	)

	switch {
	case errors.As(err, &activityErr):
		apiErrors.WriteError(w, activityErr.Code, activityErr.Err.Error(), dayDetails(activityErr.Day))
	case errors.As(err, &insightErr):
		apiErrors.WriteError(w, insightErr.Code, insightErr.Err.Error(), nil)
	case errors.As(err, &projectionErr):
		apiErrors.WriteError(w, projectionErr.Code, projectionErr.Error(), nil)
	default:
		apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro interno no servidor", nil)
	}
}

func dayDetails(day string) any {
	if day == "" {
		return nil
	}
	return map[string]string{"day": day}
}
