package handler

import (
	"net/http"

	"github.com/vfg2006/sdr-metrics-api/internal/domain"
	"github.com/vfg2006/sdr-metrics-api/internal/usecases/recording"
	"github.com/vfg2006/sdr-metrics-api/pkg/apiErrors"
	"github.com/vfg2006/sdr-metrics-api/pkg/log"
	"github.com/vfg2006/sdr-metrics-api/pkg/utils"
)

// ActivityCreatedResponse é a resposta de um registro aceito
type ActivityCreatedResponse struct {
	Message  string                `json:"message"`
	Activity *domain.DailyActivity `json:"activity"`
}

// CreateActivity registra um novo dia de atividade
func CreateActivity(service recording.Recorder) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		logger := log.ForContext(ctx)

		var activity domain.DailyActivity
		r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
		if err := json.NewDecoder(r.Body).Decode(&activity); err != nil {
			logger.WithError(err).Warn("activities: corpo inválido")
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, recording.ErrInvalidPayload.Error(), err.Error())
			return
		}

		if log.IsDebugEnabled() {
			logger.Debugf("activities: dados recebidos %s", utils.PrettyJson(activity))
		}

		stored, err := service.Record(ctx, activity)
		if err != nil {
			writeUsecaseError(w, err)
			return
		}

		writeJSON(w, r, http.StatusCreated, ActivityCreatedResponse{
			Message:  "Data received successfully",
			Activity: stored,
		})
	}
}
