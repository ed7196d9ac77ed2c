package handler

import (
	"net/http"

	"github.com/vfg2006/sdr-metrics-api/internal/domain"
	"github.com/vfg2006/sdr-metrics-api/internal/usecases/forecasting"
	"github.com/vfg2006/sdr-metrics-api/pkg/apiErrors"
	"github.com/vfg2006/sdr-metrics-api/pkg/log"
)

// ProjectROI calcula a projeção de 12 meses da transmissão ao vivo
func ProjectROI(service forecasting.Forecaster) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		var inputs domain.ROIInputs
		r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
		if err := json.NewDecoder(r.Body).Decode(&inputs); err != nil {
			log.ForContext(ctx).WithError(err).Warn("roi: corpo inválido")
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Os campos devem ser numéricos", err.Error())
			return
		}

		response, err := service.Project(ctx, inputs)
		if err != nil {
			writeUsecaseError(w, err)
			return
		}

		writeJSON(w, r, http.StatusOK, response)
	}
}
