// Package forecasting expõe a calculadora de ROI de transmissão ao vivo.
package forecasting

import (
	"context"

	"github.com/pkg/errors"

	"github.com/vfg2006/sdr-metrics-api/internal/analytics"
	"github.com/vfg2006/sdr-metrics-api/internal/domain"
	"github.com/vfg2006/sdr-metrics-api/pkg/apiErrors"
	"github.com/vfg2006/sdr-metrics-api/pkg/log"
)

type Forecaster interface {
	Project(ctx context.Context, inputs domain.ROIInputs) (*domain.ProjectionResponse, error)
}

type Service struct{}

func NewService() *Service {
	return &Service{}
}

func (s *Service) Project(ctx context.Context, inputs domain.ROIInputs) (*domain.ProjectionResponse, error) {
	points, err := analytics.Project(inputs)
	if err != nil {
		code := apiErrors.ErrInvalidFormat
		base := analytics.ErrInvalidInput
		if errors.Is(err, analytics.ErrMissingInput) {
			code = apiErrors.ErrMissingRequiredData
			base = analytics.ErrMissingInput
		}

		log.ForContext(ctx).WithError(err).Warn("forecasting: entrada rejeitada")
		return nil, &ProjectionError{Err: base, Code: code, Details: err.Error()}
	}

	summary := analytics.SummarizeProjection(points)

	log.ForContext(ctx).WithFields(log.Fields{
		"roi_months":     len(points),
		"roi_first_year": summary.FirstYearROI,
	}).Debug("forecasting: projeção calculada")

	return &domain.ProjectionResponse{
		Points:  points,
		Summary: summary,
	}, nil
}
