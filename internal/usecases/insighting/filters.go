package insighting

import (
	"strings"
	"time"

	"github.com/vfg2006/sdr-metrics-api/internal/domain"
	"github.com/vfg2006/sdr-metrics-api/pkg/apiErrors"
	"github.com/vfg2006/sdr-metrics-api/pkg/utils"
)

// FilterParams são os parâmetros crus da query string
type FilterParams struct {
	Timeframe string
	StartDate string
	EndDate   string
	Activity  string
}

// ParseFilters valida os parâmetros; vazios assumem "all"
func ParseFilters(params FilterParams, reference time.Time) (domain.ReportFilters, error) {
	filters := domain.ReportFilters{
		Timeframe: domain.TimeframeAll,
		Activity:  domain.ActivityFilterAll,
		Reference: reference,
	}

	if tf := strings.ToLower(strings.TrimSpace(params.Timeframe)); tf != "" {
		filters.Timeframe = domain.Timeframe(tf)
		if !filters.Timeframe.Valid() {
			return filters, NewInsightError(ErrInvalidTimeframe, apiErrors.ErrInvalidFilter, params.Timeframe)
		}
	}

	if act := strings.ToLower(strings.TrimSpace(params.Activity)); act != "" {
		filters.Activity = domain.ActivityFilter(act)
		if !filters.Activity.Valid() {
			return filters, NewInsightError(ErrInvalidActivity, apiErrors.ErrInvalidFilter, params.Activity)
		}
	}

	startDate, err := utils.ParseDate(strings.TrimSpace(params.StartDate))
	if err != nil {
		return filters, NewInsightError(ErrInvalidDate, apiErrors.ErrInvalidFormat, "start_date deve estar no formato YYYY-MM-DD")
	}
	endDate, err := utils.ParseDate(strings.TrimSpace(params.EndDate))
	if err != nil {
		return filters, NewInsightError(ErrInvalidDate, apiErrors.ErrInvalidFormat, "end_date deve estar no formato YYYY-MM-DD")
	}

	filters.StartDate = startDate
	filters.EndDate = endDate

	return filters, nil
}
