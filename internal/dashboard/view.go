package dashboard

import (
	"time"

	"github.com/vfg2006/sdr-metrics-api/internal/analytics"
	"github.com/vfg2006/sdr-metrics-api/internal/domain"
)

// Derive recalcula localmente os blocos do painel a partir dos registros em memória
func Derive(state State, reference time.Time) domain.DashboardReport {
	filters := state.Filters
	filters.Reference = reference

	records := analytics.ApplyFilters(state.Records, filters)

	return domain.DashboardReport{
		Filters:      filters,
		Summary:      analytics.Summarize(records),
		Distribution: analytics.FilterDistribution(analytics.Distribution(records), filters.Activity),
		Trends:       analytics.Trends(records),
		Breakdown:    analytics.Breakdown(records),
		TopDays:      analytics.PeakPerformance(records, analytics.DefaultTopDays),
		Recent:       analytics.Recent(records, analytics.DefaultRecentDays),
	}
}
