package analytics

import (
	"sort"
	"time"

	"github.com/vfg2006/sdr-metrics-api/internal/domain"
	"github.com/vfg2006/sdr-metrics-api/pkg/utils"
)

// WindowCutoff retorna a data inicial (inclusiva) da janela relativa a reference.
// Para "all" ou janelas desconhecidas o segundo retorno é false.
func WindowCutoff(window domain.Timeframe, reference time.Time) (time.Time, bool) {
	day := utils.StartOfDay(reference)

	switch window {
	case domain.TimeframeWeek:
		return day.AddDate(0, 0, -7), true
	case domain.TimeframeMonth:
		return day.AddDate(0, -1, 0), true
	case domain.TimeframeQuarter:
		return day.AddDate(0, -3, 0), true
	}

	return time.Time{}, false
}

// FilterByWindow mantém os registros com day >= corte da janela. Sem limite superior.
func FilterByWindow(records []domain.DailyActivity, window domain.Timeframe, reference time.Time) []domain.DailyActivity {
	cutoff, ok := WindowCutoff(window, reference)
	if !ok {
		return cloneRecords(records)
	}

	out := make([]domain.DailyActivity, 0, len(records))
	for _, r := range records {
		if !r.Day.Before(cutoff) {
			out = append(out, r)
		}
	}
	return out
}

// FilterByRange mantém start <= day <= end. Limites nil são ignorados.
func FilterByRange(records []domain.DailyActivity, start, end *time.Time) []domain.DailyActivity {
	if start == nil && end == nil {
		return cloneRecords(records)
	}

	out := make([]domain.DailyActivity, 0, len(records))
	for _, r := range records {
		if start != nil && r.Day.Before(utils.StartOfDay(*start)) {
			continue
		}
		if end != nil && r.Day.After(utils.StartOfDay(*end)) {
			continue
		}
		out = append(out, r)
	}
	return out
}

// ApplyFilters aplica a janela e depois o intervalo de datas
func ApplyFilters(records []domain.DailyActivity, filters domain.ReportFilters) []domain.DailyActivity {
	windowed := FilterByWindow(records, filters.Timeframe, filters.Reference)
	return FilterByRange(windowed, filters.StartDate, filters.EndDate)
}

// SortByDay devolve uma cópia ordenada por dia crescente
func SortByDay(records []domain.DailyActivity) []domain.DailyActivity {
	out := cloneRecords(records)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Day.Before(out[j].Day.Time)
	})
	return out
}

func cloneRecords(records []domain.DailyActivity) []domain.DailyActivity {
	out := make([]domain.DailyActivity, len(records))
	copy(out, records)
	return out
}
