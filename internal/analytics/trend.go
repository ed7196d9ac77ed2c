package analytics

import (
	"sort"

	"github.com/vfg2006/sdr-metrics-api/internal/domain"
	"github.com/vfg2006/sdr-metrics-api/pkg/utils"
)

const (
	DefaultTopDays    = 5
	DefaultRecentDays = 5
)

// Trend calcula a variação percentual de previous para current.
// previous = 0 e current = 0 resulta em 0; previous = 0 e current != 0 é marcado como unbounded.
func Trend(previous, current int) domain.TrendValue {
	if previous == 0 {
		if current == 0 {
			return domain.TrendValue{Percent: 0, Status: domain.TrendOK}
		}
		return domain.TrendValue{Percent: 0, Status: domain.TrendUnbounded}
	}

	percent := float64(current-previous) / float64(previous) * 100
	return domain.TrendValue{
		Percent: utils.RoundWithOneDecimalPlace(percent),
		Status:  domain.TrendOK,
	}
}

func noPrior() domain.TrendValue {
	return domain.TrendValue{Status: domain.TrendNoPrior}
}

// Trends emite um ponto por registro; o primeiro não tem anterior e sai como no_prior.
// Os registros devem estar em ordem crescente de dia.
func Trends(records []domain.DailyActivity) []domain.TrendPoint {
	points := make([]domain.TrendPoint, 0, len(records))
	for i, r := range records {
		point := domain.TrendPoint{
			Date:              r.Day,
			DialTrend:         noPrior(),
			ConversationTrend: noPrior(),
		}

		if i > 0 {
			prev := records[i-1]
			point.DialTrend = Trend(int(prev.Dials), int(r.Dials))
			point.ConversationTrend = Trend(int(prev.Conversations), int(r.Conversations))
		}

		points = append(points, point)
	}
	return points
}

// Breakdown monta a tabela diária com taxa de conversão e tendência de conversas
func Breakdown(records []domain.DailyActivity) []domain.BreakdownRow {
	rows := make([]domain.BreakdownRow, 0, len(records))
	for i, r := range records {
		trend := noPrior()
		if i > 0 {
			trend = Trend(int(records[i-1].Conversations), int(r.Conversations))
		}

		rows = append(rows, domain.BreakdownRow{
			Date:           r.Day,
			Dials:          int(r.Dials),
			Conversations:  int(r.Conversations),
			ConversionRate: utils.Percentage(float64(r.Conversations), float64(r.Dials)),
			Meetings:       int(r.Meetings),
			Trend:          trend,
		})
	}
	return rows
}

// PeakPerformance ordena por conversas (desc), empates por dia crescente, e devolve os n primeiros.
// n <= 0 devolve todos.
func PeakPerformance(records []domain.DailyActivity, n int) []domain.PeakDay {
	sorted := SortByDay(records)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Conversations > sorted[j].Conversations
	})

	if n > 0 && len(sorted) > n {
		sorted = sorted[:n]
	}

	peaks := make([]domain.PeakDay, 0, len(sorted))
	for _, r := range sorted {
		peaks = append(peaks, domain.PeakDay{Day: r.Day, Conversations: int(r.Conversations)})
	}
	return peaks
}

// Recent devolve os últimos n registros
func Recent(records []domain.DailyActivity, n int) []domain.DailyActivity {
	if n <= 0 || len(records) <= n {
		return cloneRecords(records)
	}
	return cloneRecords(records[len(records)-n:])
}
