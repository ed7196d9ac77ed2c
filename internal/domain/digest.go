package domain

import "time"

// Digest é o resumo periódico gerado pelo agendador
type Digest struct {
	GeneratedAt time.Time                    `json:"generated_at"`
	Reference   Date                         `json:"reference"`
	Windows     map[Timeframe]MetricsSummary `json:"windows"`
	TopDays     []PeakDay                    `json:"topDays"`
}
