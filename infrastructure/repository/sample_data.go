package repository

import (
	"time"

	"github.com/vfg2006/sdr-metrics-api/internal/domain"
)

// SampleActivities são os dados de exemplo servidos quando não há banco configurado
func SampleActivities() []domain.DailyActivity {
	day := func(d int) domain.Date {
		return domain.NewDate(time.Date(2024, time.January, d, 0, 0, 0, 0, time.UTC))
	}

	return []domain.DailyActivity{
		{Day: day(1), Dials: 120, Conversations: 15, Calls: 45, Emails: 30, LinkedIn: 25, Meetings: 3},
		{Day: day(2), Dials: 135, Conversations: 18, Calls: 50, Emails: 35, LinkedIn: 30, Meetings: 4},
		{Day: day(3), Dials: 110, Conversations: 14, Calls: 40, Emails: 28, LinkedIn: 22, Meetings: 3},
		{Day: day(4), Dials: 145, Conversations: 20, Calls: 55, Emails: 38, LinkedIn: 32, Meetings: 5},
		{Day: day(5), Dials: 125, Conversations: 16, Calls: 48, Emails: 33, LinkedIn: 27, Meetings: 4},
	}
}
