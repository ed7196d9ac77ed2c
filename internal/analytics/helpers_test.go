package analytics

import (
	"time"

	"github.com/vfg2006/sdr-metrics-api/internal/domain"
)

func day(s string) domain.Date {
	d, err := domain.ParseDate(s)
	if err != nil {
		panic(err)
	}
	return d
}

func datePtr(s string) *time.Time {
	t := day(s).Time
	return &t
}

func sampleRecords() []domain.DailyActivity {
	return []domain.DailyActivity{
		{Day: day("2024-01-01"), Dials: 120, Conversations: 15, Calls: 45, Emails: 30, LinkedIn: 25, Meetings: 3},
		{Day: day("2024-01-02"), Dials: 135, Conversations: 18, Calls: 50, Emails: 35, LinkedIn: 30, Meetings: 4},
		{Day: day("2024-01-03"), Dials: 110, Conversations: 14, Calls: 40, Emails: 28, LinkedIn: 22, Meetings: 3},
		{Day: day("2024-01-04"), Dials: 145, Conversations: 20, Calls: 55, Emails: 38, LinkedIn: 32, Meetings: 5},
		{Day: day("2024-01-05"), Dials: 125, Conversations: 16, Calls: 48, Emails: 33, LinkedIn: 27, Meetings: 4},
	}
}
