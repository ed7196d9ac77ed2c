package analytics

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/vfg2006/sdr-metrics-api/internal/domain"
)

func TestSummarize(t *testing.T) {
	tests := []struct {
		name     string
		records  []domain.DailyActivity
		validate func(t *testing.T, s domain.MetricsSummary)
	}{
		{
			name:    "sequência vazia",
			records: nil,
			validate: func(t *testing.T, s domain.MetricsSummary) {
				assert.Equal(t, 0.0, s.DialToConversion)
				assert.Equal(t, 0.0, s.MeetingRate)
				assert.Equal(t, 0.0, s.AverageDials)
				assert.Equal(t, 0.0, s.AverageConversations)
				assert.Equal(t, 0, s.PipelineValue)
				assert.Equal(t, 0, s.Days)
			},
		},
		{
			name:    "dados de exemplo",
			records: sampleRecords(),
			validate: func(t *testing.T, s domain.MetricsSummary) {
				assert.Equal(t, 635, s.TotalDials)
				assert.Equal(t, 83, s.TotalConversations)
				assert.Equal(t, 13.1, s.DialToConversion)
				assert.Equal(t, 22.9, s.MeetingRate) // 19/83
				assert.Equal(t, 83, s.TotalLeads)
				assert.Equal(t, 19*5000, s.PipelineValue)
				assert.Equal(t, 127.0, s.AverageDials)
				assert.Equal(t, 16.6, s.AverageConversations)
				assert.Equal(t, 5, s.Days)
			},
		},
		{
			name: "sem discagens não divide por zero",
			records: []domain.DailyActivity{
				{Day: day("2024-01-01"), Dials: 0, Conversations: 7, Meetings: 2},
			},
			validate: func(t *testing.T, s domain.MetricsSummary) {
				assert.Equal(t, 0.0, s.DialToConversion)
				assert.Equal(t, 28.6, s.MeetingRate)
			},
		},
		{
			name: "sem conversas zera a taxa de reuniões",
			records: []domain.DailyActivity{
				{Day: day("2024-01-01"), Dials: 40, Conversations: 0, Meetings: 1},
			},
			validate: func(t *testing.T, s domain.MetricsSummary) {
				assert.Equal(t, 0.0, s.MeetingRate)
				assert.Equal(t, 5000, s.PipelineValue)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.validate(t, Summarize(tt.records))
		})
	}
}

func TestSummarize_OrderIndependent(t *testing.T) {
	records := sampleRecords()
	reversed := make([]domain.DailyActivity, len(records))
	for i, r := range records {
		reversed[len(records)-1-i] = r
	}

	assert.Equal(t, Summarize(records), Summarize(reversed))
}

func TestDistribution(t *testing.T) {
	dist := Distribution(sampleRecords())

	names := make([]string, 0, len(dist))
	for _, e := range dist {
		names = append(names, e.Name)
	}
	assert.Equal(t, []string{"Calls", "Emails", "LinkedIn", "Meetings"}, names)

	calls, _ := dist.Get(domain.ChannelCalls)
	emails, _ := dist.Get(domain.ChannelEmails)
	linkedIn, _ := dist.Get(domain.ChannelLinkedIn)
	meetings, _ := dist.Get(domain.ChannelMeetings)
	assert.Equal(t, 238, calls)
	assert.Equal(t, 164, emails)
	assert.Equal(t, 136, linkedIn)
	assert.Equal(t, 19, meetings)
}

func TestDistribution_Empty(t *testing.T) {
	dist := Distribution(nil)
	assert.Len(t, dist, 4)
	for _, e := range dist {
		assert.Equal(t, 0, e.Value)
	}
}

func TestFilterDistribution(t *testing.T) {
	dist := Distribution(sampleRecords())

	assert.Equal(t, dist, FilterDistribution(dist, domain.ActivityFilterAll))
	assert.Equal(t, domain.ActivityDistribution{{Name: "Calls", Value: 238}}, FilterDistribution(dist, domain.ActivityFilterCalls))
	assert.Equal(t, domain.ActivityDistribution{{Name: "Meetings", Value: 19}}, FilterDistribution(dist, domain.ActivityFilterMeetings))
}
