package ranking

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/sdr-metrics-api/infrastructure/repository"
	"github.com/vfg2006/sdr-metrics-api/internal/domain"
	"github.com/vfg2006/sdr-metrics-api/internal/usecases/insighting"
)

func TestPeakDayRankingService_GetTopDays(t *testing.T) {
	insighter := insighting.NewService(
		repository.NewMemoryActivityRepository(repository.SampleActivities()),
		repository.NewMemoryDigestRepository(),
	)
	service := NewPeakDayRankingService(insighter)
	filters := domain.ReportFilters{Reference: time.Date(2024, time.January, 6, 0, 0, 0, 0, time.UTC)}

	tests := []struct {
		name     string
		limit    int
		expected []int
	}{
		{"top 3", 3, []int{20, 18, 16}},
		{"limite zero usa o padrão", 0, []int{20, 18, 16, 15, 14}},
		{"limite acima do máximo usa o padrão", 100, []int{20, 18, 16, 15, 14}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			days, err := service.GetTopDays(context.Background(), filters, tt.limit)
			require.NoError(t, err)

			conversations := make([]int, 0, len(days))
			for _, d := range days {
				conversations = append(conversations, d.Conversations)
			}
			assert.Equal(t, tt.expected, conversations)
		})
	}
}
