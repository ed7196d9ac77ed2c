package ranking

import (
	"context"

	"github.com/vfg2006/sdr-metrics-api/internal/analytics"
	"github.com/vfg2006/sdr-metrics-api/internal/domain"
	"github.com/vfg2006/sdr-metrics-api/internal/usecases/insighting"
)

// MaxLimit limita o tamanho do ranking pedido pela API
const MaxLimit = 31

type RankingService interface {
	GetTopDays(ctx context.Context, filters domain.ReportFilters, limit int) ([]domain.PeakDay, error)
}

type PeakDayRankingService struct {
	insighter insighting.Insighter
}

func NewPeakDayRankingService(insighter insighting.Insighter) RankingService {
	return &PeakDayRankingService{
		insighter: insighter,
	}
}

// GetTopDays ordena os dias filtrados por conversas; limit fora de 1..MaxLimit usa o padrão
func (s *PeakDayRankingService) GetTopDays(ctx context.Context, filters domain.ReportFilters, limit int) ([]domain.PeakDay, error) {
	if limit <= 0 || limit > MaxLimit {
		limit = analytics.DefaultTopDays
	}

	records, err := s.insighter.GetDailyStats(ctx, filters)
	if err != nil {
		return nil, err
	}

	return analytics.PeakPerformance(records, limit), nil
}
