package insighting

import (
	"context"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/vfg2006/sdr-metrics-api/infrastructure/repository"
	"github.com/vfg2006/sdr-metrics-api/internal/analytics"
	"github.com/vfg2006/sdr-metrics-api/internal/domain"
	"github.com/vfg2006/sdr-metrics-api/pkg/apiErrors"
	"github.com/vfg2006/sdr-metrics-api/pkg/log"
)

// DigestWindows são as janelas calculadas em cada resumo
var DigestWindows = []domain.Timeframe{
	domain.TimeframeWeek,
	domain.TimeframeMonth,
	domain.TimeframeQuarter,
}

// Insighter expõe as leituras do painel de métricas
type Insighter interface {
	// GetDailyStats retorna os registros filtrados, ordenados por dia
	GetDailyStats(ctx context.Context, filters domain.ReportFilters) ([]domain.DailyActivity, error)

	// GetDashboardReport monta todos os blocos derivados do painel
	GetDashboardReport(ctx context.Context, filters domain.ReportFilters) (*domain.DashboardReport, error)

	// BuildDigest calcula o resumo por janela para a data de referência
	BuildDigest(ctx context.Context, reference time.Time) (*domain.Digest, error)

	// GetLatestDigest retorna o último resumo salvo
	GetLatestDigest(ctx context.Context) (*domain.Digest, error)
}

type Service struct {
	activityRepository repository.ActivityRepository
	digestRepository   repository.DigestRepository
	now                func() time.Time
}

func NewService(
	activityRepository repository.ActivityRepository,
	digestRepository repository.DigestRepository,
) *Service {
	return &Service{
		activityRepository: activityRepository,
		digestRepository:   digestRepository,
		now:                time.Now,
	}
}

func (s *Service) GetDailyStats(ctx context.Context, filters domain.ReportFilters) ([]domain.DailyActivity, error) {
	if filters.Reference.IsZero() {
		filters.Reference = s.now()
	}

	records, err := s.activityRepository.List(ctx, domain.ActivityQuery{
		StartDate: filters.StartDate,
		EndDate:   filters.EndDate,
	})
	if err != nil {
		log.ForContext(ctx).WithError(err).Error("insighting: falha ao listar atividades")
		return nil, NewInsightError(ErrFetchActivities, apiErrors.ErrDatabaseOperation, err.Error())
	}

	return analytics.SortByDay(analytics.ApplyFilters(records, filters)), nil
}

func (s *Service) GetDashboardReport(ctx context.Context, filters domain.ReportFilters) (*domain.DashboardReport, error) {
	if filters.Reference.IsZero() {
		filters.Reference = s.now()
	}
	if filters.Activity == "" {
		filters.Activity = domain.ActivityFilterAll
	}
	if filters.Timeframe == "" {
		filters.Timeframe = domain.TimeframeAll
	}

	records, err := s.GetDailyStats(ctx, filters)
	if err != nil {
		return nil, err
	}

	log.ForContext(ctx).WithFields(log.Fields{
		"timeframe": filters.Timeframe,
		"activity":  filters.Activity,
		"records":   len(records),
	}).Debug("insighting: montando relatório")

	return &domain.DashboardReport{
		Filters:      filters,
		Summary:      analytics.Summarize(records),
		Distribution: analytics.FilterDistribution(analytics.Distribution(records), filters.Activity),
		Trends:       analytics.Trends(records),
		Breakdown:    analytics.Breakdown(records),
		TopDays:      analytics.PeakPerformance(records, analytics.DefaultTopDays),
		Recent:       analytics.Recent(records, analytics.DefaultRecentDays),
	}, nil
}

// BuildDigest busca cada janela em paralelo e resume o resultado
func (s *Service) BuildDigest(ctx context.Context, reference time.Time) (*domain.Digest, error) {
	if reference.IsZero() {
		reference = s.now()
	}

	summaries := make([]domain.MetricsSummary, len(DigestWindows))
	var quarter []domain.DailyActivity

	g, gctx := errgroup.WithContext(ctx)
	for i, window := range DigestWindows {
		i, window := i, window
		g.Go(func() error {
			records, err := s.GetDailyStats(gctx, domain.ReportFilters{Timeframe: window, Reference: reference})
			if err != nil {
				return err
			}
			summaries[i] = analytics.Summarize(records)
			if window == domain.TimeframeQuarter {
				quarter = records
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	windows := make(map[domain.Timeframe]domain.MetricsSummary, len(DigestWindows))
	for i, window := range DigestWindows {
		windows[window] = summaries[i]
	}

	return &domain.Digest{
		GeneratedAt: s.now(),
		Reference:   domain.NewDate(reference),
		Windows:     windows,
		TopDays:     analytics.PeakPerformance(quarter, analytics.DefaultTopDays),
	}, nil
}

// SaveDigest persiste o resumo gerado
func (s *Service) SaveDigest(ctx context.Context, digest *domain.Digest) error {
	if err := s.digestRepository.Save(digest); err != nil {
		log.ForContext(ctx).WithError(err).Error("insighting: falha ao salvar resumo")
		return NewInsightError(ErrSaveDigest, apiErrors.ErrInternalServer, err.Error())
	}
	return nil
}

func (s *Service) GetLatestDigest(ctx context.Context) (*domain.Digest, error) {
	digest, err := s.digestRepository.Latest()
	if err != nil {
		log.ForContext(ctx).WithError(err).Error("insighting: falha ao ler resumo")
		return nil, NewInsightError(ErrFetchDigest, apiErrors.ErrInternalServer, err.Error())
	}
	if digest == nil {
		return nil, NewInsightError(ErrDigestNotReady, apiErrors.ErrDigestMissing, "")
	}
	return digest, nil
}
