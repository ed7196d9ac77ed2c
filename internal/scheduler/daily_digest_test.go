package scheduler

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/sdr-metrics-api/infrastructure/repository"
	"github.com/vfg2006/sdr-metrics-api/infrastructure/repository/mocks"
	"github.com/vfg2006/sdr-metrics-api/internal/config"
	"github.com/vfg2006/sdr-metrics-api/internal/domain"
	"github.com/vfg2006/sdr-metrics-api/internal/usecases/insighting"
	"go.uber.org/mock/gomock"
)

func digestConfig(enabled bool) *config.Config {
	return &config.Config{
		Digest: config.Digest{
			CronSchedule: "0 6 * * *",
			Enabled:      enabled,
		},
	}
}

func fixedNow() time.Time {
	return time.Date(2024, time.January, 10, 6, 0, 0, 0, time.UTC)
}

func TestDailyDigestService_RunDigest(t *testing.T) {
	ctrl := gomock.NewController(t)
	digestRepo := mocks.NewMockDigestRepository(ctrl)

	var saved *domain.Digest
	digestRepo.EXPECT().Save(gomock.Any()).DoAndReturn(func(d *domain.Digest) error {
		saved = d
		return nil
	})

	builder := insighting.NewService(
		repository.NewMemoryActivityRepository(repository.SampleActivities()),
		digestRepo,
	)

	registry := prometheus.NewRegistry()
	service := NewDailyDigestService(builder, digestConfig(true), registry)
	service.now = fixedNow

	require.NoError(t, service.RunDigest(context.Background()))

	require.NotNil(t, saved)
	assert.Equal(t, "2024-01-10", saved.Reference.String())
	assert.Equal(t, 3, saved.Windows[domain.TimeframeWeek].Days)
	assert.Equal(t, 5, saved.Windows[domain.TimeframeQuarter].Days)

	status := service.GetStatus()
	assert.Equal(t, fixedNow(), status["last_sync_completed_at"])
	assert.Equal(t, "", status["last_error"])
	assert.False(t, service.IsRunning())
	assert.Equal(t, 1.0, testutil.ToFloat64(service.runs.WithLabelValues("success")))
}

func TestDailyDigestService_RunDigest_BuildError(t *testing.T) {
	ctrl := gomock.NewController(t)
	activityRepo := mocks.NewMockActivityRepository(ctrl)
	activityRepo.EXPECT().List(gomock.Any(), gomock.Any()).Return(nil, errors.New("db down")).MinTimes(1)
	digestRepo := mocks.NewMockDigestRepository(ctrl)

	service := NewDailyDigestService(insighting.NewService(activityRepo, digestRepo), digestConfig(true), nil)
	service.now = fixedNow

	err := service.RunDigest(context.Background())
	require.Error(t, err)
	assert.ErrorIs(t, err, insighting.ErrFetchActivities)

	status := service.GetStatus()
	assert.NotEmpty(t, status["last_error"])
	assert.Equal(t, 1.0, testutil.ToFloat64(service.runs.WithLabelValues("error")))
}

func TestDailyDigestService_RunDigest_SkipsWhenRunning(t *testing.T) {
	ctrl := gomock.NewController(t)
	digestRepo := mocks.NewMockDigestRepository(ctrl)

	service := NewDailyDigestService(
		insighting.NewService(repository.NewMemoryActivityRepository(nil), digestRepo),
		digestConfig(true),
		nil,
	)
	service.syncRunning = true

	assert.NoError(t, service.RunDigest(context.Background()))
}

func TestDailyDigestService_TriggerManualSync(t *testing.T) {
	digestRepo := repository.NewMemoryDigestRepository()
	service := NewDailyDigestService(
		insighting.NewService(repository.NewMemoryActivityRepository(repository.SampleActivities()), digestRepo),
		digestConfig(false),
		nil,
	)
	service.now = fixedNow

	service.TriggerManualSync()

	assert.Eventually(t, func() bool {
		digest, _ := digestRepo.Latest()
		return digest != nil
	}, time.Second, 10*time.Millisecond)
}

func TestDailyDigestService_StartDisabled(t *testing.T) {
	service := NewDailyDigestService(
		insighting.NewService(repository.NewMemoryActivityRepository(nil), repository.NewMemoryDigestRepository()),
		digestConfig(false),
		nil,
	)

	assert.NoError(t, service.Start(context.Background()))
	assert.Equal(t, false, service.GetStatus()["sync_enabled"])
}

func TestDailyDigestService_StartInvalidCron(t *testing.T) {
	cfg := digestConfig(true)
	cfg.Digest.CronSchedule = "not a cron"

	service := NewDailyDigestService(
		insighting.NewService(repository.NewMemoryActivityRepository(nil), repository.NewMemoryDigestRepository()),
		cfg,
		nil,
	)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	assert.Error(t, service.Start(ctx))
}
