package api

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	jsoniter "github.com/json-iterator/go"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/sdr-metrics-api/infrastructure/repository"
	"github.com/vfg2006/sdr-metrics-api/internal/api/handler"
	"github.com/vfg2006/sdr-metrics-api/internal/config"
	"github.com/vfg2006/sdr-metrics-api/internal/domain"
	"github.com/vfg2006/sdr-metrics-api/internal/usecases/forecasting"
	"github.com/vfg2006/sdr-metrics-api/internal/usecases/insighting"
	"github.com/vfg2006/sdr-metrics-api/internal/usecases/ranking"
	"github.com/vfg2006/sdr-metrics-api/internal/usecases/recording"
	"github.com/vfg2006/sdr-metrics-api/pkg/apiErrors"
	"github.com/vfg2006/sdr-metrics-api/pkg/middleware"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

type fakeCronJob struct {
	triggered atomic.Int32
}

func (f *fakeCronJob) TriggerManualSync() { f.triggered.Add(1) }

func (f *fakeCronJob) GetStatus() map[string]any {
	return map[string]any{"sync_enabled": true}
}

type testServer struct {
	handler   http.Handler
	insighter *insighting.Service
	cronJob   *fakeCronJob
}

func newTestServer(t *testing.T, cfg *config.Config) *testServer {
	t.Helper()

	if cfg == nil {
		cfg = &config.Config{
			CORS: config.CORS{AllowedOrigins: []string{"http://localhost:3000"}},
		}
	}

	activities := repository.NewMemoryActivityRepository(repository.SampleActivities())
	insighter := insighting.NewService(activities, repository.NewMemoryDigestRepository())
	cronJob := &fakeCronJob{}

	services := Services{
		Insighter:  insighter,
		Recorder:   recording.NewService(activities),
		Forecaster: forecasting.NewService(),
		Ranking:    ranking.NewPeakDayRankingService(insighter),
		CronJobs:   handler.CronJobServices{handler.CronJobTypeDigest: cronJob},
	}

	return &testServer{
		handler:   NewHandler(cfg, services, middleware.NewMetrics()),
		insighter: insighter,
		cronJob:   cronJob,
	}
}

func (s *testServer) do(method, path, body string) *httptest.ResponseRecorder {
	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}

	rec := httptest.NewRecorder()
	s.handler.ServeHTTP(rec, req)
	return rec
}

func decodeError(t *testing.T, rec *httptest.ResponseRecorder) apiErrors.APIError {
	t.Helper()
	var apiErr apiErrors.APIError
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &apiErr))
	return apiErr
}

func TestHealth(t *testing.T) {
	srv := newTestServer(t, nil)

	rec := srv.do(http.MethodGet, "/health", "")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"OK"}`, rec.Body.String())
}

func TestGetDailyStats(t *testing.T) {
	srv := newTestServer(t, nil)

	rec := srv.do(http.MethodGet, "/api/stats/daily", "")
	require.Equal(t, http.StatusOK, rec.Code)

	var records []map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &records))
	require.Len(t, records, 5)
	assert.Equal(t, "2024-01-01", records[0]["day"])
	assert.EqualValues(t, 120, records[0]["dials"])
	assert.EqualValues(t, 25, records[0]["linkedIn"])
}

func TestGetDailyStats_Range(t *testing.T) {
	srv := newTestServer(t, nil)

	rec := srv.do(http.MethodGet, "/api/stats/daily?start_date=2024-01-02&end_date=2024-01-03", "")
	require.Equal(t, http.StatusOK, rec.Code)

	var records []domain.DailyActivity
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &records))
	require.Len(t, records, 2)
	assert.Equal(t, "2024-01-02", records[0].Day.String())
}

func TestGetDailyStats_InvalidFilters(t *testing.T) {
	srv := newTestServer(t, nil)

	tests := []struct {
		path string
		code string
	}{
		{"/api/stats/daily?timeframe=year", apiErrors.ErrInvalidFilter},
		{"/api/stats/daily?start_date=01-02-2024", apiErrors.ErrInvalidFormat},
		{"/api/stats/report?activity=emails", apiErrors.ErrInvalidFilter},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			rec := srv.do(http.MethodGet, tt.path, "")
			assert.Equal(t, http.StatusBadRequest, rec.Code)
			assert.Equal(t, tt.code, decodeError(t, rec).Code)
		})
	}
}

func TestCreateActivity(t *testing.T) {
	srv := newTestServer(t, nil)

	rec := srv.do(http.MethodPost, "/api/activities",
		`{"day":"2024-01-06","dials":"130","conversations":17,"calls":"12abc","emails":null,"linkedIn":"x","meetings":4.9}`)
	require.Equal(t, http.StatusCreated, rec.Code)

	var body struct {
		Message  string               `json:"message"`
		Activity domain.DailyActivity `json:"activity"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "Data received successfully", body.Message)
	assert.Equal(t, "2024-01-06", body.Activity.Day.String())
	assert.Equal(t, domain.Count(130), body.Activity.Dials)
	assert.Equal(t, domain.Count(12), body.Activity.Calls)
	assert.Equal(t, domain.Count(0), body.Activity.Emails)
	assert.Equal(t, domain.Count(0), body.Activity.LinkedIn)
	assert.Equal(t, domain.Count(4), body.Activity.Meetings)
	assert.NotEmpty(t, body.Activity.ID)

	rec = srv.do(http.MethodGet, "/api/stats/daily", "")
	var records []domain.DailyActivity
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &records))
	assert.Len(t, records, 6)
}

func TestCreateActivity_DebugLevel(t *testing.T) {
	previous := logrus.GetLevel()
	logrus.SetLevel(logrus.DebugLevel)
	defer logrus.SetLevel(previous)

	srv := newTestServer(t, nil)

	rec := srv.do(http.MethodPost, "/api/activities", `{"day":"2030-01-01","dials":10,"conversations":2}`)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	rec = srv.do(http.MethodPost, "/api/activities", `{"day":"2030-01-01","dials":10,"conversations":2}`)
	assert.Equal(t, http.StatusConflict, rec.Code)
	assert.Equal(t, apiErrors.ErrActivityDuplicated, decodeError(t, rec).Code)
}

func TestCreateActivity_Errors(t *testing.T) {
	srv := newTestServer(t, nil)

	t.Run("dia duplicado", func(t *testing.T) {
		rec := srv.do(http.MethodPost, "/api/activities", `{"day":"2024-01-03","dials":1}`)
		assert.Equal(t, http.StatusConflict, rec.Code)
		assert.Equal(t, apiErrors.ErrActivityDuplicated, decodeError(t, rec).Code)
	})

	t.Run("json malformado", func(t *testing.T) {
		rec := srv.do(http.MethodPost, "/api/activities", `{"day":`)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, apiErrors.ErrInvalidRequest, decodeError(t, rec).Code)
	})

	t.Run("data inválida", func(t *testing.T) {
		rec := srv.do(http.MethodPost, "/api/activities", `{"day":"ontem"}`)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestGetDashboardReport(t *testing.T) {
	srv := newTestServer(t, nil)

	rec := srv.do(http.MethodGet, "/api/stats/report?activity=calls", "")
	require.Equal(t, http.StatusOK, rec.Code)

	var report domain.DashboardReport
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &report))
	assert.Equal(t, 13.1, report.Summary.DialToConversion)
	require.Len(t, report.Distribution, 1)
	assert.Equal(t, domain.ChannelCalls, report.Distribution[0].Name)
	assert.Len(t, report.TopDays, 5)
	assert.Len(t, report.Trends, 5)
}

func TestGetTopDays(t *testing.T) {
	srv := newTestServer(t, nil)

	rec := srv.do(http.MethodGet, "/api/stats/top-days?limit=2", "")
	require.Equal(t, http.StatusOK, rec.Code)

	var days []domain.PeakDay
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &days))
	require.Len(t, days, 2)
	assert.Equal(t, "2024-01-04", days[0].Day.String())

	rec = srv.do(http.MethodGet, "/api/stats/top-days?limit=abc", "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestProjectROI(t *testing.T) {
	srv := newTestServer(t, nil)

	rec := srv.do(http.MethodPost, "/api/roi/projection",
		`{"weeklyAttendance":100,"averageGiving":20,"streamingCost":200,"equipmentCost":1200,"staffHours":5,"onlineEngagement":50}`)
	require.Equal(t, http.StatusOK, rec.Code)

	var response domain.ProjectionResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &response))
	require.Len(t, response.Points, 12)
	assert.Equal(t, 50, response.Points[0].Viewers)
	assert.Equal(t, 200, response.Points[0].ROI)

	rec = srv.do(http.MethodPost, "/api/roi/projection", `{"weeklyAttendance":500}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, apiErrors.ErrMissingRequiredData, decodeError(t, rec).Code)

	rec = srv.do(http.MethodPost, "/api/roi/projection", `{"weeklyAttendance":"muitos"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, apiErrors.ErrInvalidFormat, decodeError(t, rec).Code)
}

func TestGetLatestDigest(t *testing.T) {
	srv := newTestServer(t, nil)

	rec := srv.do(http.MethodGet, "/api/stats/digest", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, apiErrors.ErrDigestMissing, decodeError(t, rec).Code)

	ctx := context.Background()
	digest, err := srv.insighter.BuildDigest(ctx, time.Date(2024, time.January, 10, 0, 0, 0, 0, time.UTC))
	require.NoError(t, err)
	require.NoError(t, srv.insighter.SaveDigest(ctx, digest))

	rec = srv.do(http.MethodGet, "/api/stats/digest", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"week"`)
}

func TestCronJobs(t *testing.T) {
	srv := newTestServer(t, nil)

	rec := srv.do(http.MethodPost, "/v1/cron/digest/run", "")
	assert.Equal(t, http.StatusAccepted, rec.Code)
	assert.Equal(t, int32(1), srv.cronJob.triggered.Load())

	rec = srv.do(http.MethodPost, "/v1/cron/all/run", "")
	assert.Equal(t, http.StatusAccepted, rec.Code)
	assert.Equal(t, int32(2), srv.cronJob.triggered.Load())

	rec = srv.do(http.MethodPost, "/v1/cron/meta/run", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, apiErrors.ErrJobNotFound, decodeError(t, rec).Code)

	rec = srv.do(http.MethodGet, "/v1/cron/status", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"digest":{"sync_enabled":true}}`, rec.Body.String())
}

func TestMetricsEndpoint(t *testing.T) {
	srv := newTestServer(t, nil)

	srv.do(http.MethodGet, "/health", "")
	rec := srv.do(http.MethodGet, "/metrics", "")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `route="/health"`)
}

func TestNotFoundAndMethodNotAllowed(t *testing.T) {
	srv := newTestServer(t, nil)

	rec := srv.do(http.MethodGet, "/nope", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, apiErrors.ErrResourceNotFound, decodeError(t, rec).Code)

	rec = srv.do(http.MethodDelete, "/api/stats/daily", "")
	assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
}

func TestRateLimitOnWrites(t *testing.T) {
	srv := newTestServer(t, &config.Config{
		RateLimit: config.RateLimit{RequestsPerSecond: 0.001, Burst: 1},
	})

	first := srv.do(http.MethodPost, "/api/roi/projection", `{}`)
	assert.Equal(t, http.StatusBadRequest, first.Code)

	second := srv.do(http.MethodPost, "/api/roi/projection", `{}`)
	assert.Equal(t, http.StatusTooManyRequests, second.Code)

	read := srv.do(http.MethodGet, "/api/stats/daily", "")
	assert.Equal(t, http.StatusOK, read.Code)
}

func TestCorsPreflight(t *testing.T) {
	srv := newTestServer(t, nil)

	req := httptest.NewRequest(http.MethodOptions, "/api/activities", nil)
	req.Header.Set("Origin", "http://localhost:3000")
	rec := httptest.NewRecorder()
	srv.handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "http://localhost:3000", rec.Header().Get("Access-Control-Allow-Origin"))
}
