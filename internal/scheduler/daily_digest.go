// Package scheduler contém os serviços agendados da API
package scheduler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/sirupsen/logrus"

	"github.com/vfg2006/sdr-metrics-api/internal/config"
	"github.com/vfg2006/sdr-metrics-api/internal/domain"
)

// DigestBuilder calcula e persiste o resumo periódico
type DigestBuilder interface {
	BuildDigest(ctx context.Context, reference time.Time) (*domain.Digest, error)
	SaveDigest(ctx context.Context, digest *domain.Digest) error
}

type DailyDigestConfig struct {
	CronSchedule string
	Enabled      bool
}

type DailyDigestService struct {
	scheduler           *gocron.Scheduler
	builder             DigestBuilder
	config              DailyDigestConfig
	runs                *prometheus.CounterVec
	now                 func() time.Time
	syncRunning         bool
	syncMutex           sync.Mutex
	lastSyncStartedAt   time.Time
	lastSyncCompletedAt time.Time
	lastError           string
}

func NewDailyDigestService(builder DigestBuilder, cfg *config.Config, registerer prometheus.Registerer) *DailyDigestService {
	digestConfig := DailyDigestConfig{
		CronSchedule: cfg.Digest.CronSchedule,
		Enabled:      cfg.Digest.Enabled,
	}

	runs := prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "sdr_metrics",
		Name:      "digest_runs_total",
		Help:      "Execuções do resumo diário por resultado.",
	}, []string{"result"})
	if registerer != nil {
		registerer.MustRegister(runs)
	}

	logrus.WithFields(logrus.Fields{
		"cron_schedule": digestConfig.CronSchedule,
	}).Info("Configuração do agendador do resumo diário carregada")

	return &DailyDigestService{
		scheduler: gocron.NewScheduler(time.Local),
		builder:   builder,
		config:    digestConfig,
		runs:      runs,
		now:       time.Now,
	}
}

func (s *DailyDigestService) Start(ctx context.Context) error {
	if !s.config.Enabled {
		logrus.Info("Cron do resumo diário desabilitada por configuração")
		return nil
	}

	logrus.WithField("cron", s.config.CronSchedule).Info("Iniciando cron do resumo diário")

	_, err := s.scheduler.Cron(s.config.CronSchedule).Do(func() {
		if err := s.RunDigest(ctx); err != nil {
			logrus.WithError(err).Error("Erro na geração do resumo diário")
		}
	})
	if err != nil {
		return fmt.Errorf("erro ao agendar resumo diário: %w", err)
	}

	s.scheduler.StartAsync()

	go func() {
		<-ctx.Done()
		logrus.Info("Parando cron do resumo diário")
		s.scheduler.Stop()
	}()

	return nil
}

// RunDigest gera e salva o resumo; execuções concorrentes são ignoradas
func (s *DailyDigestService) RunDigest(ctx context.Context) error {
	s.syncMutex.Lock()
	if s.syncRunning {
		s.syncMutex.Unlock()
		logrus.Warn("Resumo diário já está em execução")
		return nil
	}
	s.syncRunning = true
	s.lastSyncStartedAt = s.now()
	s.syncMutex.Unlock()

	var runErr error
	defer func() {
		s.syncMutex.Lock()
		s.syncRunning = false
		s.lastSyncCompletedAt = s.now()
		s.lastError = ""
		if runErr != nil {
			s.lastError = runErr.Error()
		}
		s.syncMutex.Unlock()
	}()

	logrus.Info("Iniciando geração do resumo diário")

	digest, err := s.builder.BuildDigest(ctx, s.now())
	if err != nil {
		runErr = err
		s.runs.WithLabelValues("error").Inc()
		return err
	}

	if err := s.builder.SaveDigest(ctx, digest); err != nil {
		runErr = err
		s.runs.WithLabelValues("error").Inc()
		return err
	}

	s.runs.WithLabelValues("success").Inc()
	logrus.WithFields(logrus.Fields{
		"job_reference": digest.Reference.String(),
		"job_windows":   len(digest.Windows),
	}).Info("Resumo diário concluído")

	return nil
}

// TriggerManualSync inicia manualmente a geração do resumo
func (s *DailyDigestService) TriggerManualSync() {
	s.syncMutex.Lock()
	if s.syncRunning {
		s.syncMutex.Unlock()
		logrus.Info("Resumo diário já em andamento, ignorando solicitação manual")
		return
	}
	s.syncMutex.Unlock()

	logrus.Info("Iniciando geração manual do resumo diário")
	go func() {
		if err := s.RunDigest(context.Background()); err != nil {
			logrus.WithError(err).Error("Erro na geração manual do resumo diário")
		}
	}()
}

// IsRunning indica se há uma geração em andamento
func (s *DailyDigestService) IsRunning() bool {
	s.syncMutex.Lock()
	defer s.syncMutex.Unlock()
	return s.syncRunning
}

// GetStatus retorna o status atual do agendador
func (s *DailyDigestService) GetStatus() map[string]any {
	s.syncMutex.Lock()
	defer s.syncMutex.Unlock()

	return map[string]any{
		"sync_enabled":           s.config.Enabled,
		"sync_cron":              s.config.CronSchedule,
		"sync_running":           s.syncRunning,
		"last_sync_started_at":   s.lastSyncStartedAt,
		"last_sync_completed_at": s.lastSyncCompletedAt,
		"last_error":             s.lastError,
	}
}
