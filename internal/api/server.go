package api

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/justinas/alice"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/sdr-metrics-api/internal/api/handler"
	"github.com/vfg2006/sdr-metrics-api/internal/api/handler/router"
	"github.com/vfg2006/sdr-metrics-api/internal/config"
	"github.com/vfg2006/sdr-metrics-api/internal/usecases/forecasting"
	"github.com/vfg2006/sdr-metrics-api/internal/usecases/insighting"
	"github.com/vfg2006/sdr-metrics-api/internal/usecases/ranking"
	"github.com/vfg2006/sdr-metrics-api/internal/usecases/recording"
	"github.com/vfg2006/sdr-metrics-api/pkg/middleware"
)

type Server struct {
	httpServer *http.Server
}

// Services agrupa os casos de uso expostos pela API
type Services struct {
	Insighter  insighting.Insighter
	Recorder   recording.Recorder
	Forecaster forecasting.Forecaster
	Ranking    ranking.RankingService
	CronJobs   handler.CronJobServices
}

func New(config *config.Config, services Services, metrics *middleware.Metrics) (*Server, error) {
	return &Server{
		httpServer: &http.Server{
			Addr:              config.Server.Address(),
			Handler:           NewHandler(config, services, metrics),
			ReadHeaderTimeout: 2 * time.Second,
		},
	}, nil
}

// NewHandler monta o router com a cadeia de middlewares
func NewHandler(config *config.Config, services Services, metrics *middleware.Metrics) http.Handler {
	rateLimit := middleware.RateLimit(config.RateLimit.RequestsPerSecond, config.RateLimit.Burst)

	rt := router.New(
		router.WithRouteMiddleware(func(route router.Route) func(http.Handler) http.Handler {
			return metrics.Middleware(route.Path)
		}),
		router.WithRoutes(handler.Healthcheck()...),
		router.WithRoutes(handler.Stats(services.Insighter)...),
		router.WithRoutes(handler.TopDays(services.Ranking)...),
		router.WithRoutes(handler.Activities(services.Recorder, rateLimit)...),
		router.WithRoutes(handler.ROI(services.Forecaster, rateLimit)...),
		router.WithRoutes(handler.CronJobs(services.CronJobs, rateLimit)...),
		router.WithRoutes(handler.Metrics(metrics.Handler())...),
	)

	middlewares := []alice.Constructor{
		middleware.LogPanicMiddleware(),
		middleware.LoggingMiddleware(),
		middleware.Cors(config.CORS.AllowedOrigins),
	}

	return alice.New(middlewares...).Then(rt)
}

func (s Server) Run(ctx context.Context) error {
	go func() {
		logrus.WithFields(logrus.Fields{
			"address": s.httpServer.Addr,
		}).Info("Servidor iniciando")

		if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logrus.WithError(err).Error("Erro durante a execução do servidor")
		}
	}()

	done := make(chan os.Signal, 1)
	signal.Notify(done, os.Interrupt, syscall.SIGTERM)

	select {
	case <-done:
		logrus.Info("Sinal de interrupção recebido")
	case <-ctx.Done():
		logrus.Info("Contexto de aplicação cancelado")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	logrus.WithFields(logrus.Fields{
		"timeout": "15s",
	}).Info("Iniciando desligamento gracioso do servidor")

	if err := s.Shutdown(shutdownCtx); err != nil {
		logrus.WithError(err).Error("Erro durante o desligamento do servidor")
		return err
	}

	logrus.Info("Servidor desligado com sucesso")
	return nil
}

func (s Server) Shutdown(ctx context.Context) error {
	if err := s.httpServer.Shutdown(ctx); err != nil {
		return err
	}

	logrus.Info("Servidor HTTP desligado com sucesso")
	return nil
}
