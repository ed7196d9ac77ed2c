package main

import (
	"context"
	"os"
	"path"
	"runtime"

	"github.com/sirupsen/logrus"

	"github.com/vfg2006/sdr-metrics-api/infrastructure/database/postgres"
	"github.com/vfg2006/sdr-metrics-api/infrastructure/repository"
	"github.com/vfg2006/sdr-metrics-api/internal/api"
	"github.com/vfg2006/sdr-metrics-api/internal/api/handler"
	"github.com/vfg2006/sdr-metrics-api/internal/config"
	"github.com/vfg2006/sdr-metrics-api/internal/domain"
	"github.com/vfg2006/sdr-metrics-api/internal/scheduler"
	"github.com/vfg2006/sdr-metrics-api/internal/usecases/forecasting"
	"github.com/vfg2006/sdr-metrics-api/internal/usecases/insighting"
	"github.com/vfg2006/sdr-metrics-api/internal/usecases/ranking"
	"github.com/vfg2006/sdr-metrics-api/internal/usecases/recording"
	"github.com/vfg2006/sdr-metrics-api/pkg/log"
	"github.com/vfg2006/sdr-metrics-api/pkg/middleware"
)

func main() {
	configureLogger()

	cfg, err := config.NewConfig()
	if err != nil {
		logrus.Fatal(err)
	}

	log.Setup(cfg.App.LogLevel)
	logrus.Infof("Nível de log configurado para: %s", logrus.GetLevel())

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	activityRepo, closeStore := activityStore(ctx, cfg)
	defer closeStore()

	digestRepo := repository.NewMemoryDigestRepository()

	insightService := insighting.NewService(activityRepo, digestRepo)
	recordService := recording.NewService(activityRepo)
	forecastService := forecasting.NewService()
	rankingService := ranking.NewPeakDayRankingService(insightService)

	metrics := middleware.NewMetrics()

	digestService := scheduler.NewDailyDigestService(insightService, cfg, metrics.Registerer())
	if err := digestService.Start(ctx); err != nil {
		logrus.WithError(err).Error("Erro ao iniciar o agendador do resumo diário")
	} else {
		logrus.Info("Agendador do resumo diário iniciado com sucesso")
	}

	server, err := api.New(cfg, api.Services{
		Insighter:  insightService,
		Recorder:   recordService,
		Forecaster: forecastService,
		Ranking:    rankingService,
		CronJobs: handler.CronJobServices{
			handler.CronJobTypeDigest: digestService,
		},
	}, metrics)
	if err != nil {
		logrus.Fatal(err)
	}

	if err := server.Run(ctx); err != nil {
		logrus.Error(err)
	}
}

// configureLogger posiciona o processo no diretório do binário para achar o .env
func configureLogger() {
	_, file, _, _ := runtime.Caller(0)
	dir := path.Dir(file)
	_ = os.Chdir(dir)
}

// activityStore escolhe o armazenamento de atividades conforme STORE_DRIVER
func activityStore(ctx context.Context, cfg *config.Config) (repository.ActivityRepository, func()) {
	if cfg.Store.Driver == config.StorePostgres {
		conn := pgconn(ctx, cfg.Database)
		return repository.NewActivityRepository(conn), func() { _ = conn.Close() }
	}

	var seed []domain.DailyActivity
	if cfg.Store.SeedSampleData {
		seed = repository.SampleActivities()
	}
	logrus.Infof("Usando armazenamento em memória com %d registros", len(seed))

	return repository.NewMemoryActivityRepository(seed), func() {}
}

// pgconn cria uma conexão com o banco de dados
func pgconn(ctx context.Context, dbConfig config.Database) *postgres.Connection {
	conn, err := postgres.NewConnection(ctx, dbConfig)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao conectar ao PostgreSQL")
	}

	logrus.Info("Conexão com PostgreSQL estabelecida com sucesso")
	return conn
}
