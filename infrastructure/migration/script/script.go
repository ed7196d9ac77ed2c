package main

import (
	"context"
	"database/sql"
	"time"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"github.com/vfg2006/sdr-metrics-api/infrastructure/database/postgres"
	"github.com/vfg2006/sdr-metrics-api/infrastructure/repository"
	"github.com/vfg2006/sdr-metrics-api/internal/config"
)

const createDailyActivitiesTable = `
	CREATE TABLE IF NOT EXISTS daily_activities (
		id            VARCHAR(16) PRIMARY KEY,
		day           DATE        NOT NULL,
		dials         INTEGER     NOT NULL DEFAULT 0,
		conversations INTEGER     NOT NULL DEFAULT 0,
		calls         INTEGER     NOT NULL DEFAULT 0,
		emails        INTEGER     NOT NULL DEFAULT 0,
		linkedin      INTEGER     NOT NULL DEFAULT 0,
		meetings      INTEGER     NOT NULL DEFAULT 0,
		created_at    TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)
`

func createTable(ctx context.Context, db postgres.Queryer) error {
	logrus.Info("Criando tabela daily_activities...")

	if _, err := db.ExecContext(ctx, createDailyActivitiesTable); err != nil {
		return err
	}

	logrus.Info("Tabela daily_activities pronta")
	return nil
}

func addUniqueConstraintToDailyActivities(ctx context.Context, db postgres.Queryer) error {
	logrus.Info("Adicionando constraint UNIQUE na coluna day da tabela daily_activities...")

	var constraintExists bool
	err := db.QueryRowContext(ctx, `
		SELECT EXISTS (
			SELECT 1 FROM information_schema.table_constraints
			WHERE table_name = 'daily_activities'
			AND constraint_type = 'UNIQUE'
			AND constraint_name = 'daily_activities_day_unique'
		)
	`).Scan(&constraintExists)
	if err != nil {
		return err
	}

	if constraintExists {
		logrus.Info("Constraint UNIQUE já existe na coluna day")
		return nil
	}

	_, err = db.ExecContext(ctx, "ALTER TABLE daily_activities ADD CONSTRAINT daily_activities_day_unique UNIQUE (day)")
	if err != nil {
		return err
	}

	logrus.Info("Constraint UNIQUE adicionada com sucesso")
	return nil
}

// migrate aplica o schema numa única transação: ou tudo entra, ou nada muda
func migrate(ctx context.Context, conn postgres.Conn) error {
	return conn.RunInTransaction(ctx, func(tx *sql.Tx) error {
		if err := createTable(ctx, tx); err != nil {
			return errors.Wrap(err, "criar tabela daily_activities")
		}

		if err := addUniqueConstraintToDailyActivities(ctx, tx); err != nil {
			return errors.Wrap(err, "adicionar constraint UNIQUE")
		}

		return nil
	})
}

// seedSampleData grava os dias de exemplo; dias já existentes são ignorados
func seedSampleData(ctx context.Context, repo repository.ActivityRepository) {
	startTime := time.Now()
	successCount, skippedCount, errorCount := 0, 0, 0

	for _, activity := range repository.SampleActivities() {
		_, err := repo.Append(ctx, activity)
		switch {
		case err == nil:
			successCount++
		case errors.Is(err, repository.ErrDuplicateDay):
			skippedCount++
		default:
			logrus.WithError(err).Errorf("ERRO ao inserir dia %s", activity.Day)
			errorCount++
		}
	}

	logrus.Infof("Carga de exemplo concluída em %v. Sucesso: %d, Ignorados: %d, Erros: %d",
		time.Since(startTime), successCount, skippedCount, errorCount)
}

func main() {
	logrus.Info("Iniciando script de migração...")

	cfg, err := config.NewConfig()
	if err != nil {
		logrus.Fatalf("ERRO ao carregar configuração: %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	conn, err := postgres.NewConnection(ctx, cfg.Database)
	if err != nil {
		logrus.Fatalf("ERRO ao conectar ao banco de dados: %v", err)
	}
	defer conn.Close()

	if err := conn.Ping(ctx); err != nil {
		logrus.Fatalf("ERRO ao verificar conexão com o banco: %v", err)
	}
	logrus.Info("Conexão com o banco de dados estabelecida com sucesso")

	if err := migrate(ctx, conn); err != nil {
		logrus.Fatalf("ERRO ao aplicar migração: %v", err)
	}

	if cfg.Store.SeedSampleData {
		seedSampleData(ctx, repository.NewActivityRepository(conn))
	}

	logrus.Info("Migração concluída")
}
