package recording

import (
	"context"
	"errors"
	"time"

	"github.com/vfg2006/sdr-metrics-api/infrastructure/repository"
	"github.com/vfg2006/sdr-metrics-api/internal/domain"
	"github.com/vfg2006/sdr-metrics-api/pkg/apiErrors"
	"github.com/vfg2006/sdr-metrics-api/pkg/log"
	"github.com/vfg2006/sdr-metrics-api/pkg/utils"
)

// Recorder registra as atividades diárias
type Recorder interface {
	Record(ctx context.Context, activity domain.DailyActivity) (*domain.DailyActivity, error)
}

type Service struct {
	activityRepository repository.ActivityRepository
	today              func() time.Time
}

func NewService(activityRepository repository.ActivityRepository) *Service {
	return &Service{
		activityRepository: activityRepository,
		today:              utils.Today,
	}
}

// Record grava o registro; sem dia informado, usa a data de hoje
func (s *Service) Record(ctx context.Context, activity domain.DailyActivity) (*domain.DailyActivity, error) {
	if activity.Day.IsZero() {
		activity.Day = domain.NewDate(s.today())
	}
	activity.ID = ""
	activity.CreatedAt = time.Time{}

	logger := log.ForContext(ctx).WithField("day", activity.Day.String())

	stored, err := s.activityRepository.Append(ctx, activity)
	if err != nil {
		if errors.Is(err, repository.ErrDuplicateDay) {
			logger.Warn("recording: dia já registrado")
			return nil, NewActivityError(ErrDuplicateDay, apiErrors.ErrActivityDuplicated, activity.Day.String(), "")
		}

		logger.WithError(err).Error("recording: falha ao gravar atividade")
		return nil, NewActivityError(ErrSaveActivity, apiErrors.ErrDatabaseOperation, activity.Day.String(), err.Error())
	}

	logger.Info("recording: atividade registrada")
	return stored, nil
}
