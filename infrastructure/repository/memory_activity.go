package repository

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/pkg/errors"
	"github.com/vfg2006/sdr-metrics-api/internal/domain"
	"github.com/vfg2006/sdr-metrics-api/pkg/utils"
)

type memoryActivityRepository struct {
	mu         sync.RWMutex
	activities []domain.DailyActivity
	days       map[string]struct{}
	now        func() time.Time
}

// NewMemoryActivityRepository cria um repositório em memória, opcionalmente pré-carregado.
// Não há persistência: os dados se perdem ao reiniciar o processo.
func NewMemoryActivityRepository(seed []domain.DailyActivity) ActivityRepository {
	repo := &memoryActivityRepository{
		activities: make([]domain.DailyActivity, 0, len(seed)),
		days:       make(map[string]struct{}, len(seed)),
		now:        time.Now,
	}

	for _, activity := range seed {
		if _, exists := repo.days[activity.Day.String()]; exists {
			continue
		}
		repo.insert(activity)
	}

	return repo
}

func (r *memoryActivityRepository) List(_ context.Context, query domain.ActivityQuery) ([]domain.DailyActivity, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]domain.DailyActivity, 0, len(r.activities))
	for _, activity := range r.activities {
		if query.StartDate != nil && activity.Day.Before(utils.StartOfDay(*query.StartDate)) {
			continue
		}
		if query.EndDate != nil && activity.Day.After(utils.StartOfDay(*query.EndDate)) {
			continue
		}
		out = append(out, activity)
	}

	return out, nil
}

func (r *memoryActivityRepository) Append(ctx context.Context, activity domain.DailyActivity) (*domain.DailyActivity, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.days[activity.Day.String()]; exists {
		return nil, ErrDuplicateDay
	}

	if activity.ID == "" {
		id, err := utils.GenerateID()
		if err != nil {
			return nil, errors.Wrap(err, "erro ao gerar ID")
		}
		activity.ID = id
	}

	stored := r.insert(activity)
	return &stored, nil
}

// insert mantém a lista ordenada por dia; chamador deve segurar o lock
func (r *memoryActivityRepository) insert(activity domain.DailyActivity) domain.DailyActivity {
	if activity.CreatedAt.IsZero() {
		activity.CreatedAt = r.now()
	}

	idx := sort.Search(len(r.activities), func(i int) bool {
		return r.activities[i].Day.After(activity.Day.Time)
	})
	r.activities = append(r.activities, domain.DailyActivity{})
	copy(r.activities[idx+1:], r.activities[idx:])
	r.activities[idx] = activity
	r.days[activity.Day.String()] = struct{}{}

	return activity
}
