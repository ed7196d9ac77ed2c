// Package repository contém as implementações dos repositórios para acesso aos dados
package repository

//go:generate mockgen -source=activity.go -destination=mocks/activity.go -package=mocks

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/pkg/errors"
	"github.com/vfg2006/sdr-metrics-api/infrastructure/database/postgres"
	"github.com/vfg2006/sdr-metrics-api/internal/domain"
	"github.com/vfg2006/sdr-metrics-api/pkg/utils"
)

const (
	activitiesTable = "daily_activities da"
)

var ErrDuplicateDay = errors.New("activity already recorded for this day")

// ActivityRepository é a fonte de dados das atividades diárias
type ActivityRepository interface {
	List(ctx context.Context, query domain.ActivityQuery) ([]domain.DailyActivity, error)
	Append(ctx context.Context, activity domain.DailyActivity) (*domain.DailyActivity, error)
}

type activityRepository struct {
	conn postgres.Queryer
}

func NewActivityRepository(conn postgres.Queryer) ActivityRepository {
	return &activityRepository{
		conn: conn,
	}
}

func buildListQuery(query domain.ActivityQuery) (string, []any, error) {
	builder := squirrel.
		Select("da.id, da.day, da.dials, da.conversations, da.calls, da.emails, da.linkedin, da.meetings, da.created_at").
		From(activitiesTable).
		OrderBy("da.day ASC").
		PlaceholderFormat(squirrel.Dollar)

	if query.StartDate != nil {
		builder = builder.Where(squirrel.GtOrEq{"da.day": query.StartDate.Format(time.DateOnly)})
	}
	if query.EndDate != nil {
		builder = builder.Where(squirrel.LtOrEq{"da.day": query.EndDate.Format(time.DateOnly)})
	}

	return builder.ToSql()
}

func buildInsertQuery(activity domain.DailyActivity) (string, []any, error) {
	return squirrel.StatementBuilder.
		Insert("daily_activities").
		Columns("id", "day", "dials", "conversations", "calls", "emails", "linkedin", "meetings").
		Values(
			activity.ID,
			activity.Day.Format(time.DateOnly),
			int(activity.Dials),
			int(activity.Conversations),
			int(activity.Calls),
			int(activity.Emails),
			int(activity.LinkedIn),
			int(activity.Meetings),
		).
		Suffix("RETURNING created_at").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
}

func (r *activityRepository) List(ctx context.Context, query domain.ActivityQuery) ([]domain.DailyActivity, error) {
	sqlQuery, args, err := buildListQuery(query)
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.conn.QueryContext(ctx, sqlQuery, args...)
	if err != nil {
		return nil, fmt.Errorf("erro ao executar a query: %w", err)
	}
	defer rows.Close()

	activities := make([]domain.DailyActivity, 0)
	for rows.Next() {
		activity, err := r.scanActivity(rows)
		if err != nil {
			return nil, fmt.Errorf("erro ao escanear atividade: %w", err)
		}
		activities = append(activities, *activity)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return activities, nil
}

func (r *activityRepository) Append(ctx context.Context, activity domain.DailyActivity) (*domain.DailyActivity, error) {
	if activity.ID == "" {
		id, err := utils.GenerateID()
		if err != nil {
			return nil, errors.Wrap(err, "erro ao gerar ID")
		}
		activity.ID = id
	}

	sqlQuery, args, err := buildInsertQuery(activity)
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	err = r.conn.QueryRowContext(ctx, sqlQuery, args...).Scan(&activity.CreatedAt)
	if err != nil {
		if postgres.IsUniqueViolation(err) {
			return nil, ErrDuplicateDay
		}
		return nil, fmt.Errorf("erro ao inserir atividade: %w", err)
	}

	return &activity, nil
}

func (r *activityRepository) scanActivity(rows *sql.Rows) (*domain.DailyActivity, error) {
	activity := &domain.DailyActivity{}
	var day time.Time
	var dials, conversations, calls, emails, linkedIn, meetings int

	err := rows.Scan(
		&activity.ID,
		&day,
		&dials,
		&conversations,
		&calls,
		&emails,
		&linkedIn,
		&meetings,
		&activity.CreatedAt,
	)
	if err != nil {
		return nil, err
	}

	activity.Day = domain.NewDate(day)
	activity.Dials = domain.Count(dials)
	activity.Conversations = domain.Count(conversations)
	activity.Calls = domain.Count(calls)
	activity.Emails = domain.Count(emails)
	activity.LinkedIn = domain.Count(linkedIn)
	activity.Meetings = domain.Count(meetings)

	return activity, nil
}
