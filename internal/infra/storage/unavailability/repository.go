package unavailability

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/CMS-SchedulingService/internal/domain"
	"github.com/m04kA/CMS-SchedulingService/pkg/dbmetrics"
	"github.com/m04kA/CMS-SchedulingService/pkg/psqlbuilder"
)

// Repository репозиторий для работы с окнами недоступности исполнителей
type Repository struct {
	db dbmetrics.DBExecutor
}

// NewRepository создает новый экземпляр репозитория окон недоступности
func NewRepository(db dbmetrics.DBExecutor) *Repository {
	return &Repository{db: db}
}

// GetForAssigneeInRange получает окна недоступности исполнителя,
// пересекающиеся с периодом [start, end] (даты включительно).
// Исполнитель задаётся через staffID или teamID (ровно один из них).
func (r *Repository) GetForAssigneeInRange(ctx context.Context, staffID, teamID *int64, start, end time.Time) ([]*domain.UnavailabilityWindow, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(
		"id",
		"staff_id",
		"team_id",
		"start_date",
		"end_date",
		"full_day",
		"start_time",
		"end_time",
		"reason",
		"created_at",
		"updated_at",
	).
		From("unavailability_windows").
		Where(squirrel.LtOrEq{"start_date": end}).
		Where(squirrel.GtOrEq{"COALESCE(end_date, start_date)": start}).
		OrderBy("start_date ASC")

	if staffID != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"staff_id": *staffID})
	}
	if teamID != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"team_id": *teamID})
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetForAssigneeInRange - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetForAssigneeInRange - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return r.scanWindows(rows)
}

// scanWindows сканирует результаты запроса в слайс окон недоступности
func (r *Repository) scanWindows(rows *sql.Rows) ([]*domain.UnavailabilityWindow, error) {
	windows := make([]*domain.UnavailabilityWindow, 0)

	for rows.Next() {
		var window domain.UnavailabilityWindow
		var createdAt, updatedAt sql.NullTime

		err := rows.Scan(
			&window.ID,
			&window.StaffID,
			&window.TeamID,
			&window.StartDate,
			&window.EndDate,
			&window.FullDay,
			&window.StartTime,
			&window.EndTime,
			&window.Reason,
			&createdAt,
			&updatedAt,
		)

		if err != nil {
			return nil, fmt.Errorf("%w: scanWindows - scan row: %v", ErrScanRow, err)
		}

		window.CreatedAt = createdAt.Time
		window.UpdatedAt = updatedAt.Time

		windows = append(windows, &window)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: scanWindows - rows error: %v", ErrScanRow, err)
	}

	return windows, nil
}
