package booking

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"

	"github.com/m04kA/CMS-SchedulingService/internal/domain"
	"github.com/m04kA/CMS-SchedulingService/pkg/dbmetrics"
	"github.com/m04kA/CMS-SchedulingService/pkg/psqlbuilder"
)

// Код ошибки PostgreSQL для нарушения уникального ограничения
const pgUniqueViolation = "23505"

var bookingColumns = []string{
	"id",
	"customer_id",
	"staff_id",
	"team_id",
	"booking_date",
	"end_date",
	"start_time",
	"end_time",
	"price_mode",
	"package_id",
	"area_sqm",
	"frequency",
	"custom_price",
	"job_name",
	"resolved_price",
	"status",
	"recurring_group_id",
	"package_name",
	"notes",
	"cancellation_reason",
	"cancelled_at",
	"created_at",
	"updated_at",
}

// Repository репозиторий для работы с бронированиями уборки
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория бронирований
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create создает новое бронирование
// Если в контексте передана активная транзакция (через context.Value), использует её.
// Иначе выполняет обычный запрос без транзакции.
//
// При нарушении уникального ограничения (assignee, booking_date, start_time)
// возвращает ErrSlotTaken: так второй участник гонки check-then-write
// узнаёт о проигрыше даже если проверка конфликтов прошла успешно.
func (r *Repository) Create(ctx context.Context, booking *domain.Booking) (*domain.Booking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("bookings").
		Columns(
			"customer_id",
			"staff_id",
			"team_id",
			"booking_date",
			"end_date",
			"start_time",
			"end_time",
			"price_mode",
			"package_id",
			"area_sqm",
			"frequency",
			"custom_price",
			"job_name",
			"resolved_price",
			"status",
			"recurring_group_id",
			"package_name",
			"notes",
		).
		Values(
			booking.CustomerID,
			booking.StaffID,
			booking.TeamID,
			booking.Date,
			booking.EndDate,
			booking.StartTime,
			booking.EndTime,
			booking.PriceMode,
			booking.PackageID,
			booking.AreaSqm,
			booking.Frequency,
			booking.CustomPrice,
			booking.JobName,
			booking.ResolvedPrice,
			booking.Status,
			booking.RecurringGroupID,
			booking.PackageName,
			booking.Notes,
		).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&booking.ID,
		&createdAt,
		&updatedAt,
	)

	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && string(pqErr.Code) == pgUniqueViolation {
			return nil, fmt.Errorf("%w: Create - unique violation: %v", ErrSlotTaken, err)
		}
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	booking.CreatedAt = createdAt.Time
	booking.UpdatedAt = updatedAt.Time

	return booking, nil
}

// GetByID получает бронирование по ID
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.Booking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(bookingColumns...).
		From("bookings").
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	var booking domain.Booking
	var createdAt, updatedAt sql.NullTime

	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&booking.ID,
		&booking.CustomerID,
		&booking.StaffID,
		&booking.TeamID,
		&booking.Date,
		&booking.EndDate,
		&booking.StartTime,
		&booking.EndTime,
		&booking.PriceMode,
		&booking.PackageID,
		&booking.AreaSqm,
		&booking.Frequency,
		&booking.CustomPrice,
		&booking.JobName,
		&booking.ResolvedPrice,
		&booking.Status,
		&booking.RecurringGroupID,
		&booking.PackageName,
		&booking.Notes,
		&booking.CancellationReason,
		&booking.CancelledAt,
		&createdAt,
		&updatedAt,
	)

	if err == sql.ErrNoRows {
		return nil, ErrBookingNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan booking: %v", ErrScanRow, err)
	}

	booking.CreatedAt = createdAt.Time
	booking.UpdatedAt = updatedAt.Time

	return &booking, nil
}

// GetByAssigneeWithFilter получает бронирования исполнителя с гибкой фильтрацией
// Исполнитель задаётся через StaffID или TeamID фильтра (ровно один из них).
// Поддерживает фильтрацию по:
//   - Периоду (StartDate, EndDate) - опционально; многодневные бронирования
//     попадают в выборку, если их диапазон дат пересекается с периодом
//   - Статусу (Status) - опционально
//   - Включению неактивных бронирований (IncludeInactive)
//
// При LockForUpdate внутри транзакции добавляет FOR UPDATE: блокировка строк
// исполнителя на время проверки конфликтов при создании. Флаг запрашивает
// только пишущий вызывающий код - read-only транзакция отвергнет блокировку.
func (r *Repository) GetByAssigneeWithFilter(ctx context.Context, filter domain.AssigneeBookingsFilter) ([]*domain.Booking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(bookingColumns...).
		From("bookings")

	// Фильтрация по исполнителю
	if filter.StaffID != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"staff_id": *filter.StaffID})
	}
	if filter.TeamID != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"team_id": *filter.TeamID})
	}

	// Фильтрация по периоду: бронирование попадает в выборку, если
	// [booking_date, COALESCE(end_date, booking_date)] пересекается с периодом
	if filter.EndDate != nil {
		selectBuilder = selectBuilder.Where(squirrel.LtOrEq{"booking_date": *filter.EndDate})
	}
	if filter.StartDate != nil {
		selectBuilder = selectBuilder.Where(squirrel.GtOrEq{"COALESCE(end_date, booking_date)": *filter.StartDate})
	}

	// Фильтрация по статусу
	if filter.Status != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"status": *filter.Status})
	} else if !filter.IncludeInactive {
		// Если не указан конкретный статус и не нужны неактивные - исключаем их
		inactiveStatusStrings := make([]string, len(domain.InactiveStatuses))
		for i, s := range domain.InactiveStatuses {
			inactiveStatusStrings[i] = string(s)
		}
		selectBuilder = selectBuilder.Where(squirrel.NotEq{"status": inactiveStatusStrings})
	}

	selectBuilder = selectBuilder.OrderBy("booking_date ASC, start_time ASC")

	// FOR UPDATE добавляется только по явному запросу и только внутри
	// транзакции: консультативные выборки читают без блокировок
	if filter.LockForUpdate && dbmetrics.IsInTransaction(ctx) {
		selectBuilder = selectBuilder.Suffix("FOR UPDATE")
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByAssigneeWithFilter - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetByAssigneeWithFilter - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return r.scanBookings(rows)
}

// GetByRecurringGroup получает все бронирования одной повторяющейся серии
func (r *Repository) GetByRecurringGroup(ctx context.Context, groupID string) ([]*domain.Booking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(bookingColumns...).
		From("bookings").
		Where(squirrel.Eq{"recurring_group_id": groupID}).
		OrderBy("booking_date ASC, start_time ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByRecurringGroup - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetByRecurringGroup - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return r.scanBookings(rows)
}

// UpdateStatus обновляет статус бронирования
func (r *Repository) UpdateStatus(ctx context.Context, id int64, status domain.BookingStatus) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("bookings").
		Set("status", status).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: UpdateStatus - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: UpdateStatus - execute update: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: UpdateStatus - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrBookingNotFound
	}

	return nil
}

// Cancel отменяет бронирование с указанием причины
func (r *Repository) Cancel(ctx context.Context, id int64, reason string) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("bookings").
		Set("status", domain.StatusCancelled).
		Set("cancellation_reason", reason).
		Set("cancelled_at", squirrel.Expr("NOW()")).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: Cancel - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: Cancel - execute update: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: Cancel - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrBookingNotFound
	}

	return nil
}

// scanBookings сканирует результаты запроса в слайс бронирований
func (r *Repository) scanBookings(rows *sql.Rows) ([]*domain.Booking, error) {
	bookings := make([]*domain.Booking, 0)

	for rows.Next() {
		var booking domain.Booking
		var createdAt, updatedAt sql.NullTime

		err := rows.Scan(
			&booking.ID,
			&booking.CustomerID,
			&booking.StaffID,
			&booking.TeamID,
			&booking.Date,
			&booking.EndDate,
			&booking.StartTime,
			&booking.EndTime,
			&booking.PriceMode,
			&booking.PackageID,
			&booking.AreaSqm,
			&booking.Frequency,
			&booking.CustomPrice,
			&booking.JobName,
			&booking.ResolvedPrice,
			&booking.Status,
			&booking.RecurringGroupID,
			&booking.PackageName,
			&booking.Notes,
			&booking.CancellationReason,
			&booking.CancelledAt,
			&createdAt,
			&updatedAt,
		)

		if err != nil {
			return nil, fmt.Errorf("%w: scanBookings - scan row: %v", ErrScanRow, err)
		}

		booking.CreatedAt = createdAt.Time
		booking.UpdatedAt = updatedAt.Time

		bookings = append(bookings, &booking)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: scanBookings - rows error: %v", ErrScanRow, err)
	}

	return bookings, nil
}
