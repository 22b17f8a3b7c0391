package draft

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/Evelo00/barbershop-Front-sub000/internal/domain"
	"github.com/Evelo00/barbershop-Front-sub000/pkg/dbmetrics"
	"github.com/Evelo00/barbershop-Front-sub000/pkg/psqlbuilder"
)

// Repository репозиторий черновиков бронирования
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория черновиков
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

const draftColumns = "id, service_id, barber_id, date, start_time, " +
	"client_name, client_phone, client_email, notes, created_at, updated_at"

// Create создает черновик бронирования
func (r *Repository) Create(ctx context.Context, d *domain.BookingDraft) (*domain.BookingDraft, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("booking_drafts").
		Columns(
			"id",
			"service_id",
			"barber_id",
			"date",
			"start_time",
			"client_name",
			"client_phone",
			"client_email",
			"notes",
		).
		Values(
			d.ID,
			d.ServiceID,
			d.BarberID,
			d.Date,
			d.StartTime,
			d.ClientName,
			d.ClientPhone,
			d.ClientEmail,
			d.Notes,
		).
		Suffix("RETURNING created_at, updated_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(&createdAt, &updatedAt)
	if err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	d.CreatedAt = createdAt.Time
	d.UpdatedAt = updatedAt.Time

	return d, nil
}

// GetByID получает черновик по идентификатору
func (r *Repository) GetByID(ctx context.Context, id string) (*domain.BookingDraft, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"id",
		"service_id",
		"barber_id",
		"date",
		"start_time",
		"client_name",
		"client_phone",
		"client_email",
		"notes",
		"created_at",
		"updated_at",
	).
		From("booking_drafts").
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	var d domain.BookingDraft
	var createdAt, updatedAt sql.NullTime

	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&d.ID,
		&d.ServiceID,
		&d.BarberID,
		&d.Date,
		&d.StartTime,
		&d.ClientName,
		&d.ClientPhone,
		&d.ClientEmail,
		&d.Notes,
		&createdAt,
		&updatedAt,
	)

	if err == sql.ErrNoRows {
		return nil, ErrDraftNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan draft: %v", ErrScanRow, err)
	}

	d.CreatedAt = createdAt.Time
	d.UpdatedAt = updatedAt.Time

	return &d, nil
}

// Update перезаписывает поля черновика
func (r *Repository) Update(ctx context.Context, d *domain.BookingDraft) (*domain.BookingDraft, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("booking_drafts").
		Set("service_id", d.ServiceID).
		Set("barber_id", d.BarberID).
		Set("date", d.Date).
		Set("start_time", d.StartTime).
		Set("client_name", d.ClientName).
		Set("client_phone", d.ClientPhone).
		Set("client_email", d.ClientEmail).
		Set("notes", d.Notes).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": d.ID}).
		Suffix("RETURNING created_at, updated_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Update - build update query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(&createdAt, &updatedAt)

	if err == sql.ErrNoRows {
		return nil, ErrDraftNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: Update - execute update: %v", ErrExecQuery, err)
	}

	d.CreatedAt = createdAt.Time
	d.UpdatedAt = updatedAt.Time

	return d, nil
}

// Delete удаляет черновик (операция сброса мастера бронирования)
func (r *Repository) Delete(ctx context.Context, id string) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Delete("booking_drafts").
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: Delete - build delete query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: Delete - execute delete: %v", ErrExecQuery, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: Delete - rows affected: %v", ErrExecQuery, err)
	}
	if affected == 0 {
		return ErrDraftNotFound
	}

	return nil
}

// DeleteExpired удаляет черновики, не обновлявшиеся дольше maxAgeHours.
// Брошенные мастера бронирования не должны накапливаться.
func (r *Repository) DeleteExpired(ctx context.Context, maxAgeHours int) (int64, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Delete("booking_drafts").
		Where(squirrel.Expr("updated_at < NOW() - MAKE_INTERVAL(hours => ?)", maxAgeHours)).
		ToSql()

	if err != nil {
		return 0, fmt.Errorf("%w: DeleteExpired - build delete query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return 0, fmt.Errorf("%w: DeleteExpired - execute delete: %v", ErrExecQuery, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("%w: DeleteExpired - rows affected: %v", ErrExecQuery, err)
	}

	return affected, nil
}
