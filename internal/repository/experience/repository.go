package experience

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/Zachkp/folio/internal/dto"
)

// ListOrder pins where ongoing roles land: NULL end dates come first,
// which is also the Postgres default for DESC.
const ListOrder = `end_date DESC NULLS FIRST, start_date DESC NULLS LAST, created_at DESC`

const columns = `id, user_id, company, position, location, start_date, end_date, current_job, description, created_at`

type Repository struct {
	db  *sqlx.DB
	now func() time.Time
}

func NewRepository(db *sqlx.DB) *Repository {
	return &Repository{db: db, now: time.Now}
}

// ListByOwner returns every record of owner, most recent end date first.
func (r *Repository) ListByOwner(ctx context.Context, owner string) ([]dto.Experience, error) {
	q := r.db.Rebind(`SELECT ` + columns + ` FROM experience WHERE user_id = ? ORDER BY ` + ListOrder)

	out := []dto.Experience{}
	if err := r.db.SelectContext(ctx, &out, q, owner); err != nil {
		return nil, fmt.Errorf("select experience: %w", err)
	}

	return out, nil
}

func (r *Repository) GetByID(ctx context.Context, owner string, id uuid.UUID) (*dto.Experience, error) {
	q := r.db.Rebind(`SELECT ` + columns + ` FROM experience WHERE id = ? AND user_id = ?`)

	var it dto.Experience
	err := r.db.GetContext(ctx, &it, q, id, owner)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, dto.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get experience: %w", err)
	}

	return &it, nil
}

// Insert stamps a fresh id and creation time and returns the stored row.
func (r *Repository) Insert(ctx context.Context, e dto.Experience) (dto.Experience, error) {
	e.Normalize()
	if err := e.Validate(); err != nil {
		return dto.Experience{}, err
	}

	e.ID = uuid.New()
	e.CreatedAt = r.now().UTC()

	q := r.db.Rebind(`
INSERT INTO experience
	(id, user_id, company, position, location, start_date, end_date, current_job, description, created_at)
VALUES
	(?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`)
	_, err := r.db.ExecContext(ctx, q,
		e.ID, e.Owner, e.Company, e.Position, e.Location, e.StartDate, e.EndDate, e.CurrentJob, e.Description, e.CreatedAt,
	)
	if err != nil {
		return dto.Experience{}, fmt.Errorf("insert experience: %w", err)
	}

	return e, nil
}

// Update replaces every editable column of the row keyed by e.ID and e.Owner.
func (r *Repository) Update(ctx context.Context, e dto.Experience) error {
	e.Normalize()
	if err := e.Validate(); err != nil {
		return err
	}

	q := r.db.Rebind(`
UPDATE experience SET
	company = ?,
	position = ?,
	location = ?,
	start_date = ?,
	end_date = ?,
	current_job = ?,
	description = ?
WHERE id = ? AND user_id = ?`)
	res, err := r.db.ExecContext(ctx, q,
		e.Company, e.Position, e.Location, e.StartDate, e.EndDate, e.CurrentJob, e.Description, e.ID, e.Owner,
	)
	if err != nil {
		return fmt.Errorf("update experience: %w", err)
	}

	return affectedOne(res)
}

func (r *Repository) Delete(ctx context.Context, owner string, id uuid.UUID) error {
	q := r.db.Rebind(`DELETE FROM experience WHERE id = ? AND user_id = ?`)
	res, err := r.db.ExecContext(ctx, q, id, owner)
	if err != nil {
		return fmt.Errorf("delete experience: %w", err)
	}

	return affectedOne(res)
}

// Count is used by the admin dashboard.
func (r *Repository) Count(ctx context.Context) (records int64, owners int64, err error) {
	q := `SELECT COUNT(*), COUNT(DISTINCT user_id) FROM experience`
	if err := r.db.QueryRowxContext(ctx, q).Scan(&records, &owners); err != nil {
		return 0, 0, fmt.Errorf("count experience: %w", err)
	}
	return records, owners, nil
}

func affectedOne(res sql.Result) error {
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return dto.ErrNotFound
	}
	return nil
}
