package education

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

const columns = `id, user_id, institution, degree, start_date, end_date, description, created_at`

type Repository struct {
	db  *sqlx.DB
	now func() time.Time
}

func NewRepository(db *sqlx.DB) *Repository {
	return &Repository{db: db, now: time.Now}
}

func (r *Repository) ListByOwner(ctx context.Context, owner string) ([]dto.Education, error) {
	q := r.db.Rebind(`
SELECT ` + columns + `
FROM education
WHERE user_id = ?
ORDER BY end_date DESC NULLS FIRST, start_date DESC NULLS LAST, created_at DESC`)

	out := []dto.Education{}
	if err := r.db.SelectContext(ctx, &out, q, owner); err != nil {
		return nil, fmt.Errorf("select education: %w", err)
	}

	return out, nil
}

func (r *Repository) GetByID(ctx context.Context, owner string, id uuid.UUID) (*dto.Education, error) {
	q := r.db.Rebind(`SELECT ` + columns + ` FROM education WHERE id = ? AND user_id = ?`)

	var it dto.Education
	err := r.db.GetContext(ctx, &it, q, id, owner)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, dto.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get education: %w", err)
	}

	return &it, nil
}

func (r *Repository) Insert(ctx context.Context, e dto.Education) (dto.Education, error) {
	e.Normalize()
	if err := e.Validate(); err != nil {
		return dto.Education{}, err
	}

	e.ID = uuid.New()
	e.CreatedAt = r.now().UTC()

	q := r.db.Rebind(`
INSERT INTO education
	(id, user_id, institution, degree, start_date, end_date, description, created_at)
VALUES
	(?, ?, ?, ?, ?, ?, ?, ?)`)
	_, err := r.db.ExecContext(ctx, q,
		e.ID, e.Owner, e.Institution, e.Degree, e.StartDate, e.EndDate, e.Description, e.CreatedAt,
	)
	if err != nil {
		return dto.Education{}, fmt.Errorf("insert education: %w", err)
	}

	return e, nil
}

func (r *Repository) Update(ctx context.Context, e dto.Education) error {
	e.Normalize()
	if err := e.Validate(); err != nil {
		return err
	}

	q := r.db.Rebind(`
UPDATE education SET
	institution = ?,
	degree = ?,
	start_date = ?,
	end_date = ?,
	description = ?
WHERE id = ? AND user_id = ?`)
	res, err := r.db.ExecContext(ctx, q,
		e.Institution, e.Degree, e.StartDate, e.EndDate, e.Description, e.ID, e.Owner,
	)
	if err != nil {
		return fmt.Errorf("update education: %w", err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return dto.ErrNotFound
	}

	return nil
}

func (r *Repository) Delete(ctx context.Context, owner string, id uuid.UUID) error {
	q := r.db.Rebind(`DELETE FROM education WHERE id = ? AND user_id = ?`)
	res, err := r.db.ExecContext(ctx, q, id, owner)
	if err != nil {
		return fmt.Errorf("delete education: %w", err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return dto.ErrNotFound
	}

	return nil
}

func (r *Repository) Count(ctx context.Context) (int64, error) {
	var n int64
	if err := r.db.GetContext(ctx, &n, `SELECT COUNT(*) FROM education`); err != nil {
		return 0, fmt.Errorf("count education: %w", err)
	}
	return n, nil
}
