package experience

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Zachkp/folio/internal/dto"
	"github.com/Zachkp/folio/internal/storage"
)

func newTestRepository(t *testing.T) *Repository {
	t.Helper()

	db, err := storage.Open(context.Background(), ":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	return NewRepository(db)
}

func date(y int, m time.Month, d int) *dto.Date {
	v := dto.NewDate(y, m, d)
	return &v
}

func TestInsertCurrentJobClearsEndDate(t *testing.T) {
	ctx := context.Background()
	repo := newTestRepository(t)

	form := dto.ExperienceForm{Company: "Acme", Position: "Engineer", EndDate: "2024-01-31"}
	form.CurrentJob = true
	rec := form.Record("user_1")

	created, err := repo.Insert(ctx, rec)
	require.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, created.ID)

	list, err := repo.ListByOwner(ctx, "user_1")
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, created.ID, list[0].ID)
	assert.Equal(t, "user_1", list[0].Owner)
	assert.True(t, list[0].CurrentJob)
	assert.Nil(t, list[0].EndDate)
}

func TestInsertRejectsMissingRequiredFields(t *testing.T) {
	repo := newTestRepository(t)

	_, err := repo.Insert(context.Background(), dto.Experience{Owner: "user_1", Company: "  "})

	var verr *dto.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "company", verr.Field)
}

func TestListOrderPutsOngoingRolesFirst(t *testing.T) {
	ctx := context.Background()
	repo := newTestRepository(t)

	old, err := repo.Insert(ctx, dto.Experience{Owner: "u", Company: "Old", Position: "Dev",
		StartDate: date(2016, 1, 1), EndDate: date(2018, 6, 30)})
	require.NoError(t, err)
	recent, err := repo.Insert(ctx, dto.Experience{Owner: "u", Company: "Recent", Position: "Dev",
		StartDate: date(2018, 7, 1), EndDate: date(2021, 12, 31)})
	require.NoError(t, err)
	ongoing, err := repo.Insert(ctx, dto.Experience{Owner: "u", Company: "Now", Position: "Lead",
		StartDate: date(2022, 1, 1), CurrentJob: true})
	require.NoError(t, err)

	list, err := repo.ListByOwner(ctx, "u")
	require.NoError(t, err)
	require.Len(t, list, 3)

	assert.Equal(t, ongoing.ID, list[0].ID)
	assert.Equal(t, recent.ID, list[1].ID)
	assert.Equal(t, old.ID, list[2].ID)
	assert.Equal(t, "2021-12-31", list[1].EndDate.String())
}

func TestListIsScopedToOwner(t *testing.T) {
	ctx := context.Background()
	repo := newTestRepository(t)

	_, err := repo.Insert(ctx, dto.Experience{Owner: "alice", Company: "A", Position: "P"})
	require.NoError(t, err)
	_, err = repo.Insert(ctx, dto.Experience{Owner: "bob", Company: "B", Position: "P"})
	require.NoError(t, err)

	list, err := repo.ListByOwner(ctx, "alice")
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, "A", list[0].Company)

	empty, err := repo.ListByOwner(ctx, "carol")
	require.NoError(t, err)
	assert.NotNil(t, empty)
	assert.Empty(t, empty)
}

func TestUpdateKeepsIDAndOwner(t *testing.T) {
	ctx := context.Background()
	repo := newTestRepository(t)

	created, err := repo.Insert(ctx, dto.Experience{Owner: "u", Company: "Acme", Position: "Engineer",
		Location: "Berlin", StartDate: date(2020, 1, 1), EndDate: date(2021, 1, 1), Description: "old"})
	require.NoError(t, err)

	err = repo.Update(ctx, dto.Experience{ID: created.ID, Owner: "u", Company: "Acme GmbH", Position: "Staff Engineer",
		StartDate: date(2020, 2, 1), CurrentJob: true, EndDate: date(2023, 1, 1)})
	require.NoError(t, err)

	got, err := repo.GetByID(ctx, "u", created.ID)
	require.NoError(t, err)
	assert.Equal(t, created.ID, got.ID)
	assert.Equal(t, "u", got.Owner)
	assert.Equal(t, "Acme GmbH", got.Company)
	assert.Equal(t, "Staff Engineer", got.Position)
	assert.Equal(t, "", got.Location)
	assert.Equal(t, "", got.Description)
	assert.Equal(t, "2020-02-01", got.StartDate.String())
	assert.Nil(t, got.EndDate)
	assert.True(t, got.CurrentJob)
}

func TestUpdateForeignRecordIsNotFound(t *testing.T) {
	ctx := context.Background()
	repo := newTestRepository(t)

	created, err := repo.Insert(ctx, dto.Experience{Owner: "alice", Company: "A", Position: "P"})
	require.NoError(t, err)

	err = repo.Update(ctx, dto.Experience{ID: created.ID, Owner: "mallory", Company: "X", Position: "Y"})
	assert.ErrorIs(t, err, dto.ErrNotFound)

	got, err := repo.GetByID(ctx, "alice", created.ID)
	require.NoError(t, err)
	assert.Equal(t, "A", got.Company)
}

func TestDeleteRemovesOnlyThatRecord(t *testing.T) {
	ctx := context.Background()
	repo := newTestRepository(t)

	keep, err := repo.Insert(ctx, dto.Experience{Owner: "u", Company: "Keep", Position: "P"})
	require.NoError(t, err)
	drop, err := repo.Insert(ctx, dto.Experience{Owner: "u", Company: "Drop", Position: "P"})
	require.NoError(t, err)
	other, err := repo.Insert(ctx, dto.Experience{Owner: "v", Company: "Other", Position: "P"})
	require.NoError(t, err)

	assert.ErrorIs(t, repo.Delete(ctx, "v", drop.ID), dto.ErrNotFound)
	require.NoError(t, repo.Delete(ctx, "u", drop.ID))
	assert.ErrorIs(t, repo.Delete(ctx, "u", drop.ID), dto.ErrNotFound)

	list, err := repo.ListByOwner(ctx, "u")
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, keep.ID, list[0].ID)

	_, err = repo.GetByID(ctx, "v", other.ID)
	assert.NoError(t, err)

	records, owners, err := repo.Count(ctx)
	require.NoError(t, err)
	assert.EqualValues(t, 2, records)
	assert.EqualValues(t, 2, owners)
}
