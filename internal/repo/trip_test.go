package repo_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/501wxrit/TripDiary-PWA/internal/domain"
	"github.com/501wxrit/TripDiary-PWA/internal/repo"
	"github.com/501wxrit/TripDiary-PWA/testutil"
)

// newTestRepo opens a transaction against the test database and returns a
// TripRepo backed by it. The transaction rolls back when the test finishes,
// giving per-test isolation without cleanup SQL.
func newTestRepo(t *testing.T) repo.TripRepo {
	t.Helper()
	pool := testutil.NewPool(t)

	tx, err := pool.Begin(context.Background())
	require.NoError(t, err, "begin transaction")

	t.Cleanup(func() {
		_ = tx.Rollback(context.Background())
	})

	return repo.NewTripRepo(tx)
}

func tripFixture() domain.Trip {
	lat := 7.8804
	lng := 98.3923
	return domain.Trip{
		ID:       domain.NewID(),
		Name:     "Andaman Loop",
		Province: "Phuket",
		Entries: []domain.DiaryEntry{{
			ID:           domain.NewID(),
			CreatedAt:    "2024-05-01T08:00:00Z",
			Text:         "left the marina",
			Images:       []domain.ImageRef{{URL: "https://img.example.com/marina.jpg"}},
			LocationName: "Phuket",
			Lat:          &lat,
			Lng:          &lng,
		}},
		Vehicle: &domain.Vehicle{ID: domain.NewID(), Brand: "Toyota", Model: "Hilux"},
	}
}

func TestTripRepo_CreateAndGet(t *testing.T) {
	r := newTestRepo(t)
	ctx := context.Background()

	input := tripFixture()
	created, err := r.Create(ctx, input)
	require.NoError(t, err)
	assert.Equal(t, input.ID, created.ID)

	got, err := r.GetByID(ctx, input.ID)
	require.NoError(t, err)
	assert.Equal(t, input.Name, got.Name)
	assert.Equal(t, input.Province, got.Province)
	require.Len(t, got.Entries, 1)
	assert.Equal(t, "left the marina", got.Entries[0].Text)
	require.NotNil(t, got.Vehicle)
	assert.Equal(t, "Hilux", got.Vehicle.Model)
}

func TestTripRepo_Create_NilEntriesStoredAsEmpty(t *testing.T) {
	r := newTestRepo(t)
	ctx := context.Background()

	input := tripFixture()
	input.Entries = nil

	_, err := r.Create(ctx, input)
	require.NoError(t, err)

	got, err := r.GetByID(ctx, input.ID)
	require.NoError(t, err)
	assert.NotNil(t, got.Entries)
	assert.Empty(t, got.Entries)
}

func TestTripRepo_GetByID_NotFound(t *testing.T) {
	r := newTestRepo(t)

	_, err := r.GetByID(context.Background(), domain.NewID())

	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestTripRepo_List_NewestFirst(t *testing.T) {
	r := newTestRepo(t)
	ctx := context.Background()

	first := tripFixture()
	first.Name = "First Trip"
	second := tripFixture()
	second.Name = "Second Trip"

	_, err := r.Create(ctx, first)
	require.NoError(t, err)
	_, err = r.Create(ctx, second)
	require.NoError(t, err)

	trips, err := r.List(ctx)
	require.NoError(t, err)
	require.GreaterOrEqual(t, len(trips), 2)

	var names []string
	for _, tr := range trips {
		names = append(names, tr.Name)
	}
	assert.Contains(t, names, "First Trip")
	assert.Contains(t, names, "Second Trip")
}

func TestTripRepo_AppendEntry(t *testing.T) {
	r := newTestRepo(t)
	ctx := context.Background()

	input := tripFixture()
	_, err := r.Create(ctx, input)
	require.NoError(t, err)

	entry := domain.DiaryEntry{
		ID:        domain.NewID(),
		CreatedAt: "2024-05-02T09:30:00Z",
		Text:      "reached the island",
	}
	require.NoError(t, r.AppendEntry(ctx, input.ID, entry))

	got, err := r.GetByID(ctx, input.ID)
	require.NoError(t, err)
	require.Len(t, got.Entries, 2)
	assert.Equal(t, "reached the island", got.Entries[1].Text)
}

func TestTripRepo_AppendEntry_EmptyEntries(t *testing.T) {
	r := newTestRepo(t)
	ctx := context.Background()

	input := tripFixture()
	input.Entries = nil
	_, err := r.Create(ctx, input)
	require.NoError(t, err)

	entry := domain.DiaryEntry{ID: domain.NewID(), CreatedAt: "2024-05-02T09:30:00Z", Text: "first"}
	require.NoError(t, r.AppendEntry(ctx, input.ID, entry))

	got, err := r.GetByID(ctx, input.ID)
	require.NoError(t, err)
	require.Len(t, got.Entries, 1)
}

func TestTripRepo_AppendEntry_NotFound(t *testing.T) {
	r := newTestRepo(t)

	err := r.AppendEntry(context.Background(), domain.NewID(), domain.DiaryEntry{ID: domain.NewID(), Text: "x"})

	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestTripRepo_Delete(t *testing.T) {
	r := newTestRepo(t)
	ctx := context.Background()

	input := tripFixture()
	_, err := r.Create(ctx, input)
	require.NoError(t, err)

	require.NoError(t, r.Delete(ctx, input.ID))

	_, err = r.GetByID(ctx, input.ID)
	assert.ErrorIs(t, err, domain.ErrNotFound, "trip should be gone after delete")
}

func TestTripRepo_Delete_NotFound(t *testing.T) {
	r := newTestRepo(t)

	err := r.Delete(context.Background(), domain.NewID())

	assert.ErrorIs(t, err, domain.ErrNotFound)
}
