package repository

import (
	"context"
	"database/sql"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"creatorhub-backend/internal/domains/creator/model"
	"creatorhub-backend/internal/infrastructure/database"
)

func newTestRepository(t *testing.T) (RepositoryInterface, *sql.DB) {
	t.Helper()
	db, err := database.Open(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	require.NoError(t, database.NewMigrator(db.DB).Run(context.Background(), database.Migrations()))
	return NewSQLiteRepository(db.DB), db.DB
}

func TestCreatorRepository_CreateAndGet(t *testing.T) {
	repo, _ := newTestRepository(t)
	ctx := context.Background()

	created, err := repo.Create(ctx, &model.CreatorInput{
		Name:        "Tech Pro",
		ChannelLink: "https://youtube.com/@techpro",
		Niche:       "Tech",
		Contact:     "tech@example.com",
		Notes:       "Posts weekly",
	})
	require.NoError(t, err)
	require.NotNil(t, created)
	assert.Positive(t, created.ID)
	assert.Equal(t, "Tech Pro", created.Name)
	assert.Equal(t, "https://youtube.com/@techpro", created.ChannelLink)
	assert.False(t, created.CreatedAt.IsZero())

	got, err := repo.GetByID(ctx, created.ID)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, created.ID, got.ID)
	assert.Equal(t, "tech@example.com", got.Contact)
}

func TestCreatorRepository_GetByID_Missing(t *testing.T) {
	repo, _ := newTestRepository(t)

	got, err := repo.GetByID(context.Background(), 999)
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestCreatorRepository_OptionalFieldsStoredAsNull(t *testing.T) {
	repo, db := newTestRepository(t)
	ctx := context.Background()

	created, err := repo.Create(ctx, &model.CreatorInput{Name: "Solo"})
	require.NoError(t, err)

	var nullNiches int
	require.NoError(t, db.QueryRow(
		`SELECT COUNT(*) FROM youtubers WHERE id = ? AND niche IS NULL AND contact IS NULL`,
		created.ID).Scan(&nullNiches))
	assert.Equal(t, 1, nullNiches)

	// Reads surface NULLs as empty strings.
	got, err := repo.GetByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Empty(t, got.Niche)
	assert.Empty(t, got.Contact)
}

func TestCreatorRepository_ListWithStats(t *testing.T) {
	repo, db := newTestRepository(t)
	ctx := context.Background()

	alpha, err := repo.Create(ctx, &model.CreatorInput{Name: "Alpha", Niche: "Tech"})
	require.NoError(t, err)
	_, err = repo.Create(ctx, &model.CreatorInput{Name: "Beta", Niche: "Gaming"})
	require.NoError(t, err)

	addVideo := func(status, amount string) {
		_, err := db.Exec(
			`INSERT INTO videos (title, youtuber_id, payment_status, amount) VALUES ('v', ?, ?, ?)`,
			alpha.ID, status, amount)
		require.NoError(t, err)
	}
	addVideo("paid", "100.50")
	addVideo("paid", "49.50")
	addVideo("pending", "25.00")

	creators, err := repo.List(ctx, model.CreatorFilter{})
	require.NoError(t, err)
	require.Len(t, creators, 2)

	// Ordered by name; aggregates only count the creator's own videos.
	assert.Equal(t, "Alpha", creators[0].Name)
	assert.Equal(t, 3, creators[0].VideoCount)
	assert.Equal(t, "150.00", creators[0].TotalPaid.StringFixed(2))
	assert.Equal(t, "25.00", creators[0].TotalPending.StringFixed(2))

	assert.Equal(t, "Beta", creators[1].Name)
	assert.Zero(t, creators[1].VideoCount)
	assert.Equal(t, "0.00", creators[1].TotalPaid.StringFixed(2))
}

func TestCreatorRepository_ListFilters(t *testing.T) {
	repo, _ := newTestRepository(t)
	ctx := context.Background()

	for _, c := range []model.CreatorInput{
		{Name: "Tech Pro", Niche: "Tech"},
		{Name: "Tech Casual", Niche: "Tech"},
		{Name: "Game On", Niche: "Gaming"},
	} {
		_, err := repo.Create(ctx, &c)
		require.NoError(t, err)
	}

	bySearch, err := repo.List(ctx, model.CreatorFilter{Search: "tech"})
	require.NoError(t, err)
	assert.Len(t, bySearch, 2)

	byNiche, err := repo.List(ctx, model.CreatorFilter{Niche: "Gaming"})
	require.NoError(t, err)
	require.Len(t, byNiche, 1)
	assert.Equal(t, "Game On", byNiche[0].Name)

	paged, err := repo.List(ctx, model.CreatorFilter{Limit: 2, Offset: 2})
	require.NoError(t, err)
	assert.Len(t, paged, 1)
}

func TestCreatorRepository_Niches(t *testing.T) {
	repo, _ := newTestRepository(t)
	ctx := context.Background()

	for _, c := range []model.CreatorInput{
		{Name: "A", Niche: "Tech"},
		{Name: "B", Niche: "Tech"},
		{Name: "C", Niche: "Gaming"},
		{Name: "D"},
	} {
		_, err := repo.Create(ctx, &c)
		require.NoError(t, err)
	}

	niches, err := repo.Niches(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"Gaming", "Tech"}, niches)
}

func TestCreatorRepository_Update(t *testing.T) {
	repo, _ := newTestRepository(t)
	ctx := context.Background()

	created, err := repo.Create(ctx, &model.CreatorInput{Name: "Before", Contact: "old@example.com"})
	require.NoError(t, err)

	updated, err := repo.Update(ctx, created.ID, &model.CreatorInput{Name: "After"})
	require.NoError(t, err)
	require.NotNil(t, updated)
	assert.Equal(t, "After", updated.Name)
	assert.Empty(t, updated.Contact)

	missing, err := repo.Update(ctx, 999, &model.CreatorInput{Name: "Ghost"})
	require.NoError(t, err)
	assert.Nil(t, missing)
}

func TestCreatorRepository_DeleteAndVideoCount(t *testing.T) {
	repo, db := newTestRepository(t)
	ctx := context.Background()

	created, err := repo.Create(ctx, &model.CreatorInput{Name: "Tech Pro"})
	require.NoError(t, err)

	count, err := repo.VideoCount(ctx, created.ID)
	require.NoError(t, err)
	assert.Zero(t, count)

	_, err = db.Exec(`INSERT INTO videos (title, youtuber_id) VALUES ('v', ?)`, created.ID)
	require.NoError(t, err)

	count, err = repo.VideoCount(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, count)

	require.NoError(t, repo.Delete(ctx, created.ID))
	assert.ErrorIs(t, repo.Delete(ctx, created.ID), sql.ErrNoRows)
}
