package repository

import (
	"context"
	"database/sql"
	"path/filepath"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"creatorhub-backend/internal/domains/video"
	"creatorhub-backend/internal/domains/video/model"
	"creatorhub-backend/internal/infrastructure/database"
)

func newTestRepository(t *testing.T) (RepositoryInterface, int64) {
	t.Helper()
	db, err := database.Open(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	require.NoError(t, database.NewMigrator(db.DB).Run(context.Background(), database.Migrations()))

	result, err := db.DB.Exec(`INSERT INTO youtubers (name) VALUES ('Tech Pro')`)
	require.NoError(t, err)
	youtuberID, err := result.LastInsertId()
	require.NoError(t, err)

	return NewSQLiteRepository(db.DB), youtuberID
}

func date(t *testing.T, value string) *time.Time {
	t.Helper()
	parsed, err := time.Parse("2006-01-02", value)
	require.NoError(t, err)
	return &parsed
}

func TestVideoRepository_CreateAndGet(t *testing.T) {
	repo, youtuberID := newTestRepository(t)
	ctx := context.Background()

	created, err := repo.Create(ctx, &model.VideoInput{
		Title:         "Review: Widget 3000",
		YoutuberID:    youtuberID,
		DateUploaded:  date(t, "2024-01-15"),
		PaymentStatus: "paid",
		Amount:        decimal.RequireFromString("150.00"),
		VideoLink:     "https://youtu.be/abc123",
		Description:   "Sponsored",
	})
	require.NoError(t, err)
	require.NotNil(t, created)
	assert.Positive(t, created.ID)
	assert.Equal(t, "Tech Pro", created.YoutuberName)
	require.NotNil(t, created.DateUploaded)
	assert.Equal(t, "2024-01-15", created.DateUploaded.Format("2006-01-02"))
	assert.Equal(t, "150.00", created.Amount.StringFixed(2))

	got, err := repo.GetByID(ctx, created.ID)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "paid", got.PaymentStatus)
}

func TestVideoRepository_Create_UnknownYoutuber(t *testing.T) {
	repo, _ := newTestRepository(t)

	_, err := repo.Create(context.Background(), &model.VideoInput{
		Title:         "Orphan",
		YoutuberID:    999,
		PaymentStatus: model.DefaultPaymentStatus,
	})
	assert.ErrorIs(t, err, video.ErrUnknownYoutuber)
}

func TestVideoRepository_GetByID_Missing(t *testing.T) {
	repo, _ := newTestRepository(t)

	got, err := repo.GetByID(context.Background(), 999)
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestVideoRepository_ListOrderAndFilters(t *testing.T) {
	repo, youtuberID := newTestRepository(t)
	ctx := context.Background()

	seed := []struct {
		title  string
		day    string
		status string
	}{
		{"oldest", "2024-01-01", "paid"},
		{"newest", "2024-03-01", "pending"},
		{"middle", "2024-02-01", "pending"},
	}
	for _, s := range seed {
		_, err := repo.Create(ctx, &model.VideoInput{
			Title:         s.title,
			YoutuberID:    youtuberID,
			DateUploaded:  date(t, s.day),
			PaymentStatus: s.status,
		})
		require.NoError(t, err)
	}

	all, err := repo.List(ctx, model.VideoFilter{})
	require.NoError(t, err)
	require.Len(t, all, 3)
	assert.Equal(t, "newest", all[0].Title)
	assert.Equal(t, "middle", all[1].Title)
	assert.Equal(t, "oldest", all[2].Title)

	pending, err := repo.List(ctx, model.VideoFilter{Status: "pending"})
	require.NoError(t, err)
	assert.Len(t, pending, 2)

	byCreator, err := repo.List(ctx, model.VideoFilter{Youtuber: youtuberID + 1})
	require.NoError(t, err)
	assert.Empty(t, byCreator)

	paged, err := repo.List(ctx, model.VideoFilter{Limit: 2, Offset: 2})
	require.NoError(t, err)
	assert.Len(t, paged, 1)
}

func TestVideoRepository_Update(t *testing.T) {
	repo, youtuberID := newTestRepository(t)
	ctx := context.Background()

	created, err := repo.Create(ctx, &model.VideoInput{
		Title:         "Before",
		YoutuberID:    youtuberID,
		PaymentStatus: "pending",
		Amount:        decimal.RequireFromString("10.00"),
	})
	require.NoError(t, err)

	updated, err := repo.Update(ctx, created.ID, &model.VideoInput{
		Title:         "After",
		YoutuberID:    youtuberID,
		PaymentStatus: "cancelled",
		Amount:        decimal.RequireFromString("25.50"),
	})
	require.NoError(t, err)
	require.NotNil(t, updated)
	assert.Equal(t, "After", updated.Title)
	assert.Equal(t, "cancelled", updated.PaymentStatus)
	assert.Equal(t, "25.50", updated.Amount.StringFixed(2))
	assert.Nil(t, updated.DateUploaded)

	missing, err := repo.Update(ctx, 999, &model.VideoInput{
		Title: "Ghost", YoutuberID: youtuberID, PaymentStatus: "pending",
	})
	require.NoError(t, err)
	assert.Nil(t, missing)

	_, err = repo.Update(ctx, created.ID, &model.VideoInput{
		Title: "Reassigned", YoutuberID: 999, PaymentStatus: "pending",
	})
	assert.ErrorIs(t, err, video.ErrUnknownYoutuber)
}

func TestVideoRepository_MarkPaid(t *testing.T) {
	repo, youtuberID := newTestRepository(t)
	ctx := context.Background()

	created, err := repo.Create(ctx, &model.VideoInput{
		Title:         "Review",
		YoutuberID:    youtuberID,
		PaymentStatus: "pending",
	})
	require.NoError(t, err)

	marked, err := repo.MarkPaid(ctx, created.ID)
	require.NoError(t, err)
	require.NotNil(t, marked)
	assert.Equal(t, "paid", marked.PaymentStatus)

	// Already paid stays paid.
	again, err := repo.MarkPaid(ctx, created.ID)
	require.NoError(t, err)
	require.NotNil(t, again)
	assert.Equal(t, "paid", again.PaymentStatus)

	missing, err := repo.MarkPaid(ctx, 999)
	require.NoError(t, err)
	assert.Nil(t, missing)
}

func TestVideoRepository_Delete(t *testing.T) {
	repo, youtuberID := newTestRepository(t)
	ctx := context.Background()

	created, err := repo.Create(ctx, &model.VideoInput{
		Title:         "Review",
		YoutuberID:    youtuberID,
		PaymentStatus: "pending",
	})
	require.NoError(t, err)

	require.NoError(t, repo.Delete(ctx, created.ID))
	assert.ErrorIs(t, repo.Delete(ctx, created.ID), sql.ErrNoRows)
}
