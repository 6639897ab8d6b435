package service

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"creatorhub-backend/internal/domains/video"
	"creatorhub-backend/internal/domains/video/model"
	"creatorhub-backend/internal/domains/video/repository"
	"creatorhub-backend/internal/infrastructure/database"
	"creatorhub-backend/internal/validate"
)

func newTestService(t *testing.T) (ServiceInterface, int64) {
	t.Helper()
	db, err := database.Open(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	require.NoError(t, database.NewMigrator(db.DB).Run(context.Background(), database.Migrations()))

	result, err := db.DB.Exec(`INSERT INTO youtubers (name) VALUES ('Tech Pro')`)
	require.NoError(t, err)
	youtuberID, err := result.LastInsertId()
	require.NoError(t, err)

	return NewVideoService(repository.NewSQLiteRepository(db.DB)), youtuberID
}

func TestVideoService_Create(t *testing.T) {
	svc, youtuberID := newTestService(t)

	created, err := svc.Create(context.Background(), model.VideoForm{
		Title:      "Review",
		YoutuberID: "1",
		Amount:     "99.999",
	})
	require.NoError(t, err)
	assert.Equal(t, youtuberID, created.YoutuberID)
	assert.Equal(t, model.DefaultPaymentStatus, created.PaymentStatus)
	assert.Equal(t, "100.00", created.Amount.StringFixed(2))
}

func TestVideoService_Create_UnknownYoutuber(t *testing.T) {
	svc, _ := newTestService(t)

	_, err := svc.Create(context.Background(), model.VideoForm{
		Title:      "Orphan",
		YoutuberID: "999",
	})
	assert.ErrorIs(t, err, video.ErrUnknownYoutuber)
}

func TestVideoService_Create_ValidationError(t *testing.T) {
	svc, _ := newTestService(t)

	_, err := svc.Create(context.Background(), model.VideoForm{
		Title:      "Review",
		YoutuberID: "abc",
	})
	verr, ok := validate.AsError(err)
	require.True(t, ok)
	assert.Equal(t, validate.KindInvalidReference, verr.Kind)
}

func TestVideoService_MarkPaid(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	created, err := svc.Create(ctx, model.VideoForm{
		Title:      "Review",
		YoutuberID: "1",
		Amount:     "150.00",
	})
	require.NoError(t, err)

	marked, err := svc.MarkPaid(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, created.ID, marked.ID)
	assert.Equal(t, "Review", marked.Title)
	assert.Equal(t, "150.00", marked.Amount.StringFixed(2))

	_, err = svc.MarkPaid(ctx, 999)
	assert.ErrorIs(t, err, video.ErrVideoNotFound)
}

func TestVideoService_GetUpdateDelete_NotFound(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	_, err := svc.Get(ctx, 999)
	assert.ErrorIs(t, err, video.ErrVideoNotFound)

	_, err = svc.Update(ctx, 999, model.VideoForm{Title: "Ghost", YoutuberID: "1"})
	assert.ErrorIs(t, err, video.ErrVideoNotFound)

	assert.ErrorIs(t, svc.Delete(ctx, 999), video.ErrVideoNotFound)
}
