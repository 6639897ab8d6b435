package repository

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"creatorhub-backend/internal/domains/video"
	"creatorhub-backend/internal/domains/video/model"
	"creatorhub-backend/internal/shared/utils"
)

// sqliteRepository implements RepositoryInterface over the embedded store.
type sqliteRepository struct {
	db *sql.DB
}

// NewSQLiteRepository creates a new video repository instance.
func NewSQLiteRepository(db *sql.DB) RepositoryInterface {
	return &sqliteRepository{db: db}
}

const videoSelect = `
	SELECT v.id, v.title, v.youtuber_id, y.name AS youtuber_name,
		v.date_uploaded,
		v.payment_status,
		COALESCE(v.amount, 0)        AS amount,
		COALESCE(v.video_link, '')   AS video_link,
		COALESCE(v.description, '')  AS description,
		v.created_at, v.updated_at
	FROM videos v
	JOIN youtubers y ON v.youtuber_id = y.id
`

func (r *sqliteRepository) Create(ctx context.Context, input *model.VideoInput) (*model.Video, error) {
	result, err := r.db.ExecContext(ctx, `
		INSERT INTO videos (title, youtuber_id, date_uploaded, payment_status, amount, video_link, description)
		VALUES (?, ?, ?, ?, ?, ?, ?)`,
		input.Title,
		input.YoutuberID,
		utils.NullDate(input.DateUploaded),
		input.PaymentStatus,
		input.Amount.String(),
		utils.NullIfEmpty(input.VideoLink),
		utils.NullIfEmpty(input.Description),
	)
	if err != nil {
		if isForeignKeyError(err) {
			return nil, video.ErrUnknownYoutuber
		}
		return nil, fmt.Errorf("insert video: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return nil, fmt.Errorf("video insert id: %w", err)
	}
	return r.GetByID(ctx, id)
}

// GetByID returns (nil, nil) when the video does not exist.
func (r *sqliteRepository) GetByID(ctx context.Context, id int64) (*model.Video, error) {
	row := r.db.QueryRowContext(ctx, videoSelect+` WHERE v.id = ?`, id)

	found, err := scanVideo(row)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("select video: %w", err)
	}
	return found, nil
}

// List returns videos joined with their creator's name, optionally filtered
// by payment status and creator, newest upload first.
func (r *sqliteRepository) List(ctx context.Context, filter model.VideoFilter) ([]model.Video, error) {
	query := videoSelect + ` WHERE 1=1`
	args := []interface{}{}

	if filter.Status != "" {
		query += " AND v.payment_status = ?"
		args = append(args, filter.Status)
	}
	if filter.Youtuber > 0 {
		query += " AND v.youtuber_id = ?"
		args = append(args, filter.Youtuber)
	}

	query += " ORDER BY v.date_uploaded DESC"

	if filter.Limit > 0 {
		query += " LIMIT ? OFFSET ?"
		args = append(args, filter.Limit, filter.Offset)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list videos: %w", err)
	}
	defer rows.Close()

	var videos []model.Video
	for rows.Next() {
		found, err := scanVideo(rows)
		if err != nil {
			return nil, fmt.Errorf("scan video row: %w", err)
		}
		videos = append(videos, *found)
	}
	return videos, rows.Err()
}

func (r *sqliteRepository) Update(ctx context.Context, id int64, input *model.VideoInput) (*model.Video, error) {
	result, err := r.db.ExecContext(ctx, `
		UPDATE videos
		SET title = ?, youtuber_id = ?, date_uploaded = ?, payment_status = ?,
			amount = ?, video_link = ?, description = ?,
			updated_at = CURRENT_TIMESTAMP
		WHERE id = ?`,
		input.Title,
		input.YoutuberID,
		utils.NullDate(input.DateUploaded),
		input.PaymentStatus,
		input.Amount.String(),
		utils.NullIfEmpty(input.VideoLink),
		utils.NullIfEmpty(input.Description),
		id,
	)
	if err != nil {
		if isForeignKeyError(err) {
			return nil, video.ErrUnknownYoutuber
		}
		return nil, fmt.Errorf("update video: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return nil, fmt.Errorf("update video rows: %w", err)
	}
	if affected == 0 {
		return nil, nil
	}
	return r.GetByID(ctx, id)
}

func (r *sqliteRepository) Delete(ctx context.Context, id int64) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM videos WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("delete video: %w", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("delete video rows: %w", err)
	}
	if affected == 0 {
		return sql.ErrNoRows
	}
	return nil
}

// MarkPaid flips the payment status to paid and returns the updated row.
func (r *sqliteRepository) MarkPaid(ctx context.Context, id int64) (*model.Video, error) {
	result, err := r.db.ExecContext(ctx,
		`UPDATE videos SET payment_status = 'paid', updated_at = CURRENT_TIMESTAMP WHERE id = ?`, id)
	if err != nil {
		return nil, fmt.Errorf("mark video paid: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return nil, fmt.Errorf("mark paid rows: %w", err)
	}
	if affected == 0 {
		return nil, nil
	}
	return r.GetByID(ctx, id)
}

func isForeignKeyError(err error) bool {
	return strings.Contains(strings.ToUpper(err.Error()), "FOREIGN KEY")
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanVideo(row rowScanner) (*model.Video, error) {
	var (
		found                model.Video
		dateUploaded         sql.NullString
		amount               float64
		createdAt, updatedAt string
	)
	if err := row.Scan(
		&found.ID, &found.Title, &found.YoutuberID, &found.YoutuberName,
		&dateUploaded, &found.PaymentStatus, &amount,
		&found.VideoLink, &found.Description,
		&createdAt, &updatedAt,
	); err != nil {
		return nil, err
	}
	found.DateUploaded = utils.ParseSQLDate(dateUploaded)
	found.Amount = utils.DecimalFromFloat(amount)
	found.CreatedAt = utils.ParseSQLTime(createdAt)
	found.UpdatedAt = utils.ParseSQLTime(updatedAt)
	return &found, nil
}
