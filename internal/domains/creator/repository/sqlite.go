package repository

import (
	"context"
	"database/sql"
	"fmt"

	"creatorhub-backend/internal/domains/creator/model"
	"creatorhub-backend/internal/shared/utils"
)

// sqliteRepository implements RepositoryInterface over the embedded store.
type sqliteRepository struct {
	db *sql.DB
}

// NewSQLiteRepository creates a new creator repository instance.
func NewSQLiteRepository(db *sql.DB) RepositoryInterface {
	return &sqliteRepository{db: db}
}

const creatorColumns = `
	id, name,
	COALESCE(channel_link, '') AS channel_link,
	COALESCE(niche, '')        AS niche,
	COALESCE(contact, '')      AS contact,
	COALESCE(notes, '')        AS notes,
	created_at, updated_at
`

func (r *sqliteRepository) Create(ctx context.Context, input *model.CreatorInput) (*model.Creator, error) {
	result, err := r.db.ExecContext(ctx, `
		INSERT INTO youtubers (name, channel_link, niche, contact, notes)
		VALUES (?, ?, ?, ?, ?)`,
		input.Name,
		utils.NullIfEmpty(input.ChannelLink),
		utils.NullIfEmpty(input.Niche),
		utils.NullIfEmpty(input.Contact),
		utils.NullIfEmpty(input.Notes),
	)
	if err != nil {
		return nil, fmt.Errorf("insert youtuber: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return nil, fmt.Errorf("youtuber insert id: %w", err)
	}
	return r.GetByID(ctx, id)
}

// GetByID returns (nil, nil) when the creator does not exist.
func (r *sqliteRepository) GetByID(ctx context.Context, id int64) (*model.Creator, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT `+creatorColumns+` FROM youtubers WHERE id = ?`, id)

	creator, err := scanCreator(row)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("select youtuber: %w", err)
	}
	return creator, nil
}

// List returns creators with per-creator video and payment aggregates,
// optionally narrowed by a name search and a niche filter, ordered by name.
func (r *sqliteRepository) List(ctx context.Context, filter model.CreatorFilter) ([]model.CreatorWithStats, error) {
	query := `
		SELECT y.id, y.name,
			COALESCE(y.channel_link, '') AS channel_link,
			COALESCE(y.niche, '')        AS niche,
			COALESCE(y.contact, '')      AS contact,
			COALESCE(y.notes, '')        AS notes,
			y.created_at, y.updated_at,
			COUNT(v.id) AS video_count,
			COALESCE(SUM(CASE WHEN v.payment_status = 'paid' THEN v.amount ELSE 0 END), 0) AS total_paid,
			COALESCE(SUM(CASE WHEN v.payment_status = 'pending' THEN v.amount ELSE 0 END), 0) AS total_pending
		FROM youtubers y
		LEFT JOIN videos v ON y.id = v.youtuber_id
		WHERE 1=1`
	args := []interface{}{}

	if filter.Search != "" {
		query += " AND y.name LIKE ?"
		args = append(args, "%"+filter.Search+"%")
	}
	if filter.Niche != "" {
		query += " AND y.niche = ?"
		args = append(args, filter.Niche)
	}

	query += " GROUP BY y.id ORDER BY y.name"

	if filter.Limit > 0 {
		query += " LIMIT ? OFFSET ?"
		args = append(args, filter.Limit, filter.Offset)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list youtubers: %w", err)
	}
	defer rows.Close()

	var creators []model.CreatorWithStats
	for rows.Next() {
		var (
			row                     model.CreatorWithStats
			createdAt, updatedAt    string
			totalPaid, totalPending float64
		)
		if err := rows.Scan(
			&row.ID, &row.Name, &row.ChannelLink, &row.Niche, &row.Contact, &row.Notes,
			&createdAt, &updatedAt,
			&row.VideoCount, &totalPaid, &totalPending,
		); err != nil {
			return nil, fmt.Errorf("scan youtuber row: %w", err)
		}
		row.CreatedAt = utils.ParseSQLTime(createdAt)
		row.UpdatedAt = utils.ParseSQLTime(updatedAt)
		row.TotalPaid = utils.DecimalFromFloat(totalPaid)
		row.TotalPending = utils.DecimalFromFloat(totalPending)
		creators = append(creators, row)
	}
	return creators, rows.Err()
}

// Niches returns the distinct non-empty niche labels for the filter dropdown.
func (r *sqliteRepository) Niches(ctx context.Context) ([]string, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT DISTINCT niche FROM youtubers WHERE niche IS NOT NULL AND niche != '' ORDER BY niche`)
	if err != nil {
		return nil, fmt.Errorf("list niches: %w", err)
	}
	defer rows.Close()

	var niches []string
	for rows.Next() {
		var niche string
		if err := rows.Scan(&niche); err != nil {
			return nil, fmt.Errorf("scan niche: %w", err)
		}
		niches = append(niches, niche)
	}
	return niches, rows.Err()
}

func (r *sqliteRepository) Update(ctx context.Context, id int64, input *model.CreatorInput) (*model.Creator, error) {
	result, err := r.db.ExecContext(ctx, `
		UPDATE youtubers
		SET name = ?, channel_link = ?, niche = ?, contact = ?, notes = ?,
			updated_at = CURRENT_TIMESTAMP
		WHERE id = ?`,
		input.Name,
		utils.NullIfEmpty(input.ChannelLink),
		utils.NullIfEmpty(input.Niche),
		utils.NullIfEmpty(input.Contact),
		utils.NullIfEmpty(input.Notes),
		id,
	)
	if err != nil {
		return nil, fmt.Errorf("update youtuber: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return nil, fmt.Errorf("update youtuber rows: %w", err)
	}
	if affected == 0 {
		return nil, nil
	}
	return r.GetByID(ctx, id)
}

func (r *sqliteRepository) Delete(ctx context.Context, id int64) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM youtubers WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("delete youtuber: %w", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("delete youtuber rows: %w", err)
	}
	if affected == 0 {
		return sql.ErrNoRows
	}
	return nil
}

// VideoCount backs the application-level delete guard.
func (r *sqliteRepository) VideoCount(ctx context.Context, id int64) (int, error) {
	var count int
	err := r.db.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM videos WHERE youtuber_id = ?`, id).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("count videos: %w", err)
	}
	return count, nil
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanCreator(row rowScanner) (*model.Creator, error) {
	var (
		creator              model.Creator
		createdAt, updatedAt string
	)
	if err := row.Scan(
		&creator.ID, &creator.Name, &creator.ChannelLink, &creator.Niche,
		&creator.Contact, &creator.Notes, &createdAt, &updatedAt,
	); err != nil {
		return nil, err
	}
	creator.CreatedAt = utils.ParseSQLTime(createdAt)
	creator.UpdatedAt = utils.ParseSQLTime(updatedAt)
	return &creator, nil
}
