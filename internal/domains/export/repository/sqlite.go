package repository

import (
	"context"
	"database/sql"
	"fmt"
)

// Table is a column-ordered dump of a query, ready for tabular export.
type Table struct {
	Columns []string
	Rows    [][]string
}

// RepositoryInterface provides the raw table dumps behind the exports.
type RepositoryInterface interface {
	Youtubers(ctx context.Context) (*Table, error)
	Videos(ctx context.Context) (*Table, error)
	Payments(ctx context.Context) (*Table, error)
}

type sqliteRepository struct {
	db *sql.DB
}

func NewSQLiteRepository(db *sql.DB) RepositoryInterface {
	return &sqliteRepository{db: db}
}

func (r *sqliteRepository) Youtubers(ctx context.Context) (*Table, error) {
	return r.dump(ctx, `SELECT * FROM youtubers ORDER BY id`)
}

func (r *sqliteRepository) Videos(ctx context.Context) (*Table, error) {
	return r.dump(ctx, `
		SELECT v.*, y.name AS youtuber_name
		FROM videos v
		JOIN youtubers y ON v.youtuber_id = y.id
		ORDER BY v.id`)
}

func (r *sqliteRepository) Payments(ctx context.Context) (*Table, error) {
	return r.dump(ctx, `
		SELECT y.name AS youtuber_name, COALESCE(y.contact, '') AS contact,
			COUNT(v.id) AS total_videos,
			COALESCE(SUM(CASE WHEN v.payment_status = 'paid' THEN v.amount ELSE 0 END), 0) AS total_paid,
			COALESCE(SUM(CASE WHEN v.payment_status = 'pending' THEN v.amount ELSE 0 END), 0) AS total_pending
		FROM youtubers y
		LEFT JOIN videos v ON y.id = v.youtuber_id
		GROUP BY y.id`)
}

// dump runs a query and renders every value as a string, NULLs as empty.
// Column order follows the query so exports stay stable.
func (r *sqliteRepository) dump(ctx context.Context, query string) (*Table, error) {
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("export query: %w", err)
	}
	defer rows.Close()

	columns, err := rows.Columns()
	if err != nil {
		return nil, fmt.Errorf("export columns: %w", err)
	}

	table := &Table{Columns: columns}
	for rows.Next() {
		values := make([]sql.NullString, len(columns))
		dest := make([]interface{}, len(columns))
		for i := range values {
			dest[i] = &values[i]
		}
		if err := rows.Scan(dest...); err != nil {
			return nil, fmt.Errorf("export scan: %w", err)
		}

		record := make([]string, len(columns))
		for i, value := range values {
			if value.Valid {
				record[i] = value.String
			}
		}
		table.Rows = append(table.Rows, record)
	}
	return table, rows.Err()
}
