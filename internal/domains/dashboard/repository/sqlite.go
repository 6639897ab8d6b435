package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/rs/zerolog/log"

	"creatorhub-backend/internal/domains/dashboard/model"
	"creatorhub-backend/internal/shared/utils"
	"creatorhub-backend/pkg/cache"
)

const (
	statsCacheKey = "dashboard:stats"
	statsCacheTTL = 60 * time.Second
)

// RepositoryInterface is the dashboard read-model contract. Everything here
// is a pure consumer of data the write paths already validated.
type RepositoryInterface interface {
	Stats(ctx context.Context) (*model.Stats, error)
	RecentVideos(ctx context.Context, limit int) ([]model.RecentVideo, error)
	StatusBreakdown(ctx context.Context) ([]model.StatusBreakdown, error)
	MonthlyTrends(ctx context.Context, limit int) ([]model.MonthlyTrend, error)
	ChartTrends(ctx context.Context, limit int) ([]model.ChartTrend, error)
	PaymentSummary(ctx context.Context) ([]model.PaymentSummary, error)
}

type sqliteRepository struct {
	db    *sql.DB
	cache cache.Cache
}

// NewSQLiteRepository creates a dashboard repository. The cache softens the
// cost of the headline stats; entries expire after a minute rather than
// being invalidated on writes, so the numbers may trail by up to that much.
func NewSQLiteRepository(db *sql.DB, c cache.Cache) RepositoryInterface {
	return &sqliteRepository{db: db, cache: c}
}

func (r *sqliteRepository) Stats(ctx context.Context) (*model.Stats, error) {
	var cached model.Stats
	if found, err := r.cache.Get(ctx, statsCacheKey, &cached); err == nil && found {
		return &cached, nil
	} else if err != nil {
		log.Warn().Err(err).Msg("Stats cache read failed")
	}

	var stats model.Stats
	if err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM youtubers`).Scan(&stats.TotalYoutubers); err != nil {
		return nil, fmt.Errorf("count youtubers: %w", err)
	}
	if err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM videos`).Scan(&stats.TotalVideos); err != nil {
		return nil, fmt.Errorf("count videos: %w", err)
	}

	var paid, pending float64
	if err := r.db.QueryRowContext(ctx,
		`SELECT COALESCE(SUM(amount), 0) FROM videos WHERE payment_status = 'paid'`).Scan(&paid); err != nil {
		return nil, fmt.Errorf("sum paid: %w", err)
	}
	if err := r.db.QueryRowContext(ctx,
		`SELECT COALESCE(SUM(amount), 0) FROM videos WHERE payment_status = 'pending'`).Scan(&pending); err != nil {
		return nil, fmt.Errorf("sum pending: %w", err)
	}

	stats.TotalPaid = utils.DecimalFromFloat(paid)
	stats.PendingPayments = utils.DecimalFromFloat(pending)
	stats.TotalAmount = stats.TotalPaid.Add(stats.PendingPayments)

	if err := r.cache.Set(ctx, statsCacheKey, stats, statsCacheTTL); err != nil {
		log.Warn().Err(err).Msg("Stats cache write failed")
	}
	return &stats, nil
}

func (r *sqliteRepository) RecentVideos(ctx context.Context, limit int) ([]model.RecentVideo, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT v.id, v.title, y.name AS youtuber_name,
			v.date_uploaded, v.payment_status,
			COALESCE(v.amount, 0) AS amount,
			v.created_at
		FROM videos v
		JOIN youtubers y ON v.youtuber_id = y.id
		ORDER BY v.created_at DESC
		LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("recent videos: %w", err)
	}
	defer rows.Close()

	var videos []model.RecentVideo
	for rows.Next() {
		var (
			row          model.RecentVideo
			dateUploaded sql.NullString
			amount       float64
			createdAt    string
		)
		if err := rows.Scan(&row.ID, &row.Title, &row.YoutuberName,
			&dateUploaded, &row.PaymentStatus, &amount, &createdAt); err != nil {
			return nil, fmt.Errorf("scan recent video: %w", err)
		}
		row.DateUploaded = utils.ParseSQLDate(dateUploaded)
		row.Amount = utils.DecimalFromFloat(amount)
		row.CreatedAt = utils.ParseSQLTime(createdAt)
		videos = append(videos, row)
	}
	return videos, rows.Err()
}

func (r *sqliteRepository) StatusBreakdown(ctx context.Context) ([]model.StatusBreakdown, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT payment_status, COUNT(*) AS count, COALESCE(SUM(amount), 0) AS total
		FROM videos
		GROUP BY payment_status`)
	if err != nil {
		return nil, fmt.Errorf("status breakdown: %w", err)
	}
	defer rows.Close()

	var breakdown []model.StatusBreakdown
	for rows.Next() {
		var (
			row   model.StatusBreakdown
			total float64
		)
		if err := rows.Scan(&row.PaymentStatus, &row.Count, &total); err != nil {
			return nil, fmt.Errorf("scan status breakdown: %w", err)
		}
		row.Total = utils.DecimalFromFloat(total)
		breakdown = append(breakdown, row)
	}
	return breakdown, rows.Err()
}

// MonthlyTrends buckets uploads by calendar month, newest first.
func (r *sqliteRepository) MonthlyTrends(ctx context.Context, limit int) ([]model.MonthlyTrend, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT strftime('%Y-%m', date_uploaded) AS month,
			COUNT(*) AS video_count,
			COALESCE(SUM(amount), 0) AS total_amount,
			COALESCE(SUM(CASE WHEN payment_status = 'paid' THEN amount ELSE 0 END), 0) AS paid_amount
		FROM videos
		WHERE date_uploaded IS NOT NULL
		GROUP BY strftime('%Y-%m', date_uploaded)
		ORDER BY month DESC
		LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("monthly trends: %w", err)
	}
	defer rows.Close()

	var trends []model.MonthlyTrend
	for rows.Next() {
		var (
			row               model.MonthlyTrend
			totalAmount, paid float64
		)
		if err := rows.Scan(&row.Month, &row.VideoCount, &totalAmount, &paid); err != nil {
			return nil, fmt.Errorf("scan monthly trend: %w", err)
		}
		row.TotalAmount = utils.DecimalFromFloat(totalAmount)
		row.PaidAmount = utils.DecimalFromFloat(paid)
		trends = append(trends, row)
	}
	return trends, rows.Err()
}

// ChartTrends is the paid-vs-pending series, oldest first. The limit applies
// to the ascending series, so once more than limit months hold data this
// returns the earliest ones, not the most recent. Legacy behavior, kept.
func (r *sqliteRepository) ChartTrends(ctx context.Context, limit int) ([]model.ChartTrend, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT strftime('%Y-%m', date_uploaded) AS month,
			COALESCE(SUM(CASE WHEN payment_status = 'paid' THEN amount ELSE 0 END), 0) AS paid,
			COALESCE(SUM(CASE WHEN payment_status = 'pending' THEN amount ELSE 0 END), 0) AS pending
		FROM videos
		WHERE date_uploaded IS NOT NULL
		GROUP BY strftime('%Y-%m', date_uploaded)
		ORDER BY month
		LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("chart trends: %w", err)
	}
	defer rows.Close()

	var trends []model.ChartTrend
	for rows.Next() {
		var (
			row           model.ChartTrend
			paid, pending float64
		)
		if err := rows.Scan(&row.Month, &paid, &pending); err != nil {
			return nil, fmt.Errorf("scan chart trend: %w", err)
		}
		row.Paid = utils.DecimalFromFloat(paid)
		row.Pending = utils.DecimalFromFloat(pending)
		trends = append(trends, row)
	}
	return trends, rows.Err()
}

// PaymentSummary aggregates per creator, restricted to creators that have at
// least one video, most owed first.
func (r *sqliteRepository) PaymentSummary(ctx context.Context) ([]model.PaymentSummary, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT y.name, COALESCE(y.contact, '') AS contact,
			COUNT(v.id) AS total_videos,
			COALESCE(SUM(CASE WHEN v.payment_status = 'paid' THEN v.amount ELSE 0 END), 0) AS total_paid,
			COALESCE(SUM(CASE WHEN v.payment_status = 'pending' THEN v.amount ELSE 0 END), 0) AS total_pending,
			COALESCE(SUM(v.amount), 0) AS total_amount
		FROM youtubers y
		LEFT JOIN videos v ON y.id = v.youtuber_id
		GROUP BY y.id, y.name, y.contact
		HAVING total_videos > 0
		ORDER BY total_pending DESC, total_paid DESC`)
	if err != nil {
		return nil, fmt.Errorf("payment summary: %w", err)
	}
	defer rows.Close()

	var summary []model.PaymentSummary
	for rows.Next() {
		var (
			row                  model.PaymentSummary
			paid, pending, total float64
		)
		if err := rows.Scan(&row.Name, &row.Contact, &row.TotalVideos, &paid, &pending, &total); err != nil {
			return nil, fmt.Errorf("scan payment summary: %w", err)
		}
		row.TotalPaid = utils.DecimalFromFloat(paid)
		row.TotalPending = utils.DecimalFromFloat(pending)
		row.TotalAmount = utils.DecimalFromFloat(total)
		summary = append(summary, row)
	}
	return summary, rows.Err()
}
