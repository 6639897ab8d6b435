package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// Stats are the headline dashboard numbers.
type Stats struct {
	TotalYoutubers  int             `json:"total_youtubers"`
	TotalVideos     int             `json:"total_videos"`
	TotalPaid       decimal.Decimal `json:"total_paid"`
	PendingPayments decimal.Decimal `json:"pending_payments"`
	TotalAmount     decimal.Decimal `json:"total_amount"`
}

// StatusBreakdown is one slice of the payment-status distribution.
type StatusBreakdown struct {
	PaymentStatus string          `json:"payment_status"`
	Count         int             `json:"count"`
	Total         decimal.Decimal `json:"total"`
}

// RecentVideo is a dashboard row for the latest additions.
type RecentVideo struct {
	ID            int64           `json:"id"`
	Title         string          `json:"title"`
	YoutuberName  string          `json:"youtuber_name"`
	DateUploaded  *time.Time      `json:"date_uploaded,omitempty"`
	PaymentStatus string          `json:"payment_status"`
	Amount        decimal.Decimal `json:"amount"`
	CreatedAt     time.Time       `json:"created_at"`
}

// MonthlyTrend aggregates one calendar month of uploads.
type MonthlyTrend struct {
	Month       string          `json:"month"` // YYYY-MM
	VideoCount  int             `json:"video_count"`
	TotalAmount decimal.Decimal `json:"total_amount"`
	PaidAmount  decimal.Decimal `json:"paid_amount"`
}

// ChartTrend is the paid-vs-pending series for the dashboard charts.
type ChartTrend struct {
	Month   string          `json:"month"`
	Paid    decimal.Decimal `json:"paid"`
	Pending decimal.Decimal `json:"pending"`
}

// PaymentSummary aggregates payment state per creator.
type PaymentSummary struct {
	Name         string          `json:"name"`
	Contact      string          `json:"contact,omitempty"`
	TotalVideos  int             `json:"total_videos"`
	TotalPaid    decimal.Decimal `json:"total_paid"`
	TotalPending decimal.Decimal `json:"total_pending"`
	TotalAmount  decimal.Decimal `json:"total_amount"`
}

// Overview - GET /dashboard
type Overview struct {
	Stats        Stats             `json:"stats"`
	RecentVideos []RecentVideo     `json:"recent_videos"`
	PaymentStats []StatusBreakdown `json:"payment_stats"`
}

// Charts - GET /dashboard/charts
type Charts struct {
	PaymentDistribution []StatusBreakdown `json:"payment_distribution"`
	MonthlyTrends       []ChartTrend      `json:"monthly_trends"`
}

// PaymentsReport - GET /payments
type PaymentsReport struct {
	Summary       []PaymentSummary `json:"payment_summary"`
	MonthlyTrends []MonthlyTrend   `json:"monthly_trends"`
}
