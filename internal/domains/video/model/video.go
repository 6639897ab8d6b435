package model

import (
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"creatorhub-backend/internal/validate"
)

const (
	TitleMaxLen       = 200
	DescriptionMaxLen = 1000

	DefaultPaymentStatus = "pending"
)

// Video is one unit of content with its payment state.
type Video struct {
	ID            int64           `json:"id"`
	Title         string          `json:"title"`
	YoutuberID    int64           `json:"youtuber_id"`
	YoutuberName  string          `json:"youtuber_name,omitempty"`
	DateUploaded  *time.Time      `json:"date_uploaded,omitempty"`
	PaymentStatus string          `json:"payment_status"`
	Amount        decimal.Decimal `json:"amount"`
	VideoLink     string          `json:"video_link,omitempty"`
	Description   string          `json:"description,omitempty"`
	CreatedAt     time.Time       `json:"created_at"`
	UpdatedAt     time.Time       `json:"updated_at"`
}

// VideoForm carries the raw, untyped field values of a create/update
// request. Everything arrives as strings, exactly as a form submits them.
type VideoForm struct {
	Title         string `json:"title"`
	YoutuberID    string `json:"youtuber_id"`
	DateUploaded  string `json:"date_uploaded"`
	PaymentStatus string `json:"payment_status"`
	Amount        string `json:"amount"`
	VideoLink     string `json:"video_link"`
	Description   string `json:"description"`
}

// VideoInput is the validated, typed result of VideoForm.Validate.
type VideoInput struct {
	Title         string
	YoutuberID    int64
	DateUploaded  *time.Time
	PaymentStatus string
	Amount        decimal.Decimal
	VideoLink     string
	Description   string
}

// Validate runs the composite video validation, failing atomically on the
// first bad field. The referenced creator's existence is enforced by the
// store's foreign key, not here.
func (f VideoForm) Validate() (*VideoInput, error) {
	title, err := validate.RequireNonEmpty(f.Title, "Title")
	if err != nil {
		return nil, validate.WithField(err, "title")
	}
	title, err = validate.SanitizeText(title, TitleMaxLen)
	if err != nil {
		return nil, validate.WithField(err, "title")
	}

	youtuberID, err := strconv.ParseInt(strings.TrimSpace(f.YoutuberID), 10, 64)
	if err != nil || youtuberID <= 0 {
		return nil, &validate.Error{
			Field:   "youtuber_id",
			Kind:    validate.KindInvalidReference,
			Message: "Invalid YouTuber selection",
		}
	}

	dateUploaded, err := validate.Date(f.DateUploaded)
	if err != nil {
		return nil, validate.WithField(err, "date_uploaded")
	}

	paymentStatus := f.PaymentStatus
	if paymentStatus == "" {
		paymentStatus = DefaultPaymentStatus
	}
	paymentStatus, err = validate.PaymentStatus(paymentStatus)
	if err != nil {
		return nil, validate.WithField(err, "payment_status")
	}

	amount, err := validate.Amount(f.Amount)
	if err != nil {
		return nil, validate.WithField(err, "amount")
	}

	videoLink, err := validate.VideoHostURL(f.VideoLink)
	if err != nil {
		return nil, validate.WithField(err, "video_link")
	}

	description, err := validate.SanitizeText(f.Description, DescriptionMaxLen)
	if err != nil {
		return nil, validate.WithField(err, "description")
	}

	return &VideoInput{
		Title:         title,
		YoutuberID:    youtuberID,
		DateUploaded:  dateUploaded,
		PaymentStatus: paymentStatus,
		Amount:        amount,
		VideoLink:     videoLink,
		Description:   description,
	}, nil
}
