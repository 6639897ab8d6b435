package model

import (
	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/shopspring/decimal"
)

// VideoFilter - query parameters for GET /videos
type VideoFilter struct {
	Status   string `form:"status"`
	Youtuber int64  `form:"youtuber"`
	Limit    int    `form:"limit"`
	Offset   int    `form:"offset"`
}

func (f VideoFilter) Validate() error {
	return validation.ValidateStruct(&f,
		validation.Field(&f.Status, validation.In("pending", "paid", "cancelled")),
		validation.Field(&f.Youtuber, validation.Min(0)),
		validation.Field(&f.Limit, validation.Min(0), validation.Max(500)),
		validation.Field(&f.Offset, validation.Min(0)),
	)
}

// MarkPaidResponse echoes what was just settled.
type MarkPaidResponse struct {
	ID     int64           `json:"id"`
	Title  string          `json:"title"`
	Amount decimal.Decimal `json:"amount"`
}
