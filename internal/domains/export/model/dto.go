package model

import (
	validation "github.com/go-ozzo/ozzo-validation/v4"
)

const (
	TypeYoutubers = "youtubers"
	TypeVideos    = "videos"
	TypePayments  = "payments"
	TypeAll       = "all"
)

// ExportRequest - query parameters for GET /export
type ExportRequest struct {
	Type string `form:"type"`
}

func (r ExportRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Type,
			validation.In(TypeYoutubers, TypeVideos, TypePayments, TypeAll).
				Error("type must be one of: youtubers, videos, payments, all"),
		),
	)
}

// ExportFile is a generated attachment ready to stream to the client.
type ExportFile struct {
	Name        string
	ContentType string
	Data        []byte
}
