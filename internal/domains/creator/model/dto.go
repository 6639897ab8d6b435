package model

import (
	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// CreatorFilter - query parameters for GET /creators
type CreatorFilter struct {
	Search string `form:"search"`
	Niche  string `form:"niche"`
	Limit  int    `form:"limit"`
	Offset int    `form:"offset"`
}

func (f CreatorFilter) Validate() error {
	return validation.ValidateStruct(&f,
		validation.Field(&f.Search, validation.Length(0, NameMaxLen)),
		validation.Field(&f.Niche, validation.Length(0, NicheMaxLen)),
		validation.Field(&f.Limit, validation.Min(0), validation.Max(500)),
		validation.Field(&f.Offset, validation.Min(0)),
	)
}

// CreatorListResponse wraps the list rows with the available niche labels
// so the filter dropdown needs no second round trip.
type CreatorListResponse struct {
	Creators []CreatorWithStats `json:"creators"`
	Niches   []string           `json:"niches"`
}
