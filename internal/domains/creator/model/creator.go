package model

import (
	"time"

	"github.com/shopspring/decimal"

	"creatorhub-backend/internal/validate"
)

// Validation caps. NotesInputMaxLen is intentionally stricter than the
// persisted schema's 1000-char CHECK; the discrepancy is inherited from the
// legacy form layer and kept for compatibility.
const (
	NameMaxLen       = 100
	NicheMaxLen      = 50
	NotesInputMaxLen = 500
	NotesSchemaCap   = 1000
)

// Creator is a tracked content producer ("youtuber" in the schema).
type Creator struct {
	ID          int64     `json:"id"`
	Name        string    `json:"name"`
	ChannelLink string    `json:"channel_link,omitempty"`
	Niche       string    `json:"niche,omitempty"`
	Contact     string    `json:"contact,omitempty"`
	Notes       string    `json:"notes,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// CreatorWithStats is a list row with per-creator payment aggregates.
type CreatorWithStats struct {
	Creator
	VideoCount   int             `json:"video_count"`
	TotalPaid    decimal.Decimal `json:"total_paid"`
	TotalPending decimal.Decimal `json:"total_pending"`
}

// CreatorForm carries the raw, untyped field values of a create/update
// request, exactly as submitted.
type CreatorForm struct {
	Name        string `json:"name"`
	ChannelLink string `json:"channel_link"`
	Niche       string `json:"niche"`
	Contact     string `json:"contact"`
	Notes       string `json:"notes"`
}

// CreatorInput is the validated, typed result of CreatorForm.Validate.
// Optional fields are empty strings when absent.
type CreatorInput struct {
	Name        string
	ChannelLink string
	Niche       string
	Contact     string
	Notes       string
}

// Validate runs the composite creator validation. It fails atomically on the
// first bad field; no partial input is ever returned.
func (f CreatorForm) Validate() (*CreatorInput, error) {
	name, err := validate.RequireNonEmpty(f.Name, "Name")
	if err != nil {
		return nil, validate.WithField(err, "name")
	}
	name, err = validate.SanitizeText(name, NameMaxLen)
	if err != nil {
		return nil, validate.WithField(err, "name")
	}

	channelLink, err := validate.VideoHostURL(f.ChannelLink)
	if err != nil {
		return nil, validate.WithField(err, "channel_link")
	}

	niche, err := validate.SanitizeText(f.Niche, NicheMaxLen)
	if err != nil {
		return nil, validate.WithField(err, "niche")
	}

	contact, err := validate.Email(f.Contact)
	if err != nil {
		return nil, validate.WithField(err, "contact")
	}

	notes, err := validate.SanitizeText(f.Notes, NotesInputMaxLen)
	if err != nil {
		return nil, validate.WithField(err, "notes")
	}

	return &CreatorInput{
		Name:        name,
		ChannelLink: channelLink,
		Niche:       niche,
		Contact:     contact,
		Notes:       notes,
	}, nil
}
