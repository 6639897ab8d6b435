package model

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"creatorhub-backend/internal/validate"
)

func TestVideoForm_Validate(t *testing.T) {
	form := VideoForm{
		Title:         "  Review: Widget 3000  ",
		YoutuberID:    "7",
		DateUploaded:  "2024-01-15",
		PaymentStatus: "paid",
		Amount:        "150.005",
		VideoLink:     "https://youtu.be/abc123",
		Description:   "<p>Sponsored segment at 2:30</p>",
	}

	input, err := form.Validate()
	require.NoError(t, err)
	assert.Equal(t, "Review: Widget 3000", input.Title)
	assert.Equal(t, int64(7), input.YoutuberID)
	require.NotNil(t, input.DateUploaded)
	assert.Equal(t, "2024-01-15", input.DateUploaded.Format("2006-01-02"))
	assert.Equal(t, "paid", input.PaymentStatus)
	assert.Equal(t, "150.01", input.Amount.StringFixed(2))
	assert.Equal(t, "https://youtu.be/abc123", input.VideoLink)
	assert.Equal(t, "Sponsored segment at 2:30", input.Description)
}

func TestVideoForm_Validate_Defaults(t *testing.T) {
	input, err := VideoForm{Title: "Minimal", YoutuberID: "1"}.Validate()
	require.NoError(t, err)
	assert.Equal(t, DefaultPaymentStatus, input.PaymentStatus)
	assert.True(t, input.Amount.Equal(decimal.Zero))
	assert.Nil(t, input.DateUploaded)
	assert.Empty(t, input.VideoLink)
}

func TestVideoForm_Validate_Failures(t *testing.T) {
	valid := VideoForm{Title: "Review", YoutuberID: "1"}

	tests := []struct {
		name   string
		mutate func(f *VideoForm)
		field  string
		kind   validate.Kind
	}{
		{
			name:   "empty title",
			mutate: func(f *VideoForm) { f.Title = "" },
			field:  "title",
			kind:   validate.KindMissingField,
		},
		{
			name:   "zero youtuber id",
			mutate: func(f *VideoForm) { f.YoutuberID = "0" },
			field:  "youtuber_id",
			kind:   validate.KindInvalidReference,
		},
		{
			name:   "negative youtuber id",
			mutate: func(f *VideoForm) { f.YoutuberID = "-3" },
			field:  "youtuber_id",
			kind:   validate.KindInvalidReference,
		},
		{
			name:   "non numeric youtuber id",
			mutate: func(f *VideoForm) { f.YoutuberID = "abc" },
			field:  "youtuber_id",
			kind:   validate.KindInvalidReference,
		},
		{
			name:   "bad date",
			mutate: func(f *VideoForm) { f.DateUploaded = "01/15/2024" },
			field:  "date_uploaded",
			kind:   validate.KindInvalidFormat,
		},
		{
			name:   "unknown status",
			mutate: func(f *VideoForm) { f.PaymentStatus = "refunded" },
			field:  "payment_status",
			kind:   validate.KindInvalidEnum,
		},
		{
			name:   "negative amount",
			mutate: func(f *VideoForm) { f.Amount = "-1" },
			field:  "amount",
			kind:   validate.KindOutOfRange,
		},
		{
			name:   "amount over limit",
			mutate: func(f *VideoForm) { f.Amount = "1000000" },
			field:  "amount",
			kind:   validate.KindOutOfRange,
		},
		{
			name:   "non video host link",
			mutate: func(f *VideoForm) { f.VideoLink = "https://vimeo.com/12345" },
			field:  "video_link",
			kind:   validate.KindInvalidFormat,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			form := valid
			tt.mutate(&form)

			input, err := form.Validate()
			assert.Nil(t, input)

			verr, ok := validate.AsError(err)
			require.True(t, ok)
			assert.Equal(t, tt.field, verr.Field)
			assert.Equal(t, tt.kind, verr.Kind)
			if tt.kind == validate.KindInvalidReference {
				assert.Equal(t, "Invalid YouTuber selection", verr.Message)
			}
		})
	}
}
