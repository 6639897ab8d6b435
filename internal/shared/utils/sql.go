package utils

import (
	"database/sql"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"
)

const (
	sqliteTimeLayout = "2006-01-02 15:04:05"
	DateLayout       = "2006-01-02"
)

// NullIfEmpty maps empty strings to SQL NULL so optional columns stay NULL
// instead of storing "".
func NullIfEmpty(s string) interface{} {
	if s == "" {
		return nil
	}
	return s
}

// NullDate formats an optional date for a DATE column.
func NullDate(t *time.Time) interface{} {
	if t == nil {
		return nil
	}
	return t.Format(DateLayout)
}

// ParseSQLTime parses a TIMESTAMP column value scanned into a string. SQLite
// stores CURRENT_TIMESTAMP as "YYYY-MM-DD HH:MM:SS" in UTC, but the driver
// decodes declared date/time columns into time.Time, which database/sql then
// renders into a string scan target as RFC3339. Both shapes are accepted.
func ParseSQLTime(value string) time.Time {
	for _, layout := range []string{sqliteTimeLayout, time.RFC3339Nano} {
		if t, err := time.Parse(layout, value); err == nil {
			return t.UTC()
		}
	}
	log.Warn().Str("value", value).Msg("Unparseable timestamp column value")
	return time.Time{}
}

// ParseSQLDate parses a nullable DATE column value. Accepts the stored
// "YYYY-MM-DD" form and the RFC3339 rendering the driver produces when it
// decodes the declared DATE column as a time.Time.
func ParseSQLDate(value sql.NullString) *time.Time {
	if !value.Valid || value.String == "" {
		return nil
	}
	for _, layout := range []string{DateLayout, time.RFC3339Nano} {
		if t, err := time.Parse(layout, value.String); err == nil {
			day := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
			return &day
		}
	}
	log.Warn().Str("value", value.String).Msg("Unparseable date column value")
	return nil
}

// DecimalFromFloat converts an aggregate result (SQLite SUMs numeric
// affinity columns as REAL) back to a 2-place decimal.
func DecimalFromFloat(f float64) decimal.Decimal {
	return decimal.NewFromFloat(f).Round(2)
}
