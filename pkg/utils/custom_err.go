package utils

import (
	"errors"
	"sort"
	"strings"
)

var (
	ErrTripNotFound         = errors.New("trip not found")
	ErrDatabaseError        = errors.New("database error")
	ErrInvalidInput         = errors.New("invalid input")
	ErrProviderTransport    = errors.New("itinerary provider request failed")
	ErrProviderContract     = errors.New("itinerary provider returned malformed content")
	ErrWeatherNotConfigured = errors.New("weather service not configured")
	ErrLocationNotFound     = errors.New("location not found")
)

// FieldErrors maps request field names to human-readable messages so
// controllers can render per-field validation feedback.
type FieldErrors map[string]string

func (f FieldErrors) Error() string {
	keys := make([]string, 0, len(f))
	for k := range f {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var b strings.Builder
	for i, k := range keys {
		if i > 0 {
			b.WriteString("; ")
		}
		b.WriteString(k)
		b.WriteString(": ")
		b.WriteString(f[k])
	}
	return b.String()
}
