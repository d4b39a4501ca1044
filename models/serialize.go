package models

import "time"

// Layouts used by Serialize. Timestamps follow ISO-8601 (RFC 3339 with
// sub-second precision when present); dates are calendar dates only.
const (
	TimestampLayout = time.RFC3339Nano
	DateLayout      = time.DateOnly
)

// Serializable is implemented by every entity that can be converted into a
// transport-ready mapping.
type Serializable interface {
	Serialize() map[string]any
}

func isoTimestamp(t time.Time) any {
	if t.IsZero() {
		return nil
	}

	return t.Format(TimestampLayout)
}

func isoTimestampPtr(t *time.Time) any {
	if t == nil {
		return nil
	}

	return isoTimestamp(*t)
}

func isoDatePtr(t *time.Time) any {
	if t == nil || t.IsZero() {
		return nil
	}

	return t.Format(DateLayout)
}

func stringPtr(s *string) any {
	if s == nil {
		return nil
	}

	return *s
}

func int64Ptr(v *int64) any {
	if v == nil {
		return nil
	}

	return *v
}
