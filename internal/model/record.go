package model

import "time"

// Record is a single document belonging to one resource collection.
// Fields are opaque to the repository layer: it only interprets the logical
// id field and the timestamp fields named by the owning Resource.
type Record map[string]any

// InternalIDField is the auxiliary, non-authoritative field carrying the
// store's own row identifier as a string. The content service strips it from
// responses; it only serves as a fallback reference for legacy records that
// lack a logical id.
const InternalIDField = "_id"

// Clone returns a shallow copy. Nested values are shared.
func (r Record) Clone() Record {
	out := make(Record, len(r))
	for k, v := range r {
		out[k] = v
	}
	return out
}

// String returns the value of key as a string, or "" when absent or not a string.
func (r Record) String(key string) string {
	s, _ := r[key].(string)
	return s
}

// Has reports whether key is present, regardless of its value.
func (r Record) Has(key string) bool {
	_, ok := r[key]
	return ok
}

// timestampLayout is fixed-width so that stored values compare
// lexicographically in chronological order.
const timestampLayout = "2006-01-02T15:04:05.000000000Z"

// Timestamp formats t for storage inside a Record.
func Timestamp(t time.Time) string {
	return t.UTC().Format(timestampLayout)
}

// Now returns the current time formatted for storage.
func Now() string {
	return Timestamp(time.Now())
}
