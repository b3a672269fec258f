package model

import "strings"

// UpdatePolicy determines which fields of an update payload are applied and
// which are dropped before the merge reaches the store.
//
// The two variants are deliberate and must stay distinct per resource: under
// DropNil an empty string is a real value and overwrites the stored field,
// while free-text-heavy resources (news, events) also drop empty strings so a
// half-filled admin form does not blank out existing copy.
type UpdatePolicy int

const (
	// DropNil removes fields whose value is the absent-value sentinel (JSON
	// null / missing). Everything else, including "" and false, is applied.
	DropNil UpdatePolicy = iota

	// DropNilOrEmptyString additionally removes string fields that are empty
	// after trimming. Non-string falsy values (false, 0) are still applied.
	DropNilOrEmptyString
)

// Apply returns a filtered copy of fields per the policy. The input is not
// modified.
func (p UpdatePolicy) Apply(fields Record) Record {
	out := make(Record, len(fields))
	for k, v := range fields {
		if v == nil {
			continue
		}
		if p == DropNilOrEmptyString {
			if s, ok := v.(string); ok && strings.TrimSpace(s) == "" {
				continue
			}
		}
		out[k] = v
	}
	return out
}
