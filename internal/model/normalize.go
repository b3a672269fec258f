package model

// Canonical contact statuses.
const (
	ContactStatusNew     = "New"
	ContactStatusRead    = "Read"
	ContactStatusReplied = "Replied"
)

// legacy lowercase variants written by an earlier version of the admin panel.
var legacyStatuses = map[string]string{
	"new":     ContactStatusNew,
	"read":    ContactStatusRead,
	"replied": ContactStatusReplied,
}

// NormalizeContactStatus rewrites legacy status casings to their canonical
// capitalized form and defaults a missing status to "New". This is a
// read-time view transform only; the stored document is left untouched.
func NormalizeContactStatus(r Record) {
	s, ok := r["status"].(string)
	if !ok {
		r["status"] = ContactStatusNew
		return
	}
	if canonical, legacy := legacyStatuses[s]; legacy {
		r["status"] = canonical
	}
}
