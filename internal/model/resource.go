package model

// TimestampMode selects which timestamp fields the repository stamps.
type TimestampMode int

const (
	// FullTimestamps stamps createdAt and updatedAt at create and refreshes
	// updatedAt on every applied update.
	FullTimestamps TimestampMode = iota
	// UploadDateOnly stamps uploadDate at create; updates refresh nothing.
	UploadDateOnly
	// CreatedOnly stamps createdAt at create; updates refresh nothing.
	CreatedOnly
)

// Sort is a resource's default list ordering.
type Sort struct {
	Field   string
	Desc    bool
	Numeric bool
}

// FilterKind describes how a query parameter maps onto a store filter.
type FilterKind int

const (
	// FilterEq matches the field against the parameter value.
	FilterEq FilterKind = iota
	// FilterFlag matches records whose boolean field is true when the
	// parameter is truthy.
	FilterFlag
	// FilterUpcoming matches records whose date field is at or after the
	// current time when the parameter is truthy.
	FilterUpcoming
)

// QueryFilter declares a list-endpoint query parameter and the filter it
// produces.
type QueryFilter struct {
	Param string
	Field string
	Kind  FilterKind
}

// SearchSpec configures a resource's participation in global search.
type SearchSpec struct {
	// Type is the singular type name used in result entries.
	Type string
	// Fields are substring-matched case-insensitively.
	Fields []string
	// TitleField and DescField feed the normalized result entry.
	TitleField string
	DescField  string
	// URLPrefix is joined with the record's logical id.
	URLPrefix string
}

// Resource describes one document collection: where it lives, how it is
// identified, sorted, filtered, updated, and searched. All resource-specific
// behavior of the repository and services is driven from this table.
type Resource struct {
	Name       string
	Collection string
	// IDField is the logical identifier field callers address records by.
	IDField string

	Sort            Sort
	Paginated       bool
	DefaultPageSize int
	MaxPageSize     int
	// ListLimit caps unpaginated listings.
	ListLimit int

	Timestamps TimestampMode
	Update     UpdatePolicy
	// ReturnCurrentOnNoop makes update re-fetch and return the current record
	// even when the store reports zero fields modified. Only gallery images do
	// this; other resources report not-found, which existing clients rely on.
	ReturnCurrentOnNoop bool

	Filters []QueryFilter
	Search  *SearchSpec

	// Normalize is applied to each record on read, after fetch. The stored
	// document is never rewritten.
	Normalize func(Record)
	// Defaults is applied to the payload at create, before stamping.
	Defaults func(Record)
}

var (
	Programs = &Resource{
		Name:            "programs",
		Collection:      "programs",
		IDField:         "id",
		Sort:            Sort{Field: "createdAt", Desc: true},
		Paginated:       true,
		DefaultPageSize: 50,
		MaxPageSize:     100,
		Timestamps:      FullTimestamps,
		Update:          DropNil,
		Search: &SearchSpec{
			Type:       "program",
			Fields:     []string{"title", "description", "partnerUniversity"},
			TitleField: "title",
			DescField:  "description",
			URLPrefix:  "/student-mobility/programs/",
		},
	}

	News = &Resource{
		Name:            "news",
		Collection:      "news",
		IDField:         "id",
		Sort:            Sort{Field: "date", Desc: true},
		Paginated:       true,
		DefaultPageSize: 10,
		MaxPageSize:     50,
		Timestamps:      FullTimestamps,
		Update:          DropNilOrEmptyString,
		Filters: []QueryFilter{
			{Param: "category", Field: "category", Kind: FilterEq},
			{Param: "featured_only", Field: "featured", Kind: FilterFlag},
		},
		// date is the sort key, so every record must carry one.
		Defaults: func(r Record) {
			if !r.Has("date") {
				r["date"] = Now()
			}
		},
		Search: &SearchSpec{
			Type:       "news",
			Fields:     []string{"title", "content"},
			TitleField: "title",
			DescField:  "content",
			URLPrefix:  "/news-media/",
		},
	}

	Partnerships = &Resource{
		Name:            "partnerships",
		Collection:      "partnerships",
		IDField:         "id",
		Sort:            Sort{Field: "partnerName"},
		Paginated:       true,
		DefaultPageSize: 50,
		MaxPageSize:     100,
		Timestamps:      FullTimestamps,
		Update:          DropNil,
		Filters: []QueryFilter{
			{Param: "type", Field: "type", Kind: FilterEq},
			{Param: "country", Field: "country", Kind: FilterEq},
		},
		Search: &SearchSpec{
			Type:       "partnership",
			Fields:     []string{"partnerName", "details", "country"},
			TitleField: "partnerName",
			DescField:  "details",
			URLPrefix:  "/global-partnerships/",
		},
	}

	Team = &Resource{
		Name:       "team",
		Collection: "team",
		IDField:    "id",
		Sort:       Sort{Field: "order", Numeric: true},
		ListLimit:  100,
		Timestamps: FullTimestamps,
		Update:     DropNil,
	}

	Events = &Resource{
		Name:            "events",
		Collection:      "events",
		IDField:         "id",
		Sort:            Sort{Field: "startDate", Desc: true},
		Paginated:       true,
		DefaultPageSize: 20,
		MaxPageSize:     100,
		Timestamps:      FullTimestamps,
		Update:          DropNilOrEmptyString,
		Filters: []QueryFilter{
			{Param: "type", Field: "type", Kind: FilterEq},
			{Param: "upcoming_only", Field: "startDate", Kind: FilterUpcoming},
		},
		Search: &SearchSpec{
			Type:       "event",
			Fields:     []string{"title", "description"},
			TitleField: "title",
			DescField:  "description",
			URLPrefix:  "/visits-delegations-events/",
		},
	}

	Gallery = &Resource{
		Name:            "gallery",
		Collection:      "gallery",
		IDField:         "id",
		Sort:            Sort{Field: "uploadDate", Desc: true},
		Paginated:       true,
		DefaultPageSize: 30,
		MaxPageSize:     100,
		Timestamps:      UploadDateOnly,
		Update:          DropNil,
		// Legacy behavior: a no-change gallery update still returns the
		// current image instead of a 404.
		ReturnCurrentOnNoop: true,
		Filters: []QueryFilter{
			{Param: "category", Field: "category", Kind: FilterEq},
		},
	}

	FAQs = &Resource{
		Name:       "faqs",
		Collection: "faqs",
		IDField:    "id",
		Sort:       Sort{Field: "order", Numeric: true},
		ListLimit:  500,
		Timestamps: FullTimestamps,
		Update:     DropNil,
		Filters: []QueryFilter{
			{Param: "category", Field: "category", Kind: FilterEq},
		},
	}

	StaticContent = &Resource{
		Name:       "static-content",
		Collection: "static_content",
		IDField:    "key",
		ListLimit:  100,
		Timestamps: FullTimestamps,
		Update:     DropNil,
		Filters: []QueryFilter{
			{Param: "section", Field: "section", Kind: FilterEq},
		},
	}

	Contacts = &Resource{
		Name:       "contacts",
		Collection: "contacts",
		IDField:    "id",
		Sort:       Sort{Field: "createdAt", Desc: true},
		ListLimit:  1000,
		Timestamps: CreatedOnly,
		Update:     DropNil,
		Filters: []QueryFilter{
			{Param: "form_type", Field: "formType", Kind: FilterEq},
		},
		Normalize: NormalizeContactStatus,
		Defaults: func(r Record) {
			r["status"] = ContactStatusNew
		},
	}

	// Admins backs credential checks and seeding; it is not exposed through
	// the content routes.
	Admins = &Resource{
		Name:       "admins",
		Collection: "admins",
		IDField:    "id",
		Sort:       Sort{Field: "createdAt", Desc: true},
		ListLimit:  100,
		Timestamps: CreatedOnly,
		Update:     DropNil,
	}

	// StatsConfigResource holds the single admin-editable counters document,
	// keyed "stats".
	StatsConfigResource = &Resource{
		Name:       "stats-config",
		Collection: "stats_config",
		IDField:    "key",
		Timestamps: FullTimestamps,
		Update:     DropNil,
	}
)

// All lists the collections managed through the content routes.
var All = []*Resource{
	Programs, News, Partnerships, Team, Events, Gallery, FAQs, StaticContent, Contacts,
}

// Collections lists every backed table, including the ones not routed as
// content resources. Used by migration and seeding.
var Collections = []*Resource{
	Programs, News, Partnerships, Team, Events, Gallery, FAQs, StaticContent,
	Contacts, Admins, StatsConfigResource,
}

// Searchable is the fixed fan-out order of global search. Result sections are
// concatenated in exactly this priority.
var Searchable = []*Resource{Programs, News, Events, Partnerships}

// ByName returns the routed resource with the given name, or nil.
func ByName(name string) *Resource {
	for _, r := range All {
		if r.Name == name {
			return r
		}
	}
	return nil
}
