package model

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// Per-resource payload validation. Payloads are JSON objects decoded into
// Records, so rules operate on the decoded representation: string, float64,
// bool, []any. Unknown keys are dropped rather than rejected, matching the
// legacy API.

var emailPattern = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)

// httpURL requires an explicit http:// or https:// prefix.
func httpURL(value any) error {
	s, ok := value.(string)
	if !ok {
		return errors.New("must be a string")
	}
	if !strings.HasPrefix(s, "http://") && !strings.HasPrefix(s, "https://") {
		return errors.New("must be a valid URL")
	}
	return nil
}

// isoDateTime accepts RFC 3339 or a bare ISO timestamp without zone.
func isoDateTime(value any) error {
	s, ok := value.(string)
	if !ok {
		return errors.New("must be a string")
	}
	if _, err := time.Parse(time.RFC3339, s); err == nil {
		return nil
	}
	if _, err := time.Parse("2006-01-02T15:04:05", s); err == nil {
		return nil
	}
	return errors.New("must be an ISO datetime")
}

type fieldSpec struct {
	name     string
	required bool
	rules    []validation.Rule
	// def is applied when the field is absent at create time.
	def any
}

// FAQ categories accept any casing and are stored canonically.
var faqCategories = []string{"Admissions", "Mobility", "Visas", "General", "Partnerships"}

var createSpecs = map[string][]fieldSpec{
	"programs": {
		{name: "title", required: true, rules: []validation.Rule{validation.Length(1, 200)}},
		{name: "description", required: true, rules: []validation.Rule{validation.Length(10, 2000)}},
		{name: "partnerUniversity", required: true, rules: []validation.Rule{validation.Length(1, 200)}},
		{name: "duration", required: true, rules: []validation.Rule{validation.Length(1, 100)}},
		{name: "eligibility", required: true, rules: []validation.Rule{validation.Length(1, 500)}},
		{name: "deadline", required: true, rules: []validation.Rule{validation.Length(1, 100)}},
		{name: "applicationLink", required: true, rules: []validation.Rule{validation.By(httpURL)}},
		{name: "image"},
		{name: "status", rules: []validation.Rule{validation.In("Active", "Inactive")}, def: "Active"},
		{name: "purpose", rules: []validation.Rule{validation.Length(0, 1000)}},
		{name: "vision", rules: []validation.Rule{validation.Length(0, 500)}},
		{name: "benefits"},
		{name: "eligibilityDetailed"},
		{name: "tuitionFee", rules: []validation.Rule{validation.Length(0, 200)}},
		{name: "livingExpenses", rules: []validation.Rule{validation.Length(0, 200)}},
		{name: "insurance", rules: []validation.Rule{validation.Length(0, 200)}},
		{name: "visaFees", rules: []validation.Rule{validation.Length(0, 200)}},
		{name: "travel", rules: []validation.Rule{validation.Length(0, 200)}},
		{name: "scholarships"},
		{name: "accommodation"},
		{name: "universityFounded", rules: []validation.Rule{validation.Length(0, 100)}},
		{name: "universityRanking", rules: []validation.Rule{validation.Length(0, 200)}},
		{name: "universitySpecialties"},
		{name: "campusInfo", rules: []validation.Rule{validation.Length(0, 200)}},
		{name: "studentBody", rules: []validation.Rule{validation.Length(0, 200)}},
	},
	"news": {
		{name: "title", required: true, rules: []validation.Rule{validation.Length(1, 300)}},
		{name: "content", required: true, rules: []validation.Rule{validation.Length(10, 5000)}},
		{name: "category", required: true, rules: []validation.Rule{validation.In("Announcement", "MoU", "Achievement", "Press Release")}},
		{name: "date", rules: []validation.Rule{validation.By(isoDateTime)}},
		{name: "image"},
		{name: "file"},
		{name: "author", rules: []validation.Rule{validation.Length(0, 100)}},
		{name: "tags"},
		{name: "featured", def: false},
	},
	"partnerships": {
		{name: "partnerName", required: true, rules: []validation.Rule{validation.Length(1, 300)}},
		{name: "type", required: true, rules: []validation.Rule{validation.In("Strategic", "Research", "Dual Degree", "Student Exchange")}},
		{name: "country", required: true, rules: []validation.Rule{validation.Length(1, 100)}},
		{name: "details", required: true, rules: []validation.Rule{validation.Length(10, 2000)}},
		{name: "status", rules: []validation.Rule{validation.In("Active", "Under Negotiation", "Expired")}, def: "Active"},
		{name: "signedDate", rules: []validation.Rule{validation.By(isoDateTime)}},
		{name: "expiryDate", rules: []validation.Rule{validation.By(isoDateTime)}},
		{name: "document"},
		{name: "logo"},
		{name: "website", rules: []validation.Rule{validation.By(httpURL)}},
		{name: "contactPerson", rules: []validation.Rule{validation.Length(0, 200)}},
		{name: "contactEmail", rules: []validation.Rule{validation.Length(0, 200)}},
		{name: "benefits"},
	},
	"team": {
		{name: "name", required: true, rules: []validation.Rule{validation.Length(1, 200)}},
		{name: "role", required: true, rules: []validation.Rule{validation.Length(1, 200)}},
		{name: "bio", required: true, rules: []validation.Rule{validation.Length(10, 1000)}},
		{name: "image"},
		{name: "email", rules: []validation.Rule{validation.Length(0, 200)}},
		{name: "phone", rules: []validation.Rule{validation.Length(0, 20)}},
		{name: "office", rules: []validation.Rule{validation.Length(0, 100)}},
		{name: "department", rules: []validation.Rule{validation.Length(0, 100)}},
		{name: "responsibilities"},
		{name: "order", def: float64(0)},
		{name: "is_leadership", def: false},
		{name: "is_active", def: true},
	},
	"events": {
		{name: "title", required: true, rules: []validation.Rule{validation.Length(1, 300)}},
		{name: "type", required: true, rules: []validation.Rule{validation.In("Visit", "Conference", "Seminar", "Webinar", "Delegation")}},
		{name: "description", required: true, rules: []validation.Rule{validation.Length(10, 2000)}},
		{name: "startDate", required: true, rules: []validation.Rule{validation.By(isoDateTime)}},
		{name: "endDate", rules: []validation.Rule{validation.By(isoDateTime)}},
		{name: "venue", rules: []validation.Rule{validation.Length(0, 300)}},
		{name: "organizer", rules: []validation.Rule{validation.Length(0, 200)}},
		{name: "participants"},
		{name: "images"},
		{name: "featured", def: false},
		{name: "registrationLink", rules: []validation.Rule{validation.By(httpURL)}},
	},
	"gallery": {
		{name: "title", required: true, rules: []validation.Rule{validation.Length(1, 200)}},
		{name: "description", rules: []validation.Rule{validation.Length(0, 1000)}, def: ""},
		{name: "image", required: true},
		{name: "alt", rules: []validation.Rule{validation.Length(0, 200)}},
		{name: "category", required: true, rules: []validation.Rule{validation.Length(1, 100)}},
		{name: "order", rules: []validation.Rule{validation.Min(float64(0))}, def: float64(0)},
		{name: "is_featured", def: false},
		{name: "is_active", def: true},
		{name: "tags"},
	},
	"faqs": {
		{name: "question", required: true, rules: []validation.Rule{validation.Length(5, 500)}},
		{name: "answer", required: true, rules: []validation.Rule{validation.Length(10, 2000)}},
		{name: "category", required: true},
		{name: "order", def: float64(0)},
		{name: "featured", def: false},
	},
	"static-content": {
		{name: "key", required: true, rules: []validation.Rule{validation.Length(1, 100)}},
		{name: "title", required: true, rules: []validation.Rule{validation.Length(1, 300)}},
		{name: "content", required: true, rules: []validation.Rule{validation.Length(10, 0)}},
		{name: "section", required: true, rules: []validation.Rule{validation.Length(1, 100)}},
	},
	"contacts": {
		{name: "firstName", required: true, rules: []validation.Rule{validation.Length(1, 100)}},
		{name: "lastName", required: true, rules: []validation.Rule{validation.Length(1, 100)}},
		{name: "email", required: true, rules: []validation.Rule{validation.Match(emailPattern)}},
		{name: "phone", rules: []validation.Rule{validation.Length(0, 20)}},
		{name: "subject", required: true, rules: []validation.Rule{validation.Length(1, 200)}},
		{name: "message", required: true, rules: []validation.Rule{validation.Length(10, 2000)}},
		{name: "formType", rules: []validation.Rule{validation.In("Enquiry", "Proposal", "LOR Request", "Application", "Partnership")}, def: "Enquiry"},
		{name: "country", rules: []validation.Rule{validation.Length(0, 100)}},
		{name: "institution", rules: []validation.Rule{validation.Length(0, 200)}},
		// Settable only through the admin mark-as-read route; creates always
		// start at New.
		{name: "status", rules: []validation.Rule{validation.In(ContactStatusNew, ContactStatusRead, ContactStatusReplied)}},
	},
}

// Updates to static content never touch the key; everything else shares its
// create field set with required/default semantics removed.
var updateExcluded = map[string][]string{
	"static-content": {"key"},
}

// ValidateCreate checks a create payload against the resource's field specs
// and returns a pruned copy: unknown fields dropped, defaults filled in, FAQ
// category canonicalized.
func ValidateCreate(res *Resource, doc Record) (Record, error) {
	return validatePayload(res, doc, true)
}

// ValidateUpdate checks an update payload. All fields are optional; null
// values pass through untouched so the update policy can drop them later.
func ValidateUpdate(res *Resource, doc Record) (Record, error) {
	return validatePayload(res, doc, false)
}

func validatePayload(res *Resource, doc Record, create bool) (Record, error) {
	specs, ok := createSpecs[res.Name]
	if !ok {
		return doc.Clone(), nil
	}
	excluded := map[string]bool{}
	if !create {
		for _, name := range updateExcluded[res.Name] {
			excluded[name] = true
		}
	}

	out := make(Record, len(specs))
	for _, spec := range specs {
		if excluded[spec.name] {
			continue
		}
		v, present := doc[spec.name]
		if !present || v == nil {
			if create {
				if spec.required {
					return nil, fmt.Errorf("%s: cannot be blank", spec.name)
				}
				if spec.def != nil {
					out[spec.name] = spec.def
				}
			} else if present {
				// Explicit null survives so the update policy decides its fate.
				out[spec.name] = nil
			}
			continue
		}
		if err := validation.Validate(v, spec.rules...); err != nil {
			return nil, fmt.Errorf("%s: %v", spec.name, err)
		}
		out[spec.name] = v
	}

	if _, present := out["category"]; present && res == FAQs {
		canonical, err := canonicalFAQCategory(out["category"])
		if err != nil {
			return nil, err
		}
		out["category"] = canonical
	}
	return out, nil
}

func canonicalFAQCategory(v any) (string, error) {
	s, ok := v.(string)
	if !ok {
		return "", errors.New("category: must be a string")
	}
	for _, c := range faqCategories {
		if strings.EqualFold(c, s) {
			return c, nil
		}
	}
	return "", fmt.Errorf("category: must be one of %s", strings.Join(faqCategories, ", "))
}
