package query

import "strings"

// TherapistParams are the directory search parameters. Zero values mean
// "no constraint"; the *bool filters are tri-state (nil = unconstrained).
type TherapistParams struct {
	Search    string
	Specialty string
	Language  string
	Virtual   *bool
	InPerson  *bool
}

// Therapists builds the directory predicate. Every result is constrained to
// role=therapist; the remaining fragments AND together.
func Therapists(p TherapistParams) Predicate {
	pred := And{Eq{Field: "role", Value: "therapist"}}
	if p.Search != "" {
		pred = append(pred, Or{
			ContainsFold{Field: "name", Substr: p.Search},
			ContainsFold{Field: "bio", Substr: p.Search},
			AnyContainsFold{Field: "specialties", Substr: p.Search},
		})
	}
	if p.Specialty != "" {
		pred = append(pred, AnyContainsFold{Field: "specialties", Substr: p.Specialty})
	}
	if p.Language != "" {
		pred = append(pred, AnyContainsFold{Field: "languages", Substr: p.Language})
	}
	if p.Virtual != nil {
		pred = append(pred, Eq{Field: "virtual", Value: *p.Virtual})
	}
	if p.InPerson != nil {
		pred = append(pred, Eq{Field: "in_person", Value: *p.InPerson})
	}
	return pred
}

type AvailabilityParams struct {
	TherapistID string
	Weekday     *int
	Virtual     *bool
	InPerson    *bool
}

func Availability(p AvailabilityParams) Predicate {
	pred := And{}
	if p.TherapistID != "" {
		pred = append(pred, Eq{Field: "therapist_id", Value: p.TherapistID})
	}
	if p.Weekday != nil {
		pred = append(pred, Eq{Field: "weekday", Value: *p.Weekday})
	}
	if p.Virtual != nil {
		pred = append(pred, Eq{Field: "virtual", Value: *p.Virtual})
	}
	if p.InPerson != nil {
		pred = append(pred, Eq{Field: "in_person", Value: *p.InPerson})
	}
	return pred
}

type BookingParams struct {
	TherapistID string
	ClientEmail string
}

func Bookings(p BookingParams) Predicate {
	pred := And{}
	if p.TherapistID != "" {
		pred = append(pred, Eq{Field: "therapist_id", Value: p.TherapistID})
	}
	if email := canonicalEmail(p.ClientEmail); email != "" {
		pred = append(pred, Eq{Field: "client_email", Value: email})
	}
	return pred
}

type MessageParams struct {
	TherapistID string
	ClientEmail string
	ThreadID    string
}

func Messages(p MessageParams) Predicate {
	pred := And{}
	if p.TherapistID != "" {
		pred = append(pred, Eq{Field: "therapist_id", Value: p.TherapistID})
	}
	if email := canonicalEmail(p.ClientEmail); email != "" {
		pred = append(pred, Eq{Field: "client_email", Value: email})
	}
	if p.ThreadID != "" {
		pred = append(pred, Eq{Field: "thread_id", Value: p.ThreadID})
	}
	return pred
}

type JournalParams struct {
	ClientEmail string
}

func Journal(p JournalParams) Predicate {
	pred := And{}
	if email := canonicalEmail(p.ClientEmail); email != "" {
		pred = append(pred, Eq{Field: "client_email", Value: email})
	}
	return pred
}

// canonicalEmail matches the form the validation layer stores.
func canonicalEmail(s string) string {
	return strings.TrimSpace(s)
}
