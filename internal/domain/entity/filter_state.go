package entity

import "strings"

// SortKey selects the ordering of the visible list.
type SortKey string

const (
	SortNone       SortKey = ""
	SortFees       SortKey = "fees"
	SortExperience SortKey = "experience"
)

// ParseSortKey returns the matching key, or SortNone for anything else.
func ParseSortKey(s string) SortKey {
	switch SortKey(s) {
	case SortFees:
		return SortFees
	case SortExperience:
		return SortExperience
	}
	return SortNone
}

// FilterState is the visitor's selection. It is a value: every change
// produces a new FilterState through Apply.
type FilterState struct {
	search           string
	specialties      []string
	consultationType ConsultationType
	sortBy           SortKey
}

// NewFilterState builds a canonical state. Specialties are deduplicated in
// first-seen order; empty names and names containing a comma are dropped.
func NewFilterState(search string, specialties []string, consultation ConsultationType, sortBy SortKey) FilterState {
	return FilterState{
		search:           search,
		specialties:      canonicalSpecialties(specialties),
		consultationType: ParseConsultationType(string(consultation)),
		sortBy:           ParseSortKey(string(sortBy)),
	}
}

func (s FilterState) Search() string                     { return s.search }
func (s FilterState) ConsultationType() ConsultationType { return s.consultationType }
func (s FilterState) SortBy() SortKey                    { return s.sortBy }

// Specialties returns a copy of the selected specialties.
func (s FilterState) Specialties() []string {
	if len(s.specialties) == 0 {
		return nil
	}
	out := make([]string, len(s.specialties))
	copy(out, s.specialties)
	return out
}

func (s FilterState) HasSpecialty(name string) bool {
	for _, sp := range s.specialties {
		if sp == name {
			return true
		}
	}
	return false
}

// IsDefault reports whether no field deviates from its default.
func (s FilterState) IsDefault() bool {
	return s.search == "" && len(s.specialties) == 0 && s.consultationType == "" && s.sortBy == SortNone
}

// Equal compares specialties as sets.
func (s FilterState) Equal(o FilterState) bool {
	if s.search != o.search || s.consultationType != o.consultationType || s.sortBy != o.sortBy {
		return false
	}
	if len(s.specialties) != len(o.specialties) {
		return false
	}
	for _, sp := range s.specialties {
		if !o.HasSpecialty(sp) {
			return false
		}
	}
	return true
}

// FilterUpdate names the fields to replace. Nil fields are left untouched.
type FilterUpdate struct {
	Search           *string
	Specialties      *[]string
	ConsultationType *ConsultationType
	SortBy           *SortKey
}

// Apply returns the state with every set field of u replaced wholesale.
func (s FilterState) Apply(u FilterUpdate) FilterState {
	next := NewFilterState(s.search, s.specialties, s.consultationType, s.sortBy)
	if u.Search != nil {
		next.search = *u.Search
	}
	if u.Specialties != nil {
		next.specialties = canonicalSpecialties(*u.Specialties)
	}
	if u.ConsultationType != nil {
		next.consultationType = ParseConsultationType(string(*u.ConsultationType))
	}
	if u.SortBy != nil {
		next.sortBy = ParseSortKey(string(*u.SortBy))
	}
	return next
}

// SetSearch builds an update replacing the search text.
func SetSearch(search string) FilterUpdate {
	return FilterUpdate{Search: &search}
}

// SetSpecialties builds an update replacing the specialty selection.
func SetSpecialties(specialties []string) FilterUpdate {
	return FilterUpdate{Specialties: &specialties}
}

// SetConsultationType builds an update replacing the consultation mode; "" means all.
func SetConsultationType(t ConsultationType) FilterUpdate {
	return FilterUpdate{ConsultationType: &t}
}

// SetSortBy builds an update replacing the sort key.
func SetSortBy(k SortKey) FilterUpdate {
	return FilterUpdate{SortBy: &k}
}

// ToggleSpecialty derives the full replacement list for a checkbox change.
func (s FilterState) ToggleSpecialty(name string, checked bool) FilterUpdate {
	next := make([]string, 0, len(s.specialties)+1)
	for _, sp := range s.specialties {
		if sp != name {
			next = append(next, sp)
		}
	}
	if checked {
		next = append(next, name)
	}
	return SetSpecialties(next)
}

// ClearFilters resets everything except the search text.
func ClearFilters() FilterUpdate {
	var (
		none []string
		ct   ConsultationType
		sort = SortNone
	)
	return FilterUpdate{Specialties: &none, ConsultationType: &ct, SortBy: &sort}
}

func canonicalSpecialties(in []string) []string {
	var out []string
	seen := make(map[string]struct{}, len(in))
	for _, sp := range in {
		if sp == "" || strings.Contains(sp, ",") {
			continue
		}
		if _, ok := seen[sp]; ok {
			continue
		}
		seen[sp] = struct{}{}
		out = append(out, sp)
	}
	return out
}
