package converter

import (
	"net/url"
	"strings"

	"doctor-directory/internal/domain/entity"
)

// Query parameter names of the shareable page URL.
const (
	ParamSearch           = "search"
	ParamSpecialties      = "specialties"
	ParamConsultationType = "consultationType"
	ParamSortBy           = "sortBy"
)

// FilterStateToValues emits one parameter per non-default field.
func FilterStateToValues(s entity.FilterState) url.Values {
	values := url.Values{}
	if s.Search() != "" {
		values.Set(ParamSearch, s.Search())
	}
	if specialties := s.Specialties(); len(specialties) > 0 {
		values.Set(ParamSpecialties, strings.Join(specialties, ","))
	}
	if s.ConsultationType() != "" {
		values.Set(ParamConsultationType, string(s.ConsultationType()))
	}
	if s.SortBy() != entity.SortNone {
		values.Set(ParamSortBy, string(s.SortBy()))
	}
	return values
}

// EncodeFilterState returns the query string without a leading '?'.
// The default state encodes to "".
func EncodeFilterState(s entity.FilterState) string {
	return FilterStateToValues(s).Encode()
}

// FilterStateFromValues never fails: missing or unknown values become defaults.
func FilterStateFromValues(values url.Values) entity.FilterState {
	var specialties []string
	if raw := values.Get(ParamSpecialties); raw != "" {
		specialties = strings.Split(raw, ",")
	}

	return entity.NewFilterState(
		values.Get(ParamSearch),
		specialties,
		entity.ParseConsultationType(values.Get(ParamConsultationType)),
		entity.ParseSortKey(values.Get(ParamSortBy)),
	)
}

// DecodeFilterState parses a query string, with or without the leading '?'.
// Malformed pairs are skipped.
func DecodeFilterState(query string) entity.FilterState {
	values, _ := url.ParseQuery(strings.TrimPrefix(query, "?"))
	return FilterStateFromValues(values)
}
