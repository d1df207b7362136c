package converter

import (
	"strings"

	"doctor-directory/internal/delivery/dto"
	"doctor-directory/internal/domain/entity"
	"doctor-directory/pkg/textmatch"
)

// PageOptions carries view-local inputs that are not part of FilterState.
type PageOptions struct {
	URLSync         bool
	SpecialtyFilter string
	SuggestQuery    string
	Suggestions     []entity.Doctor
	RetryURL        string
}

// ListingToPage builds the page view-model. visible is the engine output for
// state and is ignored unless the listing is ready.
func ListingToPage(listing entity.Listing, state entity.FilterState, visible []entity.Doctor, opts PageOptions) dto.DirectoryPage {
	page := dto.DirectoryPage{
		Status:           listing.Status.String(),
		URLSync:          opts.URLSync,
		Query:            EncodeFilterState(state),
		Search:           state.Search(),
		SortBy:           string(state.SortBy()),
		ConsultationType: string(state.ConsultationType()),
		SpecialtyFilter:  opts.SpecialtyFilter,
		SuggestQuery:     opts.SuggestQuery,
		RetryURL:         opts.RetryURL,
	}

	switch listing.Status {
	case entity.ListingReady:
		page.Doctors = DoctorsToResponses(visible)
		page.Suggestions = DoctorsToSuggestions(opts.Suggestions)
		for _, name := range listing.Specialties {
			if !textmatch.ContainsFold(name, opts.SpecialtyFilter) {
				if state.HasSpecialty(name) {
					page.HiddenSelected = append(page.HiddenSelected, name)
				}
				continue
			}
			page.Specialties = append(page.Specialties, dto.SpecialtyOption{
				Name:    name,
				TestID:  "filter-specialty-" + strings.Replace(name, "/", "-", 1),
				Checked: state.HasSpecialty(name),
			})
		}
	case entity.ListingFailed:
		page.ErrorMessage = "We're unable to load the doctor listing at this time. Please try again later."
	}

	return page
}
