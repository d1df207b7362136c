package usecase

import (
	"slices"

	"doctor-directory/internal/domain/entity"
	"doctor-directory/pkg/textmatch"
)

// Visible applies search, consultation filter, specialty filter and sort, in
// that order. The input slice is never reordered. An empty result is valid.
func Visible(doctors []entity.Doctor, state entity.FilterState) []entity.Doctor {
	search := state.Search()
	consultation := state.ConsultationType()
	specialties := state.Specialties()

	visible := make([]entity.Doctor, 0, len(doctors))
	for _, d := range doctors {
		if search != "" && !textmatch.ContainsFold(d.Name, search) {
			continue
		}
		if consultation != "" && !d.Offers(consultation) {
			continue
		}
		if len(specialties) > 0 && !d.HasAnySpecialty(specialties) {
			continue
		}
		visible = append(visible, d)
	}

	switch state.SortBy() {
	case entity.SortFees:
		slices.SortStableFunc(visible, func(a, b entity.Doctor) int {
			return a.FeeAmount - b.FeeAmount
		})
	case entity.SortExperience:
		slices.SortStableFunc(visible, func(a, b entity.Doctor) int {
			return b.ExperienceYears - a.ExperienceYears
		})
	}

	return visible
}
