package usecase

import (
	"testing"

	"doctor-directory/internal/domain/entity"

	"github.com/stretchr/testify/assert"
)

func names(doctors []entity.Doctor) []string {
	out := make([]string, len(doctors))
	for i, d := range doctors {
		out[i] = d.Name
	}
	return out
}

func scenarioDoctors() []entity.Doctor {
	both := []entity.ConsultationType{entity.ConsultationVideo, entity.ConsultationInClinic}
	return []entity.Doctor{
		{ID: "a", Name: "Dr. A", FeeAmount: 500, ExperienceYears: 10, ConsultationTypes: both},
		{ID: "b", Name: "Dr. B", FeeAmount: 300, ExperienceYears: 5, ConsultationTypes: both},
	}
}

func TestVisible_SortByFees(t *testing.T) {
	got := Visible(scenarioDoctors(), entity.NewFilterState("", nil, "", entity.SortFees))
	assert.Equal(t, []string{"Dr. B", "Dr. A"}, names(got))
}

func TestVisible_SortByExperience(t *testing.T) {
	got := Visible(scenarioDoctors(), entity.NewFilterState("", nil, "", entity.SortExperience))
	assert.Equal(t, []string{"Dr. A", "Dr. B"}, names(got))
}

func TestVisible_Search(t *testing.T) {
	doctors := scenarioDoctors()

	assert.Equal(t, []string{"Dr. B"}, names(Visible(doctors, entity.NewFilterState("B", nil, "", ""))))
	assert.Equal(t, []string{"Dr. B"}, names(Visible(doctors, entity.NewFilterState("dr. b", nil, "", ""))))

	empty := Visible(doctors, entity.NewFilterState("z", nil, "", ""))
	assert.NotNil(t, empty)
	assert.Empty(t, empty)
}

func TestVisible_UnsortedKeepsInputOrder(t *testing.T) {
	got := Visible(scenarioDoctors(), entity.FilterState{})
	assert.Equal(t, []string{"Dr. A", "Dr. B"}, names(got))
}

func TestVisible_ConsultationFilter(t *testing.T) {
	doctors := []entity.Doctor{
		{Name: "video", ConsultationTypes: []entity.ConsultationType{entity.ConsultationVideo}},
		{Name: "clinic", ConsultationTypes: []entity.ConsultationType{entity.ConsultationInClinic}},
		{Name: "none"},
	}

	assert.Equal(t, []string{"video"}, names(Visible(doctors, entity.NewFilterState("", nil, entity.ConsultationVideo, ""))))
	assert.Equal(t, []string{"clinic"}, names(Visible(doctors, entity.NewFilterState("", nil, entity.ConsultationInClinic, ""))))
	assert.Len(t, Visible(doctors, entity.FilterState{}), 3)
}

func TestVisible_SpecialtyFilterIntersects(t *testing.T) {
	doctors := []entity.Doctor{
		{Name: "dentist", Specialty: []string{"Dentist"}},
		{Name: "ent", Specialty: []string{"ENT", "Dentist"}},
		{Name: "cardio", Specialty: []string{"Cardiology"}},
		{Name: "none"},
	}

	got := Visible(doctors, entity.NewFilterState("", []string{"Dentist", "Oncology"}, "", ""))
	assert.Equal(t, []string{"dentist", "ent"}, names(got))

	got = Visible(doctors, entity.NewFilterState("", []string{"dentist"}, "", ""))
	assert.Empty(t, got)
}

func TestVisible_SpecialtyFilterNeverWidensResult(t *testing.T) {
	doctors := []entity.Doctor{
		{Name: "Dr. One", Specialty: []string{"Dentist"}, ConsultationTypes: []entity.ConsultationType{entity.ConsultationVideo}},
		{Name: "Dr. Two", Specialty: []string{"ENT"}, ConsultationTypes: []entity.ConsultationType{entity.ConsultationVideo}},
		{Name: "Dr. Three", Specialty: []string{"Dentist"}},
	}
	base := entity.NewFilterState("dr", nil, entity.ConsultationVideo, "")
	unfiltered := Visible(doctors, base)

	for _, sp := range []string{"Dentist", "ENT", "Missing"} {
		filtered := Visible(doctors, base.Apply(base.ToggleSpecialty(sp, true)))
		assert.LessOrEqual(t, len(filtered), len(unfiltered))
		for _, d := range filtered {
			assert.Contains(t, names(unfiltered), d.Name)
		}
	}
}

func TestVisible_SortIsStable(t *testing.T) {
	doctors := []entity.Doctor{
		{Name: "first", FeeAmount: 300, ExperienceYears: 7},
		{Name: "second", FeeAmount: 100, ExperienceYears: 7},
		{Name: "third", FeeAmount: 300, ExperienceYears: 9},
		{Name: "fourth", FeeAmount: 100, ExperienceYears: 7},
		{Name: "fifth", FeeAmount: 300, ExperienceYears: 7},
	}

	byFee := Visible(doctors, entity.NewFilterState("", nil, "", entity.SortFees))
	assert.Equal(t, []string{"second", "fourth", "first", "third", "fifth"}, names(byFee))

	byExperience := Visible(doctors, entity.NewFilterState("", nil, "", entity.SortExperience))
	assert.Equal(t, []string{"third", "first", "second", "fourth", "fifth"}, names(byExperience))
}

func TestVisible_DoesNotReorderInput(t *testing.T) {
	doctors := scenarioDoctors()
	Visible(doctors, entity.NewFilterState("", nil, "", entity.SortFees))
	assert.Equal(t, []string{"Dr. A", "Dr. B"}, names(doctors))
}
