package entity

import "unicode/utf8"

// ConsultationType is a consultation mode offered by a doctor.
// The values are the literals used in URLs.
type ConsultationType string

const (
	ConsultationVideo    ConsultationType = "Video Consult"
	ConsultationInClinic ConsultationType = "In Clinic"
)

// ParseConsultationType returns the matching type, or "" for anything else.
func ParseConsultationType(s string) ConsultationType {
	switch ConsultationType(s) {
	case ConsultationVideo:
		return ConsultationVideo
	case ConsultationInClinic:
		return ConsultationInClinic
	}
	return ""
}

// Doctor is a normalized practitioner record, built once per fetch.
type Doctor struct {
	ID                string
	Name              string
	Specialty         []string
	Image             string
	ExperienceYears   int
	FeeAmount         int
	ConsultationTypes []ConsultationType
	ClinicName        string
	LocationCity      string
	Qualifications    string
	Introduction      string
	Languages         []string

	initials string
}

// WithInitials returns a copy carrying source-provided initials.
func (d Doctor) WithInitials(initials string) Doctor {
	d.initials = initials
	return d
}

// Initials is what a card shows when there is no image.
func (d Doctor) Initials() string {
	if d.initials != "" {
		return d.initials
	}
	if d.Name == "" {
		return "?"
	}
	r, _ := utf8.DecodeRuneInString(d.Name)
	return string(r)
}

func (d Doctor) Offers(t ConsultationType) bool {
	for _, ct := range d.ConsultationTypes {
		if ct == t {
			return true
		}
	}
	return false
}

// HasAnySpecialty reports a case-sensitive intersection with wanted.
func (d Doctor) HasAnySpecialty(wanted []string) bool {
	for _, w := range wanted {
		for _, s := range d.Specialty {
			if s == w {
				return true
			}
		}
	}
	return false
}

// PrimarySpecialty is the first listed specialty, or "".
func (d Doctor) PrimarySpecialty() string {
	if len(d.Specialty) == 0 {
		return ""
	}
	return d.Specialty[0]
}
