package converter

import (
	"encoding/json"
	"fmt"
	"sort"
	"strconv"
	"strings"

	"doctor-directory/internal/delivery/dto"
	"doctor-directory/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/spf13/cast"
)

// doctorNamespace seeds fallback ids so they are stable across fetches.
var doctorNamespace = uuid.NewSHA1(uuid.NameSpaceURL, []byte("doctor-directory/doctor"))

// NormalizeDoctors decodes an upstream payload into doctors. Only a payload
// that is not a JSON array is an error; bad records degrade to defaults.
func NormalizeDoctors(payload []byte) ([]entity.Doctor, error) {
	var records []interface{}
	if err := json.Unmarshal(payload, &records); err != nil {
		return nil, fmt.Errorf("%w: %v", entity.ErrMalformedPayload, err)
	}

	doctors := make([]entity.Doctor, len(records))
	seen := make(map[string]struct{}, len(records))
	for i, record := range records {
		raw, _ := record.(map[string]interface{})
		doctor := NormalizeDoctor(raw, i)
		if _, dup := seen[doctor.ID]; dup {
			doctor.ID = FallbackID(i, doctor.Name)
		}
		seen[doctor.ID] = struct{}{}
		doctors[i] = doctor
	}
	return doctors, nil
}

// NormalizeDoctor never fails. index is the record's position in the payload
// and only feeds the fallback id.
func NormalizeDoctor(raw dto.RawDoctor, index int) entity.Doctor {
	name := toString(raw["name"])

	id := toString(raw["id"])
	if id == "" {
		id = FallbackID(index, name)
	}

	clinic := toMap(raw["clinic"])
	address := toMap(clinic["address"])

	doctor := entity.Doctor{
		ID:                id,
		Name:              name,
		Specialty:         specialtyNames(raw["specialities"]),
		Image:             toString(raw["photo"]),
		ExperienceYears:   FirstInt(toString(raw["experience"])),
		FeeAmount:         FirstInt(toString(raw["fees"])),
		ConsultationTypes: consultationTypes(raw),
		ClinicName:        toString(clinic["name"]),
		LocationCity:      toString(address["city"]),
		Qualifications:    toString(raw["qualifications"]),
		Introduction:      toString(raw["doctor_introduction"]),
		Languages:         stringList(raw["languages"]),
	}

	return doctor.WithInitials(strings.TrimSpace(toString(raw["name_initials"])))
}

// FallbackID derives a deterministic id from the record position and name.
func FallbackID(index int, name string) string {
	return uuid.NewSHA1(doctorNamespace, []byte(strconv.Itoa(index)+":"+name)).String()
}

// FirstInt parses the first run of ASCII digits in s, or returns 0.
func FirstInt(s string) int {
	start := strings.IndexAny(s, "0123456789")
	if start < 0 {
		return 0
	}
	end := start
	for end < len(s) && s[end] >= '0' && s[end] <= '9' {
		end++
	}
	n, err := strconv.Atoi(s[start:end])
	if err != nil {
		return 0
	}
	return n
}

// SpecialtyUniverse lists every distinct specialty, sorted.
func SpecialtyUniverse(doctors []entity.Doctor) []string {
	set := make(map[string]struct{})
	for _, d := range doctors {
		for _, s := range d.Specialty {
			if s != "" {
				set[s] = struct{}{}
			}
		}
	}

	universe := make([]string, 0, len(set))
	for s := range set {
		universe = append(universe, s)
	}
	sort.Strings(universe)
	return universe
}

// DoctorToResponse converts a Doctor entity to DoctorResponse DTO
func DoctorToResponse(d entity.Doctor) dto.DoctorResponse {
	types := make([]string, len(d.ConsultationTypes))
	for i, t := range d.ConsultationTypes {
		types[i] = string(t)
	}

	specialty := d.Specialty
	if specialty == nil {
		specialty = []string{}
	}

	return dto.DoctorResponse{
		ID:                d.ID,
		Name:              d.Name,
		Initials:          d.Initials(),
		Specialty:         specialty,
		Image:             d.Image,
		ExperienceYears:   d.ExperienceYears,
		FeeAmount:         d.FeeAmount,
		ConsultationTypes: types,
		Clinic:            d.ClinicName,
		Location:          d.LocationCity,
		Qualifications:    d.Qualifications,
		Introduction:      d.Introduction,
		Languages:         d.Languages,
	}
}

// DoctorsToResponses converts a slice of Doctor entities to slice of DoctorResponse DTOs
func DoctorsToResponses(doctors []entity.Doctor) []dto.DoctorResponse {
	responses := make([]dto.DoctorResponse, len(doctors))
	for i, d := range doctors {
		responses[i] = DoctorToResponse(d)
	}
	return responses
}

// DoctorsToSuggestions converts doctors to autocomplete entries.
func DoctorsToSuggestions(doctors []entity.Doctor) []dto.SuggestionResponse {
	suggestions := make([]dto.SuggestionResponse, len(doctors))
	for i, d := range doctors {
		suggestions[i] = dto.SuggestionResponse{
			ID:        d.ID,
			Name:      d.Name,
			Initials:  d.Initials(),
			Image:     d.Image,
			Specialty: strings.ToUpper(d.PrimarySpecialty()),
		}
	}
	return suggestions
}

func specialtyNames(v interface{}) []string {
	items, ok := v.([]interface{})
	if !ok {
		return nil
	}

	var names []string
	seen := make(map[string]struct{}, len(items))
	for _, item := range items {
		var name string
		switch s := item.(type) {
		case map[string]interface{}:
			name = toString(s["name"])
		case string:
			name = s
		}
		if name == "" {
			continue
		}
		if _, ok := seen[name]; ok {
			continue
		}
		seen[name] = struct{}{}
		names = append(names, name)
	}
	return names
}

// consultationTypes reads the video_consult / in_clinic flags. A record
// carrying neither flag is offered in both modes.
func consultationTypes(raw dto.RawDoctor) []entity.ConsultationType {
	video, hasVideo := raw["video_consult"]
	clinic, hasClinic := raw["in_clinic"]
	if !hasVideo && !hasClinic {
		return []entity.ConsultationType{entity.ConsultationVideo, entity.ConsultationInClinic}
	}

	types := []entity.ConsultationType{}
	if toBool(video) {
		types = append(types, entity.ConsultationVideo)
	}
	if toBool(clinic) {
		types = append(types, entity.ConsultationInClinic)
	}
	return types
}

func stringList(v interface{}) []string {
	items, ok := v.([]interface{})
	if !ok {
		return nil
	}
	var out []string
	for _, item := range items {
		if s := toString(item); s != "" {
			out = append(out, s)
		}
	}
	return out
}

func toString(v interface{}) string {
	s, err := cast.ToStringE(v)
	if err != nil {
		return ""
	}
	return s
}

func toBool(v interface{}) bool {
	b, err := cast.ToBoolE(v)
	if err != nil {
		return false
	}
	return b
}

func toMap(v interface{}) map[string]interface{} {
	m, _ := v.(map[string]interface{})
	return m
}
