package dto

// RawDoctor is one record of the upstream payload. Its shape is owned by the
// upstream, so every field is read defensively.
type RawDoctor map[string]interface{}

// Response DTOs

type DoctorResponse struct {
	ID                string   `json:"id"`
	Name              string   `json:"name"`
	Initials          string   `json:"initials"`
	Specialty         []string `json:"specialty"`
	Image             string   `json:"image,omitempty"`
	ExperienceYears   int      `json:"experience"`
	FeeAmount         int      `json:"fees"`
	ConsultationTypes []string `json:"consultationType"`
	Clinic            string   `json:"clinic,omitempty"`
	Location          string   `json:"location,omitempty"`
	Qualifications    string   `json:"qualifications,omitempty"`
	Introduction      string   `json:"introduction,omitempty"`
	Languages         []string `json:"languages,omitempty"`
}

type DoctorListResponse struct {
	Doctors []DoctorResponse `json:"doctors"`
	Total   int              `json:"total"`
	Query   string           `json:"query"`
}

type SuggestionResponse struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Initials  string `json:"initials"`
	Image     string `json:"image,omitempty"`
	Specialty string `json:"specialty,omitempty"`
}

type SuggestionListResponse struct {
	Suggestions []SuggestionResponse `json:"suggestions"`
}

type SpecialtyListResponse struct {
	Specialties []string `json:"specialties"`
	Total       int      `json:"total"`
}

// ProxyErrorResponse is the body of a failed /api/doctors proxy call.
type ProxyErrorResponse struct {
	Message string `json:"message"`
	Error   string `json:"error"`
}
