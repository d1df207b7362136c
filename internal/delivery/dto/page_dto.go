package dto

// DirectoryPage is the view-model of the rendered directory page.
type DirectoryPage struct {
	Status  string
	URLSync bool

	// Query is the canonical encoding of the current filter state.
	Query            string
	Search           string
	SortBy           string
	ConsultationType string
	SpecialtyFilter  string
	Specialties      []SpecialtyOption
	// HiddenSelected are selected specialties the sub-search currently hides.
	HiddenSelected   []string

	Doctors []DoctorResponse

	SuggestQuery string
	Suggestions  []SuggestionResponse

	ErrorMessage string
	RetryURL     string
}

type SpecialtyOption struct {
	Name    string
	TestID  string
	Checked bool
}

func (p DirectoryPage) Ready() bool   { return p.Status == "ready" }
func (p DirectoryPage) Failed() bool  { return p.Status == "failed" }
func (p DirectoryPage) Pending() bool { return p.Status == "pending" }

// Empty distinguishes "no results" from loading and failure.
func (p DirectoryPage) Empty() bool { return p.Ready() && len(p.Doctors) == 0 }
