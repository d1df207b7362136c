package handler

import (
	"net/http"
	"net/url"

	"doctor-directory/internal/converter"
	"doctor-directory/internal/delivery/http/view"
	"doctor-directory/internal/domain/entity"
	"doctor-directory/internal/usecase"
	"doctor-directory/pkg/response"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cast"
)

// Page form fields and query parameters that are not part of the filter state.
const (
	fieldState           = "state"
	fieldAction          = "action"
	fieldValue           = "value"
	fieldChecked         = "checked"
	paramSpecialtyFilter = "specialtyFilter"
	paramSuggestQuery    = "q"
	paramSuggestionName  = "name"
)

// Actions accepted by POST /filters.
const (
	actionSearch          = "search"
	actionSort            = "sort"
	actionConsultation    = "consultation"
	actionSpecialties     = "specialties"
	actionToggleSpecialty = "toggle-specialty"
	actionSpecialtyFilter = "specialty-filter"
	actionClear           = "clear"
)

type PageHandler struct {
	directoryUsecase usecase.DoctorDirectoryUsecase
	renderer         *view.Renderer
	urlSync          bool
	log              *logrus.Logger
}

func NewPageHandler(directoryUsecase usecase.DoctorDirectoryUsecase, renderer *view.Renderer, urlSync bool, log *logrus.Logger) *PageHandler {
	return &PageHandler{
		directoryUsecase: directoryUsecase,
		renderer:         renderer,
		urlSync:          urlSync,
		log:              log,
	}
}

// ShowDirectory renders GET /. The filter state is read from the URL only
// when URL sync is enabled.
func (h *PageHandler) ShowDirectory(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	var state entity.FilterState
	if h.urlSync {
		state = converter.FilterStateFromValues(query)
	}

	h.render(w, r, state, query.Get(paramSpecialtyFilter), query.Get(paramSuggestQuery), r.URL.RequestURI())
}

// UpdateFilters is the reducer endpoint. The current state arrives encoded in
// the hidden "state" field.
func (h *PageHandler) UpdateFilters(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid form body", nil)
		return
	}

	state := converter.DecodeFilterState(r.PostFormValue(fieldState))
	specialtyFilter := r.PostFormValue(paramSpecialtyFilter)
	value := r.PostFormValue(fieldValue)

	var update entity.FilterUpdate
	switch r.PostFormValue(fieldAction) {
	case actionSearch:
		update = entity.SetSearch(value)
	case actionSort:
		update = entity.SetSortBy(entity.ParseSortKey(value))
	case actionConsultation:
		update = entity.SetConsultationType(entity.ParseConsultationType(value))
	case actionSpecialties:
		update = entity.SetSpecialties(r.PostForm[fieldValue])
	case actionToggleSpecialty:
		update = state.ToggleSpecialty(value, cast.ToBool(r.PostFormValue(fieldChecked)))
	case actionSpecialtyFilter:
		specialtyFilter = value
	case actionClear:
		update = entity.ClearFilters()
		specialtyFilter = ""
	default:
		h.log.WithField("action", r.PostFormValue(fieldAction)).Debug("Unknown filter action")
	}

	h.commit(w, r, state, update, specialtyFilter)
}

// SelectSuggestion commits a picked suggestion the same way a search submit does.
func (h *PageHandler) SelectSuggestion(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	state := converter.DecodeFilterState(query.Get(fieldState))

	h.commit(w, r, state, entity.SetSearch(query.Get(paramSuggestionName)), query.Get(paramSpecialtyFilter))
}

func (h *PageHandler) commit(w http.ResponseWriter, r *http.Request, state entity.FilterState, update entity.FilterUpdate, specialtyFilter string) {
	next, encoded := usecase.Reduce(state, update)
	if h.urlSync {
		http.Redirect(w, r, pageURL(encoded, specialtyFilter), http.StatusSeeOther)
		return
	}

	retryURL := "/"
	if r.Method == http.MethodGet {
		retryURL = r.URL.RequestURI()
	}
	h.render(w, r, next, specialtyFilter, "", retryURL)
}

func (h *PageHandler) render(w http.ResponseWriter, r *http.Request, state entity.FilterState, specialtyFilter, suggestQuery, retryURL string) {
	listing := h.directoryUsecase.LoadListing(r.Context())

	var visible []entity.Doctor
	if listing.Status == entity.ListingReady {
		visible = usecase.Visible(listing.Doctors, state)
	}

	page := converter.ListingToPage(listing, state, visible, converter.PageOptions{
		URLSync:         h.urlSync,
		SpecialtyFilter: specialtyFilter,
		SuggestQuery:    suggestQuery,
		Suggestions:     usecase.SuggestIn(listing, suggestQuery),
		RetryURL:        retryURL,
	})

	statusCode := http.StatusOK
	if listing.Status == entity.ListingFailed {
		statusCode = http.StatusBadGateway
	}

	if err := h.renderer.RenderDirectory(w, statusCode, page); err != nil {
		h.log.Errorf("Error rendering directory page: %+v", err)
		response.InternalServerError(w, "Failed to render page")
	}
}

// pageURL is the shareable address of a state; the specialty sub-search rides
// along but is never part of the encoded state.
func pageURL(encoded, specialtyFilter string) string {
	if specialtyFilter != "" {
		extra := url.Values{paramSpecialtyFilter: {specialtyFilter}}.Encode()
		if encoded == "" {
			encoded = extra
		} else {
			encoded += "&" + extra
		}
	}
	if encoded == "" {
		return "/"
	}
	return "/?" + encoded
}
