package handler

import (
	"net/http"

	"doctor-directory/internal/converter"
	"doctor-directory/internal/delivery/dto"
	"doctor-directory/internal/usecase"
	"doctor-directory/pkg/response"
)

type DoctorHandler struct {
	directoryUsecase usecase.DoctorDirectoryUsecase
}

func NewDoctorHandler(directoryUsecase usecase.DoctorDirectoryUsecase) *DoctorHandler {
	return &DoctorHandler{
		directoryUsecase: directoryUsecase,
	}
}

// ProxyDoctors relays the upstream payload byte for byte.
func (h *DoctorHandler) ProxyDoctors(w http.ResponseWriter, r *http.Request) {
	payload, err := h.directoryUsecase.FetchRaw(r.Context())
	if err != nil {
		response.JSON(w, http.StatusInternalServerError, dto.ProxyErrorResponse{
			Message: "Error fetching doctor data",
			Error:   err.Error(),
		})
		return
	}

	response.Raw(w, http.StatusOK, payload)
}

func (h *DoctorHandler) ListDoctors(w http.ResponseWriter, r *http.Request) {
	state := converter.FilterStateFromValues(r.URL.Query())

	result, err := h.directoryUsecase.Browse(r.Context(), state)
	if err != nil {
		response.BadGateway(w, "Failed to load doctors", err.Error())
		return
	}

	response.Success(w, http.StatusOK, "Doctors retrieved successfully", result)
}

func (h *DoctorHandler) ListSpecialties(w http.ResponseWriter, r *http.Request) {
	result, err := h.directoryUsecase.Specialties(r.Context())
	if err != nil {
		response.BadGateway(w, "Failed to load specialties", err.Error())
		return
	}

	response.Success(w, http.StatusOK, "Specialties retrieved successfully", result)
}

func (h *DoctorHandler) Suggest(w http.ResponseWriter, r *http.Request) {
	result, err := h.directoryUsecase.Suggest(r.Context(), r.URL.Query().Get("q"))
	if err != nil {
		response.BadGateway(w, "Failed to load suggestions", err.Error())
		return
	}

	response.Success(w, http.StatusOK, "Suggestions retrieved successfully", result)
}
