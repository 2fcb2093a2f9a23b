package handler

import (
	"net/http"

	"medifind/internal/usecase"
	"medifind/pkg/response"

	"github.com/gorilla/mux"
)

type DoctorHandler struct {
	doctorUsecase usecase.DoctorUsecase
}

func NewDoctorHandler(doctorUsecase usecase.DoctorUsecase) *DoctorHandler {
	return &DoctorHandler{
		doctorUsecase: doctorUsecase,
	}
}

// GetAllDoctors lists the catalog. Optional search and specialization query
// parameters narrow the result the same way the directory's search bar does.
func (h *DoctorHandler) GetAllDoctors(w http.ResponseWriter, r *http.Request) {
	search := r.URL.Query().Get("search")
	specialization := r.URL.Query().Get("specialization")

	doctors, err := h.doctorUsecase.SearchDoctors(r.Context(), search, specialization)
	if err != nil {
		response.InternalServerError(w, "Failed to get doctors")
		return
	}

	response.JSON(w, http.StatusOK, doctors)
}

func (h *DoctorHandler) GetDoctor(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	doctorID := vars["id"]

	doctor, err := h.doctorUsecase.GetDoctor(r.Context(), doctorID)
	if err != nil {
		if err == usecase.ErrDoctorNotFound {
			response.NotFound(w, "Doctor not found")
			return
		}
		response.InternalServerError(w, "Failed to get doctor")
		return
	}

	response.JSON(w, http.StatusOK, doctor)
}
