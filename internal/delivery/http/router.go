package http

import (
	"net/http"

	"medifind/internal/delivery/http/handler"
	"medifind/internal/delivery/http/middleware"

	"github.com/gorilla/mux"
)

type Router struct {
	router             *mux.Router
	appointmentHandler *handler.AppointmentHandler
	doctorHandler      *handler.DoctorHandler
	corsMiddleware     *middleware.CORSMiddleware
	loggingMiddleware  *middleware.LoggingMiddleware
}

func NewRouter(
	appointmentHandler *handler.AppointmentHandler,
	doctorHandler *handler.DoctorHandler,
	corsMiddleware *middleware.CORSMiddleware,
	loggingMiddleware *middleware.LoggingMiddleware,
) *Router {
	return &Router{
		router:             mux.NewRouter(),
		appointmentHandler: appointmentHandler,
		doctorHandler:      doctorHandler,
		corsMiddleware:     corsMiddleware,
		loggingMiddleware:  loggingMiddleware,
	}
}

// Setup registers all routes. Paths are unversioned: the web client
// hard-codes /appointments and /doctors.
func (r *Router) Setup() *mux.Router {
	// Health check
	r.router.HandleFunc("/health", r.healthCheck).Methods(http.MethodGet)

	// Appointments
	r.router.HandleFunc("/appointments", r.appointmentHandler.CreateAppointment).Methods(http.MethodPost, http.MethodOptions)
	r.router.HandleFunc("/appointments", r.appointmentHandler.GetAllAppointments).Methods(http.MethodGet)

	// Doctor directory
	r.router.HandleFunc("/doctors", r.doctorHandler.GetAllDoctors).Methods(http.MethodGet, http.MethodOptions)
	r.router.HandleFunc("/doctors/{id}", r.doctorHandler.GetDoctor).Methods(http.MethodGet)

	r.router.Use(r.corsMiddleware.Handle)
	r.router.Use(r.loggingMiddleware.Handle)

	return r.router
}

func (r *Router) healthCheck(w http.ResponseWriter, req *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"status": "ok"}`))
}
