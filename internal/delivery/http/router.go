package http

import (
	"net/http"

	"clinical-lab-records/internal/delivery/http/handler"
	"clinical-lab-records/internal/delivery/http/middleware"

	"github.com/gorilla/mux"
)

type Router struct {
	router            *mux.Router
	patientHandler    *handler.PatientHandler
	attendanceHandler *handler.AttendanceHandler
	corsMiddleware    *middleware.CORSMiddleware
}

func NewRouter(
	patientHandler *handler.PatientHandler,
	attendanceHandler *handler.AttendanceHandler,
	corsMiddleware *middleware.CORSMiddleware,
) *Router {
	return &Router{
		router:            mux.NewRouter(),
		patientHandler:    patientHandler,
		attendanceHandler: attendanceHandler,
		corsMiddleware:    corsMiddleware,
	}
}

func (r *Router) Setup() *mux.Router {
	// API versioning
	api := r.router.PathPrefix("/api/v1").Subrouter()

	// Health check
	api.HandleFunc("/health", r.healthCheck).Methods(http.MethodGet)

	// Patients
	api.HandleFunc("/patients", r.patientHandler.CreatePatient).Methods(http.MethodPost)
	api.HandleFunc("/patients", r.patientHandler.ListPatients).Methods(http.MethodGet)
	api.HandleFunc("/patients/{id}/record", r.attendanceHandler.GetPatientRecord).Methods(http.MethodGet)

	// Attendances
	api.HandleFunc("/attendances", r.attendanceHandler.CreateAttendance).Methods(http.MethodPost)
	api.HandleFunc("/attendances", r.attendanceHandler.ListAttendanceQueue).Methods(http.MethodGet)
	api.HandleFunc("/attendances/{id}/complete", r.attendanceHandler.CompleteAttendance).Methods(http.MethodPost)

	// Exam catalog
	api.HandleFunc("/exam-catalog", r.attendanceHandler.ListExamCatalog).Methods(http.MethodGet)

	// Add CORS middleware
	r.router.Use(r.corsMiddleware.Handle)

	return r.router
}

func (r *Router) healthCheck(w http.ResponseWriter, req *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"status": "ok"}`))
}
