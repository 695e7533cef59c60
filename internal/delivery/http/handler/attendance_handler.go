package handler

import (
	"encoding/json"
	"net/http"

	"clinical-lab-records/internal/delivery/dto"
	"clinical-lab-records/internal/usecase"
	"clinical-lab-records/pkg/response"
	"clinical-lab-records/pkg/validator"

	"github.com/gorilla/mux"
)

type AttendanceHandler struct {
	attendanceUsecase usecase.AttendanceUsecase
	validator         *validator.CustomValidator
}

func NewAttendanceHandler(attendanceUsecase usecase.AttendanceUsecase, validator *validator.CustomValidator) *AttendanceHandler {
	return &AttendanceHandler{
		attendanceUsecase: attendanceUsecase,
		validator:         validator,
	}
}

func (h *AttendanceHandler) GetPatientRecord(w http.ResponseWriter, r *http.Request) {
	patientID := mux.Vars(r)["id"]

	record, err := h.attendanceUsecase.GetPatientRecord(r.Context(), patientID)
	if err != nil {
		writeUsecaseError(w, err, "Failed to fetch patient record")
		return
	}

	response.Success(w, http.StatusOK, "Patient record retrieved successfully", record)
}

func (h *AttendanceHandler) ListExamCatalog(w http.ResponseWriter, r *http.Request) {
	catalog, err := h.attendanceUsecase.ListExamCatalog(r.Context())
	if err != nil {
		writeUsecaseError(w, err, "Failed to fetch exam catalog")
		return
	}

	response.Success(w, http.StatusOK, "Exam catalog retrieved successfully", catalog)
}

func (h *AttendanceHandler) CreateAttendance(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateAttendanceRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	entry, err := h.attendanceUsecase.CreateAttendance(r.Context(), &req)
	if err != nil {
		writeUsecaseError(w, err, "Failed to create attendance")
		return
	}

	response.Success(w, http.StatusCreated, "Attendance created successfully", entry)
}

func (h *AttendanceHandler) ListAttendanceQueue(w http.ResponseWriter, r *http.Request) {
	params := r.URL.Query()
	req := dto.AttendanceQueueRequest{
		Date:   params.Get("date"),
		Status: params.Get("status"),
		Query:  params.Get("query"),
	}

	queue, err := h.attendanceUsecase.ListAttendanceQueue(r.Context(), &req)
	if err != nil {
		writeUsecaseError(w, err, "Failed to fetch attendance queue")
		return
	}

	response.Success(w, http.StatusOK, "Attendance queue retrieved successfully", queue)
}

func (h *AttendanceHandler) CompleteAttendance(w http.ResponseWriter, r *http.Request) {
	req := dto.CompleteAttendanceRequest{
		AttendanceID: mux.Vars(r)["id"],
	}

	item, err := h.attendanceUsecase.CompleteAttendance(r.Context(), &req)
	if err != nil {
		writeUsecaseError(w, err, "Failed to complete attendance")
		return
	}

	response.Success(w, http.StatusOK, "Attendance completed successfully", item)
}
