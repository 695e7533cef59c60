package handler

import (
	"errors"
	"net/http"

	"clinical-lab-records/internal/usecase"
	"clinical-lab-records/pkg/response"
)

// writeUsecaseError maps use-case errors onto HTTP statuses. Anything not
// explicitly classified is reported as an internal error without leaking
// storage detail.
func writeUsecaseError(w http.ResponseWriter, err error, fallback string) {
	switch {
	case usecase.IsValidationError(err):
		response.Error(w, http.StatusBadRequest, err.Error(), nil)
	case errors.Is(err, usecase.ErrPatientNotFound),
		errors.Is(err, usecase.ErrAttendanceNotFound):
		response.NotFound(w, err.Error())
	case errors.Is(err, usecase.ErrCPFAlreadyExists):
		response.Conflict(w, err.Error())
	default:
		response.InternalServerError(w, fallback)
	}
}
