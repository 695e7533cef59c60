package repository

import (
	"context"

	"clinical-lab-records/internal/domain/entity"
)

// CreateAttendanceItemInput describes one line item of a new attendance.
// Optional fields use the empty string for "no value".
type CreateAttendanceItemInput struct {
	Name           string
	Unit           string
	Method         string
	ReferenceRange string
}

// CreateAttendanceInput describes a new attendance with its items.
// PatientID must reference an existing patient; an unknown id fails the
// whole write with ErrNotFound.
type CreateAttendanceInput struct {
	PatientID     string
	ExamDate      string
	Status        string
	RequesterID   string
	ProcedureType string
	DeliveredTo   string
	Notes         string
	Items         []CreateAttendanceItemInput
}

// PatientRepository is the single entry point to the persistence layer.
// Implementations own the connection pool; all results are values returned
// by copy. Every method returns either a fully populated value or one of
// the error kinds in errors.go, never both.
type PatientRepository interface {
	Insert(ctx context.Context, patient *entity.Patient) (entity.Patient, error)
	List(ctx context.Context, query string) ([]entity.Patient, error)
	GetPatientRecord(ctx context.Context, patientID string) (entity.PatientRecord, error)
	ListExamCatalog(ctx context.Context) ([]entity.ExamCatalogItem, error)
	CreateAttendance(ctx context.Context, input CreateAttendanceInput) (entity.PatientRecordEntry, error)
	ListAttendanceQueue(ctx context.Context, filter entity.AttendanceQueueFilter) ([]entity.AttendanceQueueItem, error)
	CompleteAttendance(ctx context.Context, attendanceID string) (entity.AttendanceQueueItem, error)
}
