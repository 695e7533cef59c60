package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"clinical-lab-records/internal/converter"
	"clinical-lab-records/internal/delivery/dto"
	"clinical-lab-records/internal/domain/entity"
	"clinical-lab-records/internal/domain/repository"

	"github.com/sirupsen/logrus"
)

type AttendanceUsecase interface {
	GetPatientRecord(ctx context.Context, patientID string) (*dto.PatientRecordResponse, error)
	ListExamCatalog(ctx context.Context) (*dto.ExamCatalogResponse, error)
	CreateAttendance(ctx context.Context, req *dto.CreateAttendanceRequest) (*dto.PatientRecordEntryResponse, error)
	ListAttendanceQueue(ctx context.Context, req *dto.AttendanceQueueRequest) (*dto.AttendanceQueueResponse, error)
	CompleteAttendance(ctx context.Context, req *dto.CompleteAttendanceRequest) (*dto.AttendanceQueueItemResponse, error)
}

type attendanceUsecase struct {
	log  *logrus.Logger
	repo repository.PatientRepository
}

func NewAttendanceUsecase(log *logrus.Logger, repo repository.PatientRepository) AttendanceUsecase {
	return &attendanceUsecase{
		log:  log,
		repo: repo,
	}
}

// GetPatientRecord returns the full historical record for one patient.
func (u *attendanceUsecase) GetPatientRecord(ctx context.Context, patientID string) (*dto.PatientRecordResponse, error) {
	if strings.TrimSpace(patientID) == "" {
		return nil, ValidationError("patient_id is required")
	}

	record, err := u.repo.GetPatientRecord(ctx, patientID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrPatientNotFound
		}
		u.log.Warnf("Failed to fetch record for patient %s: %+v", patientID, err)
		return nil, fmt.Errorf("failed to fetch patient record: %w", err)
	}

	return converter.PatientRecordToResponse(&record), nil
}

func (u *attendanceUsecase) ListExamCatalog(ctx context.Context) (*dto.ExamCatalogResponse, error) {
	catalog, err := u.repo.ListExamCatalog(ctx)
	if err != nil {
		u.log.Warnf("Failed to fetch exam catalog: %+v", err)
		return nil, fmt.Errorf("failed to fetch exam catalog: %w", err)
	}

	return &dto.ExamCatalogResponse{
		Items: converter.CatalogToResponses(catalog),
		Total: len(catalog),
	}, nil
}

// CreateAttendance opens a new attendance with at least one item. The
// whole write is atomic; a failed request leaves no partial state.
func (u *attendanceUsecase) CreateAttendance(ctx context.Context, req *dto.CreateAttendanceRequest) (*dto.PatientRecordEntryResponse, error) {
	if strings.TrimSpace(req.PatientID) == "" {
		return nil, ValidationError("patient_id is required")
	}
	if strings.TrimSpace(req.ExamDate) == "" {
		return nil, ValidationError("exam_date is required")
	}
	if len(req.Items) == 0 {
		return nil, ValidationError("items is required")
	}
	if s := strings.TrimSpace(req.Status); s != "" && !entity.ExamStatus(s).Valid() {
		return nil, ValidationError("status must be waiting or completed")
	}
	for _, item := range req.Items {
		if strings.TrimSpace(item.Name) == "" {
			return nil, ValidationError("item name is required")
		}
	}

	input := repository.CreateAttendanceInput{
		PatientID:     req.PatientID,
		ExamDate:      req.ExamDate,
		Status:        req.Status,
		RequesterID:   req.RequesterID,
		ProcedureType: req.ProcedureType,
		DeliveredTo:   req.DeliveredTo,
		Notes:         req.Notes,
	}
	for _, item := range req.Items {
		input.Items = append(input.Items, repository.CreateAttendanceItemInput{
			Name:           item.Name,
			Unit:           item.Unit,
			Method:         item.Method,
			ReferenceRange: item.ReferenceRange,
		})
	}

	entry, err := u.repo.CreateAttendance(ctx, input)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrPatientNotFound
		}
		u.log.Warnf("Failed to create attendance for patient %s: %+v", req.PatientID, err)
		return nil, fmt.Errorf("failed to create attendance: %w", err)
	}

	u.log.Infof("Attendance created: id=%s, patient=%s, items=%d", entry.ExamID, req.PatientID, len(entry.Items))
	return converter.RecordEntryToResponse(&entry), nil
}

// ListAttendanceQueue returns the worklist, optionally filtered. Filters
// are validated before any query executes.
func (u *attendanceUsecase) ListAttendanceQueue(ctx context.Context, req *dto.AttendanceQueueRequest) (*dto.AttendanceQueueResponse, error) {
	if req.Date != "" && !isDateOnly(req.Date) {
		return nil, ValidationError("date must be YYYY-MM-DD")
	}
	if req.Status != "" && !entity.ExamStatus(req.Status).Valid() {
		return nil, ValidationError("status must be waiting or completed")
	}

	items, err := u.repo.ListAttendanceQueue(ctx, entity.AttendanceQueueFilter{
		Date:   req.Date,
		Status: req.Status,
		Query:  req.Query,
	})
	if err != nil {
		u.log.Warnf("Failed to fetch attendance queue: %+v", err)
		return nil, fmt.Errorf("failed to fetch attendance queue: %w", err)
	}

	return &dto.AttendanceQueueResponse{
		Items: converter.QueueItemsToResponses(items),
		Total: len(items),
	}, nil
}

// CompleteAttendance transitions an attendance to completed and returns the
// refreshed worklist row. A missing id is reported, never silently ignored.
func (u *attendanceUsecase) CompleteAttendance(ctx context.Context, req *dto.CompleteAttendanceRequest) (*dto.AttendanceQueueItemResponse, error) {
	if strings.TrimSpace(req.AttendanceID) == "" {
		return nil, ValidationError("attendance_id is required")
	}

	item, err := u.repo.CompleteAttendance(ctx, req.AttendanceID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrAttendanceNotFound
		}
		u.log.Warnf("Failed to complete attendance %s: %+v", req.AttendanceID, err)
		return nil, fmt.Errorf("failed to complete attendance: %w", err)
	}

	u.log.Infof("Attendance completed: id=%s", item.AttendanceID)
	return converter.QueueItemToResponse(&item), nil
}

// isDateOnly accepts exactly the 10-character YYYY-MM-DD digit/dash layout.
func isDateOnly(value string) bool {
	if len(value) != 10 {
		return false
	}
	for i := 0; i < 10; i++ {
		if i == 4 || i == 7 {
			if value[i] != '-' {
				return false
			}
			continue
		}
		if value[i] < '0' || value[i] > '9' {
			return false
		}
	}
	return true
}
