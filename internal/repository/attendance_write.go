package repository

import (
	"context"
	"errors"
	"fmt"

	"clinical-lab-records/internal/domain/entity"
	domainRepo "clinical-lab-records/internal/domain/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// CreateAttendance inserts the exam and all of its items as one atomic
// unit. Any failure rolls the whole attendance back; readers never observe
// a parent without its items.
func (r *patientRepository) CreateAttendance(ctx context.Context, input domainRepo.CreateAttendanceInput) (entity.PatientRecordEntry, error) {
	ctx, cancel := r.opContext(ctx)
	defer cancel()

	status := entity.ExamStatusWaiting
	if s := optional(input.Status); s != nil {
		status = entity.ExamStatus(*s)
	}
	// The status enumeration is enforced here too; a value outside it must
	// never reach the exams table.
	if !status.Valid() {
		return entity.PatientRecordEntry{}, fmt.Errorf("%w: status %q is outside the enumeration", domainRepo.ErrPersistence, status)
	}

	var entry entity.PatientRecordEntry
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var patient entity.Patient
		if err := tx.Select("id").Where("id = ?", input.PatientID).First(&patient).Error; err != nil {
			return err
		}

		exam := entity.Exam{
			ID:            uuid.NewString(),
			PatientID:     input.PatientID,
			RequesterID:   optional(input.RequesterID),
			ExamDate:      input.ExamDate,
			Status:        status,
			ProcedureType: optional(input.ProcedureType),
			DeliveredTo:   optional(input.DeliveredTo),
			Notes:         optional(input.Notes),
		}
		if err := tx.Create(&exam).Error; err != nil {
			return err
		}

		// A requester id without a matching row is tolerated; the name is
		// simply omitted.
		var requesterName *string
		if exam.RequesterID != nil {
			var requester entity.Requester
			err := tx.Where("id = ?", *exam.RequesterID).First(&requester).Error
			switch {
			case err == nil:
				requesterName = &requester.Name
			case !errors.Is(err, gorm.ErrRecordNotFound):
				return err
			}
		}

		items := make([]entity.RecordItem, 0, len(input.Items))
		for _, itemInput := range input.Items {
			item := entity.ExamItem{
				ID:             uuid.NewString(),
				ExamID:         exam.ID,
				Name:           itemInput.Name,
				Unit:           optional(itemInput.Unit),
				Method:         optional(itemInput.Method),
				ReferenceRange: optional(itemInput.ReferenceRange),
			}
			if err := tx.Create(&item).Error; err != nil {
				return err
			}
			items = append(items, entity.RecordItem{
				ID:             item.ID,
				Name:           item.Name,
				Unit:           item.Unit,
				Method:         item.Method,
				ReferenceRange: item.ReferenceRange,
			})
		}

		entry = entity.PatientRecordEntry{
			ExamID:        exam.ID,
			ExamDate:      exam.ExamDate,
			Status:        exam.Status,
			RequesterName: requesterName,
			Items:         items,
		}
		return nil
	})
	if err != nil {
		return entity.PatientRecordEntry{}, mapStorageError(err)
	}
	return entry, nil
}

// CompleteAttendance atomically transitions waiting -> completed, refreshes
// updated_at and returns the updated queue view through the same lookup
// path the queue listing uses, so the two can never disagree.
func (r *patientRepository) CompleteAttendance(ctx context.Context, attendanceID string) (entity.AttendanceQueueItem, error) {
	ctx, cancel := r.opContext(ctx)
	defer cancel()

	var item entity.AttendanceQueueItem
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		result := tx.Model(&entity.Exam{}).
			Where("id = ?", attendanceID).
			Update("status", entity.ExamStatusCompleted)
		if result.Error != nil {
			return result.Error
		}
		// Zero affected rows is a missing attendance, not a silent no-op.
		if result.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}

		items, err := r.queueItems(tx, entity.AttendanceQueueFilter{}, attendanceID)
		if err != nil {
			return err
		}
		if len(items) == 0 {
			return gorm.ErrRecordNotFound
		}
		item = items[0]
		return nil
	})
	if err != nil {
		return entity.AttendanceQueueItem{}, mapStorageError(err)
	}
	return item, nil
}
