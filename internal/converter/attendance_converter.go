package converter

import (
	"clinical-lab-records/internal/delivery/dto"
	"clinical-lab-records/internal/domain/entity"
)

// RecordEntryToResponse converts a patient record entry view to its DTO
func RecordEntryToResponse(entry *entity.PatientRecordEntry) *dto.PatientRecordEntryResponse {
	if entry == nil {
		return nil
	}

	items := make([]dto.AttendanceItemResponse, 0, len(entry.Items))
	for _, item := range entry.Items {
		items = append(items, dto.AttendanceItemResponse{
			ID:              item.ID,
			Name:            item.Name,
			Unit:            item.Unit,
			Method:          item.Method,
			ReferenceRange:  item.ReferenceRange,
			ResultValue:     item.ResultValue,
			ResultFlag:      item.ResultFlag,
			ReportAvailable: item.ReportAvailable,
		})
	}

	return &dto.PatientRecordEntryResponse{
		ExamID:        entry.ExamID,
		ExamDate:      entry.ExamDate,
		Status:        string(entry.Status),
		RequesterName: entry.RequesterName,
		Items:         items,
	}
}

// PatientRecordToResponse converts the full historical record view
func PatientRecordToResponse(record *entity.PatientRecord) *dto.PatientRecordResponse {
	if record == nil {
		return nil
	}

	entries := make([]dto.PatientRecordEntryResponse, 0, len(record.Entries))
	for i := range record.Entries {
		entries = append(entries, *RecordEntryToResponse(&record.Entries[i]))
	}

	return &dto.PatientRecordResponse{
		Patient: *PatientToResponse(&record.Patient),
		Entries: entries,
	}
}

// QueueItemToResponse converts a worklist row view to its DTO
func QueueItemToResponse(item *entity.AttendanceQueueItem) *dto.AttendanceQueueItemResponse {
	if item == nil {
		return nil
	}

	return &dto.AttendanceQueueItemResponse{
		AttendanceID: item.AttendanceID,
		PatientID:    item.PatientID,
		PatientName:  item.PatientName,
		PatientCPF:   item.PatientCPF,
		ExamDate:     item.ExamDate,
		Status:       string(item.Status),
		ExamNames:    item.ExamNames,
		UpdatedAt:    item.UpdatedAt,
	}
}

func QueueItemsToResponses(items []entity.AttendanceQueueItem) []dto.AttendanceQueueItemResponse {
	responses := make([]dto.AttendanceQueueItemResponse, 0, len(items))
	for i := range items {
		responses = append(responses, *QueueItemToResponse(&items[i]))
	}
	return responses
}

func CatalogToResponses(items []entity.ExamCatalogItem) []dto.ExamCatalogItemResponse {
	responses := make([]dto.ExamCatalogItemResponse, 0, len(items))
	for _, item := range items {
		responses = append(responses, dto.ExamCatalogItemResponse{
			ID:            item.ID,
			Name:          item.Name,
			CategoryID:    item.CategoryID,
			CategoryTitle: item.CategoryTitle,
			PriceCents:    item.PriceCents,
		})
	}
	return responses
}
