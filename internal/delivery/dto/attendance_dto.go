package dto

import "time"

// CreateAttendanceItemRequest is one line item of a new attendance
type CreateAttendanceItemRequest struct {
	Name           string `json:"name" validate:"required"`
	Unit           string `json:"unit"`
	Method         string `json:"method"`
	ReferenceRange string `json:"reference_range"`
}

// CreateAttendanceRequest is the payload for opening an attendance
type CreateAttendanceRequest struct {
	PatientID     string                        `json:"patient_id" validate:"required"`
	ExamDate      string                        `json:"exam_date" validate:"required"`
	Status        string                        `json:"status"`
	RequesterID   string                        `json:"requester_id"`
	ProcedureType string                        `json:"procedure_type"`
	DeliveredTo   string                        `json:"delivered_to"`
	Notes         string                        `json:"notes"`
	Items         []CreateAttendanceItemRequest `json:"items" validate:"required,min=1,dive"`
}

type CompleteAttendanceRequest struct {
	AttendanceID string `json:"attendance_id" validate:"required"`
}

// AttendanceQueueRequest carries the optional queue filters
type AttendanceQueueRequest struct {
	Date   string `json:"date"`
	Status string `json:"status"`
	Query  string `json:"query"`
}

// AttendanceItemResponse is the full item detail inside a record entry
type AttendanceItemResponse struct {
	ID              string  `json:"id"`
	Name            string  `json:"name"`
	Unit            *string `json:"unit,omitempty"`
	Method          *string `json:"method,omitempty"`
	ReferenceRange  *string `json:"reference_range,omitempty"`
	ResultValue     *string `json:"result_value,omitempty"`
	ResultFlag      *string `json:"result_flag,omitempty"`
	ReportAvailable bool    `json:"report_available"`
}

// PatientRecordEntryResponse is one attendance inside a patient record
type PatientRecordEntryResponse struct {
	ExamID        string                   `json:"exam_id"`
	ExamDate      string                   `json:"exam_date"`
	Status        string                   `json:"status"`
	RequesterName *string                  `json:"requester_name,omitempty"`
	Items         []AttendanceItemResponse `json:"items"`
}

type PatientRecordResponse struct {
	Patient PatientResponse              `json:"patient"`
	Entries []PatientRecordEntryResponse `json:"entries"`
}

// AttendanceQueueItemResponse is the flattened worklist row
type AttendanceQueueItemResponse struct {
	AttendanceID string    `json:"attendance_id"`
	PatientID    string    `json:"patient_id"`
	PatientName  string    `json:"patient_name"`
	PatientCPF   string    `json:"patient_cpf"`
	ExamDate     string    `json:"exam_date"`
	Status       string    `json:"status"`
	ExamNames    []string  `json:"exam_names"`
	UpdatedAt    time.Time `json:"updated_at"`
}

type AttendanceQueueResponse struct {
	Items []AttendanceQueueItemResponse `json:"items"`
	Total int                           `json:"total"`
}

// ExamCatalogItemResponse is one priced catalog entry
type ExamCatalogItemResponse struct {
	ID            string `json:"id"`
	Name          string `json:"name"`
	CategoryID    string `json:"category_id"`
	CategoryTitle string `json:"category_title"`
	PriceCents    int64  `json:"price_cents"`
}

type ExamCatalogResponse struct {
	Items []ExamCatalogItemResponse `json:"items"`
	Total int                       `json:"total"`
}
