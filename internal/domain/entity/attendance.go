package entity

import (
	"time"
)

// ExamStatus represents the lifecycle state of an attendance.
// The only transition is waiting -> completed; there is no reverse
// transition and no other state in this version.
type ExamStatus string

const (
	ExamStatusWaiting   ExamStatus = "waiting"
	ExamStatusCompleted ExamStatus = "completed"
)

// Valid reports whether the value is part of the status enumeration.
func (s ExamStatus) Valid() bool {
	return s == ExamStatusWaiting || s == ExamStatusCompleted
}

// Exam represents one diagnostic attendance episode for a patient.
type Exam struct {
	ID            string     `gorm:"type:text;primaryKey" json:"id"`
	PatientID     string     `gorm:"type:text;not null;index" json:"patient_id"`
	RequesterID   *string    `gorm:"type:text" json:"requester_id,omitempty"`
	ExamDate      string     `gorm:"type:text;not null" json:"exam_date"`
	Status        ExamStatus `gorm:"type:varchar(20);not null" json:"status"`
	ProcedureType *string    `gorm:"type:varchar(50)" json:"procedure_type,omitempty"`
	DeliveredTo   *string    `gorm:"type:text" json:"delivered_to,omitempty"`
	Notes         *string    `gorm:"type:text" json:"notes,omitempty"`
	CreatedAt     time.Time  `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt     time.Time  `gorm:"autoUpdateTime" json:"updated_at"`
}

func (Exam) TableName() string {
	return "exams"
}

// IsWaiting checks if the exam has not been completed yet
func (e *Exam) IsWaiting() bool {
	return e.Status == ExamStatusWaiting
}

// IsCompleted checks if the exam has been completed
func (e *Exam) IsCompleted() bool {
	return e.Status == ExamStatusCompleted
}

// Complete transitions the exam to its terminal status
func (e *Exam) Complete() {
	e.Status = ExamStatusCompleted
}

// ExamItem is one line item (a single analysis) belonging to an exam.
type ExamItem struct {
	ID             string    `gorm:"type:text;primaryKey" json:"id"`
	ExamID         string    `gorm:"type:text;not null;index" json:"exam_id"`
	Name           string    `gorm:"type:varchar(150);not null" json:"name"`
	Unit           *string   `gorm:"type:varchar(20)" json:"unit,omitempty"`
	Method         *string   `gorm:"type:varchar(100)" json:"method,omitempty"`
	ReferenceRange *string   `gorm:"type:text" json:"reference_range,omitempty"`
	ResultValue    *string   `gorm:"type:text" json:"result_value,omitempty"`
	ResultFlag     *string   `gorm:"type:varchar(20)" json:"result_flag,omitempty"`
	CreatedAt      time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt      time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

func (ExamItem) TableName() string {
	return "exam_items"
}

// HasReport reports whether a result has been recorded for the item.
func (i *ExamItem) HasReport() bool {
	return i.ResultValue != nil || i.ResultFlag != nil
}
