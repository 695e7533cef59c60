package entity

import "time"

// The view types below are computed at read time by folding flat join rows.
// They are returned by copy; no shared mutable state escapes the
// persistence layer.

// RecordItem is the full item detail shown inside a patient record entry.
type RecordItem struct {
	ID             string  `json:"id"`
	Name           string  `json:"name"`
	Unit           *string `json:"unit,omitempty"`
	Method         *string `json:"method,omitempty"`
	ReferenceRange *string `json:"reference_range,omitempty"`
	ResultValue    *string `json:"result_value,omitempty"`
	ResultFlag     *string `json:"result_flag,omitempty"`

	// ReportAvailable is derived: true iff a result value or flag exists.
	ReportAvailable bool `json:"report_available"`
}

// PatientRecordEntry is one attendance inside a patient's historical record.
type PatientRecordEntry struct {
	ExamID        string       `json:"exam_id"`
	ExamDate      string       `json:"exam_date"`
	Status        ExamStatus   `json:"status"`
	RequesterName *string      `json:"requester_name,omitempty"`
	Items         []RecordItem `json:"items"`
}

// PatientRecord is the full historical record for one patient, most recent
// exam date first.
type PatientRecord struct {
	Patient Patient              `json:"patient"`
	Entries []PatientRecordEntry `json:"entries"`
}

// AttendanceQueueItem is the flattened worklist projection of an attendance:
// patient identification plus the distinct item names, without full item
// detail.
type AttendanceQueueItem struct {
	AttendanceID string     `json:"attendance_id"`
	PatientID    string     `json:"patient_id"`
	PatientName  string     `json:"patient_name"`
	PatientCPF   string     `json:"patient_cpf"`
	ExamDate     string     `json:"exam_date"`
	Status       ExamStatus `json:"status"`
	ExamNames    []string   `json:"exam_names"`
	UpdatedAt    time.Time  `json:"updated_at"`
}
