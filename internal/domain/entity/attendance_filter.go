package entity

// AttendanceQueueFilter carries the optional predicates for the work queue.
// Blank fields contribute no predicate; non-blank fields are combined with
// AND semantics.
type AttendanceQueueFilter struct {
	// Date filters on the exact exam date (YYYY-MM-DD).
	Date string

	// Status filters on the exact status (waiting or completed).
	Status string

	// Query is a case-insensitive substring matched against the patient
	// name, patient cpf, attendance id and item names.
	Query string
}
