package repository

import (
	"database/sql"
	"strings"
	"time"

	"clinical-lab-records/internal/domain/entity"

	"gorm.io/gorm"
)

// Both aggregated read paths share the same contract: the query orders rows
// by parent exam date DESC, parent creation DESC, child creation ASC, and
// the fold below relies on that ordering for output order. Parents are still
// indexed by key, not position, so a non-contiguous parent row would
// aggregate correctly anyway.

const recordEntriesQuery = `
SELECT e.id, e.exam_date, e.status, rq.name,
       i.id, i.name, i.unit, i.method, i.reference_range, i.result_value, i.result_flag
FROM exams e
LEFT JOIN requesters rq ON rq.id = e.requester_id
LEFT JOIN exam_items i ON i.exam_id = e.id
WHERE e.patient_id = ?
ORDER BY e.exam_date DESC, e.created_at DESC, i.created_at ASC`

const queueBaseQuery = `
SELECT e.id, e.patient_id, p.full_name, p.cpf, e.exam_date, e.status, e.updated_at, i.id, i.name
FROM exams e
INNER JOIN patients p ON p.id = e.patient_id
LEFT JOIN exam_items i ON i.exam_id = e.id`

const queueOrderClause = `
ORDER BY e.exam_date DESC, e.created_at DESC, i.created_at ASC`

// buildQueueQuery composes the queue statement from zero or more optional
// predicates. Every value is bound as a parameter; filter input is never
// interpolated into the statement text. Blank filters contribute nothing.
func buildQueueQuery(filter entity.AttendanceQueueFilter, attendanceID string) (string, []interface{}) {
	var conditions []string
	var args []interface{}

	if date := strings.TrimSpace(filter.Date); date != "" {
		conditions = append(conditions, "e.exam_date = ?")
		args = append(args, date)
	}
	if status := strings.TrimSpace(filter.Status); status != "" {
		conditions = append(conditions, "e.status = ?")
		args = append(args, status)
	}
	if query := strings.TrimSpace(filter.Query); query != "" {
		// lower() on both sides keeps the match locale-naive; matching an
		// item name must not drop the attendance's other item names, hence
		// the EXISTS instead of a predicate on the joined row.
		like := "%" + strings.ToLower(query) + "%"
		conditions = append(conditions,
			"(lower(p.full_name) LIKE ? OR lower(p.cpf) LIKE ? OR lower(e.id) LIKE ? OR "+
				"EXISTS (SELECT 1 FROM exam_items x WHERE x.exam_id = e.id AND lower(x.name) LIKE ?))")
		args = append(args, like, like, like, like)
	}
	if attendanceID != "" {
		conditions = append(conditions, "e.id = ?")
		args = append(args, attendanceID)
	}

	query := queueBaseQuery
	if len(conditions) > 0 {
		query += "\nWHERE " + strings.Join(conditions, " AND ")
	}
	return query + queueOrderClause, args
}

func (r *patientRepository) recordEntries(db *gorm.DB, patientID string) ([]entity.PatientRecordEntry, error) {
	rows, err := db.Raw(recordEntriesQuery, patientID).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return foldRecordRows(rows)
}

// foldRecordRows turns the flat LEFT JOIN fan-out into nested record
// entries: one entry per exam, children appended in row order. An exam with
// no items arrives as a single row with null item columns and folds to an
// entry with an empty item list.
func foldRecordRows(rows *sql.Rows) ([]entity.PatientRecordEntry, error) {
	entries := []entity.PatientRecordEntry{}
	index := make(map[string]int)
	seenItems := make(map[string]map[string]struct{})

	for rows.Next() {
		var (
			examID, examDate, status                                       string
			requesterName                                                  sql.NullString
			itemID, itemName, unit, method, refRange, resultVal, resultFlg sql.NullString
		)
		if err := rows.Scan(&examID, &examDate, &status, &requesterName,
			&itemID, &itemName, &unit, &method, &refRange, &resultVal, &resultFlg); err != nil {
			return nil, err
		}

		pos, ok := index[examID]
		if !ok {
			pos = len(entries)
			index[examID] = pos
			seenItems[examID] = make(map[string]struct{})
			entries = append(entries, entity.PatientRecordEntry{
				ExamID:        examID,
				ExamDate:      examDate,
				Status:        entity.ExamStatus(status),
				RequesterName: nullable(requesterName),
				Items:         []entity.RecordItem{},
			})
		}

		if !itemID.Valid {
			continue
		}
		if _, dup := seenItems[examID][itemID.String]; dup {
			continue
		}
		seenItems[examID][itemID.String] = struct{}{}

		item := entity.RecordItem{
			ID:             itemID.String,
			Name:           itemName.String,
			Unit:           nullable(unit),
			Method:         nullable(method),
			ReferenceRange: nullable(refRange),
			ResultValue:    nullable(resultVal),
			ResultFlag:     nullable(resultFlg),
		}
		item.ReportAvailable = item.ResultValue != nil || item.ResultFlag != nil
		entries[pos].Items = append(entries[pos].Items, item)
	}

	return entries, rows.Err()
}

func (r *patientRepository) queueItems(db *gorm.DB, filter entity.AttendanceQueueFilter, attendanceID string) ([]entity.AttendanceQueueItem, error) {
	query, args := buildQueueQuery(filter, attendanceID)
	rows, err := db.Raw(query, args...).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return foldQueueRows(rows)
}

// foldQueueRows is the worklist variant of the fold: children are collapsed
// to distinct item names, order-preserving.
func foldQueueRows(rows *sql.Rows) ([]entity.AttendanceQueueItem, error) {
	items := []entity.AttendanceQueueItem{}
	index := make(map[string]int)
	seenNames := make(map[string]map[string]struct{})

	for rows.Next() {
		var (
			attendanceID, patientID, patientName, patientCPF string
			examDate, status                                 string
			updatedAt                                        time.Time
			itemID, itemName                                 sql.NullString
		)
		if err := rows.Scan(&attendanceID, &patientID, &patientName, &patientCPF,
			&examDate, &status, &updatedAt, &itemID, &itemName); err != nil {
			return nil, err
		}

		pos, ok := index[attendanceID]
		if !ok {
			pos = len(items)
			index[attendanceID] = pos
			seenNames[attendanceID] = make(map[string]struct{})
			items = append(items, entity.AttendanceQueueItem{
				AttendanceID: attendanceID,
				PatientID:    patientID,
				PatientName:  patientName,
				PatientCPF:   patientCPF,
				ExamDate:     examDate,
				Status:       entity.ExamStatus(status),
				ExamNames:    []string{},
				UpdatedAt:    updatedAt,
			})
		}

		if !itemID.Valid {
			continue
		}
		if _, dup := seenNames[attendanceID][itemName.String]; dup {
			continue
		}
		seenNames[attendanceID][itemName.String] = struct{}{}
		items[pos].ExamNames = append(items[pos].ExamNames, itemName.String)
	}

	return items, rows.Err()
}

func nullable(v sql.NullString) *string {
	if !v.Valid {
		return nil
	}
	s := v.String
	return &s
}
