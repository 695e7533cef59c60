package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"clinical-lab-records/internal/domain/entity"
	domainRepo "clinical-lab-records/internal/domain/repository"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/mattn/go-sqlite3"
	"gorm.io/gorm"
)

// patientRepository is the storage-backed facade. It owns the connection
// pool handle and is the only type that talks to the engine.
type patientRepository struct {
	db *gorm.DB

	// acquireTimeout bounds every operation so a saturated pool surfaces
	// as a timely persistence error instead of queueing forever.
	acquireTimeout time.Duration
}

func NewPatientRepository(db *gorm.DB, acquireTimeout time.Duration) domainRepo.PatientRepository {
	return &patientRepository{db: db, acquireTimeout: acquireTimeout}
}

func (r *patientRepository) opContext(ctx context.Context) (context.Context, context.CancelFunc) {
	if r.acquireTimeout <= 0 {
		return ctx, func() {}
	}
	return context.WithTimeout(ctx, r.acquireTimeout)
}

func (r *patientRepository) Insert(ctx context.Context, patient *entity.Patient) (entity.Patient, error) {
	ctx, cancel := r.opContext(ctx)
	defer cancel()

	created := *patient
	if created.ID == "" {
		created.ID = uuid.NewString()
	}

	if err := r.db.WithContext(ctx).Create(&created).Error; err != nil {
		return entity.Patient{}, mapStorageError(err)
	}
	return created, nil
}

func (r *patientRepository) List(ctx context.Context, query string) ([]entity.Patient, error) {
	ctx, cancel := r.opContext(ctx)
	defer cancel()

	tx := r.db.WithContext(ctx).Order("created_at DESC")
	if q := strings.TrimSpace(query); q != "" {
		like := "%" + q + "%"
		tx = tx.Where("lower(full_name) LIKE lower(?) OR cpf LIKE ?", like, like)
	}

	var patients []entity.Patient
	if err := tx.Find(&patients).Error; err != nil {
		return nil, mapStorageError(err)
	}
	return patients, nil
}

func (r *patientRepository) GetPatientRecord(ctx context.Context, patientID string) (entity.PatientRecord, error) {
	ctx, cancel := r.opContext(ctx)
	defer cancel()

	var patient entity.Patient
	if err := r.db.WithContext(ctx).Where("id = ?", patientID).First(&patient).Error; err != nil {
		return entity.PatientRecord{}, mapStorageError(err)
	}

	entries, err := r.recordEntries(r.db.WithContext(ctx), patientID)
	if err != nil {
		return entity.PatientRecord{}, mapStorageError(err)
	}

	return entity.PatientRecord{Patient: patient, Entries: entries}, nil
}

func (r *patientRepository) ListAttendanceQueue(ctx context.Context, filter entity.AttendanceQueueFilter) ([]entity.AttendanceQueueItem, error) {
	ctx, cancel := r.opContext(ctx)
	defer cancel()

	items, err := r.queueItems(r.db.WithContext(ctx), filter, "")
	if err != nil {
		return nil, mapStorageError(err)
	}
	return items, nil
}

// mapStorageError translates engine errors into the repository taxonomy.
// This is the single place driver detail is allowed to appear.
func mapStorageError(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return domainRepo.ErrNotFound
	}

	var sqliteErr sqlite3.Error
	if errors.As(err, &sqliteErr) {
		if sqliteErr.ExtendedCode == sqlite3.ErrConstraintUnique ||
			sqliteErr.ExtendedCode == sqlite3.ErrConstraintPrimaryKey {
			return domainRepo.ErrConflict
		}
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == "23505" {
		return domainRepo.ErrConflict
	}

	return fmt.Errorf("%w: %v", domainRepo.ErrPersistence, err)
}

// optional collapses blank-or-whitespace input to "no value".
func optional(value string) *string {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		return nil
	}
	return &trimmed
}
