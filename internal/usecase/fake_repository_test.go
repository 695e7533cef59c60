package usecase_test

import (
	"context"
	"io"

	"clinical-lab-records/internal/domain/entity"
	"clinical-lab-records/internal/domain/repository"

	"github.com/sirupsen/logrus"
)

// fakePatientRepository lets each test install just the calls it expects;
// any other call panics so an unexpected storage hit fails loudly.
type fakePatientRepository struct {
	insertFn              func(ctx context.Context, patient *entity.Patient) (entity.Patient, error)
	listFn                func(ctx context.Context, query string) ([]entity.Patient, error)
	getPatientRecordFn    func(ctx context.Context, patientID string) (entity.PatientRecord, error)
	listExamCatalogFn     func(ctx context.Context) ([]entity.ExamCatalogItem, error)
	createAttendanceFn    func(ctx context.Context, input repository.CreateAttendanceInput) (entity.PatientRecordEntry, error)
	listAttendanceQueueFn func(ctx context.Context, filter entity.AttendanceQueueFilter) ([]entity.AttendanceQueueItem, error)
	completeAttendanceFn  func(ctx context.Context, attendanceID string) (entity.AttendanceQueueItem, error)
}

func (f *fakePatientRepository) Insert(ctx context.Context, patient *entity.Patient) (entity.Patient, error) {
	if f.insertFn == nil {
		panic("unexpected Insert call")
	}
	return f.insertFn(ctx, patient)
}

func (f *fakePatientRepository) List(ctx context.Context, query string) ([]entity.Patient, error) {
	if f.listFn == nil {
		panic("unexpected List call")
	}
	return f.listFn(ctx, query)
}

func (f *fakePatientRepository) GetPatientRecord(ctx context.Context, patientID string) (entity.PatientRecord, error) {
	if f.getPatientRecordFn == nil {
		panic("unexpected GetPatientRecord call")
	}
	return f.getPatientRecordFn(ctx, patientID)
}

func (f *fakePatientRepository) ListExamCatalog(ctx context.Context) ([]entity.ExamCatalogItem, error) {
	if f.listExamCatalogFn == nil {
		panic("unexpected ListExamCatalog call")
	}
	return f.listExamCatalogFn(ctx)
}

func (f *fakePatientRepository) CreateAttendance(ctx context.Context, input repository.CreateAttendanceInput) (entity.PatientRecordEntry, error) {
	if f.createAttendanceFn == nil {
		panic("unexpected CreateAttendance call")
	}
	return f.createAttendanceFn(ctx, input)
}

func (f *fakePatientRepository) ListAttendanceQueue(ctx context.Context, filter entity.AttendanceQueueFilter) ([]entity.AttendanceQueueItem, error) {
	if f.listAttendanceQueueFn == nil {
		panic("unexpected ListAttendanceQueue call")
	}
	return f.listAttendanceQueueFn(ctx, filter)
}

func (f *fakePatientRepository) CompleteAttendance(ctx context.Context, attendanceID string) (entity.AttendanceQueueItem, error) {
	if f.completeAttendanceFn == nil {
		panic("unexpected CompleteAttendance call")
	}
	return f.completeAttendanceFn(ctx, attendanceID)
}

func discardLogger() *logrus.Logger {
	log := logrus.New()
	log.SetOutput(io.Discard)
	return log
}
