package usecase_test

import (
	"context"
	"testing"
	"time"

	"clinical-lab-records/internal/delivery/dto"
	"clinical-lab-records/internal/domain/entity"
	"clinical-lab-records/internal/domain/repository"
	"clinical-lab-records/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetPatientRecordRejectsBlankID(t *testing.T) {
	u := usecase.NewAttendanceUsecase(discardLogger(), &fakePatientRepository{})

	_, err := u.GetPatientRecord(context.Background(), "  ")
	require.Error(t, err)
	assert.True(t, usecase.IsValidationError(err))
	assert.EqualError(t, err, "patient_id is required")
}

func TestGetPatientRecordMapsNotFound(t *testing.T) {
	repo := &fakePatientRepository{
		getPatientRecordFn: func(context.Context, string) (entity.PatientRecord, error) {
			return entity.PatientRecord{}, repository.ErrNotFound
		},
	}
	u := usecase.NewAttendanceUsecase(discardLogger(), repo)

	_, err := u.GetPatientRecord(context.Background(), "missing")
	assert.ErrorIs(t, err, usecase.ErrPatientNotFound)
}

func TestGetPatientRecordSuccess(t *testing.T) {
	requester := "Dr. Almeida"
	repo := &fakePatientRepository{
		getPatientRecordFn: func(_ context.Context, patientID string) (entity.PatientRecord, error) {
			return entity.PatientRecord{
				Patient: entity.Patient{ID: patientID, FullName: "Maria Souza", CPF: "12345678900"},
				Entries: []entity.PatientRecordEntry{
					{
						ExamID:        "att-1",
						ExamDate:      "2026-02-17",
						Status:        entity.ExamStatusWaiting,
						RequesterName: &requester,
						Items: []entity.RecordItem{
							{ID: "it-1", Name: "Glicose"},
						},
					},
				},
			}, nil
		},
	}
	u := usecase.NewAttendanceUsecase(discardLogger(), repo)

	resp, err := u.GetPatientRecord(context.Background(), "pt-1")
	require.NoError(t, err)
	assert.Equal(t, "pt-1", resp.Patient.ID)
	require.Len(t, resp.Entries, 1)
	assert.Equal(t, "att-1", resp.Entries[0].ExamID)
	assert.Equal(t, "waiting", resp.Entries[0].Status)
	require.NotNil(t, resp.Entries[0].RequesterName)
	assert.Equal(t, "Dr. Almeida", *resp.Entries[0].RequesterName)
	require.Len(t, resp.Entries[0].Items, 1)
	assert.False(t, resp.Entries[0].Items[0].ReportAvailable)
}

func TestListExamCatalogSuccess(t *testing.T) {
	repo := &fakePatientRepository{
		listExamCatalogFn: func(context.Context) ([]entity.ExamCatalogItem, error) {
			return []entity.ExamCatalogItem{
				{ID: "glicose", Name: "Glicose", CategoryID: "bioquimica", CategoryTitle: "Bioquímica", PriceCents: 1200},
			}, nil
		},
	}
	u := usecase.NewAttendanceUsecase(discardLogger(), repo)

	resp, err := u.ListExamCatalog(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, resp.Total)
	require.Len(t, resp.Items, 1)
	assert.Equal(t, "glicose", resp.Items[0].ID)
	assert.Equal(t, int64(1200), resp.Items[0].PriceCents)
}

func TestCreateAttendanceValidation(t *testing.T) {
	u := usecase.NewAttendanceUsecase(discardLogger(), &fakePatientRepository{})

	tests := []struct {
		name    string
		req     *dto.CreateAttendanceRequest
		message string
	}{
		{
			name: "blank patient_id",
			req: &dto.CreateAttendanceRequest{
				ExamDate: "2026-02-17",
				Items:    []dto.CreateAttendanceItemRequest{{Name: "Glicose"}},
			},
			message: "patient_id is required",
		},
		{
			name: "blank exam_date",
			req: &dto.CreateAttendanceRequest{
				PatientID: "pt-1",
				Items:     []dto.CreateAttendanceItemRequest{{Name: "Glicose"}},
			},
			message: "exam_date is required",
		},
		{
			name: "empty items",
			req: &dto.CreateAttendanceRequest{
				PatientID: "pt-1",
				ExamDate:  "2026-02-17",
			},
			message: "items is required",
		},
		{
			name: "status outside enum",
			req: &dto.CreateAttendanceRequest{
				PatientID: "pt-1",
				ExamDate:  "2026-02-17",
				Status:    "garbage",
				Items:     []dto.CreateAttendanceItemRequest{{Name: "Glicose"}},
			},
			message: "status must be waiting or completed",
		},
		{
			name: "blank item name",
			req: &dto.CreateAttendanceRequest{
				PatientID: "pt-1",
				ExamDate:  "2026-02-17",
				Items:     []dto.CreateAttendanceItemRequest{{Name: "Glicose"}, {Name: "  "}},
			},
			message: "item name is required",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := u.CreateAttendance(context.Background(), tc.req)
			require.Error(t, err)
			assert.True(t, usecase.IsValidationError(err))
			assert.EqualError(t, err, tc.message)
		})
	}
}

func TestCreateAttendancePassesItemsInOrder(t *testing.T) {
	var gotInput repository.CreateAttendanceInput
	repo := &fakePatientRepository{
		createAttendanceFn: func(_ context.Context, input repository.CreateAttendanceInput) (entity.PatientRecordEntry, error) {
			gotInput = input
			return entity.PatientRecordEntry{
				ExamID:   "att-1",
				ExamDate: input.ExamDate,
				Status:   entity.ExamStatusWaiting,
				Items: []entity.RecordItem{
					{ID: "it-1", Name: "Glicose"},
					{ID: "it-2", Name: "Colesterol Total"},
				},
			}, nil
		},
	}
	u := usecase.NewAttendanceUsecase(discardLogger(), repo)

	resp, err := u.CreateAttendance(context.Background(), &dto.CreateAttendanceRequest{
		PatientID:   "pt-1",
		ExamDate:    "2026-02-17",
		RequesterID: "rq-1",
		Items: []dto.CreateAttendanceItemRequest{
			{Name: "Glicose", Unit: "mg/dL"},
			{Name: "Colesterol Total"},
		},
	})
	require.NoError(t, err)

	assert.Equal(t, "pt-1", gotInput.PatientID)
	assert.Equal(t, "rq-1", gotInput.RequesterID)
	require.Len(t, gotInput.Items, 2)
	assert.Equal(t, "Glicose", gotInput.Items[0].Name)
	assert.Equal(t, "mg/dL", gotInput.Items[0].Unit)
	assert.Equal(t, "Colesterol Total", gotInput.Items[1].Name)

	assert.Equal(t, "att-1", resp.ExamID)
	require.Len(t, resp.Items, 2)
	assert.Equal(t, "Glicose", resp.Items[0].Name)
}

func TestCreateAttendanceMapsNotFoundToPatientNotFound(t *testing.T) {
	repo := &fakePatientRepository{
		createAttendanceFn: func(context.Context, repository.CreateAttendanceInput) (entity.PatientRecordEntry, error) {
			return entity.PatientRecordEntry{}, repository.ErrNotFound
		},
	}
	u := usecase.NewAttendanceUsecase(discardLogger(), repo)

	_, err := u.CreateAttendance(context.Background(), &dto.CreateAttendanceRequest{
		PatientID: "missing",
		ExamDate:  "2026-02-17",
		Items:     []dto.CreateAttendanceItemRequest{{Name: "Glicose"}},
	})
	assert.ErrorIs(t, err, usecase.ErrPatientNotFound)
}

func TestListAttendanceQueueValidatesFilters(t *testing.T) {
	u := usecase.NewAttendanceUsecase(discardLogger(), &fakePatientRepository{})

	tests := []struct {
		name    string
		req     *dto.AttendanceQueueRequest
		message string
	}{
		{"short date", &dto.AttendanceQueueRequest{Date: "2026-2-17"}, "date must be YYYY-MM-DD"},
		{"slash date", &dto.AttendanceQueueRequest{Date: "17/02/2026"}, "date must be YYYY-MM-DD"},
		{"letters in date", &dto.AttendanceQueueRequest{Date: "2026-02-aa"}, "date must be YYYY-MM-DD"},
		{"unknown status", &dto.AttendanceQueueRequest{Status: "done"}, "status must be waiting or completed"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := u.ListAttendanceQueue(context.Background(), tc.req)
			require.Error(t, err)
			assert.True(t, usecase.IsValidationError(err))
			assert.EqualError(t, err, tc.message)
		})
	}
}

func TestListAttendanceQueueForwardsFilters(t *testing.T) {
	var gotFilter entity.AttendanceQueueFilter
	repo := &fakePatientRepository{
		listAttendanceQueueFn: func(_ context.Context, filter entity.AttendanceQueueFilter) ([]entity.AttendanceQueueItem, error) {
			gotFilter = filter
			return []entity.AttendanceQueueItem{
				{
					AttendanceID: "att-1",
					PatientID:    "pt-1",
					PatientName:  "Maria Souza",
					PatientCPF:   "12345678900",
					ExamDate:     "2026-02-17",
					Status:       entity.ExamStatusWaiting,
					ExamNames:    []string{"Glicose", "Colesterol Total"},
					UpdatedAt:    time.Now(),
				},
			}, nil
		},
	}
	u := usecase.NewAttendanceUsecase(discardLogger(), repo)

	resp, err := u.ListAttendanceQueue(context.Background(), &dto.AttendanceQueueRequest{
		Date:   "2026-02-17",
		Status: "waiting",
		Query:  "maria",
	})
	require.NoError(t, err)
	assert.Equal(t, entity.AttendanceQueueFilter{
		Date:   "2026-02-17",
		Status: "waiting",
		Query:  "maria",
	}, gotFilter)
	assert.Equal(t, 1, resp.Total)
	require.Len(t, resp.Items, 1)
	assert.Equal(t, []string{"Glicose", "Colesterol Total"}, resp.Items[0].ExamNames)
}

func TestListAttendanceQueueAllowsEmptyFilters(t *testing.T) {
	repo := &fakePatientRepository{
		listAttendanceQueueFn: func(context.Context, entity.AttendanceQueueFilter) ([]entity.AttendanceQueueItem, error) {
			return []entity.AttendanceQueueItem{}, nil
		},
	}
	u := usecase.NewAttendanceUsecase(discardLogger(), repo)

	resp, err := u.ListAttendanceQueue(context.Background(), &dto.AttendanceQueueRequest{})
	require.NoError(t, err)
	assert.Zero(t, resp.Total)
	assert.Empty(t, resp.Items)
}

func TestCompleteAttendanceRejectsBlankID(t *testing.T) {
	u := usecase.NewAttendanceUsecase(discardLogger(), &fakePatientRepository{})

	_, err := u.CompleteAttendance(context.Background(), &dto.CompleteAttendanceRequest{AttendanceID: " "})
	require.Error(t, err)
	assert.True(t, usecase.IsValidationError(err))
	assert.EqualError(t, err, "attendance_id is required")
}

func TestCompleteAttendanceMapsNotFound(t *testing.T) {
	repo := &fakePatientRepository{
		completeAttendanceFn: func(context.Context, string) (entity.AttendanceQueueItem, error) {
			return entity.AttendanceQueueItem{}, repository.ErrNotFound
		},
	}
	u := usecase.NewAttendanceUsecase(discardLogger(), repo)

	_, err := u.CompleteAttendance(context.Background(), &dto.CompleteAttendanceRequest{AttendanceID: "missing"})
	assert.ErrorIs(t, err, usecase.ErrAttendanceNotFound)
}

func TestCompleteAttendanceSuccess(t *testing.T) {
	repo := &fakePatientRepository{
		completeAttendanceFn: func(_ context.Context, attendanceID string) (entity.AttendanceQueueItem, error) {
			return entity.AttendanceQueueItem{
				AttendanceID: attendanceID,
				PatientID:    "pt-1",
				PatientName:  "Maria Souza",
				PatientCPF:   "12345678900",
				ExamDate:     "2026-02-17",
				Status:       entity.ExamStatusCompleted,
				ExamNames:    []string{"Glicose"},
				UpdatedAt:    time.Now(),
			}, nil
		},
	}
	u := usecase.NewAttendanceUsecase(discardLogger(), repo)

	resp, err := u.CompleteAttendance(context.Background(), &dto.CompleteAttendanceRequest{AttendanceID: "att-1"})
	require.NoError(t, err)
	assert.Equal(t, "att-1", resp.AttendanceID)
	assert.Equal(t, "completed", resp.Status)
	assert.Equal(t, []string{"Glicose"}, resp.ExamNames)
}
