package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"clinical-lab-records/internal/converter"
	"clinical-lab-records/internal/delivery/dto"
	"clinical-lab-records/internal/domain/entity"
	"clinical-lab-records/internal/domain/repository"

	"github.com/sirupsen/logrus"
)

type PatientUsecase interface {
	CreatePatient(ctx context.Context, req *dto.CreatePatientRequest) (*dto.PatientResponse, error)
	ListPatients(ctx context.Context, query string) (*dto.PatientListResponse, error)
}

type patientUsecase struct {
	log  *logrus.Logger
	repo repository.PatientRepository
}

func NewPatientUsecase(log *logrus.Logger, repo repository.PatientRepository) PatientUsecase {
	return &patientUsecase{
		log:  log,
		repo: repo,
	}
}

// CreatePatient registers a new patient. Identity fields must survive
// trimming; the cpf uniqueness is enforced by storage.
func (u *patientUsecase) CreatePatient(ctx context.Context, req *dto.CreatePatientRequest) (*dto.PatientResponse, error) {
	if strings.TrimSpace(req.FullName) == "" {
		return nil, ValidationError("full_name is required")
	}
	if strings.TrimSpace(req.CPF) == "" {
		return nil, ValidationError("cpf is required")
	}

	patient := entity.Patient{
		FullName:  req.FullName,
		CPF:       req.CPF,
		BirthDate: req.BirthDate,
		Sex:       req.Sex,
		Phone:     req.Phone,
		Address:   req.Address,
	}

	created, err := u.repo.Insert(ctx, &patient)
	if err != nil {
		if errors.Is(err, repository.ErrConflict) {
			return nil, ErrCPFAlreadyExists
		}
		u.log.Warnf("Failed to persist patient: %+v", err)
		return nil, fmt.Errorf("failed to persist patient: %w", err)
	}

	u.log.Infof("Patient created: id=%s", created.ID)
	return converter.PatientToResponse(&created), nil
}

// ListPatients returns all patients, or the subset matching the optional
// text filter (case-insensitive name substring or cpf substring).
func (u *patientUsecase) ListPatients(ctx context.Context, query string) (*dto.PatientListResponse, error) {
	patients, err := u.repo.List(ctx, query)
	if err != nil {
		u.log.Warnf("Failed to fetch patients: %+v", err)
		return nil, fmt.Errorf("failed to fetch patients: %w", err)
	}

	return &dto.PatientListResponse{
		Patients: converter.PatientsToResponses(patients),
		Total:    len(patients),
	}, nil
}
