package dto

import "time"

// CreatePatientRequest is the payload for registering a patient
type CreatePatientRequest struct {
	FullName  string `json:"full_name" validate:"required"`
	CPF       string `json:"cpf" validate:"required,max=14"`
	BirthDate string `json:"birth_date" validate:"required"`
	Sex       string `json:"sex" validate:"required,max=1"`
	Phone     string `json:"phone" validate:"max=20"`
	Address   string `json:"address"`
}

// PatientResponse represents a patient in responses
type PatientResponse struct {
	ID        string    `json:"id"`
	FullName  string    `json:"full_name"`
	CPF       string    `json:"cpf"`
	BirthDate string    `json:"birth_date"`
	Sex       string    `json:"sex"`
	Phone     string    `json:"phone"`
	Address   string    `json:"address"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type PatientListResponse struct {
	Patients []PatientResponse `json:"patients"`
	Total    int               `json:"total"`
}
