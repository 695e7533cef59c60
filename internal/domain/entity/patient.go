package entity

import (
	"strings"
	"time"
)

// Patient represents a person registered at the laboratory.
type Patient struct {
	ID         string    `gorm:"type:text;primaryKey" json:"id"`
	LegacyCode *int64    `gorm:"column:legacy_code" json:"legacy_code,omitempty"`
	FullName   string    `gorm:"type:varchar(150);not null" json:"full_name"`
	CPF        string    `gorm:"type:varchar(14);uniqueIndex;not null" json:"cpf"`
	BirthDate  string    `gorm:"type:text;not null" json:"birth_date"`
	Sex        string    `gorm:"type:varchar(1);not null" json:"sex"`
	Phone      string    `gorm:"type:varchar(20);not null" json:"phone"`
	Address    string    `gorm:"type:text;not null" json:"address"`
	CreatedAt  time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt  time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

func (Patient) TableName() string {
	return "patients"
}

// HasRequiredFields reports whether the identity fields survive trimming.
func (p *Patient) HasRequiredFields() bool {
	return strings.TrimSpace(p.FullName) != "" && strings.TrimSpace(p.CPF) != ""
}
