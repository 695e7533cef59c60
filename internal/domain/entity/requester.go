package entity

// Requester is the physician or institution that ordered an exam.
// This core only reads requesters; they are provisioned elsewhere.
type Requester struct {
	ID   string `gorm:"type:text;primaryKey" json:"id"`
	Name string `gorm:"type:varchar(150);uniqueIndex;not null" json:"name"`
}

func (Requester) TableName() string {
	return "requesters"
}
