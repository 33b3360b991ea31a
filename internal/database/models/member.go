package models

// Member represents a member of the ward who can hold a calling
type Member struct {
	BaseModel
	FullName  string `json:"full_name" gorm:"not null;size:200" validate:"required,max=200"`
	FirstName string `json:"first_name" gorm:"size:100" validate:"max=100"`
	LastName  string `json:"last_name" gorm:"size:100" validate:"max=100"`
	Email     string `json:"email" gorm:"size:255;index" validate:"omitempty,email,max=255"`
	Phone     string `json:"phone" gorm:"size:40"`
	PhotoURL  string `json:"photo_url" gorm:"size:500"`
	IsActive  bool   `json:"is_active" gorm:"not null"`
}

// TableName returns the table name for Member
func (Member) TableName() string {
	return "members"
}
