package models

// Staff represents a field staff member who can claim shifts
type Staff struct {
	BaseModel
	FullName    string    `json:"full_name" gorm:"not null;size:200" validate:"required,max=200"`
	Email       string    `json:"email" gorm:"uniqueIndex;not null;size:255" validate:"required,email,max=255"`
	PhoneNumber string    `json:"phone_number" gorm:"size:30" validate:"max=30"`
	Role        StaffRole `json:"role" gorm:"type:varchar(50);not null;default:'staff'" validate:"required"`
	Skills      []string  `json:"skills" gorm:"serializer:json"`
	IsActive    bool      `json:"is_active" gorm:"default:true"`
}

// TableName returns the table name for Staff
func (Staff) TableName() string {
	return "staff"
}
