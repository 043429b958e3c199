package models

// Project represents a confirmed operational project that shifts can be linked to
type Project struct {
	BaseModel
	Name          string        `json:"name" gorm:"not null;size:200;uniqueIndex" validate:"required,min=1,max=200"`
	Location      string        `json:"location" gorm:"size:250" validate:"max=250"`
	ContactPerson string        `json:"contact_person" gorm:"size:200" validate:"max=200"`
	ContactPhone  string        `json:"contact_phone" gorm:"size:30" validate:"max=30"`
	Status        ProjectStatus `json:"status" gorm:"type:varchar(50);default:'active'" validate:"required"`
}

// TableName returns the table name for Project
func (Project) TableName() string {
	return "projects"
}
