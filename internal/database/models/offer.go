package models

// Offer represents a commercial offer; shifts linked to it are provisional until it is accepted
type Offer struct {
	BaseModel
	Name          string      `json:"name" gorm:"not null;size:200;uniqueIndex" validate:"required,min=1,max=200"`
	Location      string      `json:"location" gorm:"size:250" validate:"max=250"`
	ContactPerson string      `json:"contact_person" gorm:"size:200" validate:"max=200"`
	ContactPhone  string      `json:"contact_phone" gorm:"size:30" validate:"max=30"`
	Status        OfferStatus `json:"status" gorm:"type:varchar(50);default:'draft'" validate:"required"`
}

// TableName returns the table name for Offer
func (Offer) TableName() string {
	return "offers"
}

// IsArchived reports whether the offer is dead; its shifts are voided
func (o *Offer) IsArchived() bool {
	return o != nil && o.Status == OfferStatusArchived
}
