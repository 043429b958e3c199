package testutils

import (
	"fmt"
	"time"

	"shift-marketplace-backend/internal/database/models"

	"github.com/google/uuid"
)

// StaffFactory provides methods to create test Staff data
type StaffFactory struct{}

// NewStaffFactory creates a new StaffFactory
func NewStaffFactory() *StaffFactory {
	return &StaffFactory{}
}

// Create creates a test Staff member with default values and a unique email
func (f *StaffFactory) Create() *models.Staff {
	id := uuid.New()
	return &models.Staff{
		BaseModel: models.BaseModel{
			ID:        id,
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		FullName:    "Test Staff",
		Email:       fmt.Sprintf("staff-%s@example.com", id.String()[:8]),
		PhoneNumber: "+31 6 0000 0000",
		Role:        models.StaffRoleStaff,
		Skills:      []string{"steward"},
		IsActive:    true,
	}
}

// WithRole sets a custom role for the staff member
func (f *StaffFactory) WithRole(role models.StaffRole) *models.Staff {
	staff := f.Create()
	staff.Role = role
	return staff
}

// WithEmail sets a custom email for the staff member
func (f *StaffFactory) WithEmail(email string) *models.Staff {
	staff := f.Create()
	staff.Email = email
	return staff
}

// ProjectFactory provides methods to create test Project data
type ProjectFactory struct{}

// NewProjectFactory creates a new ProjectFactory
func NewProjectFactory() *ProjectFactory {
	return &ProjectFactory{}
}

// Create creates a test Project with default values and a unique name
func (f *ProjectFactory) Create() *models.Project {
	return f.WithName("Test Project " + uuid.NewString()[:8])
}

// WithName sets a custom name for the project
func (f *ProjectFactory) WithName(name string) *models.Project {
	return &models.Project{
		BaseModel: models.BaseModel{
			ID:        uuid.New(),
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		Name:          name,
		Location:      name + " grounds",
		ContactPerson: "Project Lead",
		ContactPhone:  "+31 20 000 0000",
		Status:        models.ProjectStatusActive,
	}
}

// OfferFactory provides methods to create test Offer data
type OfferFactory struct{}

// NewOfferFactory creates a new OfferFactory
func NewOfferFactory() *OfferFactory {
	return &OfferFactory{}
}

// Create creates a test Offer in sent status with a unique name
func (f *OfferFactory) Create() *models.Offer {
	return f.WithStatus(models.OfferStatusSent)
}

// WithStatus creates a test Offer with the given status
func (f *OfferFactory) WithStatus(status models.OfferStatus) *models.Offer {
	name := "Test Offer " + uuid.NewString()[:8]
	return &models.Offer{
		BaseModel: models.BaseModel{
			ID:        uuid.New(),
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		Name:          name,
		Location:      name + " hall",
		ContactPerson: "Sales Lead",
		Status:        status,
	}
}

// ShiftFactory provides methods to create test Shift data
type ShiftFactory struct{}

// NewShiftFactory creates a new ShiftFactory
func NewShiftFactory() *ShiftFactory {
	return &ShiftFactory{}
}

// Create creates an open office service shift on 2025-06-10 from 09:00 to 17:00
func (f *ShiftFactory) Create() *models.Shift {
	return &models.Shift{
		BaseModel: models.BaseModel{
			ID:        uuid.New(),
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		Date:               time.Date(2025, 6, 10, 0, 0, 0, 0, time.UTC),
		StartTime:          "09:00",
		EndTime:            "17:00",
		Role:               "steward",
		IsOfficeService:    true,
		OfficeServiceTitle: "Operations desk",
		Status:             models.ShiftStatusOpen,
		Version:            1,
	}
}

// ForProject creates an open shift linked to a confirmed project
func (f *ShiftFactory) ForProject(projectID uuid.UUID) *models.Shift {
	shift := f.linked()
	shift.ProjectID = &projectID
	return shift
}

// ForOffer creates an open provisional shift linked to an offer
func (f *ShiftFactory) ForOffer(offerID uuid.UUID) *models.Shift {
	shift := f.linked()
	shift.OfferID = &offerID
	shift.IsConcept = true
	return shift
}

func (f *ShiftFactory) linked() *models.Shift {
	shift := f.Create()
	shift.IsOfficeService = false
	shift.OfficeServiceTitle = ""
	return shift
}

// AssignedTo creates a shift already held by staffID
func (f *ShiftFactory) AssignedTo(staffID uuid.UUID) *models.Shift {
	shift := f.Create()
	shift.StaffID = &staffID
	shift.Status = models.ShiftStatusAssigned
	return shift
}

// FactorySet provides all factories in one place
type FactorySet struct {
	Staff   *StaffFactory
	Project *ProjectFactory
	Offer   *OfferFactory
	Shift   *ShiftFactory
}

// NewFactorySet creates a new FactorySet with all factories
func NewFactorySet() *FactorySet {
	return &FactorySet{
		Staff:   NewStaffFactory(),
		Project: NewProjectFactory(),
		Offer:   NewOfferFactory(),
		Shift:   NewShiftFactory(),
	}
}
