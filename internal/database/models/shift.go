package models

import (
	"errors"
	"reflect"
	"strings"
	"time"

	apperrors "shift-marketplace-backend/internal/errors"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// DateLayout is the calendar date format used for shift dates and date buckets
const DateLayout = "2006-01-02"

// TimeLayout is the wall-clock format used for shift start and end times
const TimeLayout = "15:04"

// fieldRules checks the validate tags; field errors are reported under their json names
var fieldRules = newFieldRules()

func newFieldRules() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// Shift represents a single time-boxed work assignment
type Shift struct {
	BaseModel
	Date               time.Time   `json:"date" gorm:"type:date;not null;index" validate:"required"`
	StartTime          string      `json:"start_time" gorm:"size:5;not null" validate:"required,datetime=15:04"`
	EndTime            string      `json:"end_time" gorm:"size:5;not null" validate:"required,datetime=15:04"`
	Role               string      `json:"role" gorm:"size:100" validate:"max=100"`
	IsOfficeService    bool        `json:"is_office_service" gorm:"default:false"`
	OfficeServiceTitle string      `json:"office_service_title,omitempty" gorm:"size:200" validate:"max=200"`
	ProjectID          *uuid.UUID  `json:"project_id,omitempty" gorm:"type:uuid;index"`
	OfferID            *uuid.UUID  `json:"offer_id,omitempty" gorm:"type:uuid;index"`
	StaffID            *uuid.UUID  `json:"staff_id,omitempty" gorm:"type:uuid;index"`
	IsConcept          bool        `json:"is_concept" gorm:"default:false"`
	Status             ShiftStatus `json:"status" gorm:"type:varchar(20);not null;default:'open';index" validate:"required"`
	Location           string      `json:"location,omitempty" gorm:"size:250" validate:"max=250"`
	ContactPerson      string      `json:"contact_person,omitempty" gorm:"size:200" validate:"max=200"`
	ContactPhone       string      `json:"contact_phone,omitempty" gorm:"size:30" validate:"max=30"`
	Briefing           string      `json:"briefing,omitempty" gorm:"type:text"`
	Notes              string      `json:"notes,omitempty" gorm:"type:text"`
	Version            int64       `json:"version" gorm:"not null;default:1"`
}

// TableName returns the table name for Shift
func (Shift) TableName() string {
	return "shifts"
}

// BeforeCreate assigns id and initial version and rejects records that break shift invariants
func (s *Shift) BeforeCreate(tx *gorm.DB) error {
	if err := s.BaseModel.BeforeCreate(tx); err != nil {
		return err
	}
	if s.Status == "" {
		s.Status = ShiftStatusOpen
	}
	if s.Version == 0 {
		s.Version = 1
	}
	return s.Validate()
}

// DateKey returns the shift's calendar date as YYYY-MM-DD
func (s *Shift) DateKey() string {
	return s.Date.Format(DateLayout)
}

// IsUnassigned reports whether the shift carries no staff reference
func (s *Shift) IsUnassigned() bool {
	return s.StaffID == nil || *s.StaffID == uuid.Nil
}

// IsAssignedTo reports whether staffID holds this shift
func (s *Shift) IsAssignedTo(staffID uuid.UUID) bool {
	return !s.IsUnassigned() && *s.StaffID == staffID
}

// Validate checks the structural invariants of a shift record
func (s *Shift) Validate() error {
	if err := fieldRules.Struct(s); err != nil {
		var fieldErrs validator.ValidationErrors
		if errors.As(err, &fieldErrs) && len(fieldErrs) > 0 {
			fe := fieldErrs[0]
			return apperrors.NewValidationError(fe.Field(), "failed "+fe.Tag()+" rule")
		}
		return apperrors.NewValidationError("shift", err.Error())
	}
	if !s.Status.IsValid() {
		return apperrors.NewValidationError("status", "unknown status "+string(s.Status))
	}
	if s.Status.RequiresStaff() && s.IsUnassigned() {
		return apperrors.NewValidationError("staff_id", "required when status is "+string(s.Status))
	}
	if !s.Status.RequiresStaff() && !s.IsUnassigned() {
		return apperrors.NewValidationError("staff_id", "must be empty when status is "+string(s.Status))
	}
	if s.ProjectID != nil && s.OfferID != nil {
		return apperrors.ErrInvalidLinkage
	}
	if s.IsOfficeService && (s.ProjectID != nil || s.OfferID != nil) {
		return apperrors.NewValidationError("is_office_service", "office service shifts cannot reference a project or offer")
	}
	if !s.IsOfficeService && s.ProjectID == nil && s.OfferID == nil {
		return apperrors.ErrUnclassifiedShift
	}
	// The provisional flag is the single source of truth; it must agree with the offer linkage.
	if s.IsConcept != (s.OfferID != nil) {
		return apperrors.NewValidationError("is_concept", "must be set exactly when the shift is linked to an offer")
	}
	start, err := time.Parse(TimeLayout, s.StartTime)
	if err != nil {
		return apperrors.NewValidationError("start_time", "must be HH:MM")
	}
	end, err := time.Parse(TimeLayout, s.EndTime)
	if err != nil {
		return apperrors.NewValidationError("end_time", "must be HH:MM")
	}
	if start.Equal(end) {
		return apperrors.ErrInvalidTimeRange
	}
	return nil
}

// Clone returns a deep copy so callers never share pointer fields with the registry
func (s *Shift) Clone() *Shift {
	c := *s
	c.ProjectID = cloneID(s.ProjectID)
	c.OfferID = cloneID(s.OfferID)
	c.StaffID = cloneID(s.StaffID)
	return &c
}

func cloneID(id *uuid.UUID) *uuid.UUID {
	if id == nil {
		return nil
	}
	v := *id
	return &v
}
