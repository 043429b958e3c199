package models

// ShiftStatus defines the lifecycle status of a shift
type ShiftStatus string

const (
	ShiftStatusOpen       ShiftStatus = "open"
	ShiftStatusAssigned   ShiftStatus = "assigned"
	ShiftStatusInProgress ShiftStatus = "in_progress"
	ShiftStatusCompleted  ShiftStatus = "completed"
	ShiftStatusCancelled  ShiftStatus = "cancelled"
)

// AllShiftStatuses lists every status in lifecycle order
var AllShiftStatuses = []ShiftStatus{
	ShiftStatusOpen,
	ShiftStatusAssigned,
	ShiftStatusInProgress,
	ShiftStatusCompleted,
	ShiftStatusCancelled,
}

// IsValid checks if the ShiftStatus is valid
func (s ShiftStatus) IsValid() bool {
	switch s {
	case ShiftStatusOpen, ShiftStatusAssigned, ShiftStatusInProgress, ShiftStatusCompleted, ShiftStatusCancelled:
		return true
	}
	return false
}

// IsTerminal reports whether no further transition can leave this status
func (s ShiftStatus) IsTerminal() bool {
	return s == ShiftStatusCompleted || s == ShiftStatusCancelled
}

// RequiresStaff reports whether a shift in this status must carry a staff reference
func (s ShiftStatus) RequiresStaff() bool {
	switch s {
	case ShiftStatusAssigned, ShiftStatusInProgress, ShiftStatusCompleted:
		return true
	}
	return false
}

// StaffRole defines what a staff member may do beyond claiming shifts
type StaffRole string

const (
	StaffRoleStaff   StaffRole = "staff"
	StaffRolePlanner StaffRole = "planner"
	StaffRoleAdmin   StaffRole = "admin"
)

// IsValid checks if the StaffRole is valid
func (r StaffRole) IsValid() bool {
	switch r {
	case StaffRoleStaff, StaffRolePlanner, StaffRoleAdmin:
		return true
	}
	return false
}

// CanPlan reports whether the role may manage shifts it is not assigned to
func (r StaffRole) CanPlan() bool {
	return r == StaffRolePlanner || r == StaffRoleAdmin
}

// ProjectStatus represents the status of a project
type ProjectStatus string

const (
	ProjectStatusActive    ProjectStatus = "active"
	ProjectStatusCompleted ProjectStatus = "completed"
	ProjectStatusCancelled ProjectStatus = "cancelled"
)

// IsValid checks if the ProjectStatus is valid
func (s ProjectStatus) IsValid() bool {
	switch s {
	case ProjectStatusActive, ProjectStatusCompleted, ProjectStatusCancelled:
		return true
	}
	return false
}

// OfferStatus represents the lifecycle status of a commercial offer
type OfferStatus string

const (
	OfferStatusDraft    OfferStatus = "draft"
	OfferStatusSent     OfferStatus = "sent"
	OfferStatusAccepted OfferStatus = "accepted"
	OfferStatusRejected OfferStatus = "rejected"
	OfferStatusArchived OfferStatus = "archived"
)

// IsValid checks if the OfferStatus is valid
func (s OfferStatus) IsValid() bool {
	switch s {
	case OfferStatusDraft, OfferStatusSent, OfferStatusAccepted, OfferStatusRejected, OfferStatusArchived:
		return true
	}
	return false
}
