package service

import (
	"shift-marketplace-backend/internal/database/models"

	"github.com/google/uuid"
)

// DisplayContext is the business context a shift is shown with
type DisplayContext struct {
	Title         string `json:"title"`
	Location      string `json:"location,omitempty"`
	ContactPerson string `json:"contact_person,omitempty"`
	ContactPhone  string `json:"contact_phone,omitempty"`
	Briefing      string `json:"briefing,omitempty"`
	IsProvisional bool   `json:"is_provisional"`
	IsVoided      bool   `json:"is_voided"`
}

// ResolveContext joins a shift to its project, offer or office-service descriptor.
//
// Precedence: shift-level overrides, then the project for non-provisional shifts,
// then the offer. The maps are lookups only; neither they nor the shift are modified.
func ResolveContext(shift *models.Shift, projectsByID map[uuid.UUID]*models.Project, offersByID map[uuid.UUID]*models.Offer) DisplayContext {
	ctx := DisplayContext{
		IsProvisional: shift.IsConcept,
		Briefing:      shift.Briefing,
	}

	var offer *models.Offer
	if shift.OfferID != nil {
		offer = offersByID[*shift.OfferID]
	}
	ctx.IsVoided = offer.IsArchived()

	switch {
	case shift.IsOfficeService:
		ctx.Title = shift.OfficeServiceTitle
	case !shift.IsConcept && shift.ProjectID != nil:
		if project := projectsByID[*shift.ProjectID]; project != nil {
			ctx.Title = project.Name
			ctx.Location = project.Location
			ctx.ContactPerson = project.ContactPerson
			ctx.ContactPhone = project.ContactPhone
		}
	case offer != nil:
		ctx.Title = offer.Name
		ctx.Location = offer.Location
		ctx.ContactPerson = offer.ContactPerson
		ctx.ContactPhone = offer.ContactPhone
	}

	if ctx.Title == "" {
		ctx.Title = shift.Role
	}
	if shift.Location != "" {
		ctx.Location = shift.Location
	}
	if shift.ContactPerson != "" {
		ctx.ContactPerson = shift.ContactPerson
	}
	if shift.ContactPhone != "" {
		ctx.ContactPhone = shift.ContactPhone
	}

	return ctx
}

// linkedIDs collects the distinct project and offer ids referenced by shifts
func linkedIDs(shifts []models.Shift) (projectIDs, offerIDs []uuid.UUID) {
	seenProjects := make(map[uuid.UUID]struct{})
	seenOffers := make(map[uuid.UUID]struct{})
	for i := range shifts {
		if id := shifts[i].ProjectID; id != nil {
			if _, ok := seenProjects[*id]; !ok {
				seenProjects[*id] = struct{}{}
				projectIDs = append(projectIDs, *id)
			}
		}
		if id := shifts[i].OfferID; id != nil {
			if _, ok := seenOffers[*id]; !ok {
				seenOffers[*id] = struct{}{}
				offerIDs = append(offerIDs, *id)
			}
		}
	}
	return projectIDs, offerIDs
}
