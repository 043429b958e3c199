package seed

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	"shift-marketplace-backend/internal/database/models"
	apperrors "shift-marketplace-backend/internal/errors"
	"shift-marketplace-backend/internal/logger"
	"shift-marketplace-backend/internal/repository"

	"github.com/google/uuid"
	"gopkg.in/yaml.v3"
)

// Simple structures that directly match the stored records
type StaffData struct {
	FullName    string   `yaml:"full_name"`
	Email       string   `yaml:"email"`
	PhoneNumber string   `yaml:"phone_number,omitempty"`
	Role        string   `yaml:"role"`
	Skills      []string `yaml:"skills,omitempty"`
}

type ProjectData struct {
	Name          string `yaml:"name"`
	Location      string `yaml:"location"`
	ContactPerson string `yaml:"contact_person,omitempty"`
	ContactPhone  string `yaml:"contact_phone,omitempty"`
	Status        string `yaml:"status"`
}

type OfferData struct {
	Name          string `yaml:"name"`
	Location      string `yaml:"location"`
	ContactPerson string `yaml:"contact_person,omitempty"`
	ContactPhone  string `yaml:"contact_phone,omitempty"`
	Status        string `yaml:"status"`
}

type ShiftData struct {
	Date               string `yaml:"date"`
	StartTime          string `yaml:"start_time"`
	EndTime            string `yaml:"end_time"`
	Role               string `yaml:"role"`
	ProjectName        string `yaml:"project_name,omitempty"`
	OfferName          string `yaml:"offer_name,omitempty"`
	OfficeServiceTitle string `yaml:"office_service_title,omitempty"`
	StaffEmail         string `yaml:"staff_email,omitempty"`
	Location           string `yaml:"location,omitempty"`
	Briefing           string `yaml:"briefing,omitempty"`
	Notes              string `yaml:"notes,omitempty"`
}

// File is the layout of every YAML file under a seed directory
type File struct {
	Staff    []StaffData   `yaml:"staff"`
	Projects []ProjectData `yaml:"projects"`
	Offers   []OfferData   `yaml:"offers"`
	Shifts   []ShiftData   `yaml:"shifts"`
}

// Counts reports how many records of each kind were created; existing ones are skipped
type Counts struct {
	Staff    int
	Projects int
	Offers   int
	Shifts   int
}

const seedActor = "seed"

// LoadDir reads every YAML file under dir and writes its records into store
func LoadDir(ctx context.Context, store *repository.Store, dir string) (*Counts, error) {
	file, err := ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("failed to read seed files: %w", err)
	}
	return Load(ctx, store, file)
}

// ReadDir merges the YAML files found under dir
func ReadDir(dir string) (*File, error) {
	var all File

	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || !(strings.HasSuffix(path, ".yaml") || strings.HasSuffix(path, ".yml")) {
			return nil
		}

		data, err := os.ReadFile(path)
		if err != nil {
			return err
		}
		var file File
		if err := yaml.Unmarshal(data, &file); err != nil {
			return fmt.Errorf("%s: %w", path, err)
		}

		all.Staff = append(all.Staff, file.Staff...)
		all.Projects = append(all.Projects, file.Projects...)
		all.Offers = append(all.Offers, file.Offers...)
		all.Shifts = append(all.Shifts, file.Shifts...)
		return nil
	})

	return &all, err
}

// Load writes file into store. Running it twice creates nothing the second time.
func Load(ctx context.Context, store *repository.Store, file *File) (*Counts, error) {
	var counts Counts

	staffByEmail := make(map[string]*models.Staff)
	for _, data := range file.Staff {
		staff, isNew, err := createStaff(ctx, store, data)
		if err != nil {
			return nil, fmt.Errorf("failed to create staff member %s: %w", data.Email, err)
		}
		staffByEmail[data.Email] = staff
		if isNew {
			counts.Staff++
		}
	}

	projectsByName := make(map[string]*models.Project)
	for _, data := range file.Projects {
		project, isNew, err := createProject(ctx, store, data)
		if err != nil {
			return nil, fmt.Errorf("failed to create project %s: %w", data.Name, err)
		}
		projectsByName[data.Name] = project
		if isNew {
			counts.Projects++
		}
	}

	offersByName := make(map[string]*models.Offer)
	for _, data := range file.Offers {
		offer, isNew, err := createOffer(ctx, store, data)
		if err != nil {
			return nil, fmt.Errorf("failed to create offer %s: %w", data.Name, err)
		}
		offersByName[data.Name] = offer
		if isNew {
			counts.Offers++
		}
	}

	for _, data := range file.Shifts {
		shift, err := buildShift(data, staffByEmail, projectsByName, offersByName)
		if err != nil {
			return nil, fmt.Errorf("invalid shift on %s at %s: %w", data.Date, data.StartTime, err)
		}
		isNew, err := createShift(ctx, store, shift)
		if err != nil {
			return nil, fmt.Errorf("failed to create shift on %s at %s: %w", data.Date, data.StartTime, err)
		}
		if isNew {
			counts.Shifts++
		}
	}

	logger.WithContext(ctx).WithFields(map[string]interface{}{
		"staff":    counts.Staff,
		"projects": counts.Projects,
		"offers":   counts.Offers,
		"shifts":   counts.Shifts,
	}).Info("seed data loaded")
	return &counts, nil
}

func createStaff(ctx context.Context, store *repository.Store, data StaffData) (*models.Staff, bool, error) {
	existing, err := store.Staff.GetByEmail(ctx, data.Email)
	if err == nil {
		return existing, false, nil
	}
	if !errors.Is(err, apperrors.ErrStaffNotFound) {
		return nil, false, err
	}

	role := models.StaffRole(data.Role)
	if role == "" {
		role = models.StaffRoleStaff
	}
	if !role.IsValid() {
		return nil, false, fmt.Errorf("unknown role %q", data.Role)
	}

	staff := &models.Staff{
		BaseModel:   models.BaseModel{CreatedBy: seedActor, UpdatedBy: seedActor},
		FullName:    data.FullName,
		Email:       data.Email,
		PhoneNumber: data.PhoneNumber,
		Role:        role,
		Skills:      data.Skills,
		IsActive:    true,
	}
	if err := store.Staff.Create(ctx, staff); err != nil {
		return nil, false, err
	}
	return staff, true, nil
}

func createProject(ctx context.Context, store *repository.Store, data ProjectData) (*models.Project, bool, error) {
	existing, err := store.Projects.GetByName(ctx, data.Name)
	if err == nil {
		return existing, false, nil
	}
	if !errors.Is(err, apperrors.ErrProjectNotFound) {
		return nil, false, err
	}

	status := models.ProjectStatus(data.Status)
	if status == "" {
		status = models.ProjectStatusActive
	}
	if !status.IsValid() {
		return nil, false, fmt.Errorf("unknown project status %q", data.Status)
	}

	project := &models.Project{
		BaseModel:     models.BaseModel{CreatedBy: seedActor, UpdatedBy: seedActor},
		Name:          data.Name,
		Location:      data.Location,
		ContactPerson: data.ContactPerson,
		ContactPhone:  data.ContactPhone,
		Status:        status,
	}
	if err := store.Projects.Create(ctx, project); err != nil {
		return nil, false, err
	}
	return project, true, nil
}

func createOffer(ctx context.Context, store *repository.Store, data OfferData) (*models.Offer, bool, error) {
	existing, err := store.Offers.GetByName(ctx, data.Name)
	if err == nil {
		return existing, false, nil
	}
	if !errors.Is(err, apperrors.ErrOfferNotFound) {
		return nil, false, err
	}

	status := models.OfferStatus(data.Status)
	if status == "" {
		status = models.OfferStatusDraft
	}
	if !status.IsValid() {
		return nil, false, fmt.Errorf("unknown offer status %q", data.Status)
	}

	offer := &models.Offer{
		BaseModel:     models.BaseModel{CreatedBy: seedActor, UpdatedBy: seedActor},
		Name:          data.Name,
		Location:      data.Location,
		ContactPerson: data.ContactPerson,
		ContactPhone:  data.ContactPhone,
		Status:        status,
	}
	if err := store.Offers.Create(ctx, offer); err != nil {
		return nil, false, err
	}
	return offer, true, nil
}

func buildShift(data ShiftData, staff map[string]*models.Staff, projects map[string]*models.Project, offers map[string]*models.Offer) (*models.Shift, error) {
	date, err := time.Parse(models.DateLayout, data.Date)
	if err != nil {
		return nil, fmt.Errorf("bad date: %w", err)
	}

	shift := &models.Shift{
		BaseModel:          models.BaseModel{CreatedBy: seedActor, UpdatedBy: seedActor},
		Date:               date,
		StartTime:          data.StartTime,
		EndTime:            data.EndTime,
		Role:               data.Role,
		IsOfficeService:    data.OfficeServiceTitle != "",
		OfficeServiceTitle: data.OfficeServiceTitle,
		Status:             models.ShiftStatusOpen,
		Version:            1,
		Location:           data.Location,
		Briefing:           data.Briefing,
		Notes:              data.Notes,
	}

	if data.ProjectName != "" {
		project, ok := projects[data.ProjectName]
		if !ok {
			return nil, fmt.Errorf("unknown project %q", data.ProjectName)
		}
		shift.ProjectID = &project.ID
	}
	if data.OfferName != "" {
		offer, ok := offers[data.OfferName]
		if !ok {
			return nil, fmt.Errorf("unknown offer %q", data.OfferName)
		}
		shift.OfferID = &offer.ID
		shift.IsConcept = true
	}
	if data.StaffEmail != "" {
		member, ok := staff[data.StaffEmail]
		if !ok {
			return nil, fmt.Errorf("unknown staff member %q", data.StaffEmail)
		}
		shift.StaffID = &member.ID
		shift.Status = models.ShiftStatusAssigned
	}

	return shift, shift.Validate()
}

// createShift skips a shift when one with the same slot and linkage already exists
func createShift(ctx context.Context, store *repository.Store, shift *models.Shift) (bool, error) {
	sameDay, err := store.Shifts.List(ctx, repository.ShiftFilter{From: &shift.Date, To: &shift.Date})
	if err != nil {
		return false, fmt.Errorf("failed to query shifts: %w", err)
	}
	for i := range sameDay {
		existing := &sameDay[i]
		if existing.StartTime == shift.StartTime && existing.Role == shift.Role &&
			sameLink(existing.ProjectID, shift.ProjectID) && sameLink(existing.OfferID, shift.OfferID) {
			return false, nil
		}
	}

	if err := store.Shifts.Create(ctx, shift); err != nil {
		return false, err
	}
	return true, nil
}

func sameLink(a, b *uuid.UUID) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	return *a == *b
}
