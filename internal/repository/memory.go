package repository

import (
	"context"
	"slices"
	"strings"
	"sync"
	"time"

	"shift-marketplace-backend/internal/database/models"
	apperrors "shift-marketplace-backend/internal/errors"

	"github.com/google/uuid"
)

// NewMemoryStore returns a Store kept entirely in process memory. It is meant
// for single-instance development runs and tests.
func NewMemoryStore() *Store {
	return &Store{
		Shifts:   NewMemoryShiftRepository(),
		Projects: NewMemoryProjectRepository(),
		Offers:   NewMemoryOfferRepository(),
		Staff:    NewMemoryStaffRepository(),
	}
}

// MemoryShiftRepository is an in-process shift registry with the same
// compare-and-swap contract as ShiftRepository. Reads return copies.
type MemoryShiftRepository struct {
	mu     sync.RWMutex
	shifts map[uuid.UUID]*models.Shift
}

// NewMemoryShiftRepository creates an empty in-memory shift registry
func NewMemoryShiftRepository() *MemoryShiftRepository {
	return &MemoryShiftRepository{shifts: make(map[uuid.UUID]*models.Shift)}
}

// Create inserts a new shift
func (r *MemoryShiftRepository) Create(_ context.Context, shift *models.Shift) error {
	if shift.ID == uuid.Nil {
		shift.ID = uuid.New()
	}
	if shift.Status == "" {
		shift.Status = models.ShiftStatusOpen
	}
	if shift.Version == 0 {
		shift.Version = 1
	}
	if err := shift.Validate(); err != nil {
		return err
	}
	now := time.Now().UTC()
	shift.CreatedAt = now
	shift.UpdatedAt = now

	r.mu.Lock()
	defer r.mu.Unlock()
	if _, exists := r.shifts[shift.ID]; exists {
		return apperrors.ErrShiftExists
	}
	r.shifts[shift.ID] = shift.Clone()
	return nil
}

// GetByID retrieves a shift by ID
func (r *MemoryShiftRepository) GetByID(_ context.Context, id uuid.UUID) (*models.Shift, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	shift, ok := r.shifts[id]
	if !ok {
		return nil, apperrors.ErrShiftNotFound
	}
	return shift.Clone(), nil
}

// List retrieves shifts matching the filter
func (r *MemoryShiftRepository) List(_ context.Context, filter ShiftFilter) ([]models.Shift, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var shifts []models.Shift
	for _, shift := range r.shifts {
		if matchesFilter(shift, filter) {
			shifts = append(shifts, *shift.Clone())
		}
	}
	return shifts, nil
}

// CompareAndSwap stores next if the stored version still equals expectedVersion
func (r *MemoryShiftRepository) CompareAndSwap(_ context.Context, id uuid.UUID, expectedVersion int64, next *models.Shift) (*models.Shift, error) {
	if err := next.Validate(); err != nil {
		return nil, err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	current, ok := r.shifts[id]
	if !ok {
		return nil, apperrors.ErrShiftNotFound
	}
	if current.Version != expectedVersion {
		return nil, apperrors.ErrVersionConflict
	}

	stored := current.Clone()
	stored.Status = next.Status
	stored.StaffID = next.Clone().StaffID
	stored.UpdatedBy = next.UpdatedBy
	stored.UpdatedAt = time.Now().UTC()
	stored.Version = expectedVersion + 1
	r.shifts[id] = stored

	return stored.Clone(), nil
}

func matchesFilter(shift *models.Shift, filter ShiftFilter) bool {
	if filter.StaffID != nil && !shift.IsAssignedTo(*filter.StaffID) {
		return false
	}
	if filter.Unassigned && !shift.IsUnassigned() {
		return false
	}
	if len(filter.Statuses) > 0 && !slices.Contains(filter.Statuses, shift.Status) {
		return false
	}
	if slices.Contains(filter.ExcludeStatuses, shift.Status) {
		return false
	}
	if filter.From != nil && shift.DateKey() < filter.From.Format(models.DateLayout) {
		return false
	}
	if filter.To != nil && shift.DateKey() > filter.To.Format(models.DateLayout) {
		return false
	}
	return true
}

// memoryTable is a mutex-guarded map of value rows keyed by id
type memoryTable[T any] struct {
	mu   sync.RWMutex
	rows map[uuid.UUID]T
}

func newMemoryTable[T any]() *memoryTable[T] {
	return &memoryTable[T]{rows: make(map[uuid.UUID]T)}
}

func (t *memoryTable[T]) get(id uuid.UUID) (T, bool) {
	t.mu.RLock()
	defer t.mu.RUnlock()
	row, ok := t.rows[id]
	return row, ok
}

func (t *memoryTable[T]) find(match func(T) bool) (T, bool) {
	t.mu.RLock()
	defer t.mu.RUnlock()
	for _, row := range t.rows {
		if match(row) {
			return row, true
		}
	}
	var zero T
	return zero, false
}

func (t *memoryTable[T]) getMany(ids []uuid.UUID) []T {
	t.mu.RLock()
	defer t.mu.RUnlock()
	rows := make([]T, 0, len(ids))
	for _, id := range ids {
		if row, ok := t.rows[id]; ok {
			rows = append(rows, row)
		}
	}
	return rows
}

// insert stores row unless an existing row conflicts with it
func (t *memoryTable[T]) insert(id uuid.UUID, row T, conflicts func(T) bool) bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	if _, exists := t.rows[id]; exists {
		return false
	}
	for _, existing := range t.rows {
		if conflicts(existing) {
			return false
		}
	}
	t.rows[id] = row
	return true
}

func stampNew(base *models.BaseModel) {
	if base.ID == uuid.Nil {
		base.ID = uuid.New()
	}
	now := time.Now().UTC()
	base.CreatedAt = now
	base.UpdatedAt = now
}

// MemoryProjectRepository is an in-memory project directory
type MemoryProjectRepository struct {
	table *memoryTable[models.Project]
}

// NewMemoryProjectRepository creates an empty in-memory project directory
func NewMemoryProjectRepository() *MemoryProjectRepository {
	return &MemoryProjectRepository{table: newMemoryTable[models.Project]()}
}

// Create creates a new project
func (r *MemoryProjectRepository) Create(_ context.Context, project *models.Project) error {
	stampNew(&project.BaseModel)
	if project.Status == "" {
		project.Status = models.ProjectStatusActive
	}
	if !r.table.insert(project.ID, *project, func(p models.Project) bool { return p.Name == project.Name }) {
		return apperrors.ErrProjectExists
	}
	return nil
}

// GetByID retrieves a project by ID
func (r *MemoryProjectRepository) GetByID(_ context.Context, id uuid.UUID) (*models.Project, error) {
	project, ok := r.table.get(id)
	if !ok {
		return nil, apperrors.ErrProjectNotFound
	}
	return &project, nil
}

// GetByName retrieves a project by name
func (r *MemoryProjectRepository) GetByName(_ context.Context, name string) (*models.Project, error) {
	project, ok := r.table.find(func(p models.Project) bool { return p.Name == name })
	if !ok {
		return nil, apperrors.ErrProjectNotFound
	}
	return &project, nil
}

// GetByIDs retrieves all known projects among ids
func (r *MemoryProjectRepository) GetByIDs(_ context.Context, ids []uuid.UUID) ([]models.Project, error) {
	return r.table.getMany(ids), nil
}

// MemoryOfferRepository is an in-memory offer directory
type MemoryOfferRepository struct {
	table *memoryTable[models.Offer]
}

// NewMemoryOfferRepository creates an empty in-memory offer directory
func NewMemoryOfferRepository() *MemoryOfferRepository {
	return &MemoryOfferRepository{table: newMemoryTable[models.Offer]()}
}

// Create creates a new offer
func (r *MemoryOfferRepository) Create(_ context.Context, offer *models.Offer) error {
	stampNew(&offer.BaseModel)
	if offer.Status == "" {
		offer.Status = models.OfferStatusDraft
	}
	if !r.table.insert(offer.ID, *offer, func(o models.Offer) bool { return o.Name == offer.Name }) {
		return apperrors.ErrOfferExists
	}
	return nil
}

// GetByID retrieves an offer by ID
func (r *MemoryOfferRepository) GetByID(_ context.Context, id uuid.UUID) (*models.Offer, error) {
	offer, ok := r.table.get(id)
	if !ok {
		return nil, apperrors.ErrOfferNotFound
	}
	return &offer, nil
}

// GetByName retrieves an offer by name
func (r *MemoryOfferRepository) GetByName(_ context.Context, name string) (*models.Offer, error) {
	offer, ok := r.table.find(func(o models.Offer) bool { return o.Name == name })
	if !ok {
		return nil, apperrors.ErrOfferNotFound
	}
	return &offer, nil
}

// GetByIDs retrieves all known offers among ids
func (r *MemoryOfferRepository) GetByIDs(_ context.Context, ids []uuid.UUID) ([]models.Offer, error) {
	return r.table.getMany(ids), nil
}

// MemoryStaffRepository is an in-memory staff directory
type MemoryStaffRepository struct {
	table *memoryTable[models.Staff]
}

// NewMemoryStaffRepository creates an empty in-memory staff directory
func NewMemoryStaffRepository() *MemoryStaffRepository {
	return &MemoryStaffRepository{table: newMemoryTable[models.Staff]()}
}

// Create creates a new staff member
func (r *MemoryStaffRepository) Create(_ context.Context, staff *models.Staff) error {
	stampNew(&staff.BaseModel)
	staff.Email = strings.ToLower(staff.Email)
	if staff.Role == "" {
		staff.Role = models.StaffRoleStaff
	}
	row := *staff
	row.Skills = slices.Clone(staff.Skills)
	if !r.table.insert(staff.ID, row, func(s models.Staff) bool { return s.Email == staff.Email }) {
		return apperrors.ErrStaffExists
	}
	return nil
}

// GetByID retrieves a staff member by ID
func (r *MemoryStaffRepository) GetByID(_ context.Context, id uuid.UUID) (*models.Staff, error) {
	staff, ok := r.table.get(id)
	if !ok {
		return nil, apperrors.ErrStaffNotFound
	}
	staff.Skills = slices.Clone(staff.Skills)
	return &staff, nil
}

// GetByEmail retrieves a staff member by email (case-insensitive)
func (r *MemoryStaffRepository) GetByEmail(_ context.Context, email string) (*models.Staff, error) {
	email = strings.ToLower(email)
	staff, ok := r.table.find(func(s models.Staff) bool { return s.Email == email })
	if !ok {
		return nil, apperrors.ErrStaffNotFound
	}
	staff.Skills = slices.Clone(staff.Skills)
	return &staff, nil
}
