package service

import (
	"context"
	"fmt"
	"sort"

	"shift-marketplace-backend/internal/database/models"
	"shift-marketplace-backend/internal/repository"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"
)

// DateBucket holds one calendar day of shifts split by provisionality
type DateBucket struct {
	Date        string         `json:"date"`
	Confirmed   []models.Shift `json:"confirmed"`
	Provisional []models.Shift `json:"provisional"`
}

// ResolvedShift is a shift together with its display context
type ResolvedShift struct {
	Shift   models.Shift
	Context DisplayContext
}

// MarketplaceQueries derives rosters and the open marketplace from the registry.
// It never writes.
type MarketplaceQueries struct {
	shifts   repository.ShiftRepositoryInterface
	projects repository.ProjectRepositoryInterface
	offers   repository.OfferRepositoryInterface
}

// NewMarketplaceQueries creates a new marketplace query engine
func NewMarketplaceQueries(shifts repository.ShiftRepositoryInterface, projects repository.ProjectRepositoryInterface, offers repository.OfferRepositoryInterface) *MarketplaceQueries {
	return &MarketplaceQueries{
		shifts:   shifts,
		projects: projects,
		offers:   offers,
	}
}

// MyRoster returns every non-cancelled shift held by staffID, earliest first
func (q *MarketplaceQueries) MyRoster(ctx context.Context, staffID uuid.UUID) ([]ResolvedShift, error) {
	shifts, err := q.shifts.List(ctx, repository.ShiftFilter{
		StaffID:         &staffID,
		ExcludeStatuses: []models.ShiftStatus{models.ShiftStatusCancelled},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to list roster: %w", err)
	}
	SortShifts(shifts)
	return q.resolve(ctx, shifts)
}

// OpenMarketplace returns open, unassigned shifts that have not been voided, earliest first
func (q *MarketplaceQueries) OpenMarketplace(ctx context.Context) ([]ResolvedShift, error) {
	shifts, err := q.shifts.List(ctx, repository.ShiftFilter{
		Statuses:   []models.ShiftStatus{models.ShiftStatusOpen},
		Unassigned: true,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to list marketplace: %w", err)
	}
	SortShifts(shifts)

	resolved, err := q.resolve(ctx, shifts)
	if err != nil {
		return nil, err
	}

	visible := resolved[:0]
	for _, r := range resolved {
		if !r.Context.IsVoided {
			visible = append(visible, r)
		}
	}
	return visible, nil
}

// Resolve attaches display context to a single shift
func (q *MarketplaceQueries) Resolve(ctx context.Context, shift *models.Shift) (DisplayContext, error) {
	resolved, err := q.resolve(ctx, []models.Shift{*shift})
	if err != nil {
		return DisplayContext{}, err
	}
	return resolved[0].Context, nil
}

// resolve loads the linked projects and offers in parallel and joins them to shifts
func (q *MarketplaceQueries) resolve(ctx context.Context, shifts []models.Shift) ([]ResolvedShift, error) {
	projectIDs, offerIDs := linkedIDs(shifts)

	projectsByID := make(map[uuid.UUID]*models.Project, len(projectIDs))
	offersByID := make(map[uuid.UUID]*models.Offer, len(offerIDs))

	g, gctx := errgroup.WithContext(ctx)
	if len(projectIDs) > 0 {
		g.Go(func() error {
			projects, err := q.projects.GetByIDs(gctx, projectIDs)
			if err != nil {
				return fmt.Errorf("failed to load projects: %w", err)
			}
			for i := range projects {
				projectsByID[projects[i].ID] = &projects[i]
			}
			return nil
		})
	}
	if len(offerIDs) > 0 {
		g.Go(func() error {
			offers, err := q.offers.GetByIDs(gctx, offerIDs)
			if err != nil {
				return fmt.Errorf("failed to load offers: %w", err)
			}
			for i := range offers {
				offersByID[offers[i].ID] = &offers[i]
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	resolved := make([]ResolvedShift, len(shifts))
	for i := range shifts {
		resolved[i] = ResolvedShift{
			Shift:   shifts[i],
			Context: ResolveContext(&shifts[i], projectsByID, offersByID),
		}
	}
	return resolved, nil
}

// GroupByDate buckets shifts per calendar day. A shift is provisional exactly
// when it is flagged as a concept, otherwise confirmed, so every shift lands in
// one bucket. Days are returned in ascending order.
func GroupByDate(shifts []models.Shift) []DateBucket {
	sorted := make([]models.Shift, len(shifts))
	copy(sorted, shifts)
	SortShifts(sorted)

	var buckets []DateBucket
	for _, shift := range sorted {
		key := shift.DateKey()
		if len(buckets) == 0 || buckets[len(buckets)-1].Date != key {
			buckets = append(buckets, DateBucket{
				Date:        key,
				Confirmed:   []models.Shift{},
				Provisional: []models.Shift{},
			})
		}
		bucket := &buckets[len(buckets)-1]
		if shift.IsConcept {
			bucket.Provisional = append(bucket.Provisional, shift)
		} else {
			bucket.Confirmed = append(bucket.Confirmed, shift)
		}
	}
	return buckets
}

// SortShifts orders shifts by date, then start time, then id
func SortShifts(shifts []models.Shift) {
	sort.SliceStable(shifts, func(i, j int) bool {
		a, b := shifts[i], shifts[j]
		if ak, bk := a.DateKey(), b.DateKey(); ak != bk {
			return ak < bk
		}
		if a.StartTime != b.StartTime {
			return a.StartTime < b.StartTime
		}
		return a.ID.String() < b.ID.String()
	})
}
