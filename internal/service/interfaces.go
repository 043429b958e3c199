package service

import (
	"context"

	"github.com/google/uuid"
)

//go:generate mockgen -source=interfaces.go -destination=../mocks/service_mocks.go -package=mocks

// ShiftServiceInterface defines the interface for shift service
type ShiftServiceInterface interface {
	GetMyRoster(ctx context.Context, actor Actor) (*ShiftListResponse, error)
	GetStaffRoster(ctx context.Context, actor Actor, staffID uuid.UUID) (*ShiftListResponse, error)
	GetMarketplace(ctx context.Context) (*ShiftListResponse, error)
	GetMarketplaceByDate(ctx context.Context) ([]DateGroupResponse, error)
	GetShift(ctx context.Context, id uuid.UUID) (*ShiftResponse, error)
	Claim(ctx context.Context, actor Actor, id uuid.UUID) (*ShiftResponse, error)
	Release(ctx context.Context, actor Actor, id uuid.UUID, req *ReleaseRequest) (*ShiftResponse, error)
	Start(ctx context.Context, actor Actor, id uuid.UUID) (*ShiftResponse, error)
	Complete(ctx context.Context, actor Actor, id uuid.UUID) (*ShiftResponse, error)
	Cancel(ctx context.Context, actor Actor, id uuid.UUID) (*ShiftResponse, error)
}

var _ ShiftServiceInterface = (*ShiftService)(nil)
