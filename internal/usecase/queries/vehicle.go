package queries

import (
	"context"

	"github.com/google/uuid"
)

type VehicleViewRepo interface {
	FindByID(ctx context.Context, id uuid.UUID) (*VehicleView, error)
	FindAvailable(ctx context.Context, limit int32) ([]*VehicleView, error)
}

type VehicleQueries interface {
	GetByID(ctx context.Context, id uuid.UUID) (*VehicleView, error)
	ListAvailable(ctx context.Context, limit int) ([]*VehicleView, error)
}

type vehicleQueriesImpl struct {
	repo VehicleViewRepo
}

func NewVehicleQueries(repo VehicleViewRepo) VehicleQueries {
	return &vehicleQueriesImpl{repo: repo}
}

func (q *vehicleQueriesImpl) GetByID(ctx context.Context, id uuid.UUID) (*VehicleView, error) {
	return q.repo.FindByID(ctx, id)
}

func (q *vehicleQueriesImpl) ListAvailable(ctx context.Context, limit int) ([]*VehicleView, error) {
	if limit <= 0 || limit > 100 {
		limit = 50
	}
	return q.repo.FindAvailable(ctx, int32(limit))
}
