package readstore

import (
	"context"

	"rentora/internal/infra"
	"rentora/internal/pkg/pgconv"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

type LocationReadStore struct {
	db *pgxpool.Pool
}

func NewLocationReadStore(db *pgxpool.Pool) *LocationReadStore {
	return &LocationReadStore{db: db}
}

const selectDeliveryFeeSQL = `
SELECT fee
FROM delivery_locations
WHERE id = $1 AND active = true`

func (s *LocationReadStore) FindFee(ctx context.Context, locationID uuid.UUID) (float64, error) {
	var fee float64
	err := s.db.QueryRow(ctx, selectDeliveryFeeSQL, locationID).Scan(&fee)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return 0, infra.WrapRepoErr("delivery location not found", err, infra.KindNotFound)
		}
		return 0, infra.WrapRepoErr("failed to find delivery fee", err)
	}
	return fee, nil
}
