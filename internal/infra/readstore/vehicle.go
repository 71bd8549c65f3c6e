package readstore

import (
	"context"

	"rentora/internal/infra"
	"rentora/internal/pkg/pgconv"
	"rentora/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

type VehicleReadStore struct {
	db *pgxpool.Pool
}

func NewVehicleReadStore(db *pgxpool.Pool) *VehicleReadStore {
	return &VehicleReadStore{db: db}
}

const selectVehicleViewSQL = `
SELECT id, name, make, model, year,
	daily_rate, weekly_rate, monthly_rate, semester_rate,
	available, created_at, updated_at
FROM vehicles
WHERE id = $1`

func (s *VehicleReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.VehicleView, error) {
	var view queries.VehicleView
	err := s.db.QueryRow(ctx, selectVehicleViewSQL, id).Scan(
		&view.ID, &view.Name, &view.Make, &view.Model, &view.Year,
		&view.DailyRate, &view.WeeklyRate, &view.MonthlyRate, &view.SemesterRate,
		&view.Available, &view.CreatedAt, &view.UpdatedAt,
	)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("vehicle not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find vehicle", err)
	}
	return &view, nil
}

const selectAvailableVehiclesSQL = `
SELECT id, name, make, model, year,
	daily_rate, weekly_rate, monthly_rate, semester_rate,
	available, created_at, updated_at
FROM vehicles
WHERE available = true
ORDER BY name
LIMIT $1`

func (s *VehicleReadStore) FindAvailable(ctx context.Context, limit int32) ([]*queries.VehicleView, error) {
	rows, err := s.db.Query(ctx, selectAvailableVehiclesSQL, limit)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list vehicles", err)
	}
	defer rows.Close()

	vehicles := make([]*queries.VehicleView, 0)
	for rows.Next() {
		var view queries.VehicleView
		if err := rows.Scan(
			&view.ID, &view.Name, &view.Make, &view.Model, &view.Year,
			&view.DailyRate, &view.WeeklyRate, &view.MonthlyRate, &view.SemesterRate,
			&view.Available, &view.CreatedAt, &view.UpdatedAt,
		); err != nil {
			return nil, infra.WrapRepoErr("failed to scan vehicle row", err)
		}
		vehicles = append(vehicles, &view)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate vehicle rows", err)
	}
	return vehicles, nil
}

const selectVehicleRatesSQL = `
SELECT id, name, daily_rate, weekly_rate, monthly_rate, semester_rate
FROM vehicles
WHERE id = $1 AND available = true`

// FindRates returns the vehicle's live rate card. Unavailable vehicles are
// indistinguishable from missing ones on purpose.
func (s *VehicleReadStore) FindRates(ctx context.Context, vehicleID uuid.UUID) (*queries.VehicleRates, error) {
	var vr queries.VehicleRates
	err := s.db.QueryRow(ctx, selectVehicleRatesSQL, vehicleID).Scan(
		&vr.VehicleID, &vr.Name,
		&vr.Card.Daily, &vr.Card.Weekly, &vr.Card.Monthly, &vr.Card.Semester,
	)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("vehicle not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find vehicle rates", err)
	}
	return &vr, nil
}
