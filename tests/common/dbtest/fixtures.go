//go:build unit || e2e

package dbtest

import (
	"context"
	"testing"
	"time"

	"rentora/internal/pkg/password"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

const TestPassword = "password123"

func CreateTestUser(t *testing.T, db DBLike, email, role string) uuid.UUID {
	t.Helper()

	userID := uuid.New()
	ctx := context.Background()

	hash, err := password.HashPassword(TestPassword)
	require.NoError(t, err)

	tag, err := db.Exec(ctx,
		"INSERT INTO users (id, email, password_hash, role, full_name, is_active) VALUES ($1, $2, $3, $4, $5, true) ON CONFLICT (email) DO NOTHING",
		userID, email, hash, role, "Test "+role)
	require.NoError(t, err)

	if tag.RowsAffected() == 0 {
		err = db.QueryRow(ctx, "SELECT id FROM users WHERE email = $1", email).Scan(&userID)
		require.NoError(t, err)
	}

	return userID
}

func CreateTestVehicle(t *testing.T, db DBLike, name string, daily, weekly, monthly, semester float64) uuid.UUID {
	t.Helper()

	vehicleID := uuid.New()
	_, err := db.Exec(context.Background(),
		"INSERT INTO vehicles (id, name, make, model, year, daily_rate, weekly_rate, monthly_rate, semester_rate, available) VALUES ($1, $2, 'Toyota', 'Corolla', 2023, $3, $4, $5, $6, true)",
		vehicleID, name, daily, weekly, monthly, semester)
	require.NoError(t, err)

	return vehicleID
}

func CreateTestDeliveryLocation(t *testing.T, db DBLike, name string, fee float64) uuid.UUID {
	t.Helper()

	locationID := uuid.New()
	_, err := db.Exec(context.Background(),
		"INSERT INTO delivery_locations (id, name, fee, active) VALUES ($1, $2, $3, true)",
		locationID, name, fee)
	require.NoError(t, err)

	return locationID
}

func AddBlockedDate(t *testing.T, db DBLike, date time.Time, kind, reason string) {
	t.Helper()

	_, err := db.Exec(context.Background(),
		"INSERT INTO business_calendar (blocked_date, kind, reason) VALUES ($1, $2, $3) ON CONFLICT (blocked_date, kind) DO NOTHING",
		date, kind, reason)
	require.NoError(t, err)
}
