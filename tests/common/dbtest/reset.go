//go:build unit || e2e

package dbtest

import (
	"context"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5/pgxpool"
)

// ResetDB wipes mutable tables between sub-tests. Order does not matter with
// CASCADE, but bookings goes first to keep the statement cheap.
func ResetDB(pool *pgxpool.Pool) error {
	tables := []string{
		"bookings",
		"business_calendar",
		"delivery_locations",
		"vehicles",
		"users",
	}

	_, err := pool.Exec(context.Background(),
		fmt.Sprintf("TRUNCATE TABLE %s CASCADE", strings.Join(tables, ", ")))
	if err != nil {
		return fmt.Errorf("failed to reset database: %w", err)
	}
	return nil
}
