package readstore

import (
	"context"
	"time"

	"rentora/internal/domain/extension"
	"rentora/internal/infra"

	"github.com/jackc/pgx/v5/pgxpool"
)

type CalendarReadStore struct {
	db *pgxpool.Pool
}

func NewCalendarReadStore(db *pgxpool.Pool) *CalendarReadStore {
	return &CalendarReadStore{db: db}
}

const selectBlockedDatesSQL = `
SELECT blocked_date, kind, reason
FROM business_calendar
WHERE blocked_date BETWEEN $1 AND $2
ORDER BY blocked_date`

func (s *CalendarReadStore) BlockedDates(ctx context.Context, from, to time.Time) ([]extension.BlockedDate, error) {
	rows, err := s.db.Query(ctx, selectBlockedDatesSQL, from, to)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to query business calendar", err)
	}
	defer rows.Close()

	var blocked []extension.BlockedDate
	for rows.Next() {
		var (
			bd   extension.BlockedDate
			kind string
		)
		if err := rows.Scan(&bd.Date, &kind, &bd.Reason); err != nil {
			return nil, infra.WrapRepoErr("failed to scan calendar row", err)
		}
		bd.Kind = extension.BlockedKind(kind)
		blocked = append(blocked, bd)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate calendar rows", err)
	}
	return blocked, nil
}
