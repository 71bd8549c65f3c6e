package repository

import (
	"context"

	"rentora/internal/domain/user"
	"rentora/internal/infra"
	"rentora/internal/pkg/pgconv"
	"rentora/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"
)

type UserRepository struct {
	db *pgxpool.Pool
}

func NewUserRepository(db *pgxpool.Pool) *UserRepository {
	return &UserRepository{db: db}
}

const selectUserByEmailSQL = `
SELECT id, email, role, full_name, license_number, is_active, password_hash
FROM users
WHERE email = $1`

func (r *UserRepository) FindByEmail(ctx context.Context, email user.Email) (*queries.AuthorizedUserView, string, error) {
	var (
		view          queries.AuthorizedUserView
		licenseNumber pgtype.Text
		passwordHash  string
	)

	err := r.db.QueryRow(ctx, selectUserByEmailSQL, email.Value()).Scan(
		&view.ID, &view.Email, &view.Role, &view.FullName, &licenseNumber, &view.IsActive, &passwordHash,
	)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, "", infra.WrapRepoErr("user not found", err, infra.KindNotFound)
		}
		return nil, "", infra.WrapRepoErr("failed to find user by email", err)
	}

	view.LicenseNumber = pgconv.StringPtrFromPgtype(licenseNumber)
	return &view, passwordHash, nil
}

const selectUserByIDSQL = `
SELECT id, email, role, full_name, license_number, is_active
FROM users
WHERE id = $1`

func (r *UserRepository) FindByID(ctx context.Context, id uuid.UUID) (*queries.AuthorizedUserView, error) {
	var (
		view          queries.AuthorizedUserView
		licenseNumber pgtype.Text
	)

	err := r.db.QueryRow(ctx, selectUserByIDSQL, id).Scan(
		&view.ID, &view.Email, &view.Role, &view.FullName, &licenseNumber, &view.IsActive,
	)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("user not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find user by ID", err)
	}

	view.LicenseNumber = pgconv.StringPtrFromPgtype(licenseNumber)
	return &view, nil
}

const updateLastLoginSQL = `
UPDATE users
SET last_login_at = now(), updated_at = now()
WHERE id = $1`

func (r *UserRepository) UpdateLastLogin(ctx context.Context, userID uuid.UUID) error {
	tag, err := r.db.Exec(ctx, updateLastLoginSQL, userID)
	if err != nil {
		return infra.WrapRepoErr("failed to update last login", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("user not found", nil, infra.KindNotFound)
	}
	return nil
}
