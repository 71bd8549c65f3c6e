//go:build unit || e2e

package builder

import (
	"rentora/internal/usecase/queries"

	"github.com/google/uuid"
)

type UserBuilder struct {
	ID            uuid.UUID
	Email         string
	Role          string
	FullName      string
	LicenseNumber *string
	IsActive      bool
}

func NewUserBuilder() *UserBuilder {
	license := "D123-4567-8901"
	return &UserBuilder{
		ID:            uuid.New(),
		Email:         "test@example.com",
		Role:          "customer",
		FullName:      "Test Customer",
		LicenseNumber: &license,
		IsActive:      true,
	}
}

func (u *UserBuilder) With(mutate func(*UserBuilder)) *UserBuilder {
	mutate(u)
	return u
}

func (u *UserBuilder) BuildView() *queries.AuthorizedUserView {
	return &queries.AuthorizedUserView{
		ID:            u.ID,
		Email:         u.Email,
		Role:          u.Role,
		FullName:      u.FullName,
		LicenseNumber: u.LicenseNumber,
		IsActive:      u.IsActive,
	}
}
