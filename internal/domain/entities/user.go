package entities

import (
	"fmt"
	"strings"
	"time"
)

// UserRole is the access profile of an account.

type UserRole string

const (
	UserRoleAdmin    UserRole = "ADMIN"
	UserRoleManager  UserRole = "MANAGER"
	UserRoleMechanic UserRole = "MECHANIC"
	UserRoleOperator UserRole = "OPERATOR"
)

// User is an application account. Credential/session handling lives outside
// this service; only identity, role and activation state are tracked here.

type User struct {
	ID        string
	Name      string
	Email     string
	Role      UserRole
	Active    bool
	CreatedAt time.Time
	UpdatedAt time.Time
}

func NewUser(id, name, email string, role UserRole, now time.Time) (*User, error) {
	name = strings.TrimSpace(name)
	email = strings.ToLower(strings.TrimSpace(email))
	if name == "" {
		return nil, fmt.Errorf("%w: user name is required", ErrValidation)
	}
	if email == "" || !strings.Contains(email, "@") {
		return nil, fmt.Errorf("%w: valid user email is required", ErrValidation)
	}
	switch role {
	case UserRoleAdmin, UserRoleManager, UserRoleMechanic, UserRoleOperator:
	default:
		return nil, fmt.Errorf("%w: unknown user role %q", ErrValidation, role)
	}
	now = now.UTC()
	return &User{
		ID:        id,
		Name:      name,
		Email:     email,
		Role:      role,
		Active:    true,
		CreatedAt: now,
		UpdatedAt: now,
	}, nil
}

// UpdateDetails changes name and role. Email is immutable, it is the unique
// business key of the account.
func (u *User) UpdateDetails(name string, role UserRole, now time.Time) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return fmt.Errorf("%w: user name is required", ErrValidation)
	}
	switch role {
	case UserRoleAdmin, UserRoleManager, UserRoleMechanic, UserRoleOperator:
	default:
		return fmt.Errorf("%w: unknown user role %q", ErrValidation, role)
	}
	u.Name = name
	u.Role = role
	u.UpdatedAt = now.UTC()
	return nil
}

func (u *User) Deactivate(now time.Time) error {
	if !u.Active {
		return fmt.Errorf("%w: user is already inactive", ErrInvalidTransition)
	}
	u.Active = false
	u.UpdatedAt = now.UTC()
	return nil
}

func (u *User) Reactivate(now time.Time) error {
	if u.Active {
		return fmt.Errorf("%w: user is already active", ErrInvalidTransition)
	}
	u.Active = true
	u.UpdatedAt = now.UTC()
	return nil
}
