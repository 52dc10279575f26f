package usecase

import (
	"context"
	"errors"
	"strings"
	"time"

	"locamaq/internal/domain/entities"
	"locamaq/internal/usecase/interfaces"

	"github.com/google/uuid"
)

var (
	ErrUserNotFound    = errors.New("user not found")
	ErrInvalidUserID   = errors.New("invalid user id")
	ErrUserEmailExists = errors.New("user email already exists")
)

// IUserUseCase exposes account administration. Credentials and sessions are
// handled elsewhere; this service only manages identity and role.

type IUserUseCase interface {
	Create(ctx context.Context, name, email string, role entities.UserRole) (*entities.User, error)
	GetByID(ctx context.Context, id string) (*entities.User, error)
	List(ctx context.Context) ([]entities.User, error)
	UpdateDetails(ctx context.Context, id, name string, role entities.UserRole) (*entities.User, error)
	Deactivate(ctx context.Context, id string) (*entities.User, error)
	Reactivate(ctx context.Context, id string) (*entities.User, error)
	Delete(ctx context.Context, id string) error
}

type UserUseCase struct {
	repo interfaces.IUserRepository
}

var _ IUserUseCase = (*UserUseCase)(nil)

func NewUserUseCase(repo interfaces.IUserRepository) *UserUseCase {
	return &UserUseCase{repo: repo}
}

func (u *UserUseCase) Create(ctx context.Context, name, email string, role entities.UserRole) (*entities.User, error) {
	user, err := entities.NewUser(uuid.NewString(), name, email, role, time.Now())
	if err != nil {
		return nil, err
	}

	// Enforce: unique email.
	if existing, err := u.repo.GetByEmail(ctx, user.Email); err != nil {
		return nil, err
	} else if existing != nil {
		return nil, ErrUserEmailExists
	}

	if err := u.repo.Save(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

func (u *UserUseCase) GetByID(ctx context.Context, id string) (*entities.User, error) {
	return u.load(ctx, id)
}

func (u *UserUseCase) List(ctx context.Context) ([]entities.User, error) {
	return u.repo.List(ctx)
}

func (u *UserUseCase) UpdateDetails(ctx context.Context, id, name string, role entities.UserRole) (*entities.User, error) {
	return u.mutate(ctx, id, func(user *entities.User, now time.Time) error {
		return user.UpdateDetails(name, role, now)
	})
}

func (u *UserUseCase) Deactivate(ctx context.Context, id string) (*entities.User, error) {
	return u.mutate(ctx, id, func(user *entities.User, now time.Time) error {
		return user.Deactivate(now)
	})
}

func (u *UserUseCase) Reactivate(ctx context.Context, id string) (*entities.User, error) {
	return u.mutate(ctx, id, func(user *entities.User, now time.Time) error {
		return user.Reactivate(now)
	})
}

func (u *UserUseCase) Delete(ctx context.Context, id string) error {
	user, err := u.load(ctx, id)
	if err != nil {
		return err
	}
	return u.repo.Delete(ctx, user.ID)
}

func (u *UserUseCase) load(ctx context.Context, id string) (*entities.User, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return nil, ErrInvalidUserID
	}
	user, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}
	return user, nil
}

func (u *UserUseCase) mutate(ctx context.Context, id string, fn func(user *entities.User, now time.Time) error) (*entities.User, error) {
	user, err := u.load(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := fn(user, time.Now().UTC()); err != nil {
		return nil, err
	}
	if err := u.repo.Save(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}
