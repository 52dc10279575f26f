package interfaces

import (
	"context"

	"locamaq/internal/domain/entities"
)

// IUserRepository abstracts DynamoDB persistence for User accounts.

type IUserRepository interface {
	Save(ctx context.Context, u *entities.User) error
	GetByID(ctx context.Context, id string) (*entities.User, error)
	GetByEmail(ctx context.Context, email string) (*entities.User, error)
	List(ctx context.Context) ([]entities.User, error)
	Delete(ctx context.Context, id string) error
}
