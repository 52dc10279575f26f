package interfaces

import (
	"context"

	"locamaq/internal/domain/entities"
)

// IMachineRepository abstracts DynamoDB persistence for Machine.
//
// Save has upsert semantics. Lookups return (nil, nil) when the row is
// absent; the use-case layer translates that into its NotFound sentinel.

type IMachineRepository interface {
	Save(ctx context.Context, m *entities.Machine) error
	GetByID(ctx context.Context, id string) (*entities.Machine, error)
	GetByCode(ctx context.Context, code string) (*entities.Machine, error)
	List(ctx context.Context) ([]entities.Machine, error)
	UpdateStatus(ctx context.Context, id string, status entities.MachineStatus) error
	Delete(ctx context.Context, id string) error
}
