package interfaces

import (
	"context"

	"locamaq/internal/domain/entities"
)

// IContractRepository abstracts DynamoDB persistence for Contract.
//
// The contract is the aggregate root for its machine assignments: Save
// persists the assignment collection embedded in the contract item and
// lookups return it fully loaded.

type IContractRepository interface {
	Save(ctx context.Context, c *entities.Contract) error
	GetByID(ctx context.Context, id string) (*entities.Contract, error)
	GetByCode(ctx context.Context, code string) (*entities.Contract, error)
	List(ctx context.Context) ([]entities.Contract, error)
}
