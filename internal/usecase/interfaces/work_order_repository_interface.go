package interfaces

import (
	"context"

	"locamaq/internal/domain/entities"
)

// IWorkOrderRepository abstracts DynamoDB persistence for WorkOrder.

type IWorkOrderRepository interface {
	Save(ctx context.Context, w *entities.WorkOrder) error
	GetByID(ctx context.Context, id string) (*entities.WorkOrder, error)
	ListByMachineID(ctx context.Context, machineID string) ([]entities.WorkOrder, error)
	List(ctx context.Context) ([]entities.WorkOrder, error)
	Delete(ctx context.Context, id string) error
}
