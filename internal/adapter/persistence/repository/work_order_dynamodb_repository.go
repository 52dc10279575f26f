package repository

import (
	"context"

	"locamaq/internal/domain/entities"
	"locamaq/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	defaultWorkOrdersTableName = "workorders"
	workOrdersMachineIDIndex   = "machine_id-index"
)

type workOrderItem struct {
	ID             string  `dynamodbav:"id"`
	MachineID      string  `dynamodbav:"machine_id"`
	Type           string  `dynamodbav:"type"`
	Status         string  `dynamodbav:"status"`
	Description    string  `dynamodbav:"description,omitempty"`
	EntryDate      string  `dynamodbav:"entry_date"`
	ExitDate       string  `dynamodbav:"exit_date,omitempty"`
	SparePartsCost float64 `dynamodbav:"spare_parts_cost"`
	LaborCost      float64 `dynamodbav:"labor_cost"`
	TotalCost      float64 `dynamodbav:"total_cost"`
	DowntimeHours  float64 `dynamodbav:"downtime_hours"`
	CreatedAt      string  `dynamodbav:"created_at"`
	UpdatedAt      string  `dynamodbav:"updated_at"`
}

// WorkOrderDynamoRepository persists WorkOrder entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: machine_id-index (PK: machine_id)

type WorkOrderDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IWorkOrderRepository = (*WorkOrderDynamoRepository)(nil)

func NewWorkOrderDynamoRepository(ddb *dynamodb.Client) *WorkOrderDynamoRepository {
	return &WorkOrderDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("WORKORDERS_TABLE", defaultWorkOrdersTableName),
	}
}

func (r *WorkOrderDynamoRepository) Save(ctx context.Context, w *entities.WorkOrder) error {
	av, err := attributevalue.MarshalMap(toWorkOrderItem(w))
	if err != nil {
		return err
	}
	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(r.tableName),
		Item:      av,
	})
	return err
}

func (r *WorkOrderDynamoRepository) GetByID(ctx context.Context, id string) (*entities.WorkOrder, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return nil, err
	}
	if len(out.Item) == 0 {
		return nil, nil
	}

	var it workOrderItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return nil, err
	}
	return fromWorkOrderItem(it), nil
}

func (r *WorkOrderDynamoRepository) ListByMachineID(ctx context.Context, machineID string) ([]entities.WorkOrder, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(workOrdersMachineIDIndex),
		KeyConditionExpression: aws.String("machine_id = :mid"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":mid": &types.AttributeValueMemberS{Value: machineID},
		},
	})
	if err != nil {
		return nil, err
	}

	items := make([]entities.WorkOrder, 0, len(out.Items))
	for _, raw := range out.Items {
		var it workOrderItem
		if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
			return nil, err
		}
		items = append(items, *fromWorkOrderItem(it))
	}
	return items, nil
}

func (r *WorkOrderDynamoRepository) List(ctx context.Context) ([]entities.WorkOrder, error) {
	items := make([]entities.WorkOrder, 0)
	var startKey map[string]types.AttributeValue
	for {
		out, err := r.ddb.Scan(ctx, &dynamodb.ScanInput{
			TableName:         aws.String(r.tableName),
			ExclusiveStartKey: startKey,
		})
		if err != nil {
			return nil, err
		}
		for _, raw := range out.Items {
			var it workOrderItem
			if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
				return nil, err
			}
			items = append(items, *fromWorkOrderItem(it))
		}
		if out.LastEvaluatedKey == nil {
			return items, nil
		}
		startKey = out.LastEvaluatedKey
	}
}

func (r *WorkOrderDynamoRepository) Delete(ctx context.Context, id string) error {
	_, err := r.ddb.DeleteItem(ctx, &dynamodb.DeleteItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
	})
	return err
}

func toWorkOrderItem(w *entities.WorkOrder) workOrderItem {
	it := workOrderItem{
		ID:             w.ID,
		MachineID:      w.MachineID,
		Type:           string(w.Type),
		Status:         string(w.Status),
		Description:    w.Description,
		EntryDate:      formatTime(w.EntryDate),
		SparePartsCost: w.SparePartsCost,
		LaborCost:      w.LaborCost,
		TotalCost:      w.TotalCost,
		DowntimeHours:  w.DowntimeHours,
		CreatedAt:      formatTime(w.CreatedAt),
		UpdatedAt:      formatTime(w.UpdatedAt),
	}
	if w.ExitDate != nil {
		it.ExitDate = formatTime(*w.ExitDate)
	}
	return it
}

func fromWorkOrderItem(it workOrderItem) *entities.WorkOrder {
	w := &entities.WorkOrder{
		ID:             it.ID,
		MachineID:      it.MachineID,
		Type:           entities.WorkOrderType(it.Type),
		Status:         entities.WorkOrderStatus(it.Status),
		Description:    it.Description,
		EntryDate:      parseTime(it.EntryDate),
		SparePartsCost: it.SparePartsCost,
		LaborCost:      it.LaborCost,
		TotalCost:      it.TotalCost,
		DowntimeHours:  it.DowntimeHours,
		CreatedAt:      parseTime(it.CreatedAt),
		UpdatedAt:      parseTime(it.UpdatedAt),
	}
	if it.ExitDate != "" {
		exit := parseTime(it.ExitDate)
		w.ExitDate = &exit
	}
	return w
}
