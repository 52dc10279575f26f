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
	defaultContractsTableName = "contracts"
	contractsCodeIndex        = "code-index"
)

type assignmentItem struct {
	ID              string  `dynamodbav:"id"`
	ContractID      string  `dynamodbav:"contract_id"`
	MachineID       string  `dynamodbav:"machine_id"`
	HourlyRate      float64 `dynamodbav:"hourly_rate"`
	WorkedHours     float64 `dynamodbav:"worked_hours"`
	MaintenanceCost float64 `dynamodbav:"maintenance_cost"`
	GeneratedIncome float64 `dynamodbav:"generated_income"`
	Margin          float64 `dynamodbav:"margin"`
	CreatedAt       string  `dynamodbav:"created_at"`
	UpdatedAt       string  `dynamodbav:"updated_at"`
}

type contractItem struct {
	ID           string           `dynamodbav:"id"`
	Code         string           `dynamodbav:"code"`
	CustomerName string           `dynamodbav:"customer_name"`
	StartDate    string           `dynamodbav:"start_date"`
	EndDate      string           `dynamodbav:"end_date"`
	TotalValue   float64          `dynamodbav:"total_value"`
	MonthlyValue float64          `dynamodbav:"monthly_value"`
	TermMonths   int              `dynamodbav:"term_months"`
	Status       string           `dynamodbav:"status"`
	Description  string           `dynamodbav:"description,omitempty"`
	Assignments  []assignmentItem `dynamodbav:"assignments"`
	CreatedAt    string           `dynamodbav:"created_at"`
	UpdatedAt    string           `dynamodbav:"updated_at"`
}

// ContractDynamoRepository persists Contract aggregates in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: code-index (PK: code)
//
// The assignment collection is embedded in the contract item so the whole
// aggregate is read and written atomically.

type ContractDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IContractRepository = (*ContractDynamoRepository)(nil)

func NewContractDynamoRepository(ddb *dynamodb.Client) *ContractDynamoRepository {
	return &ContractDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("CONTRACTS_TABLE", defaultContractsTableName),
	}
}

func (r *ContractDynamoRepository) Save(ctx context.Context, c *entities.Contract) error {
	av, err := attributevalue.MarshalMap(toContractItem(c))
	if err != nil {
		return err
	}
	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(r.tableName),
		Item:      av,
	})
	return err
}

func (r *ContractDynamoRepository) GetByID(ctx context.Context, id string) (*entities.Contract, error) {
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

	var it contractItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return nil, err
	}
	return fromContractItem(it), nil
}

func (r *ContractDynamoRepository) GetByCode(ctx context.Context, code string) (*entities.Contract, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(contractsCodeIndex),
		KeyConditionExpression: aws.String("code = :code"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":code": &types.AttributeValueMemberS{Value: code},
		},
		Limit: aws.Int32(1),
	})
	if err != nil {
		return nil, err
	}
	if len(out.Items) == 0 {
		return nil, nil
	}

	var it contractItem
	if err := attributevalue.UnmarshalMap(out.Items[0], &it); err != nil {
		return nil, err
	}
	return fromContractItem(it), nil
}

func (r *ContractDynamoRepository) List(ctx context.Context) ([]entities.Contract, error) {
	items := make([]entities.Contract, 0)
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
			var it contractItem
			if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
				return nil, err
			}
			items = append(items, *fromContractItem(it))
		}
		if out.LastEvaluatedKey == nil {
			return items, nil
		}
		startKey = out.LastEvaluatedKey
	}
}

func toContractItem(c *entities.Contract) contractItem {
	assignments := make([]assignmentItem, 0, len(c.Assignments))
	for i := range c.Assignments {
		a := &c.Assignments[i]
		assignments = append(assignments, assignmentItem{
			ID:              a.ID,
			ContractID:      a.ContractID,
			MachineID:       a.MachineID,
			HourlyRate:      a.HourlyRate,
			WorkedHours:     a.WorkedHours,
			MaintenanceCost: a.MaintenanceCost,
			GeneratedIncome: a.GeneratedIncome,
			Margin:          a.Margin,
			CreatedAt:       formatTime(a.CreatedAt),
			UpdatedAt:       formatTime(a.UpdatedAt),
		})
	}
	return contractItem{
		ID:           c.ID,
		Code:         c.Code,
		CustomerName: c.CustomerName,
		StartDate:    formatTime(c.StartDate),
		EndDate:      formatTime(c.EndDate),
		TotalValue:   c.TotalValue,
		MonthlyValue: c.MonthlyValue,
		TermMonths:   c.TermMonths,
		Status:       string(c.Status),
		Description:  c.Description,
		Assignments:  assignments,
		CreatedAt:    formatTime(c.CreatedAt),
		UpdatedAt:    formatTime(c.UpdatedAt),
	}
}

func fromContractItem(it contractItem) *entities.Contract {
	assignments := make([]entities.MachineAssignment, 0, len(it.Assignments))
	for _, a := range it.Assignments {
		assignments = append(assignments, entities.MachineAssignment{
			ID:              a.ID,
			ContractID:      a.ContractID,
			MachineID:       a.MachineID,
			HourlyRate:      a.HourlyRate,
			WorkedHours:     a.WorkedHours,
			MaintenanceCost: a.MaintenanceCost,
			GeneratedIncome: a.GeneratedIncome,
			Margin:          a.Margin,
			CreatedAt:       parseTime(a.CreatedAt),
			UpdatedAt:       parseTime(a.UpdatedAt),
		})
	}
	return &entities.Contract{
		ID:           it.ID,
		Code:         it.Code,
		CustomerName: it.CustomerName,
		StartDate:    parseTime(it.StartDate),
		EndDate:      parseTime(it.EndDate),
		TotalValue:   it.TotalValue,
		MonthlyValue: it.MonthlyValue,
		TermMonths:   it.TermMonths,
		Status:       entities.ContractStatus(it.Status),
		Description:  it.Description,
		Assignments:  assignments,
		CreatedAt:    parseTime(it.CreatedAt),
		UpdatedAt:    parseTime(it.UpdatedAt),
	}
}
