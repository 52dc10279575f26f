package repository

import (
	"context"
	"time"

	"locamaq/internal/domain/entities"
	"locamaq/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	defaultMachinesTableName = "machines"
	machinesCodeIndex        = "code-index"
)

type machineItem struct {
	ID               string  `dynamodbav:"id"`
	Code             string  `dynamodbav:"code"`
	Type             string  `dynamodbav:"type,omitempty"`
	Brand            string  `dynamodbav:"brand,omitempty"`
	Model            string  `dynamodbav:"model,omitempty"`
	Year             int     `dynamodbav:"year,omitempty"`
	SerialNumber     string  `dynamodbav:"serial_number,omitempty"`
	HourMeter        float64 `dynamodbav:"hour_meter"`
	AcquisitionDate  string  `dynamodbav:"acquisition_date,omitempty"`
	AcquisitionValue float64 `dynamodbav:"acquisition_value"`
	UsefulLifeHours  float64 `dynamodbav:"useful_life_hours"`
	Status           string  `dynamodbav:"status"`
	Location         string  `dynamodbav:"location,omitempty"`
	CreatedAt        string  `dynamodbav:"created_at"`
	UpdatedAt        string  `dynamodbav:"updated_at"`
}

// MachineDynamoRepository persists Machine entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: code-index (PK: code)

type MachineDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IMachineRepository = (*MachineDynamoRepository)(nil)

func NewMachineDynamoRepository(ddb *dynamodb.Client) *MachineDynamoRepository {
	return &MachineDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("MACHINES_TABLE", defaultMachinesTableName),
	}
}

func (r *MachineDynamoRepository) Save(ctx context.Context, m *entities.Machine) error {
	av, err := attributevalue.MarshalMap(toMachineItem(m))
	if err != nil {
		return err
	}
	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(r.tableName),
		Item:      av,
	})
	return err
}

func (r *MachineDynamoRepository) GetByID(ctx context.Context, id string) (*entities.Machine, error) {
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

	var it machineItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return nil, err
	}
	return fromMachineItem(it), nil
}

func (r *MachineDynamoRepository) GetByCode(ctx context.Context, code string) (*entities.Machine, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(machinesCodeIndex),
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

	var it machineItem
	if err := attributevalue.UnmarshalMap(out.Items[0], &it); err != nil {
		return nil, err
	}
	return fromMachineItem(it), nil
}

func (r *MachineDynamoRepository) List(ctx context.Context) ([]entities.Machine, error) {
	items := make([]entities.Machine, 0)
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
			var it machineItem
			if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
				return nil, err
			}
			items = append(items, *fromMachineItem(it))
		}
		if out.LastEvaluatedKey == nil {
			return items, nil
		}
		startKey = out.LastEvaluatedKey
	}
}

func (r *MachineDynamoRepository) UpdateStatus(ctx context.Context, id string, status entities.MachineStatus) error {
	now := time.Now().UTC().Format(time.RFC3339Nano)
	_, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConditionExpression: aws.String("attribute_exists(#id)"),
		UpdateExpression:    aws.String("SET #status = :status, #updated_at = :updated_at"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":status":     &types.AttributeValueMemberS{Value: string(status)},
			":updated_at": &types.AttributeValueMemberS{Value: now},
		},
		ExpressionAttributeNames: map[string]string{
			"#id":         "id",
			"#status":     "status",
			"#updated_at": "updated_at",
		},
	})
	return err
}

func (r *MachineDynamoRepository) Delete(ctx context.Context, id string) error {
	_, err := r.ddb.DeleteItem(ctx, &dynamodb.DeleteItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
	})
	return err
}

func toMachineItem(m *entities.Machine) machineItem {
	return machineItem{
		ID:               m.ID,
		Code:             m.Code,
		Type:             m.Type,
		Brand:            m.Brand,
		Model:            m.Model,
		Year:             m.Year,
		SerialNumber:     m.SerialNumber,
		HourMeter:        m.HourMeter,
		AcquisitionDate:  formatTime(m.AcquisitionDate),
		AcquisitionValue: m.AcquisitionValue,
		UsefulLifeHours:  m.UsefulLifeHours,
		Status:           string(m.Status),
		Location:         m.Location,
		CreatedAt:        formatTime(m.CreatedAt),
		UpdatedAt:        formatTime(m.UpdatedAt),
	}
}

func fromMachineItem(it machineItem) *entities.Machine {
	return &entities.Machine{
		ID:               it.ID,
		Code:             it.Code,
		Type:             it.Type,
		Brand:            it.Brand,
		Model:            it.Model,
		Year:             it.Year,
		SerialNumber:     it.SerialNumber,
		HourMeter:        it.HourMeter,
		AcquisitionDate:  parseTime(it.AcquisitionDate),
		AcquisitionValue: it.AcquisitionValue,
		UsefulLifeHours:  it.UsefulLifeHours,
		Status:           entities.MachineStatus(it.Status),
		Location:         it.Location,
		CreatedAt:        parseTime(it.CreatedAt),
		UpdatedAt:        parseTime(it.UpdatedAt),
	}
}
