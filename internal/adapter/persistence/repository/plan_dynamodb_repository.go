package repository

import (
	"context"

	"nimbushost/internal/domain/entities"
	"nimbushost/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const defaultPlansTableName = "plans"

type planItem struct {
	ID           string   `dynamodbav:"id"`
	Name         string   `dynamodbav:"name"`
	Price        string   `dynamodbav:"price"`
	Features     []string `dynamodbav:"features,omitempty"`
	StorageQuota int      `dynamodbav:"storage_quota_mb"`
}

// PlanDynamoRepository reads the plan catalog from DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//
// The workflow never writes plans; catalog administration happens outside
// this service, which is why there is no Create/Update here.

type PlanDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IPlanRepository = (*PlanDynamoRepository)(nil)

func NewPlanDynamoRepository(ddb *dynamodb.Client) *PlanDynamoRepository {
	return &PlanDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("PLANS_TABLE", defaultPlansTableName),
	}
}

func (r *PlanDynamoRepository) GetByID(ctx context.Context, id string) (entities.Plan, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
	})
	if err != nil {
		return entities.Plan{}, err
	}
	if len(out.Item) == 0 {
		return entities.Plan{}, nil
	}

	var it planItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Plan{}, err
	}
	return fromPlanItem(it), nil
}

func (r *PlanDynamoRepository) List(ctx context.Context) ([]entities.Plan, error) {
	out, err := r.ddb.Scan(ctx, &dynamodb.ScanInput{
		TableName: aws.String(r.tableName),
	})
	if err != nil {
		return nil, err
	}

	items := make([]entities.Plan, 0, len(out.Items))
	for _, raw := range out.Items {
		var it planItem
		if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
			return nil, err
		}
		items = append(items, fromPlanItem(it))
	}
	return items, nil
}

func fromPlanItem(it planItem) entities.Plan {
	return entities.Plan{
		ID:           it.ID,
		Name:         it.Name,
		Price:        stringToFloat(it.Price),
		Features:     it.Features,
		StorageQuota: it.StorageQuota,
	}
}
