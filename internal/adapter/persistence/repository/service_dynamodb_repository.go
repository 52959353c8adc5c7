package repository

import (
	"context"
	"errors"
	"time"

	"nimbushost/internal/domain/entities"
	"nimbushost/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	defaultServicesTableName = "services"
	servicesOwnerIndex       = "owner_user_id-index"
)

type serviceItem struct {
	ID            string `dynamodbav:"id"`
	OwnerUserID   string `dynamodbav:"owner_user_id"`
	PlanID        string `dynamodbav:"plan_id"`
	PlanName      string `dynamodbav:"plan_name"`
	Price         string `dynamodbav:"price"`
	PaymentMethod string `dynamodbav:"payment_method"`
	Status        string `dynamodbav:"status"`
	Subdomain     string `dynamodbav:"subdomain,omitempty"`
	PanelUsername string `dynamodbav:"panel_username,omitempty"`
	OrderDate     string `dynamodbav:"order_date"`
	UpdatedAt     string `dynamodbav:"updated_at"`
}

// ServiceDynamoRepository persists Service entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: owner_user_id-index (PK: owner_user_id)
//
// Status transitions are partial updates conditioned on the record existing;
// a vanished record surfaces as a zero-value entity, never as a write of a
// fresh item.

type ServiceDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IServiceRepository = (*ServiceDynamoRepository)(nil)

func NewServiceDynamoRepository(ddb *dynamodb.Client) *ServiceDynamoRepository {
	return &ServiceDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("SERVICES_TABLE", defaultServicesTableName),
	}
}

func (r *ServiceDynamoRepository) Create(ctx context.Context, s entities.Service) (entities.Service, error) {
	it := toServiceItem(s)
	av, err := attributevalue.MarshalMap(it)
	if err != nil {
		return entities.Service{}, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.tableName),
		Item:                av,
		ConditionExpression: aws.String("attribute_not_exists(#id)"),
		ExpressionAttributeNames: map[string]string{
			"#id": "id",
		},
	})
	if err != nil {
		return entities.Service{}, err
	}
	return s, nil
}

func (r *ServiceDynamoRepository) GetByID(ctx context.Context, id string) (entities.Service, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Service{}, err
	}
	if len(out.Item) == 0 {
		return entities.Service{}, nil
	}

	var it serviceItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Service{}, err
	}
	return fromServiceItem(it), nil
}

func (r *ServiceDynamoRepository) ListByOwnerID(ctx context.Context, ownerUserID string) ([]entities.Service, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(servicesOwnerIndex),
		KeyConditionExpression: aws.String("owner_user_id = :owner"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":owner": &types.AttributeValueMemberS{Value: ownerUserID},
		},
	})
	if err != nil {
		return nil, err
	}

	items := make([]entities.Service, 0, len(out.Items))
	for _, raw := range out.Items {
		var it serviceItem
		if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
			return nil, err
		}
		items = append(items, fromServiceItem(it))
	}
	return items, nil
}

func (r *ServiceDynamoRepository) UpdateStatus(ctx context.Context, id string, status entities.ServiceStatus) (entities.Service, error) {
	return r.update(ctx, id, func(now string) (string, map[string]types.AttributeValue, map[string]string) {
		expr := "SET #status = :status, #updated_at = :updated_at"
		vals := map[string]types.AttributeValue{
			":status":     &types.AttributeValueMemberS{Value: string(status)},
			":updated_at": &types.AttributeValueMemberS{Value: now},
		}
		names := map[string]string{
			"#status":     "status",
			"#updated_at": "updated_at",
		}
		return expr, vals, names
	})
}

func (r *ServiceDynamoRepository) UpdateProvisioned(ctx context.Context, id, subdomain, panelUsername string) (entities.Service, error) {
	return r.update(ctx, id, func(now string) (string, map[string]types.AttributeValue, map[string]string) {
		expr := "SET #subdomain = :subdomain, #panel_username = :panel_username, #status = :status, #updated_at = :updated_at"
		vals := map[string]types.AttributeValue{
			":subdomain":      &types.AttributeValueMemberS{Value: subdomain},
			":panel_username": &types.AttributeValueMemberS{Value: panelUsername},
			":status":         &types.AttributeValueMemberS{Value: string(entities.ServiceStatusActive)},
			":updated_at":     &types.AttributeValueMemberS{Value: now},
		}
		names := map[string]string{
			"#subdomain":      "subdomain",
			"#panel_username": "panel_username",
			"#status":         "status",
			"#updated_at":     "updated_at",
		}
		return expr, vals, names
	})
}

func (r *ServiceDynamoRepository) update(
	ctx context.Context,
	id string,
	build func(now string) (updateExpr string, values map[string]types.AttributeValue, names map[string]string),
) (entities.Service, error) {
	now := time.Now().UTC().Format(time.RFC3339Nano)
	updateExpr, values, names := build(now)

	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConditionExpression:       aws.String("attribute_exists(#id)"),
		UpdateExpression:          aws.String(updateExpr),
		ExpressionAttributeValues: values,
		ExpressionAttributeNames:  mergeNames(names, map[string]string{"#id": "id"}),
		ReturnValues:              types.ReturnValueAllNew,
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return entities.Service{}, nil
		}
		return entities.Service{}, err
	}
	if len(out.Attributes) == 0 {
		return entities.Service{}, nil
	}
	var it serviceItem
	if err := attributevalue.UnmarshalMap(out.Attributes, &it); err != nil {
		return entities.Service{}, err
	}
	return fromServiceItem(it), nil
}

func toServiceItem(s entities.Service) serviceItem {
	return serviceItem{
		ID:            s.ID,
		OwnerUserID:   s.OwnerUserID,
		PlanID:        s.PlanID,
		PlanName:      s.PlanName,
		Price:         floatToString(s.Price),
		PaymentMethod: string(s.PaymentMethod),
		Status:        string(s.Status),
		Subdomain:     s.Subdomain,
		PanelUsername: s.PanelUsername,
		OrderDate:     s.OrderDate.UTC().Format(time.RFC3339Nano),
		UpdatedAt:     s.UpdatedAt.UTC().Format(time.RFC3339Nano),
	}
}

func fromServiceItem(it serviceItem) entities.Service {
	orderDate, _ := time.Parse(time.RFC3339Nano, it.OrderDate)
	updatedAt, _ := time.Parse(time.RFC3339Nano, it.UpdatedAt)
	price := stringToFloat(it.Price)
	return entities.Service{
		ID:            it.ID,
		OwnerUserID:   it.OwnerUserID,
		PlanID:        it.PlanID,
		PlanName:      it.PlanName,
		Price:         price,
		PaymentMethod: entities.PaymentMethod(it.PaymentMethod),
		Status:        entities.ServiceStatus(it.Status),
		Subdomain:     it.Subdomain,
		PanelUsername: it.PanelUsername,
		OrderDate:     orderDate,
		UpdatedAt:     updatedAt,
	}
}
