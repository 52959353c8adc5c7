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
	defaultSubdomainsTableName = "subdomains"
	subdomainsOwnerIndex       = "owner_user_id-index"
	subdomainsServiceIDIndex   = "service_id-index"
)

type subdomainItem struct {
	FQDN        string `dynamodbav:"fqdn"`
	ID          string `dynamodbav:"id"`
	Label       string `dynamodbav:"label"`
	OwnerUserID string `dynamodbav:"owner_user_id"`
	ServiceID   string `dynamodbav:"service_id,omitempty"`
	CreatedAt   string `dynamodbav:"created_at"`
}

// SubdomainDynamoRepository persists Subdomain entities in DynamoDB.
//
// Table requirements:
//   - PK: fqdn (string)
//   - GSI: owner_user_id-index (PK: owner_user_id)
//   - GSI: service_id-index (PK: service_id)
//
// Keying on the fully-qualified name makes global uniqueness a storage
// property: Create is conditioned on the key not existing, so of two
// racing writers exactly one commits and the other gets ErrSubdomainExists.

type SubdomainDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.ISubdomainRepository = (*SubdomainDynamoRepository)(nil)

func NewSubdomainDynamoRepository(ddb *dynamodb.Client) *SubdomainDynamoRepository {
	return &SubdomainDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("SUBDOMAINS_TABLE", defaultSubdomainsTableName),
	}
}

func (r *SubdomainDynamoRepository) Create(ctx context.Context, sd entities.Subdomain) (entities.Subdomain, error) {
	it := toSubdomainItem(sd)
	av, err := attributevalue.MarshalMap(it)
	if err != nil {
		return entities.Subdomain{}, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.tableName),
		Item:                av,
		ConditionExpression: aws.String("attribute_not_exists(#fqdn)"),
		ExpressionAttributeNames: map[string]string{
			"#fqdn": "fqdn",
		},
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return entities.Subdomain{}, interfaces.ErrSubdomainExists
		}
		return entities.Subdomain{}, err
	}
	return sd, nil
}

func (r *SubdomainDynamoRepository) GetByFQDN(ctx context.Context, fqdn string) (entities.Subdomain, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"fqdn": &types.AttributeValueMemberS{Value: fqdn},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Subdomain{}, err
	}
	if len(out.Item) == 0 {
		return entities.Subdomain{}, nil
	}

	var it subdomainItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Subdomain{}, err
	}
	return fromSubdomainItem(it), nil
}

func (r *SubdomainDynamoRepository) GetByServiceID(ctx context.Context, serviceID string) (entities.Subdomain, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(subdomainsServiceIDIndex),
		KeyConditionExpression: aws.String("service_id = :sid"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":sid": &types.AttributeValueMemberS{Value: serviceID},
		},
		Limit: aws.Int32(1),
	})
	if err != nil {
		return entities.Subdomain{}, err
	}
	if len(out.Items) == 0 {
		return entities.Subdomain{}, nil
	}

	var it subdomainItem
	if err := attributevalue.UnmarshalMap(out.Items[0], &it); err != nil {
		return entities.Subdomain{}, err
	}
	return fromSubdomainItem(it), nil
}

func (r *SubdomainDynamoRepository) ListByOwnerID(ctx context.Context, ownerUserID string) ([]entities.Subdomain, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(subdomainsOwnerIndex),
		KeyConditionExpression: aws.String("owner_user_id = :owner"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":owner": &types.AttributeValueMemberS{Value: ownerUserID},
		},
	})
	if err != nil {
		return nil, err
	}

	items := make([]entities.Subdomain, 0, len(out.Items))
	for _, raw := range out.Items {
		var it subdomainItem
		if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
			return nil, err
		}
		items = append(items, fromSubdomainItem(it))
	}
	return items, nil
}

func toSubdomainItem(sd entities.Subdomain) subdomainItem {
	return subdomainItem{
		FQDN:        sd.FQDN,
		ID:          sd.ID,
		Label:       sd.Label,
		OwnerUserID: sd.OwnerUserID,
		ServiceID:   sd.ServiceID,
		CreatedAt:   sd.CreatedAt.UTC().Format(time.RFC3339Nano),
	}
}

func fromSubdomainItem(it subdomainItem) entities.Subdomain {
	createdAt, _ := time.Parse(time.RFC3339Nano, it.CreatedAt)
	return entities.Subdomain{
		FQDN:        it.FQDN,
		ID:          it.ID,
		Label:       it.Label,
		OwnerUserID: it.OwnerUserID,
		ServiceID:   it.ServiceID,
		CreatedAt:   createdAt,
	}
}
