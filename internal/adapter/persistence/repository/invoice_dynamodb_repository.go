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
	defaultInvoicesTableName = "invoices"
	invoicesServiceIDIndex   = "service_id-index"
)

type invoiceCompanyItem struct {
	Name    string `dynamodbav:"name"`
	Address string `dynamodbav:"address"`
	TaxID   string `dynamodbav:"tax_id"`
	Email   string `dynamodbav:"email"`
}

type invoiceCustomerItem struct {
	Name    string `dynamodbav:"name"`
	Email   string `dynamodbav:"email"`
	Address string `dynamodbav:"address"`
}

type invoiceItem struct {
	ID          string              `dynamodbav:"id"`
	ServiceID   string              `dynamodbav:"service_id"`
	OwnerUserID string              `dynamodbav:"owner_user_id"`
	Amount      string              `dynamodbav:"amount"`
	Status      string              `dynamodbav:"status"`
	InvoiceDate string              `dynamodbav:"invoice_date"`
	DueDate     string              `dynamodbav:"due_date"`
	PaidAt      string              `dynamodbav:"paid_at,omitempty"`
	Company     invoiceCompanyItem  `dynamodbav:"company"`
	Customer    invoiceCustomerItem `dynamodbav:"customer"`
}

// InvoiceDynamoRepository persists Invoice entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: service_id-index (PK: service_id)
//
// Amount and the denormalized company/customer blocks are written once at
// creation and never updated. MarkPaid is the only mutation: a conditional
// update guarding on status=unpaid, so the flip commits exactly once no
// matter how many webhook deliveries race it.

type InvoiceDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IInvoiceRepository = (*InvoiceDynamoRepository)(nil)

func NewInvoiceDynamoRepository(ddb *dynamodb.Client) *InvoiceDynamoRepository {
	return &InvoiceDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("INVOICES_TABLE", defaultInvoicesTableName),
	}
}

func (r *InvoiceDynamoRepository) Create(ctx context.Context, inv entities.Invoice) (entities.Invoice, error) {
	it := toInvoiceItem(inv)
	av, err := attributevalue.MarshalMap(it)
	if err != nil {
		return entities.Invoice{}, err
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
		return entities.Invoice{}, err
	}
	return inv, nil
}

func (r *InvoiceDynamoRepository) GetByID(ctx context.Context, id string) (entities.Invoice, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Invoice{}, err
	}
	if len(out.Item) == 0 {
		return entities.Invoice{}, nil
	}

	var it invoiceItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Invoice{}, err
	}
	return fromInvoiceItem(it), nil
}

func (r *InvoiceDynamoRepository) GetByServiceID(ctx context.Context, serviceID string) (entities.Invoice, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(invoicesServiceIDIndex),
		KeyConditionExpression: aws.String("service_id = :sid"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":sid": &types.AttributeValueMemberS{Value: serviceID},
		},
		Limit: aws.Int32(1),
	})
	if err != nil {
		return entities.Invoice{}, err
	}
	if len(out.Items) == 0 {
		return entities.Invoice{}, nil
	}

	var it invoiceItem
	if err := attributevalue.UnmarshalMap(out.Items[0], &it); err != nil {
		return entities.Invoice{}, err
	}
	return fromInvoiceItem(it), nil
}

// MarkPaid flips status unpaid -> paid. The condition makes the flip
// atomic: the losing delivery of a replay race lands on the conditional
// failure path and gets the already-paid invoice back with changed=false.
func (r *InvoiceDynamoRepository) MarkPaid(ctx context.Context, id string, paidAt time.Time) (entities.Invoice, bool, error) {
	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConditionExpression: aws.String("attribute_exists(#id) AND #status = :unpaid"),
		UpdateExpression:    aws.String("SET #status = :paid, #paid_at = :paid_at"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":unpaid":  &types.AttributeValueMemberS{Value: string(entities.InvoiceStatusUnpaid)},
			":paid":    &types.AttributeValueMemberS{Value: string(entities.InvoiceStatusPaid)},
			":paid_at": &types.AttributeValueMemberS{Value: paidAt.UTC().Format(time.RFC3339Nano)},
		},
		ExpressionAttributeNames: map[string]string{
			"#id":      "id",
			"#status":  "status",
			"#paid_at": "paid_at",
		},
		ReturnValues: types.ReturnValueAllNew,
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			current, gerr := r.GetByID(ctx, id)
			if gerr != nil {
				return entities.Invoice{}, false, gerr
			}
			return current, false, nil
		}
		return entities.Invoice{}, false, err
	}
	if len(out.Attributes) == 0 {
		return entities.Invoice{}, false, nil
	}
	var it invoiceItem
	if err := attributevalue.UnmarshalMap(out.Attributes, &it); err != nil {
		return entities.Invoice{}, false, err
	}
	return fromInvoiceItem(it), true, nil
}

func toInvoiceItem(inv entities.Invoice) invoiceItem {
	it := invoiceItem{
		ID:          inv.ID,
		ServiceID:   inv.ServiceID,
		OwnerUserID: inv.OwnerUserID,
		Amount:      floatToString(inv.Amount),
		Status:      string(inv.Status),
		InvoiceDate: inv.InvoiceDate.UTC().Format(time.RFC3339Nano),
		DueDate:     inv.DueDate.UTC().Format(time.RFC3339Nano),
		Company: invoiceCompanyItem{
			Name:    inv.Company.Name,
			Address: inv.Company.Address,
			TaxID:   inv.Company.TaxID,
			Email:   inv.Company.Email,
		},
		Customer: invoiceCustomerItem{
			Name:    inv.Customer.Name,
			Email:   inv.Customer.Email,
			Address: inv.Customer.Address,
		},
	}
	if inv.PaidAt != nil {
		it.PaidAt = inv.PaidAt.UTC().Format(time.RFC3339Nano)
	}
	return it
}

func fromInvoiceItem(it invoiceItem) entities.Invoice {
	invoiceDate, _ := time.Parse(time.RFC3339Nano, it.InvoiceDate)
	dueDate, _ := time.Parse(time.RFC3339Nano, it.DueDate)
	inv := entities.Invoice{
		ID:          it.ID,
		ServiceID:   it.ServiceID,
		OwnerUserID: it.OwnerUserID,
		Amount:      stringToFloat(it.Amount),
		Status:      entities.InvoiceStatus(it.Status),
		InvoiceDate: invoiceDate,
		DueDate:     dueDate,
		Company: entities.InvoiceCompany{
			Name:    it.Company.Name,
			Address: it.Company.Address,
			TaxID:   it.Company.TaxID,
			Email:   it.Company.Email,
		},
		Customer: entities.InvoiceCustomer{
			Name:    it.Customer.Name,
			Email:   it.Customer.Email,
			Address: it.Customer.Address,
		},
	}
	if it.PaidAt != "" {
		if paidAt, err := time.Parse(time.RFC3339Nano, it.PaidAt); err == nil {
			inv.PaidAt = &paidAt
		}
	}
	return inv
}
