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

const (
	defaultSettingsTableName = "settings"
	platformSettingsKey      = "platform"
)

type settingsCompanyItem struct {
	Name    string `dynamodbav:"name"`
	Address string `dynamodbav:"address"`
	TaxID   string `dynamodbav:"tax_id"`
	Email   string `dynamodbav:"email"`
}

type settingsStripeItem struct {
	SecretKey     string `dynamodbav:"secret_key"`
	WebhookSecret string `dynamodbav:"webhook_secret"`
	SuccessURL    string `dynamodbav:"success_url"`
	CancelURL     string `dynamodbav:"cancel_url"`
}

type settingsMercadoPagoItem struct {
	AccessToken     string `dynamodbav:"access_token"`
	WebhookSecret   string `dynamodbav:"webhook_secret"`
	NotificationURL string `dynamodbav:"notification_url"`
	BackURL         string `dynamodbav:"back_url"`
}

type settingsTransferItem struct {
	PayeeName    string `dynamodbav:"payee_name"`
	DeepLink     string `dynamodbav:"deep_link"`
	Instructions string `dynamodbav:"instructions"`
}

type settingsProvisioningItem struct {
	BaseURL         string `dynamodbav:"base_url"`
	APIKey          string `dynamodbav:"api_key"`
	TargetDirectory string `dynamodbav:"target_directory"`
}

type settingsItem struct {
	ID                   string                   `dynamodbav:"id"`
	RootDomain           string                   `dynamodbav:"root_domain"`
	FreeUserLimitEnabled bool                     `dynamodbav:"free_user_limit_enabled"`
	Company              settingsCompanyItem      `dynamodbav:"company"`
	Stripe               settingsStripeItem       `dynamodbav:"stripe"`
	MercadoPago          settingsMercadoPagoItem  `dynamodbav:"mercadopago"`
	Transfer             settingsTransferItem     `dynamodbav:"transfer"`
	Provisioning         settingsProvisioningItem `dynamodbav:"provisioning"`
}

// SettingsDynamoRepository reads the platform settings document.
//
// Table requirements:
//   - PK: id (string), single item under the fixed key "platform"
//
// Every Get hits DynamoDB so settings edits take effect on the next
// request. A missing document comes back as the zero value; callers decide
// which absent fields are fatal (e.g. an empty root domain).

type SettingsDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.ISettingsRepository = (*SettingsDynamoRepository)(nil)

func NewSettingsDynamoRepository(ddb *dynamodb.Client) *SettingsDynamoRepository {
	return &SettingsDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("SETTINGS_TABLE", defaultSettingsTableName),
	}
}

func (r *SettingsDynamoRepository) Get(ctx context.Context) (entities.PlatformSettings, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: platformSettingsKey},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.PlatformSettings{}, err
	}
	if len(out.Item) == 0 {
		return entities.PlatformSettings{}, nil
	}

	var it settingsItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.PlatformSettings{}, err
	}
	return fromSettingsItem(it), nil
}

func fromSettingsItem(it settingsItem) entities.PlatformSettings {
	return entities.PlatformSettings{
		ID:                   it.ID,
		RootDomain:           it.RootDomain,
		FreeUserLimitEnabled: it.FreeUserLimitEnabled,
		Company: entities.CompanySettings{
			Name:    it.Company.Name,
			Address: it.Company.Address,
			TaxID:   it.Company.TaxID,
			Email:   it.Company.Email,
		},
		Stripe: entities.StripeSettings{
			SecretKey:     it.Stripe.SecretKey,
			WebhookSecret: it.Stripe.WebhookSecret,
			SuccessURL:    it.Stripe.SuccessURL,
			CancelURL:     it.Stripe.CancelURL,
		},
		MercadoPago: entities.MercadoPagoSettings{
			AccessToken:     it.MercadoPago.AccessToken,
			WebhookSecret:   it.MercadoPago.WebhookSecret,
			NotificationURL: it.MercadoPago.NotificationURL,
			BackURL:         it.MercadoPago.BackURL,
		},
		Transfer: entities.TransferSettings{
			PayeeName:    it.Transfer.PayeeName,
			DeepLink:     it.Transfer.DeepLink,
			Instructions: it.Transfer.Instructions,
		},
		Provisioning: entities.ProvisioningSettings{
			BaseURL:         it.Provisioning.BaseURL,
			APIKey:          it.Provisioning.APIKey,
			TargetDirectory: it.Provisioning.TargetDirectory,
		},
	}
}
