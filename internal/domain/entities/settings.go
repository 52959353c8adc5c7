package entities

// PlatformSettings is the single settings document backing the workflow's
// configuration surface: root domain, restriction flags, billing-company
// details and per-integration credentials.
//
// Storage model (DynamoDB):
//   - PK: id (fixed value "platform", one item)
//
// Callers read it through the repository at call time, never cache it
// long-term, so operators can reconfigure the platform live.
type PlatformSettings struct {
	ID                   string `json:"id"`
	RootDomain           string `json:"root_domain"`
	FreeUserLimitEnabled bool   `json:"free_user_limit_enabled"`

	Company      CompanySettings      `json:"company"`
	Stripe       StripeSettings       `json:"stripe"`
	MercadoPago  MercadoPagoSettings  `json:"mercadopago"`
	Transfer     TransferSettings     `json:"transfer"`
	Provisioning ProvisioningSettings `json:"provisioning"`
}

// CompanySettings is the billing-company block denormalized into invoices.
type CompanySettings struct {
	Name    string `json:"name"`
	Address string `json:"address"`
	TaxID   string `json:"tax_id"`
	Email   string `json:"email"`
}

// StripeSettings holds the Stripe installation credentials.
type StripeSettings struct {
	SecretKey     string `json:"secret_key"`
	WebhookSecret string `json:"webhook_secret"`
	SuccessURL    string `json:"success_url"`
	CancelURL     string `json:"cancel_url"`
}

// MercadoPagoSettings holds the Mercado Pago installation credentials.
type MercadoPagoSettings struct {
	AccessToken     string `json:"access_token"`
	WebhookSecret   string `json:"webhook_secret"`
	NotificationURL string `json:"notification_url"`
	BackURL         string `json:"back_url"`
}

// TransferSettings describes the manual peer-to-peer payment route.
type TransferSettings struct {
	PayeeName    string `json:"payee_name"`
	DeepLink     string `json:"deep_link"`
	Instructions string `json:"instructions"`
}

// ProvisioningSettings holds the external subdomain-provisioning API access.
type ProvisioningSettings struct {
	BaseURL         string `json:"base_url"`
	APIKey          string `json:"api_key"`
	TargetDirectory string `json:"target_directory"`
}
