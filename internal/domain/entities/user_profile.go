package entities

// UserProfile is a read-only projection of the platform's user record.
//
// Storage model (DynamoDB):
//   - PK: id
//
// The workflow only reads it: customer details are denormalized into
// invoices at order time and the email address receives notifications.
type UserProfile struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Email   string `json:"email"`
	Address string `json:"address"`
}
