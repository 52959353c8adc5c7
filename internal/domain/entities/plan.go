package entities

// Plan is an immutable catalog entry, owned by the catalog admin and
// read-only to the order workflow.
//
// Storage model (DynamoDB):
//   - PK: id
type Plan struct {
	ID           string   `json:"id"`
	Name         string   `json:"name"`
	Price        float64  `json:"price"`
	Features     []string `json:"features"`
	StorageQuota int      `json:"storage_quota_mb"`
}

// Free reports whether the plan carries no charge.
func (p Plan) Free() bool {
	return p.Price == 0
}
