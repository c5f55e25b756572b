package models

type Payment struct {
	ID          string  `json:"id"`
	ProjectID   string  `json:"project_id"`
	Amount      float64 `json:"amount"`
	Currency    string  `json:"currency"` // ISO 4217 code
	Date        string  `json:"date"`     // YYYY-MM-DD
	Description string  `json:"description,omitempty"`
	DocumentURL string  `json:"document_url,omitempty"`
	CreatedAt   string  `json:"created_at"` // RFC3339
}

type Expense struct {
	ID          string  `json:"id"`
	ProjectID   string  `json:"project_id"`
	Amount      float64 `json:"amount"`
	Currency    string  `json:"currency"` // ISO 4217 code
	Date        string  `json:"date"`     // YYYY-MM-DD
	Category    string  `json:"category,omitempty"`
	Description string  `json:"description,omitempty"`
	DocumentURL string  `json:"document_url,omitempty"`
	CreatedAt   string  `json:"created_at"` // RFC3339
}
