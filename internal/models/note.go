package models

type Note struct {
	ID        string   `json:"id"`
	Title     string   `json:"title"`
	Content   string   `json:"content"` // markdown
	Tags      []string `json:"tags,omitempty"`
	CreatedAt string   `json:"created_at"` // RFC3339
	UpdatedAt string   `json:"updated_at"` // RFC3339
}
