package models

type ResourceType string

const (
	ResourceLink        ResourceType = "link"
	ResourceCredentials ResourceType = "credentials"
	ResourceNote        ResourceType = "note"
	ResourceFile        ResourceType = "file"
)

// ResourceTypes lists every recognized project resource type.
var ResourceTypes = []ResourceType{
	ResourceLink, ResourceCredentials, ResourceNote, ResourceFile,
}

// ProjectResource attaches a link, credential pair, note, or file reference
// to a project. URL, Username, Password, and Content are populated according
// to the resource type. When InKeyring is set the password lives in the OS
// keyring instead of the Password field.
type ProjectResource struct {
	ID          string       `json:"id"`
	ProjectID   string       `json:"project_id"`
	Type        ResourceType `json:"type"`
	Title       string       `json:"title"`
	URL         string       `json:"url,omitempty"`
	Username    string       `json:"username,omitempty"`
	Password    string       `json:"password,omitempty"`
	InKeyring   bool         `json:"in_keyring,omitempty"`
	Content     string       `json:"content,omitempty"`
	Description string       `json:"description,omitempty"`
	CreatedAt   string       `json:"created_at"` // RFC3339
	UpdatedAt   string       `json:"updated_at"` // RFC3339
}
