package store

import "github.com/julianstephens/tempo/internal/models"

type ResourceInput struct {
	ProjectID   string
	Type        models.ResourceType
	Title       string
	URL         string
	Username    string
	Password    string
	InKeyring   bool
	Content     string
	Description string
}

func (s *Store) AddResource(input ResourceInput) (models.ProjectResource, error) {
	now := s.timestamp()
	resource := models.ProjectResource{
		ID:          s.newID(),
		ProjectID:   input.ProjectID,
		Type:        input.Type,
		Title:       input.Title,
		URL:         input.URL,
		Username:    input.Username,
		Password:    input.Password,
		InKeyring:   input.InKeyring,
		Content:     input.Content,
		Description: input.Description,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := s.provider.AddResource(resource); err != nil {
		return models.ProjectResource{}, err
	}
	return resource, nil
}

type ResourcePatch struct {
	ProjectID   *string
	Type        *models.ResourceType
	Title       *string
	URL         *string
	Username    *string
	Password    *string
	InKeyring   *bool
	Content     *string
	Description *string
}

// UpdateResource merges the patch and refreshes UpdatedAt. Unknown ids are a
// silent no-op.
func (s *Store) UpdateResource(id string, patch ResourcePatch) error {
	resource, err := s.provider.GetResource(id)
	if err != nil {
		return nil
	}

	if patch.ProjectID != nil {
		resource.ProjectID = *patch.ProjectID
	}
	if patch.Type != nil {
		resource.Type = *patch.Type
	}
	if patch.Title != nil {
		resource.Title = *patch.Title
	}
	if patch.URL != nil {
		resource.URL = *patch.URL
	}
	if patch.Username != nil {
		resource.Username = *patch.Username
	}
	if patch.Password != nil {
		resource.Password = *patch.Password
	}
	if patch.InKeyring != nil {
		resource.InKeyring = *patch.InKeyring
	}
	if patch.Content != nil {
		resource.Content = *patch.Content
	}
	if patch.Description != nil {
		resource.Description = *patch.Description
	}
	resource.UpdatedAt = s.timestamp()

	return s.provider.UpdateResource(resource)
}

func (s *Store) DeleteResource(id string) error {
	if _, err := s.provider.GetResource(id); err != nil {
		return nil
	}
	return s.provider.DeleteResource(id)
}

func (s *Store) Resource(id string) (models.ProjectResource, error) {
	return s.provider.GetResource(id)
}

func (s *Store) Resources() ([]models.ProjectResource, error) {
	return s.provider.GetAllResources()
}
