package store

import "github.com/julianstephens/tempo/internal/models"

type ProjectInput struct {
	Name        string
	Description string
	Category    string
	Color       string
	Notes       string
}

func (s *Store) AddProject(input ProjectInput) (models.Project, error) {
	now := s.timestamp()
	project := models.Project{
		ID:          s.newID(),
		Name:        input.Name,
		Description: input.Description,
		Category:    input.Category,
		Color:       input.Color,
		Notes:       input.Notes,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := s.provider.AddProject(project); err != nil {
		return models.Project{}, err
	}
	return project, nil
}

type ProjectPatch struct {
	Name        *string
	Description *string
	Category    *string
	Color       *string
	Notes       *string
}

// UpdateProject merges the patch and refreshes UpdatedAt. An empty patch
// still refreshes UpdatedAt. Unknown ids are a silent no-op.
func (s *Store) UpdateProject(id string, patch ProjectPatch) error {
	project, err := s.provider.GetProject(id)
	if err != nil {
		return nil
	}

	if patch.Name != nil {
		project.Name = *patch.Name
	}
	if patch.Description != nil {
		project.Description = *patch.Description
	}
	if patch.Category != nil {
		project.Category = *patch.Category
	}
	if patch.Color != nil {
		project.Color = *patch.Color
	}
	if patch.Notes != nil {
		project.Notes = *patch.Notes
	}
	project.UpdatedAt = s.timestamp()

	return s.provider.UpdateProject(project)
}

// DeleteProject removes the project and cleans up every reference to it:
// dependent tasks keep existing with their project reference cleared, while
// the project's payments, expenses, and resources are removed outright. The
// cleanup is uniform on purpose so that no collection is left with dangling
// project ids.
func (s *Store) DeleteProject(id string) error {
	if _, err := s.provider.GetProject(id); err != nil {
		return nil
	}
	if err := s.provider.DeleteProject(id); err != nil {
		return err
	}

	tasks, err := s.provider.GetAllTasks()
	if err != nil {
		return err
	}
	for _, t := range tasks {
		if t.ProjectID != id {
			continue
		}
		t.ProjectID = ""
		if err := s.provider.UpdateTask(t); err != nil {
			return err
		}
	}

	payments, err := s.provider.GetAllPayments()
	if err != nil {
		return err
	}
	for _, p := range payments {
		if p.ProjectID == id {
			if err := s.provider.DeletePayment(p.ID); err != nil {
				return err
			}
		}
	}

	expenses, err := s.provider.GetAllExpenses()
	if err != nil {
		return err
	}
	for _, e := range expenses {
		if e.ProjectID == id {
			if err := s.provider.DeleteExpense(e.ID); err != nil {
				return err
			}
		}
	}

	resources, err := s.provider.GetAllResources()
	if err != nil {
		return err
	}
	for _, r := range resources {
		if r.ProjectID == id {
			if err := s.provider.DeleteResource(r.ID); err != nil {
				return err
			}
		}
	}

	return nil
}

func (s *Store) Project(id string) (models.Project, error) {
	return s.provider.GetProject(id)
}

func (s *Store) Projects() ([]models.Project, error) {
	return s.provider.GetAllProjects()
}
