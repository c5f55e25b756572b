package store

import "github.com/julianstephens/tempo/internal/models"

type NoteInput struct {
	Title   string
	Content string
	Tags    []string
}

func (s *Store) AddNote(input NoteInput) (models.Note, error) {
	now := s.timestamp()
	note := models.Note{
		ID:        s.newID(),
		Title:     input.Title,
		Content:   input.Content,
		Tags:      append([]string(nil), input.Tags...),
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := s.provider.AddNote(note); err != nil {
		return models.Note{}, err
	}
	return note, nil
}

type NotePatch struct {
	Title   *string
	Content *string
	Tags    *[]string
}

// UpdateNote merges the patch and refreshes UpdatedAt. Unknown ids are a
// silent no-op.
func (s *Store) UpdateNote(id string, patch NotePatch) error {
	note, err := s.provider.GetNote(id)
	if err != nil {
		return nil
	}

	if patch.Title != nil {
		note.Title = *patch.Title
	}
	if patch.Content != nil {
		note.Content = *patch.Content
	}
	if patch.Tags != nil {
		note.Tags = append([]string(nil), (*patch.Tags)...)
	}
	note.UpdatedAt = s.timestamp()

	return s.provider.UpdateNote(note)
}

func (s *Store) DeleteNote(id string) error {
	if _, err := s.provider.GetNote(id); err != nil {
		return nil
	}
	return s.provider.DeleteNote(id)
}

func (s *Store) Note(id string) (models.Note, error) {
	return s.provider.GetNote(id)
}

func (s *Store) Notes() ([]models.Note, error) {
	return s.provider.GetAllNotes()
}
