package store

import "github.com/julianstephens/tempo/internal/models"

type EventInput struct {
	Title       string
	Date        string
	StartTime   string
	EndTime     string
	Description string
	Type        models.EventType
}

func (s *Store) AddEvent(input EventInput) (models.CalendarEvent, error) {
	event := models.CalendarEvent{
		ID:          s.newID(),
		Title:       input.Title,
		Date:        input.Date,
		StartTime:   input.StartTime,
		EndTime:     input.EndTime,
		Description: input.Description,
		Type:        input.Type,
		CreatedAt:   s.timestamp(),
	}
	if event.Type == "" {
		event.Type = models.EventReminder
	}

	if err := s.provider.AddEvent(event); err != nil {
		return models.CalendarEvent{}, err
	}
	return event, nil
}

type EventPatch struct {
	Title       *string
	Date        *string
	StartTime   *string
	EndTime     *string
	Description *string
	Type        *models.EventType
}

// UpdateEvent merges the patch; unknown ids are a silent no-op.
func (s *Store) UpdateEvent(id string, patch EventPatch) error {
	event, err := s.provider.GetEvent(id)
	if err != nil {
		return nil
	}

	if patch.Title != nil {
		event.Title = *patch.Title
	}
	if patch.Date != nil {
		event.Date = *patch.Date
	}
	if patch.StartTime != nil {
		event.StartTime = *patch.StartTime
	}
	if patch.EndTime != nil {
		event.EndTime = *patch.EndTime
	}
	if patch.Description != nil {
		event.Description = *patch.Description
	}
	if patch.Type != nil {
		event.Type = *patch.Type
	}

	return s.provider.UpdateEvent(event)
}

func (s *Store) DeleteEvent(id string) error {
	if _, err := s.provider.GetEvent(id); err != nil {
		return nil
	}
	return s.provider.DeleteEvent(id)
}

func (s *Store) Event(id string) (models.CalendarEvent, error) {
	return s.provider.GetEvent(id)
}

func (s *Store) Events() ([]models.CalendarEvent, error) {
	return s.provider.GetAllEvents()
}
