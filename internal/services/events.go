package services

import (
	"context"
	"errors"
	"time"

	"github.com/boituva/beachclub/internal/models"
	"github.com/boituva/beachclub/internal/storage"
	"github.com/google/uuid"
)

var (
	ErrInvalidEventDate = errors.New("event date must be YYYY-MM-DD")
	ErrInvalidMonth     = errors.New("month must be between 1 and 12")
)

const eventDateLayout = "2006-01-02"

type EventsService interface {
	ScheduleEvent(ctx context.Context, request models.EventRequest) (*models.EventData, error)
	GetMonthEvents(ctx context.Context, year int, month int) ([]models.EventData, error)
	CancelEvent(ctx context.Context, id string) error
}

type Events struct {
	Storage storage.EventsStorage
}

// Creates the service
func NewEvents(storage storage.EventsStorage) EventsService {
	return &Events{Storage: storage}
}

// ScheduleEvent - adds an event to the club calendar
func (s *Events) ScheduleEvent(ctx context.Context, request models.EventRequest) (*models.EventData, error) {
	date, err := time.Parse(eventDateLayout, request.Date)
	if err != nil {
		return nil, ErrInvalidEventDate
	}
	event := models.EventData{
		ID:               uuid.New().String(),
		Name:             request.Name,
		Description:      request.Description,
		Date:             date,
		RegistrationOpen: request.RegistrationOpen,
		CreatedAt:        time.Now(),
	}
	if err := s.Storage.AddEvent(ctx, event); err != nil {
		return nil, err
	}
	return &event, nil
}

// GetMonthEvents - events of one calendar month, ordered by date
func (s *Events) GetMonthEvents(ctx context.Context, year int, month int) ([]models.EventData, error) {
	if month < 1 || month > 12 {
		return nil, ErrInvalidMonth
	}
	return s.Storage.GetMonthEvents(ctx, year, time.Month(month))
}

func (s *Events) CancelEvent(ctx context.Context, id string) error {
	return s.Storage.DeleteEvent(ctx, id)
}
