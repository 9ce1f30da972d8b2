package storage

import (
	"context"
	"fmt"
	"time"

	"github.com/boituva/beachclub/internal/models"
)

const (
	InsertEvent = `INSERT INTO EVENTS (id, name, description, event_date, registration_open, created_at)
				   VALUES ($1, $2, $3, $4, $5, $6);`
	GetMonthEvents = `SELECT id, name, description, event_date, registration_open, created_at
					  FROM EVENTS
					  WHERE EXTRACT(YEAR FROM event_date) = $1 AND EXTRACT(MONTH FROM event_date) = $2
					  ORDER BY event_date;`
	DeleteEvent = `DELETE FROM EVENTS WHERE id = $1;`
)

type EventDatabase struct {
	DB *Database
}

// Creates the events storage
func NewEventsStorage(db *Database) EventsStorage {
	return &EventDatabase{DB: db}
}

func (s *EventDatabase) AddEvent(ctx context.Context, event models.EventData) error {
	_, err := s.DB.Pool.Exec(ctx, InsertEvent,
		event.ID,
		event.Name,
		event.Description,
		event.Date,
		event.RegistrationOpen,
		event.CreatedAt,
	)
	if err != nil {
		return wrapError("add event", err)
	}
	return nil
}

func (s *EventDatabase) GetMonthEvents(ctx context.Context, year int, month time.Month) ([]models.EventData, error) {
	var events []models.EventData
	rows, err := s.DB.Pool.Query(ctx, GetMonthEvents, year, int(month))
	if err != nil {
		return nil, wrapError("get month events", err)
	}
	defer rows.Close()
	for rows.Next() {
		var event models.EventData
		err := rows.Scan(
			&event.ID,
			&event.Name,
			&event.Description,
			&event.Date,
			&event.RegistrationOpen,
			&event.CreatedAt,
		)
		if err != nil {
			return events, fmt.Errorf("failed scan event data: %w", err)
		}
		events = append(events, event)
	}
	return events, rows.Err()
}

func (s *EventDatabase) DeleteEvent(ctx context.Context, id string) error {
	tag, err := s.DB.Pool.Exec(ctx, DeleteEvent, id)
	if err != nil {
		return wrapError("delete event", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrEventNotFound
	}
	return nil
}
