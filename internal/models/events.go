package models

import "time"

// EventRequest - event scheduling payload
type EventRequest struct {
	Name             string `json:"name"`
	Description      string `json:"description"`
	Date             string `json:"date"`
	RegistrationOpen bool   `json:"registration_open"`
}

// EventData - stored calendar event
type EventData struct {
	ID               string
	Name             string
	Description      string
	Date             time.Time
	RegistrationOpen bool
	CreatedAt        time.Time
}

// EventResponse - event as returned to the caller
type EventResponse struct {
	ID               string `json:"id"`
	Name             string `json:"name"`
	Description      string `json:"description"`
	Date             string `json:"date"`
	RegistrationOpen bool   `json:"registration_open"`
}
