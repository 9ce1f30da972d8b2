package models

import "time"

// ClientRequest - client registration payload
type ClientRequest struct {
	FullName string `json:"full_name"`
	Email    string `json:"email"`
	Phone    string `json:"phone"`
}

// ClientData - stored club client
type ClientData struct {
	ID        string
	FullName  string
	Email     string
	Phone     string
	CreatedAt time.Time
}

// ClientResponse - client as returned to the caller
type ClientResponse struct {
	FullName   string `json:"full_name"`
	Email      string `json:"email"`
	Phone      string `json:"phone"`
	Registered string `json:"registered"`
}
