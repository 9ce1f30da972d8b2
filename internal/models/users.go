package models

// UserRequest - registration and authentication payload, comes from outside
type UserRequest struct {
	Login    string `json:"login"`
	Password string `json:"password"`
}

// UserData - back-office user from storage
type UserData struct {
	UserID       string
	Login        string
	PasswordHash string
}
