package storage

import (
	"context"
	"errors"

	"github.com/boituva/beachclub/internal/models"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

const (
	InsertUser = `INSERT INTO USERS (id, login, password)
				  VALUES ($1, $2, $3)
				  ON CONFLICT (login) DO NOTHING
				  RETURNING login;`
	GetUser = `SELECT id, password, login FROM USERS WHERE login=$1;`
)

type UserDatabase struct {
	DB *Database
}

// Creates the users storage
func NewUsersStorage(db *Database) UsersStorage {
	return &UserDatabase{DB: db}
}

func (s *UserDatabase) GetUser(ctx context.Context, login string) (*models.UserData, error) {
	var (
		userID   string
		password string
		dbLogin  string
	)
	err := s.DB.Pool.QueryRow(ctx, GetUser, login).Scan(&userID, &password, &dbLogin)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrUserNotFound
		}
		return nil, wrapError("get user", err)
	}

	return &models.UserData{
		UserID:       userID,
		Login:        dbLogin,
		PasswordHash: password,
	}, nil
}

func (s *UserDatabase) AddUser(ctx context.Context, login string, password string) error {
	var prevLogin string
	userID := uuid.New().String()

	err := s.DB.Pool.QueryRow(ctx, InsertUser, userID, login, password).Scan(&prevLogin)
	if err == nil {
		return nil
	}
	// the conflict clause swallowed the insert, nothing came back
	if errors.Is(err, pgx.ErrNoRows) {
		return ErrAlreadyExists
	}
	return wrapError("add user", err)
}
