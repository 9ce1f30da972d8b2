package services

import (
	"context"
	"errors"
	"time"

	"github.com/boituva/beachclub/internal/models"
	"github.com/boituva/beachclub/internal/storage"
	"github.com/boituva/beachclub/internal/validators"
	"github.com/google/uuid"
)

var (
	ErrInvalidEmail        = errors.New("invalid e-mail address")
	ErrClientAlreadyExists = errors.New("client already registered")
)

type ClientsService interface {
	AddClient(ctx context.Context, request models.ClientRequest) error
	GetClients(ctx context.Context) ([]models.ClientData, error)
	DeleteClient(ctx context.Context, email string) error
}

type Clients struct {
	Storage storage.ClientsStorage
}

// Creates the service
func NewClients(storage storage.ClientsStorage) ClientsService {
	return &Clients{Storage: storage}
}

// AddClient - registers a club client; e-mail must be unique
func (s *Clients) AddClient(ctx context.Context, request models.ClientRequest) error {
	if !validators.CheckEmail(request.Email) {
		return ErrInvalidEmail
	}
	client := models.ClientData{
		ID:        uuid.New().String(),
		FullName:  request.FullName,
		Email:     request.Email,
		Phone:     request.Phone,
		CreatedAt: time.Now(),
	}
	err := s.Storage.AddClient(ctx, client)
	if err != nil {
		if errors.Is(err, storage.ErrAlreadyExists) {
			return ErrClientAlreadyExists
		}
		return err
	}
	return nil
}

func (s *Clients) GetClients(ctx context.Context) ([]models.ClientData, error) {
	return s.Storage.GetClients(ctx)
}

func (s *Clients) DeleteClient(ctx context.Context, email string) error {
	return s.Storage.DeleteClient(ctx, email)
}
