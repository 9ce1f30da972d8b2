package storage

import (
	"context"
	"fmt"

	"github.com/boituva/beachclub/internal/models"
)

const (
	InsertClient = `INSERT INTO CLIENTS (id, full_name, email, phone, created_at)
					VALUES ($1, $2, $3, $4, $5);`
	GetClients = `SELECT id, full_name, email, phone, created_at
				  FROM CLIENTS ORDER BY created_at DESC;`
	DeleteClient = `DELETE FROM CLIENTS WHERE email = $1;`
)

type ClientDatabase struct {
	DB *Database
}

// Creates the clients storage
func NewClientsStorage(db *Database) ClientsStorage {
	return &ClientDatabase{DB: db}
}

func (s *ClientDatabase) AddClient(ctx context.Context, client models.ClientData) error {
	_, err := s.DB.Pool.Exec(ctx, InsertClient,
		client.ID,
		client.FullName,
		client.Email,
		client.Phone,
		client.CreatedAt,
	)
	if err != nil {
		return wrapError("add client", err)
	}
	return nil
}

func (s *ClientDatabase) GetClients(ctx context.Context) ([]models.ClientData, error) {
	var clients []models.ClientData
	rows, err := s.DB.Pool.Query(ctx, GetClients)
	if err != nil {
		return nil, wrapError("get clients", err)
	}
	defer rows.Close()
	for rows.Next() {
		var client models.ClientData
		err := rows.Scan(
			&client.ID,
			&client.FullName,
			&client.Email,
			&client.Phone,
			&client.CreatedAt,
		)
		if err != nil {
			return clients, fmt.Errorf("failed scan client data: %w", err)
		}
		clients = append(clients, client)
	}
	return clients, rows.Err()
}

func (s *ClientDatabase) DeleteClient(ctx context.Context, email string) error {
	tag, err := s.DB.Pool.Exec(ctx, DeleteClient, email)
	if err != nil {
		return wrapError("delete client", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrClientNotFound
	}
	return nil
}
