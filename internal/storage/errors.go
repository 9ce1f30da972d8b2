package storage

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"
)

// wrapError translates driver failures into the storage error taxonomy:
// unique violations become ErrAlreadyExists, other data/constraint errors
// become ErrRejected, everything else (connectivity, timeouts) becomes
// ErrUnavailable so the caller can decide between retry and abort.
func wrapError(op string, err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		if pgErr.Code == "23505" {
			return ErrAlreadyExists
		}
		if strings.HasPrefix(pgErr.Code, "22") ||
			strings.HasPrefix(pgErr.Code, "23") ||
			strings.HasPrefix(pgErr.Code, "42") {
			return fmt.Errorf("%s: %w: %s", op, ErrRejected, pgErr.Message)
		}
	}
	if errors.Is(err, context.DeadlineExceeded) || pgconn.Timeout(err) {
		return fmt.Errorf("%s: %w: timeout: %v", op, ErrUnavailable, err)
	}
	return fmt.Errorf("%s: %w: %v", op, ErrUnavailable, err)
}
