package repository

import (
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

var (
	// ErrNotFound is returned when the requested row does not exist.
	ErrNotFound = errors.New("record not found")
	// ErrForeignKeyViolation is returned when a write breaks a foreign key,
	// e.g. deleting a row that other rows still reference.
	ErrForeignKeyViolation = errors.New("foreign key violation")
)

const pgForeignKeyViolation = "23503"

func mapError(err error) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, pgx.ErrNoRows) {
		return fmt.Errorf("%w: %w", ErrNotFound, err)
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == pgForeignKeyViolation {
		return fmt.Errorf("%w: %s: %w", ErrForeignKeyViolation, pgErr.ConstraintName, err)
	}

	return err
}
