// Package store is a thin CRUD facade over the profile document database.
// Profiles are stored as one JSONB document per user id; saves replace the
// whole document. Schema validation and field-name normalization happen
// here, once, so the pipeline never sees drifted documents.
package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/AdamPostMontjoie/resumefy/internal/schemas"
	"github.com/AdamPostMontjoie/resumefy/internal/types"
)

// Store wraps a PostgreSQL connection pool.
type Store struct {
	pool *pgxpool.Pool
}

// User is a stored account: server-assigned email plus the replaceable
// profile document.
type User struct {
	ID      string         `json:"id"`
	Email   string         `json:"email"`
	Profile *types.Profile `json:"profile"`
}

// Connect establishes a connection pool to the database.
func Connect(ctx context.Context, databaseURL string) (*Store, error) {
	pool, err := pgxpool.New(ctx, databaseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return &Store{pool: pool}, nil
}

// Close closes the connection pool.
func (s *Store) Close() {
	if s.pool != nil {
		s.pool.Close()
	}
}

// Migrate creates the users table if it does not exist.
func (s *Store) Migrate(ctx context.Context) error {
	_, err := s.pool.Exec(ctx, `
		CREATE TABLE IF NOT EXISTS users (
			id         TEXT PRIMARY KEY,
			email      TEXT NOT NULL,
			profile    JSONB NOT NULL,
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
			updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)`)
	if err != nil {
		return &UnavailableError{Message: "failed to run migration", Cause: err}
	}
	return nil
}

// CreateProfile registers a user with an empty profile. Registering an
// existing id resets the account, matching document-store set semantics.
func (s *Store) CreateProfile(ctx context.Context, id, email string) error {
	doc, err := json.Marshal(types.EmptyProfile())
	if err != nil {
		return fmt.Errorf("failed to marshal empty profile: %w", err)
	}

	_, err = s.pool.Exec(ctx,
		`INSERT INTO users (id, email, profile)
		 VALUES ($1, $2, $3)
		 ON CONFLICT (id) DO UPDATE SET email = $2, profile = $3, updated_at = NOW()`,
		id, email, doc,
	)
	if err != nil {
		return &UnavailableError{Message: "failed to create profile", Cause: err}
	}
	return nil
}

// GetUser loads a user and their normalized profile.
func (s *Store) GetUser(ctx context.Context, id string) (*User, error) {
	var email string
	var doc []byte
	err := s.pool.QueryRow(ctx,
		`SELECT email, profile FROM users WHERE id = $1`, id,
	).Scan(&email, &doc)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, &NotFoundError{UserID: id}
		}
		return nil, &UnavailableError{Message: "failed to get user", Cause: err}
	}

	var profile types.Profile
	if err := json.Unmarshal(doc, &profile); err != nil {
		return nil, &UnavailableError{Message: "stored profile document is corrupt", Cause: err}
	}
	profile.Normalize()

	return &User{ID: id, Email: email, Profile: &profile}, nil
}

// UpdateProfile replaces the profile document wholesale. The raw document
// is schema-validated, normalized, and re-serialized with canonical field
// names before storage. The account email is never touched.
func (s *Store) UpdateProfile(ctx context.Context, id string, document []byte) (*types.Profile, error) {
	if err := schemas.ValidateProfile(document); err != nil {
		return nil, err
	}

	var profile types.Profile
	if err := json.Unmarshal(document, &profile); err != nil {
		return nil, &schemas.ValidationError{Errors: []schemas.FieldError{
			{Field: "(root)", Message: err.Error()},
		}}
	}
	profile.Normalize()

	canonical, err := json.Marshal(&profile)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal profile: %w", err)
	}

	tag, err := s.pool.Exec(ctx,
		`UPDATE users SET profile = $1, updated_at = NOW() WHERE id = $2`,
		canonical, id,
	)
	if err != nil {
		return nil, &UnavailableError{Message: "failed to update profile", Cause: err}
	}
	if tag.RowsAffected() == 0 {
		return nil, &NotFoundError{UserID: id}
	}

	return &profile, nil
}
