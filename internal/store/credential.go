package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
)

// credentialKey is the fixed settings key for the inference API key.
// The value is read at startup and sent nowhere except the gateway call.
const credentialKey = "api_key"

// CredentialRepo stores the single inference credential string.
type CredentialRepo interface {
	// Save writes the credential, replacing any previous value.
	Save(ctx context.Context, key string) error

	// Load returns the stored credential, or "" if none is stored.
	Load(ctx context.Context) (string, error)

	// Clear removes the stored credential. No-op if none is stored.
	Clear(ctx context.Context) error
}

type credentialRepo struct {
	db *sql.DB
}

func (r *credentialRepo) Save(ctx context.Context, key string) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO settings (key, value) VALUES (?, ?)
		 ON CONFLICT(key) DO UPDATE SET value = excluded.value`,
		credentialKey, key,
	)
	if err != nil {
		return fmt.Errorf("save credential: %w", err)
	}
	return nil
}

func (r *credentialRepo) Load(ctx context.Context) (string, error) {
	var value string
	err := r.db.QueryRowContext(ctx,
		`SELECT value FROM settings WHERE key = ?`, credentialKey,
	).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("load credential: %w", err)
	}
	return value, nil
}

func (r *credentialRepo) Clear(ctx context.Context) error {
	_, err := r.db.ExecContext(ctx,
		`DELETE FROM settings WHERE key = ?`, credentialKey,
	)
	if err != nil {
		return fmt.Errorf("clear credential: %w", err)
	}
	return nil
}
