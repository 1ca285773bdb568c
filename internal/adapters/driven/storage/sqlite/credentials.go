package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/custodia-labs/storefront-cli/internal/core/domain"
	"github.com/custodia-labs/storefront-cli/internal/core/ports/driven"
)

// Row names in session_tokens.
const (
	accessTokenKey  = "access_token"
	refreshTokenKey = "refresh_token"
)

// credentialStore implements driven.CredentialStore over the session_tokens
// table. Both rows are written and removed in one transaction.
type credentialStore struct {
	store *Store
}

var _ driven.CredentialStore = (*credentialStore)(nil)

// Load returns the stored pair. Missing rows yield empty values.
func (s *credentialStore) Load(ctx context.Context) (domain.TokenPair, error) {
	rows, err := s.store.db.QueryContext(ctx,
		"SELECT name, value FROM session_tokens WHERE name IN (?, ?)",
		accessTokenKey, refreshTokenKey)
	if err != nil {
		return domain.TokenPair{}, fmt.Errorf("querying session tokens: %w", err)
	}
	defer rows.Close()

	var pair domain.TokenPair
	for rows.Next() {
		var name, value string
		if err := rows.Scan(&name, &value); err != nil {
			return domain.TokenPair{}, fmt.Errorf("scanning session token: %w", err)
		}
		switch name {
		case accessTokenKey:
			pair.AccessToken = value
		case refreshTokenKey:
			pair.RefreshToken = value
		}
	}
	if err := rows.Err(); err != nil {
		return domain.TokenPair{}, fmt.Errorf("iterating session tokens: %w", err)
	}

	return pair, nil
}

// Save replaces both tokens. An empty value removes its row.
func (s *credentialStore) Save(ctx context.Context, pair domain.TokenPair) error {
	now := time.Now().UTC()
	return s.store.withTx(ctx, func(tx *sql.Tx) error {
		values := []struct{ name, value string }{
			{accessTokenKey, pair.AccessToken},
			{refreshTokenKey, pair.RefreshToken},
		}
		for _, v := range values {
			if err := putToken(ctx, tx, v.name, v.value, now); err != nil {
				return err
			}
		}
		return nil
	})
}

// Clear removes both tokens.
func (s *credentialStore) Clear(ctx context.Context) error {
	return s.store.withTx(ctx, func(tx *sql.Tx) error {
		_, err := tx.ExecContext(ctx,
			"DELETE FROM session_tokens WHERE name IN (?, ?)",
			accessTokenKey, refreshTokenKey)
		if err != nil {
			return fmt.Errorf("deleting session tokens: %w", err)
		}
		return nil
	})
}

func putToken(ctx context.Context, tx *sql.Tx, name, value string, now time.Time) error {
	if value == "" {
		if _, err := tx.ExecContext(ctx, "DELETE FROM session_tokens WHERE name = ?", name); err != nil {
			return fmt.Errorf("deleting %s: %w", name, err)
		}
		return nil
	}

	_, err := tx.ExecContext(ctx, `
		INSERT INTO session_tokens (name, value, updated_at)
		VALUES (?, ?, ?)
		ON CONFLICT(name) DO UPDATE SET
			value = excluded.value,
			updated_at = excluded.updated_at
	`, name, value, now)
	if err != nil {
		return fmt.Errorf("saving %s: %w", name, err)
	}
	return nil
}
