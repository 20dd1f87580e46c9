package repository

import (
	"context"
	"database/sql"
	"errors"
)

// TokenRepo persists and validates opaque API tokens (single
// 'token_hash' column holding a SHA-256 hex digest).
type TokenRepo struct{ DB *sql.DB }

func NewTokenRepo(db *sql.DB) *TokenRepo { return &TokenRepo{DB: db} }

// Store inserts a token hash row with a free-text label.
func (r *TokenRepo) Store(ctx context.Context, tokenHash, label string) error {
	_, err := r.DB.ExecContext(ctx,
		"INSERT INTO auth_tokens (token_hash, label) VALUES (?,?)",
		tokenHash, label)
	return err
}

// Validate returns nil if a non-revoked token with this hash exists,
// and ErrTokenNotFound otherwise.
func (r *TokenRepo) Validate(ctx context.Context, tokenHash string) error {
	var revokedAt sql.NullTime
	err := r.DB.QueryRowContext(ctx,
		"SELECT revoked_at FROM auth_tokens WHERE token_hash=? LIMIT 1",
		tokenHash).Scan(&revokedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return ErrTokenNotFound
	}
	if err != nil {
		return err
	}
	if revokedAt.Valid {
		return ErrTokenNotFound
	}
	return nil
}

// RevokeByHash marks a token as revoked.
func (r *TokenRepo) RevokeByHash(ctx context.Context, tokenHash string) error {
	result, err := r.DB.ExecContext(ctx,
		"UPDATE auth_tokens SET revoked_at=NOW() WHERE token_hash=? AND revoked_at IS NULL",
		tokenHash)
	if err != nil {
		return err
	}
	return checkAffected(result, ErrTokenNotFound)
}
