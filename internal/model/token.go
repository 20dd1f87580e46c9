package model

import "time"

// AuthToken models a row in the `auth_tokens` table.  Clients send
// the plain token in the Authorization header; only its SHA-256 hex
// digest is stored.  A token with a non-nil RevokedAt no longer
// authenticates requests.
//
// Fields:
//  ID        – primary key identifier.
//  TokenHash – SHA-256 hex digest of the token value.
//  Label     – free-text note identifying the token's holder.
//  RevokedAt – when the token was revoked (null if still active).
//  CreatedAt – timestamp of creation.
type AuthToken struct {
	ID        uint64     // auth_tokens.id
	TokenHash string     // auth_tokens.token_hash
	Label     string     // auth_tokens.label
	RevokedAt *time.Time // auth_tokens.revoked_at (nullable)
	CreatedAt time.Time  // auth_tokens.created_at
}
