package database

import (
	"context"
	"database/sql"
)

// schema holds the idempotent DDL for every table the service owns.
// The unique keys carry the natural-key constraints (guest email,
// room number) and the foreign keys cascade booking deletion when a
// guest or room is removed.
var schema = []string{
	`CREATE TABLE IF NOT EXISTS guests (
		id BIGINT UNSIGNED AUTO_INCREMENT PRIMARY KEY,
		first_name VARCHAR(100) NOT NULL,
		last_name VARCHAR(100) NOT NULL,
		email VARCHAR(254) NOT NULL,
		phone VARCHAR(16) NOT NULL,
		UNIQUE KEY uq_guests_email (email)
	) ENGINE=InnoDB`,
	`CREATE TABLE IF NOT EXISTS rooms (
		id BIGINT UNSIGNED AUTO_INCREMENT PRIMARY KEY,
		room_number INT NOT NULL,
		room_type VARCHAR(50) NOT NULL,
		price DECIMAL(10,2) NOT NULL,
		UNIQUE KEY uq_rooms_number (room_number)
	) ENGINE=InnoDB`,
	`CREATE TABLE IF NOT EXISTS bookings (
		id BIGINT UNSIGNED AUTO_INCREMENT PRIMARY KEY,
		guest_id BIGINT UNSIGNED NOT NULL,
		room_id BIGINT UNSIGNED NOT NULL,
		check_in DATE NOT NULL,
		check_out DATE NOT NULL,
		KEY idx_bookings_room_dates (room_id, check_in, check_out),
		CONSTRAINT fk_bookings_guest FOREIGN KEY (guest_id) REFERENCES guests (id) ON DELETE CASCADE,
		CONSTRAINT fk_bookings_room FOREIGN KEY (room_id) REFERENCES rooms (id) ON DELETE CASCADE
	) ENGINE=InnoDB`,
	`CREATE TABLE IF NOT EXISTS auth_tokens (
		id BIGINT UNSIGNED AUTO_INCREMENT PRIMARY KEY,
		token_hash CHAR(64) NOT NULL,
		label VARCHAR(100) NOT NULL DEFAULT '',
		revoked_at DATETIME NULL,
		created_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP,
		UNIQUE KEY uq_auth_tokens_hash (token_hash)
	) ENGINE=InnoDB`,
}

// ensureSchema creates any missing tables.  Open runs it on every
// startup; the statements are idempotent.
func ensureSchema(ctx context.Context, db *sql.DB) error {
	for _, stmt := range schema {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			return err
		}
	}
	return nil
}
