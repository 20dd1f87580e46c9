package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/iliyamo/hotel-booking-api/internal/model"
)

// GuestRepo provides CRUD operations on the guests table.  Lookups by
// email exist alongside lookups by id because email is the natural key
// clients use at the API boundary.
type GuestRepo struct {
	db *sql.DB
}

// NewGuestRepo returns a new GuestRepo bound to the given database.
func NewGuestRepo(db *sql.DB) *GuestRepo { return &GuestRepo{db: db} }

// Create inserts a new guest and populates the generated ID on the
// provided model.
func (r *GuestRepo) Create(ctx context.Context, g *model.Guest) error {
	const q = `INSERT INTO guests (first_name, last_name, email, phone) VALUES (?, ?, ?, ?)`
	result, err := r.db.ExecContext(ctx, q, g.FirstName, g.LastName, g.Email, g.Phone)
	if err != nil {
		return err
	}
	id, err := result.LastInsertId()
	if err != nil {
		return err
	}
	g.ID = uint64(id)
	return nil
}

// GetByID returns the guest with the given id or ErrGuestNotFound.
func (r *GuestRepo) GetByID(ctx context.Context, id uint64) (*model.Guest, error) {
	const q = `SELECT id, first_name, last_name, email, phone FROM guests WHERE id = ?`
	return r.scanOne(r.db.QueryRowContext(ctx, q, id))
}

// GetByEmail returns the guest with the given email or ErrGuestNotFound.
func (r *GuestRepo) GetByEmail(ctx context.Context, email string) (*model.Guest, error) {
	const q = `SELECT id, first_name, last_name, email, phone FROM guests WHERE email = ?`
	return r.scanOne(r.db.QueryRowContext(ctx, q, email))
}

// GetByEmailTx is GetByEmail executed inside an existing transaction.
// The booking service uses it to resolve the natural key to an internal
// id within the same transaction that writes the booking.
func (r *GuestRepo) GetByEmailTx(ctx context.Context, tx *sql.Tx, email string) (*model.Guest, error) {
	const q = `SELECT id, first_name, last_name, email, phone FROM guests WHERE email = ?`
	return r.scanOne(tx.QueryRowContext(ctx, q, email))
}

// List returns all guests ordered by id.
func (r *GuestRepo) List(ctx context.Context) ([]model.Guest, error) {
	const q = `SELECT id, first_name, last_name, email, phone FROM guests ORDER BY id`
	rows, err := r.db.QueryContext(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	guests := make([]model.Guest, 0)
	for rows.Next() {
		var g model.Guest
		if err := rows.Scan(&g.ID, &g.FirstName, &g.LastName, &g.Email, &g.Phone); err != nil {
			return nil, err
		}
		guests = append(guests, g)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return guests, nil
}

// Update replaces every mutable field of the guest with the given id.
// It returns ErrGuestNotFound when the id does not exist.
func (r *GuestRepo) Update(ctx context.Context, g *model.Guest) error {
	const q = `UPDATE guests SET first_name = ?, last_name = ?, email = ?, phone = ? WHERE id = ?`
	result, err := r.db.ExecContext(ctx, q, g.FirstName, g.LastName, g.Email, g.Phone, g.ID)
	if err != nil {
		return err
	}
	return checkAffected(result, ErrGuestNotFound)
}

// Delete removes the guest with the given id.  Bookings referencing the
// guest are removed by the ON DELETE CASCADE foreign key.
func (r *GuestRepo) Delete(ctx context.Context, id uint64) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM guests WHERE id = ?`, id)
	if err != nil {
		return err
	}
	return checkAffected(result, ErrGuestNotFound)
}

func (r *GuestRepo) scanOne(row *sql.Row) (*model.Guest, error) {
	var g model.Guest
	err := row.Scan(&g.ID, &g.FirstName, &g.LastName, &g.Email, &g.Phone)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrGuestNotFound
	}
	if err != nil {
		return nil, err
	}
	return &g, nil
}

// checkAffected maps an UPDATE/DELETE that touched zero rows to the
// given not-found sentinel.
func checkAffected(result sql.Result, notFound error) error {
	n, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return notFound
	}
	return nil
}
