package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/iliyamo/hotel-booking-api/internal/model"
)

// RoomRepo provides CRUD operations on the rooms table.  Rooms are
// addressed externally by their unique room number and internally by id.
type RoomRepo struct {
	db *sql.DB
}

// NewRoomRepo returns a new RoomRepo bound to the given database.
func NewRoomRepo(db *sql.DB) *RoomRepo { return &RoomRepo{db: db} }

// Create inserts a new room and populates the generated ID on the
// provided model.
func (r *RoomRepo) Create(ctx context.Context, room *model.Room) error {
	const q = `INSERT INTO rooms (room_number, room_type, price) VALUES (?, ?, ?)`
	result, err := r.db.ExecContext(ctx, q, room.RoomNumber, room.RoomType, room.Price)
	if err != nil {
		return err
	}
	id, err := result.LastInsertId()
	if err != nil {
		return err
	}
	room.ID = uint64(id)
	return nil
}

// GetByID returns the room with the given id or ErrRoomNotFound.
func (r *RoomRepo) GetByID(ctx context.Context, id uint64) (*model.Room, error) {
	const q = `SELECT id, room_number, room_type, price FROM rooms WHERE id = ?`
	return r.scanOne(r.db.QueryRowContext(ctx, q, id))
}

// GetByNumber returns the room with the given room number or ErrRoomNotFound.
func (r *RoomRepo) GetByNumber(ctx context.Context, number int) (*model.Room, error) {
	const q = `SELECT id, room_number, room_type, price FROM rooms WHERE room_number = ?`
	return r.scanOne(r.db.QueryRowContext(ctx, q, number))
}

// GetByNumberForUpdateTx resolves a room by its number inside an
// existing transaction and takes a row lock on it.  The booking
// service relies on this lock to serialize concurrent overlap checks
// for the same room, including the case where the room has no
// bookings yet and there are no booking rows to lock.
func (r *RoomRepo) GetByNumberForUpdateTx(ctx context.Context, tx *sql.Tx, number int) (*model.Room, error) {
	const q = `SELECT id, room_number, room_type, price FROM rooms WHERE room_number = ? FOR UPDATE`
	return r.scanOne(tx.QueryRowContext(ctx, q, number))
}

// List returns all rooms ordered by id.
func (r *RoomRepo) List(ctx context.Context) ([]model.Room, error) {
	const q = `SELECT id, room_number, room_type, price FROM rooms ORDER BY id`
	rows, err := r.db.QueryContext(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	rooms := make([]model.Room, 0)
	for rows.Next() {
		var room model.Room
		if err := rows.Scan(&room.ID, &room.RoomNumber, &room.RoomType, &room.Price); err != nil {
			return nil, err
		}
		rooms = append(rooms, room)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return rooms, nil
}

// Update replaces every mutable field of the room with the given id.
// It returns ErrRoomNotFound when the id does not exist.
func (r *RoomRepo) Update(ctx context.Context, room *model.Room) error {
	const q = `UPDATE rooms SET room_number = ?, room_type = ?, price = ? WHERE id = ?`
	result, err := r.db.ExecContext(ctx, q, room.RoomNumber, room.RoomType, room.Price, room.ID)
	if err != nil {
		return err
	}
	return checkAffected(result, ErrRoomNotFound)
}

// Delete removes the room with the given id.  Bookings referencing the
// room are removed by the ON DELETE CASCADE foreign key.
func (r *RoomRepo) Delete(ctx context.Context, id uint64) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM rooms WHERE id = ?`, id)
	if err != nil {
		return err
	}
	return checkAffected(result, ErrRoomNotFound)
}

func (r *RoomRepo) scanOne(row *sql.Row) (*model.Room, error) {
	var room model.Room
	err := row.Scan(&room.ID, &room.RoomNumber, &room.RoomType, &room.Price)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrRoomNotFound
	}
	if err != nil {
		return nil, err
	}
	return &room, nil
}
