package model

// Room represents a hotel room as stored in the `rooms` table.
// RoomNumber is unique and acts as the natural key used by the API
// to reference rooms when creating bookings.  Price is kept as the
// string form of a DECIMAL(10,2) column so that no precision is
// lost converting to and from the database.
//
// Fields:
//  ID         – primary key identifier.
//  RoomNumber – unique room number (natural key).
//  RoomType   – free-text room category (e.g. "suite").
//  Price      – price per night in currency units, decimal string.
type Room struct {
	ID         uint64 `json:"id"`          // rooms.id
	RoomNumber int    `json:"room_number"` // rooms.room_number
	RoomType   string `json:"room_type"`   // rooms.room_type
	Price      string `json:"price"`       // rooms.price
}
