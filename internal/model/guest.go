package model

// Guest represents a hotel guest as stored in the `guests` table.
// Email is unique and acts as the natural key used by the API to
// reference guests when creating bookings.
//
// Fields:
//  ID        – primary key identifier.
//  FirstName – guest first name.
//  LastName  – guest last name.
//  Email     – unique email address (natural key).
//  Phone     – contact phone number.
type Guest struct {
	ID        uint64 `json:"id"`         // guests.id
	FirstName string `json:"first_name"` // guests.first_name
	LastName  string `json:"last_name"`  // guests.last_name
	Email     string `json:"email"`      // guests.email
	Phone     string `json:"phone"`      // guests.phone
}
