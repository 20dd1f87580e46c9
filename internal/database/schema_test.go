package database

import (
	"strings"
	"testing"
)

func findTable(t *testing.T, name string) string {
	t.Helper()
	for _, stmt := range schema {
		if strings.Contains(stmt, "CREATE TABLE IF NOT EXISTS "+name+" ") {
			return stmt
		}
	}
	t.Fatalf("no DDL for table %s", name)
	return ""
}

// Deleting a guest or room must take its bookings with it; the
// handlers rely on the foreign keys for that, so pin them here.
func TestBookingsSchemaCascades(t *testing.T) {
	ddl := findTable(t, "bookings")
	for _, fk := range []string{
		"FOREIGN KEY (guest_id) REFERENCES guests (id) ON DELETE CASCADE",
		"FOREIGN KEY (room_id) REFERENCES rooms (id) ON DELETE CASCADE",
	} {
		if !strings.Contains(ddl, fk) {
			t.Fatalf("bookings DDL missing %q", fk)
		}
	}
}

func TestNaturalKeysAreUnique(t *testing.T) {
	if !strings.Contains(findTable(t, "guests"), "UNIQUE KEY uq_guests_email (email)") {
		t.Fatal("guests DDL missing unique email key")
	}
	if !strings.Contains(findTable(t, "rooms"), "UNIQUE KEY uq_rooms_number (room_number)") {
		t.Fatal("rooms DDL missing unique room number key")
	}
}
