package model

import (
	"testing"
	"time"
)

func date(t *testing.T, s string) time.Time {
	t.Helper()
	d, err := time.Parse(DateLayout, s)
	if err != nil {
		t.Fatalf("bad test date %q: %v", s, err)
	}
	return d
}

func TestOverlaps(t *testing.T) {
	cases := []struct {
		name                   string
		aIn, aOut, bIn, bOut   string
		want                   bool
	}{
		{"disjoint before", "2024-03-01", "2024-03-05", "2024-03-06", "2024-03-10", false},
		{"disjoint after", "2024-03-06", "2024-03-10", "2024-03-01", "2024-03-05", false},
		{"contained", "2024-03-01", "2024-03-10", "2024-03-04", "2024-03-06", true},
		{"containing", "2024-03-04", "2024-03-06", "2024-03-01", "2024-03-10", true},
		{"partial overlap", "2024-03-01", "2024-03-05", "2024-03-04", "2024-03-06", true},
		{"shared boundary day conflicts", "2024-03-01", "2024-03-05", "2024-03-05", "2024-03-08", true},
		{"single day ranges equal", "2024-03-05", "2024-03-05", "2024-03-05", "2024-03-05", true},
		{"single day ranges adjacent", "2024-03-05", "2024-03-05", "2024-03-06", "2024-03-06", false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := Overlaps(date(t, tc.aIn), date(t, tc.aOut), date(t, tc.bIn), date(t, tc.bOut))
			if got != tc.want {
				t.Fatalf("Overlaps(%s..%s, %s..%s) = %v, want %v", tc.aIn, tc.aOut, tc.bIn, tc.bOut, got, tc.want)
			}
		})
	}
}

func TestOverlapsIsSymmetric(t *testing.T) {
	aIn, aOut := date(t, "2024-03-01"), date(t, "2024-03-05")
	bIn, bOut := date(t, "2024-03-04"), date(t, "2024-03-06")
	if Overlaps(aIn, aOut, bIn, bOut) != Overlaps(bIn, bOut, aIn, aOut) {
		t.Fatal("Overlaps is not symmetric")
	}
}
