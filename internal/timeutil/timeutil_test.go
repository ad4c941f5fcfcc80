package timeutil

import (
	"testing"
	"time"
)

func TestParseDate(t *testing.T) {
	parsed, err := ParseDate("2024-01-02")
	if err != nil {
		t.Fatalf("expected parse to succeed, got %v", err)
	}
	if got := FormatDate(parsed); got != "2024-01-02" {
		t.Fatalf("expected formatted date to round-trip, got %s", got)
	}
}

func TestLocalDateUsesLocation(t *testing.T) {
	// 03:00 UTC is still the previous evening on the east coast.
	now := time.Date(2024, 11, 5, 3, 0, 0, 0, time.UTC)
	loc := time.FixedZone("EST", -5*60*60)
	if got := LocalDate(now, loc); got != "2024-11-04" {
		t.Fatalf("expected previous local day, got %s", got)
	}
	if got := LocalDate(now, nil); got != "2024-11-05" {
		t.Fatalf("expected utc day for nil location, got %s", got)
	}
}

func TestLoadLocation(t *testing.T) {
	loc, err := LoadLocation("")
	if err != nil || loc != time.UTC {
		t.Fatalf("expected UTC for blank name, got %v %v", loc, err)
	}
	if _, err := LoadLocation("Not/AZone"); err == nil {
		t.Fatal("expected error for unknown zone")
	}
}
