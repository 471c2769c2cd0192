package timeutil

import (
	"testing"
	"time"
)

func TestParseClock(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
		hour    int
		minute  int
	}{
		{"morning", "8:00 AM", false, 8, 0},
		{"afternoon", "4:30 PM", false, 16, 30},
		{"noon", "12:00 PM", false, 12, 0},
		{"midnight", "12:00 AM", false, 0, 0},
		{"surrounding whitespace", "  9:15 AM  ", false, 9, 15},
		{"24 hour clock rejected", "16:30", true, 0, 0},
		{"missing meridiem", "8:00", true, 0, 0},
		{"empty", "", true, 0, 0},
		{"garbage", "later", true, 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseClock(tt.input)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("ParseClock(%q) expected error, got %v", tt.input, got)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseClock(%q) unexpected error: %v", tt.input, err)
			}
			if got.Hour() != tt.hour || got.Minute() != tt.minute {
				t.Errorf("ParseClock(%q) = %02d:%02d, expected %02d:%02d",
					tt.input, got.Hour(), got.Minute(), tt.hour, tt.minute)
			}
		})
	}
}

func TestFormatClock(t *testing.T) {
	tests := []struct {
		hour     int
		minute   int
		expected string
	}{
		{8, 0, "8:00 AM"},
		{11, 30, "11:30 AM"},
		{16, 30, "4:30 PM"},
		{0, 5, "12:05 AM"},
	}

	for _, tt := range tests {
		moment := time.Date(2024, time.March, 1, tt.hour, tt.minute, 0, 0, time.UTC)
		if got := FormatClock(moment); got != tt.expected {
			t.Errorf("FormatClock(%02d:%02d) = %q, expected %q", tt.hour, tt.minute, got, tt.expected)
		}
	}
}

func TestTimestamp(t *testing.T) {
	moment := time.Date(2024, time.March, 1, 14, 15, 9, 0, time.UTC)
	if got := Timestamp(moment); got != "02:15:09 PM" {
		t.Errorf("Timestamp() = %q, expected %q", got, "02:15:09 PM")
	}

	morning := time.Date(2024, time.March, 1, 9, 0, 0, 0, time.UTC)
	if got := Timestamp(morning); got != "09:00:00 AM" {
		t.Errorf("Timestamp() = %q, expected %q", got, "09:00:00 AM")
	}
}

func TestClockRoundTrip(t *testing.T) {
	parsed, err := ParseClock("4:30 PM")
	if err != nil {
		t.Fatalf("ParseClock failed: %v", err)
	}
	if got := FormatClock(parsed); got != "4:30 PM" {
		t.Errorf("round trip = %q, expected %q", got, "4:30 PM")
	}
}
