package utils

import (
	"testing"
	"time"
)

func TestFormatTimestamp(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{name: "morning", in: "2024-06-01T10:00:00Z", want: "06/01/2024 10:00 AM"},
		{name: "afternoon", in: "2024-06-01T16:45:00Z", want: "06/01/2024 04:45 PM"},
		{name: "midnight", in: "2024-12-31T00:00:00Z", want: "12/31/2024 12:00 AM"},
		{name: "noon", in: "2024-03-15T12:00:00Z", want: "03/15/2024 12:00 PM"},
		{name: "non-utc input is normalized", in: "2024-06-01T13:00:00+03:00", want: "06/01/2024 10:00 AM"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ts, err := time.Parse(time.RFC3339, tt.in)
			if err != nil {
				t.Fatalf("bad test input %q: %v", tt.in, err)
			}
			if got := FormatTimestamp(ts); got != tt.want {
				t.Errorf("FormatTimestamp(%s) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestFormatClock(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{in: "10:00", want: "10:00 AM"},
		{in: "14:30", want: "2:30 PM"},
		{in: "00:05", want: "12:05 AM"},
		{in: "12:00", want: "12:00 PM"},
		{in: "garbage", want: "garbage"},
	}
	for _, tt := range tests {
		if got := FormatClock(tt.in); got != tt.want {
			t.Errorf("FormatClock(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
