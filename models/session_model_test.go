package models

import (
	"testing"
	"time"
)

func TestDayOfWeekFromDate(t *testing.T) {
	tests := []struct {
		date string
		want DayOfWeek
	}{
		{date: "2024-06-01", want: Saturday},
		{date: "2024-06-02", want: Sunday},
		{date: "2024-06-03", want: Monday},
		{date: "2024-06-04", want: Tuesday},
		{date: "2024-06-05", want: Wednesday},
		{date: "2024-06-06", want: Thursday},
		{date: "2024-06-07", want: Friday},
	}
	for _, tt := range tests {
		date, err := time.Parse("2006-01-02", tt.date)
		if err != nil {
			t.Fatalf("bad test date %q: %v", tt.date, err)
		}
		if got := DayOfWeekFromDate(date); got != tt.want {
			t.Errorf("DayOfWeekFromDate(%s) = %v, want %v", tt.date, got, tt.want)
		}
	}
}
