package services

import "testing"

func TestTimesOverlap(t *testing.T) {
	tests := []struct {
		name   string
		startA string
		endA   string
		startB string
		endB   string
		want   bool
	}{
		{name: "partial overlap at end", startA: "10:00", endA: "11:00", startB: "10:30", endB: "11:30", want: true},
		{name: "partial overlap at start", startA: "10:30", endA: "11:30", startB: "10:00", endB: "11:00", want: true},
		{name: "identical range", startA: "10:00", endA: "11:00", startB: "10:00", endB: "11:00", want: true},
		{name: "contained range", startA: "10:15", endA: "10:45", startB: "10:00", endB: "11:00", want: true},
		{name: "containing range", startA: "09:00", endA: "12:00", startB: "10:00", endB: "11:00", want: true},
		{name: "back to back, new after", startA: "11:00", endA: "12:00", startB: "10:00", endB: "11:00", want: false},
		{name: "back to back, new before", startA: "09:00", endA: "10:00", startB: "10:00", endB: "11:00", want: false},
		{name: "fully before", startA: "07:00", endA: "08:00", startB: "10:00", endB: "11:00", want: false},
		{name: "fully after", startA: "13:00", endA: "14:00", startB: "10:00", endB: "11:00", want: false},
		{name: "afternoon times", startA: "14:00", endA: "16:00", startB: "15:30", endB: "17:00", want: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := TimesOverlap(tt.startA, tt.endA, tt.startB, tt.endB); got != tt.want {
				t.Errorf("TimesOverlap(%s-%s, %s-%s) = %v, want %v", tt.startA, tt.endA, tt.startB, tt.endB, got, tt.want)
			}
		})
	}
}
