package handlers

import (
	"testing"

	"github.com/kamaubrian/hoops_academy/models"
)

func TestCreditDelta(t *testing.T) {
	tests := []struct {
		name     string
		previous models.AttendanceStatus
		next     models.AttendanceStatus
		want     int
	}{
		{name: "pending marked present consumes a credit", previous: models.AttendancePending, next: models.AttendancePresent, want: -1},
		{name: "absent corrected to present consumes a credit", previous: models.AttendanceAbsent, next: models.AttendancePresent, want: -1},
		{name: "present reverted to pending restores the credit", previous: models.AttendancePresent, next: models.AttendancePending, want: 1},
		{name: "present corrected to absent restores the credit", previous: models.AttendancePresent, next: models.AttendanceAbsent, want: 1},
		{name: "re-marking present is a no-op", previous: models.AttendancePresent, next: models.AttendancePresent, want: 0},
		{name: "pending to absent touches no credit", previous: models.AttendancePending, next: models.AttendanceAbsent, want: 0},
		{name: "absent back to pending touches no credit", previous: models.AttendanceAbsent, next: models.AttendancePending, want: 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := creditDelta(tt.previous, tt.next); got != tt.want {
				t.Errorf("creditDelta(%s, %s) = %d, want %d", tt.previous, tt.next, got, tt.want)
			}
		})
	}
}

// Dropping a participant from a session reverts their mark to pending, so
// a student already marked present must get their session credit back.
func TestCreditDeltaOnParticipantRemoval(t *testing.T) {
	if got := creditDelta(models.AttendancePresent, models.AttendancePending); got != 1 {
		t.Errorf("removing a present participant: creditDelta = %d, want 1", got)
	}
	if got := creditDelta(models.AttendancePending, models.AttendancePending); got != 0 {
		t.Errorf("removing an unmarked participant: creditDelta = %d, want 0", got)
	}
	if got := creditDelta(models.AttendanceAbsent, models.AttendancePending); got != 0 {
		t.Errorf("removing an absent participant: creditDelta = %d, want 0", got)
	}
}
