package models

import (
	"testing"
	"time"
)

func TestCoachSessionTimeState(t *testing.T) {
	now := time.Now()
	later := now.Add(90 * time.Minute)

	tests := []struct {
		name       string
		record     *CoachSessionTime
		wantState  TimeRecordState
		canTimeIn  bool
		canTimeOut bool
	}{
		{name: "no record", record: nil, wantState: TimeRecordNotStarted, canTimeIn: true, canTimeOut: false},
		{name: "empty record", record: &CoachSessionTime{}, wantState: TimeRecordNotStarted, canTimeIn: true, canTimeOut: false},
		{name: "timed in", record: &CoachSessionTime{TimeIn: &now}, wantState: TimeRecordTimedIn, canTimeIn: false, canTimeOut: true},
		{name: "timed out", record: &CoachSessionTime{TimeIn: &now, TimeOut: &later}, wantState: TimeRecordTimedOut, canTimeIn: false, canTimeOut: false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.record.State(); got != tt.wantState {
				t.Errorf("State() = %v, want %v", got, tt.wantState)
			}
			if got := tt.record.CanTimeIn(); got != tt.canTimeIn {
				t.Errorf("CanTimeIn() = %v, want %v", got, tt.canTimeIn)
			}
			if got := tt.record.CanTimeOut(); got != tt.canTimeOut {
				t.Errorf("CanTimeOut() = %v, want %v", got, tt.canTimeOut)
			}
		})
	}
}

// A second time-in must stay blocked once the first one landed, and a
// completed record is terminal.
func TestTimeClockTransitionsAreOneWay(t *testing.T) {
	record := &CoachSessionTime{}

	if !record.CanTimeIn() {
		t.Fatal("fresh record should allow time-in")
	}

	now := time.Now()
	record.TimeIn = &now
	if record.CanTimeIn() {
		t.Error("time-in should not be allowed twice")
	}
	if !record.CanTimeOut() {
		t.Error("time-out should be allowed after time-in")
	}

	later := now.Add(time.Hour)
	record.TimeOut = &later
	if record.CanTimeIn() || record.CanTimeOut() {
		t.Error("timed-out record must be terminal")
	}
}
