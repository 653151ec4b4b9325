package handlers

import (
	"testing"
	"time"

	"github.com/kamaubrian/hoops_academy/models"
)

func TestTimeClockGate(t *testing.T) {
	now := time.Now()
	later := now.Add(time.Hour)
	timedIn := &models.CoachSessionTime{TimeIn: &now}
	timedOut := &models.CoachSessionTime{TimeIn: &now, TimeOut: &later}

	tests := []struct {
		name          string
		record        *models.CoachSessionTime
		sessionStatus models.SessionStatus
		assigned      bool
		wantIn        bool
		wantOut       bool
	}{
		{name: "fresh assigned scheduled", record: nil, sessionStatus: models.SessionScheduled, assigned: true, wantIn: true, wantOut: false},
		{name: "not assigned", record: nil, sessionStatus: models.SessionScheduled, assigned: false, wantIn: false, wantOut: false},
		{name: "session cancelled", record: nil, sessionStatus: models.SessionCancelled, assigned: true, wantIn: false, wantOut: false},
		{name: "session completed", record: nil, sessionStatus: models.SessionCompleted, assigned: true, wantIn: false, wantOut: false},
		{name: "timed in", record: timedIn, sessionStatus: models.SessionScheduled, assigned: true, wantIn: false, wantOut: true},
		{name: "timed in, session since completed", record: timedIn, sessionStatus: models.SessionCompleted, assigned: true, wantIn: false, wantOut: true},
		{name: "timed out is terminal", record: timedOut, sessionStatus: models.SessionScheduled, assigned: true, wantIn: false, wantOut: false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gotIn, gotOut := timeClockGate(tt.record, tt.sessionStatus, tt.assigned)
			if gotIn != tt.wantIn || gotOut != tt.wantOut {
				t.Errorf("timeClockGate(%s) = (%v, %v), want (%v, %v)", tt.name, gotIn, gotOut, tt.wantIn, tt.wantOut)
			}
		})
	}
}
