package models

import (
	"time"

	"github.com/google/uuid"
)

type TimeRecordState string

const (
	TimeRecordNotStarted TimeRecordState = "not-started"
	TimeRecordTimedIn    TimeRecordState = "timed-in"
	TimeRecordTimedOut   TimeRecordState = "timed-out"
)

// CoachSessionTime is a coach's clock-in/clock-out record for one session.
// At most one row exists per (session, coach) pair.
type CoachSessionTime struct {
	ID        uuid.UUID  `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	SessionID uuid.UUID  `gorm:"not null;uniqueIndex:idx_session_coach_time" json:"session_id"`
	CoachID   uuid.UUID  `gorm:"not null;uniqueIndex:idx_session_coach_time" json:"coach_id"`
	TimeIn    *time.Time `json:"time_in"`
	TimeOut   *time.Time `json:"time_out"`

	Session TrainingSession `gorm:"foreignkey:SessionID" json:"session,omitempty"`
	Coach   Coach           `gorm:"foreignkey:CoachID" json:"coach,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (t *CoachSessionTime) State() TimeRecordState {
	switch {
	case t == nil || t.TimeIn == nil:
		return TimeRecordNotStarted
	case t.TimeOut == nil:
		return TimeRecordTimedIn
	default:
		return TimeRecordTimedOut
	}
}

func (t *CoachSessionTime) CanTimeIn() bool {
	return t.State() == TimeRecordNotStarted
}

// CanTimeOut reports whether the coach has clocked in but not out yet.
// Once TimeOut is set the record is terminal.
func (t *CoachSessionTime) CanTimeOut() bool {
	return t.State() == TimeRecordTimedIn
}
