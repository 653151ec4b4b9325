package models

import (
	"time"

	"github.com/google/uuid"
)

type SessionStatus string

const (
	SessionScheduled SessionStatus = "scheduled"
	SessionCompleted SessionStatus = "completed"
	SessionCancelled SessionStatus = "cancelled"
)

type DayOfWeek string

const (
	Monday    DayOfWeek = "monday"
	Tuesday   DayOfWeek = "tuesday"
	Wednesday DayOfWeek = "wednesday"
	Thursday  DayOfWeek = "thursday"
	Friday    DayOfWeek = "friday"
	Saturday  DayOfWeek = "saturday"
	Sunday    DayOfWeek = "sunday"
)

var dayOfWeekByWeekday = map[time.Weekday]DayOfWeek{
	time.Monday:    Monday,
	time.Tuesday:   Tuesday,
	time.Wednesday: Wednesday,
	time.Thursday:  Thursday,
	time.Friday:    Friday,
	time.Saturday:  Saturday,
	time.Sunday:    Sunday,
}

func DayOfWeekFromDate(date time.Time) DayOfWeek {
	return dayOfWeekByWeekday[date.Weekday()]
}

// TrainingSession keeps its date and wall-clock times separate: Date is a
// plain calendar day and StartTime/EndTime are zero-padded "HH:MM" strings,
// so time ranges on the same day compare lexically.
type TrainingSession struct {
	ID        uuid.UUID     `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	Date      time.Time     `gorm:"type:date;not null;index" json:"date"`
	DayOfWeek DayOfWeek     `gorm:"size:10;not null" json:"day_of_week"`
	StartTime string        `gorm:"size:5;not null" json:"start_time"`
	EndTime   string        `gorm:"size:5;not null" json:"end_time"`
	BranchID  uuid.UUID     `gorm:"not null;index" json:"branch_id"`
	Status    SessionStatus `gorm:"size:20;not null;default:'scheduled'" json:"status"`

	PackageType *string `gorm:"size:100" json:"package_type"`
	Notes       *string `gorm:"type:text" json:"notes"`

	Branch       Branch               `gorm:"foreignkey:BranchID" json:"branch,omitempty"`
	Coaches      []SessionCoach       `gorm:"foreignkey:SessionID" json:"coaches,omitempty"`
	Participants []SessionParticipant `gorm:"foreignkey:SessionID" json:"participants,omitempty"`
	Attendance   []AttendanceRecord   `gorm:"foreignkey:SessionID" json:"attendance,omitempty"`
	TimeRecords  []CoachSessionTime   `gorm:"foreignkey:SessionID" json:"time_records,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type SessionCoach struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	SessionID uuid.UUID `gorm:"not null;uniqueIndex:idx_session_coach" json:"session_id"`
	CoachID   uuid.UUID `gorm:"not null;uniqueIndex:idx_session_coach" json:"coach_id"`

	Coach Coach `gorm:"foreignkey:CoachID" json:"coach,omitempty"`

	CreatedAt time.Time `json:"created_at"`
}

type SessionParticipant struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	SessionID uuid.UUID `gorm:"not null;uniqueIndex:idx_session_participant" json:"session_id"`
	StudentID uuid.UUID `gorm:"not null;uniqueIndex:idx_session_participant" json:"student_id"`

	Student Student `gorm:"foreignkey:StudentID" json:"student,omitempty"`

	CreatedAt time.Time `json:"created_at"`
}
