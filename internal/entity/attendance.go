package entity

import (
	"time"

	"github.com/gofrs/uuid/v5"
)

type AttendanceState string

const (
	AttendanceAbsent   AttendanceState = "absent"
	AttendanceSignedIn AttendanceState = "signed_in"
	AttendanceComplete AttendanceState = "complete"
)

// Attendance is the sign-in/sign-out pair of one guard on one calendar date.
type Attendance struct {
	ID          uuid.UUID  `json:"id"`
	GuardID     int64      `json:"guardId"`
	Date        time.Time  `json:"date"`
	SignedInAt  time.Time  `json:"signin"`
	SignedOutAt *time.Time `json:"signout,omitempty"`
}

func (a Attendance) State() AttendanceState {
	switch {
	case a.SignedInAt.IsZero():
		return AttendanceAbsent
	case a.SignedOutAt == nil:
		return AttendanceSignedIn
	default:
		return AttendanceComplete
	}
}

func (a Attendance) Worked() time.Duration {
	if a.SignedOutAt == nil {
		return 0
	}

	return a.SignedOutAt.Sub(a.SignedInAt)
}

type AttendanceFilter struct {
	GuardID *int64
	From    *time.Time
	To      *time.Time
}
