package domain

import (
	"errors"
	"time"
)

// ApplicationStatus is the lifecycle state of a job application.
type ApplicationStatus string

const (
	StatusApplied      ApplicationStatus = "Applied"
	StatusInterviewing ApplicationStatus = "Interviewing"
	StatusOffer        ApplicationStatus = "Offer"
	StatusRejected     ApplicationStatus = "Rejected"
	StatusAccepted     ApplicationStatus = "Accepted"
)

// AppliedDateFormat is the only accepted encoding of the applied date.
// The field is stored as text in Mongo; lexicographic order on this
// format matches chronological order, which the list sort relies on.
const AppliedDateFormat = "2006-01-02"

// Statuses lists every valid status label, in display order.
var Statuses = []ApplicationStatus{
	StatusApplied,
	StatusInterviewing,
	StatusOffer,
	StatusRejected,
	StatusAccepted,
}

// ValidStatus reports whether s is one of the closed status labels.
func ValidStatus(s string) bool {
	for _, st := range Statuses {
		if string(st) == s {
			return true
		}
	}
	return false
}

var (
	ErrUserExists          = errors.New("username already taken")
	ErrUserNotFound        = errors.New("user not found")
	ErrInvalidCredentials  = errors.New("invalid credentials")
	ErrInvalidInput        = errors.New("invalid input")
	ErrApplicationNotFound = errors.New("application not found")
	ErrSessionNotFound     = errors.New("session not found")
)

// Application is one job-application record, always owned by exactly one user.
type Application struct {
	ID          string            `json:"id"`
	OwnerID     string            `json:"-"`
	Company     string            `json:"company"`
	Role        string            `json:"role"`
	Category    string            `json:"category,omitempty"`
	Location    string            `json:"location,omitempty"`
	Flexibility string            `json:"flexibility,omitempty"`
	Status      ApplicationStatus `json:"status"`
	AppliedDate string            `json:"applied_date"`
	Link        string            `json:"link,omitempty"`
	CreatedAt   time.Time         `json:"created_at"`
}

// AppliedOn parses the text-encoded applied date. Callers decide what an
// unparsable date means; the dashboard skips such records, it never fails.
func (a *Application) AppliedOn() (time.Time, error) {
	return time.Parse(AppliedDateFormat, a.AppliedDate)
}
