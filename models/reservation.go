package models

import "time"

// ReservationStatus is the lifecycle state of a reservation.
type ReservationStatus string

const (
	StatusPending  ReservationStatus = "pending"
	StatusApproved ReservationStatus = "approved"
	StatusRejected ReservationStatus = "rejected"
)

// ActiveStatuses are the states that block a space. Rejected reservations
// never do.
var ActiveStatuses = []ReservationStatus{StatusPending, StatusApproved}

// Reservation is an ad-hoc booking of a space for one date and time window.
type Reservation struct {
	ID               string            `bson:"id" json:"id"`
	UserID           string            `bson:"user_id" json:"user_id"`
	SpaceID          string            `bson:"space_id" json:"space_id"`
	Date             string            `bson:"date" json:"date"` // YYYY-MM-DD
	StartTime        string            `bson:"start_time" json:"start_time"`
	EndTime          string            `bson:"end_time" json:"end_time"`
	Justification    string            `bson:"justification" json:"justification"`
	Status           ReservationStatus `bson:"status" json:"status"`
	ReviewedBy       string            `bson:"reviewed_by,omitempty" json:"reviewed_by,omitempty"`
	RejectionReason  string            `bson:"rejection_reason,omitempty" json:"rejection_reason,omitempty"`
	ConfirmationSent bool              `bson:"confirmation_sent" json:"confirmation_sent"`
	ReminderSent     bool              `bson:"reminder_sent" json:"reminder_sent"`
	CreatedAt        time.Time         `bson:"created_at" json:"created_at"`
}

// Interval returns the reservation's time window.
func (r Reservation) Interval() (TimeInterval, error) {
	return NewTimeInterval(r.StartTime, r.EndTime)
}

// ReservationDeletion is an audit record written whenever a reservation is
// removed, either by an admin or by its owner.
type ReservationDeletion struct {
	ID          string      `bson:"id" json:"id"`
	Reservation Reservation `bson:"reservation" json:"reservation"`
	DeletedBy   string      `bson:"deleted_by,omitempty" json:"deleted_by,omitempty"` // empty when the owner cancelled
	Reason      string      `bson:"reason" json:"reason"`
	DeletedAt   time.Time   `bson:"deleted_at" json:"deleted_at"`
}
