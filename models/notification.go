package models

import "time"

// NotificationKind matches the original UI styling hooks.
type NotificationKind string

const (
	NotifInfo    NotificationKind = "info"
	NotifSuccess NotificationKind = "success"
	NotifWarning NotificationKind = "warning"
	NotifError   NotificationKind = "error"
)

// Notification is an in-app message for one user.
type Notification struct {
	ID        string           `bson:"id" json:"id"`
	UserID    string           `bson:"user_id" json:"user_id"`
	Title     string           `bson:"title" json:"title"`
	Message   string           `bson:"message" json:"message"`
	Kind      NotificationKind `bson:"kind" json:"kind"`
	Link      string           `bson:"link,omitempty" json:"link,omitempty"`
	Read      bool             `bson:"read" json:"read"`
	CreatedAt time.Time        `bson:"created_at" json:"created_at"`
}

// User is the minimal projection of an account this engine needs: identity
// and an email address for confirmations. Account management itself lives in
// the session/auth collaborator.
type User struct {
	ID    string `bson:"id" json:"id"`
	Name  string `bson:"name" json:"name"`
	Email string `bson:"email" json:"email"`
	Role  string `bson:"role" json:"role"`
}
