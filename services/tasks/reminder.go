package tasks

import (
	"encoding/json"
	"time"

	"github.com/hibiken/asynq"
)

const TypeReservationReminders = "reservation:reminders"

// ReminderSweepPayload selects the date to sweep. An empty Date means "the
// day the task runs", so a periodically scheduled sweep always targets the
// current day.
type ReminderSweepPayload struct {
	Date string `json:"date,omitempty"`
}

// NewReminderSweepTask builds a one-off sweep for a specific date, processed
// at fireAt.
func NewReminderSweepTask(date string, fireAt time.Time) (*asynq.Task, []asynq.Option, error) {
	b, err := json.Marshal(ReminderSweepPayload{Date: date})
	if err != nil {
		return nil, nil, err
	}
	task := asynq.NewTask(TypeReservationReminders, b)
	opts := []asynq.Option{asynq.ProcessAt(fireAt)}
	return task, opts, nil
}
