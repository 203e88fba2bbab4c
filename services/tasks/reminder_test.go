package tasks

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/hibiken/asynq"
)

func TestNewReminderSweepTask(t *testing.T) {
	fireAt := time.Date(2026, 2, 10, 7, 0, 0, 0, time.UTC)
	task, opts, err := NewReminderSweepTask("2026-02-10", fireAt)
	if err != nil {
		t.Fatal(err)
	}
	if task.Type() != TypeReservationReminders {
		t.Errorf("task type = %q", task.Type())
	}

	var p ReminderSweepPayload
	if err := json.Unmarshal(task.Payload(), &p); err != nil {
		t.Fatal(err)
	}
	if p.Date != "2026-02-10" {
		t.Errorf("payload date = %q", p.Date)
	}

	if len(opts) != 1 || opts[0].Type() != asynq.ProcessAtOpt {
		t.Errorf("opts = %v, want a single ProcessAt", opts)
	}
	if at, ok := opts[0].Value().(time.Time); !ok || !at.Equal(fireAt) {
		t.Errorf("ProcessAt = %v, want %v", opts[0].Value(), fireAt)
	}
}

func TestReminderSweepPayloadEmptyDateOmitted(t *testing.T) {
	task, _, err := NewReminderSweepTask("", time.Now())
	if err != nil {
		t.Fatal(err)
	}
	// An empty date means "the day the task runs" and stays out of the JSON.
	if string(task.Payload()) != "{}" {
		t.Errorf("payload = %s", task.Payload())
	}
}
