package cron

import (
	"time"

	"github.com/hibiken/asynq"

	"reservas/config"
	"reservas/services/tasks"
)

// SweepEnqueuer submits one-off reminder sweeps to the worker queue, outside
// the daily schedule (e.g. re-running a sweep after an outage).
type SweepEnqueuer interface {
	EnqueueSweep(date string, fireAt time.Time) error
}

type AsynqSweepEnqueuer struct {
	client *asynq.Client
}

func NewSweepEnqueuer() *AsynqSweepEnqueuer {
	return &AsynqSweepEnqueuer{client: asynq.NewClient(asynq.RedisClientOpt{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisReminderQueueDB,
	})}
}

func (e *AsynqSweepEnqueuer) EnqueueSweep(date string, fireAt time.Time) error {
	task, opts, err := tasks.NewReminderSweepTask(date, fireAt)
	if err != nil {
		return err
	}
	_, err = e.client.Enqueue(task, opts...)
	return err
}
