package cron

import (
	"context"
	"encoding/json"
	"time"

	"github.com/hibiken/asynq"
	"go.uber.org/zap"

	"reservas/config"
	"reservas/services/reservation"
	"reservas/services/tasks"
	"reservas/utils"
)

// InitReminderWorker starts the background asynq worker that delivers
// reservation reminder emails, plus the daily scheduler that enqueues the
// sweep each morning.
func InitReminderWorker(resSvc reservation.ReservationService) {
	logger := utils.GetLogger().Named("reminder-worker")

	redisOpts := asynq.RedisClientOpt{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisReminderQueueDB,
	}

	srv := asynq.NewServer(
		redisOpts,
		asynq.Config{
			Concurrency: 10,
			Queues: map[string]int{
				"default": 1,
			},
		},
	)

	mux := asynq.NewServeMux()
	mux.HandleFunc(tasks.TypeReservationReminders, handleReminderSweep(resSvc, logger))

	go runScheduler(redisOpts, logger)

	go func() {
		logger.Info("starting async worker")
		const maxAttempts = 5

		for attempts := 1; attempts <= maxAttempts; attempts++ {
			if err := srv.Run(mux); err != nil {
				logger.Error("worker start failed",
					zap.Int("attempt", attempts), zap.Int("maxAttempts", maxAttempts), zap.Error(err))

				if attempts == maxAttempts {
					logger.Fatal("max retry attempts reached")
				}
				time.Sleep(time.Duration(attempts*2) * time.Second)
			} else {
				break
			}
		}
	}()
}

func handleReminderSweep(resSvc reservation.ReservationService, logger *zap.Logger) asynq.HandlerFunc {
	return func(ctx context.Context, task *asynq.Task) error {
		var p tasks.ReminderSweepPayload
		if err := json.Unmarshal(task.Payload(), &p); err != nil {
			logger.Error("invalid sweep payload", zap.Error(err))
			return err
		}

		date := p.Date
		if date == "" {
			date = time.Now().Format("2006-01-02")
		}

		sent, err := resSvc.SendReminders(ctx, date)
		if err != nil {
			logger.Error("reminder sweep failed", zap.String("date", date), zap.Error(err))
			return err
		}
		logger.Info("reminder sweep done", zap.String("date", date), zap.Int("sent", sent))
		return nil
	}
}

// runScheduler enqueues the sweep every morning at 07:00; the handler resolves
// the date at run time.
func runScheduler(redisOpts asynq.RedisClientOpt, logger *zap.Logger) {
	scheduler := asynq.NewScheduler(redisOpts, &asynq.SchedulerOpts{})

	payload, err := json.Marshal(tasks.ReminderSweepPayload{})
	if err != nil {
		logger.Error("scheduler payload marshal failed", zap.Error(err))
		return
	}
	if _, err := scheduler.Register("0 7 * * *", asynq.NewTask(tasks.TypeReservationReminders, payload)); err != nil {
		logger.Error("scheduler registration failed", zap.Error(err))
		return
	}
	if err := scheduler.Run(); err != nil {
		logger.Error("scheduler stopped", zap.Error(err))
	}
}
