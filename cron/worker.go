package cron

import (
	"context"
	"encoding/json"
	"log"
	"time"

	"noxshift/config"
	"noxshift/models"
	"noxshift/services/progression"

	"github.com/hibiken/asynq"
)

const TypeShiftCompleted = "shift:completed"

// Enqueuer hands shift-completion tasks to the reward queue.
type Enqueuer struct {
	client *asynq.Client
}

// NewEnqueuer builds an Enqueuer against the configured Redis queue.
func NewEnqueuer() *Enqueuer {
	return &Enqueuer{
		client: asynq.NewClient(asynq.RedisClientOpt{
			Addr:     config.AppConfig.RedisAddr,
			Password: config.AppConfig.RedisPass,
			DB:       config.AppConfig.RedisQueueDB,
		}),
	}
}

// EnqueueShiftCompleted queues the XP award for a completed shift.
func (e *Enqueuer) EnqueueShiftCompleted(shiftID, employeeName string) error {
	payload, err := json.Marshal(models.ShiftCompletedPayload{
		ShiftID:      shiftID,
		EmployeeName: employeeName,
	})
	if err != nil {
		return err
	}
	_, err = e.client.Enqueue(asynq.NewTask(TypeShiftCompleted, payload), asynq.MaxRetry(3))
	return err
}

// InitRewardWorker runs the async worker in background.
func InitRewardWorker(progressionSvc progression.ProgressionService) {
	redisOpts := asynq.RedisClientOpt{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPass,
		DB:       config.AppConfig.RedisQueueDB,
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
	mux.HandleFunc(TypeShiftCompleted, handleShiftCompletedTask(progressionSvc))

	// Start async worker with retry logic
	go func() {
		log.Println("[RewardWorker] starting async worker...")
		const maxAttempts = 5

		for attempts := 1; attempts <= maxAttempts; attempts++ {
			if err := srv.Run(mux); err != nil {
				log.Printf("[RewardWorker] attempt %d/%d failed to start worker: %v", attempts, maxAttempts, err)

				if attempts == maxAttempts {
					log.Fatal("[RewardWorker] max retry attempts reached, exiting")
				}
				time.Sleep(time.Duration(attempts*2) * time.Second)
			} else {
				break
			}
		}
	}()
}

func handleShiftCompletedTask(progressionSvc progression.ProgressionService) asynq.HandlerFunc {
	return func(ctx context.Context, task *asynq.Task) error {
		var p models.ShiftCompletedPayload
		if err := json.Unmarshal(task.Payload(), &p); err != nil {
			log.Printf("[RewardWorker] invalid payload: %v", err)
			return err
		}

		amount := config.AppConfig.XPShiftCompleted
		entry, err := progressionSvc.AwardXP(ctx, p.EmployeeName, amount, "shift completed: "+p.ShiftID)
		if err != nil {
			log.Printf("[RewardWorker] failed to award XP for shift %s: %v", p.ShiftID, err)
			return err
		}

		log.Printf("[RewardWorker] awarded %d XP to %s for shift %s (balance %d)",
			amount, p.EmployeeName, p.ShiftID, entry.CurrentXP)
		return nil
	}
}
