package cron

import (
	"context"
	"encoding/json"
	"log"
	"time"

	"spacehub/config"
	"spacehub/database/repository/notificationrepo"
	"spacehub/services/notification"

	"github.com/go-redis/redis/v8"
	"github.com/hibiken/asynq"
)

// InitNotificationWorker runs the async delivery worker in background.
func InitNotificationWorker(repo notificationrepo.NotificationRepository, pusher notification.Pusher) {
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
	mux.HandleFunc(notification.TypeNotificationDeliver, handleDeliveryTask(repo, pusher))

	// Start Redis health monitor
	go monitorRedisConnection()

	// Start async worker with retry logic
	go func() {
		log.Println("[NotificationWorker] Starting async worker...")
		const maxAttempts = 5

		for attempts := 1; attempts <= maxAttempts; attempts++ {
			if err := srv.Run(mux); err != nil {
				log.Printf("[NotificationWorker] Attempt %d/%d failed to start worker: %v", attempts, maxAttempts, err)

				if attempts == maxAttempts {
					log.Fatal("[NotificationWorker] Max retry attempts reached. Exiting.")
				}
				time.Sleep(time.Duration(attempts*2) * time.Second) // Exponential backoff
			} else {
				break
			}
		}
	}()
}

// handleDeliveryTask unpacks the queued task and hands it to deliver with the
// attempt counters asynq tracks for the task.
func handleDeliveryTask(repo notificationrepo.NotificationRepository, pusher notification.Pusher) asynq.HandlerFunc {
	return func(ctx context.Context, task *asynq.Task) error {
		var p notification.TaskPayload
		if err := json.Unmarshal(task.Payload(), &p); err != nil {
			log.Printf("[NotificationWorker] Invalid payload: %v", err)
			return err
		}

		retried, _ := asynq.GetRetryCount(ctx)
		maxRetry, _ := asynq.GetMaxRetry(ctx)
		return deliver(ctx, repo, pusher, p.NotificationID, retried, maxRetry)
	}
}

// deliver looks up the stored notification and pushes it. A failed attempt is
// recorded on the stored notification; the attempt that exhausts the retry
// allowance marks it failed terminally.
func deliver(ctx context.Context, repo notificationrepo.NotificationRepository, pusher notification.Pusher, notificationID string, retried, maxRetry int) error {
	rec, err := repo.GetByID(ctx, notificationID)
	if err != nil {
		log.Printf("[NotificationWorker] Unknown notification %s: %v", notificationID, err)
		return nil // nothing to retry against
	}

	if err := pusher.Push(ctx, *rec); err != nil {
		terminal := retried >= maxRetry
		if markErr := repo.MarkAttempt(ctx, rec.ID, err.Error(), terminal); markErr != nil {
			log.Printf("[NotificationWorker] Failed to record attempt for %s: %v", rec.ID, markErr)
		}
		log.Printf("[NotificationWorker] Delivery failed for %s (attempt %d/%d): %v",
			rec.ID, retried+1, maxRetry+1, err)
		return err
	}

	if err := repo.MarkSent(ctx, rec.ID); err != nil {
		log.Printf("[NotificationWorker] Failed to mark %s sent: %v", rec.ID, err)
	}
	return nil
}

// monitorRedisConnection pings Redis periodically to detect failures at runtime.
func monitorRedisConnection() {
	client := redis.NewClient(&redis.Options{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPass,
		DB:       config.AppConfig.RedisQueueDB,
	})

	ctx := context.Background()

	for {
		if err := client.Ping(ctx).Err(); err != nil {
			log.Printf("[NotificationWorker] Redis connection lost: %v", err)
		}
		time.Sleep(10 * time.Second)
	}
}
