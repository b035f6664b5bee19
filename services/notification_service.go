package services

import (
	"sync"
	"time"

	"go.uber.org/zap"
)

// UnlockNotification is one "achievement unlocked" toast to deliver.
type UnlockNotification struct {
	UserID        uint
	AchievementID string
	Name          string
	XPReward      int
}

// DispatchUnlockNotifications pushes unlock toasts through a bounded
// worker pool so a burst of unlocks cannot flood the delivery channel.
func DispatchUnlockNotifications(jobs []UnlockNotification, workerCount int, logger *zap.Logger) {
	if len(jobs) == 0 {
		return
	}
	if workerCount < 1 {
		workerCount = 1
	}

	jobChan := make(chan UnlockNotification, len(jobs))
	resultChan := make(chan error, len(jobs))
	var wg sync.WaitGroup

	for i := 0; i < workerCount; i++ {
		wg.Add(1)
		go unlockNotificationWorker(i, jobChan, resultChan, &wg, logger)
	}

	for _, job := range jobs {
		jobChan <- job
	}
	close(jobChan)

	go func() {
		wg.Wait()
		close(resultChan)
	}()

	successCount := 0
	errorCount := 0
	for err := range resultChan {
		if err != nil {
			errorCount++
		} else {
			successCount++
		}
	}

	logger.Info("unlock_notifications_processed",
		zap.Int("success", successCount),
		zap.Int("errors", errorCount),
		zap.Int("workers", workerCount),
	)
}

func unlockNotificationWorker(id int, jobs <-chan UnlockNotification, results chan<- error, wg *sync.WaitGroup, logger *zap.Logger) {
	defer wg.Done()

	for job := range jobs {
		// Delivery is currently log-only; the web client renders toasts
		// from the toggle response. TODO: wire a push provider here.
		time.Sleep(10 * time.Millisecond)

		logger.Info("achievement_unlocked_notification",
			zap.Int("worker_id", id),
			zap.Uint("user_id", job.UserID),
			zap.String("achievement_id", job.AchievementID),
			zap.String("name", job.Name),
			zap.Int("xp_reward", job.XPReward),
		)

		results <- nil
	}
}
