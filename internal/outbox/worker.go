// Package outbox retries profile mirror writes that failed during signup.
// Entries are stored in Firestore and drained by a cron-scheduled worker.
package outbox

import (
	"context"
	"time"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"

	"github.com/HGWhappuarachchi/FurnishDesignStudio/internal/db"
	"github.com/HGWhappuarachchi/FurnishDesignStudio/internal/models"
)

const drainBatchSize = 50

// Worker periodically drains pending profile-mirror outbox entries.
type Worker struct {
	outbox      db.OutboxRepository
	userRepo    db.UserRepository
	logger      *zap.Logger
	schedule    string
	maxAttempts int
	cron        *cron.Cron
}

// NewWorker creates a Worker. schedule is a cron expression understood by
// robfig/cron, e.g. "@every 1m". Entries that fail maxAttempts times are
// marked failed and never retried again.
func NewWorker(outbox db.OutboxRepository, userRepo db.UserRepository, schedule string, maxAttempts int, logger *zap.Logger) *Worker {
	return &Worker{
		outbox:      outbox,
		userRepo:    userRepo,
		logger:      logger,
		schedule:    schedule,
		maxAttempts: maxAttempts,
	}
}

// Start schedules the drain loop. It returns an error if the cron
// expression does not parse.
func (w *Worker) Start() error {
	c := cron.New()
	_, err := c.AddFunc(w.schedule, func() {
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()
		w.Drain(ctx)
	})
	if err != nil {
		return err
	}
	c.Start()
	w.cron = c
	w.logger.Info("Profile mirror outbox worker started", zap.String("schedule", w.schedule))
	return nil
}

// Stop halts the schedule and waits for a running drain to finish.
func (w *Worker) Stop() {
	if w.cron != nil {
		<-w.cron.Stop().Done()
	}
}

// Drain retries every pending entry once. Entries whose mirror write
// succeeds are marked done; entries that exhaust their attempts are marked
// failed.
func (w *Worker) Drain(ctx context.Context) {
	entries, err := w.outbox.ListPending(ctx, drainBatchSize)
	if err != nil {
		w.logger.Error("Failed to list pending outbox entries", zap.Error(err))
		return
	}
	if len(entries) == 0 {
		return
	}

	w.logger.Info("Draining profile mirror outbox", zap.Int("pending", len(entries)))
	for _, entry := range entries {
		w.retry(ctx, entry)
	}
}

func (w *Worker) retry(ctx context.Context, entry *models.ProfileMirrorEntry) {
	user := &models.User{
		ID:          entry.UID,
		Email:       entry.Email,
		DisplayName: entry.DisplayName,
	}

	err := w.userRepo.Upsert(ctx, user)
	if err == nil {
		entry.Status = models.MirrorStatusDone
		entry.LastError = ""
		if updErr := w.outbox.Update(ctx, entry); updErr != nil {
			w.logger.Error("Failed to mark outbox entry done",
				zap.String("id", entry.ID), zap.Error(updErr))
		}
		return
	}

	entry.Attempts++
	entry.LastError = err.Error()
	if entry.Attempts >= w.maxAttempts {
		entry.Status = models.MirrorStatusFailed
		w.logger.Error("Profile mirror write exhausted its attempts",
			zap.String("uid", entry.UID), zap.Int("attempts", entry.Attempts), zap.Error(err))
	} else {
		w.logger.Warn("Profile mirror retry failed",
			zap.String("uid", entry.UID), zap.Int("attempts", entry.Attempts), zap.Error(err))
	}
	if updErr := w.outbox.Update(ctx, entry); updErr != nil {
		w.logger.Error("Failed to update outbox entry",
			zap.String("id", entry.ID), zap.Error(updErr))
	}
}
