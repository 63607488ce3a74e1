package schedule

import (
	"context"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"

	"weather-story/internal/domain/usecase/story"
	"weather-story/pkg/log"
	"weather-story/pkg/msg"
)

type SessionScheduler struct {
	cron    *cron.Cron
	expr    string
	useCase story.UseCase
}

func NewSessionScheduler(expr string, useCase story.UseCase) *SessionScheduler {
	return &SessionScheduler{cron: cron.New(), expr: expr, useCase: useCase}
}

// InitSessionScheduleTasks registers the purge job and starts the scheduler
func (scheduler *SessionScheduler) InitSessionScheduleTasks() error {
	if _, err := scheduler.cron.AddFunc(scheduler.expr, scheduler.PurgeExpiredSessions); err != nil {
		return err
	}

	scheduler.cron.Start()
	return nil
}

// Stop waits for a running purge to finish
func (scheduler *SessionScheduler) Stop() {
	<-scheduler.cron.Stop().Done()
}

func (scheduler *SessionScheduler) PurgeExpiredSessions() {
	log.Debug(msg.GetMessage("session.cron.start"))

	purged, err := scheduler.useCase.PurgeExpired(context.Background())
	if err != nil {
		log.Error(msg.GetMessage("session.error.purge-failed", err), zap.Error(err))
		return
	}

	log.Info(msg.GetMessage("session.cron.end", purged), zap.Int("purged", purged))
}
