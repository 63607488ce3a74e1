package schedule

import (
	"context"
	"errors"
	"testing"

	"weather-story/internal/domain/usecase/story"
)

type fakePurger struct {
	story.UseCase
	calls int
	err   error
}

func (f *fakePurger) PurgeExpired(context.Context) (int, error) {
	f.calls++
	return 3, f.err
}

func TestPurgeExpiredSessions(t *testing.T) {
	purger := &fakePurger{}
	scheduler := NewSessionScheduler("@every 5m", purger)

	scheduler.PurgeExpiredSessions()
	purger.err = errors.New("redis down")
	scheduler.PurgeExpiredSessions()

	if purger.calls != 2 {
		t.Fatalf("expected 2 purge calls, got %d", purger.calls)
	}
}

func TestInitSessionScheduleTasks(t *testing.T) {
	if err := NewSessionScheduler("not a cron expression", &fakePurger{}).InitSessionScheduleTasks(); err == nil {
		t.Fatal("expected invalid expression to be rejected")
	}

	scheduler := NewSessionScheduler("@every 5m", &fakePurger{})
	if err := scheduler.InitSessionScheduleTasks(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	scheduler.Stop()
}
