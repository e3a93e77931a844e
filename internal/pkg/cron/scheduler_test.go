package cron

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestRunOnce(t *testing.T) {
	s := NewScheduler()

	ran := make([]string, 0, 2)
	s.AddJob("first", time.Hour, func(ctx context.Context) error {
		ran = append(ran, "first")
		return nil
	})
	s.AddJob("second", time.Hour, func(ctx context.Context) error {
		ran = append(ran, "second")
		return errors.New("boom")
	})

	// A failing job must not stop the others.
	s.RunOnce(context.Background())
	assert.Equal(t, []string{"first", "second"}, ran)
}

func TestStartStop(t *testing.T) {
	s := NewScheduler()

	done := make(chan struct{})
	s.AddJob("once", time.Hour, func(ctx context.Context) error {
		close(done)
		return nil
	})

	s.Start()
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("job did not run on start")
	}
	s.Stop()
}
