package job_test

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/samandr77/guardbook/pkg/job"
)

func TestService(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())

	var runs, failures, disabled atomic.Int32

	s := job.NewService().
		RegisterJob("wages", 10*time.Millisecond, func(context.Context) error {
			runs.Add(1)
			return nil
		}).
		RegisterJob("flaky", 10*time.Millisecond, func(context.Context) error {
			if failures.Add(1) == 1 {
				panic("first run panics")
			}

			return errors.New("always fails")
		}).
		TryRegisterJob(false, "disabled", 10*time.Millisecond, func(context.Context) error {
			disabled.Add(1)
			return nil
		})

	s.Start(ctx)

	require.Eventually(t, func() bool {
		return runs.Load() >= 3 && failures.Load() >= 3
	}, time.Second, 5*time.Millisecond)

	cancel()
	s.Stop()

	require.Zero(t, disabled.Load())
}
