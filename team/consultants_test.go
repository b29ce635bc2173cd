package team

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestTeam_PreservesInputOrder(t *testing.T) {
	// Workers finish in reverse order: earlier jobs sleep longer
	tm := Team[int, int]{
		WorkerCount: 5,
		Worker: func(ctx context.Context, job int) (int, error) {
			time.Sleep(time.Duration(job) * 10 * time.Millisecond)
			return job * 2, nil
		},
	}

	results := tm.Run(context.Background(), []int{5, 4, 3, 2, 1})

	assert.Equal(t, []int{10, 8, 6, 4, 2}, results)
}

func TestTeam_FailedJobsLeaveZeroValue(t *testing.T) {
	tm := Team[int, string]{
		WorkerCount: 2,
		Worker: func(ctx context.Context, job int) (string, error) {
			if job%2 == 1 {
				return "", fmt.Errorf("job %d failed", job)
			}
			return fmt.Sprintf("ok-%d", job), nil
		},
	}

	results := tm.Run(context.Background(), []int{0, 1, 2, 3})

	assert.Equal(t, []string{"ok-0", "", "ok-2", ""}, results)
}

func TestTeam_WorkerCountCappedToJobs(t *testing.T) {
	tm := Team[int, int]{
		WorkerCount: 100,
		Worker: func(ctx context.Context, job int) (int, error) {
			return job + 1, nil
		},
	}

	results := tm.Run(context.Background(), []int{1, 2})

	assert.Equal(t, []int{2, 3}, results)
}

func TestTeam_NoJobs(t *testing.T) {
	tm := Team[int, int]{
		WorkerCount: 3,
		Worker: func(ctx context.Context, job int) (int, error) {
			return job, nil
		},
	}

	assert.Empty(t, tm.Run(context.Background(), nil))
}

func TestTeam_CancelledContextSkipsWork(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	ran := 0
	tm := Team[int, int]{
		WorkerCount: 2,
		Worker: func(ctx context.Context, job int) (int, error) {
			ran++
			return job, nil
		},
	}

	results := tm.Run(ctx, []int{1, 2, 3})

	assert.Equal(t, 0, ran)
	assert.Equal(t, []int{0, 0, 0}, results)
}
