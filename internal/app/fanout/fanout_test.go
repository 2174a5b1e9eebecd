package fanout_test

import (
	"context"
	"errors"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/jsamuelsen11/faculty-portal/internal/app/fanout"
)

func TestRun_NoItems(t *testing.T) {
	t.Parallel()

	results := fanout.Run(context.Background(), 4, nil, func(_ context.Context, _ string) (int, error) {
		t.Fatal("fn must not run without items")
		return 0, nil
	})

	if results == nil || len(results) != 0 {
		t.Fatalf("results = %v, want empty non-nil slice", results)
	}
}

func TestRun_KeepsInputOrder(t *testing.T) {
	t.Parallel()

	kinds := []string{"research", "event", "teaching", "outreach", "award", "publication"}
	delays := map[string]time.Duration{"research": 30 * time.Millisecond, "event": 5 * time.Millisecond}

	results := fanout.Run(context.Background(), 3, kinds, func(_ context.Context, k string) (string, error) {
		time.Sleep(delays[k])
		return strings.ToUpper(k), nil
	})

	for i, r := range results {
		if r.Err != nil {
			t.Errorf("results[%d].Err = %v", i, r.Err)
		}
		if want := strings.ToUpper(kinds[i]); r.Value != want {
			t.Errorf("results[%d].Value = %q, want %q", i, r.Value, want)
		}
	}
}

func TestRun_FailureIsIsolated(t *testing.T) {
	t.Parallel()

	errDown := errors.New("records api down")
	items := []string{"award", "event", "outreach"}

	results := fanout.Run(context.Background(), 2, items, func(_ context.Context, k string) (int, error) {
		if k == "event" {
			return 0, errDown
		}
		return len(k), nil
	})

	if results[0].Err != nil || results[0].Value != 5 {
		t.Errorf("results[0] = %+v, want {5, nil}", results[0])
	}
	if !errors.Is(results[1].Err, errDown) {
		t.Errorf("results[1].Err = %v, want %v", results[1].Err, errDown)
	}
	if results[2].Err != nil || results[2].Value != 8 {
		t.Errorf("results[2] = %+v, want {8, nil}", results[2])
	}
}

func TestRun_RespectsWorkerLimit(t *testing.T) {
	t.Parallel()

	const limit = 2
	var active, peak atomic.Int32

	items := make([]int, 12)
	fanout.Run(context.Background(), limit, items, func(_ context.Context, _ int) (struct{}, error) {
		cur := active.Add(1)
		defer active.Add(-1)
		for {
			p := peak.Load()
			if cur <= p || peak.CompareAndSwap(p, cur) {
				break
			}
		}
		time.Sleep(5 * time.Millisecond)
		return struct{}{}, nil
	})

	if p := peak.Load(); p > limit {
		t.Fatalf("peak concurrency = %d, want <= %d", p, limit)
	}
}

func TestRun_ZeroWorkersStillRuns(t *testing.T) {
	t.Parallel()

	results := fanout.Run(context.Background(), 0, []int{1, 2}, func(_ context.Context, n int) (int, error) {
		return n + 1, nil
	})

	if results[0].Value != 2 || results[1].Value != 3 {
		t.Errorf("results = %+v, want values [2 3]", results)
	}
}

func TestRun_CanceledItemsAreSkipped(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	var calls atomic.Int32
	results := fanout.Run(ctx, 1, []int{1, 2, 3}, func(_ context.Context, n int) (int, error) {
		calls.Add(1)
		if n == 1 {
			cancel()
		}
		return n, nil
	})

	if results[0].Err != nil {
		t.Errorf("results[0].Err = %v, want nil", results[0].Err)
	}
	for i := 1; i < 3; i++ {
		if !errors.Is(results[i].Err, context.Canceled) {
			t.Errorf("results[%d].Err = %v, want context.Canceled", i, results[i].Err)
		}
	}
	if c := calls.Load(); c != 1 {
		t.Errorf("fn called %d times, want 1", c)
	}
}
