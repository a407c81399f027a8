package jobsource

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"
)

func TestSettleAll_PreservesDispatchOrder(t *testing.T) {
	tasks := []func(context.Context) (int, error){
		func(ctx context.Context) (int, error) {
			time.Sleep(30 * time.Millisecond)
			return 1, nil
		},
		func(ctx context.Context) (int, error) {
			return 2, nil
		},
		func(ctx context.Context) (int, error) {
			time.Sleep(10 * time.Millisecond)
			return 3, nil
		},
	}

	out := SettleAll(context.Background(), tasks)
	if len(out) != 3 {
		t.Fatalf("len = %d, want 3", len(out))
	}
	for i, want := range []int{1, 2, 3} {
		if out[i].Err != nil {
			t.Fatalf("outcome %d: unexpected error %v", i, out[i].Err)
		}
		if out[i].Value != want {
			t.Errorf("outcome %d = %d, want %d", i, out[i].Value, want)
		}
	}
}

func TestSettleAll_FailureDoesNotShortCircuit(t *testing.T) {
	boom := errors.New("boom")
	var ran atomic.Int32

	tasks := []func(context.Context) (string, error){
		func(ctx context.Context) (string, error) {
			return "", boom
		},
		func(ctx context.Context) (string, error) {
			time.Sleep(20 * time.Millisecond)
			ran.Add(1)
			return "ok", nil
		},
	}

	out := SettleAll(context.Background(), tasks)
	if !errors.Is(out[0].Err, boom) {
		t.Errorf("outcome 0 error = %v, want boom", out[0].Err)
	}
	if out[1].Err != nil || out[1].Value != "ok" {
		t.Errorf("outcome 1 = (%q, %v), want (ok, nil)", out[1].Value, out[1].Err)
	}
	if ran.Load() != 1 {
		t.Error("second task did not run to completion")
	}
}

func TestSettleAll_Empty(t *testing.T) {
	out := SettleAll[int](context.Background(), nil)
	if len(out) != 0 {
		t.Errorf("len = %d, want 0", len(out))
	}
}
