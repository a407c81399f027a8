package jobsource

import (
	"context"
	"sync"
)

// Outcome is one concurrent task's result-or-error.
type Outcome[T any] struct {
	Value T
	Err   error
}

// SettleAll runs every task concurrently and waits for all of them to finish,
// collecting each outcome in dispatch order. Unlike an errgroup-style join it
// never short-circuits: one task failing has no effect on the others.
func SettleAll[T any](ctx context.Context, tasks []func(context.Context) (T, error)) []Outcome[T] {
	out := make([]Outcome[T], len(tasks))

	var wg sync.WaitGroup
	wg.Add(len(tasks))
	for i, task := range tasks {
		go func(i int, task func(context.Context) (T, error)) {
			defer wg.Done()
			v, err := task(ctx)
			out[i] = Outcome[T]{Value: v, Err: err}
		}(i, task)
	}
	wg.Wait()

	return out
}
