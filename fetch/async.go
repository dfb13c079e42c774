package fetch

import "context"

// Result is the outcome of an asynchronous operation.
type Result[T any] struct {
	Value T
	Err   error
}

// Go runs fn in a new goroutine and delivers its outcome on the returned
// channel. Exactly one Result is sent, then the channel is closed; the
// channel is buffered so an abandoned receiver never leaks the goroutine.
func Go[T any](ctx context.Context, fn func(context.Context) (T, error)) <-chan Result[T] {
	ch := make(chan Result[T], 1)
	go func() {
		defer close(ch)
		v, err := fn(ctx)
		ch <- Result[T]{Value: v, Err: err}
	}()
	return ch
}

// Async fetches url with f in the background.
func Async(ctx context.Context, f Fetcher, url string) <-chan Result[[]byte] {
	return Go(ctx, func(ctx context.Context) ([]byte, error) {
		return f.Fetch(ctx, url)
	})
}
