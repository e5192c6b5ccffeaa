package refresher

import "time"

// Result is the outcome of one fetch. Err is non-nil on failure, in which
// case Value is the zero value and must not be displayed.
type Result[T any] struct {
	Value     T
	Err       error
	FetchedAt time.Time
}

// Ok wraps a successful fetch.
func Ok[T any](v T) Result[T] {
	return Result[T]{Value: v, FetchedAt: time.Now()}
}

// Fail wraps a failed fetch.
func Fail[T any](err error) Result[T] {
	return Result[T]{Err: err, FetchedAt: time.Now()}
}

// OK reports whether the fetch succeeded.
func (r Result[T]) OK() bool {
	return r.Err == nil
}
