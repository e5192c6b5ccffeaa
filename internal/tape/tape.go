package tape

// Tape is a ring buffer that keeps the most recent values (bounded memory).
// It is not safe for concurrent use.
type Tape[T any] struct {
	buf   []T
	size  int
	start int
	count int
}

// New creates a Tape holding at most capacity values.
func New[T any](capacity int) *Tape[T] {
	if capacity <= 0 {
		capacity = 1
	}
	return &Tape[T]{
		buf:  make([]T, capacity),
		size: capacity,
	}
}

// Append adds v, overwriting the oldest value when full.
func (t *Tape[T]) Append(v T) {
	if t.count < t.size {
		t.buf[(t.start+t.count)%t.size] = v
		t.count++
		return
	}
	// overwrite oldest
	t.buf[t.start] = v
	t.start = (t.start + 1) % t.size
}

// Last returns up to n of the newest values, oldest first.
func (t *Tape[T]) Last(n int) []T {
	if n <= 0 || t.count == 0 {
		return nil
	}
	if n > t.count {
		n = t.count
	}
	out := make([]T, n)
	first := (t.start + (t.count - n)) % t.size
	for i := 0; i < n; i++ {
		out[i] = t.buf[(first+i)%t.size]
	}
	return out
}

// Len returns the number of values held.
func (t *Tape[T]) Len() int {
	return t.count
}
