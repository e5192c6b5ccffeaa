package refresh

import "time"

// Task names one of the periodic refresh tasks.
type Task string

const (
	TaskNews    Task = "news"
	TaskWeather Task = "weather"
)

// EventKind describes what happened to a task.
type EventKind int

const (
	FetchStarted EventKind = iota
	FetchSucceeded
	FetchFailed
)

func (k EventKind) String() string {
	switch k {
	case FetchStarted:
		return "fetch_started"
	case FetchSucceeded:
		return "fetch_succeeded"
	case FetchFailed:
		return "fetch_failed"
	default:
		return "unknown"
	}
}

// Event reports a task lifecycle step.
type Event struct {
	Task Task
	Kind EventKind
	Time time.Time
	// Count is the number of seeded news items on FetchSucceeded.
	Count int
	// Absent is set when a weather fetch succeeded without a snapshot.
	Absent bool
	Err    error
}

// NewsState is the state of the news task.
type NewsState int32

const (
	NewsIdle NewsState = iota
	NewsFetching
	NewsCycling
)

func (s NewsState) String() string {
	switch s {
	case NewsIdle:
		return "idle"
	case NewsFetching:
		return "fetching"
	case NewsCycling:
		return "cycling"
	default:
		return "unknown"
	}
}
