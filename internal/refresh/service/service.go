package service

import (
	"context"
	"log/slog"
	"sync"
	"sync/atomic"
	"time"

	"github.com/zappabad/kioskboard/internal/news"
	"github.com/zappabad/kioskboard/internal/refresh"
	"github.com/zappabad/kioskboard/internal/refresher"
	"github.com/zappabad/kioskboard/internal/weather"
)

// NewsFetcher fetches the full headline list.
type NewsFetcher interface {
	FetchNews(ctx context.Context) refresher.Result[[]news.NewsItem]
}

// WeatherFetcher fetches the current weather snapshot.
type WeatherFetcher interface {
	FetchWeather(ctx context.Context) refresher.Result[*weather.Snapshot]
}

// NewsRenderer is the headline ticker driven by the news task.
type NewsRenderer interface {
	Seed(items []news.NewsItem)
	RenderNext()
}

// WeatherRenderer is the panel driven by the weather task.
type WeatherRenderer interface {
	Render(s *weather.Snapshot)
}

// Service runs the news and weather refresh tasks.
type Service struct {
	cfg Config
	log *slog.Logger

	newsSrc    NewsFetcher
	weatherSrc WeatherFetcher
	ticker     NewsRenderer
	panel      WeatherRenderer

	newsState atomic.Int32

	cycleMu sync.Mutex
	cycle   *cycle

	events        chan refresh.Event
	droppedEvents atomic.Int64

	ctx       context.Context
	cancel    context.CancelFunc
	closed    chan struct{}
	closeOnce sync.Once
	wg        sync.WaitGroup
}

// NewService creates a Service and starts its tasks. A task whose fetcher
// is nil is not started.
func NewService(
	cfg Config,
	logger *slog.Logger,
	newsSrc NewsFetcher,
	ticker NewsRenderer,
	weatherSrc WeatherFetcher,
	panel WeatherRenderer,
) *Service {
	cfg = cfg.withDefaults()
	if logger == nil {
		logger = slog.Default()
	}

	ctx, cancel := context.WithCancel(context.Background())
	s := &Service{
		cfg:        cfg,
		log:        logger.With("component", "refresh"),
		newsSrc:    newsSrc,
		weatherSrc: weatherSrc,
		ticker:     ticker,
		panel:      panel,
		events:     make(chan refresh.Event, cfg.EventBuffer),
		ctx:        ctx,
		cancel:     cancel,
		closed:     make(chan struct{}),
	}

	if newsSrc != nil && ticker != nil {
		s.wg.Add(1)
		go s.runTask(cfg.NewsRefresh, s.refreshNews)
	}
	if weatherSrc != nil && panel != nil {
		s.wg.Add(1)
		go s.runTask(cfg.WeatherRefresh, s.refreshWeather)
	}

	return s
}

func (s *Service) runTask(interval time.Duration, refreshFn func()) {
	defer s.wg.Done()

	refreshFn()

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-s.closed:
			return
		case <-ticker.C:
			refreshFn()
		}
	}
}

func (s *Service) refreshNews() {
	s.newsState.Store(int32(refresh.NewsFetching))
	s.emit(refresh.Event{Task: refresh.TaskNews, Kind: refresh.FetchStarted, Time: time.Now()})

	res := s.newsSrc.FetchNews(s.ctx)
	if !res.OK() {
		if s.ctx.Err() == nil {
			s.log.Error("error fetching news", "error", res.Err)
		}
		s.newsState.Store(int32(s.restingState()))
		s.emit(refresh.Event{Task: refresh.TaskNews, Kind: refresh.FetchFailed, Time: res.FetchedAt, Err: res.Err})
		return
	}

	s.restartCycle(res.Value)
	s.newsState.Store(int32(refresh.NewsCycling))
	s.log.Info("news refreshed", "items", len(res.Value))
	s.emit(refresh.Event{Task: refresh.TaskNews, Kind: refresh.FetchSucceeded, Time: res.FetchedAt, Count: len(res.Value)})
}

// restartCycle replaces the running cycling loop, if any, with a new one
// over items. The old loop has fully stopped before the ticker is reseeded.
func (s *Service) restartCycle(items []news.NewsItem) {
	s.cycleMu.Lock()
	defer s.cycleMu.Unlock()

	if s.cycle != nil {
		s.cycle.Stop()
		s.cycle = nil
	}

	select {
	case <-s.closed:
		return
	default:
	}

	s.ticker.Seed(items)
	s.cycle = startCycle(s.cfg.NewsCycle, s.ticker.RenderNext)
}

// restingState is the news state outside a fetch.
func (s *Service) restingState() refresh.NewsState {
	s.cycleMu.Lock()
	defer s.cycleMu.Unlock()
	if s.cycle != nil {
		return refresh.NewsCycling
	}
	return refresh.NewsIdle
}

func (s *Service) refreshWeather() {
	s.emit(refresh.Event{Task: refresh.TaskWeather, Kind: refresh.FetchStarted, Time: time.Now()})

	res := s.weatherSrc.FetchWeather(s.ctx)
	if !res.OK() {
		if s.ctx.Err() == nil {
			s.log.Error("error fetching weather", "error", res.Err)
		}
		s.panel.Render(nil)
		s.emit(refresh.Event{Task: refresh.TaskWeather, Kind: refresh.FetchFailed, Time: res.FetchedAt, Err: res.Err})
		return
	}

	s.panel.Render(res.Value)
	if res.Value == nil {
		s.log.Warn("weather refresher returned no snapshot")
	} else {
		s.log.Info("weather refreshed", "city", res.Value.City)
	}
	s.emit(refresh.Event{Task: refresh.TaskWeather, Kind: refresh.FetchSucceeded, Time: res.FetchedAt, Absent: res.Value == nil})
}

func (s *Service) emit(ev refresh.Event) {
	if s.cfg.DropEvents {
		select {
		case s.events <- ev:
		default:
			s.droppedEvents.Add(1)
		}
	} else {
		select {
		case s.events <- ev:
		case <-s.closed:
		}
	}
}

// NewsState returns the current state of the news task.
func (s *Service) NewsState() refresh.NewsState {
	return refresh.NewsState(s.newsState.Load())
}

// Events returns the task lifecycle channel. It is closed by Close.
func (s *Service) Events() <-chan refresh.Event {
	return s.events
}

// DroppedEvents returns the count of dropped lifecycle events.
func (s *Service) DroppedEvents() int64 {
	return s.droppedEvents.Load()
}

// Close stops both tasks and the cycling loop, cancelling in-flight fetches.
func (s *Service) Close() {
	s.closeOnce.Do(func() {
		close(s.closed)
		s.cancel()
		s.wg.Wait()

		s.cycleMu.Lock()
		if s.cycle != nil {
			s.cycle.Stop()
			s.cycle = nil
		}
		s.cycleMu.Unlock()

		close(s.events)
	})
}
