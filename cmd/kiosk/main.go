package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	tea "github.com/charmbracelet/bubbletea"
	"golang.org/x/term"

	"github.com/zappabad/kioskboard/internal/config"
	kiosklog "github.com/zappabad/kioskboard/internal/log"
	"github.com/zappabad/kioskboard/internal/news/feed"
	"github.com/zappabad/kioskboard/internal/news/finnhub"
	newsview "github.com/zappabad/kioskboard/internal/news/view"
	refreshservice "github.com/zappabad/kioskboard/internal/refresh/service"
	"github.com/zappabad/kioskboard/internal/refresher"
	weatherview "github.com/zappabad/kioskboard/internal/weather/view"
	"github.com/zappabad/kioskboard/tui"
)

const defaultTUILogFile = "kiosk.log"

type viewSink interface {
	newsview.Sink
	weatherview.Sink
}

func main() {
	configPath := flag.String("config", "", "path to a YAML config file")
	headlessFlag := flag.Bool("headless", false, "log renders instead of drawing the terminal UI")
	flag.Parse()

	if err := run(*configPath, *headlessFlag); err != nil {
		fmt.Fprintf(os.Stderr, "kiosk: %v\n", err)
		os.Exit(1)
	}
}

func run(configPath string, headlessFlag bool) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}

	headless := headlessFlag || cfg.Headless || !term.IsTerminal(int(os.Stdout.Fd()))

	// The terminal UI owns stdout, so logs go to a file.
	if !headless && cfg.Log.File == "" {
		cfg.Log.File = defaultTUILogFile
	}
	logger, logCloser, err := kiosklog.New(cfg.Log, os.Stderr)
	if err != nil {
		return err
	}
	defer logCloser.Close()

	// Create context for graceful shutdown
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Handle interrupt signals
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		select {
		case <-sigChan:
			logger.Info("received interrupt signal, shutting down")
			cancel()
		case <-ctx.Done():
		}
	}()

	client := refresher.NewClient(cfg.BaseURL, cfg.HTTPTimeout, cfg.BannedSources)
	newsSrc := newsSource(cfg, client)
	logger.Info("starting kiosk",
		"news_source", cfg.NewsSource(),
		"base_url", cfg.BaseURL,
		"headless", headless,
	)

	if headless {
		sink := newLogSink(logger)
		svc := startService(cfg, logger, newsSrc, client, sink)
		defer svc.Close()

		go func() {
			for ev := range svc.Events() {
				logger.Debug("refresh event", "task", ev.Task, "kind", ev.Kind, "count", ev.Count)
			}
		}()

		<-ctx.Done()
		return nil
	}

	sink := tui.NewSink(0)
	svc := startService(cfg, logger, newsSrc, client, sink)

	model := tui.NewModel(sink, svc)
	p := tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(ctx))
	_, err = p.Run()

	// Release renders blocked on the model before waiting for the tasks.
	sink.Close()
	svc.Close()
	logger.Info("kiosk shut down", "dropped_events", svc.DroppedEvents())

	if err != nil && !errors.Is(err, tea.ErrProgramKilled) {
		return fmt.Errorf("run tui: %w", err)
	}
	return nil
}

func newsSource(cfg config.Config, client *refresher.Client) refreshservice.NewsFetcher {
	switch cfg.NewsSource() {
	case "finnhub":
		return finnhub.NewSource(cfg.FinnhubKey, cfg.FinnhubCategory, cfg.BannedSources)
	case "feed":
		return feed.NewSource(cfg.FeedURL, cfg.HTTPTimeout, cfg.BannedSources)
	default:
		return client
	}
}

func startService(
	cfg config.Config,
	logger *slog.Logger,
	newsSrc refreshservice.NewsFetcher,
	weatherSrc refreshservice.WeatherFetcher,
	sink viewSink,
) *refreshservice.Service {
	ticker := newsview.NewTicker(sink)
	panel := weatherview.NewPanel(sink)
	return refreshservice.NewService(cfg.Refresh, logger, newsSrc, ticker, weatherSrc, panel)
}
