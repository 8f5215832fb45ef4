package scheduler

import (
	"context"
	"fmt"
	"log"
	"strings"

	"github.com/robfig/cron/v3"

	"StockScope/internal/analyzer"
	"StockScope/internal/collector"
	"StockScope/internal/notifier"
	"StockScope/internal/recorder"
)

// Scheduler runs the periodic refresh task: re-fetch history, recompute every
// indicator, log the run and alert on signals that fired on the latest bar.
type Scheduler struct {
	Cron      *cron.Cron
	Collector *collector.Collector
	Store     *analyzer.Store
	Params    analyzer.Params
	Recorder  recorder.Recorder
	Notifier  *notifier.TelegramNotifier
	Symbols   []string
	Ctx       context.Context
}

// NewScheduler creates a new Scheduler.
func NewScheduler(ctx context.Context, col *collector.Collector, store *analyzer.Store, params analyzer.Params, rec recorder.Recorder, tn *notifier.TelegramNotifier, symbols []string) *Scheduler {
	return &Scheduler{
		Cron:      cron.New(cron.WithSeconds()),
		Collector: col,
		Store:     store,
		Params:    params,
		Recorder:  rec,
		Notifier:  tn,
		Symbols:   symbols,
		Ctx:       ctx,
	}
}

// Register registers the refresh task.
func (s *Scheduler) Register(refreshCron string) error {
	if _, err := s.Cron.AddFunc(refreshCron, s.refreshTask); err != nil {
		return fmt.Errorf("register refresh task: %w", err)
	}
	return nil
}

// Start starts the cron scheduler.
func (s *Scheduler) Start() {
	s.Cron.Start()
	log.Println("[INFO] scheduler started")
}

// Stop stops the cron scheduler gracefully.
func (s *Scheduler) Stop() {
	s.Cron.Stop()
	log.Println("[INFO] scheduler stopped")
}

// RunRefreshNow executes the refresh task immediately (startup / manual trigger).
func (s *Scheduler) RunRefreshNow() {
	s.refreshTask()
}

func (s *Scheduler) refreshTask() {
	log.Printf("[INFO] refreshing %d symbols", len(s.Symbols))
	bars, err := s.Collector.CollectAll(s.Ctx, s.Symbols)
	if err != nil {
		log.Printf("[ERROR] refresh collect: %v", err)
		// Partial results are still analyzed below.
	}

	for symbol, points := range bars {
		a := analyzer.Run(symbol, points, s.Params)
		s.Store.Put(a)

		if err := s.Recorder.RecordRun(a); err != nil {
			log.Printf("[ERROR] record run %s: %v", symbol, err)
		}

		if fresh := a.LatestSignals(); len(fresh) > 0 {
			if msg := notifier.FormatSignalAlert(a, fresh); msg != "" {
				s.trySend(msg)
			}
		}
		log.Printf("[INFO] %s analyzed: %d bars, %d signals, %d zones", symbol, len(a.Points), len(a.Signals), len(a.Zones))
	}
}

// HandleCommand processes a user command and returns a reply.
func (s *Scheduler) HandleCommand(command string) string {
	fields := strings.Fields(command)
	if len(fields) == 0 {
		return ""
	}
	switch fields[0] {
	case "/refresh":
		s.refreshTask()
		return "refresh done"
	case "/symbols":
		return strings.Join(s.Store.Symbols(), "\n")
	case "/summary":
		symbol := s.Symbols[0]
		if len(fields) > 1 {
			symbol = fields[1]
		}
		a, ok := s.Store.Get(symbol)
		if !ok {
			return fmt.Sprintf("no analysis for %s yet", symbol)
		}
		return notifier.FormatSummary(a)
	default:
		return "commands:\n/refresh\n/symbols\n/summary <symbol>"
	}
}

func (s *Scheduler) trySend(text string) {
	if err := s.Notifier.SendWithRetry(s.Ctx, text, 3); err != nil {
		log.Printf("[ERROR] send notification: %v", err)
	}
}
