// Package scheduler orchestrates sync passes: fetch, classify, merge, save,
// announce, record. The core transforms stay pure; all I/O happens here and
// in the collaborators it drives.
package scheduler

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"dealsync/internal/classify"
	"dealsync/internal/extract"
	"dealsync/internal/fetcher"
	"dealsync/internal/merge"
	"dealsync/internal/metrics"
	"dealsync/internal/model"
	"dealsync/internal/normalize"
	"dealsync/internal/store"
)

const timeLayout = "2006-01-02T15:04:05Z"

// Notifier announces newly merged deals.
type Notifier interface {
	AnnounceDeals(deals []model.Deal)
}

// RunRecorder persists one row per finished sync pass.
type RunRecorder interface {
	RecordRun(ctx context.Context, run *model.SyncRun) error
}

// Stats summarizes one sync pass.
type Stats struct {
	Fetched int
	Added   int
	Total   int
}

// Scheduler runs sync passes, one-shot or on a fixed interval. Passes are
// strictly sequential: a single goroutine owns the collection for the whole
// pass, so two passes never race on the data file.
type Scheduler struct {
	feedURL  string
	dataFile string
	fetcher  *fetcher.Fetcher
	history  RunRecorder
	notifier Notifier
	log      *slog.Logger
	interval time.Duration
}

// New creates a Scheduler with the default HTTP client. history and
// notifier may be nil to disable run recording and announcements.
func New(feedURL, dataFile string, history RunRecorder, notifier Notifier, log *slog.Logger) *Scheduler {
	return NewWithFetcher(feedURL, dataFile, fetcher.New(http.DefaultClient), history, notifier, log)
}

// NewWithFetcher creates a Scheduler with a custom fetcher (useful for testing).
func NewWithFetcher(feedURL, dataFile string, f *fetcher.Fetcher, history RunRecorder, notifier Notifier, log *slog.Logger) *Scheduler {
	return &Scheduler{
		feedURL:  feedURL,
		dataFile: dataFile,
		fetcher:  f,
		history:  history,
		notifier: notifier,
		log:      log,
		interval: 60 * time.Minute,
	}
}

// SetInterval overrides the default 60-minute pass interval for daemon mode.
func (s *Scheduler) SetInterval(d time.Duration) {
	s.interval = d
}

// Run starts the daemon loop: one pass immediately, then one per interval,
// blocking until ctx is cancelled.
func (s *Scheduler) Run(ctx context.Context) {
	if _, err := s.RunOnce(ctx, "interval"); err != nil {
		s.log.Error("sync pass", "error", err)
	}

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if _, err := s.RunOnce(ctx, "interval"); err != nil {
				s.log.Error("sync pass", "error", err)
			}
		}
	}
}

// RunOnce executes a single sync pass. A fetch failure degrades to a
// re-save of the baseline with a fresh timestamp; a load or save failure is
// an error the caller must treat as fatal for the run.
func (s *Scheduler) RunOnce(ctx context.Context, trigger string) (Stats, error) {
	started := time.Now().UTC()

	baseline, err := store.Load(s.dataFile)
	if err != nil {
		metrics.SyncRunsTotal.WithLabelValues("error").Inc()
		return Stats{}, err
	}

	listings, err := s.fetcher.Fetch(ctx, s.feedURL)
	if err != nil {
		s.log.Warn("fetch feed", "url", s.feedURL, "error", err)
		listings = nil
	}
	metrics.DealsFetched.Add(float64(len(listings)))

	candidates := make([]model.Deal, 0, len(listings))
	for _, l := range listings {
		if l.Title == "" && l.Link == "" {
			continue
		}
		candidates = append(candidates, BuildDeal(l))
	}

	merged, added := merge.Merge(baseline.Deals, candidates)

	if err := store.Save(s.dataFile, merged); err != nil {
		metrics.SyncRunsTotal.WithLabelValues("error").Inc()
		return Stats{}, err
	}

	if s.notifier != nil && len(added) > 0 {
		s.notifier.AnnounceDeals(added)
	}

	stats := Stats{Fetched: len(listings), Added: len(added), Total: len(merged)}
	metrics.SyncRunsTotal.WithLabelValues("ok").Inc()
	metrics.DealsAdded.Add(float64(stats.Added))

	if s.history != nil {
		run := &model.SyncRun{
			StartedAt:  started.Format(timeLayout),
			FinishedAt: time.Now().UTC().Format(timeLayout),
			Fetched:    stats.Fetched,
			Added:      stats.Added,
			Total:      stats.Total,
			Trigger:    trigger,
		}
		if err := s.history.RecordRun(ctx, run); err != nil {
			s.log.Error("record run", "error", err)
		}
	}

	s.log.Info("sync pass finished",
		"fetched", stats.Fetched, "added", stats.Added, "total", stats.Total,
		"duration", time.Since(started).Round(time.Millisecond))
	return stats, nil
}

// BuildDeal assembles a classified deal from a raw listing: the link gets
// its tracking parameter, the title is classified against the link, and the
// price, store, and identifier are extracted. OriginalPrice stays empty on
// this path; only the sheet import supplies it.
func BuildDeal(l model.Listing) model.Deal {
	link := normalize.Link(l.Link)
	main, sub := classify.Classify(l.Title, link)
	return model.Deal{
		ID:           extract.DealID(link),
		Title:        l.Title,
		Link:         link,
		MainCategory: main,
		SubCategory:  sub,
		SalePrice:    extract.Price(l.Title),
		Store:        extract.Store(l.Title),
		PubDate:      l.PubDate,
	}
}

// Reclassify re-runs the classifier over every deal of a collection and
// returns the number of deals whose category changed. Used after rule-table
// updates to bring older entries in line.
func Reclassify(deals []model.Deal) int {
	changed := 0
	for i := range deals {
		main, sub := classify.Classify(deals[i].Title, deals[i].Link)
		if main != deals[i].MainCategory || sub != deals[i].SubCategory {
			deals[i].MainCategory = main
			deals[i].SubCategory = sub
			changed++
		}
	}
	return changed
}
