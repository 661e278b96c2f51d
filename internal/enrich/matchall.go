package enrich

import (
	"context"
	"sync"

	"pindex/internal/catalog"
	"pindex/internal/logging"
	"pindex/internal/sources"
	"pindex/internal/workerpool"
)

// Stats summarizes one matchmaking run.
type Stats struct {
	Matched   int
	Unmatched int
	Skipped   int
}

// MatchAll runs matchmaking for every record across the worker pool.
// tables[i] pairs with docs[i]; a missing document is treated as empty.
// Records are modified in place.
func (m *Matcher) MatchAll(ctx context.Context, tables []catalog.Table, docs []sources.Document, workers int) (Stats, error) {
	var (
		mu    sync.Mutex
		stats Stats
	)

	err := workerpool.ForEach(ctx, workerpool.Workers(workers), len(tables), func(i int) {
		var doc sources.Document
		if i < len(docs) {
			doc = docs[i]
		}
		outcome := m.Match(&tables[i], doc)

		mu.Lock()
		switch outcome {
		case Matched:
			stats.Matched++
		case Skipped:
			stats.Skipped++
		default:
			stats.Unmatched++
		}
		mu.Unlock()
	})
	if err != nil {
		return stats, err
	}

	m.logger.Info("matchmaking finished",
		logging.Int("matched", stats.Matched),
		logging.Int("unmatched", stats.Unmatched),
		logging.Int("skipped", stats.Skipped))
	return stats, nil
}
