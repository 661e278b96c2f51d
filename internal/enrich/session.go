package enrich

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"pindex/internal/catalog"
	"pindex/internal/config"
	"pindex/internal/logging"
	"pindex/internal/sources"
	"pindex/internal/workerpool"
)

// Session runs one scan-and-enrich pass: scan result in, matched and merged
// catalog out.
type Session struct {
	cfg    *config.Config
	store  *catalog.Store
	cache  *sources.Cache
	logger *slog.Logger
}

// SessionResult summarizes a completed session.
type SessionResult struct {
	SessionID string
	Scanned   int
	Stats     Stats
	Tables    []catalog.Table
}

// NewSession returns a session over the given catalog store.
func NewSession(cfg *config.Config, store *catalog.Store, cache *sources.Cache, logger *slog.Logger) *Session {
	if cache == nil {
		cache = sources.NewCache(logger)
	}
	return &Session{
		cfg:    cfg,
		store:  store,
		cache:  cache,
		logger: logging.NewComponentLogger(logger, "enrich"),
	}
}

// Run matches every scanned record against the spreadsheet corpus, merges
// the results into the stored catalog, and exports the index document. The
// returned tables are the full post-merge catalog.
func (s *Session) Run(ctx context.Context, scanPath string) (*SessionResult, error) {
	started := time.Now()
	sessionID := uuid.New().String()
	logger := s.logger.With(logging.String("session_id", sessionID))

	entries, err := LoadScanResult(scanPath)
	if err != nil {
		return nil, err
	}
	fresh := make([]catalog.Table, len(entries))
	docs := make([]sources.Document, len(entries))
	for i := range entries {
		fresh[i] = entries[i].Record()
		docs[i] = entries[i].Metadata
	}

	corpus, err := s.cache.Load(sources.Vpsdb, s.cfg.Sources.VpsdbPath)
	if err != nil {
		return nil, err
	}

	var journal *Journal
	if path := s.cfg.Catalog.MismatchJournal; path != "" {
		journal = NewJournal(path)
	}
	matcher := NewMatcher(corpus, s.cfg.Matching, journal, logger)

	stats, err := matcher.MatchAll(ctx, fresh, docs, s.cfg.Build.Workers)
	if err != nil {
		return nil, err
	}

	if path := s.cfg.Sources.LbdbPath; path != "" {
		if lbdb, lbErr := s.cache.Load(sources.Lbdb, path); lbErr != nil {
			logger.Warn("launcher corpus unavailable, skipping cross reference", logging.Error(lbErr))
		} else {
			linker := NewLauncherLinker(lbdb, s.cfg.Matching, logger)
			err = workerpool.ForEach(ctx, workerpool.Workers(s.cfg.Build.Workers), len(fresh), func(i int) {
				linker.Link(&fresh[i], docs[i])
			})
			if err != nil {
				return nil, err
			}
		}
	}

	// A force rebuild discards the stored catalog entirely, so direct-id
	// shortcuts and carried-forward user fields both reset.
	var stored []catalog.Table
	if !s.cfg.Matching.ForceRebuild {
		stored, err = s.store.List(ctx)
		if err != nil {
			return nil, err
		}
	}
	merged, err := catalog.Merge(ctx, fresh, stored, s.cfg.Build.Workers, logger)
	if err != nil {
		return nil, err
	}
	if err := s.store.Replace(ctx, merged); err != nil {
		return nil, err
	}
	if path := s.cfg.Catalog.IndexExportPath; path != "" {
		if err := catalog.ExportIndex(path, merged); err != nil {
			return nil, err
		}
	}

	logger.Info("scan session finished",
		logging.Int("scanned", len(entries)),
		logging.Int("matched", stats.Matched),
		logging.Int("unmatched", stats.Unmatched),
		logging.Int("skipped", stats.Skipped),
		logging.Int("catalog", len(merged)),
		logging.Duration("elapsed", time.Since(started)))

	return &SessionResult{
		SessionID: sessionID,
		Scanned:   len(entries),
		Stats:     stats,
		Tables:    merged,
	}, nil
}
