package sources

import (
	"log/slog"
	"sync"

	"pindex/internal/logging"
)

// Cache memoizes loaded corpora for the lifetime of one build or scan
// session. Corpus files run to tens of megabytes, so each is decoded at
// most once.
type Cache struct {
	logger *slog.Logger

	mu      sync.Mutex
	corpora map[Tag]*Corpus
}

// NewCache returns an empty corpus cache.
func NewCache(logger *slog.Logger) *Cache {
	if logger == nil {
		logger = logging.NewNop()
	}
	return &Cache{
		logger:  logging.NewComponentLogger(logger, "sources"),
		corpora: make(map[Tag]*Corpus),
	}
}

// Load returns the corpus for tag, reading path on first use. A path that
// does not resolve to a parseable corpus fails every subsequent Load for
// that tag as well.
func (c *Cache) Load(tag Tag, path string) (*Corpus, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if corpus, ok := c.corpora[tag]; ok {
		return corpus, nil
	}

	corpus, err := Load(path, tag)
	if err != nil {
		return nil, err
	}
	c.logger.Info("corpus loaded",
		logging.String(logging.FieldSource, string(tag)),
		logging.String("path", path),
		logging.Int("records", corpus.Len()))
	c.corpora[tag] = corpus
	return corpus, nil
}

// Put seeds the cache with an already decoded corpus. Used by tests and by
// builds that synthesize merged corpora.
func (c *Cache) Put(corpus *Corpus) {
	if corpus == nil {
		return
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	c.corpora[corpus.Tag] = corpus
}
