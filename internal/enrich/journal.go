package enrich

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"pindex/internal/services"
)

// Journal appends mismatch lines to a log file shared across matcher
// goroutines. Lines are whole-record observations meant for manual review,
// not structured output.
type Journal struct {
	mu   sync.Mutex
	path string
}

// NewJournal returns a journal writing to path. The file and its parent
// directories are created on first write.
func NewJournal(path string) *Journal {
	return &Journal{path: path}
}

// NoMatch records a failed match attempt. The near-match name is included
// when the best score cleared the review floor.
func (j *Journal) NoMatch(title, tableName, romName, filename, year, manufacturer string, score float64, nearMatch string) error {
	line := fmt.Sprintf("No match for: title=%q, tableName=%q, romName=%q, filename=%q, year=%q, manufacturer=%q, score=%.2f",
		title, tableName, romName, filename, year, manufacturer, score)
	if nearMatch != "" {
		line += fmt.Sprintf(", near_match=%q", nearMatch)
	}
	return j.append(line + "\n")
}

func (j *Journal) append(line string) error {
	if j == nil || j.path == "" {
		return nil
	}
	j.mu.Lock()
	defer j.mu.Unlock()

	if dir := filepath.Dir(j.path); dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return services.Wrap(services.ErrPersistence, "enrich", "journal", "create journal directory", err)
		}
	}
	f, err := os.OpenFile(j.path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return services.Wrap(services.ErrPersistence, "enrich", "journal", "open journal", err)
	}
	defer f.Close()
	if _, err := f.WriteString(line); err != nil {
		return services.Wrap(services.ErrPersistence, "enrich", "journal", "write journal", err)
	}
	return nil
}
