package catalog

import (
	"context"
	"log/slog"
	"os"

	"pindex/internal/logging"
	"pindex/internal/workerpool"
)

// Merge folds a fresh scan into the stored index and returns the merged
// record set. Per file path:
//
//   - a fresh record with no stored counterpart is added as-is
//   - a stored record is replaced when the file changed (newer mtime or
//     different hashes) or when the fresh record carries a higher-ranked
//     owner; play statistics and the broken flag always carry forward
//   - otherwise the stored record is kept, with its mtime refreshed to
//     match the scan
//   - a stored record missing from the scan survives as long as its file
//     still exists on disk
//
// Companion flags are re-probed for every record in the result, one task
// per record across the worker pool.
func Merge(ctx context.Context, fresh, stored []Table, workers int, logger *slog.Logger) ([]Table, error) {
	if logger == nil {
		logger = logging.NewNop()
	}
	logger = logging.NewComponentLogger(logger, "catalog")

	storedByFile := make(map[string]Table, len(stored))
	for _, table := range stored {
		if table.VpxFile != "" {
			storedByFile[table.VpxFile] = table
		}
	}

	merged := make([]Table, 0, len(fresh))
	seen := make(map[string]bool, len(fresh))

	for _, freshTable := range fresh {
		if freshTable.VpxFile == "" {
			logger.Warn("skipping scanned table with empty file path")
			continue
		}
		seen[freshTable.VpxFile] = true

		result := freshTable
		if existing, ok := storedByFile[freshTable.VpxFile]; ok {
			switch reason := updateReason(&freshTable, &existing); reason {
			case "":
				result = existing
				result.FileLastModified = freshTable.FileLastModified
			default:
				logger.Info("updating table record",
					logging.String(logging.FieldTable, freshTable.VpxFile),
					logging.String("reason", reason))
				result.PlayCount = existing.PlayCount
				result.PlayTimeLast = existing.PlayTimeLast
				result.PlayTimeTotal = existing.PlayTimeTotal
				result.IsBroken = existing.IsBroken
			}
		} else {
			logger.Info("adding table record", logging.String(logging.FieldTable, freshTable.VpxFile))
		}
		merged = append(merged, result)
	}

	for _, existing := range stored {
		if existing.VpxFile == "" || seen[existing.VpxFile] {
			continue
		}
		if _, err := os.Stat(existing.VpxFile); err != nil {
			logger.Info("dropping record for deleted table", logging.String(logging.FieldTable, existing.VpxFile))
			continue
		}
		merged = append(merged, existing)
	}

	err := workerpool.ForEach(ctx, workerpool.Workers(workers), len(merged), func(i int) {
		merged[i].Companions = ProbeCompanions(merged[i].Folder, Stem(merged[i].VpxFile))
	})
	if err != nil {
		return nil, err
	}
	return merged, nil
}

func updateReason(fresh, existing *Table) string {
	switch {
	case fresh.FileLastModified > existing.FileLastModified:
		return "file modified (newer timestamp)"
	case fresh.HashFromVpx != existing.HashFromVpx || fresh.HashFromVbs != existing.HashFromVbs:
		return "file modified (different hashes)"
	case fresh.Rank() > existing.Rank():
		return "higher-quality metadata (new owner: " + fresh.Owner + ")"
	default:
		return ""
	}
}
