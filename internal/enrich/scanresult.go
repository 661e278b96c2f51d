package enrich

import (
	"encoding/json"
	"os"
	"path/filepath"

	"pindex/internal/catalog"
	"pindex/internal/services"
	"pindex/internal/sources"
)

// ScanEntry is one record of a scan result file: the file-level facts a
// scanner collects plus whatever metadata it extracted from the table file.
type ScanEntry struct {
	VpxFile          string           `json:"vpxFile"`
	Folder           string           `json:"folder,omitempty"`
	RomPath          string           `json:"romPath,omitempty"`
	RomName          string           `json:"romName,omitempty"`
	Owner            string           `json:"jsonOwner,omitempty"`
	FileLastModified int64            `json:"fileLastModified"`
	HashFromVpx      string           `json:"hashFromVpx,omitempty"`
	HashFromVbs      string           `json:"hashFromVbs,omitempty"`
	HasDiffVbs       bool             `json:"hasDiffVbs,omitempty"`
	Metadata         sources.Document `json:"metadata,omitempty"`
}

// LoadScanResult reads a scan result file, a JSON array of scan entries.
// Entries without a table file path are dropped.
func LoadScanResult(path string) ([]ScanEntry, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, services.Wrap(services.ErrPersistence, "enrich", "scan", "read scan result", err)
	}
	var entries []ScanEntry
	if err := json.Unmarshal(data, &entries); err != nil {
		return nil, services.Wrap(services.ErrValidation, "enrich", "scan", "decode scan result", err)
	}
	valid := entries[:0]
	for _, entry := range entries {
		if entry.VpxFile != "" {
			valid = append(valid, entry)
		}
	}
	return valid, nil
}

// Record converts a scan entry into a fresh catalog record. Missing folder
// and owner fields get file-scan defaults.
func (e *ScanEntry) Record() catalog.Table {
	owner := e.Owner
	if owner == "" {
		owner = catalog.OwnerFileScan
	}
	folder := e.Folder
	if folder == "" {
		folder = filepath.Dir(e.VpxFile)
	}
	return catalog.Table{
		VpxFile:          e.VpxFile,
		Folder:           folder,
		RomPath:          e.RomPath,
		RomName:          e.RomName,
		Owner:            owner,
		FileLastModified: e.FileLastModified,
		HashFromVpx:      e.HashFromVpx,
		HashFromVbs:      e.HashFromVbs,
		HasDiffVbs:       e.HasDiffVbs,
	}
}
