package catalog

import (
	"os"
	"path/filepath"
	"strings"
)

// Companions flags the optional files and directories that ship alongside a
// table file. Flags are re-probed on every merge so the index reflects the
// directory as it is now, not as it was when the record was first written.
type Companions struct {
	HasAltSound bool `json:"hasAltSound"`
	HasAltColor bool `json:"hasAltColor"`
	HasAltMusic bool `json:"hasAltMusic"`
	HasPup      bool `json:"hasPup"`
	HasUltraDMD bool `json:"hasUltraDMD"`
	HasB2S      bool `json:"hasB2S"`
	HasINI      bool `json:"hasINI"`
	HasVBS      bool `json:"hasVBS"`
}

// ProbeCompanions inspects a table's folder for companion assets. The stem
// is the table file name without extension; sidecar files share it.
func ProbeCompanions(folder, stem string) Companions {
	return Companions{
		HasAltSound: dirExists(filepath.Join(folder, "pinmame", "altsound")),
		HasAltColor: dirExists(filepath.Join(folder, "pinmame", "altcolor")),
		HasAltMusic: dirExists(filepath.Join(folder, "pinmame", "altmusic")),
		HasPup:      dirExists(filepath.Join(folder, "pupvideos")),
		HasUltraDMD: hasUltraDMDDir(folder),
		HasB2S:      fileExists(filepath.Join(folder, stem+".directb2s")),
		HasINI:      fileExists(filepath.Join(folder, stem+".ini")),
		HasVBS:      fileExists(filepath.Join(folder, stem+".vbs")),
	}
}

// Stem returns a table file's name without directory or extension.
func Stem(vpxFile string) string {
	base := filepath.Base(vpxFile)
	return strings.TrimSuffix(base, filepath.Ext(base))
}

func fileExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}

func dirExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.IsDir()
}

func hasUltraDMDDir(folder string) bool {
	entries, err := os.ReadDir(folder)
	if err != nil {
		return false
	}
	for _, entry := range entries {
		if entry.IsDir() && strings.HasSuffix(strings.ToLower(entry.Name()), ".ultradmd") {
			return true
		}
	}
	return false
}
