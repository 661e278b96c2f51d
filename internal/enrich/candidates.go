package enrich

import (
	"pindex/internal/catalog"
	"pindex/internal/match"
	"pindex/internal/sources"
	"pindex/internal/textnorm"
)

// romAdjustments resolves titles too generic to match on their own. Keyed
// by the loose-normalized current title, then by strict-normalized ROM name.
var romAdjustments = map[string]map[string]string{
	"terminator": {
		"t2l8":  "terminator 2",
		"term3": "terminator 3",
	},
	"x": {
		"xfiles":  "x-files",
		"xmn151h": "x-men",
	},
	"batman the dark knight": {
		"bdk294": "batman the dark knight",
	},
}

// adjustTitleForRom disambiguates the current title using the ROM name.
// Returns the title unchanged when no adjustment applies.
func adjustTitleForRom(title, romName string) string {
	if title == "" || romName == "" {
		return title
	}
	byRom, ok := romAdjustments[textnorm.NormalizeLoose(title)]
	if !ok {
		return title
	}
	if adjusted, ok := byRom[textnorm.NormalizeStrict(romName)]; ok {
		return adjusted
	}
	return title
}

// buildCandidates assembles the cleaned candidate title set for one record.
// Every name is run through title cleaning and typo correction; duplicates
// collapse in insertion order.
func buildCandidates(table *catalog.Table, fileDoc sources.Document) *match.Candidates {
	original := table.Title
	adjusted := adjustTitleForRom(original, table.RomName)

	var cands match.Candidates
	if filenameTitle, ok := sources.Text(fileDoc, "filename_title"); ok && filenameTitle != original {
		cands.Add(textnorm.CleanTitle(filenameTitle))
	}
	if path, ok := sources.Text(fileDoc, "path"); ok {
		cands.Add(textnorm.CleanTitle(catalog.Stem(path)))
	}
	if adjusted != "" && adjusted != original {
		cands.Add(textnorm.CleanTitle(adjusted))
	}
	if original != "" && original != adjusted {
		cands.Add(textnorm.CleanTitle(original))
	}
	if table.TableName != "" {
		cands.Add(textnorm.CleanTitle(table.TableName))
	}
	return &cands
}
