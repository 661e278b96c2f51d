package enrich

import (
	"strconv"
	"strings"

	"pindex/internal/catalog"
	"pindex/internal/sources"
	"pindex/internal/textnorm"
)

// populateFromEntry copies a matched spreadsheet entry into a record's
// metadata block and hands ownership of the record to the spreadsheet.
func populateFromEntry(entry sources.Document, table *catalog.Table, confidence float64) {
	table.VpsID = sources.ID(entry, sources.Vpsdb)
	table.VpsName, _ = sources.Text(entry, "name")
	table.VpsType, _ = sources.Text(entry, "type")
	table.VpsThemes = joinField(entry, "theme")
	table.VpsDesigners = joinField(entry, "designers")
	if players, ok := sources.Integer(entry, "players"); ok {
		table.VpsPlayers = strconv.Itoa(players)
	}
	table.VpsIpdbURL, _ = sources.Text(entry, "ipdbUrl")
	table.VpsManufacturer, _ = sources.Text(entry, "manufacturer")
	if year, ok := sources.Integer(entry, "year"); ok {
		table.VpsYear = strconv.Itoa(year)
	}
	table.MatchConfidence = confidence
	table.Owner = catalog.OwnerCommunity

	if table.Manufacturer == "" {
		table.Manufacturer = table.VpsManufacturer
	}
	if table.Year == "" {
		table.Year = table.VpsYear
	}

	vpsVersion := bestTableFileVersion(entry)
	if files := tableFiles(entry); len(files) > 0 {
		first := files[0]
		table.VpsFormat, _ = sources.Text(first, "tableFormat")
		table.VpsTableImgURL, _ = sources.Text(first, "imgUrl")
		table.VpsTableURL = firstURL(first)
		table.VpsAuthors = joinField(first, "authors")
		table.VpsFeatures = joinField(first, "features")
		table.VpsComment, _ = sources.Text(first, "comment")
		table.VpsVersion = vpsVersion
	}
	if b2s := arrayOfDocuments(entry, "b2sFiles"); len(b2s) > 0 {
		table.VpsB2SImgURL, _ = sources.Text(b2s[0], "imgUrl")
		table.VpsB2SURL = firstURL(b2s[0])
	}

	table.BestVersion = annotateVersion(table.TableVersion, vpsVersion)
}

// annotateVersion compares the local table version against the newest
// community release and tags the distance.
func annotateVersion(localVersion, communityVersion string) string {
	local := textnorm.NormalizeVersion(localVersion)
	community := textnorm.NormalizeVersion(communityVersion)
	if community == "" {
		return local
	}
	switch {
	case textnorm.VersionGreater(community, local):
		if local == "" {
			return community
		}
		return local + " (Behind: " + community + ")"
	case textnorm.VersionGreater(local, community):
		return local + " (Ahead: " + community + ")"
	default:
		return local
	}
}

// bestTableFileVersion returns the highest version among an entry's VPX
// table files.
func bestTableFileVersion(entry sources.Document) string {
	var best string
	for _, file := range tableFiles(entry) {
		if format, _ := sources.Text(file, "tableFormat"); format != "VPX" {
			continue
		}
		version, _ := sources.Text(file, "version")
		if textnorm.VersionGreater(version, best) {
			best = version
		}
	}
	return best
}

// romMatches reports whether the ROM name appears under any of the entry's
// table files.
func romMatches(entry sources.Document, normRom string) bool {
	if normRom == "" {
		return false
	}
	for _, file := range tableFiles(entry) {
		roms, ok := file["roms"].([]any)
		if !ok {
			continue
		}
		for _, raw := range roms {
			rom, ok := raw.(map[string]any)
			if !ok {
				continue
			}
			name, _ := sources.Text(sources.Document(rom), "name")
			if textnorm.NormalizeStrict(name) == normRom {
				return true
			}
		}
	}
	return false
}

func tableFiles(entry sources.Document) []sources.Document {
	return arrayOfDocuments(entry, "tableFiles")
}

func arrayOfDocuments(entry sources.Document, key string) []sources.Document {
	raw, ok := entry[key].([]any)
	if !ok {
		return nil
	}
	docs := make([]sources.Document, 0, len(raw))
	for _, item := range raw {
		if doc, ok := item.(map[string]any); ok {
			docs = append(docs, sources.Document(doc))
		}
	}
	return docs
}

func firstURL(file sources.Document) string {
	urls, ok := file["urls"].([]any)
	if !ok || len(urls) == 0 {
		return ""
	}
	if doc, ok := urls[0].(map[string]any); ok {
		url, _ := sources.Text(sources.Document(doc), "url")
		return url
	}
	return ""
}

func joinField(doc sources.Document, key string) string {
	values, ok := doc[key].([]any)
	if !ok {
		return ""
	}
	parts := make([]string, 0, len(values))
	for _, v := range values {
		if s, ok := v.(string); ok && s != "" {
			parts = append(parts, s)
		}
	}
	return strings.Join(parts, ", ")
}
