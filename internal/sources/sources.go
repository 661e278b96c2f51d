package sources

// Tag identifies one of the metadata corpora.
type Tag string

const (
	Vpsdb   Tag = "vpsdb"
	Ipdb    Tag = "ipdb"
	Lbdb    Tag = "lbdb"
	Vpinmdb Tag = "vpinmdb"
	Unknown Tag = ""
)

// Document is one decoded corpus record. Values carry whatever JSON types
// the corpus ships; the extraction helpers in this package coerce them.
type Document map[string]any

// NameFields returns the title keys for a corpus, in lookup priority order.
func NameFields(tag Tag) []string {
	switch tag {
	case Vpsdb:
		return []string{"name", "title"}
	case Ipdb:
		return []string{"Title", "title"}
	case Lbdb:
		return []string{"Name", "name"}
	default:
		return []string{"name"}
	}
}

// ManufacturerFields returns the manufacturer keys for a corpus.
func ManufacturerFields(tag Tag) []string {
	switch tag {
	case Vpsdb:
		return []string{"manufacturer", "company"}
	case Ipdb:
		return []string{"ManufacturerShortName", "Manufacturer", "manufacturer"}
	case Lbdb:
		return []string{"Manufacturer", "manufacturer", "Publisher"}
	default:
		return []string{"manufacturer"}
	}
}

// YearFields returns the release-year keys for a corpus. Values behind these
// keys may be integers, year strings, or full date strings.
func YearFields(tag Tag) []string {
	switch tag {
	case Vpsdb:
		return []string{"year", "releaseYear"}
	case Ipdb:
		return []string{"DateOfManufacture", "Year", "year"}
	case Lbdb:
		return []string{"Year", "year"}
	default:
		return []string{"year"}
	}
}

// PlayerFields returns the player-count keys for a corpus.
func PlayerFields(tag Tag) []string {
	switch tag {
	case Vpsdb:
		return []string{"playerCount", "players"}
	case Ipdb:
		return []string{"MaxPlayersAllowed", "playerCount", "Players"}
	default:
		return []string{"playerCount"}
	}
}

// AuthorFields returns the author or designer keys for a corpus.
func AuthorFields(tag Tag) []string {
	switch tag {
	case Vpsdb:
		return []string{"author", "designer", "authors"}
	case Ipdb:
		return []string{"Designer", "author"}
	default:
		return []string{"author"}
	}
}

// idFields returns the record-id keys consulted for array-shaped corpora.
// Keyed corpora take their ids from the object keys instead.
func idFields(tag Tag) []string {
	switch tag {
	case Ipdb:
		return []string{"IpdbId", "id"}
	case Lbdb:
		return []string{"DatabaseID", "Id", "id"}
	default:
		return []string{"id"}
	}
}

// Name returns the best title for a document under its corpus vocabulary.
func Name(doc Document, tag Tag) string {
	s, _ := Text(doc, NameFields(tag)...)
	return s
}

// Manufacturer returns the manufacturer for a document.
func Manufacturer(doc Document, tag Tag) string {
	s, _ := Text(doc, ManufacturerFields(tag)...)
	return s
}

// Author returns the author or designer credit for a document.
func Author(doc Document, tag Tag) string {
	s, _ := Text(doc, AuthorFields(tag)...)
	return s
}

// Players returns the player count for a document, 0 when absent.
func Players(doc Document, tag Tag) int {
	n, ok := Integer(doc, PlayerFields(tag)...)
	if !ok {
		return 0
	}
	return n
}
