package catalog

// Record owners, in ascending quality order. The owner names a record's
// best metadata source and decides whether a re-scan may overwrite it.
const (
	OwnerCommunity = "Virtual Pinball Spreadsheet Database"
	OwnerToolScan  = "VPXTool Index"
	OwnerFileScan  = "System File Scan"
)

// OwnerRank maps an owner to its overwrite priority. Unknown owners rank
// lowest and lose to any recognized scan.
func OwnerRank(owner string) int {
	switch owner {
	case OwnerCommunity:
		return 3
	case OwnerToolScan, "VPin Filescan":
		return 2
	case OwnerFileScan:
		return 1
	default:
		return 0
	}
}

// Table is one local catalog record. JSON tags follow the index document
// format, so records round-trip through both SQLite and the exported index.
type Table struct {
	// Best known display fields, whichever source supplied them.
	Title        string `json:"title"`
	Manufacturer string `json:"manufacturer"`
	Year         string `json:"year"`
	BestVersion  string `json:"bestVersion,omitempty"`

	// File locations.
	VpxFile string `json:"vpxFile"`
	Folder  string `json:"folder"`
	RomPath string `json:"romPath,omitempty"`
	RomName string `json:"romName,omitempty"`

	// Metadata embedded in the table file itself.
	TableName         string `json:"tableName,omitempty"`
	TableAuthor       string `json:"tableAuthor,omitempty"`
	TableDescription  string `json:"tableDescription,omitempty"`
	TableSaveDate     string `json:"tableSaveDate,omitempty"`
	TableLastModified string `json:"tableLastModified,omitempty"`
	TableReleaseDate  string `json:"tableReleaseDate,omitempty"`
	TableVersion      string `json:"tableVersion,omitempty"`
	TableType         string `json:"tableType,omitempty"`
	TableManufacturer string `json:"tableManufacturer,omitempty"`
	TableYear         string `json:"tableYear,omitempty"`
	TableRom          string `json:"tableRom,omitempty"`

	// Community spreadsheet metadata, populated on a successful match.
	VpsID           string `json:"vpsId,omitempty"`
	VpsName         string `json:"vpsName,omitempty"`
	VpsType         string `json:"vpsType,omitempty"`
	VpsThemes       string `json:"vpsThemes,omitempty"`
	VpsDesigners    string `json:"vpsDesigners,omitempty"`
	VpsPlayers      string `json:"vpsPlayers,omitempty"`
	VpsIpdbURL      string `json:"vpsIpdbUrl,omitempty"`
	VpsVersion      string `json:"vpsVersion,omitempty"`
	VpsAuthors      string `json:"vpsAuthors,omitempty"`
	VpsFeatures     string `json:"vpsFeatures,omitempty"`
	VpsComment      string `json:"vpsComment,omitempty"`
	VpsManufacturer string `json:"vpsManufacturer,omitempty"`
	VpsYear         string `json:"vpsYear,omitempty"`
	VpsTableImgURL  string `json:"vpsTableImgUrl,omitempty"`
	VpsTableURL     string `json:"vpsTableUrl,omitempty"`
	VpsB2SImgURL    string `json:"vpsB2SImgUrl,omitempty"`
	VpsB2SURL       string `json:"vpsB2SUrl,omitempty"`
	VpsFormat       string `json:"vpsFormat,omitempty"`

	// Retro-launcher cross reference.
	LbdbID string `json:"lbdbID,omitempty"`

	// Operational fields.
	MatchConfidence  float64 `json:"matchConfidence"`
	Owner            string  `json:"jsonOwner"`
	PlayCount        int     `json:"playCount"`
	PlayTimeLast     float64 `json:"playTimeLast"`
	PlayTimeTotal    float64 `json:"playTimeTotal"`
	IsBroken         bool    `json:"isBroken"`
	FileLastModified int64   `json:"fileLastModified"`
	HashFromVpx      string  `json:"hashFromVpx,omitempty"`
	HashFromVbs      string  `json:"hashFromVbs,omitempty"`
	HasDiffVbs       bool    `json:"hasDiffVbs"`

	Companions
}

// Rank returns the record's owner rank.
func (t *Table) Rank() int {
	return OwnerRank(t.Owner)
}
