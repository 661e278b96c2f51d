package config

const (
	defaultTablesDir       = "~/tables"
	defaultDataDir         = "~/.local/share/pindex/data"
	defaultLogDir          = "~/.local/share/pindex/logs"
	defaultCatalogDBPath   = "~/.local/share/pindex/catalog.db"
	defaultIndexExportPath = "~/.local/share/pindex/pindex_index.json"
	defaultMismatchJournal = "~/.local/share/pindex/logs/vpsdb_mismatches.log"
	defaultBuildOutputPath = "~/.local/share/pindex/master_catalog.json"
	defaultLogFormat       = "console"
	defaultLogLevel        = "info"

	defaultNameWeight         = 0.40
	defaultYearWeight         = 0.20
	defaultManufacturerWeight = 0.20
	defaultPlayersWeight      = 0.10
	defaultAuthorWeight       = 0.10
	defaultRomBonus           = 0.25
	defaultAcceptThreshold    = 0.60
	defaultSimilarityFloor    = 0.55
	defaultLbdbThreshold      = 0.65
	defaultPrelinkThreshold   = 0.60
)

// Default returns a Config populated with repository defaults.
func Default() Config {
	return Config{
		Paths: Paths{
			TablesDir: defaultTablesDir,
			DataDir:   defaultDataDir,
			LogDir:    defaultLogDir,
		},
		Sources: Sources{
			VpsdbPath:   defaultDataDir + "/vpsdb.json",
			IpdbPath:    defaultDataDir + "/ipdb.json",
			LbdbPath:    defaultDataDir + "/lbdb.json",
			VpinmdbPath: defaultDataDir + "/vpinmdb.json",
		},
		Catalog: Catalog{
			DBPath:          defaultCatalogDBPath,
			IndexExportPath: defaultIndexExportPath,
			MismatchJournal: defaultMismatchJournal,
		},
		Matching: Matching{
			NameWeight:         defaultNameWeight,
			YearWeight:         defaultYearWeight,
			ManufacturerWeight: defaultManufacturerWeight,
			PlayersWeight:      defaultPlayersWeight,
			AuthorWeight:       defaultAuthorWeight,
			RomBonus:           defaultRomBonus,
			AcceptThreshold:    defaultAcceptThreshold,
			SimilarityFloor:    defaultSimilarityFloor,
			LbdbThreshold:      defaultLbdbThreshold,
			PrelinkThreshold:   defaultPrelinkThreshold,
		},
		Build: Build{
			OutputPath: defaultBuildOutputPath,
		},
		Logging: Logging{
			Format: defaultLogFormat,
			Level:  defaultLogLevel,
		},
	}
}
