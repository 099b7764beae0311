package constants

const (
	AppName           = "healbit"
	DefaultConfigPath = "~/.config/healbit/healbit.db"
	Version           = "v1.0.0"

	// ExportVersion is the schema version stamped into exported documents.
	ExportVersion = "1.0.0"

	// ExportFilePrefix is the prefix for exported backup files
	ExportFilePrefix = "healbit-backup-"
	// ExportFileSuffix is the suffix for exported backup files
	ExportFileSuffix = ".json"

	// MaxEntriesForFullComplexity is the entry count at which the avatar's
	// complexity dimension saturates at 1.0.
	MaxEntriesForFullComplexity = 50

	// TrendWindowDays is the width of the rolling window used for sentiment
	// trend comparison (recent window vs the one preceding it).
	TrendWindowDays = 7
)
