package config

// Path Constants
const (
	// ConfigDirName is the per-user directory for quicktabs files.
	ConfigDirName = ".quicktabs"

	// ConfigFileName holds the saved browser preference.
	ConfigFileName = "config.json"

	// LinksFileName holds tagged links.
	LinksFileName = "links.json"

	// AliasesFileName holds alias shortcuts.
	AliasesFileName = "aliases.json"
)

// File Permissions
const (
	// PermDirectory is the file permission for directories
	PermDirectory = 0755

	// PermConfigFile is the file permission for config files
	PermConfigFile = 0644
)
