package kmi

import (
	"time"

	"kmi-checker/core/symbols"
)

// Config holds the defaults of a KMI check.
type Config struct {
	// WhitelistPath is the ABI description checked when no whitelist is given.
	WhitelistPath string `mapstructure:"whitelist_path" default:"abi_gki_aarch64.xml"`
	// SymversPath is the Module.symvers checked when none is given.
	SymversPath string `mapstructure:"symvers_path" default:"Module.symvers"`
	// Categories lists the whitelist sections scanned for symbols.
	Categories []string `mapstructure:"categories" default:"elf-function-symbols,elf-variable-symbols"`
	// StrictDuplicates rejects a symbol listed twice in one source.
	StrictDuplicates bool `mapstructure:"strict_duplicates" default:"false"`
	// CacheTTLSeconds keeps parsed tables of storage sources in memory. 0 disables.
	CacheTTLSeconds int `mapstructure:"cache_ttl_seconds" default:"0"`
	// ReportPrefix is the storage prefix under which reports are archived.
	ReportPrefix string `mapstructure:"report_prefix" default:"reports"`
	// RecordHistory stores every run in the history database when one is reachable.
	RecordHistory bool `mapstructure:"record_history" default:"true"`
}

// CacheTTL returns the table cache TTL.
func (c Config) CacheTTL() time.Duration {
	return time.Duration(c.CacheTTLSeconds) * time.Second
}

// WhitelistOptions returns parser options for the given whitelist source.
func (c Config) WhitelistOptions(source string) symbols.WhitelistOptions {
	return symbols.WhitelistOptions{
		Source:     source,
		Categories: c.Categories,
		Strict:     c.StrictDuplicates,
	}
}

// SymversOptions returns parser options for the given symvers source.
func (c Config) SymversOptions(source string) symbols.SymversOptions {
	return symbols.SymversOptions{
		Source: source,
		Strict: c.StrictDuplicates,
	}
}
