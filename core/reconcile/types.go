package reconcile

import "kmi-checker/core/symbols"

// Mismatch is a whitelisted symbol exported with a different CRC.
type Mismatch struct {
	// Symbol is the exported symbol name.
	Symbol string `json:"symbol"`

	// Whitelist is the CRC promised by the whitelist.
	Whitelist symbols.CRC `json:"whitelist_crc"`

	// Module is the CRC found in the build.
	Module symbols.CRC `json:"module_crc"`
}

// Summary provides aggregate counts for a reconciliation.
type Summary struct {
	// WhitelistSymbols is the number of symbols in the whitelist table.
	WhitelistSymbols int `json:"whitelist_symbols"`

	// ModuleSymbols is the number of symbols in the build table.
	ModuleSymbols int `json:"module_symbols"`

	// Consistent counts whitelisted symbols exported with the expected CRC.
	Consistent int `json:"consistent"`

	// Missing counts whitelisted symbols absent from the build.
	Missing int `json:"missing"`

	// Mismatches counts whitelisted symbols exported with another CRC.
	Mismatches int `json:"mismatches"`
}

// Result is the outcome of comparing a whitelist table with a build table.
type Result struct {
	// Missing lists whitelisted symbols absent from the build, sorted.
	Missing []string `json:"missing"`

	// Mismatches lists CRC drifts, sorted by symbol.
	Mismatches []Mismatch `json:"mismatches"`

	// Summary provides aggregate counts.
	Summary Summary `json:"summary"`
}

// Passed reports whether the build preserves every whitelisted CRC it exports.
// Missing symbols do not fail a check.
func (r *Result) Passed() bool {
	return len(r.Mismatches) == 0
}
