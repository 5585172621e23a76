package history

import (
	"time"

	"kmi-checker/core/reconcile"
)

// Finding kinds.
const (
	KindMissing  = "missing"
	KindMismatch = "mismatch"
)

// CheckRun represents the 'kmi_check_runs' table.
type CheckRun struct {
	ID               string    `gorm:"column:id;primaryKey;size:36" json:"id"`
	WhitelistSource  string    `gorm:"column:whitelist_source;size:1024" json:"whitelist_source"`
	SymversSource    string    `gorm:"column:symvers_source;size:1024" json:"symvers_source"`
	WhitelistSymbols int       `gorm:"column:whitelist_symbols" json:"whitelist_symbols"`
	ModuleSymbols    int       `gorm:"column:module_symbols" json:"module_symbols"`
	Consistent       int       `gorm:"column:consistent" json:"consistent"`
	Missing          int       `gorm:"column:missing" json:"missing"`
	Mismatches       int       `gorm:"column:mismatches" json:"mismatches"`
	Passed           bool      `gorm:"column:passed;index" json:"passed"`
	DurationMs       int64     `gorm:"column:duration_ms" json:"duration_ms"`
	CreatedAt        time.Time `gorm:"column:created_at;index" json:"created_at"`
	Findings         []Finding `gorm:"foreignKey:RunID;constraint:OnDelete:CASCADE" json:"findings,omitempty"`
}

// TableName overrides the table name.
func (CheckRun) TableName() string {
	return "kmi_check_runs"
}

// Finding represents the 'kmi_check_findings' table.
type Finding struct {
	ID           uint   `gorm:"column:id;primaryKey" json:"-"`
	RunID        string `gorm:"column:run_id;size:36;index" json:"-"`
	Kind         string `gorm:"column:kind;size:16" json:"kind"`
	Symbol       string `gorm:"column:symbol;size:512" json:"symbol"`
	WhitelistCRC string `gorm:"column:whitelist_crc;size:10" json:"whitelist_crc,omitempty"`
	ModuleCRC    string `gorm:"column:module_crc;size:10" json:"module_crc,omitempty"`
}

// TableName overrides the table name.
func (Finding) TableName() string {
	return "kmi_check_findings"
}

// NewCheckRun converts a reconciliation result into a storable run.
func NewCheckRun(id, whitelistSource, symversSource string, result reconcile.Result, duration time.Duration, at time.Time) *CheckRun {
	run := &CheckRun{
		ID:               id,
		WhitelistSource:  whitelistSource,
		SymversSource:    symversSource,
		WhitelistSymbols: result.Summary.WhitelistSymbols,
		ModuleSymbols:    result.Summary.ModuleSymbols,
		Consistent:       result.Summary.Consistent,
		Missing:          result.Summary.Missing,
		Mismatches:       result.Summary.Mismatches,
		Passed:           result.Passed(),
		DurationMs:       duration.Milliseconds(),
		CreatedAt:        at,
		Findings:         make([]Finding, 0, len(result.Missing)+len(result.Mismatches)),
	}

	for _, m := range result.Mismatches {
		run.Findings = append(run.Findings, Finding{
			RunID:        id,
			Kind:         KindMismatch,
			Symbol:       m.Symbol,
			WhitelistCRC: m.Whitelist.String(),
			ModuleCRC:    m.Module.String(),
		})
	}
	for _, name := range result.Missing {
		run.Findings = append(run.Findings, Finding{
			RunID:  id,
			Kind:   KindMissing,
			Symbol: name,
		})
	}

	return run
}
