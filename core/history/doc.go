// Package history persists KMI check runs and their findings with GORM.
//
// Each run stores its sources, the reconciliation summary and one Finding row
// per missing or mismatched symbol, so CRC drift can be tracked across builds.
// The database is optional; callers pass a nil *Repository when it is not
// configured.
//
// # Tables
//
//   - kmi_check_runs: one row per check.
//   - kmi_check_findings: missing and mismatched symbols of a run.
package history
