package reconcile

import (
	"kmi-checker/core/symbols"
)

// Reconcile classifies every whitelisted symbol as missing, mismatched or
// consistent against the build table. Neither table is modified.
func Reconcile(whitelist, module symbols.Table) Result {
	result := Result{
		Missing:    []string{},
		Mismatches: []Mismatch{},
		Summary: Summary{
			WhitelistSymbols: len(whitelist),
			ModuleSymbols:    len(module),
		},
	}

	// Walk in name order so both lists come out sorted
	for _, name := range whitelist.Names() {
		want := whitelist[name]
		got, present := module[name]

		switch {
		case !present:
			result.Missing = append(result.Missing, name)
		case got != want:
			result.Mismatches = append(result.Mismatches, Mismatch{
				Symbol:    name,
				Whitelist: want,
				Module:    got,
			})
		default:
			result.Summary.Consistent++
		}
	}

	result.Summary.Missing = len(result.Missing)
	result.Summary.Mismatches = len(result.Mismatches)
	return result
}
