// Package reconcile compares a KMI whitelist symbol table against the symbol
// table of a kernel build.
//
// Every whitelisted symbol falls into exactly one class:
//
//   - Missing: not exported by the build at all. Reported as a warning, since
//     a symbol can legitimately disappear with a build configuration change.
//   - Mismatch: exported with a different CRC. Any module built against the
//     whitelist will fail to load, so a mismatch fails the check.
//   - Consistent: exported with the same CRC.
//
// Symbols exported by the build but absent from the whitelist are ignored.
//
// Results are sorted by symbol name so two runs over identical inputs render
// identically.
//
// # Usage
//
//	result := reconcile.Reconcile(whitelist, module)
//	if !result.Passed() {
//	    for _, m := range result.Mismatches {
//	        fmt.Println(m.Symbol, m.Whitelist, m.Module)
//	    }
//	}
package reconcile
