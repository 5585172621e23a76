// Package symbols turns the two kernel symbol-version sources into comparable
// symbol tables.
//
// # Sources
//
//   - Whitelist: an ABI description XML document listing the symbols a kernel
//     promises to export, grouped in category sections (elf-function-symbols,
//     elf-variable-symbols), each elf-symbol carrying a name and a crc attribute.
//   - Symvers: the Module.symvers table emitted by a kernel build, one
//     "<crc> <symbol> [module] [export type] [namespace]" record per line.
//
// # Normalization
//
// Both sources spell CRCs differently (padding, casing, prefix). Every CRC is
// converted to a CRC value at parse time, so tables can be compared with plain
// integer equality.
//
// # Errors
//
// Parse failures wrap one of the sentinel errors (ErrMalformedCRC,
// ErrMalformedDocument, ErrMissingAttribute, ErrMalformedLine) in a *ParseError
// that names the source and line. Use errors.Is to classify them.
//
// # Usage
//
//	wl, err := symbols.ParseWhitelist(f, symbols.WhitelistOptions{Source: "abi.xml"})
//	mod, err := symbols.ParseSymvers(g, symbols.SymversOptions{Source: "Module.symvers"})
package symbols
