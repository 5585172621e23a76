package symbols

import (
	"slices"

	"github.com/samber/lo"
)

// Table maps a symbol name to its normalized CRC.
type Table map[string]CRC

// Names returns the symbol names in lexicographic order.
func (t Table) Names() []string {
	names := lo.Keys(t)
	slices.Sort(names)
	return names
}

// Has reports whether the table contains name.
func (t Table) Has(name string) bool {
	_, ok := t[name]
	return ok
}
