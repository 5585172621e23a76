package kmi

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/fatih/color"
	"github.com/olekukonko/tablewriter"
)

// RenderText writes the human readable report: the missing symbols as a
// warning, the CRC mismatches as a table, and the verdict.
func RenderText(w io.Writer, report *Report) {
	warn := color.New(color.FgYellow)
	fail := color.New(color.FgRed, color.Bold)
	pass := color.New(color.FgGreen, color.Bold)

	if len(report.Missing) > 0 {
		warn.Fprintf(w, "WARNING: %d whitelisted symbol(s) not exported by %s:\n", len(report.Missing), report.Sources.Symvers)
		for _, name := range report.Missing {
			fmt.Fprintf(w, "  %s\n", name)
		}
		fmt.Fprintln(w)
	}

	if len(report.Mismatches) > 0 {
		table := tablewriter.NewWriter(w)
		table.SetHeader([]string{"Symbol", "Whitelist CRC", "Module CRC"})
		for _, m := range report.Mismatches {
			table.Append([]string{m.Symbol, m.Whitelist.String(), m.Module.String()})
		}
		table.Render()
		fmt.Fprintln(w)
	}

	s := report.Summary
	if report.Passed {
		pass.Fprint(w, "KMI check passed")
	} else {
		fail.Fprintf(w, "KMI check failed: %d CRC mismatch(es)", s.Mismatches)
	}
	fmt.Fprintf(w, " (whitelist: %d, exported: %d, consistent: %d, missing: %d)\n",
		s.WhitelistSymbols, s.ModuleSymbols, s.Consistent, s.Missing)
}

// RenderJSON writes the report as indented JSON.
func RenderJSON(w io.Writer, report *Report) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(report)
}
