package kmi

import (
	"bytes"
	"encoding/json"
	"testing"

	"kmi-checker/core/reconcile"
	"kmi-checker/core/symbols"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newReport(wl, mod symbols.Table) *Report {
	result := reconcile.Reconcile(wl, mod)
	return &Report{
		ID:      "run-1",
		Sources: Sources{Whitelist: "abi.xml", Symvers: "Module.symvers"},
		Passed:  result.Passed(),
		Result:  result,
	}
}

func TestRenderText(t *testing.T) {
	color.NoColor = true

	t.Run("Failed", func(t *testing.T) {
		var buf bytes.Buffer
		RenderText(&buf, newReport(
			symbols.Table{"foo": 0x1, "baz": 0x3},
			symbols.Table{"foo": 0x2},
		))
		out := buf.String()

		assert.Contains(t, out, "WARNING: 1 whitelisted symbol(s) not exported by Module.symvers")
		assert.Contains(t, out, "  baz\n")
		assert.Contains(t, out, "WHITELIST CRC")
		assert.Contains(t, out, "0x00000001")
		assert.Contains(t, out, "0x00000002")
		assert.Contains(t, out, "KMI check failed: 1 CRC mismatch(es)")
		assert.Contains(t, out, "missing: 1")
	})

	t.Run("Passed", func(t *testing.T) {
		var buf bytes.Buffer
		RenderText(&buf, newReport(symbols.Table{"foo": 0x1}, symbols.Table{"foo": 0x1, "bar": 0x2}))
		out := buf.String()

		assert.NotContains(t, out, "WARNING")
		assert.NotContains(t, out, "WHITELIST CRC")
		assert.Contains(t, out, "KMI check passed (whitelist: 1, exported: 2, consistent: 1, missing: 0)")
	})

	t.Run("Identical Inputs Render Identically", func(t *testing.T) {
		wl := symbols.Table{"c": 1, "a": 2, "b": 3, "d": 4}
		mod := symbols.Table{"c": 9, "a": 9, "b": 9}
		var first, second bytes.Buffer
		RenderText(&first, newReport(wl, mod))
		RenderText(&second, newReport(wl, mod))
		assert.Equal(t, first.String(), second.String())
	})
}

func TestRenderJSON(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, RenderJSON(&buf, newReport(symbols.Table{"foo": 0x1, "baz": 0x3}, symbols.Table{"foo": 0x2})))

	var body map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &body))
	assert.Equal(t, "run-1", body["id"])
	assert.Equal(t, false, body["passed"])
	assert.Equal(t, []any{"baz"}, body["missing"])

	mismatches := body["mismatches"].([]any)
	require.Len(t, mismatches, 1)
	assert.Equal(t, "0x00000001", mismatches[0].(map[string]any)["whitelist_crc"])
}
