package kmi

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"strings"
	"testing"

	"kmi-checker/core/database"
	"kmi-checker/core/history"
	"kmi-checker/core/reconcile"
	"kmi-checker/core/storage/mocks"
	"kmi-checker/core/symbols"

	"github.com/minio/minio-go/v7"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func testConfig() Config {
	return Config{
		WhitelistPath: "abi_gki_aarch64.xml",
		SymversPath:   "Module.symvers",
		Categories:    symbols.DefaultCategories,
		ReportPrefix:  "reports",
		RecordHistory: true,
	}
}

func newServiceReport(wl, mod symbols.Table) *Report {
	result := reconcile.Reconcile(wl, mod)
	return &Report{ID: "run-1", Passed: result.Passed(), Result: result}
}

func setupHistory(t *testing.T) *history.Repository {
	t.Helper()
	db, err := database.Connect(database.Config{Driver: "sqlite", Name: ":memory:"})
	require.NoError(t, err)
	repo := history.NewRepository(db)
	require.NoError(t, repo.Migrate())
	return repo
}

func TestService_Check(t *testing.T) {
	dir := t.TempDir()
	wl := writeFile(t, dir, "abi.xml", testWhitelist)
	failing := writeFile(t, dir, "failing.symvers", testSymversFailing)
	passing := writeFile(t, dir, "passing.symvers", testSymversPassing)

	svc := NewService(nil, "", zap.NewNop(), nil, testConfig())

	t.Run("Mismatch", func(t *testing.T) {
		report, err := svc.Check(context.Background(), Sources{Whitelist: wl, Symvers: failing})
		require.NoError(t, err)

		assert.False(t, report.Passed)
		assert.NotEmpty(t, report.ID)
		assert.Equal(t, []string{"baz"}, report.Missing)
		assert.Equal(t, []reconcile.Mismatch{{Symbol: "foo", Whitelist: 0x1, Module: 0x2}}, report.Mismatches)
		assert.Equal(t, 1, report.Summary.Consistent)
	})

	t.Run("Missing Only Passes", func(t *testing.T) {
		report, err := svc.Check(context.Background(), Sources{Whitelist: wl, Symvers: passing})
		require.NoError(t, err)

		assert.True(t, report.Passed)
		assert.Equal(t, []string{"baz"}, report.Missing)
		assert.Empty(t, report.Mismatches)
	})

	t.Run("Defaults", func(t *testing.T) {
		cfg := testConfig()
		cfg.WhitelistPath = wl
		cfg.SymversPath = passing
		report, err := NewService(nil, "", zap.NewNop(), nil, cfg).Check(context.Background(), Sources{})
		require.NoError(t, err)
		assert.Equal(t, Sources{Whitelist: wl, Symvers: passing}, report.Sources)
	})

	t.Run("Malformed Whitelist CRC", func(t *testing.T) {
		bad := writeFile(t, dir, "bad.xml", `<abi-corpus><elf-function-symbols><elf-symbol name='foo' crc='xyz'/></elf-function-symbols></abi-corpus>`)
		report, err := svc.Check(context.Background(), Sources{Whitelist: bad, Symvers: passing})
		assert.ErrorIs(t, err, symbols.ErrMalformedCRC)
		assert.Nil(t, report)
	})

	t.Run("Malformed Symvers", func(t *testing.T) {
		bad := writeFile(t, dir, "bad.symvers", "0x1\n")
		_, err := svc.Check(context.Background(), Sources{Whitelist: wl, Symvers: bad})
		assert.ErrorIs(t, err, symbols.ErrMalformedLine)
	})

	t.Run("Input Not Found", func(t *testing.T) {
		_, err := svc.Check(context.Background(), Sources{Whitelist: wl, Symvers: dir + "/absent.symvers"})
		assert.ErrorIs(t, err, symbols.ErrInputNotFound)
	})

	t.Run("Function Category Only", func(t *testing.T) {
		cfg := testConfig()
		cfg.Categories = []string{symbols.CategoryFunctions}
		report, err := NewService(nil, "", zap.NewNop(), nil, cfg).Check(context.Background(), Sources{Whitelist: wl, Symvers: failing})
		require.NoError(t, err)
		assert.Equal(t, 2, report.Summary.WhitelistSymbols)
	})
}

func TestService_CheckContent(t *testing.T) {
	svc := NewService(nil, "", zap.NewNop(), nil, testConfig())
	sources := Sources{Whitelist: "upload:abi.xml", Symvers: "upload:Module.symvers"}

	report, err := svc.CheckContent(context.Background(), sources, []byte(testWhitelist), []byte(testSymversFailing))
	require.NoError(t, err)
	assert.False(t, report.Passed)
	assert.Equal(t, sources, report.Sources)

	_, err = svc.CheckContent(context.Background(), sources, []byte("not xml"), []byte(testSymversFailing))
	assert.ErrorIs(t, err, symbols.ErrMalformedDocument)
}

func TestService_StorageSourcesAreCached(t *testing.T) {
	client := new(mocks.Client)
	// Once: a second read of either object fails the test
	client.On("GetObject", mock.Anything, "builds", "abi.xml", mock.Anything).
		Return(io.NopCloser(strings.NewReader(testWhitelist)), nil).Once()
	client.On("GetObject", mock.Anything, "builds", "Module.symvers", mock.Anything).
		Return(io.NopCloser(strings.NewReader(testSymversFailing)), nil).Once()

	cfg := testConfig()
	cfg.CacheTTLSeconds = 60
	svc := NewService(client, "builds", zap.NewNop(), nil, cfg)
	sources := Sources{Whitelist: "s3://builds/abi.xml", Symvers: "s3://builds/Module.symvers"}

	first, err := svc.Check(context.Background(), sources)
	require.NoError(t, err)
	second, err := svc.Check(context.Background(), sources)
	require.NoError(t, err)

	assert.Equal(t, first.Result, second.Result)
	assert.NotEqual(t, first.ID, second.ID)
	client.AssertNumberOfCalls(t, "GetObject", 2)
}

func TestService_History(t *testing.T) {
	dir := t.TempDir()
	wl := writeFile(t, dir, "abi.xml", testWhitelist)
	sv := writeFile(t, dir, "Module.symvers", testSymversFailing)

	t.Run("Recorded", func(t *testing.T) {
		svc := NewService(nil, "", zap.NewNop(), setupHistory(t), testConfig())

		report, err := svc.Check(context.Background(), Sources{Whitelist: wl, Symvers: sv})
		require.NoError(t, err)

		runs, err := svc.Runs(context.Background(), 10)
		require.NoError(t, err)
		require.Len(t, runs, 1)
		assert.Equal(t, report.ID, runs[0].ID)
		assert.False(t, runs[0].Passed)

		run, err := svc.Run(context.Background(), report.ID)
		require.NoError(t, err)
		require.Len(t, run.Findings, 2)
		assert.Equal(t, history.KindMismatch, run.Findings[0].Kind)
		assert.Equal(t, "foo", run.Findings[0].Symbol)
	})

	t.Run("Recording Disabled", func(t *testing.T) {
		cfg := testConfig()
		cfg.RecordHistory = false
		svc := NewService(nil, "", zap.NewNop(), setupHistory(t), cfg)

		_, err := svc.Check(context.Background(), Sources{Whitelist: wl, Symvers: sv})
		require.NoError(t, err)

		runs, err := svc.Runs(context.Background(), 10)
		require.NoError(t, err)
		assert.Empty(t, runs)
	})

	t.Run("No Database", func(t *testing.T) {
		svc := NewService(nil, "", zap.NewNop(), nil, testConfig())
		_, err := svc.Runs(context.Background(), 10)
		assert.ErrorIs(t, err, ErrHistoryDisabled)
		_, err = svc.Run(context.Background(), "x")
		assert.ErrorIs(t, err, ErrHistoryDisabled)
	})
}

func TestService_Archive(t *testing.T) {
	report := newServiceReport(symbols.Table{"foo": 1}, symbols.Table{"foo": 2})

	t.Run("Uploaded", func(t *testing.T) {
		client := new(mocks.Client)
		var uploaded []byte
		client.On("PutObject", mock.Anything, "kmi", "reports/run-1.json", mock.Anything, mock.Anything, mock.Anything).
			Run(func(args mock.Arguments) {
				uploaded, _ = io.ReadAll(args.Get(3).(io.Reader))
			}).
			Return(minio.UploadInfo{}, nil)

		svc := NewService(client, "kmi", zap.NewNop(), nil, testConfig())
		ref, err := svc.Archive(context.Background(), report)
		require.NoError(t, err)
		assert.Equal(t, "s3://kmi/reports/run-1.json", ref)
		assert.Equal(t, ref, report.ArchivedAs)

		var body map[string]any
		require.NoError(t, json.NewDecoder(bytes.NewReader(uploaded)).Decode(&body))
		assert.Equal(t, "run-1", body["id"])
		assert.Equal(t, ref, body["archived_as"])
	})

	t.Run("Upload Failure", func(t *testing.T) {
		client := new(mocks.Client)
		client.On("PutObject", mock.Anything, "kmi", mock.Anything, mock.Anything, mock.Anything, mock.Anything).
			Return(minio.UploadInfo{}, assert.AnError)

		r := newServiceReport(symbols.Table{}, symbols.Table{})
		_, err := NewService(client, "kmi", zap.NewNop(), nil, testConfig()).Archive(context.Background(), r)
		assert.ErrorIs(t, err, assert.AnError)
		assert.Empty(t, r.ArchivedAs)
	})

	t.Run("No Storage", func(t *testing.T) {
		_, err := NewService(nil, "", zap.NewNop(), nil, testConfig()).Archive(context.Background(), newServiceReport(symbols.Table{}, symbols.Table{}))
		assert.ErrorContains(t, err, "storage is not configured")
	})
}
