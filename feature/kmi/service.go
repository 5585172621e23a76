package kmi

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"path"
	"strings"
	"time"

	"kmi-checker/core/history"
	"kmi-checker/core/reconcile"
	"kmi-checker/core/storage"
	"kmi-checker/core/symbols"

	"github.com/google/uuid"
	"github.com/minio/minio-go/v7"
	"go.uber.org/zap"
)

// ErrHistoryDisabled is returned by history queries when no database is configured.
var ErrHistoryDisabled = errors.New("check history is not configured")

// Report is the outcome of one KMI check.
type Report struct {
	// ID identifies the run in history and archived reports.
	ID string `json:"id"`
	// Sources are the inputs that were compared.
	Sources Sources `json:"sources"`
	// Passed is true when no whitelisted CRC drifted.
	Passed bool `json:"passed"`

	reconcile.Result

	GeneratedAt   string `json:"generated_at"`
	ExecutionTime string `json:"execution_time"`
	// ArchivedAs is the storage reference of the archived report, if any.
	ArchivedAs string `json:"archived_as,omitempty"`
}

// Service runs KMI checks.
type Service struct {
	opener  *Opener
	client  storage.Client
	bucket  string
	logger  *zap.Logger
	history *history.Repository
	cfg     Config
	cache   *tableCache
}

// NewService creates a new KMI service. client and repo may be nil.
func NewService(client storage.Client, bucket string, logger *zap.Logger, repo *history.Repository, cfg Config) *Service {
	return &Service{
		opener:  NewOpener(client, bucket),
		client:  client,
		bucket:  bucket,
		logger:  logger,
		history: repo,
		cfg:     cfg,
		cache:   newTableCache(cfg.CacheTTL()),
	}
}

// Config returns the service configuration.
func (s *Service) Config() Config {
	return s.cfg
}

// Check compares the whitelist and symvers referenced by sources. Empty
// references fall back to the configured defaults.
func (s *Service) Check(ctx context.Context, sources Sources) (*Report, error) {
	start := time.Now()
	sources = sources.WithDefaults(s.cfg)

	wl, err := s.loadTable(ctx, "whitelist", sources.Whitelist, func(data []byte) (symbols.Table, error) {
		return symbols.ParseWhitelist(bytes.NewReader(data), s.cfg.WhitelistOptions(sources.Whitelist))
	})
	if err != nil {
		return nil, err
	}

	mod, err := s.loadTable(ctx, "symvers", sources.Symvers, func(data []byte) (symbols.Table, error) {
		return symbols.ParseSymvers(bytes.NewReader(data), s.cfg.SymversOptions(sources.Symvers))
	})
	if err != nil {
		return nil, err
	}

	return s.finish(ctx, sources, wl, mod, start), nil
}

// CheckContent compares already-read inputs, e.g. uploaded files. sources only
// names them.
func (s *Service) CheckContent(ctx context.Context, sources Sources, whitelist, symvers []byte) (*Report, error) {
	start := time.Now()

	wl, err := symbols.ParseWhitelist(bytes.NewReader(whitelist), s.cfg.WhitelistOptions(sources.Whitelist))
	if err != nil {
		return nil, err
	}
	mod, err := symbols.ParseSymvers(bytes.NewReader(symvers), s.cfg.SymversOptions(sources.Symvers))
	if err != nil {
		return nil, err
	}

	return s.finish(ctx, sources, wl, mod, start), nil
}

// loadTable reads and parses one source. Storage sources go through the
// table cache; local files are always re-read.
func (s *Service) loadTable(ctx context.Context, kind, ref string, parse func([]byte) (symbols.Table, error)) (symbols.Table, error) {
	load := func() (symbols.Table, error) {
		data, err := s.opener.ReadAll(ctx, ref)
		if err != nil {
			return nil, err
		}
		s.logger.Debug("Loaded source", zap.String("kind", kind), zap.String("source", ref), zap.Int("bytes", len(data)))
		return parse(data)
	}

	if !IsStorageRef(ref) {
		return load()
	}
	key := strings.Join([]string{kind, ref, strings.Join(s.cfg.Categories, ","), fmt.Sprint(s.cfg.StrictDuplicates)}, "|")
	return s.cache.getOrLoad(key, load)
}

func (s *Service) finish(ctx context.Context, sources Sources, wl, mod symbols.Table, start time.Time) *Report {
	result := reconcile.Reconcile(wl, mod)
	elapsed := time.Since(start)

	report := &Report{
		ID:            uuid.NewString(),
		Sources:       sources,
		Passed:        result.Passed(),
		Result:        result,
		GeneratedAt:   time.Now().Format(time.RFC3339),
		ExecutionTime: elapsed.String(),
	}

	if s.history != nil && s.cfg.RecordHistory {
		run := history.NewCheckRun(report.ID, sources.Whitelist, sources.Symvers, result, elapsed, time.Now())
		if err := s.history.Save(ctx, run); err != nil {
			// History is best effort; the check result stands on its own.
			s.logger.Warn("Failed to record check run", zap.String("run_id", report.ID), zap.Error(err))
		}
	}

	return report
}

// Archive uploads the report as JSON under the configured report prefix and
// records the resulting reference in report.ArchivedAs.
func (s *Service) Archive(ctx context.Context, report *Report) (string, error) {
	if s.client == nil {
		return "", fmt.Errorf("storage is not configured, cannot archive report %s", report.ID)
	}

	key := path.Join(s.cfg.ReportPrefix, report.ID+".json")
	ref := StorageScheme + s.bucket + "/" + key
	report.ArchivedAs = ref

	data, err := json.MarshalIndent(report, "", "  ")
	if err != nil {
		report.ArchivedAs = ""
		return "", fmt.Errorf("failed to marshal report: %w", err)
	}

	_, err = s.client.PutObject(ctx, s.bucket, key, bytes.NewReader(data), int64(len(data)), minio.PutObjectOptions{
		ContentType: "application/json",
	})
	if err != nil {
		report.ArchivedAs = ""
		return "", fmt.Errorf("failed to archive report %s: %w", report.ID, err)
	}

	return ref, nil
}

// Runs lists recent check runs, newest first.
func (s *Service) Runs(ctx context.Context, limit int) ([]history.CheckRun, error) {
	if s.history == nil {
		return nil, ErrHistoryDisabled
	}
	return s.history.List(ctx, limit)
}

// Run returns one check run with its findings.
func (s *Service) Run(ctx context.Context, id string) (*history.CheckRun, error) {
	if s.history == nil {
		return nil, ErrHistoryDisabled
	}
	return s.history.Get(ctx, id)
}
