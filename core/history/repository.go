package history

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"
)

// ErrRunNotFound is returned when no run has the requested id.
var ErrRunNotFound = errors.New("check run not found")

// DefaultListLimit bounds List when no limit is given.
const DefaultListLimit = 50

// Repository reads and writes check runs.
type Repository struct {
	db *gorm.DB
}

// NewRepository creates a repository on an open connection.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// Migrate creates or updates the history tables.
func (r *Repository) Migrate() error {
	if err := r.db.AutoMigrate(&CheckRun{}, &Finding{}); err != nil {
		return fmt.Errorf("failed to migrate history tables: %w", err)
	}
	return nil
}

// Save stores a run together with its findings.
func (r *Repository) Save(ctx context.Context, run *CheckRun) error {
	if err := r.db.WithContext(ctx).Create(run).Error; err != nil {
		return fmt.Errorf("failed to save check run %s: %w", run.ID, err)
	}
	return nil
}

// List returns the most recent runs, newest first, without findings.
func (r *Repository) List(ctx context.Context, limit int) ([]CheckRun, error) {
	if limit <= 0 {
		limit = DefaultListLimit
	}
	var runs []CheckRun
	err := r.db.WithContext(ctx).
		Order("created_at DESC").
		Limit(limit).
		Find(&runs).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list check runs: %w", err)
	}
	return runs, nil
}

// Get returns a run with its findings, mismatches first.
func (r *Repository) Get(ctx context.Context, id string) (*CheckRun, error) {
	var run CheckRun
	err := r.db.WithContext(ctx).
		Preload("Findings", func(db *gorm.DB) *gorm.DB {
			return db.Order("id ASC")
		}).
		First(&run, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("%w: %s", ErrRunNotFound, id)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load check run %s: %w", id, err)
	}
	return &run, nil
}
