package cmd

import (
	"kmi-checker/core/database"
	"kmi-checker/core/history"

	"go.uber.org/zap"
)

// openHistory connects to the history database and migrates its tables.
// The database is optional: failures are logged and nil is returned.
func openHistory(cfg database.Config, logg *zap.Logger) *history.Repository {
	db, err := database.Connect(cfg)
	if err != nil {
		logg.Warn("Optional database connection failed, check history disabled", zap.Error(err))
		return nil
	}
	repo := history.NewRepository(db)
	if err := repo.Migrate(); err != nil {
		logg.Warn("History migration failed, check history disabled", zap.Error(err))
		return nil
	}
	logg.Debug("Connected to history database", zap.String("driver", cfg.Driver))
	return repo
}
