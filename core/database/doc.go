// Package database handles the connection to the check history database.
//
// It wraps GORM and configures either a MySQL connection (shared deployments)
// or a sqlite file (local runs and tests) from the application's configuration.
//
// # Usage
//
//	db, err := database.Connect(cfg.Database)
//	if err != nil {
//	    logg.Warn("History disabled", zap.Error(err))
//	}
package database
