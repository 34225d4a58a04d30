// Package database handles database connections, migrations and schema inspection.
//
// Connect opens either MySQL (production) or SQLite (local runs and tests, through
// the pure Go glebarez driver) with GORM, applies pool settings and pings the
// server. Migrate creates the marketplace tables from the models package.
//
// # Schema Inspection
//
// GetTableColumns reads live column definitions (SHOW COLUMNS on MySQL, PRAGMA
// table_info on SQLite). VerifySchema uses it to list tables or columns the models
// expect but the database lacks, which backs `migrate --verify`.
//
// # Usage
//
//	db, err := database.Connect(cfg.Database)
//	if err != nil {
//	    log.Fatal("Database connection failed", err)
//	}
//	if err := database.Migrate(db); err != nil {
//	    log.Fatal(err)
//	}
package database
