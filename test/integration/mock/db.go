// Package mock provides shared in-memory backing stores for the BDD suite.
//
// Both stores are process-wide singletons: the HTTP server under test and
// the step definitions must observe the same data, so the database rides on
// a single shared-cache SQLite connection and Redis on one miniredis
// instance.
package mock

import (
	"database/sql"
	"fmt"
	"sync"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var dbOnce sync.Once
var sharedDb *Db

// Db wraps the shared test database connection and the model set its
// schema is built from.
type Db struct {
	DbConn *gorm.DB
	models map[string]any
}

// NewDb returns the shared in-memory database, creating it and migrating
// the schema on first call. The map keys are table names; assertion steps
// use them to look up the model registered for a table.
func NewDb(models map[string]any) *Db {
	dbOnce.Do(func() {
		sharedDb = open(models)
	})
	return sharedDb
}

func open(models map[string]any) *Db {
	// A single shared-cache connection keeps the server and the test
	// assertions on the same in-memory database.
	conn, err := sql.Open("sqlite", "file::memory:?cache=shared")
	if err != nil {
		panic(err)
	}
	conn.SetMaxOpenConns(1)

	dbConn, err := gorm.Open(sqlite.Dialector{Conn: conn}, &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		panic(fmt.Sprintf("failed to open test database: %v", err))
	}

	d := &Db{DbConn: dbConn, models: models}
	if err := d.migrate(); err != nil {
		panic(fmt.Sprintf("failed to migrate test database: %v", err))
	}
	return d
}

func (d *Db) migrate() error {
	modelList := make([]any, 0, len(d.models))
	for _, m := range d.models {
		modelList = append(modelList, m)
	}
	return d.DbConn.AutoMigrate(modelList...)
}

// ClearDB deletes every row from every table, returning the database to a
// blank state between scenarios. The schema itself stays in place.
func (d *Db) ClearDB() error {
	for table, m := range d.models {
		err := d.DbConn.Session(&gorm.Session{AllowGlobalUpdate: true}).Unscoped().Delete(m).Error
		if err != nil {
			return fmt.Errorf("failed to clear table %s: %w", table, err)
		}
	}
	return nil
}

// GetModel returns the model registered for a table name.
func (d *Db) GetModel(table string) (any, bool) {
	m, ok := d.models[table]
	return m, ok
}
