// Package mock provides in-process stand-ins for the infrastructure the API
// depends on during integration tests.
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
var db *Db

// Db wraps a shared in-memory sqlite database migrated with the application
// models, keyed by table name so steps can assert on row counts.
type Db struct {
	DbConn *gorm.DB
	models map[string]any
}

// NewDb opens (once) the shared in-memory database and migrates the given
// models.
func NewDb(models map[string]any) *Db {
	dbOnce.Do(func() {
		db = open(models)
	})
	return db
}

func open(models map[string]any) *Db {
	dbSQL, err := sql.Open("sqlite", "file::memory:?cache=shared")
	if err != nil {
		panic(err)
	}

	// A single connection keeps every session on the same in-memory database.
	dbSQL.SetMaxOpenConns(1)

	conn, err := gorm.Open(sqlite.Dialector{Conn: dbSQL}, &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		panic("failed to connect to database: " + err.Error())
	}

	d := &Db{DbConn: conn, models: models}

	modelList := make([]any, 0, len(models))
	for _, model := range models {
		modelList = append(modelList, model)
	}
	if err := conn.AutoMigrate(modelList...); err != nil {
		panic("failed to migrate test database: " + err.Error())
	}

	return d
}

// ClearDB wipes every migrated table between scenarios.
func (d *Db) ClearDB() error {
	for table, model := range d.models {
		err := d.DbConn.Session(&gorm.Session{AllowGlobalUpdate: true}).Unscoped().Delete(model).Error
		if err != nil {
			return fmt.Errorf("failed to clear table %s: %w", table, err)
		}
	}
	return nil
}

// GetModel returns the model registered for a table name.
func (d *Db) GetModel(table string) (any, bool) {
	model, ok := d.models[table]
	return model, ok
}
