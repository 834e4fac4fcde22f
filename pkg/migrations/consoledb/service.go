// Package consoledb holds all the migrations for the console database
package consoledb

import (
	"github.com/uptrace/bun/migrate"
)

// Migrations is the collection of all migrations for the console database
var Migrations = migrate.NewMigrations()
