// Package migrations registers the schema migrations. Importing it (the CLI
// and the store tests do) is enough to make them runnable.
package migrations

import (
	"io"

	"gorm.io/gorm"

	"github.com/shashiranjanraj/ordermanager/pkg/migration"
)

// Up applies every pending migration to db without progress output.
func Up(db *gorm.DB) error {
	return migration.New(db).WithOutput(io.Discard).Run()
}
