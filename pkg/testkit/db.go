package testkit

import (
	"fmt"
	"sync/atomic"
	"testing"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/shashiranjanraj/ordermanager/pkg/database"
)

var dbSeq atomic.Int64

// SQLite opens a private in-memory database for one test. The handle is
// limited to a single connection so every statement sees the same memory
// database, and it is closed when the test ends.
func SQLite(t testing.TB) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:testkit_%d?mode=memory&cache=shared&_loc=UTC", dbSeq.Add(1))
	db, err := database.OpenDialector(sqlite.Open(database.SQLiteDSN(dsn)))
	if err != nil {
		t.Fatalf("testkit: open sqlite: %v", err)
	}
	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("testkit: sql.DB: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })
	return db
}
