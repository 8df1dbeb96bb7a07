package migration

import (
	"bytes"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/shashiranjanraj/ordermanager/pkg/testkit"
)

type note struct {
	ID   uint `gorm:"primaryKey"`
	Body string
}

type tag struct {
	ID   uint `gorm:"primaryKey"`
	Name string
}

type createTable struct{ model interface{} }

func (m createTable) Up(db *gorm.DB) error   { return db.Migrator().CreateTable(m.model) }
func (m createTable) Down(db *gorm.DB) error { return db.Migrator().DropTable(m.model) }

type failing struct{}

func (failing) Up(*gorm.DB) error   { return errors.New("boom") }
func (failing) Down(*gorm.DB) error { return nil }

// useRegistry swaps the global registry for the duration of the test.
func useRegistry(t *testing.T, regs ...registered) {
	t.Helper()
	saved := registry
	registry = regs
	t.Cleanup(func() { registry = saved })
}

func TestRunWithoutMigrations(t *testing.T) {
	useRegistry(t)
	assert.ErrorIs(t, New(testkit.SQLite(t)).WithOutput(&bytes.Buffer{}).Run(), ErrNoMigrations)
}

func TestRunStatusRollback(t *testing.T) {
	db := testkit.SQLite(t)
	var out bytes.Buffer
	runner := New(db).WithOutput(&out)

	useRegistry(t, registered{"20240101000000_create_notes", createTable{&note{}}})
	require.NoError(t, runner.Run())
	assert.Contains(t, out.String(), "Migrated:  20240101000000_create_notes")

	// A second run in a later batch.
	registry = append(registry, registered{"20240102000000_create_tags", createTable{&tag{}}})
	require.NoError(t, runner.Run())

	status, err := runner.Status()
	require.NoError(t, err)
	assert.Equal(t, []Status{
		{Name: "20240101000000_create_notes", Ran: true, Batch: 1},
		{Name: "20240102000000_create_tags", Ran: true, Batch: 2},
	}, status)

	out.Reset()
	require.NoError(t, runner.Run())
	assert.Equal(t, "Nothing to migrate.\n", out.String())

	require.NoError(t, runner.Rollback())
	assert.True(t, db.Migrator().HasTable(&note{}))
	assert.False(t, db.Migrator().HasTable(&tag{}))

	status, err = runner.Status()
	require.NoError(t, err)
	assert.False(t, status[1].Ran)

	require.NoError(t, runner.Rollback())
	assert.False(t, db.Migrator().HasTable(&note{}))

	out.Reset()
	require.NoError(t, runner.Rollback())
	assert.Equal(t, "Nothing to roll back.\n", out.String())
}

func TestFailedMigrationIsNotRecorded(t *testing.T) {
	db := testkit.SQLite(t)
	useRegistry(t,
		registered{"20240101000000_create_notes", createTable{&note{}}},
		registered{"20240101000001_broken", failing{}},
	)
	runner := New(db).WithOutput(&bytes.Buffer{})

	err := runner.Run()
	assert.ErrorContains(t, err, "20240101000001_broken up: boom")

	status, err := runner.Status()
	require.NoError(t, err)
	assert.True(t, status[0].Ran)
	assert.False(t, status[1].Ran)
}

func TestRollbackUnknownMigration(t *testing.T) {
	db := testkit.SQLite(t)
	useRegistry(t, registered{"20240101000000_create_notes", createTable{&note{}}})
	runner := New(db).WithOutput(&bytes.Buffer{})
	require.NoError(t, runner.Run())

	registry = nil
	assert.ErrorContains(t, runner.Rollback(), "not registered")
}
