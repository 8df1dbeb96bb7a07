// Package migration runs versioned schema migrations and records them in the
// schema_migrations table.
//
// Migrations register themselves from an init function:
//
//	func init() {
//	    migration.Register("20240101000000_create_customers_table", &CreateCustomersTable{})
//	}
//
// and are applied from the CLI:
//
//	ordermanager migrate             // run all pending
//	ordermanager migrate:rollback    // roll back the last batch
//	ordermanager migrate:status
package migration

import (
	"errors"
	"fmt"
	"io"
	"os"
	"sort"
	"time"

	"gorm.io/gorm"

	"github.com/shashiranjanraj/ordermanager/pkg/logger"
)

// Migration is the interface every migration must implement.
type Migration interface {
	Up(db *gorm.DB) error
	Down(db *gorm.DB) error
}

type record struct {
	ID    uint      `gorm:"primaryKey;autoIncrement"`
	Name  string    `gorm:"uniqueIndex;size:255;not null"`
	Batch int       `gorm:"not null"`
	RunAt time.Time `gorm:"autoCreateTime"`
}

func (record) TableName() string { return "schema_migrations" }

type registered struct {
	name string
	m    Migration
}

var registry []registered

// Register adds a migration to the global registry. Names are timestamp
// prefixed and applied in lexical order.
func Register(name string, m Migration) {
	registry = append(registry, registered{name: name, m: m})
}

// ErrNoMigrations is returned by Run when nothing has been registered.
var ErrNoMigrations = errors.New("no migrations registered")

// Status is one row of the migrate:status table.
type Status struct {
	Name  string
	Ran   bool
	Batch int
}

// Runner executes and tracks migrations.
type Runner struct {
	db  *gorm.DB
	out io.Writer
}

func New(db *gorm.DB) *Runner {
	return &Runner{db: db, out: os.Stdout}
}

// WithOutput redirects progress lines, io.Discard silences them.
func (r *Runner) WithOutput(w io.Writer) *Runner {
	r.out = w
	return r
}

func (r *Runner) ensureTable() error {
	if err := r.db.AutoMigrate(&record{}); err != nil {
		return fmt.Errorf("migration: ensure table: %w", err)
	}
	return nil
}

func (r *Runner) pending() ([]registered, error) {
	var ran []record
	if err := r.db.Find(&ran).Error; err != nil {
		return nil, fmt.Errorf("migration: fetch ran: %w", err)
	}
	done := make(map[string]bool, len(ran))
	for _, rec := range ran {
		done[rec.Name] = true
	}

	var out []registered
	for _, reg := range registry {
		if !done[reg.name] {
			out = append(out, reg)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].name < out[j].name })
	return out, nil
}

// Run applies every pending migration as one batch. Each migration and its
// record are committed together.
func (r *Runner) Run() error {
	if len(registry) == 0 {
		return ErrNoMigrations
	}
	if err := r.ensureTable(); err != nil {
		return err
	}
	pending, err := r.pending()
	if err != nil {
		return err
	}
	if len(pending) == 0 {
		fmt.Fprintln(r.out, "Nothing to migrate.")
		return nil
	}

	batch, err := r.lastBatch()
	if err != nil {
		return err
	}
	batch++

	for _, reg := range pending {
		fmt.Fprintf(r.out, "  ▶ Migrating: %s\n", reg.name)
		err := r.db.Transaction(func(tx *gorm.DB) error {
			if err := reg.m.Up(tx); err != nil {
				return err
			}
			return tx.Create(&record{Name: reg.name, Batch: batch}).Error
		})
		if err != nil {
			return fmt.Errorf("migration: %s up: %w", reg.name, err)
		}
		fmt.Fprintf(r.out, "  ✅ Migrated:  %s\n", reg.name)
	}

	logger.Info("migration: done", "ran", len(pending), "batch", batch)
	return nil
}

// Rollback reverses every migration of the most recent batch.
func (r *Runner) Rollback() error {
	if err := r.ensureTable(); err != nil {
		return err
	}
	batch, err := r.lastBatch()
	if err != nil {
		return err
	}
	if batch == 0 {
		fmt.Fprintln(r.out, "Nothing to roll back.")
		return nil
	}

	var records []record
	if err := r.db.Where("batch = ?", batch).Order("id desc").Find(&records).Error; err != nil {
		return fmt.Errorf("migration: fetch batch %d: %w", batch, err)
	}

	byName := make(map[string]Migration, len(registry))
	for _, reg := range registry {
		byName[reg.name] = reg.m
	}

	for _, rec := range records {
		m, ok := byName[rec.Name]
		if !ok {
			return fmt.Errorf("migration: cannot roll back %s: not registered", rec.Name)
		}
		fmt.Fprintf(r.out, "  ◀ Rolling back: %s\n", rec.Name)
		rec := rec
		err := r.db.Transaction(func(tx *gorm.DB) error {
			if err := m.Down(tx); err != nil {
				return err
			}
			return tx.Delete(&rec).Error
		})
		if err != nil {
			return fmt.Errorf("migration: %s down: %w", rec.Name, err)
		}
		logger.Info("migration: rolled back", "name", rec.Name)
	}
	return nil
}

// Status lists every registered migration and whether it has run.
func (r *Runner) Status() ([]Status, error) {
	if err := r.ensureTable(); err != nil {
		return nil, err
	}
	var ran []record
	if err := r.db.Find(&ran).Error; err != nil {
		return nil, fmt.Errorf("migration: fetch ran: %w", err)
	}
	batches := make(map[string]int, len(ran))
	for _, rec := range ran {
		batches[rec.Name] = rec.Batch
	}

	out := make([]Status, 0, len(registry))
	for _, reg := range registry {
		b, ok := batches[reg.name]
		out = append(out, Status{Name: reg.name, Ran: ok, Batch: b})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

func (r *Runner) lastBatch() (int, error) {
	var max struct{ Max int }
	if err := r.db.Model(&record{}).Select("COALESCE(MAX(batch), 0) AS max").Scan(&max).Error; err != nil {
		return 0, fmt.Errorf("migration: last batch: %w", err)
	}
	return max.Max, nil
}
