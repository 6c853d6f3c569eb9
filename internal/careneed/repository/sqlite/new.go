package sqlite

import (
	"database/sql"
	"fmt"

	"care-coordination/internal/careneed/repository"
	"care-coordination/pkg/log"
)

type implRepository struct {
	db *sql.DB
	l  log.Logger
}

// New creates a SQLite-backed Repository for the care-need domain.
func New(db *sql.DB, l log.Logger) repository.Repository {
	if db == nil {
		panic("careneed/repository/sqlite: db is required")
	}
	return &implRepository{db: db, l: l}
}

// dsn returns a method-scoped context string for logging.
func (r *implRepository) dsn(method string) string {
	return fmt.Sprintf("careneed/repository/sqlite.%s", method)
}
