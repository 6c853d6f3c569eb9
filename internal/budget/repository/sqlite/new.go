package sqlite

import (
	"database/sql"
	"fmt"

	"care-coordination/internal/budget/repository"
	"care-coordination/pkg/log"
)

type implRepository struct {
	db *sql.DB
	l  log.Logger
}

// New creates a SQLite-backed Repository for the budget domain.
func New(db *sql.DB, l log.Logger) repository.Repository {
	if db == nil {
		panic("budget/repository/sqlite: db is required")
	}
	return &implRepository{db: db, l: l}
}

// dsn returns a method-scoped context string for logging.
func (r *implRepository) dsn(method string) string {
	return fmt.Sprintf("budget/repository/sqlite.%s", method)
}
