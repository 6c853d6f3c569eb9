// Package sqlite opens the service database and applies the schema.
// Repositories receive the *sql.DB and own their queries.
package sqlite

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	_ "modernc.org/sqlite" // register sqlite driver
)

const schemaSQL = `
CREATE TABLE IF NOT EXISTS care_need_items (
	id               TEXT PRIMARY KEY,
	organization_id  TEXT NOT NULL,
	person_id        TEXT NOT NULL,
	name             TEXT NOT NULL,
	category         TEXT NOT NULL DEFAULT '',
	status           TEXT NOT NULL DEFAULT 'active',
	interval_type    TEXT NOT NULL,
	interval_value   INTEGER NOT NULL DEFAULT 0,
	start_date       TEXT,
	end_date         TEXT,
	occurrence_count INTEGER NOT NULL DEFAULT 0,
	schedule_type    TEXT NOT NULL DEFAULT 'all_day',
	time_start       TEXT,
	time_end         TEXT,
	purchase_cost    TEXT NOT NULL DEFAULT '0',
	occurrence_cost  TEXT NOT NULL DEFAULT '0',
	budget_cost      TEXT NOT NULL DEFAULT '0',
	created_at       TIMESTAMP NOT NULL,
	updated_at       TIMESTAMP NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_care_need_items_org_person
	ON care_need_items(organization_id, person_id);

CREATE TABLE IF NOT EXISTS care_need_budgets (
	item_id TEXT NOT NULL REFERENCES care_need_items(id) ON DELETE CASCADE,
	year    INTEGER NOT NULL,
	amount  TEXT NOT NULL DEFAULT '0',
	PRIMARY KEY (item_id, year)
);

CREATE TABLE IF NOT EXISTS care_tasks (
	id                TEXT PRIMARY KEY,
	care_need_item_id TEXT NOT NULL REFERENCES care_need_items(id) ON DELETE CASCADE,
	organization_id   TEXT NOT NULL,
	person_id         TEXT NOT NULL,
	title             TEXT NOT NULL,
	due_date          TEXT NOT NULL,
	status            TEXT NOT NULL DEFAULT 'scheduled',
	schedule_type     TEXT NOT NULL DEFAULT 'all_day',
	start_at          TIMESTAMP,
	end_at            TIMESTAMP,
	cost              TEXT,
	assigned_to       TEXT NOT NULL DEFAULT '',
	completed_by      TEXT NOT NULL DEFAULT '',
	created_at        TIMESTAMP NOT NULL,
	updated_at        TIMESTAMP NOT NULL,
	UNIQUE (care_need_item_id, due_date)
);
CREATE INDEX IF NOT EXISTS idx_care_tasks_org_status_due
	ON care_tasks(organization_id, status, due_date);
CREATE INDEX IF NOT EXISTS idx_care_tasks_person_due
	ON care_tasks(person_id, due_date);
`

// Open opens (or creates) the database at path and applies the schema.
// The UNIQUE (care_need_item_id, due_date) index is what makes task
// materialization idempotent; it must exist before any repository runs.
func Open(path string) (*sql.DB, error) {
	if dir := filepath.Dir(path); dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0o750); err != nil {
			return nil, fmt.Errorf("creating db dir: %w", err)
		}
	}

	db, err := sql.Open("sqlite", path+"?_pragma=journal_mode(wal)&_pragma=synchronous(normal)&_pragma=foreign_keys(on)&_pragma=busy_timeout(5000)")
	if err != nil {
		return nil, fmt.Errorf("opening db: %w", err)
	}

	if _, err := db.Exec(schemaSQL); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("creating schema: %w", err)
	}

	return db, nil
}
