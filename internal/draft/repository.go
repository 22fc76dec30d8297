// Package draft persists in-progress property records between console
// invocations.
package draft

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/RobasAhmedShah/hmr-dashboard-sub002/internal/property"
)

// Repository stores draft records in SQLite, keyed by record identity: the
// backend id in edit mode, a locally generated uuid in create mode.
type Repository struct {
	db *sql.DB
}

// NewRepository creates a draft repository.
func NewRepository(db *sql.DB) *Repository {
	return &Repository{db: db}
}

// Entry is a stored draft with its bookkeeping columns.
type Entry struct {
	ID        string
	Record    *property.Record
	UpdatedAt time.Time
}

// Save upserts the draft for id.
func (r *Repository) Save(id string, rec *property.Record) error {
	data, err := json.Marshal(rec)
	if err != nil {
		return fmt.Errorf("marshaling draft: %w", err)
	}
	_, err = r.db.Exec(
		`INSERT INTO drafts (id, record_json, updated_at) VALUES (?, ?, CURRENT_TIMESTAMP)
		 ON CONFLICT(id) DO UPDATE SET record_json = excluded.record_json, updated_at = CURRENT_TIMESTAMP`,
		id, string(data),
	)
	if err != nil {
		return fmt.Errorf("saving draft %s: %w", id, err)
	}
	return nil
}

// Get returns the draft for id, or sql.ErrNoRows wrapped if none is stored.
func (r *Repository) Get(id string) (*property.Record, error) {
	var data string
	err := r.db.QueryRow("SELECT record_json FROM drafts WHERE id = ?", id).Scan(&data)
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("draft %s not found: %w", id, err)
	}
	if err != nil {
		return nil, fmt.Errorf("querying draft %s: %w", id, err)
	}

	var rec property.Record
	if err := json.Unmarshal([]byte(data), &rec); err != nil {
		return nil, fmt.Errorf("decoding draft %s: %w", id, err)
	}
	return &rec, nil
}

// List returns all drafts, most recently updated first.
func (r *Repository) List() ([]Entry, error) {
	rows, err := r.db.Query("SELECT id, record_json, updated_at FROM drafts ORDER BY updated_at DESC")
	if err != nil {
		return nil, fmt.Errorf("listing drafts: %w", err)
	}
	defer rows.Close()

	var entries []Entry
	for rows.Next() {
		var e Entry
		var data string
		if err := rows.Scan(&e.ID, &data, &e.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scanning draft: %w", err)
		}
		var rec property.Record
		if err := json.Unmarshal([]byte(data), &rec); err != nil {
			return nil, fmt.Errorf("decoding draft %s: %w", e.ID, err)
		}
		e.Record = &rec
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating drafts: %w", err)
	}
	return entries, nil
}

// Delete removes the draft for id. Deleting a missing draft is not an error.
func (r *Repository) Delete(id string) error {
	if _, err := r.db.Exec("DELETE FROM drafts WHERE id = ?", id); err != nil {
		return fmt.Errorf("deleting draft %s: %w", id, err)
	}
	return nil
}
