package storage

import (
	"database/sql"
	"errors"
	"time"
)

// Preferences is one visitor's key-value preference store.
type Preferences struct {
	store     *Store
	visitorID string
}

// Preferences returns the preference store of a visitor.
func (s *Store) Preferences(visitorID string) *Preferences {
	return &Preferences{store: s, visitorID: visitorID}
}

// Get returns the stored value for key.
func (p *Preferences) Get(key string) (string, bool, error) {
	var value string
	err := p.store.db.QueryRow(
		"SELECT value FROM preferences WHERE visitor_id = ? AND key = ?",
		p.visitorID, key,
	).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return "", false, nil
	}
	if err != nil {
		return "", false, err
	}
	return value, true, nil
}

// Set stores value under key, replacing any previous value.
func (p *Preferences) Set(key, value string) error {
	_, err := p.store.db.Exec(`
		INSERT INTO preferences (visitor_id, key, value, updated_at)
		VALUES (?, ?, ?, ?)
		ON CONFLICT (visitor_id, key) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at`,
		p.visitorID, key, value, formatTime(time.Now()),
	)
	return err
}
