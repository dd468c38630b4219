package repository

import (
	"github.com/saradorri/gamecatalog/internal/domain"
	"gorm.io/gorm"
)

// SessionManager holds the one logical session a catalog repository works
// through. Every mutating operation runs inside a unit of work obtained from
// Begin; reads go straight to the current session. The design assumes at most
// one unit of work in flight per session at a time; callers serialize access
// or Reset between logical units of external work.
type SessionManager struct {
	db      *gorm.DB
	session *gorm.DB
}

// NewSessionManager creates a manager with an open session.
func NewSessionManager(db *gorm.DB) *SessionManager {
	return &SessionManager{
		db:      db,
		session: db.Session(&gorm.Session{}),
	}
}

// Session returns the current session for reads.
func (m *SessionManager) Session() *gorm.DB {
	return m.session
}

// Begin starts a unit of work on the current session. The caller commits on
// the success path and defers Rollback as the terminal cleanup step; rolling
// back after a commit is a no-op, rolling back without one undoes the work.
func (m *SessionManager) Begin() (*gorm.DB, error) {
	tx := m.session.Begin()
	if tx.Error != nil {
		return nil, domain.NewStorageError("begin unit of work", tx.Error)
	}
	return tx, nil
}

// Reset closes the current session and opens a fresh one. Invoked by the
// external caller at unit-of-work boundaries.
func (m *SessionManager) Reset() {
	m.session = m.db.Session(&gorm.Session{NewDB: true})
}
