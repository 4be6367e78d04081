package services

import (
	"database/sql"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
)

// sqlmockDB bundles the mock handle with its *sql.DB for tests that wire
// several repositories to the same connection.
type sqlmockDB struct {
	DB   *sql.DB
	mock sqlmock.Sqlmock
}

func newSQLMock(t *testing.T) *sqlmockDB {
	t.Helper()
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	return &sqlmockDB{DB: db, mock: mock}
}

func (m *sqlmockDB) Close() {
	_ = m.DB.Close()
}
