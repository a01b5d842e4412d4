package store

import (
	"database/sql"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/MKhiriev/go-gated-site/internal/logger"
	"github.com/MKhiriev/go-gated-site/migrations"
)

var fixedNow = time.Date(2026, 10, 18, 12, 0, 0, 0, time.UTC)

func newMockDB(t *testing.T, dialect string) (*DB, sqlmock.Sqlmock, *sql.DB) {
	t.Helper()
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to create sqlmock: %v", err)
	}

	var classifier ErrorClassificator = NewPostgresErrorClassifier()
	if dialect == migrations.DialectSQLite {
		classifier = NewSQLiteErrorClassifier()
	}

	return &DB{DB: db, dialect: dialect, errorClassificator: classifier, logger: logger.Nop()}, mock, db
}

func newTestUserRepo(t *testing.T) (*userRepository, sqlmock.Sqlmock, *sql.DB) {
	t.Helper()
	wrapped, mock, db := newMockDB(t, migrations.DialectPostgres)
	return &userRepository{db: wrapped, logger: logger.Nop()}, mock, db
}

func newTestSessionRepo(t *testing.T) (*sessionRepository, sqlmock.Sqlmock, *sql.DB) {
	t.Helper()
	wrapped, mock, db := newMockDB(t, migrations.DialectPostgres)
	return &sessionRepository{db: wrapped, logger: logger.Nop(), now: func() time.Time { return fixedNow }}, mock, db
}

func pgError(code string) error {
	return &pgconn.PgError{Code: code}
}

func pgConstraintError(code, constraint string) error {
	return &pgconn.PgError{Code: code, ConstraintName: constraint}
}
