package db

import (
	"context"
	"database/sql"
	"database/sql/driver"
	"errors"
	"io/fs"
	"strings"
	"sync"
	"testing"
	"time"
)

type nopDriver struct{}

func (d nopDriver) Open(name string) (driver.Conn, error) {
	return nopConn{}, nil
}

type nopConn struct{}

func (nopConn) Prepare(query string) (driver.Stmt, error) { return nopStmt{}, nil }
func (nopConn) Close() error                              { return nil }
func (nopConn) Begin() (driver.Tx, error)                 { return nopTx{}, nil }
func (nopConn) Ping(ctx context.Context) error            { return nil }

type nopStmt struct{}

func (nopStmt) Close() error                                   { return nil }
func (nopStmt) NumInput() int                                  { return -1 }
func (nopStmt) Exec(args []driver.Value) (driver.Result, error) { return nopResult{}, nil }
func (nopStmt) Query(args []driver.Value) (driver.Rows, error)  { return nopRows{}, nil }

type nopTx struct{}

func (nopTx) Commit() error   { return nil }
func (nopTx) Rollback() error { return nil }

type nopResult struct{}

func (nopResult) LastInsertId() (int64, error) { return 0, nil }
func (nopResult) RowsAffected() (int64, error) { return 0, nil }

type nopRows struct{}

func (nopRows) Columns() []string              { return []string{} }
func (nopRows) Close() error                   { return nil }
func (nopRows) Next(dest []driver.Value) error { return driver.ErrBadConn }

var registerTestDriverOnce sync.Once

func ensureTestDriverRegistered() {
	registerTestDriverOnce.Do(func() {
		sql.Register("dbtest", nopDriver{})
	})
}

func withTestDriver(t *testing.T) func() {
	t.Helper()
	ensureTestDriverRegistered()
	prev := openDB
	openDB = func(name, dsn string) (*sql.DB, error) {
		return sql.Open("dbtest", dsn)
	}
	return func() {
		openDB = prev
	}
}

func TestOptionsForRole(t *testing.T) {
	if got := OptionsFor(RoleLambda).MaxOpenConns; got != 2 {
		t.Fatalf("expected lambda MaxOpenConns=2, got %d", got)
	}
	if got := OptionsFor(RoleCLI).MaxOpenConns; got != 1 {
		t.Fatalf("expected cli MaxOpenConns=1, got %d", got)
	}
	if OptionsFor(Role("batch")) != OptionsFor(RoleServer) {
		t.Fatalf("expected unknown role to use server defaults")
	}
}

func TestRuntimeRole(t *testing.T) {
	t.Setenv("AWS_LAMBDA_FUNCTION_NAME", "")
	if RuntimeRole() != RoleServer {
		t.Fatalf("expected server role outside lambda")
	}
	t.Setenv("AWS_LAMBDA_FUNCTION_NAME", "skincare-api")
	if RuntimeRole() != RoleLambda {
		t.Fatalf("expected lambda role")
	}
}

func TestOptionsForAppliesOverrides(t *testing.T) {
	restore := withTestDriver(t)
	defer restore()

	t.Setenv("DB_MAX_OPEN_CONNS", "7")
	t.Setenv("DB_MAX_IDLE_CONNS", "3")
	t.Setenv("DB_CONN_MAX_LIFETIME", "20m")
	t.Setenv("DB_CONN_MAX_IDLE_TIME", "45s")
	t.Setenv("DB_PING_TIMEOUT", "1s")

	opts := OptionsFor(RoleServer)
	db, err := Connect(context.Background(), "ignored", opts)
	if err != nil {
		t.Fatalf("Connect: %v", err)
	}
	defer db.Close()

	stats := db.Stats()
	if stats.MaxOpenConnections != 7 {
		t.Fatalf("expected MaxOpenConnections=7, got %d", stats.MaxOpenConnections)
	}
	if opts.MaxIdleConns != 3 {
		t.Fatalf("expected MaxIdleConns=3, got %d", opts.MaxIdleConns)
	}
	if opts.ConnMaxLifetime != 20*time.Minute {
		t.Fatalf("expected ConnMaxLifetime=20m, got %s", opts.ConnMaxLifetime)
	}
	if opts.ConnMaxIdleTime != 45*time.Second {
		t.Fatalf("expected ConnMaxIdleTime=45s, got %s", opts.ConnMaxIdleTime)
	}
	if opts.PingTimeout != time.Second {
		t.Fatalf("expected PingTimeout=1s, got %s", opts.PingTimeout)
	}
}

func TestOptionsForIgnoresInvalidOverride(t *testing.T) {
	t.Setenv("DB_MAX_OPEN_CONNS", "many")
	t.Setenv("DB_PING_TIMEOUT", "soon")
	opts := OptionsFor(RoleLambda)
	if opts.MaxOpenConns != 2 || opts.PingTimeout != 3*time.Second {
		t.Fatalf("expected lambda defaults to survive invalid env, got %+v", opts)
	}
}

func TestConnectOpenError(t *testing.T) {
	prev := openDB
	openDB = func(name, dsn string) (*sql.DB, error) { return nil, driver.ErrBadConn }
	defer func() { openDB = prev }()

	if _, err := Connect(context.Background(), "postgres://x", OptionsFor(RoleCLI)); !errors.Is(err, driver.ErrBadConn) {
		t.Fatalf("expected wrapped open error, got %v", err)
	}
}

func TestConnectRequiresURL(t *testing.T) {
	if _, err := Connect(context.Background(), "  ", OptionsFor(RoleServer)); !errors.Is(err, ErrNoDatabaseURL) {
		t.Fatalf("expected ErrNoDatabaseURL, got %v", err)
	}
}

func TestMigrationsEmbedded(t *testing.T) {
	names, err := fs.Glob(migrationFiles, "migrations/*.sql")
	if err != nil {
		t.Fatalf("glob: %v", err)
	}
	if len(names) == 0 {
		t.Fatalf("expected embedded migrations")
	}
	body, err := fs.ReadFile(migrationFiles, "migrations/00001_create_services.sql")
	if err != nil {
		t.Fatalf("read migration: %v", err)
	}
	for _, marker := range []string{"-- +goose Up", "-- +goose Down", "CREATE TABLE IF NOT EXISTS services"} {
		if !strings.Contains(string(body), marker) {
			t.Fatalf("migration missing %q", marker)
		}
	}
}

func TestSourceTextMigrationReversible(t *testing.T) {
	body, err := fs.ReadFile(migrationFiles, "migrations/00002_services_source_text.sql")
	if err != nil {
		t.Fatalf("read migration: %v", err)
	}
	for _, marker := range []string{"DROP CONSTRAINT IF EXISTS services_gender_check", "-- +goose Down", "ADD CONSTRAINT services_gender_check"} {
		if !strings.Contains(string(body), marker) {
			t.Fatalf("migration missing %q", marker)
		}
	}
}

func TestRunMigrationsNilDB(t *testing.T) {
	if err := RunMigrations(context.Background(), nil); err != nil {
		t.Fatalf("expected nil db to be a no-op, got %v", err)
	}
}
