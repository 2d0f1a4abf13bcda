package db

import (
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/go-sql-driver/mysql"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

// TestBuildDSN_TCP verifies the MySQL TCP DSN.
func TestBuildDSN_TCP(t *testing.T) {
	t.Parallel()

	cfg := Config{
		Driver:   DriverMySQL,
		User:     "testuser",
		Password: "testpass",
		Name:     "testdb",
		Host:     "localhost",
		Port:     "3306",
	}

	expected := "testuser:testpass@tcp(localhost:3306)/testdb?charset=utf8mb4&parseTime=true&loc=Local"
	assert.Equal(t, expected, BuildDSN(cfg))
}

// TestBuildDSN_CloudSQLTakesPrecedence verifies the unix socket DSN wins over Host/Port.
func TestBuildDSN_CloudSQLTakesPrecedence(t *testing.T) {
	t.Parallel()

	cfg := Config{
		User:         "testuser",
		Password:     "testpass",
		Name:         "testdb",
		Host:         "localhost",
		Port:         "3306",
		InstanceName: "project:region:instance",
	}

	expected := "testuser:testpass@unix(/cloudsql/project:region:instance)/testdb?charset=utf8mb4&parseTime=true&loc=Local"
	assert.Equal(t, expected, BuildDSN(cfg))
}

func TestBuildDSN_Postgres(t *testing.T) {
	t.Parallel()

	cfg := Config{
		Driver:   DriverPostgres,
		User:     "blog",
		Password: "pw",
		Name:     "blog",
		Host:     "pg",
		Port:     "5432",
	}

	assert.Equal(t, "host=pg port=5432 user=blog password=pw dbname=blog sslmode=disable TimeZone=UTC", BuildDSN(cfg))
}

func TestBuildDSN_SQLite(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "file.db", BuildDSN(Config{Driver: DriverSQLite, Path: "file.db"}))
}

func TestNewOpener(t *testing.T) {
	t.Parallel()

	for _, driver := range []string{DriverMySQL, DriverPostgres, DriverSQLite, ""} {
		open, err := NewOpener(driver)
		assert.NoError(t, err, driver)
		assert.NotNil(t, open, driver)
	}

	_, err := NewOpener("oracle")
	assert.Error(t, err)
}

func TestNewOpener_SQLiteMemory(t *testing.T) {
	t.Parallel()

	open, err := NewOpener(DriverSQLite)
	require.NoError(t, err)

	db, err := open(":memory:")
	require.NoError(t, err)
	assert.NoError(t, db.Exec("SELECT 1").Error)
}

// TestConnectWithRetry_SuccessOnFirstTry returns the DB without retrying.
func TestConnectWithRetry_SuccessOnFirstTry(t *testing.T) {
	t.Parallel()

	mockDB := &gorm.DB{}
	opener := func(dsn string) (*gorm.DB, error) {
		return mockDB, nil
	}

	db, err := ConnectWithRetry("test-dsn", 5*time.Second, opener)

	require.NoError(t, err)
	assert.Same(t, mockDB, db)
}

// TestConnectWithRetry_RetriesOnFailure retries until the opener succeeds.
func TestConnectWithRetry_RetriesOnFailure(t *testing.T) {
	prev := retryInterval
	retryInterval = 10 * time.Millisecond
	t.Cleanup(func() { retryInterval = prev })

	mockDB := &gorm.DB{}
	attemptCount := 0

	opener := func(dsn string) (*gorm.DB, error) {
		attemptCount++
		if attemptCount < 3 {
			return nil, errors.New("connection refused")
		}
		return mockDB, nil
	}

	db, err := ConnectWithRetry("test-dsn", time.Second, opener)

	require.NoError(t, err)
	assert.Same(t, mockDB, db)
	assert.Equal(t, 3, attemptCount)
}

// TestConnectWithRetry_TimeoutAfterRetries gives up once the deadline is reached.
func TestConnectWithRetry_TimeoutAfterRetries(t *testing.T) {
	t.Parallel()

	attemptCount := 0
	opener := func(dsn string) (*gorm.DB, error) {
		attemptCount++
		return nil, errors.New("connection refused")
	}

	_, err := ConnectWithRetry("test-dsn", 100*time.Millisecond, opener)

	assert.ErrorContains(t, err, "connection refused")
	assert.GreaterOrEqual(t, attemptCount, 1)
}

func TestIsDuplicateKey(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		err  error
		want bool
	}{
		{"nil", nil, false},
		{"gorm translated", gorm.ErrDuplicatedKey, true},
		{"mysql 1062", &mysql.MySQLError{Number: 1062, Message: "Duplicate entry"}, true},
		{"mysql other", &mysql.MySQLError{Number: 1045}, false},
		{"postgres 23505", fmt.Errorf("insert: %w", &pgconn.PgError{Code: "23505"}), true},
		{"postgres other", &pgconn.PgError{Code: "40001"}, false},
		{"plain", errors.New("boom"), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IsDuplicateKey(tt.err))
		})
	}
}

func TestIsDuplicateKey_SQLite(t *testing.T) {
	t.Parallel()

	open, err := NewOpener(DriverSQLite)
	require.NoError(t, err)
	db, err := open(":memory:")
	require.NoError(t, err)

	type row struct {
		ID   uint   `gorm:"primaryKey"`
		Code string `gorm:"uniqueIndex"`
	}
	require.NoError(t, db.AutoMigrate(&row{}))
	require.NoError(t, db.Create(&row{Code: "a"}).Error)

	err = db.Create(&row{Code: "a"}).Error
	assert.True(t, IsDuplicateKey(err), "got %v", err)
}
