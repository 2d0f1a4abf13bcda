// Package db opens the gorm connection used by every repository.
package db

import (
	"errors"
	"fmt"
	"time"

	"github.com/go-sql-driver/mysql"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/mattn/go-sqlite3"
	gmysql "gorm.io/driver/mysql"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"blog_backend/internal/platform/logging"
)

// Supported values for Config.Driver.
const (
	DriverMySQL    = "mysql"
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"
)

// retryInterval is the wait between connection attempts.
var retryInterval = 3 * time.Second

// Config holds the connection settings for the relational store.
type Config struct {
	Driver       string
	User         string
	Password     string
	Name         string
	Host         string
	Port         string
	InstanceName string // Cloud SQL instance; takes precedence over Host/Port for MySQL
	Path         string // SQLite file path
}

// Opener opens a gorm connection for a DSN.
type Opener func(dsn string) (*gorm.DB, error)

// BuildDSN builds the driver-specific data source name.
func BuildDSN(cfg Config) string {
	switch cfg.Driver {
	case DriverPostgres:
		return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=disable TimeZone=UTC",
			cfg.Host, cfg.Port, cfg.User, cfg.Password, cfg.Name)
	case DriverSQLite:
		return cfg.Path
	}

	if cfg.InstanceName != "" {
		return fmt.Sprintf("%s:%s@unix(/cloudsql/%s)/%s?charset=utf8mb4&parseTime=true&loc=Local",
			cfg.User, cfg.Password, cfg.InstanceName, cfg.Name)
	}
	return fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?charset=utf8mb4&parseTime=true&loc=Local",
		cfg.User, cfg.Password, cfg.Host, cfg.Port, cfg.Name)
}

// GormConfig returns the gorm settings shared by the server, the cleanup job and tests.
// Foreign key constraints are not created: deleting an article leaves its comments and
// favorites behind until the cleanup job purges them.
func GormConfig() *gorm.Config {
	return &gorm.Config{
		Logger: logger.New(logging.Logger(), logger.Config{
			SlowThreshold:             time.Second,
			LogLevel:                  logger.Warn,
			IgnoreRecordNotFoundError: true,
		}),
		TranslateError:                           true,
		DisableForeignKeyConstraintWhenMigrating: true,
	}
}

// NewOpener returns an Opener for the configured driver.
func NewOpener(driver string) (Opener, error) {
	var dialect func(string) gorm.Dialector
	switch driver {
	case DriverMySQL, "":
		dialect = gmysql.Open
	case DriverPostgres:
		dialect = postgres.Open
	case DriverSQLite:
		dialect = sqlite.Open
	default:
		return nil, fmt.Errorf("unsupported db driver %q", driver)
	}
	return func(dsn string) (*gorm.DB, error) {
		return gorm.Open(dialect(dsn), GormConfig())
	}, nil
}

// ConnectWithRetry calls open until it succeeds or timeout elapses.
func ConnectWithRetry(dsn string, timeout time.Duration, open Opener) (*gorm.DB, error) {
	deadline := time.Now().Add(timeout)
	for {
		db, err := open(dsn)
		if err == nil {
			return db, nil
		}
		if time.Now().Add(retryInterval).After(deadline) {
			return nil, fmt.Errorf("db connect failed after %s: %w", timeout, err)
		}
		logging.Logger().WithError(err).Warn("db connect failed, retrying")
		time.Sleep(retryInterval)
	}
}

// OpenDB connects to the configured store and sizes the connection pool.
func OpenDB(cfg Config) (*gorm.DB, error) {
	open, err := NewOpener(cfg.Driver)
	if err != nil {
		return nil, err
	}

	db, err := ConnectWithRetry(BuildDSN(cfg), 60*time.Second, open)
	if err != nil {
		return nil, err
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get database instance: %w", err)
	}
	sqlDB.SetMaxIdleConns(10)
	sqlDB.SetMaxOpenConns(100)
	sqlDB.SetConnMaxLifetime(time.Hour)

	return db, nil
}

// IsDuplicateKey reports whether err is a unique constraint violation from any supported driver.
func IsDuplicateKey(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}

	// MySQL error 1062: duplicate entry for unique key
	var mysqlErr *mysql.MySQLError
	if errors.As(err, &mysqlErr) && mysqlErr.Number == 1062 {
		return true
	}

	// PostgreSQL unique_violation
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == "23505" {
		return true
	}

	var sqliteErr sqlite3.Error
	if errors.As(err, &sqliteErr) &&
		(sqliteErr.ExtendedCode == sqlite3.ErrConstraintUnique || sqliteErr.ExtendedCode == sqlite3.ErrConstraintPrimaryKey) {
		return true
	}
	return false
}
